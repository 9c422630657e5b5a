// Package session keeps the per-user state this service owns: the bearer
// token with its current-user summary, and the wishlist. Redis is the only
// store; everything else in the system is fetched from the backend services
// on demand.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"trips/entity"
)

// ErrNotAuthenticated is returned when no session exists for a token.
// Absence means "not authenticated"; tokens are never refreshed or expired
// by this layer, a stale token simply stops resolving.
var ErrNotAuthenticated = errors.New("not authenticated")

const sessionKeyPrefix = "session:"

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) Store {
	return Store{
		rdb: rdb,
	}
}

func (s Store) Save(ctx context.Context, session entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}

	if err := s.rdb.Set(ctx, sessionKeyPrefix+session.Token, payload, 0).Err(); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}

	return nil
}

func (s Store) Get(ctx context.Context, token string) (entity.Session, error) {
	payload, err := s.rdb.Get(ctx, sessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return entity.Session{}, fmt.Errorf("reading session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return entity.Session{}, fmt.Errorf("unmarshalling session: %w", err)
	}

	return session, nil
}

// Clear removes the session on logout.
func (s Store) Clear(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	return nil
}
