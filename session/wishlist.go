package session

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/redis/go-redis/v9"

	"trips/event"
)

const wishlistKeyPrefix = "wishlist:"

type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// Wishlist stores each user's liked package ids in a Redis set and keeps a
// local copy per user for reads. Writes go to Redis first, last write wins.
// A WishlistChanged event is published on every write so other instances
// refresh their local copy.
type Wishlist struct {
	rdb       *redis.Client
	publisher Publisher

	mu    sync.RWMutex
	cache map[string][]string
}

func NewWishlist(rdb *redis.Client, publisher Publisher) *Wishlist {
	return &Wishlist{
		rdb:       rdb,
		publisher: publisher,
		cache:     make(map[string][]string),
	}
}

// Toggle adds the package id when absent and removes it when present,
// returning the resulting list.
func (w *Wishlist) Toggle(ctx context.Context, userID, packageID string) ([]string, error) {
	key := wishlistKeyPrefix + userID

	liked, err := w.rdb.SIsMember(ctx, key, packageID).Result()
	if err != nil {
		return nil, fmt.Errorf("checking wishlist membership: %w", err)
	}

	if liked {
		err = w.rdb.SRem(ctx, key, packageID).Err()
	} else {
		err = w.rdb.SAdd(ctx, key, packageID).Err()
	}
	if err != nil {
		return nil, fmt.Errorf("toggling wishlist entry: %w", err)
	}

	packageIDs, err := w.Refresh(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := w.publisher.Publish(ctx, event.NewWishlistChanged(userID, packageIDs)); err != nil {
		return nil, fmt.Errorf("publishing wishlist change: %w", err)
	}

	return packageIDs, nil
}

// List returns the local copy when present, otherwise reads through Redis.
func (w *Wishlist) List(ctx context.Context, userID string) ([]string, error) {
	w.mu.RLock()
	packageIDs, ok := w.cache[userID]
	w.mu.RUnlock()
	if ok {
		return packageIDs, nil
	}

	return w.Refresh(ctx, userID)
}

// Refresh re-reads the user's wishlist from Redis and replaces the local
// copy wholesale.
func (w *Wishlist) Refresh(ctx context.Context, userID string) ([]string, error) {
	packageIDs, err := w.rdb.SMembers(ctx, wishlistKeyPrefix+userID).Result()
	if err != nil {
		return nil, fmt.Errorf("reading wishlist: %w", err)
	}

	// Redis sets are unordered; sort so repeated reads agree.
	sort.Strings(packageIDs)

	w.mu.Lock()
	w.cache[userID] = packageIDs
	w.mu.Unlock()

	return packageIDs, nil
}
