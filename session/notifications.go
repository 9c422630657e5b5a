package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trips/entity"
)

const (
	notificationKeyPrefix = "notifications:"
	maxNotifications      = 50
)

// Notifications keeps a short per-user feed of messages, newest first.
type Notifications struct {
	rdb *redis.Client
}

func NewNotifications(rdb *redis.Client) Notifications {
	return Notifications{
		rdb: rdb,
	}
}

func (n Notifications) Append(ctx context.Context, userID, message string) error {
	notification := entity.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshalling notification: %w", err)
	}

	key := notificationKeyPrefix + userID
	pipe := n.rdb.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, maxNotifications-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("appending notification: %w", err)
	}

	return nil
}

func (n Notifications) List(ctx context.Context, userID string) ([]entity.Notification, error) {
	payloads, err := n.rdb.LRange(ctx, notificationKeyPrefix+userID, 0, maxNotifications-1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(payloads))
	for _, payload := range payloads {
		var notification entity.Notification
		if err := json.Unmarshal([]byte(payload), &notification); err != nil {
			return nil, fmt.Errorf("unmarshalling notification: %w", err)
		}
		notifications = append(notifications, notification)
	}

	return notifications, nil
}
