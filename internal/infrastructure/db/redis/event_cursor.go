package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/tracking-system/internal/core/ports"
)

const cursorTTL = 30 * 24 * time.Hour

// EventCursor stores the highest logged event order per tracking number.
// Key format: tracking:cursor:<tracking_number>
type EventCursor struct {
	client *redis.Client
}

// NewEventCursor creates an EventCursor wrapping the given Redis client.
func NewEventCursor(client *redis.Client) *EventCursor {
	return &EventCursor{client: client}
}

var _ ports.EventCursor = (*EventCursor)(nil)

// Last returns the stored cursor, or 0 when the key does not exist.
func (c *EventCursor) Last(ctx context.Context, trackingNumber string) (int, error) {
	n, err := c.client.Get(ctx, c.key(trackingNumber)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("event cursor get: %w", err)
	}
	return n, nil
}

// Advance stores order as the new cursor and refreshes its TTL.
func (c *EventCursor) Advance(ctx context.Context, trackingNumber string, order int) error {
	if err := c.client.Set(ctx, c.key(trackingNumber), order, cursorTTL).Err(); err != nil {
		return fmt.Errorf("event cursor set: %w", err)
	}
	return nil
}

func (c *EventCursor) key(trackingNumber string) string {
	return "tracking:cursor:" + trackingNumber
}
