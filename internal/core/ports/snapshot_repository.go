package ports

import (
	"context"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// SnapshotRepository keeps the latest decoded snapshot per tracking number.
type SnapshotRepository interface {
	// Save replaces the stored snapshot for s.TrackingNumber.
	Save(ctx context.Context, s *domain.Snapshot) error
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Snapshot, error)
}

// EventLogRepository stores events the first time they are seen.
type EventLogRepository interface {
	AppendEvents(ctx context.Context, trackingNumber string, events []domain.Event) error
}

// EventCursor remembers the highest event order already logged per tracking number.
type EventCursor interface {
	// Last returns the stored cursor, or 0 when nothing was logged yet.
	Last(ctx context.Context, trackingNumber string) (int, error)
	Advance(ctx context.Context, trackingNumber string, order int) error
}
