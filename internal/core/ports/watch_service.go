package ports

import (
	"context"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// Caller identifies who issues a watch request, for RBAC.
type Caller struct {
	Role     string
	ClientID string
}

// AddWatchInput carries the data needed to create a watch.
type AddWatchInput struct {
	TrackingNumber string
	Label          string
	Caller         Caller
}

// WatchService manages watches and refreshes the parcels behind them.
type WatchService interface {
	Add(ctx context.Context, in AddWatchInput) (*domain.Watch, error)
	Get(ctx context.Context, id string, caller Caller) (*domain.Watch, error)
	Snapshot(ctx context.Context, id string, caller Caller) (*domain.Snapshot, error)
	List(ctx context.Context, caller Caller) ([]*domain.Watch, error)
	Remove(ctx context.Context, id string, caller Caller) error
	// Refresh re-tracks a parcel and updates every watch on it.
	Refresh(ctx context.Context, trackingNumber string) error
	// ActiveTrackingNumbers lists the distinct tracking numbers still refreshed.
	ActiveTrackingNumbers(ctx context.Context) ([]string, error)
}
