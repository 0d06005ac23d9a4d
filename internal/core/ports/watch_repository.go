package ports

import (
	"context"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// WatchFilter narrows List. Empty fields do not filter.
type WatchFilter struct {
	ClientID       string
	TrackingNumber string
	ActiveOnly     bool
}

// WatchRepository persists watches.
type WatchRepository interface {
	// Create fails with domain.ErrWatchExists when the client already watches
	// the same tracking number.
	Create(ctx context.Context, w *domain.Watch) error
	FindByID(ctx context.Context, id string) (*domain.Watch, error)
	List(ctx context.Context, filter WatchFilter) ([]*domain.Watch, error)
	Update(ctx context.Context, w *domain.Watch) error
	Delete(ctx context.Context, id string) error
}
