package ports

import (
	"context"
	"time"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// TrackingResult is the decoded snapshot plus its derived summary.
type TrackingResult struct {
	TrackingNumber domain.TrackingNumber
	Snapshot       *domain.Snapshot
	DeliveryStatus domain.DeliveryStatus
	FirstEvent     *domain.Event
	LastEvent      *domain.Event
	ShippingEvent  *domain.Event
	// NewEvents are the events not seen by a previous lookup.
	NewEvents []domain.Event
	FetchedAt time.Time
}

// BatchItem is one entry of a batch lookup, in request order.
type BatchItem struct {
	Input  string
	Result *TrackingResult
	Err    error
}

// TrackingService looks up parcels at the carrier.
type TrackingService interface {
	Track(ctx context.Context, raw string) (*TrackingResult, error)
	TrackBatch(ctx context.Context, raws []string) []BatchItem
}
