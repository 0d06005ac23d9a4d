package ports

import (
	"context"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

// RawTimelineStep is a timeline row as the carrier reports it.
type RawTimelineStep struct {
	ID         int
	ShortLabel string
	LongLabel  string
	Status     bool
	Type       int
	Country    string
}

// RawEvent is an event row with its carrier status code still undecoded.
type RawEvent struct {
	Order int
	Date  string
	Label string
	Code  string
}

// RawShipment is the shipment part of a carrier response.
type RawShipment struct {
	IDShip   string
	Product  string
	IsFinal  bool
	Holder   int
	Timeline []RawTimelineStep
	Events   []RawEvent
}

// RawTracking is a successfully parsed carrier response body.
type RawTracking struct {
	Lang       string
	Scope      string
	ReturnCode int
	Shipment   RawShipment
}

// CarrierClient fetches tracking data from the carrier. It only accepts
// validated tracking numbers and maps HTTP failures to the domain carrier
// errors (ErrParcelNotFound, ErrCarrierUnauthorized, ErrCarrierRejectedFormat,
// ErrCarrierUnavailable).
type CarrierClient interface {
	FetchTracking(ctx context.Context, tn domain.TrackingNumber) (*RawTracking, error)
}
