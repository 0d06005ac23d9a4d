package domain

import (
	"cmp"
	"slices"
	"time"
)

// TimelineStep is one row of the carrier's five-phase progress table.
type TimelineStep struct {
	ID         int    `json:"id" bson:"id"`
	ShortLabel string `json:"short_label" bson:"short_label"`
	LongLabel  string `json:"long_label,omitempty" bson:"long_label,omitempty"`
	Completed  bool   `json:"completed" bson:"completed"`
	Type       int    `json:"type" bson:"type"`
	Country    string `json:"country,omitempty" bson:"country,omitempty"`
}

// Event is a dated milestone in a shipment's history. Order gives its position
// in the history; events are not assumed to be sorted by date.
type Event struct {
	Order  int         `json:"order" bson:"order"`
	Date   string      `json:"date" bson:"date"`
	Label  string      `json:"label" bson:"label"`
	Status EventStatus `json:"status" bson:"status"`
}

// Shipment is a decoded carrier snapshot. ID, Product, Holder and IsFinal are
// passed through as reported.
type Shipment struct {
	ID       string         `json:"id" bson:"id"`
	Product  string         `json:"product" bson:"product"`
	Holder   int            `json:"holder" bson:"holder"`
	IsFinal  bool           `json:"is_final" bson:"is_final"`
	Timeline []TimelineStep `json:"timeline" bson:"timeline"`
	Events   []Event        `json:"events" bson:"events"`
}

// shippingPriority lists the statuses that stand for "handed to the carrier",
// most significant first.
var shippingPriority = []EventStatus{
	EventDeclared,
	EventCollectedByCarrier,
	EventCollectedInShippingCountry,
}

// DeliveryStatus infers the current phase from the timeline.
func (s *Shipment) DeliveryStatus() (DeliveryStatus, error) {
	return InferDeliveryStatus(s.Timeline)
}

// LastEvent returns the event with the highest order, or nil when there are
// none. Among equal orders the last one encountered wins.
func (s *Shipment) LastEvent() *Event {
	var last *Event
	for i := range s.Events {
		if last == nil || s.Events[i].Order >= last.Order {
			last = &s.Events[i]
		}
	}
	return last
}

// FirstEvent returns the event with the lowest order, or nil when there are
// none. Among equal orders the first one encountered wins.
func (s *Shipment) FirstEvent() *Event {
	var first *Event
	for i := range s.Events {
		if first == nil || s.Events[i].Order < first.Order {
			first = &s.Events[i]
		}
	}
	return first
}

// ShippingEvent returns the event marking the hand-over to the carrier: the
// first Declared event, else the first CollectedByCarrier, else the first
// CollectedInShippingCountry, in iteration order. Dates are not compared.
func (s *Shipment) ShippingEvent() *Event {
	for _, status := range shippingPriority {
		for i := range s.Events {
			if s.Events[i].Status == status {
				return &s.Events[i]
			}
		}
	}
	return nil
}

// EventsByOrder returns a copy of the events sorted by ascending order.
func (s *Shipment) EventsByOrder() []Event {
	out := slices.Clone(s.Events)
	slices.SortStableFunc(out, func(a, b Event) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// EventsAfter returns the events whose order is strictly greater than cursor,
// sorted by order.
func (s *Shipment) EventsAfter(cursor int) []Event {
	var out []Event
	for _, e := range s.EventsByOrder() {
		if e.Order > cursor {
			out = append(out, e)
		}
	}
	return out
}

// Snapshot is the persisted result of one carrier lookup.
type Snapshot struct {
	TrackingNumber string         `json:"tracking_number" bson:"tracking_number"`
	Lang           string         `json:"lang" bson:"lang"`
	Scope          string         `json:"scope" bson:"scope"`
	Shipment       Shipment       `json:"shipment" bson:"shipment"`
	DeliveryStatus DeliveryStatus `json:"delivery_status" bson:"delivery_status"`
	SkippedEvents  int            `json:"skipped_events,omitempty" bson:"skipped_events,omitempty"`
	FetchedAt      time.Time      `json:"fetched_at" bson:"fetched_at"`
}
