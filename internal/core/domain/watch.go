package domain

import "time"

// Watch registers a tracking number for periodic refresh on behalf of a client.
type Watch struct {
	ID             string         `json:"id" bson:"_id"`
	TrackingNumber string         `json:"tracking_number" bson:"tracking_number"`
	ClientID       string         `json:"client_id" bson:"client_id"`
	Label          string         `json:"label,omitempty" bson:"label,omitempty"`
	DeliveryStatus DeliveryStatus `json:"delivery_status,omitempty" bson:"delivery_status,omitempty"`
	LastEvent      *Event         `json:"last_event,omitempty" bson:"last_event,omitempty"`
	Active         bool           `json:"active" bson:"active"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// Apply records the outcome of a refresh. A watch stops refreshing once the
// parcel is delivered or the carrier marks the shipment final.
func (w *Watch) Apply(s *Snapshot, now time.Time) {
	w.DeliveryStatus = s.DeliveryStatus
	w.LastEvent = nil
	if last := s.Shipment.LastEvent(); last != nil {
		e := *last
		w.LastEvent = &e
	}
	if s.DeliveryStatus == DeliveryDelivered || s.Shipment.IsFinal {
		w.Active = false
	}
	w.UpdatedAt = now
}

// VisibleTo reports whether a caller with role and clientID may read w.
func (w *Watch) VisibleTo(role, clientID string) bool {
	return role == RoleAdmin || w.ClientID == clientID
}
