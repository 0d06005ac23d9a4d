package handler

import (
	"time"

	"github.com/99minutos/tracking-system/internal/core/domain"
)

type addWatchRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required,tracking_number"`
	Label          string `json:"label"           validate:"max=100"`
}

type watchLinks struct {
	Self     string `json:"self"`
	Snapshot string `json:"snapshot"`
	Tracking string `json:"tracking"`
}

type watchResponse struct {
	ID             string         `json:"id"`
	TrackingNumber string         `json:"tracking_number"`
	ClientID       string         `json:"client_id"`
	Label          string         `json:"label,omitempty"`
	DeliveryStatus string         `json:"delivery_status,omitempty"`
	LastEvent      *eventResponse `json:"last_event,omitempty"`
	Active         bool           `json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	Links          watchLinks     `json:"_links"`
}

type listWatchesResponse struct {
	Watches []watchResponse `json:"watches"`
	Total   int             `json:"total"`
}

func toWatchResponse(w *domain.Watch) watchResponse {
	resp := watchResponse{
		ID:             w.ID,
		TrackingNumber: w.TrackingNumber,
		ClientID:       w.ClientID,
		Label:          w.Label,
		LastEvent:      toEventResponse(w.LastEvent),
		Active:         w.Active,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		Links: watchLinks{
			Self:     "/v1/watches/" + w.ID,
			Snapshot: "/v1/watches/" + w.ID + "/snapshot",
			Tracking: "/v1/trackings/" + w.TrackingNumber,
		},
	}
	// Zero until the first refresh lands.
	if w.DeliveryStatus != 0 {
		resp.DeliveryStatus = w.DeliveryStatus.String()
	}
	return resp
}
