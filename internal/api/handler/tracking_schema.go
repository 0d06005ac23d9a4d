package handler

import "time"

// --- Request / Response types ---

// batchTrackingRequest accepts at most 50 tracking numbers.
type batchTrackingRequest struct {
	TrackingNumbers []string `json:"tracking_numbers" validate:"required,min=1,max=50,dive,required"`
}

type eventResponse struct {
	Order  int    `json:"order"`
	Date   string `json:"date"`
	Label  string `json:"label"`
	Status string `json:"status"`
	Code   string `json:"code"`
}

type timelineStepResponse struct {
	ID         int    `json:"id"`
	ShortLabel string `json:"short_label"`
	LongLabel  string `json:"long_label,omitempty"`
	Completed  bool   `json:"completed"`
	Country    string `json:"country,omitempty"`
}

type trackingLinks struct {
	Self string `json:"self"`
}

type trackingResponse struct {
	TrackingNumber string                 `json:"tracking_number"`
	Product        string                 `json:"product"`
	Holder         int                    `json:"holder"`
	IsFinal        bool                   `json:"is_final"`
	DeliveryStatus string                 `json:"delivery_status"`
	DeliveryStep   int                    `json:"delivery_step"`
	ShippingEvent  *eventResponse         `json:"shipping_event,omitempty"`
	FirstEvent     *eventResponse         `json:"first_event,omitempty"`
	LastEvent      *eventResponse         `json:"last_event,omitempty"`
	Events         []eventResponse        `json:"events"`
	Timeline       []timelineStepResponse `json:"timeline"`
	NewEvents      int                    `json:"new_events"`
	SkippedEvents  int                    `json:"skipped_events,omitempty"`
	FetchedAt      time.Time              `json:"fetched_at"`
	Links          trackingLinks          `json:"_links"`
}

type batchItemResponse struct {
	Input    string            `json:"input"`
	Tracking *trackingResponse `json:"tracking,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type batchTrackingResponse struct {
	Items     []batchItemResponse `json:"items"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}
