package handler

import (
	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

func toEventResponse(e *domain.Event) *eventResponse {
	if e == nil {
		return nil
	}
	return &eventResponse{
		Order:  e.Order,
		Date:   e.Date,
		Label:  e.Label,
		Status: e.Status.String(),
		Code:   e.Status.Code(),
	}
}

// toSnapshotResponse renders a stored snapshot. Derived events are recomputed
// from the shipment so stored and live responses agree.
func toSnapshotResponse(s *domain.Snapshot) trackingResponse {
	shipment := &s.Shipment

	events := make([]eventResponse, 0, len(shipment.Events))
	for _, e := range shipment.EventsByOrder() {
		events = append(events, *toEventResponse(&e))
	}

	timeline := make([]timelineStepResponse, 0, len(shipment.Timeline))
	for _, step := range shipment.Timeline {
		timeline = append(timeline, timelineStepResponse{
			ID:         step.ID,
			ShortLabel: step.ShortLabel,
			LongLabel:  step.LongLabel,
			Completed:  step.Completed,
			Country:    step.Country,
		})
	}

	return trackingResponse{
		TrackingNumber: s.TrackingNumber,
		Product:        shipment.Product,
		Holder:         shipment.Holder,
		IsFinal:        shipment.IsFinal,
		DeliveryStatus: s.DeliveryStatus.String(),
		DeliveryStep:   s.DeliveryStatus.Step(),
		ShippingEvent:  toEventResponse(shipment.ShippingEvent()),
		FirstEvent:     toEventResponse(shipment.FirstEvent()),
		LastEvent:      toEventResponse(shipment.LastEvent()),
		Events:         events,
		Timeline:       timeline,
		SkippedEvents:  s.SkippedEvents,
		FetchedAt:      s.FetchedAt,
		Links:          trackingLinks{Self: "/v1/trackings/" + s.TrackingNumber},
	}
}

func toTrackingResponse(res *ports.TrackingResult) trackingResponse {
	resp := toSnapshotResponse(res.Snapshot)
	resp.NewEvents = len(res.NewEvents)
	return resp
}
