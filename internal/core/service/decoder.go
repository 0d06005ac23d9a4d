package service

import (
	"fmt"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

// decodeShipment turns a raw carrier shipment into a domain shipment.
//
// In strict mode the first unknown event code fails the whole shipment. In
// lenient mode events with unknown codes are dropped and their codes returned.
func decodeShipment(raw ports.RawShipment, strict bool) (domain.Shipment, []string, error) {
	shipment := domain.Shipment{
		ID:       raw.IDShip,
		Product:  raw.Product,
		Holder:   raw.Holder,
		IsFinal:  raw.IsFinal,
		Timeline: make([]domain.TimelineStep, 0, len(raw.Timeline)),
		Events:   make([]domain.Event, 0, len(raw.Events)),
	}

	for _, step := range raw.Timeline {
		shipment.Timeline = append(shipment.Timeline, domain.TimelineStep{
			ID:         step.ID,
			ShortLabel: step.ShortLabel,
			LongLabel:  step.LongLabel,
			Completed:  step.Status,
			Type:       step.Type,
			Country:    step.Country,
		})
	}

	var skipped []string
	for i, ev := range raw.Events {
		status, err := domain.ParseEventStatus(ev.Code)
		if err != nil {
			if strict {
				return domain.Shipment{}, nil, fmt.Errorf("event[%d]: %w", i, err)
			}
			skipped = append(skipped, ev.Code)
			continue
		}
		shipment.Events = append(shipment.Events, domain.Event{
			Order:  ev.Order,
			Date:   ev.Date,
			Label:  ev.Label,
			Status: status,
		})
	}

	return shipment, skipped, nil
}
