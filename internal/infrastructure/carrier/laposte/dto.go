package laposte

import "github.com/99minutos/tracking-system/internal/core/ports"

type timelineDTO struct {
	ID         int    `json:"id"`
	ShortLabel string `json:"shortLabel"`
	LongLabel  string `json:"longLabel"`
	Status     bool   `json:"status"`
	Type       int    `json:"type"`
	Country    string `json:"country"`
}

type eventDTO struct {
	Order int    `json:"order"`
	Date  string `json:"date"`
	Label string `json:"label"`
	Code  string `json:"code"`
}

type shipmentDTO struct {
	IDShip   string        `json:"idShip"`
	Product  string        `json:"product"`
	IsFinal  bool          `json:"isFinal"`
	Holder   int           `json:"holder"`
	Timeline []timelineDTO `json:"timeline"`
	Event    []eventDTO    `json:"event"`
}

type trackingResponse struct {
	Lang       string      `json:"lang"`
	Scope      string      `json:"scope"`
	ReturnCode int         `json:"returnCode"`
	Shipment   shipmentDTO `json:"shipment"`
}

func (r trackingResponse) toRaw() *ports.RawTracking {
	raw := &ports.RawTracking{
		Lang:       r.Lang,
		Scope:      r.Scope,
		ReturnCode: r.ReturnCode,
		Shipment: ports.RawShipment{
			IDShip:   r.Shipment.IDShip,
			Product:  r.Shipment.Product,
			IsFinal:  r.Shipment.IsFinal,
			Holder:   r.Shipment.Holder,
			Timeline: make([]ports.RawTimelineStep, len(r.Shipment.Timeline)),
			Events:   make([]ports.RawEvent, len(r.Shipment.Event)),
		},
	}
	for i, t := range r.Shipment.Timeline {
		raw.Shipment.Timeline[i] = ports.RawTimelineStep{
			ID:         t.ID,
			ShortLabel: t.ShortLabel,
			LongLabel:  t.LongLabel,
			Status:     t.Status,
			Type:       t.Type,
			Country:    t.Country,
		}
	}
	for i, e := range r.Shipment.Event {
		raw.Shipment.Events[i] = ports.RawEvent{Order: e.Order, Date: e.Date, Label: e.Label, Code: e.Code}
	}
	return raw
}
