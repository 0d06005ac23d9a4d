package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
	"github.com/99minutos/tracking-system/internal/pkg/metrics"
)

const defaultBatchConcurrency = 4

// TrackingConfig tunes decoding and batch lookups.
type TrackingConfig struct {
	// StrictCodes fails a lookup on the first unknown event code instead of
	// skipping the event.
	StrictCodes      bool
	BatchConcurrency int
}

type trackingService struct {
	carrier   ports.CarrierClient
	snapshots ports.SnapshotRepository
	eventLog  ports.EventLogRepository
	cursor    ports.EventCursor
	cfg       TrackingConfig
	log       zerolog.Logger
	now       func() time.Time
}

// NewTrackingService returns a TrackingService implementation.
func NewTrackingService(
	carrier ports.CarrierClient,
	snapshots ports.SnapshotRepository,
	eventLog ports.EventLogRepository,
	cursor ports.EventCursor,
	cfg TrackingConfig,
	log zerolog.Logger,
) ports.TrackingService {
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = defaultBatchConcurrency
	}
	return &trackingService{
		carrier:   carrier,
		snapshots: snapshots,
		eventLog:  eventLog,
		cursor:    cursor,
		cfg:       cfg,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Track validates raw, fetches the parcel and derives its summary.
func (s *trackingService) Track(ctx context.Context, raw string) (*ports.TrackingResult, error) {
	// 1. Malformed identifiers never reach the carrier.
	tn, err := domain.ParseTrackingNumber(raw)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("invalid_format").Inc()
		return nil, err
	}

	// 2. One round trip to the carrier.
	rawTracking, err := s.carrier.FetchTracking(ctx, tn)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues(lookupResult(err)).Inc()
		return nil, fmt.Errorf("track %s: %w", tn, err)
	}

	// 3. Decode codes and infer the phase.
	shipment, skipped, err := decodeShipment(rawTracking.Shipment, s.cfg.StrictCodes)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("decode_failed").Inc()
		return nil, fmt.Errorf("track %s: %w", tn, err)
	}
	for _, code := range skipped {
		metrics.UnknownEventCodesTotal.WithLabelValues(code).Inc()
		s.log.Warn().Str("tracking", tn.String()).Str("code", code).Msg("unknown event code skipped")
	}

	status, err := shipment.DeliveryStatus()
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("decode_failed").Inc()
		return nil, fmt.Errorf("track %s: %w", tn, err)
	}

	snap := &domain.Snapshot{
		TrackingNumber: tn.String(),
		Lang:           rawTracking.Lang,
		Scope:          rawTracking.Scope,
		Shipment:       shipment,
		DeliveryStatus: status,
		SkippedEvents:  len(skipped),
		FetchedAt:      s.now(),
	}

	// 4. Persistence is best effort; the caller still gets the lookup.
	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.log.Warn().Err(err).Str("tracking", tn.String()).Msg("failed to save snapshot")
	}
	newEvents := s.logNewEvents(ctx, tn.String(), &snap.Shipment)

	metrics.LookupsTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("tracking", tn.String()).
		Str("delivery_status", status.String()).
		Int("events", len(shipment.Events)).
		Int("new_events", len(newEvents)).
		Msg("parcel tracked")

	return &ports.TrackingResult{
		TrackingNumber: tn,
		Snapshot:       snap,
		DeliveryStatus: status,
		FirstEvent:     snap.Shipment.FirstEvent(),
		LastEvent:      snap.Shipment.LastEvent(),
		ShippingEvent:  snap.Shipment.ShippingEvent(),
		NewEvents:      newEvents,
		FetchedAt:      snap.FetchedAt,
	}, nil
}

// TrackBatch runs Track for every input with bounded concurrency. Items keep
// the input order and carry their own error.
func (s *trackingService) TrackBatch(ctx context.Context, raws []string) []ports.BatchItem {
	items := make([]ports.BatchItem, len(raws))

	var g errgroup.Group
	g.SetLimit(s.cfg.BatchConcurrency)
	for i, raw := range raws {
		i, raw := i, raw
		g.Go(func() error {
			res, err := s.Track(ctx, raw)
			items[i] = ports.BatchItem{Input: raw, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return items
}

// logNewEvents appends events above the stored cursor to the event log and
// advances the cursor. Failures are logged and yield no new events.
func (s *trackingService) logNewEvents(ctx context.Context, trackingNumber string, shipment *domain.Shipment) []domain.Event {
	last, err := s.cursor.Last(ctx, trackingNumber)
	if err != nil {
		s.log.Warn().Err(err).Str("tracking", trackingNumber).Msg("event cursor read failed")
		return nil
	}

	fresh := shipment.EventsAfter(last)
	if len(fresh) == 0 {
		return nil
	}

	if err := s.eventLog.AppendEvents(ctx, trackingNumber, fresh); err != nil {
		s.log.Warn().Err(err).Str("tracking", trackingNumber).Msg("failed to append events")
		return nil
	}
	if err := s.cursor.Advance(ctx, trackingNumber, fresh[len(fresh)-1].Order); err != nil {
		s.log.Warn().Err(err).Str("tracking", trackingNumber).Msg("failed to advance event cursor")
	}

	metrics.NewEventsTotal.Add(float64(len(fresh)))
	return fresh
}

func lookupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrParcelNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrCarrierUnauthorized):
		return "unauthorized"
	case errors.Is(err, domain.ErrCarrierRejectedFormat):
		return "rejected_format"
	default:
		return "carrier_unavailable"
	}
}
