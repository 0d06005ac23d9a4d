package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCarrier struct {
	mu      sync.Mutex
	byID    map[string]*ports.RawTracking
	err     error
	fetched []string
}

func (c *stubCarrier) FetchTracking(_ context.Context, tn domain.TrackingNumber) (*ports.RawTracking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = append(c.fetched, tn.String())
	if c.err != nil {
		return nil, c.err
	}
	raw, ok := c.byID[tn.String()]
	if !ok {
		return nil, domain.ErrParcelNotFound
	}
	return raw, nil
}

type stubSnapshotRepo struct {
	mu      sync.Mutex
	saved   map[string]*domain.Snapshot
	saveErr error
}

func newStubSnapshotRepo() *stubSnapshotRepo {
	return &stubSnapshotRepo{saved: make(map[string]*domain.Snapshot)}
}

func (r *stubSnapshotRepo) Save(_ context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[s.TrackingNumber] = s
	return nil
}

func (r *stubSnapshotRepo) FindByTrackingNumber(_ context.Context, trackingNumber string) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.saved[trackingNumber]
	if !ok {
		return nil, domain.ErrParcelNotFound
	}
	return s, nil
}

type stubEventLog struct {
	mu        sync.Mutex
	appended  map[string][]domain.Event
	appendErr error
}

func newStubEventLog() *stubEventLog {
	return &stubEventLog{appended: make(map[string][]domain.Event)}
}

func (l *stubEventLog) AppendEvents(_ context.Context, trackingNumber string, events []domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.appendErr != nil {
		return l.appendErr
	}
	l.appended[trackingNumber] = append(l.appended[trackingNumber], events...)
	return nil
}

type stubCursor struct {
	mu      sync.Mutex
	orders  map[string]int
	lastErr error
}

func newStubCursor() *stubCursor {
	return &stubCursor{orders: make(map[string]int)}
}

func (c *stubCursor) Last(_ context.Context, trackingNumber string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orders[trackingNumber], c.lastErr
}

func (c *stubCursor) Advance(_ context.Context, trackingNumber string, order int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders[trackingNumber] = order
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const trackedID = "6A12345678912"

type trackingFixture struct {
	carrier   *stubCarrier
	snapshots *stubSnapshotRepo
	eventLog  *stubEventLog
	cursor    *stubCursor
}

func newTrackingFixture() *trackingFixture {
	return &trackingFixture{
		carrier: &stubCarrier{byID: map[string]*ports.RawTracking{
			trackedID: {Lang: "fr_FR", Scope: "open", ReturnCode: 200, Shipment: rawShipment("ET1", "PC1", "DR1")},
		}},
		snapshots: newStubSnapshotRepo(),
		eventLog:  newStubEventLog(),
		cursor:    newStubCursor(),
	}
}

func (f *trackingFixture) service(strict bool) ports.TrackingService {
	return NewTrackingService(f.carrier, f.snapshots, f.eventLog, f.cursor,
		TrackingConfig{StrictCodes: strict, BatchConcurrency: 2}, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestTrackingService_Track_HappyPath(t *testing.T) {
	f := newTrackingFixture()
	svc := f.service(true)

	res, err := svc.Track(context.Background(), "  "+trackedID+" ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TrackingNumber.String() != trackedID {
		t.Errorf("expected trimmed tracking number, got %q", res.TrackingNumber)
	}
	if res.DeliveryStatus != domain.DeliveryCollectedByCarrier {
		t.Errorf("expected collected_by_carrier, got %s", res.DeliveryStatus)
	}
	if res.ShippingEvent == nil || res.ShippingEvent.Status != domain.EventDeclared {
		t.Errorf("expected declared shipping event, got %+v", res.ShippingEvent)
	}
	if res.FirstEvent.Order != 1 || res.LastEvent.Order != 3 {
		t.Errorf("unexpected first/last: %+v / %+v", res.FirstEvent, res.LastEvent)
	}
	if _, ok := f.snapshots.saved[trackedID]; !ok {
		t.Error("expected snapshot to be saved")
	}
	if len(res.NewEvents) != 3 || len(f.eventLog.appended[trackedID]) != 3 {
		t.Errorf("expected 3 new events logged, got %d", len(res.NewEvents))
	}
	if f.cursor.orders[trackedID] != 3 {
		t.Errorf("expected cursor at 3, got %d", f.cursor.orders[trackedID])
	}
}

func TestTrackingService_Track_OnlyLogsUnseenEvents(t *testing.T) {
	f := newTrackingFixture()
	f.cursor.orders[trackedID] = 2
	svc := f.service(true)

	res, err := svc.Track(context.Background(), trackedID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.NewEvents) != 1 || res.NewEvents[0].Order != 3 {
		t.Errorf("expected only event 3 to be new, got %+v", res.NewEvents)
	}

	res, err = svc.Track(context.Background(), trackedID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.NewEvents) != 0 {
		t.Errorf("expected no new events on second lookup, got %+v", res.NewEvents)
	}
}

func TestTrackingService_Track_InvalidFormatNeverReachesCarrier(t *testing.T) {
	f := newTrackingFixture()
	svc := f.service(true)

	_, err := svc.Track(context.Background(), "123")
	if !errors.Is(err, domain.ErrInvalidTrackingNumber) {
		t.Fatalf("expected ErrInvalidTrackingNumber, got %v", err)
	}
	if len(f.carrier.fetched) != 0 {
		t.Errorf("carrier must not be called, got %v", f.carrier.fetched)
	}
}

func TestTrackingService_Track_CarrierErrorPropagates(t *testing.T) {
	f := newTrackingFixture()
	f.carrier.err = domain.ErrCarrierUnauthorized
	svc := f.service(true)

	_, err := svc.Track(context.Background(), trackedID)
	if !errors.Is(err, domain.ErrCarrierUnauthorized) {
		t.Fatalf("expected ErrCarrierUnauthorized, got %v", err)
	}
}

func TestTrackingService_Track_UnknownCodePolicy(t *testing.T) {
	f := newTrackingFixture()
	f.carrier.byID[trackedID].Shipment = rawShipment("DR1", "QQ1")

	if _, err := f.service(true).Track(context.Background(), trackedID); !errors.Is(err, domain.ErrUnknownEventCode) {
		t.Fatalf("strict: expected ErrUnknownEventCode, got %v", err)
	}

	res, err := f.service(false).Track(context.Background(), trackedID)
	if err != nil {
		t.Fatalf("lenient: unexpected error: %v", err)
	}
	if res.Snapshot.SkippedEvents != 1 || len(res.Snapshot.Shipment.Events) != 1 {
		t.Errorf("lenient: expected one skipped event, got %+v", res.Snapshot)
	}
}

func TestTrackingService_Track_NoProgress(t *testing.T) {
	f := newTrackingFixture()
	f.carrier.byID[trackedID].Shipment.Timeline = []ports.RawTimelineStep{{ID: 7, Status: true}}

	_, err := f.service(true).Track(context.Background(), trackedID)
	if !errors.Is(err, domain.ErrNoProgress) {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}
}

func TestTrackingService_Track_PersistenceFailuresAreNotFatal(t *testing.T) {
	f := newTrackingFixture()
	f.snapshots.saveErr = errors.New("mongo down")
	f.eventLog.appendErr = errors.New("mongo down")
	svc := f.service(true)

	res, err := svc.Track(context.Background(), trackedID)
	if err != nil {
		t.Fatalf("expected lookup to succeed, got %v", err)
	}
	if len(res.NewEvents) != 0 {
		t.Errorf("expected no new events when the log is unavailable")
	}
	if f.cursor.orders[trackedID] != 0 {
		t.Errorf("cursor must not advance when append fails")
	}
}

func TestTrackingService_TrackBatch_KeepsOrderAndErrors(t *testing.T) {
	f := newTrackingFixture()
	svc := f.service(true)

	inputs := []string{trackedID, "bad", "LA12345678901", trackedID}
	items := svc.TrackBatch(context.Background(), inputs)

	if len(items) != len(inputs) {
		t.Fatalf("expected %d items, got %d", len(inputs), len(items))
	}
	for i, item := range items {
		if item.Input != inputs[i] {
			t.Errorf("item %d: expected input %q, got %q", i, inputs[i], item.Input)
		}
	}
	if items[0].Err != nil || items[0].Result == nil {
		t.Errorf("item 0: unexpected %+v", items[0])
	}
	if !errors.Is(items[1].Err, domain.ErrInvalidTrackingNumber) {
		t.Errorf("item 1: expected invalid format, got %v", items[1].Err)
	}
	if !errors.Is(items[2].Err, domain.ErrParcelNotFound) {
		t.Errorf("item 2: expected not found, got %v", items[2].Err)
	}
	if items[3].Err != nil {
		t.Errorf("item 3: unexpected error %v", items[3].Err)
	}
}
