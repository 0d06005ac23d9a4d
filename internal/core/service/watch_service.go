package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
	"github.com/99minutos/tracking-system/internal/pkg/metrics"
)

type watchService struct {
	repo      ports.WatchRepository
	snapshots ports.SnapshotRepository
	tracking  ports.TrackingService
	log       zerolog.Logger
	now       func() time.Time
}

// NewWatchService returns a WatchService implementation.
func NewWatchService(
	repo ports.WatchRepository,
	snapshots ports.SnapshotRepository,
	tracking ports.TrackingService,
	log zerolog.Logger,
) ports.WatchService {
	return &watchService{
		repo:      repo,
		snapshots: snapshots,
		tracking:  tracking,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Add registers a watch for the caller. The tracking number is validated
// before anything is stored.
func (s *watchService) Add(ctx context.Context, in ports.AddWatchInput) (*domain.Watch, error) {
	tn, err := domain.ParseTrackingNumber(in.TrackingNumber)
	if err != nil {
		return nil, err
	}

	now := s.now()
	w := &domain.Watch{
		ID:             uuid.NewString(),
		TrackingNumber: tn.String(),
		ClientID:       in.Caller.ClientID,
		Label:          in.Label,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("add watch: %w", err)
	}

	metrics.WatchesCreatedTotal.Inc()
	s.log.Info().Str("watch_id", w.ID).Str("tracking", w.TrackingNumber).Str("client_id", w.ClientID).Msg("watch created")
	return w, nil
}

func (s *watchService) Get(ctx context.Context, id string, caller ports.Caller) (*domain.Watch, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !w.VisibleTo(caller.Role, caller.ClientID) {
		return nil, domain.ErrForbidden
	}
	return w, nil
}

// Snapshot returns the last stored lookup of the watched parcel.
func (s *watchService) Snapshot(ctx context.Context, id string, caller ports.Caller) (*domain.Snapshot, error) {
	w, err := s.Get(ctx, id, caller)
	if err != nil {
		return nil, err
	}
	return s.snapshots.FindByTrackingNumber(ctx, w.TrackingNumber)
}

// List returns every watch for admins and the caller's own watches otherwise.
func (s *watchService) List(ctx context.Context, caller ports.Caller) ([]*domain.Watch, error) {
	var filter ports.WatchFilter
	if caller.Role != domain.RoleAdmin {
		filter.ClientID = caller.ClientID
	}
	return s.repo.List(ctx, filter)
}

func (s *watchService) Remove(ctx context.Context, id string, caller ports.Caller) error {
	if _, err := s.Get(ctx, id, caller); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove watch: %w", err)
	}
	s.log.Info().Str("watch_id", id).Msg("watch removed")
	return nil
}

// Refresh tracks the parcel once and applies the result to every active
// watch on it. Watches of delivered or final shipments are deactivated.
func (s *watchService) Refresh(ctx context.Context, trackingNumber string) error {
	watches, err := s.repo.List(ctx, ports.WatchFilter{TrackingNumber: trackingNumber, ActiveOnly: true})
	if err != nil {
		return fmt.Errorf("refresh %s: %w", trackingNumber, err)
	}
	if len(watches) == 0 {
		return nil
	}

	res, err := s.tracking.Track(ctx, trackingNumber)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("refresh %s: %w", trackingNumber, err)
	}

	now := s.now()
	for _, w := range watches {
		w.Apply(res.Snapshot, now)
		if err := s.repo.Update(ctx, w); err != nil {
			s.log.Warn().Err(err).Str("watch_id", w.ID).Msg("failed to update watch")
			continue
		}
		if !w.Active {
			metrics.RefreshesTotal.WithLabelValues("completed").Inc()
			s.log.Info().Str("watch_id", w.ID).Str("tracking", trackingNumber).Msg("watch completed")
			continue
		}
		metrics.RefreshesTotal.WithLabelValues("ok").Inc()
	}
	return nil
}

func (s *watchService) ActiveTrackingNumbers(ctx context.Context) ([]string, error) {
	watches, err := s.repo.List(ctx, ports.WatchFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("list active watches: %w", err)
	}

	seen := make(map[string]struct{}, len(watches))
	out := make([]string, 0, len(watches))
	for _, w := range watches {
		if _, ok := seen[w.TrackingNumber]; ok {
			continue
		}
		seen[w.TrackingNumber] = struct{}{}
		out = append(out, w.TrackingNumber)
	}
	return out, nil
}
