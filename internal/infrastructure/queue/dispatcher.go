package queue

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/99minutos/tracking-system/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrStopped is returned when enqueueing after the workers have exited.
var ErrStopped = errors.New("refresh dispatcher stopped")

// Refresher re-tracks one parcel. Implemented by ports.WatchService.
type Refresher interface {
	Refresh(ctx context.Context, trackingNumber string) error
}

// Dispatcher routes refreshes to a fixed set of workers using consistent
// hashing on the tracking number, so one parcel is never refreshed by two
// workers at the same time.
type Dispatcher struct {
	workers   []chan string
	refresher Refresher
	log       zerolog.Logger
	stopped   chan struct{}
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, refresher Refresher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan string, numWorkers),
		refresher: refresher,
		log:       log,
		stopped:   make(chan struct{}),
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which Enqueue no longer blocks.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Enqueue schedules a refresh on the worker owning trackingNumber. It blocks
// while that worker's buffer is full, until ctx is done or the workers stop.
func (d *Dispatcher) Enqueue(ctx context.Context, trackingNumber string) error {
	idx := d.shardIndex(trackingNumber)
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}
	select {
	case d.workers[idx] <- trackingNumber:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
	metrics.RefreshQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	return nil
}

// EnqueueBatch enqueues every tracking number in order and stops at the
// first one that cannot be queued.
func (d *Dispatcher) EnqueueBatch(ctx context.Context, trackingNumbers []string) error {
	for i, tn := range trackingNumbers {
		if err := d.Enqueue(ctx, tn); err != nil {
			return fmt.Errorf("enqueue %d of %d: %w", i+1, len(trackingNumbers), err)
		}
	}
	return nil
}

// shardIndex maps a tracking number deterministically to a worker index.
func (d *Dispatcher) shardIndex(trackingNumber string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(trackingNumber))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case tn, ok := <-ch:
			if !ok {
				return
			}
			metrics.RefreshQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.refresher.Refresh(ctx, tn); err != nil {
				d.log.Error().Err(err).
					Str("tracking", tn).
					Int("worker_id", id).
					Msg("refresh failed")
			}
		}
	}
}
