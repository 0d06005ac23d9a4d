package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

const (
	collectionTrackingEvents = "tracking_events"
	duplicateKeyCode         = 11000
)

// EventLogRepository implements ports.EventLogRepository using MongoDB.
type EventLogRepository struct {
	col *mongo.Collection
}

// NewEventLogRepository creates a new EventLogRepository.
func NewEventLogRepository(db *mongo.Database) *EventLogRepository {
	return &EventLogRepository{col: db.Collection(collectionTrackingEvents)}
}

var _ ports.EventLogRepository = (*EventLogRepository)(nil)

// AppendEvents inserts one document per event into the tracking_events
// collection. Re-appending an already logged event is ignored thanks to the
// unique (tracking_number, order) index.
func (r *EventLogRepository) AppendEvents(ctx context.Context, trackingNumber string, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(events))
	for _, e := range events {
		docs = append(docs, bson.M{
			"tracking_number": trackingNumber,
			"order":           e.Order,
			"date":            e.Date,
			"label":           e.Label,
			"status":          string(e.Status),
			"code":            e.Status.Code(),
			"logged_at":       now,
		})
	}

	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if onlyDuplicateKeys(err) {
		return nil
	}
	return err
}

// onlyDuplicateKeys reports whether err is a bulk write failure made up of
// duplicate key errors alone. Any other write or write concern error keeps
// the whole insert failing.
func onlyDuplicateKeys(err error) bool {
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) {
		return false
	}
	if bwe.WriteConcernError != nil || len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != duplicateKeyCode {
			return false
		}
	}
	return true
}

// EnsureIndexes creates the unique (tracking_number, order) index.
func (r *EventLogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tracking_number", Value: 1}, {Key: "order", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
