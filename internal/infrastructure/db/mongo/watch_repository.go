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

const collectionWatches = "watches"

type WatchRepository struct {
	col *mongo.Collection
}

func NewWatchRepository(db *mongo.Database) *WatchRepository {
	return &WatchRepository{col: db.Collection(collectionWatches)}
}

var _ ports.WatchRepository = (*WatchRepository)(nil)

// Create inserts a new watch document.
func (r *WatchRepository) Create(ctx context.Context, w *domain.Watch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, w); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrWatchExists
		}
		return err
	}
	return nil
}

func (r *WatchRepository) FindByID(ctx context.Context, id string) (*domain.Watch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var w domain.Watch
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&w); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWatchNotFound
		}
		return nil, err
	}
	return &w, nil
}

// List returns watches matching filter, oldest first.
func (r *WatchRepository) List(ctx context.Context, f ports.WatchFilter) ([]*domain.Watch, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.ClientID != "" {
		filter["client_id"] = f.ClientID
	}
	if f.TrackingNumber != "" {
		filter["tracking_number"] = f.TrackingNumber
	}
	if f.ActiveOnly {
		filter["active"] = true
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	watches := make([]*domain.Watch, 0)
	if err := cur.All(ctx, &watches); err != nil {
		return nil, err
	}
	return watches, nil
}

// Update replaces the refresh fields of an existing watch.
func (r *WatchRepository) Update(ctx context.Context, w *domain.Watch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"delivery_status": w.DeliveryStatus,
		"last_event":      w.LastEvent,
		"active":          w.Active,
		"updated_at":      w.UpdatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": w.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrWatchNotFound
	}
	return nil
}

func (r *WatchRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrWatchNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes used by List and the per-client
// uniqueness constraint.
func (r *WatchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "tracking_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "active", Value: 1}, {Key: "tracking_number", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
