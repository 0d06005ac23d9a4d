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

const collectionSnapshots = "snapshots"

// SnapshotRepository implements ports.SnapshotRepository using MongoDB. One
// document per tracking number holds the latest lookup.
type SnapshotRepository struct {
	col *mongo.Collection
}

func NewSnapshotRepository(db *mongo.Database) *SnapshotRepository {
	return &SnapshotRepository{col: db.Collection(collectionSnapshots)}
}

var _ ports.SnapshotRepository = (*SnapshotRepository)(nil)

// Save upserts the snapshot keyed by tracking number.
func (r *SnapshotRepository) Save(ctx context.Context, s *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"tracking_number": s.TrackingNumber}
	_, err := r.col.ReplaceOne(ctx, filter, s, options.Replace().SetUpsert(true))
	return err
}

func (r *SnapshotRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Snapshot
	err := r.col.FindOne(ctx, bson.M{"tracking_number": trackingNumber}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrParcelNotFound
		}
		return nil, err
	}
	return &s, nil
}

// EnsureIndexes creates the unique tracking number index.
func (r *SnapshotRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tracking_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
