package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the indexes the overlap and sweep queries rely on.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := withTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Compound index driving the interval-overlap scan.
	overlapIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "properties.property_id", Value: 1},
			{Key: "properties.status", Value: 1},
			{Key: "properties.start_date", Value: 1},
			{Key: "properties.end_date", Value: 1},
		},
	}
	// Partial index for the stale-pending sweep: only bookings that still
	// carry a pending line item.
	sweepOpts := options.Index().SetPartialFilterExpression(bson.M{
		"properties.status": "pending",
	})
	sweepIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: sweepOpts,
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "properties.host_id", Value: 1}}},
		overlapIdx,
		sweepIdx,
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
