package bookingRepo

import (
	"context"
	"errors"
	"time"

	"roamstay/database"
	"roamstay/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrOverlapDetected is returned when the commit-time re-validation finds a
// conflicting reservation that the initial availability read missed.
var ErrOverlapDetected = errors.New("overlapping reservation detected at commit time")

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings"
// collection.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		// Queries still work without the indexes, just slower.
		utils.GetLogger().Warn("booking repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

// withTimeout bounds a repository call without discarding the caller's
// cancellation.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}
