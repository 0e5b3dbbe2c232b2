package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roamstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter matches bookings holding a non-cancelled reservation on the
// property whose half-open interval intersects [start, end).
func overlapFilter(propertyID string, start, end time.Time, excludeBookingID string) bson.M {
	filter := bson.M{
		"properties": bson.M{"$elemMatch": bson.M{
			"property_id": propertyID,
			"status":      bson.M{"$ne": models.StatusCancelled},
			"start_date":  bson.M{"$lt": end},
			"end_date":    bson.M{"$gt": start},
		}},
	}
	if excludeBookingID != "" {
		filter["id"] = bson.M{"$ne": excludeBookingID}
	}
	return filter
}

// CountOverlapping counts conflicting reservations for an admission check.
func (r *MongoBookingRepo) CountOverlapping(ctx context.Context, propertyID string, start, end time.Time, excludeBookingID string) (int64, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, overlapFilter(propertyID, start, end, excludeBookingID))
	if err != nil {
		return 0, fmt.Errorf("overlap count failed for property %s: %w", propertyID, err)
	}
	return count, nil
}

func (r *MongoBookingRepo) findAll(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// GetAll returns every booking aggregate, newest first.
func (r *MongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{}, opts)
}

// GetByUser returns the requesting guest's own bookings.
func (r *MongoBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{"user_id": userID}, opts)
}

// GetByHost returns bookings containing at least one reservation on one of
// the host's properties. Filtering the line items down to that host is the
// service's job.
func (r *MongoBookingRepo) GetByHost(ctx context.Context, hostID string) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.findAll(ctx, bson.M{"properties.host_id": hostID}, opts)
}

// GetInRange returns bookings with at least one reservation intersecting the
// query window.
func (r *MongoBookingRepo) GetInRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"properties": bson.M{"$elemMatch": bson.M{
			"start_date": bson.M{"$lt": end},
			"end_date":   bson.M{"$gt": start},
		}},
	}
	return r.findAll(ctx, filter)
}

// FindStalePending lists bookings created before the cutoff that still carry
// at least one pending line item.
func (r *MongoBookingRepo) FindStalePending(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"properties.status": models.StatusPending,
		"created_at":        bson.M{"$lt": cutoff},
	}
	return r.findAll(ctx, filter)
}

// HostRevenue sums total_price over completed line items. An empty hostID
// aggregates platform-wide.
func (r *MongoBookingRepo) HostRevenue(ctx context.Context, hostID string) (float64, int, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{"properties.status": models.StatusCompleted}
	if hostID != "" {
		match["properties.host_id"] = hostID
	}
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$properties"}},
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"gross": bson.M{"$sum": "$properties.total_price"},
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("revenue aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Gross float64 `bson:"gross"`
		Count int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode revenue result: %w", err)
		}
	}
	return result.Gross, result.Count, nil
}
