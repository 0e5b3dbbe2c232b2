package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roamstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a booking aggregate by its identifier.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Delete hard-deletes a booking aggregate. Callers should prefer
// cancellation for anything with financial history.
func (r *MongoBookingRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// SetReservationStatus transitions one line item, guarded on its prior
// status. The returned count is 0 when the guard did not match, which lets
// the service distinguish a lost race from a successful transition.
func (r *MongoBookingRepo) SetReservationStatus(ctx context.Context, bookingID, propertyID string, from []string, to, reason string) (int64, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"properties.$.status": to,
		"updated_at":          time.Now().UTC(),
	}
	if reason != "" {
		set["properties.$.cancellation_reason"] = reason
	}
	filter := bson.M{
		"id": bookingID,
		"properties": bson.M{"$elemMatch": bson.M{
			"property_id": propertyID,
			"status":      bson.M{"$in": from},
		}},
	}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("failed to set reservation status: %w", err)
	}
	return result.ModifiedCount, nil
}

// SetAllReservationStatuses applies the same guarded transition to every
// line item of the booking via an array filter.
func (r *MongoBookingRepo) SetAllReservationStatuses(ctx context.Context, bookingID string, from []string, to, reason string) (int64, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"properties.$[elem].status": to,
		"updated_at":                time.Now().UTC(),
	}
	if reason != "" {
		set["properties.$[elem].cancellation_reason"] = reason
	}
	arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.status": bson.M{"$in": from}}},
	})
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, bson.M{"$set": set}, arrayFilters)
	if err != nil {
		return 0, fmt.Errorf("failed to set reservation statuses: %w", err)
	}
	return result.ModifiedCount, nil
}

// SetAllPaymentStatuses stamps the payment status on every line item.
func (r *MongoBookingRepo) SetAllPaymentStatuses(ctx context.Context, bookingID, paymentStatus string) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"properties.$[].payment_status": paymentStatus,
		"updated_at":                    time.Now().UTC(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("failed to set payment statuses: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", bookingID)
	}
	return nil
}
