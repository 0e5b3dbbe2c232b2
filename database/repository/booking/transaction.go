package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"roamstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// runTxn executes fn inside a transaction on a fresh session, aborting on
// any error.
func (r *MongoBookingRepo) runTxn(ctx context.Context, fn func(mongo.SessionContext) error) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}

// CreateWithOverlapCheck inserts the booking and then, still inside the
// transaction, re-runs the overlap count for every line item excluding the
// booking itself. The availability read the service performed earlier is
// only advisory; this re-validation is what actually guarantees that two
// concurrent creations for the same interval cannot both commit.
func (r *MongoBookingRepo) CreateWithOverlapCheck(ctx context.Context, booking *models.Booking) error {
	return r.runTxn(ctx, func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		for _, res := range booking.Properties {
			count, err := r.coll.CountDocuments(sc,
				overlapFilter(res.PropertyID, res.StartDate, res.EndDate, booking.ID))
			if err != nil {
				return fmt.Errorf("overlap re-validation failed: %w", err)
			}
			if count > 0 {
				return ErrOverlapDetected
			}
		}
		return nil
	})
}

// UpdateReservationDates moves one line item's stay and, still inside the
// transaction, re-runs the overlap count for the new interval excluding the
// booking itself. Like creation, the earlier availability read is advisory;
// a conflicting reservation that committed in the meantime aborts the move
// with ErrOverlapDetected. Status is deliberately left untouched.
func (r *MongoBookingRepo) UpdateReservationDates(ctx context.Context, bookingID, propertyID string, start, end time.Time) error {
	return r.runTxn(ctx, func(sc mongo.SessionContext) error {
		filter := bson.M{"id": bookingID, "properties.property_id": propertyID}
		update := bson.M{
			"$set": bson.M{
				"properties.$.start_date": start,
				"properties.$.end_date":   end,
				"updated_at":              time.Now().UTC(),
			},
		}
		result, err := r.coll.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update reservation dates: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("booking %s has no reservation for property %s", bookingID, propertyID)
		}

		count, err := r.coll.CountDocuments(sc, overlapFilter(propertyID, start, end, bookingID))
		if err != nil {
			return fmt.Errorf("overlap re-validation failed: %w", err)
		}
		if count > 0 {
			return ErrOverlapDetected
		}
		return nil
	})
}
