package propertyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roamstay/database"
	"roamstay/models"
	"roamstay/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoPropertyRepo implements PropertyRepository using MongoDB.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo creates a PropertyRepository backed by the
// "properties" collection.
func NewMongoPropertyRepo() PropertyRepository {
	repo := &MongoPropertyRepo{coll: database.Collection("properties")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("property repo: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoPropertyRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
		{Keys: bson.D{{Key: "address.city", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoPropertyRepo) Create(ctx context.Context, property *models.Property) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *MongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var property models.Property
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&property); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch property with id %s: %w", id, err)
	}
	return &property, nil
}

func (r *MongoPropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.findAll(ctx, bson.M{})
}

func (r *MongoPropertyRepo) GetByHost(ctx context.Context, hostID string) ([]models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.findAll(ctx, bson.M{"host_id": hostID})
}

func (r *MongoPropertyRepo) findAll(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve properties: %w", err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return properties, nil
}

func (r *MongoPropertyRepo) Update(ctx context.Context, property *models.Property) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": property.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": property})
	if err != nil {
		return fmt.Errorf("failed to update property with id %s: %w", property.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", property.ID)
	}
	return nil
}

func (r *MongoPropertyRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete property with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// Resolve returns identity, host and current rate for the booking engine.
func (r *MongoPropertyRepo) Resolve(ctx context.Context, id string) (*models.PropertyRef, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{
		"id":              1,
		"host_id":         1,
		"price_per_night": 1,
	})
	var doc struct {
		ID            string  `bson:"id"`
		HostID        string  `bson:"host_id"`
		PricePerNight float64 `bson:"price_per_night"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve property %s: %w", id, err)
	}
	return &models.PropertyRef{ID: doc.ID, HostID: doc.HostID, PricePerNight: doc.PricePerNight}, nil
}

func (r *MongoPropertyRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"rating": rating, "updated_at": time.Now().UTC()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for property %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}
