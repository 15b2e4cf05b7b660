package announcement

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collAnnouncements = "announcements"

// MongoRepository stores announcements in the announcements collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a repository over the given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collAnnouncements)}
}

// Insert stores a new announcement and returns it with its generated id.
func (r *MongoRepository) Insert(ctx context.Context, ann Announcement) (Announcement, error) {
	ann.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, ann); err != nil {
		return Announcement{}, fmt.Errorf("insert announcement: %w", err)
	}
	return ann, nil
}

// FindAll returns every announcement, newest first.
func (r *MongoRepository) FindAll(ctx context.Context) ([]Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "posted_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find announcements: %w", err)
	}
	var anns []Announcement
	if err := cur.All(ctx, &anns); err != nil {
		return nil, fmt.Errorf("decode announcements: %w", err)
	}
	return anns, nil
}

// DeleteAll removes every announcement and returns the removed count.
func (r *MongoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete announcements: %w", err)
	}
	return res.DeletedCount, nil
}
