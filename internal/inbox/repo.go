package inbox

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rollcall/internal/store"
)

const collMessages = "student_messages"

// MongoRepository stores messages in the student_messages collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a repository over the given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collMessages)}
}

// Insert stores a new message and returns it with its generated id.
func (r *MongoRepository) Insert(ctx context.Context, msg Message) (Message, error) {
	msg.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// FindAll returns every message, newest first.
func (r *MongoRepository) FindAll(ctx context.Context) ([]Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "received_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	var msgs []Message
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return msgs, nil
}

// DeleteByID removes one message. Ids that are malformed or match nothing
// both report not found; callers cannot tell the two apart and should not.
func (r *MongoRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: no message with id %s", store.ErrNotFound, id)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: no message with id %s", store.ErrNotFound, id)
	}
	return nil
}
