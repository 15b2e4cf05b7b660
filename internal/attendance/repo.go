package attendance

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rollcall/internal/store"
)

// Collection name matches the data laid down by earlier deployments.
const collStudents = "students"

// MongoRepository persists attendance records in the students collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository creates a repo over db's students collection.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collStudents)}
}

// EnsureIndexes creates the unique (date, name) index guarding against
// duplicate roster entries. Safe to run on every startup.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Insert writes a new record. The unique index is the only duplicate guard,
// so concurrent creates for the same pair resolve to a single winner.
func (r *MongoRepository) Insert(ctx context.Context, rec Record) (Record, error) {
	rec.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Record{}, fmt.Errorf("%w: %s already has a record for %s", store.ErrConflict, rec.Name, rec.Date)
		}
		return Record{}, err
	}
	return rec, nil
}

// FindByDate returns every record for one day.
func (r *MongoRepository) FindByDate(ctx context.Context, date string) ([]Record, error) {
	cur, err := r.col.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, err
	}
	var recs []Record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// UpdatePresence sets is_present on the (name, date) record and returns the
// updated document. recorded_at is deliberately left untouched.
func (r *MongoRepository) UpdatePresence(ctx context.Context, name, date string, present bool) (Record, error) {
	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"name": name, "date": date},
		bson.M{"$set": bson.M{"is_present": present}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var rec Record
	if err := res.Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Record{}, fmt.Errorf("%w: no record for %s on %s", store.ErrNotFound, name, date)
		}
		return Record{}, err
	}
	return rec, nil
}

// DeleteAll clears the roster.
func (r *MongoRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
