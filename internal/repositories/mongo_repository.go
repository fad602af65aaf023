package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository is a MongoDB implementation of Repository. Documents are
// keyed by the hex form of a fresh ObjectID stored as a string _id.
type MongoRepository[T any, P Document[T]] struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a new instance of MongoRepository over coll.
func NewMongoRepository[T any, P Document[T]](coll *mongo.Collection) *MongoRepository[T, P] {
	return &MongoRepository[T, P]{
		coll: coll,
	}
}

// EnsureIndexes creates an ascending, non-unique index per lookup field.
func (r *MongoRepository[T, P]) EnsureIndexes(ctx context.Context, fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	indexes := make([]mongo.IndexModel, 0, len(fields))
	for _, field := range fields {
		indexes = append(indexes, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", r.coll.Name(), err)
	}
	return nil
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

// Insert stores a new document.
func (r *MongoRepository[T, P]) Insert(ctx context.Context, entity *T) error {
	P(entity).SetID(primitive.NewObjectID().Hex())
	if _, err := r.coll.InsertOne(ctx, entity); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return nil
}

// Save replaces an existing document.
func (r *MongoRepository[T, P]) Save(ctx context.Context, entity *T) error {
	id := P(entity).GetID()
	res, err := r.coll.ReplaceOne(ctx, byID(id), entity)
	if err != nil {
		return fmt.Errorf("failed to replace %s %s: %w", r.coll.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID retrieves a document by its id.
func (r *MongoRepository[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s by id %s: %w", r.coll.Name(), id, err)
	}
	return &item, nil
}

func (r *MongoRepository[T, P]) find(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	list := make([]T, 0)
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// FindAll retrieves every document in natural order.
func (r *MongoRepository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	list, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", r.coll.Name(), err)
	}
	return list, nil
}

// FindByField retrieves the documents whose field equals value.
func (r *MongoRepository[T, P]) FindByField(ctx context.Context, field, value string) ([]T, error) {
	list, err := r.find(ctx, bson.M{field: value})
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.coll.Name(), field, err)
	}
	return list, nil
}

func (r *MongoRepository[T, P]) exists(ctx context.Context, filter bson.M) (bool, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, filter, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExistsByField reports whether any document has field equal to value.
func (r *MongoRepository[T, P]) ExistsByField(ctx context.Context, field, value string) (bool, error) {
	ok, err := r.exists(ctx, bson.M{field: value})
	if err != nil {
		return false, fmt.Errorf("failed to check %s by %s: %w", r.coll.Name(), field, err)
	}
	return ok, nil
}

// ExistsByID reports whether a document with id exists.
func (r *MongoRepository[T, P]) ExistsByID(ctx context.Context, id string) (bool, error) {
	ok, err := r.exists(ctx, byID(id))
	if err != nil {
		return false, fmt.Errorf("failed to check %s by id: %w", r.coll.Name(), err)
	}
	return ok, nil
}

// DeleteByID removes a document by its id.
func (r *MongoRepository[T, P]) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.coll.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
