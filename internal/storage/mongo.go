package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const storesCollection = "stores"

// Connect opens a MongoDB connection and verifies it with a ping. The
// returned closer disconnects the client.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, func(context.Context) error, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client.Database(database), client.Disconnect, nil
}

// MongoRepository implements Repository using MongoDB.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates a store repository on the given database.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(storesCollection)}
}

func (r *MongoRepository) Create(ctx context.Context, store *Store) (*Store, error) {
	now := time.Now().UTC()
	store.ID = primitive.NewObjectID()
	store.CreatedAt = now
	store.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, store); err != nil {
		return nil, fmt.Errorf("inserting store: %w", err)
	}
	return store, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, store *Store) (*Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	store.ID = oid
	store.UpdatedAt = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, store)
	if err != nil {
		return nil, fmt.Errorf("replacing store: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return store, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*Store, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var store Store
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&store); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding store: %w", err)
	}
	return &store, nil
}

func (r *MongoRepository) FindPage(ctx context.Context, limit, offset int64) ([]Store, int64, error) {
	return r.findPage(ctx, bson.M{}, limit, offset)
}

func (r *MongoRepository) FindByState(ctx context.Context, state string, limit, offset int64) ([]Store, int64, error) {
	return r.findPage(ctx, bson.M{"address.state": state}, limit, offset)
}

func (r *MongoRepository) findPage(ctx context.Context, filter bson.M, limit, offset int64) ([]Store, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("counting stores: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSkip(offset).SetLimit(limit).SetSort(bson.D{{Key: "storeName", Value: 1}}))
	if err != nil {
		return nil, 0, fmt.Errorf("finding stores: %w", err)
	}
	defer cursor.Close(ctx)

	stores := make([]Store, 0, limit)
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, 0, fmt.Errorf("decoding stores: %w", err)
	}
	return stores, total, nil
}

var _ Repository = (*MongoRepository)(nil)
