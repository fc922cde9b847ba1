package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"agency-campaigns/internal/core/domain"
)

// Store implements port.AgencyRepository and port.StoreProbe on top of a
// MongoDB database. Each domain.Collection maps to one MongoDB collection.
type Store struct {
	db  *mongo.Database
	now func() time.Time
}

// NewStore returns a store backed by db. The caller owns the client behind
// db and disconnects it on shutdown.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *Store) collection(c domain.Collection) *mongo.Collection {
	return s.db.Collection(c.String())
}

// listDocuments returns every document of coll matching filter, in the
// order the store reports them. A nil filter matches everything.
func listDocuments[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, storageErr("find", coll, err)
	}
	docs := make([]T, 0)
	if err = cur.All(ctx, &docs); err != nil {
		return nil, storageErr("decode", coll, err)
	}
	return docs, nil
}

// createDocument inserts doc and returns the generated id as a hex string.
func createDocument(ctx context.Context, coll *mongo.Collection, doc any) (string, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", storageErr("insert", coll, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// findByID looks up a document by its hex id. A malformed id yields
// domain.ErrInvalidID and a missing document yields (nil, nil).
func findByID[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	var doc T
	err = coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("find one", coll, err)
	}
	return &doc, nil
}

// byParent filters on a reference field; an empty id matches everything.
func byParent(field, id string) bson.M {
	if id == "" {
		return bson.M{}
	}
	return bson.M{field: id}
}

func storageErr(op string, coll *mongo.Collection, err error) error {
	return &domain.StorageError{Op: op + " " + coll.Name(), Err: err}
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping checks the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// ListCollectionNames returns the collections of the database.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
