package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"agency-campaigns/internal/config/configs"
)

// NewMongoClient connects to MongoDB with the provided configuration. The
// function verifies that the server answers by pinging the primary within
// cfg.ConnectTimeout. If pinging fails, the client is disconnected and an
// error is returned. The caller must disconnect the returned client when
// it is no longer needed.
func NewMongoClient(ctx context.Context, cfg configs.Mongo) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	// ping database with timeout to ensure connectivity
	ctxPing, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err = client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
