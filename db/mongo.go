package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"summarly/config"
	"summarly/logger"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig()

		cl, err := mongo.NewClient(options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			initErr = err
			return
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := cl.Connect(ctx); err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.Mongo.DBName)

		if err := ensureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Ping verifies the connection, used by the health endpoint.
func Ping(ctx context.Context) error {
	if db == nil {
		return mongo.ErrClientDisconnected
	}
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// summaries: created_at asc for listing in insertion order
	{
		mi := mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_created_at"),
		}
		if _, err := d.Collection("summaries").Indexes().CreateOne(ctx, mi); err != nil {
			return err
		}
	}
	return nil
}
