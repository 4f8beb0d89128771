package infra

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectMongo builds a client without waiting for the server, so the API
// can start (and answer /health) while the database is still unreachable.
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration, logger *zap.Logger) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetAppName("planmyday")

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	logger.Info("MongoDB client created", zap.String("uri", redactURI(uri)))
	return client, nil
}

func DisconnectMongo(ctx context.Context, client *mongo.Client, logger *zap.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("Error disconnecting MongoDB", zap.Error(err))
		return
	}
	logger.Info("MongoDB connection closed")
}
