// Copyright (c) 2026 Shadow Trails. All rights reserved.
// Author: bao.trinh.dn@gmail.com

/*
Package mongo manages the long-lived MongoDB client for the platform.

The client owns a connection pool internally; it is created once at startup,
injected into repositories, and disconnected once at shutdown. No handler or
service ever captures it from an enclosing closure.

Core Responsibilities:

  - Lifecycle: Connect at startup, verified by ping; Disconnect at shutdown.
  - Injection: Collections are handed to repositories by the composition root.
  - Safety: Connection failures surface at startup, not on first request.
*/
package mongo

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated default timeouts for MongoDB operations.
const (
	connectTimeout = 10 * time.Second
	pingTimeout    = 2 * time.Second
)

// NewClient connects to MongoDB and verifies the connection with a ping.
//
// # Parameters
//   - context: Context for the initial connect and ping.
//   - mongoURL: mongodb:// connection URL.
//   - logger: Structured logger for connection events.
func NewClient(context stdctx.Context, mongoURL string, logger *slog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := stdctx.WithTimeout(context, connectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect failed: %w", err)
	}

	// Validate connectivity immediately at startup.
	if err := Ping(context, client); err != nil {
		_ = client.Disconnect(context)
		return nil, err
	}

	logger.Info("mongo client connected")

	return client, nil
}

// Ping verifies that the MongoDB client is healthy.
func Ping(context stdctx.Context, client *mongo.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo: ping failed: %w", err)
	}

	return nil
}

// Disconnect closes the client and all pooled connections.
func Disconnect(context stdctx.Context, client *mongo.Client, logger *slog.Logger) {
	disconnectCtx, cancel := stdctx.WithTimeout(context, connectTimeout)
	defer cancel()

	if err := client.Disconnect(disconnectCtx); err != nil {
		logger.Error("mongo disconnect error", slog.Any("error", err))
	}
}
