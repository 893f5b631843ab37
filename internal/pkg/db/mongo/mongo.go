package mongo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"supportapi/internal/pkg/config"
	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func ConnectToMongoDB(ctx context.Context, cfg config.MongoConfig) (*MongoClient, error) {
	return connectWithConnector(ctx, cfg, &DefaultMongoConnector{})
}

func connectWithConnector(ctx context.Context, cfg config.MongoConfig, connector MongoConnector) (*MongoClient, error) {

	// Redact credentials for safe logging
	safeURI := redactMongoURI(cfg.URI)

	logger.CtxInfo(ctx, "Connecting to MongoDB",
		slog.String("uri", safeURI),
		slog.String("database", cfg.DBName),
	)

	connectTimeout := cfg.ConnectTimeout
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout * 2).
		SetSocketTimeout(connectTimeout * 3).
		SetHeartbeatInterval(10 * time.Second).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := connector.Connect(ctx, clientOpts)
	if err != nil {
		logger.CtxError(ctx, "Failed to connect to MongoDB", err,
			slog.String("uri", safeURI),
			slog.String("database", cfg.DBName),
		)
		return nil, err
	}

	if err := connector.Ping(ctx, client); err != nil {
		logger.CtxError(ctx, "MongoDB ping failed", err,
			slog.String("uri", safeURI),
			slog.String("database", cfg.DBName),
		)
		return nil, err
	}

	logger.CtxInfo(ctx, "Successfully connected to MongoDB",
		slog.String("uri", safeURI),
		slog.String("database", cfg.DBName),
	)

	db := client.Database(cfg.DBName)

	return &MongoClient{
		Client:   client,
		Database: db,
	}, nil
}

func Disconnect(client *mongo.Client) error {
	return client.Disconnect(context.Background())
}

// EnsureLedgerIndexes creates the indexes the payment ledger relies on.
// The unique {loanAccountNumber, sequence} index is what turns a lost
// optimistic race into a duplicate-key error instead of a corrupted chain.
func EnsureLedgerIndexes(ctx context.Context, db *mongo.Database) error {
	payments := db.Collection(consts.LoanPaymentsCollection)
	_, err := payments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "loanAccountNumber", Value: 1},
				{Key: "sequence", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "loanAccountNumber", Value: 1},
				{Key: "paymentDate", Value: -1},
				{Key: "sequence", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		logger.CtxError(ctx, "Failed to create loan payment indexes", err)
		return err
	}

	accounts := db.Collection(consts.LoanAccountsCollection)
	_, err = accounts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "loanAccountNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "customerId", Value: 1}},
		},
	})
	if err != nil {
		logger.CtxError(ctx, "Failed to create loan account indexes", err)
		return err
	}

	customers := db.Collection(consts.CustomersCollection)
	_, err = customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "customerId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.CtxError(ctx, "Failed to create customer indexes", err)
		return err
	}

	return nil
}

// redactMongoURI hides username and password from a MongoDB URI
func redactMongoURI(uri string) string {
	parts := strings.SplitN(uri, "@", 2)
	if len(parts) == 2 {
		return "mongodb://***:***@" + parts[1]
	}
	return uri // fallback
}
