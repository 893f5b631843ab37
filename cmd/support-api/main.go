package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"supportapi/internal/app/router"
	"supportapi/internal/pkg/cleanup"
	config "supportapi/internal/pkg/config"
	mongodb "supportapi/internal/pkg/db/mongo"
	redisdb "supportapi/internal/pkg/db/redis"
	kafkaProducer "supportapi/internal/pkg/kafka/producer"
	"supportapi/internal/pkg/log_messages"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/pubsub"
	"supportapi/internal/pkg/store/impl/loan_accounts"
	"supportapi/internal/pkg/store/impl/loan_payments"
	"supportapi/internal/pkg/utils/worker"
	"supportapi/internal/service/interfaces"
	"supportapi/internal/service/reminder"

	gcppubsub "cloud.google.com/go/pubsub"
	"github.com/redis/go-redis/v9"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logging.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := mongodb.EnsureLedgerIndexes(ctx, mongoClient.Database); err != nil {
		log.Fatalf("Failed to ensure ledger indexes: %v", err)
	}

	// Connect to Redis, the payment dedup guard degrades without it
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		logger.CtxWarn(ctx, log_messages.ErrorRedisConnection)
		redisClient = nil
	}

	var producer kafkaProducer.KafkaProducerInterface
	if cfg.Kafka.Enabled {
		kp, err := kafkaProducer.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			log.Fatalf("Failed to create kafka producer: %v", err)
		}
		defer func() {
			_ = kp.Close()
		}()
		producer = kp
	}

	var pubsubClient *pubsub.PubSubClient
	if cfg.PubSub.Enabled {
		pubsubClient, err = initPubSubClient(ctx, cfg.PubSub.ProjectID, cfg.PubSub.NotificationTopic)
		if err != nil {
			log.Fatalf("Failed to create Pub/Sub client: %v", err)
		}
		defer pubsubClient.Close()
	}

	startReminderWorker(ctx, cfg, mongoClient, pubsubClient)

	var redisRawClient = redisRaw(redisClient)
	server := router.SetupRouter(cfg, mongoClient, redisRawClient, producer)
	port := cfg.Server.Port

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient)

	if err := server.Run(":" + fmt.Sprintf("%d", port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}
}

func redisRaw(client *redisdb.RedisClient) *redis.Client {
	if client == nil {
		return nil
	}
	return client.Client
}

func startReminderWorker(ctx context.Context, cfg *config.AppConfig, mongoClient *mongodb.MongoClient, pubsubClient *pubsub.PubSubClient) {
	accountsRepo := loan_accounts.NewLoanAccountsRepository(mongoClient)
	paymentsRepo := loan_payments.NewLoanPaymentsRepository(mongoClient)
	pool := worker.NewWorkerPool(cfg.Ledger.ReminderWorkers)

	var publisher interfaces.PubSubPublisherInterface
	if pubsubClient != nil {
		publisher = pubsubClient
	}

	svc := reminder.NewReminderService(accountsRepo, paymentsRepo, publisher, pool)
	go svc.Run(ctx, time.Duration(cfg.Ledger.ReminderScanEveryHour)*time.Hour)
}

func initPubSubClient(ctx context.Context, projectID, topic string) (*pubsub.PubSubClient, error) {
	client, err := pubsub.NewPubSubClient(ctx, projectID, topic, gcppubsub.NewClient)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", log_messages.ErrorPubSubClientCreation, err)
	}

	logger.Info("successful pubsub client creation",
		slog.String("pubsub_topic", topic),
	)

	return client, nil
}
