package chats

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"supportapi/internal/pkg/consts"
	mongodb "supportapi/internal/pkg/db/mongo"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/store/models"
	"supportapi/internal/pkg/store/repository"
	"supportapi/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatsRepository struct {
	repo interfaces.ChatsStoreInterface
}

func NewChatsRepository(client *mongodb.MongoClient) *ChatsRepository {
	collection := client.Database.Collection(consts.ChatsCollection)
	repo := repository.NewMongoRepository[models.ChatHistory](collection)
	return &ChatsRepository{repo: repo}
}

func NewChatsRepositoryWithInterface(repo interfaces.ChatsStoreInterface) *ChatsRepository {
	return &ChatsRepository{repo: repo}
}

func (cr *ChatsRepository) GetChatBySessionID(ctx context.Context, sessionID string) (*models.ChatHistory, error) {

	filter := bson.M{"sessionId": sessionID}
	chat, err := cr.repo.FindOne(ctx, filter, options.FindOne())

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No chat found", slog.String("session_id", sessionID))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding chat", err, slog.String("session_id", sessionID))
		return nil, err
	}

	return &chat, nil
}

func (cr *ChatsRepository) GetChatsByCustomerID(ctx context.Context, customerID string) ([]models.ChatHistory, error) {

	filter := bson.M{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	chats, err := cr.repo.Find(ctx, filter, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching chats for customer", err, slog.String("customer_id", customerID))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched chats for customer",
		slog.String("customer_id", customerID),
		slog.Int("count", len(chats)),
	)
	return chats, nil
}

func (cr *ChatsRepository) InsertChat(ctx context.Context, chat *models.ChatHistory) error {

	if _, err := cr.repo.Create(ctx, chat); err != nil {
		logger.CtxError(ctx, "Error inserting chat", err, slog.String("session_id", chat.SessionID))
		return err
	}

	logger.CtxInfo(ctx, "Inserted chat", slog.String("session_id", chat.SessionID))
	return nil
}

func (cr *ChatsRepository) AppendMessages(ctx context.Context, sessionID string, messages []models.ChatMessage) error {

	filter := bson.M{"sessionId": sessionID}
	update := bson.M{
		"$push": bson.M{"messages": bson.M{"$each": messages}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := cr.repo.UpdateOneRaw(ctx, filter, update)
	if err != nil {
		logger.CtxError(ctx, "Error appending chat messages", err, slog.String("session_id", sessionID))
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logger.CtxDebug(ctx, "Appended chat messages",
		slog.String("session_id", sessionID),
		slog.Int("count", len(messages)),
	)
	return nil
}

func (cr *ChatsRepository) UpdateSummary(ctx context.Context, sessionID string, summary string) error {

	filter := bson.M{"sessionId": sessionID}
	update := bson.M{
		"$set": bson.M{
			"summary":   summary,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := cr.repo.UpdateOneRaw(ctx, filter, update)
	if err != nil {
		logger.CtxError(ctx, "Error updating chat summary", err, slog.String("session_id", sessionID))
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	logger.CtxInfo(ctx, "Updated chat summary", slog.String("session_id", sessionID))
	return nil
}
