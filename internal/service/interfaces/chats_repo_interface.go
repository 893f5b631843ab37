package interfaces

import (
	"context"
	"supportapi/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatsRepositoryInterface interface {
	GetChatBySessionID(ctx context.Context, sessionID string) (*models.ChatHistory, error)
	GetChatsByCustomerID(ctx context.Context, customerID string) ([]models.ChatHistory, error)
	InsertChat(ctx context.Context, chat *models.ChatHistory) error
	AppendMessages(ctx context.Context, sessionID string, messages []models.ChatMessage) error
	UpdateSummary(ctx context.Context, sessionID string, summary string) error
}

type ChatsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ChatHistory, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ChatHistory, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOneRaw(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error)
}
