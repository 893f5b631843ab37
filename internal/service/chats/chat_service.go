package chats

import (
	"context"
	"errors"
	"time"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type ChatService struct {
	customersRepo interfaces.CustomersRepositoryInterface
	chatsRepo     interfaces.ChatsRepositoryInterface
}

func NewChatService(
	customersRepo interfaces.CustomersRepositoryInterface,
	chatsRepo interfaces.ChatsRepositoryInterface,
) *ChatService {
	return &ChatService{
		customersRepo: customersRepo,
		chatsRepo:     chatsRepo,
	}
}

func toStoreMessages(payloads []models.ChatMessagePayload) []storemodels.ChatMessage {
	messages := make([]storemodels.ChatMessage, 0, len(payloads))
	for _, p := range payloads {
		ts := p.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		messages = append(messages, storemodels.ChatMessage{
			Role:      p.Role,
			Content:   p.Content,
			Timestamp: ts.UTC(),
		})
	}
	return messages
}

func (s *ChatService) CreateChat(ctx context.Context, req models.CreateChatRequest) (*models.CreateChatResponse, error) {

	if _, err := s.customersRepo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorCustomerNotFound
		}
		return nil, consts.ErrorStorage
	}

	chat := &storemodels.ChatHistory{
		SessionID:  uuid.New().String(),
		CustomerID: req.CustomerID,
		Messages:   toStoreMessages(req.Messages),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.chatsRepo.InsertChat(ctx, chat); err != nil {
		return nil, consts.ErrorStorage
	}

	return &models.CreateChatResponse{SessionID: chat.SessionID}, nil
}

func (s *ChatService) GetChat(ctx context.Context, sessionID string) (*storemodels.ChatHistory, error) {

	chat, err := s.chatsRepo.GetChatBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorChatNotFound
		}
		return nil, consts.ErrorStorage
	}

	return chat, nil
}

func (s *ChatService) GetChatsByCustomer(ctx context.Context, customerID string) ([]storemodels.ChatHistory, error) {

	chats, err := s.chatsRepo.GetChatsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, consts.ErrorStorage
	}

	return chats, nil
}

func (s *ChatService) AppendMessages(ctx context.Context, req models.AppendChatMessagesRequest) error {

	err := s.chatsRepo.AppendMessages(ctx, req.SessionID, toStoreMessages(req.Messages))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return consts.ErrorChatNotFound
		}
		return consts.ErrorStorage
	}

	return nil
}

func (s *ChatService) UpdateSummary(ctx context.Context, req models.UpdateChatSummaryRequest) error {

	err := s.chatsRepo.UpdateSummary(ctx, req.SessionID, req.Summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return consts.ErrorChatNotFound
		}
		return consts.ErrorStorage
	}

	return nil
}
