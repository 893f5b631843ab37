package chats

import (
	"context"
	"testing"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type mockCustomersRepo struct{ mock.Mock }

func (m *mockCustomersRepo) GetCustomerByID(ctx context.Context, customerID string) (*storemodels.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) != nil {
		return args.Get(0).(*storemodels.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomersRepo) InsertCustomer(ctx context.Context, customer *storemodels.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *mockCustomersRepo) UpdateCustomerField(ctx context.Context, customerID string, field string, value interface{}) error {
	return m.Called(ctx, customerID, field, value).Error(0)
}

func (m *mockCustomersRepo) CustomerIDExists(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

type mockChatsRepo struct{ mock.Mock }

func (m *mockChatsRepo) GetChatBySessionID(ctx context.Context, sessionID string) (*storemodels.ChatHistory, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) != nil {
		return args.Get(0).(*storemodels.ChatHistory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatsRepo) GetChatsByCustomerID(ctx context.Context, customerID string) ([]storemodels.ChatHistory, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) != nil {
		return args.Get(0).([]storemodels.ChatHistory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockChatsRepo) InsertChat(ctx context.Context, chat *storemodels.ChatHistory) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *mockChatsRepo) AppendMessages(ctx context.Context, sessionID string, messages []storemodels.ChatMessage) error {
	return m.Called(ctx, sessionID, messages).Error(0)
}

func (m *mockChatsRepo) UpdateSummary(ctx context.Context, sessionID string, summary string) error {
	return m.Called(ctx, sessionID, summary).Error(0)
}

func TestCreateChatGeneratesSessionID(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	customers.On("GetCustomerByID", mock.Anything, "500123").Return(&storemodels.Customer{CustomerID: "500123"}, nil)
	chatsRepo.On("InsertChat", mock.Anything, mock.MatchedBy(func(c *storemodels.ChatHistory) bool {
		return c.SessionID != "" && c.CustomerID == "500123" && len(c.Messages) == 1
	})).Return(nil)

	svc := NewChatService(customers, chatsRepo)

	resp, err := svc.CreateChat(context.Background(), models.CreateChatRequest{
		CustomerID: "500123",
		Messages: []models.ChatMessagePayload{
			{Role: "user", Content: "Where is my statement?"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
}

func TestCreateChatUnknownCustomer(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	customers.On("GetCustomerByID", mock.Anything, "599999").Return(nil, mongo.ErrNoDocuments)

	svc := NewChatService(customers, chatsRepo)

	_, err := svc.CreateChat(context.Background(), models.CreateChatRequest{CustomerID: "599999"})
	require.ErrorIs(t, err, consts.ErrorCustomerNotFound)
	chatsRepo.AssertNotCalled(t, "InsertChat", mock.Anything, mock.Anything)
}

func TestAppendMessagesUnknownSession(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	chatsRepo.On("AppendMessages", mock.Anything, "missing", mock.Anything).Return(mongo.ErrNoDocuments)

	svc := NewChatService(customers, chatsRepo)

	err := svc.AppendMessages(context.Background(), models.AppendChatMessagesRequest{
		SessionID: "missing",
		Messages:  []models.ChatMessagePayload{{Role: "user", Content: "hello"}},
	})
	require.ErrorIs(t, err, consts.ErrorChatNotFound)
}

func TestAppendMessagesStampsMissingTimestamps(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	chatsRepo.On("AppendMessages", mock.Anything, "sess-1", mock.MatchedBy(func(msgs []storemodels.ChatMessage) bool {
		return len(msgs) == 1 && !msgs[0].Timestamp.IsZero()
	})).Return(nil)

	svc := NewChatService(customers, chatsRepo)

	err := svc.AppendMessages(context.Background(), models.AppendChatMessagesRequest{
		SessionID: "sess-1",
		Messages:  []models.ChatMessagePayload{{Role: "assistant", Content: "Here you go"}},
	})
	require.NoError(t, err)
}

func TestUpdateSummary(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	chatsRepo.On("UpdateSummary", mock.Anything, "sess-1", "customer asked about closure").Return(nil)

	svc := NewChatService(customers, chatsRepo)

	err := svc.UpdateSummary(context.Background(), models.UpdateChatSummaryRequest{
		SessionID: "sess-1",
		Summary:   "customer asked about closure",
	})
	require.NoError(t, err)
	chatsRepo.AssertExpectations(t)
}

func TestGetChatNotFound(t *testing.T) {
	customers := new(mockCustomersRepo)
	chatsRepo := new(mockChatsRepo)

	chatsRepo.On("GetChatBySessionID", mock.Anything, "missing").Return(nil, mongo.ErrNoDocuments)

	svc := NewChatService(customers, chatsRepo)

	_, err := svc.GetChat(context.Background(), "missing")
	require.ErrorIs(t, err, consts.ErrorChatNotFound)
}
