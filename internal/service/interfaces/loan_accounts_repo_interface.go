package interfaces

import (
	"context"
	"time"

	"supportapi/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanAccountsRepositoryInterface interface {
	GetAccountByNumber(ctx context.Context, loanAccountNumber string) (*models.LoanAccount, error)
	GetAccountsByCustomerID(ctx context.Context, customerID string) ([]models.LoanAccount, error)
	InsertAccount(ctx context.Context, account *models.LoanAccount) error
	UpdateOutstandingPrincipal(ctx context.Context, loanAccountNumber string, outstanding float64, status string) error
	UpdateNextPaymentPrediction(ctx context.Context, loanAccountNumber string, due time.Time) error
	ListReminderEligibleAccounts(ctx context.Context) ([]models.LoanAccount, error)
}

type LoanAccountsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.LoanAccount, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.LoanAccount, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}
