package interfaces

import (
	"context"
	"supportapi/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LoanPaymentsRepositoryInterface interface {
	// GetLatestPayment returns the most recent ledger entry for the account,
	// ordered by paymentDate then sequence. Nil when no payment exists yet.
	GetLatestPayment(ctx context.Context, loanAccountNumber string) (*models.LoanPayment, error)
	// GetHighestSequence returns the largest sequence number used on the
	// account, zero when the ledger is empty.
	GetHighestSequence(ctx context.Context, loanAccountNumber string) (int64, error)
	InsertPayment(ctx context.Context, payment *models.LoanPayment) error
	GetPaymentsByAccount(ctx context.Context, loanAccountNumber string) ([]models.LoanPayment, error)
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.LoanPayment, error)
}

type LoanPaymentsStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.LoanPayment, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.LoanPayment, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}
