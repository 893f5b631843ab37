package loan_payments

import (
	"context"
	"errors"
	"log/slog"

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

type LoanPaymentsRepository struct {
	repo interfaces.LoanPaymentsStoreInterface
}

func NewLoanPaymentsRepository(client *mongodb.MongoClient) *LoanPaymentsRepository {
	collection := client.Database.Collection(consts.LoanPaymentsCollection)
	repo := repository.NewMongoRepository[models.LoanPayment](collection)
	return &LoanPaymentsRepository{repo: repo}
}

func NewLoanPaymentsRepositoryWithInterface(repo interfaces.LoanPaymentsStoreInterface) *LoanPaymentsRepository {
	return &LoanPaymentsRepository{repo: repo}
}

func (pr *LoanPaymentsRepository) GetLatestPayment(ctx context.Context, loanAccountNumber string) (*models.LoanPayment, error) {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	opt := options.FindOne().SetSort(bson.D{
		{Key: "paymentDate", Value: -1},
		{Key: "sequence", Value: -1},
	})

	payment, err := pr.repo.FindOne(ctx, filter, opt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.CtxError(ctx, "Error finding latest payment", err,
			slog.String("loan_account_number", loanAccountNumber))
		return nil, err
	}

	return &payment, nil
}

func (pr *LoanPaymentsRepository) GetHighestSequence(ctx context.Context, loanAccountNumber string) (int64, error) {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	opt := options.FindOne().SetSort(bson.D{{Key: "sequence", Value: -1}})

	payment, err := pr.repo.FindOne(ctx, filter, opt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		logger.CtxError(ctx, "Error finding highest payment sequence", err,
			slog.String("loan_account_number", loanAccountNumber))
		return 0, err
	}

	return payment.Sequence, nil
}

func (pr *LoanPaymentsRepository) InsertPayment(ctx context.Context, payment *models.LoanPayment) error {

	if _, err := pr.repo.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.CtxWarn(ctx, "Duplicate payment sequence",
				slog.String("loan_account_number", payment.LoanAccountNumber),
				slog.Int64("sequence", payment.Sequence),
			)
			return err
		}
		logger.CtxError(ctx, "Error inserting payment", err,
			slog.String("loan_account_number", payment.LoanAccountNumber))
		return err
	}

	logger.CtxInfo(ctx, "Inserted payment",
		slog.String("loan_account_number", payment.LoanAccountNumber),
		slog.String("transaction_id", payment.TransactionID),
		slog.Int64("sequence", payment.Sequence),
	)
	return nil
}

func (pr *LoanPaymentsRepository) GetPaymentsByAccount(ctx context.Context, loanAccountNumber string) ([]models.LoanPayment, error) {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	opts := options.Find().SetSort(bson.D{
		{Key: "paymentDate", Value: 1},
		{Key: "sequence", Value: 1},
	})

	payments, err := pr.repo.Find(ctx, filter, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching payments", err,
			slog.String("loan_account_number", loanAccountNumber))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched payments",
		slog.String("loan_account_number", loanAccountNumber),
		slog.Int("count", len(payments)),
	)
	return payments, nil
}

func (pr *LoanPaymentsRepository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (*models.LoanPayment, error) {

	filter := bson.M{"transactionId": transactionID}

	payment, err := pr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.CtxError(ctx, "Error finding payment by transaction id", err,
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	return &payment, nil
}
