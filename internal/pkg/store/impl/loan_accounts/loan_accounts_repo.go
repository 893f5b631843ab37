package loan_accounts

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

type LoanAccountsRepository struct {
	repo interfaces.LoanAccountsStoreInterface
}

func NewLoanAccountsRepository(client *mongodb.MongoClient) *LoanAccountsRepository {
	collection := client.Database.Collection(consts.LoanAccountsCollection)
	repo := repository.NewMongoRepository[models.LoanAccount](collection)
	return &LoanAccountsRepository{repo: repo}
}

func NewLoanAccountsRepositoryWithInterface(repo interfaces.LoanAccountsStoreInterface) *LoanAccountsRepository {
	return &LoanAccountsRepository{repo: repo}
}

func (lr *LoanAccountsRepository) GetAccountByNumber(ctx context.Context, loanAccountNumber string) (*models.LoanAccount, error) {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	account, err := lr.repo.FindOne(ctx, filter, options.FindOne())

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No loan account found", slog.String("loan_account_number", loanAccountNumber))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding loan account", err, slog.String("loan_account_number", loanAccountNumber))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan account", slog.String("loan_account_number", loanAccountNumber))
	return &account, nil
}

func (lr *LoanAccountsRepository) GetAccountsByCustomerID(ctx context.Context, customerID string) ([]models.LoanAccount, error) {

	filter := bson.M{"customerId": customerID}
	opts := options.Find().SetSort(bson.D{{Key: "disbursementDate", Value: 1}})

	accounts, err := lr.repo.Find(ctx, filter, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching loan accounts for customer", err, slog.String("customer_id", customerID))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan accounts for customer",
		slog.String("customer_id", customerID),
		slog.Int("count", len(accounts)),
	)
	return accounts, nil
}

func (lr *LoanAccountsRepository) InsertAccount(ctx context.Context, account *models.LoanAccount) error {

	if _, err := lr.repo.Create(ctx, account); err != nil {
		logger.CtxError(ctx, "Error inserting loan account", err,
			slog.String("loan_account_number", account.LoanAccountNumber))
		return err
	}

	logger.CtxInfo(ctx, "Inserted loan account",
		slog.String("loan_account_number", account.LoanAccountNumber),
		slog.String("customer_id", account.CustomerID),
	)
	return nil
}

func (lr *LoanAccountsRepository) UpdateOutstandingPrincipal(ctx context.Context, loanAccountNumber string, outstanding float64, status string) error {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	update := bson.M{
		"outstandingPrincipal": outstanding,
		"status":               status,
		"updatedAt":            time.Now().UTC(),
	}

	if err := lr.repo.UpdateOne(ctx, filter, update); err != nil {
		logger.CtxError(ctx, "Error updating outstanding principal", err,
			slog.String("loan_account_number", loanAccountNumber))
		return err
	}

	return nil
}

func (lr *LoanAccountsRepository) UpdateNextPaymentPrediction(ctx context.Context, loanAccountNumber string, due time.Time) error {

	filter := bson.M{"loanAccountNumber": loanAccountNumber}
	update := bson.M{
		"nextPaymentDuePredicted": due,
		"updatedAt":               time.Now().UTC(),
	}

	if err := lr.repo.UpdateOne(ctx, filter, update); err != nil {
		logger.CtxError(ctx, "Error updating next payment prediction", err,
			slog.String("loan_account_number", loanAccountNumber))
		return err
	}

	return nil
}

// ListReminderEligibleAccounts returns active accounts whose holder opted
// in to payment reminders.
func (lr *LoanAccountsRepository) ListReminderEligibleAccounts(ctx context.Context) ([]models.LoanAccount, error) {

	filter := bson.M{
		"status":          consts.AccountStatusActive,
		"paymentReminder": true,
	}

	accounts, err := lr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error listing reminder eligible loan accounts", err)
		return nil, err
	}

	return accounts, nil
}
