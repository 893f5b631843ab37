package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"supportapi/internal/pkg/config"
	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/kafka/producer"
	"supportapi/internal/pkg/log_messages"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplyPaymentService appends payments to the loan ledger. Writers racing
// on the same account are serialized by the unique (loanAccountNumber,
// sequence) index: the loser of a race gets a duplicate key error and
// recomputes against the fresh ledger head.
type ApplyPaymentService struct {
	accountsRepo  interfaces.LoanAccountsRepositoryInterface
	paymentsRepo  interfaces.LoanPaymentsRepositoryInterface
	redisStore    interfaces.RedisStoreOperations
	kafkaProducer producer.KafkaProducerInterface
	cfg           config.LedgerConfig
}

func NewApplyPaymentService(
	accountsRepo interfaces.LoanAccountsRepositoryInterface,
	paymentsRepo interfaces.LoanPaymentsRepositoryInterface,
	redisStore interfaces.RedisStoreOperations,
	kafkaProducer producer.KafkaProducerInterface,
	cfg config.LedgerConfig,
) *ApplyPaymentService {
	return &ApplyPaymentService{
		accountsRepo:  accountsRepo,
		paymentsRepo:  paymentsRepo,
		redisStore:    redisStore,
		kafkaProducer: kafkaProducer,
		cfg:           cfg,
	}
}

func (s *ApplyPaymentService) ApplyPayment(ctx context.Context, req models.AddLoanPaymentRequest) (*models.LoanPaymentResponse, error) {

	if req.PaymentAmount <= 0 {
		logger.CtxWarn(ctx, "Rejected non-positive payment amount",
			slog.String("loan_account_number", req.LoanAccountNumber),
			slog.Float64("payment_amount", req.PaymentAmount),
		)
		return nil, consts.ErrorInvalidAmount
	}

	if s.cfg.RejectFuturePayments && req.PaymentDate.After(time.Now().UTC()) {
		logger.CtxWarn(ctx, "Rejected future dated payment",
			slog.String("loan_account_number", req.LoanAccountNumber),
			slog.Time("payment_date", req.PaymentDate),
		)
		return nil, consts.ErrorFuturePaymentDate
	}

	account, err := s.accountsRepo.GetAccountByNumber(ctx, req.LoanAccountNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorAccountNotFound
		}
		logger.CtxError(ctx, log_messages.ErrorFetchingAccount, err,
			slog.String("loan_account_number", req.LoanAccountNumber))
		return nil, consts.ErrorStorage
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.New().String()
	}

	if err := s.guardTransaction(ctx, transactionID); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= consts.MaxApplyPaymentAttempts; attempt++ {

		latest, err := s.paymentsRepo.GetLatestPayment(ctx, req.LoanAccountNumber)
		if err != nil {
			return nil, consts.ErrorStorage
		}

		previousPrincipal := account.PrincipalAmount
		if latest != nil {
			previousPrincipal = latest.CurrentPrincipal
		}

		highest, err := s.paymentsRepo.GetHighestSequence(ctx, req.LoanAccountNumber)
		if err != nil {
			return nil, consts.ErrorStorage
		}
		sequence := highest + 1

		split := SplitPayment(previousPrincipal, account.AnnualInterestRate, req.PaymentAmount)

		payment := &storemodels.LoanPayment{
			LoanAccountNumber:  req.LoanAccountNumber,
			CustomerID:         account.CustomerID,
			TransactionID:      transactionID,
			Sequence:           sequence,
			PaymentDate:        req.PaymentDate.UTC(),
			PaymentAmount:      req.PaymentAmount,
			PaymentMode:        req.PaymentMode,
			InterestComponent:  split.InterestComponent,
			PrincipalComponent: split.PrincipalComponent,
			PreviousPrincipal:  split.PreviousPrincipal,
			CurrentPrincipal:   split.CurrentPrincipal,
			CreatedAt:          time.Now().UTC(),
		}

		if err := s.paymentsRepo.InsertPayment(ctx, payment); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// The unique transactionId index also reports 11000, so a
				// rival submission of the same transaction looks like a
				// sequence race. Disambiguate before retrying.
				if existing, dupErr := s.paymentsRepo.GetPaymentByTransactionID(ctx, transactionID); dupErr == nil && existing != nil {
					logger.CtxWarn(ctx, log_messages.ErrorDuplicateTransaction,
						slog.String("transaction_id", transactionID))
					return nil, consts.ErrorDuplicateTransaction
				}
				logger.CtxWarn(ctx, "Lost sequence race, recomputing against fresh ledger head",
					slog.String("loan_account_number", req.LoanAccountNumber),
					slog.Int64("sequence", sequence),
					slog.Int("attempt", attempt),
				)
				continue
			}
			return nil, consts.ErrorStorage
		}

		s.afterAppend(ctx, account, payment)

		return &models.LoanPaymentResponse{
			LoanAccountNumber:  payment.LoanAccountNumber,
			CustomerID:         payment.CustomerID,
			TransactionID:      payment.TransactionID,
			PaymentDate:        payment.PaymentDate,
			PaymentAmount:      payment.PaymentAmount,
			PaymentMode:        payment.PaymentMode,
			InterestComponent:  payment.InterestComponent,
			PrincipalComponent: payment.PrincipalComponent,
			PreviousPrincipal:  payment.PreviousPrincipal,
			CurrentPrincipal:   payment.CurrentPrincipal,
		}, nil
	}

	logger.CtxError(ctx, "Exhausted apply payment attempts", consts.ErrorConcurrencyConflict,
		slog.String("loan_account_number", req.LoanAccountNumber))
	return nil, consts.ErrorConcurrencyConflict
}

// guardTransaction rejects a transaction id already seen, either in the
// short lived Redis window or durably in the ledger itself. A Redis
// outage degrades to the ledger check only.
func (s *ApplyPaymentService) guardTransaction(ctx context.Context, transactionID string) error {
	if s.redisStore != nil {
		acquired, err := s.redisStore.AcquireTransactionLock(ctx, transactionID, s.cfg.IdempotencyTTL)
		if err != nil {
			logger.CtxWarn(ctx, log_messages.ErrorIdempotencyUnavailable,
				slog.String("transaction_id", transactionID))
		} else if !acquired {
			logger.CtxWarn(ctx, log_messages.ErrorDuplicateTransaction,
				slog.String("transaction_id", transactionID))
			return consts.ErrorDuplicateTransaction
		}
	}

	existing, err := s.paymentsRepo.GetPaymentByTransactionID(ctx, transactionID)
	if err != nil {
		return consts.ErrorStorage
	}
	if existing != nil {
		logger.CtxWarn(ctx, log_messages.ErrorDuplicateTransaction,
			slog.String("transaction_id", transactionID))
		return consts.ErrorDuplicateTransaction
	}

	return nil
}

// afterAppend runs the non-ledger side effects of a successful append.
// Failures here are logged and swallowed, the ledger entry is already
// durable.
func (s *ApplyPaymentService) afterAppend(ctx context.Context, account *storemodels.LoanAccount, payment *storemodels.LoanPayment) {

	status := account.Status
	if payment.CurrentPrincipal <= 0 {
		status = consts.AccountStatusClosed
	}

	if err := s.accountsRepo.UpdateOutstandingPrincipal(ctx, account.LoanAccountNumber, payment.CurrentPrincipal, status); err != nil {
		logger.CtxError(ctx, "Failed to refresh account outstanding principal", err,
			slog.String("loan_account_number", account.LoanAccountNumber))
	}

	if s.kafkaProducer == nil {
		return
	}

	event := models.PaymentRecordedEvent{
		LoanAccountNumber:  payment.LoanAccountNumber,
		CustomerID:         account.CustomerID,
		TransactionID:      payment.TransactionID,
		Sequence:           payment.Sequence,
		PaymentDate:        payment.PaymentDate,
		PaymentAmount:      payment.PaymentAmount,
		PaymentMode:        payment.PaymentMode,
		InterestComponent:  payment.InterestComponent,
		PrincipalComponent: payment.PrincipalComponent,
		CurrentPrincipal:   payment.CurrentPrincipal,
		RecordedAt:         time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.CtxError(ctx, "Failed to marshal payment event", err)
		return
	}

	if err := s.kafkaProducer.Publish(ctx, data); err != nil {
		logger.CtxError(ctx, "Failed to publish payment event", err,
			slog.String("transaction_id", payment.TransactionID))
	}
}
