package reminder

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/log_messages"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/pkg/utils/worker"
	"supportapi/internal/service/interfaces"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate = validator.New()

// ReminderService predicts when each active account is next expected to
// pay and publishes reminder messages for the notification pipeline.
type ReminderService struct {
	accountsRepo interfaces.LoanAccountsRepositoryInterface
	paymentsRepo interfaces.LoanPaymentsRepositoryInterface
	publisher    interfaces.PubSubPublisherInterface
	pool         *worker.WorkerPool
}

func NewReminderService(
	accountsRepo interfaces.LoanAccountsRepositoryInterface,
	paymentsRepo interfaces.LoanPaymentsRepositoryInterface,
	publisher interfaces.PubSubPublisherInterface,
	pool *worker.WorkerPool,
) *ReminderService {
	return &ReminderService{
		accountsRepo: accountsRepo,
		paymentsRepo: paymentsRepo,
		publisher:    publisher,
		pool:         pool,
	}
}

// PredictNextPaymentDate estimates the next payment date from the
// historical cadence: the median gap between consecutive payments is
// projected past the last payment. Accounts with fewer than two
// payments fall back to the 28th of the current month.
func PredictNextPaymentDate(payments []storemodels.LoanPayment, now time.Time) time.Time {

	if len(payments) < 2 {
		return fallbackDate(now)
	}

	dates := make([]time.Time, len(payments))
	for i, p := range payments {
		dates[i] = p.PaymentDate
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	gaps := make([]time.Duration, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, dates[i].Sub(dates[i-1]))
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i] < gaps[j] })

	median := gaps[len(gaps)/2]
	if median <= 0 {
		return fallbackDate(now)
	}

	predicted := dates[len(dates)-1].Add(median)
	if predicted.Before(now) {
		return fallbackDate(now)
	}
	return predicted
}

func fallbackDate(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), consts.FallbackReminderDay, 0, 0, 0, 0, time.UTC)
}

// ScanOnce walks every opted-in active account, refreshes its prediction
// and publishes a reminder. Account failures are logged and do not stop
// the scan.
func (s *ReminderService) ScanOnce(ctx context.Context) error {

	accounts, err := s.accountsRepo.ListReminderEligibleAccounts(ctx)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorReminderScan, err)
		return err
	}

	var wg sync.WaitGroup
	for _, account := range accounts {
		account := account
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			s.processAccount(ctx, account)
		})
	}
	wg.Wait()

	logger.CtxInfo(ctx, "Reminder scan finished", slog.Int("accounts", len(accounts)))
	return nil
}

func (s *ReminderService) processAccount(ctx context.Context, account storemodels.LoanAccount) {

	payments, err := s.paymentsRepo.GetPaymentsByAccount(ctx, account.LoanAccountNumber)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingPayments, err,
			slog.String("loan_account_number", account.LoanAccountNumber))
		return
	}

	predicted := PredictNextPaymentDate(payments, time.Now().UTC())

	if err := s.accountsRepo.UpdateNextPaymentPrediction(ctx, account.LoanAccountNumber, predicted); err != nil {
		return
	}

	if s.publisher == nil {
		return
	}

	message := models.PaymentReminderMessage{
		CustomerID:        account.CustomerID,
		LoanAccountNumber: account.LoanAccountNumber,
		PredictedDueDate:  predicted,
		MonthlyEMI:        account.MonthlyEMI,
		GeneratedAt:       time.Now().UTC(),
	}

	if err := validate.Struct(message); err != nil {
		logger.CtxError(ctx, "Validation failed for payment reminder", err,
			slog.String("loan_account_number", account.LoanAccountNumber))
		return
	}

	if _, err := s.publisher.PublishMessage(ctx, message); err != nil {
		logger.CtxError(ctx, "Failed to publish payment reminder", err,
			slog.String("loan_account_number", account.LoanAccountNumber))
	}
}

// Run keeps scanning on the given interval until the context is done.
func (s *ReminderService) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = 24 * time.Hour
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.ScanOnce(ctx); err != nil {
				logger.CtxError(ctx, log_messages.ErrorReminderScan, err)
			}
		}
	}
}
