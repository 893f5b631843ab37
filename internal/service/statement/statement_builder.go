package statement

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

// StatementService assembles payment statements from the ledger, either
// for a single account or for every account a customer holds.
type StatementService struct {
	accountsRepo interfaces.LoanAccountsRepositoryInterface
	paymentsRepo interfaces.LoanPaymentsRepositoryInterface
}

func NewStatementService(
	accountsRepo interfaces.LoanAccountsRepositoryInterface,
	paymentsRepo interfaces.LoanPaymentsRepositoryInterface,
) *StatementService {
	return &StatementService{
		accountsRepo: accountsRepo,
		paymentsRepo: paymentsRepo,
	}
}

func (s *StatementService) BuildStatement(ctx context.Context, req models.LoanStatementRequest) (*models.LoanStatementResponse, error) {

	hasCustomer := req.CustomerID != ""
	hasAccount := req.LoanAccountNumber != ""

	if hasCustomer == hasAccount {
		logger.CtxWarn(ctx, "Statement request must carry exactly one of customerId or loanAccountNumber")
		return nil, consts.ErrorInvalidRequest
	}

	if hasAccount {
		return s.buildForAccount(ctx, req.LoanAccountNumber)
	}
	return s.buildForCustomer(ctx, req.CustomerID)
}

func (s *StatementService) buildForAccount(ctx context.Context, loanAccountNumber string) (*models.LoanStatementResponse, error) {

	account, err := s.accountsRepo.GetAccountByNumber(ctx, loanAccountNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorAccountNotFound
		}
		return nil, consts.ErrorStorage
	}

	payments, err := s.paymentsRepo.GetPaymentsByAccount(ctx, loanAccountNumber)
	if err != nil {
		return nil, consts.ErrorStorage
	}

	return &models.LoanStatementResponse{
		Accounts: []models.LoanAccountSummary{toAccountSummary(*account)},
		Payments: toResponseEntries(payments),
	}, nil
}

func (s *StatementService) buildForCustomer(ctx context.Context, customerID string) (*models.LoanStatementResponse, error) {

	accounts, err := s.accountsRepo.GetAccountsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, consts.ErrorStorage
	}
	if len(accounts) == 0 {
		logger.CtxWarn(ctx, "No loan accounts for customer", slog.String("customer_id", customerID))
		return nil, consts.ErrorAccountNotFound
	}

	summaries := make([]models.LoanAccountSummary, 0, len(accounts))
	var all []storemodels.LoanPayment
	for _, account := range accounts {
		summaries = append(summaries, toAccountSummary(account))

		payments, err := s.paymentsRepo.GetPaymentsByAccount(ctx, account.LoanAccountNumber)
		if err != nil {
			return nil, consts.ErrorStorage
		}
		all = append(all, payments...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PaymentDate.Before(all[j].PaymentDate)
	})

	logger.CtxDebug(ctx, "Built customer statement",
		slog.String("customer_id", customerID),
		slog.Int("accounts", len(accounts)),
		slog.Int("payments", len(all)),
	)

	return &models.LoanStatementResponse{
		Accounts: summaries,
		Payments: toResponseEntries(all),
	}, nil
}

func toAccountSummary(account storemodels.LoanAccount) models.LoanAccountSummary {
	return models.LoanAccountSummary{
		LoanAccountNumber:    account.LoanAccountNumber,
		CustomerID:           account.CustomerID,
		PrincipalAmount:      account.PrincipalAmount,
		AnnualInterestRate:   account.AnnualInterestRate,
		TenureMonths:         account.TenureMonths,
		MonthlyEMI:           account.MonthlyEMI,
		OutstandingPrincipal: account.OutstandingPrincipal,
		Status:               account.Status,
		DisbursementDate:     account.DisbursementDate,
	}
}

func toResponseEntries(payments []storemodels.LoanPayment) []models.LoanPaymentResponse {
	entries := make([]models.LoanPaymentResponse, 0, len(payments))
	for _, p := range payments {
		entries = append(entries, models.LoanPaymentResponse{
			LoanAccountNumber:  p.LoanAccountNumber,
			CustomerID:         p.CustomerID,
			TransactionID:      p.TransactionID,
			PaymentDate:        p.PaymentDate,
			PaymentAmount:      p.PaymentAmount,
			PaymentMode:        p.PaymentMode,
			InterestComponent:  p.InterestComponent,
			PrincipalComponent: p.PrincipalComponent,
			PreviousPrincipal:  p.PreviousPrincipal,
			CurrentPrincipal:   p.CurrentPrincipal,
		})
	}
	return entries
}
