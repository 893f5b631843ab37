package loans

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"
	"supportapi/internal/service/ledger"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// LoanService handles loan account intake.
type LoanService struct {
	customersRepo interfaces.CustomersRepositoryInterface
	accountsRepo  interfaces.LoanAccountsRepositoryInterface
}

func NewLoanService(
	customersRepo interfaces.CustomersRepositoryInterface,
	accountsRepo interfaces.LoanAccountsRepositoryInterface,
) *LoanService {
	return &LoanService{
		customersRepo: customersRepo,
		accountsRepo:  accountsRepo,
	}
}

func (s *LoanService) AddLoanDetails(ctx context.Context, req models.AddLoanDetailsRequest) (*models.AddLoanDetailsResponse, error) {

	if _, err := s.customersRepo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorCustomerNotFound
		}
		return nil, consts.ErrorStorage
	}

	accountNumber := req.LoanAccountNumber
	if accountNumber == "" {
		accountNumber = uuid.New().String()
	}

	disbursement := req.DisbursementDate
	if disbursement.IsZero() {
		disbursement = time.Now().UTC()
	}

	emi := ledger.MonthlyEMI(req.PrincipalAmount, req.AnnualInterestRate, req.TenureMonths)

	account := &storemodels.LoanAccount{
		LoanAccountNumber:    accountNumber,
		CustomerID:           req.CustomerID,
		PrincipalAmount:      req.PrincipalAmount,
		AnnualInterestRate:   req.AnnualInterestRate,
		TenureMonths:         req.TenureMonths,
		MonthlyEMI:           emi,
		OutstandingPrincipal: req.PrincipalAmount,
		Status:               consts.AccountStatusActive,
		PaymentReminder:      req.PaymentReminder,
		DisbursementDate:     disbursement.UTC(),
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.accountsRepo.InsertAccount(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			logger.CtxWarn(ctx, "Loan account number already exists",
				slog.String("loan_account_number", accountNumber))
			return nil, consts.ErrorInvalidRequest
		}
		return nil, consts.ErrorStorage
	}

	return &models.AddLoanDetailsResponse{
		LoanAccountNumber: accountNumber,
		MonthlyEMI:        emi,
	}, nil
}
