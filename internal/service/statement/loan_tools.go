package statement

import (
	"context"
	"errors"
	"math"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"
	"supportapi/internal/service/ledger"

	"go.mongodb.org/mongo-driver/mongo"
)

// LoanToolsService answers the what-if questions support agents get
// asked: closure pricing, tenure reduction, part payment impact.
type LoanToolsService struct {
	accountsRepo interfaces.LoanAccountsRepositoryInterface
}

func NewLoanToolsService(accountsRepo interfaces.LoanAccountsRepositoryInterface) *LoanToolsService {
	return &LoanToolsService{accountsRepo: accountsRepo}
}

func (s *LoanToolsService) getAccount(ctx context.Context, loanAccountNumber string) (*storemodels.LoanAccount, error) {
	account, err := s.accountsRepo.GetAccountByNumber(ctx, loanAccountNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorAccountNotFound
		}
		return nil, consts.ErrorStorage
	}
	return account, nil
}

func (s *LoanToolsService) ClosureQuote(ctx context.Context, loanAccountNumber string) (*models.ClosureQuoteResponse, error) {

	account, err := s.getAccount(ctx, loanAccountNumber)
	if err != nil {
		return nil, err
	}

	interest, fee, total := ledger.ClosureQuote(account.OutstandingPrincipal, account.AnnualInterestRate)

	return &models.ClosureQuoteResponse{
		LoanAccountNumber:    account.LoanAccountNumber,
		OutstandingPrincipal: account.OutstandingPrincipal,
		InterestForNextMonth: interest,
		ForeclosureFee:       fee,
		TotalClosureAmount:   total,
	}, nil
}

func (s *LoanToolsService) TenureReduction(ctx context.Context, req models.TenureReductionRequest) (*models.TenureReductionResponse, error) {

	account, err := s.getAccount(ctx, req.LoanAccountNumber)
	if err != nil {
		return nil, err
	}

	newTenure := account.TenureMonths - req.MonthsReduced
	if newTenure <= 0 {
		return nil, consts.ErrorInvalidRequest
	}

	newEMI := ledger.MonthlyEMI(account.OutstandingPrincipal, account.AnnualInterestRate, newTenure)

	return &models.TenureReductionResponse{
		LoanAccountNumber: account.LoanAccountNumber,
		CurrentEMI:        account.MonthlyEMI,
		NewEMI:            newEMI,
		NewTenureMonths:   newTenure,
	}, nil
}

func (s *LoanToolsService) PartPaymentImpact(ctx context.Context, req models.PartPaymentImpactRequest) (*models.PartPaymentImpactResponse, error) {

	account, err := s.getAccount(ctx, req.LoanAccountNumber)
	if err != nil {
		return nil, err
	}

	if req.PartPaymentAmount <= 0 || req.PartPaymentAmount >= account.OutstandingPrincipal {
		return nil, consts.ErrorInvalidAmount
	}

	reduced := account.OutstandingPrincipal - req.PartPaymentAmount

	return &models.PartPaymentImpactResponse{
		LoanAccountNumber:    account.LoanAccountNumber,
		OutstandingPrincipal: account.OutstandingPrincipal,
		ReducedPrincipal:     reduced,
		CurrentEMI:           account.MonthlyEMI,
		RemainingTenure:      remainingTenure(reduced, account.AnnualInterestRate, account.MonthlyEMI),
	}, nil
}

// remainingTenure solves n in EMI = P*r*(1+r)^n/((1+r)^n-1) for the
// reduced principal, keeping the EMI unchanged.
func remainingTenure(principal, annualRatePercent, emi float64) int32 {
	if emi <= 0 {
		return 0
	}

	rate := annualRatePercent / 100 / consts.MonthsPerYear
	if rate == 0 {
		return int32(math.Ceil(principal / emi))
	}

	monthlyInterest := principal * rate
	if emi <= monthlyInterest {
		return 0
	}

	n := math.Log(emi/(emi-monthlyInterest)) / math.Log(1+rate)
	return int32(math.Ceil(n))
}
