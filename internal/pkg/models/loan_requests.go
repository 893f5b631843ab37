package models

import "time"

type AddLoanDetailsRequest struct {
	CustomerID         string    `json:"customerId" binding:"required"`
	LoanAccountNumber  string    `json:"loanAccountNumber"`
	PrincipalAmount    float64   `json:"principalAmount" binding:"required,gt=0"`
	AnnualInterestRate float64   `json:"annualInterestRate" binding:"gte=0"`
	TenureMonths       int32     `json:"tenureMonths" binding:"required,gt=0"`
	DisbursementDate   time.Time `json:"disbursementDate"`
	PaymentReminder    bool      `json:"paymentReminder"`
}

type AddLoanDetailsResponse struct {
	LoanAccountNumber string  `json:"loanAccountNumber"`
	MonthlyEMI        float64 `json:"monthlyEMI"`
}

type AddLoanPaymentRequest struct {
	LoanAccountNumber string    `json:"loanAccountNumber" binding:"required"`
	PaymentAmount     float64   `json:"paymentAmount" binding:"required"`
	PaymentDate       time.Time `json:"paymentDate" binding:"required"`
	PaymentMode       string    `json:"paymentMode"`
	TransactionID     string    `json:"transactionId"`
}

type LoanPaymentResponse struct {
	LoanAccountNumber  string    `json:"loanAccountNumber"`
	CustomerID         string    `json:"customerId"`
	TransactionID      string    `json:"transactionId"`
	PaymentDate        time.Time `json:"paymentDate"`
	PaymentAmount      float64   `json:"paymentAmount"`
	PaymentMode        string    `json:"paymentMode"`
	InterestComponent  float64   `json:"interestComponent"`
	PrincipalComponent float64   `json:"principalComponent"`
	PreviousPrincipal  float64   `json:"previousPrincipal"`
	CurrentPrincipal   float64   `json:"currentPrincipal"`
}

// LoanStatementRequest accepts exactly one of CustomerID or
// LoanAccountNumber.
type LoanStatementRequest struct {
	CustomerID        string `form:"customerId" json:"customerId"`
	LoanAccountNumber string `form:"loanAccountNumber" json:"loanAccountNumber"`
}

// LoanAccountSummary is the account header of a statement.
type LoanAccountSummary struct {
	LoanAccountNumber    string    `json:"loanAccountNumber"`
	CustomerID           string    `json:"customerId"`
	PrincipalAmount      float64   `json:"principalAmount"`
	AnnualInterestRate   float64   `json:"annualInterestRate"`
	TenureMonths         int32     `json:"tenureMonths"`
	MonthlyEMI           float64   `json:"monthlyEMI"`
	OutstandingPrincipal float64   `json:"outstandingPrincipal"`
	Status               string    `json:"status"`
	DisbursementDate     time.Time `json:"disbursementDate"`
}

type LoanStatementResponse struct {
	Accounts []LoanAccountSummary  `json:"accounts"`
	Payments []LoanPaymentResponse `json:"payments"`
}

type ClosureQuoteResponse struct {
	LoanAccountNumber    string  `json:"loanAccountNumber"`
	OutstandingPrincipal float64 `json:"outstandingPrincipal"`
	InterestForNextMonth float64 `json:"interestForNextMonth"`
	ForeclosureFee       float64 `json:"foreclosureFee"`
	TotalClosureAmount   float64 `json:"totalClosureAmount"`
}

type TenureReductionRequest struct {
	LoanAccountNumber string `json:"loanAccountNumber" binding:"required"`
	MonthsReduced     int32  `json:"monthsReduced" binding:"required,gt=0"`
}

type TenureReductionResponse struct {
	LoanAccountNumber string  `json:"loanAccountNumber"`
	CurrentEMI        float64 `json:"currentEMI"`
	NewEMI            float64 `json:"newEMI"`
	NewTenureMonths   int32   `json:"newTenureMonths"`
}

type PartPaymentImpactRequest struct {
	LoanAccountNumber string  `json:"loanAccountNumber" binding:"required"`
	PartPaymentAmount float64 `json:"partPaymentAmount" binding:"required,gt=0"`
}

type PartPaymentImpactResponse struct {
	LoanAccountNumber    string  `json:"loanAccountNumber"`
	OutstandingPrincipal float64 `json:"outstandingPrincipal"`
	ReducedPrincipal     float64 `json:"reducedPrincipal"`
	CurrentEMI           float64 `json:"currentEMI"`
	RemainingTenure      int32   `json:"remainingTenureMonths"`
}
