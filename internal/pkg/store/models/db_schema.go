package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type PhoneInfo struct {
	CountryCode string `bson:"countryCode" json:"countryCode"`
	Number      string `bson:"number" json:"number"`
}

type Customer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CustomerID string             `bson:"customerId" json:"customerId"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Email      string             `bson:"email" json:"email"`
	Phone      PhoneInfo          `bson:"phone" json:"phone"`
	Address    Address            `bson:"address" json:"address"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ChatMessage struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type ChatHistory struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID  string             `bson:"sessionId" json:"sessionId"`
	CustomerID string             `bson:"customerId" json:"customerId"`
	Messages   []ChatMessage      `bson:"messages" json:"messages"`
	Summary    string             `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type LoanAccount struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LoanAccountNumber       string             `bson:"loanAccountNumber" json:"loanAccountNumber"`
	CustomerID              string             `bson:"customerId" json:"customerId"`
	PrincipalAmount         float64            `bson:"principalAmount" json:"principalAmount"`
	AnnualInterestRate      float64            `bson:"annualInterestRate" json:"annualInterestRate"`
	TenureMonths            int32              `bson:"tenureMonths" json:"tenureMonths"`
	MonthlyEMI              float64            `bson:"monthlyEMI" json:"monthlyEMI"`
	OutstandingPrincipal    float64            `bson:"outstandingPrincipal" json:"outstandingPrincipal"`
	Status                  string             `bson:"status" json:"status"`
	PaymentReminder         bool               `bson:"paymentReminder" json:"paymentReminder"`
	DisbursementDate        time.Time          `bson:"disbursementDate" json:"disbursementDate"`
	NextPaymentDuePredicted *time.Time         `bson:"nextPaymentDuePredicted,omitempty" json:"nextPaymentDuePredicted,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt               *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type LoanPayment struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LoanAccountNumber  string             `bson:"loanAccountNumber" json:"loanAccountNumber"`
	CustomerID         string             `bson:"customerId" json:"customerId"`
	TransactionID      string             `bson:"transactionId" json:"transactionId"`
	Sequence           int64              `bson:"sequence" json:"sequence"`
	PaymentDate        time.Time          `bson:"paymentDate" json:"paymentDate"`
	PaymentAmount      float64            `bson:"paymentAmount" json:"paymentAmount"`
	PaymentMode        string             `bson:"paymentMode" json:"paymentMode"`
	InterestComponent  float64            `bson:"interestComponent" json:"interestComponent"`
	PrincipalComponent float64            `bson:"principalComponent" json:"principalComponent"`
	PreviousPrincipal  float64            `bson:"previousPrincipal" json:"previousPrincipal"`
	CurrentPrincipal   float64            `bson:"currentPrincipal" json:"currentPrincipal"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}
