package models

import "time"

// PaymentRecordedEvent is published to Kafka after every successful ledger
// append.
type PaymentRecordedEvent struct {
	LoanAccountNumber  string    `json:"loanAccountNumber"`
	CustomerID         string    `json:"customerId"`
	TransactionID      string    `json:"transactionId"`
	Sequence           int64     `json:"sequence"`
	PaymentDate        time.Time `json:"paymentDate"`
	PaymentAmount      float64   `json:"paymentAmount"`
	PaymentMode        string    `json:"paymentMode"`
	InterestComponent  float64   `json:"interestComponent"`
	PrincipalComponent float64   `json:"principalComponent"`
	CurrentPrincipal   float64   `json:"currentPrincipal"`
	RecordedAt         time.Time `json:"recordedAt"`
}

// PaymentReminderMessage is published to Pub/Sub by the reminder worker.
type PaymentReminderMessage struct {
	CustomerID        string    `json:"customerId" validate:"required"`
	LoanAccountNumber string    `json:"loanAccountNumber" validate:"required"`
	PredictedDueDate  time.Time `json:"predictedDueDate" validate:"required"`
	MonthlyEMI        float64   `json:"monthlyEMI"`
	GeneratedAt       time.Time `json:"generatedAt"`
}
