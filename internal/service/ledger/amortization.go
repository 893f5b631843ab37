package ledger

import (
	"supportapi/internal/pkg/consts"

	"github.com/shopspring/decimal"
)

// PaymentSplit is the outcome of applying one payment against an
// outstanding principal.
type PaymentSplit struct {
	InterestComponent  float64
	PrincipalComponent float64
	PreviousPrincipal  float64
	CurrentPrincipal   float64
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(consts.MoneyScale)
}

// MonthlyRate converts an annual percentage rate to a monthly fraction.
func MonthlyRate(annualRatePercent float64) decimal.Decimal {
	return decimal.NewFromFloat(annualRatePercent).
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(consts.MonthsPerYear))
}

// SplitPayment splits a payment into interest and principal components
// against the given outstanding principal. Each step is rounded to two
// decimal places independently, intermediate values are never carried at
// higher precision. Overpayment is allowed and drives the current
// principal negative.
func SplitPayment(previousPrincipal, annualRatePercent, paymentAmount float64) PaymentSplit {
	prev := decimal.NewFromFloat(previousPrincipal)
	payment := decimal.NewFromFloat(paymentAmount)

	interest := roundMoney(prev.Mul(MonthlyRate(annualRatePercent)))
	principal := roundMoney(payment.Sub(interest))
	current := roundMoney(prev.Sub(principal))

	return PaymentSplit{
		InterestComponent:  interest.InexactFloat64(),
		PrincipalComponent: principal.InexactFloat64(),
		PreviousPrincipal:  previousPrincipal,
		CurrentPrincipal:   current.InexactFloat64(),
	}
}

// MonthlyEMI computes the equated monthly installment for a loan.
// P*r*(1+r)^n / ((1+r)^n - 1), zero-rate loans amortize linearly.
func MonthlyEMI(principal, annualRatePercent float64, tenureMonths int32) float64 {
	p := decimal.NewFromFloat(principal)
	n := int64(tenureMonths)

	rate := MonthlyRate(annualRatePercent)
	if rate.IsZero() {
		return roundMoney(p.Div(decimal.NewFromInt(n))).InexactFloat64()
	}

	compound := rate.Add(decimal.NewFromInt(1)).Pow(decimal.NewFromInt(n))
	emi := p.Mul(rate).Mul(compound).Div(compound.Sub(decimal.NewFromInt(1)))

	return roundMoney(emi).InexactFloat64()
}

// ClosureQuote prices an early loan closure: the outstanding principal
// plus one further month of interest plus the foreclosure fee.
func ClosureQuote(outstandingPrincipal, annualRatePercent float64) (interestNextMonth, fee, total float64) {
	outstanding := decimal.NewFromFloat(outstandingPrincipal)

	interest := roundMoney(outstanding.Mul(MonthlyRate(annualRatePercent)))
	feeAmount := roundMoney(outstanding.Mul(decimal.NewFromFloat(consts.ForeclosureFeePercent)))
	totalAmount := roundMoney(outstanding.Add(interest).Add(feeAmount))

	return interest.InexactFloat64(), feeAmount.InexactFloat64(), totalAmount.InexactFloat64()
}
