package consts

const (
	// MoneyScale is the number of decimal places every ledger figure is
	// rounded to. Each computation step rounds independently, values are
	// never carried at higher precision between steps.
	MoneyScale = 2

	// MaxApplyPaymentAttempts bounds the optimistic retry loop of the
	// amortization engine. A duplicate sequence insert means a concurrent
	// writer won the race for that slot.
	MaxApplyPaymentAttempts = 3

	// ForeclosureFeePercent is charged on the outstanding principal when
	// quoting a loan closure.
	ForeclosureFeePercent = 0.02

	// MonthsPerYear converts an annual percentage rate to a monthly rate.
	MonthsPerYear = 12

	// FallbackReminderDay is used when a customer has no payment history
	// or no stable payment cadence.
	FallbackReminderDay = 28

	// MaxCustomerIdAttempts bounds the retry loop allocating a random
	// customer id.
	MaxCustomerIdAttempts = 10

	// CustomerIdLow and CustomerIdHigh delimit the half-open range random
	// customer ids are drawn from.
	CustomerIdLow  = 500000
	CustomerIdHigh = 600000
)
