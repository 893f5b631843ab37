package consts

const (
	CustomersCollection    = "Customers"
	ChatsCollection        = "Chats"
	LoanAccountsCollection = "LoanAccounts"
	LoanPaymentsCollection = "LoanPayments"
)

// Loan account status values. Informational only, the ledger never
// gates on them.
const (
	AccountStatusActive     = "Active"
	AccountStatusClosed     = "Closed"
	AccountStatusDelinquent = "Delinquent"
)
