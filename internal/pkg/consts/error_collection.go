package consts

import "supportapi/internal/pkg/models"

var (
	ErrorInvalidRequest = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_REQUEST_INVALID",
		Message: "Request failed validation",
	}
	ErrorInvalidAmount = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_PAYMENT_AMOUNT_INVALID",
		Message: "Payment amount must be greater than zero",
	}
	ErrorFuturePaymentDate = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_PAYMENT_DATE_IN_FUTURE",
		Message: "Payment date is in the future",
	}
	ErrorAccountNotFound = &models.CustomError{
		Code:    "SUPPORTAPI_LOAN_ACCOUNT_NOT_FOUND",
		Message: "Loan account not found",
	}
	ErrorCustomerNotFound = &models.CustomError{
		Code:    "SUPPORTAPI_CUSTOMER_NOT_FOUND",
		Message: "Customer not found",
	}
	ErrorChatNotFound = &models.CustomError{
		Code:    "SUPPORTAPI_CHAT_NOT_FOUND",
		Message: "Chat not found",
	}
	ErrorConcurrencyConflict = &models.CustomError{
		Code:    "SUPPORTAPI_LEDGER_CONCURRENT_WRITE_CONFLICT",
		Message: "Concurrent payment write conflict, retries exhausted",
	}
	ErrorStorage = &models.CustomError{
		Code:    "SUPPORTAPI_INTERNAL_ERROR_STORAGE",
		Message: "Storage operation failed",
	}
	ErrorDuplicateTransaction = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_DUPLICATE_TRANSACTION",
		Message: "Payment transaction already in progress",
	}
	ErrorUpdateFieldNotAllowed = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_UPDATE_FIELD_NOT_ALLOWED",
		Message: "Customer field is not updatable",
	}
	ErrorCustomerIdExhausted = &models.CustomError{
		Code:    "SUPPORTAPI_INTERNAL_ERROR_CUSTOMER_ID_EXHAUSTED",
		Message: "Could not allocate a unique customer id",
	}
	ErrorAccountInvariant = &models.CustomError{
		Code:    "SUPPORTAPI_VALIDATION_LOAN_ACCOUNT_INVARIANT",
		Message: "Loan account violates principal/rate/tenure invariants",
	}
)
