package models

type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type PhonePayload struct {
	CountryCode string `json:"countryCode" binding:"required"`
	Number      string `json:"number" binding:"required,numeric"`
}

type CreateCustomerRequest struct {
	FirstName string         `json:"firstName" binding:"required"`
	LastName  string         `json:"lastName" binding:"required"`
	Email     string         `json:"email" binding:"required,email"`
	Phone     PhonePayload   `json:"phone" binding:"required"`
	Address   AddressPayload `json:"address"`
}

// UpdateCustomerRequest changes a single field of the customer document.
// Field must be one of the names accepted by the customer service, dotted
// paths address nested fields.
type UpdateCustomerRequest struct {
	CustomerID string      `json:"customerId" binding:"required"`
	Field      string      `json:"field" binding:"required"`
	Value      interface{} `json:"value" binding:"required"`
}

type CreateCustomerResponse struct {
	CustomerID string `json:"customerId"`
}
