package customers

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"supportapi/internal/pkg/consts"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/models"
	storemodels "supportapi/internal/pkg/store/models"
	"supportapi/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/mongo"
)

// allowedUpdateFields is the closed set of customer fields the update
// endpoint may touch. Dotted names address the embedded documents.
var allowedUpdateFields = map[string]bool{
	"firstName":         true,
	"lastName":          true,
	"email":             true,
	"phone.countryCode": true,
	"phone.number":      true,
	"address.street":    true,
	"address.city":      true,
	"address.state":     true,
	"address.zipCode":   true,
	"address.country":   true,
}

type CustomerService struct {
	customersRepo interfaces.CustomersRepositoryInterface
}

func NewCustomerService(customersRepo interfaces.CustomersRepositoryInterface) *CustomerService {
	return &CustomerService{customersRepo: customersRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (*models.CreateCustomerResponse, error) {

	customerID, err := s.allocateCustomerID(ctx)
	if err != nil {
		return nil, err
	}

	customer := &storemodels.Customer{
		CustomerID: customerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone: storemodels.PhoneInfo{
			CountryCode: req.Phone.CountryCode,
			Number:      req.Phone.Number,
		},
		Address: storemodels.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.customersRepo.InsertCustomer(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Another writer grabbed the id between the existence check
			// and the insert.
			return nil, consts.ErrorCustomerIdExhausted
		}
		return nil, consts.ErrorStorage
	}

	return &models.CreateCustomerResponse{CustomerID: customerID}, nil
}

// allocateCustomerID draws random six digit ids until an unused one is
// found, bounded so a saturated id space cannot spin forever.
func (s *CustomerService) allocateCustomerID(ctx context.Context) (string, error) {

	for attempt := 0; attempt < consts.MaxCustomerIdAttempts; attempt++ {
		candidate := strconv.Itoa(consts.CustomerIdLow + rand.Intn(consts.CustomerIdHigh-consts.CustomerIdLow))

		exists, err := s.customersRepo.CustomerIDExists(ctx, candidate)
		if err != nil {
			return "", consts.ErrorStorage
		}
		if !exists {
			return candidate, nil
		}
	}

	logger.CtxError(ctx, "Customer id space exhausted", consts.ErrorCustomerIdExhausted)
	return "", consts.ErrorCustomerIdExhausted
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*storemodels.Customer, error) {

	customer, err := s.customersRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, consts.ErrorCustomerNotFound
		}
		return nil, consts.ErrorStorage
	}

	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, req models.UpdateCustomerRequest) error {

	if !allowedUpdateFields[req.Field] {
		logger.CtxWarn(ctx, "Rejected update of disallowed customer field",
			slog.String("customer_id", req.CustomerID),
			slog.String("field", req.Field),
		)
		return consts.ErrorUpdateFieldNotAllowed
	}

	if _, err := s.customersRepo.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return consts.ErrorCustomerNotFound
		}
		return consts.ErrorStorage
	}

	if err := s.customersRepo.UpdateCustomerField(ctx, req.CustomerID, req.Field, req.Value); err != nil {
		return consts.ErrorStorage
	}

	return nil
}
