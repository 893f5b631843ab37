package interfaces

import (
	"context"
	"supportapi/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomersRepositoryInterface interface {
	GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error)
	InsertCustomer(ctx context.Context, customer *models.Customer) error
	UpdateCustomerField(ctx context.Context, customerID string, field string, value interface{}) error
	CustomerIDExists(ctx context.Context, customerID string) (bool, error)
}

type CustomersStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.Customer, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}
