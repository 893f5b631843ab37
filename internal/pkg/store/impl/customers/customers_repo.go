package customers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"supportapi/internal/pkg/consts"
	mongodb "supportapi/internal/pkg/db/mongo"
	"supportapi/internal/pkg/logger"
	"supportapi/internal/pkg/store/models"
	"supportapi/internal/pkg/store/repository"
	"supportapi/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomersRepository struct {
	repo interfaces.CustomersStoreInterface
}

func NewCustomersRepository(client *mongodb.MongoClient) *CustomersRepository {
	collection := client.Database.Collection(consts.CustomersCollection)
	repo := repository.NewMongoRepository[models.Customer](collection)
	return &CustomersRepository{repo: repo}
}

func NewCustomersRepositoryWithInterface(repo interfaces.CustomersStoreInterface) *CustomersRepository {
	return &CustomersRepository{repo: repo}
}

func (cr *CustomersRepository) GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error) {

	filter := bson.M{"customerId": customerID}
	customer, err := cr.repo.FindOne(ctx, filter, options.FindOne())

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			logger.CtxWarn(ctx, "No customer found", slog.String("customer_id", customerID))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding customer", err, slog.String("customer_id", customerID))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched customer", slog.String("customer_id", customerID))
	return &customer, nil
}

func (cr *CustomersRepository) InsertCustomer(ctx context.Context, customer *models.Customer) error {

	if _, err := cr.repo.Create(ctx, customer); err != nil {
		logger.CtxError(ctx, "Error inserting customer", err, slog.String("customer_id", customer.CustomerID))
		return err
	}

	logger.CtxInfo(ctx, "Inserted customer", slog.String("customer_id", customer.CustomerID))
	return nil
}

func (cr *CustomersRepository) UpdateCustomerField(ctx context.Context, customerID string, field string, value interface{}) error {

	filter := bson.M{"customerId": customerID}
	update := bson.M{
		field:       value,
		"updatedAt": time.Now().UTC(),
	}

	if err := cr.repo.UpdateOne(ctx, filter, update); err != nil {
		logger.CtxError(ctx, "Error updating customer field", err,
			slog.String("customer_id", customerID),
			slog.String("field", field),
		)
		return err
	}

	logger.CtxInfo(ctx, "Updated customer field",
		slog.String("customer_id", customerID),
		slog.String("field", field),
	)
	return nil
}

func (cr *CustomersRepository) CustomerIDExists(ctx context.Context, customerID string) (bool, error) {

	count, err := cr.repo.CountDocuments(ctx, bson.M{"customerId": customerID})
	if err != nil {
		logger.CtxError(ctx, "Error counting customers", err, slog.String("customer_id", customerID))
		return false, err
	}

	return count > 0, nil
}
