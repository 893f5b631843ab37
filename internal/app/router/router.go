package router

import (
	"supportapi/internal/app/handlers"
	"supportapi/internal/app/middleware"
	"supportapi/internal/pkg/config"
	mongodb "supportapi/internal/pkg/db/mongo"
	"supportapi/internal/pkg/kafka/producer"
	"supportapi/internal/pkg/store/impl/chats"
	"supportapi/internal/pkg/store/impl/customers"
	"supportapi/internal/pkg/store/impl/loan_accounts"
	"supportapi/internal/pkg/store/impl/loan_payments"
	"supportapi/internal/pkg/store/repository"
	chatservice "supportapi/internal/service/chats"
	customerservice "supportapi/internal/service/customers"
	"supportapi/internal/service/interfaces"
	"supportapi/internal/service/ledger"
	"supportapi/internal/service/loans"
	"supportapi/internal/service/statement"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func SetupRouter(
	cfg *config.AppConfig,
	mongoClient *mongodb.MongoClient,
	redisClient *redis.Client,
	kafkaProducer producer.KafkaProducerInterface,
) *gin.Engine {

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.AttachTraceID())

	customersRepo := customers.NewCustomersRepository(mongoClient)
	chatsRepo := chats.NewChatsRepository(mongoClient)
	accountsRepo := loan_accounts.NewLoanAccountsRepository(mongoClient)
	paymentsRepo := loan_payments.NewLoanPaymentsRepository(mongoClient)

	var redisStore interfaces.RedisStoreOperations
	if redisClient != nil {
		redisStore = repository.NewRedisStoreAdapter(redisClient)
	}

	customerService := customerservice.NewCustomerService(customersRepo)
	chatService := chatservice.NewChatService(customersRepo, chatsRepo)
	loanService := loans.NewLoanService(customersRepo, accountsRepo)
	paymentService := ledger.NewApplyPaymentService(accountsRepo, paymentsRepo, redisStore, kafkaProducer, cfg.Ledger)
	statementService := statement.NewStatementService(accountsRepo, paymentsRepo)
	toolsService := statement.NewLoanToolsService(accountsRepo)

	customerHandler := handlers.NewCustomerHandler(customerService)
	chatHandler := handlers.NewChatHandler(chatService)
	loanHandler := handlers.NewLoanHandler(loanService, paymentService, statementService, toolsService)
	healthCheckHandler := handlers.NewHealthCheckHandler()

	api := server.Group("/api")

	api.POST("/Customer", customerHandler.CreateCustomer)
	api.GET("/Customer/:CustomerId", customerHandler.GetCustomer)
	api.GET("/Customer/:CustomerId/Chats", chatHandler.GetChatsByCustomer)
	api.PATCH("/Customer", customerHandler.UpdateCustomer)

	api.POST("/Chat", chatHandler.CreateChat)
	api.GET("/Chat/Session/:SessionId", chatHandler.GetChat)
	api.POST("/Chat/Messages", chatHandler.AppendMessages)
	api.PATCH("/Chat/Summary", chatHandler.UpdateSummary)

	api.POST("/Loan/AddLoanDetails", loanHandler.AddLoanDetails)
	api.POST("/Loan/AddLoanPayment", loanHandler.AddLoanPayment)
	api.GET("/LoanStatement", loanHandler.GetLoanStatement)
	api.GET("/Loan/ClosureQuote/:LoanAccountNumber", loanHandler.ClosureQuote)
	api.POST("/Loan/TenureReduction", loanHandler.TenureReduction)
	api.POST("/Loan/PartPaymentImpact", loanHandler.PartPaymentImpact)

	api.GET("/HealthCheck", healthCheckHandler.HealthCheck)

	return server
}
