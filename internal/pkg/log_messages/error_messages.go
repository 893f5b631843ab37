package log_messages

const (
	ErrorMongoConnection        = "failed to connect to MongoDB"
	ErrorRedisConnection        = "failed to connect to Redis"
	ErrorPubSubClientCreation   = "failed to create Pub/Sub client"
	ErrorKafkaProducerCreation  = "failed to create Kafka producer"
	ErrorMarshallingMessage     = "error while marshalling message: %v"
	ErrorInMessagePublishing    = "error while publishing message: %v"
	KafkaProducerCreated        = "kafka producer created"
	ErrorInKafkaDelivery        = "kafka delivery failed"
	TopicDoesNotExists          = "topic %s does not exist"
	ErrorFetchingAccount        = "error fetching loan account"
	ErrorFetchingPayments       = "error fetching loan payments"
	ErrorInsertingPayment       = "error inserting loan payment"
	ErrorFetchingCustomer       = "error fetching customer"
	ErrorInsertingCustomer      = "error inserting customer"
	ErrorUpdatingCustomer       = "error updating customer"
	ErrorFetchingChat           = "error fetching chat"
	ErrorInsertingChat          = "error inserting chat"
	ErrorUpdatingChat           = "error updating chat"
	ErrorDuplicateTransaction   = "duplicate payment transaction rejected"
	ErrorIdempotencyUnavailable = "idempotency store unavailable, continuing without dedup"
	ErrorReminderScan           = "payment reminder scan failed"
)
