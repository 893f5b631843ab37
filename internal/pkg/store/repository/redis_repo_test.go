package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisStoreAdapter(t *testing.T) {
	db, mock := redismock.NewClientMock()

	adapter := NewRedisStoreAdapter(db)

	assert.NotNil(t, adapter)
	assert.Equal(t, db, adapter.client)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreAdapter_Set(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetVal("OK")

		err := adapter.Set(ctx, key, value, expiration)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"
		value := "test-value"
		expiration := 5 * time.Minute

		mock.ExpectSet(key, value, expiration).SetErr(redis.Nil)

		err := adapter.Set(ctx, key, value, expiration)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"
		expectedValue := []byte("test-value")

		mock.ExpectGet(key).SetVal(string(expectedValue))

		result, err := adapter.Get(ctx, key)

		assert.NoError(t, err)
		assert.Equal(t, expectedValue, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectGet(key).SetErr(redis.Nil)

		result, err := adapter.Get(ctx, key)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectDel(key).SetVal(1)

		err := adapter.Delete(ctx, key)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectDel(key).SetErr(redis.Nil)

		err := adapter.Delete(ctx, key)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_Exists(t *testing.T) {
	t.Run("Key exists", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectExists(key).SetVal(1)

		exists, err := adapter.Exists(ctx, key)

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Key does not exist", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		key := "test-key"

		mock.ExpectExists(key).SetVal(0)

		exists, err := adapter.Exists(ctx, key)

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionKeyBuilder(t *testing.T) {
	key := TransactionKeyBuilder("txn-42")

	assert.Equal(t, "supportapi:payment:txn:txn-42", key)
}

func TestRedisStoreAdapter_AcquireTransactionLock(t *testing.T) {
	t.Run("Lock acquired", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		ttl := 24 * time.Hour

		mock.Regexp().ExpectSetNX(TransactionKeyBuilder("txn-42"), `.+`, ttl).SetVal(true)

		acquired, err := adapter.AcquireTransactionLock(ctx, "txn-42", ttl)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lock already held", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		ttl := 24 * time.Hour

		mock.Regexp().ExpectSetNX(TransactionKeyBuilder("txn-42"), `.+`, ttl).SetVal(false)

		acquired, err := adapter.AcquireTransactionLock(ctx, "txn-42", ttl)

		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non positive TTL falls back to a minute", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()

		mock.Regexp().ExpectSetNX(TransactionKeyBuilder("txn-42"), `.+`, time.Minute).SetVal(true)

		acquired, err := adapter.AcquireTransactionLock(ctx, "txn-42", 0)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		adapter := NewRedisStoreAdapter(db)
		ctx := context.Background()
		ttl := 24 * time.Hour

		mock.Regexp().ExpectSetNX(TransactionKeyBuilder("txn-42"), `.+`, ttl).SetErr(redis.Nil)

		acquired, err := adapter.AcquireTransactionLock(ctx, "txn-42", ttl)

		assert.Error(t, err)
		assert.False(t, acquired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreAdapter_ReleaseTransactionLock(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisStoreAdapter(db)
	ctx := context.Background()

	mock.ExpectDel(TransactionKeyBuilder("txn-42")).SetVal(1)

	err := adapter.ReleaseTransactionLock(ctx, "txn-42")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
