package cleanup

import (
	"context"
	"testing"

	mongodb "supportapi/internal/pkg/db/mongo"
	redisdb "supportapi/internal/pkg/db/redis"

	"github.com/stretchr/testify/assert"
)

func TestCleanupResources(t *testing.T) {
	ctx := context.Background()

	t.Run("cleanup with nil mongo client", func(t *testing.T) {
		redisClient := &redisdb.RedisClient{}

		assert.NotPanics(t, func() {
			CleanupResources(ctx, nil, redisClient)
		})
	})

	t.Run("cleanup with nil redis client", func(t *testing.T) {
		mongoClient := &mongodb.MongoClient{}

		assert.NotPanics(t, func() {
			CleanupResources(ctx, mongoClient, nil)
		})
	})

	t.Run("cleanup with both nil clients", func(t *testing.T) {
		assert.NotPanics(t, func() {
			CleanupResources(ctx, nil, nil)
		})
	})

	t.Run("cleanup with nil inner clients", func(t *testing.T) {
		mongoClient := &mongodb.MongoClient{Client: nil}
		redisClient := &redisdb.RedisClient{Client: nil}

		assert.NotPanics(t, func() {
			CleanupResources(ctx, mongoClient, redisClient)
		})
	})
}
