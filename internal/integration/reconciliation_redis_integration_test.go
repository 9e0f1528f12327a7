package integration

import (
	"context"
	"testing"
	"time"

	"shop-ledger/internal/catalog/adapter/persistence"
	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/shared/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "localhost:6379",
		DB:           14,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func TestRedisReconciliationLog_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := createTestRedisClient()
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	stream := "shop-ledger:it:" + uuid.NewString()
	defer client.Del(context.Background(), stream)

	recon := persistence.NewRedisReconciliationLog(client, stream, 100, logger.NewNopLogger())
	entry := model.ReconciliationEntry{
		ImportID:  "64b7f0c2a1b2c3d4e5f60701",
		ProductID: "64b7f0c2a1b2c3d4e5f60718",
		Quantity:  4,
		Reason:    "connection reset",
		RequestID: "req-1",
		FailedAt:  time.Now(),
	}
	require.NoError(t, recon.Append(ctx, entry))

	msgs, err := client.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, entry.ImportID, msgs[0].Values["importId"])
	assert.Equal(t, entry.ProductID, msgs[0].Values["productId"])
	assert.Equal(t, "4", msgs[0].Values["quantity"])
	assert.Equal(t, "req-1", msgs[0].Values["requestId"])
}
