package persistence

import (
	"context"
	"fmt"
	"time"

	"shop-ledger/internal/catalog/domain/model"
	"shop-ledger/internal/catalog/domain/repository"
	"shop-ledger/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

// StreamWriter is the part of *redis.Client the log needs.
type StreamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisReconciliationLog appends partial-import records to a Redis stream so
// an operator can replay the missing stock decrements.
type RedisReconciliationLog struct {
	client    StreamWriter
	stream    string
	maxLength int64
	logger    logger.Logger
}

var _ repository.ReconciliationLog = (*RedisReconciliationLog)(nil)

func NewRedisReconciliationLog(client StreamWriter, stream string, maxLength int64, log logger.Logger) *RedisReconciliationLog {
	return &RedisReconciliationLog{
		client:    client,
		stream:    stream,
		maxLength: maxLength,
		logger:    log.WithComponent("reconciliation-log"),
	}
}

// Append writes entry to the stream, trimming it approximately to maxLength.
func (r *RedisReconciliationLog) Append(ctx context.Context, entry model.ReconciliationEntry) error {
	id, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		MaxLen: r.maxLength,
		Approx: r.maxLength > 0,
		Values: map[string]interface{}{
			"importId":  entry.ImportID,
			"productId": entry.ProductID,
			"quantity":  entry.Quantity,
			"reason":    entry.Reason,
			"requestId": entry.RequestID,
			"failedAt":  entry.FailedAt.UTC().Format(time.RFC3339Nano),
		},
	}).Result()
	if err != nil {
		r.logger.WithFields(map[string]interface{}{
			"stream":    r.stream,
			"import_id": entry.ImportID,
		}).Errorf("Failed to append reconciliation entry: %v", err)
		return fmt.Errorf("append reconciliation entry: %w", err)
	}

	r.logger.WithFields(map[string]interface{}{
		"stream":     r.stream,
		"entry_id":   id,
		"import_id":  entry.ImportID,
		"product_id": entry.ProductID,
	}).Warn("Recorded import without stock decrement")
	return nil
}

// LoggerReconciliationLog is used when Redis is disabled. Entries only reach the log output.
type LoggerReconciliationLog struct {
	logger logger.Logger
}

var _ repository.ReconciliationLog = (*LoggerReconciliationLog)(nil)

func NewLoggerReconciliationLog(log logger.Logger) *LoggerReconciliationLog {
	return &LoggerReconciliationLog{logger: log.WithComponent("reconciliation-log")}
}

func (l *LoggerReconciliationLog) Append(ctx context.Context, entry model.ReconciliationEntry) error {
	l.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"import_id":  entry.ImportID,
		"product_id": entry.ProductID,
		"quantity":   entry.Quantity,
		"reason":     entry.Reason,
		"failed_at":  entry.FailedAt,
	}).Error("RECONCILE: import recorded without stock decrement")
	return nil
}
