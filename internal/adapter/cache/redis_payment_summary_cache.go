package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/infrastructure/config"
	"teamflow_payments/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultKeyPrefix = "teamflow:payment_summary"

// redisKV is the slice of redis.Cmdable the cache needs.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type cachedSummary struct {
	Summary     entities.PaymentSummary `json:"summary"`
	LastUpdated time.Time               `json:"last_updated"`
}

// RedisPaymentSummaryCache shares summaries across instances. Redis failures
// degrade to loading straight from the ledger.
type RedisPaymentSummaryCache struct {
	client    redisKV
	load      interfaces.PaymentSummaryLoader
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
	now       func() time.Time
}

var _ interfaces.IPaymentSummaryCache = (*RedisPaymentSummaryCache)(nil)

// NewRedisClient opens a client and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func NewRedisPaymentSummaryCache(client redisKV, load interfaces.PaymentSummaryLoader, ttl time.Duration, logger *zap.Logger) *RedisPaymentSummaryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPaymentSummaryCache{
		client:    client,
		load:      load,
		ttl:       ttl,
		keyPrefix: defaultKeyPrefix,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (c *RedisPaymentSummaryCache) key(payerID, subjectID string) string {
	return fmt.Sprintf("%s:%s:%s", c.keyPrefix, payerID, subjectID)
}

func (c *RedisPaymentSummaryCache) Fetch(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error) {
	key := c.key(payerID, subjectID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		c.logger.Debug("Cache miss for payment summary", zap.String("key", key))
	case err != nil:
		c.logger.Warn("Failed to get payment summary from cache", zap.String("key", key), zap.Error(err))
	default:
		var cached cachedSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached.Summary, cached.LastUpdated, nil
		}
		c.logger.Warn("Discarding corrupted payment summary", zap.String("key", key))
	}

	return c.Refresh(ctx, payerID, subjectID)
}

func (c *RedisPaymentSummaryCache) Refresh(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error) {
	summary, err := c.load(ctx, payerID, subjectID)
	if err != nil {
		return entities.PaymentSummary{}, time.Time{}, err
	}
	updated := c.now()

	data, err := json.Marshal(cachedSummary{Summary: summary, LastUpdated: updated})
	if err != nil {
		c.logger.Error("Failed to marshal payment summary", zap.Error(err))
		return summary, updated, nil
	}
	key := c.key(payerID, subjectID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to store payment summary", zap.String("key", key), zap.Error(err))
	}
	return summary, updated, nil
}
