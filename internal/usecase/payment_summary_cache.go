package usecase

import (
	"context"
	"sync"
	"time"

	"teamflow_payments/internal/domain/entities"
	"teamflow_payments/internal/usecase/interfaces"
)

type summaryKey struct {
	payerID   string
	subjectID string
}

type cachedSummary struct {
	summary     entities.PaymentSummary
	lastUpdated time.Time
}

// InMemoryPaymentSummaryCache keeps summaries in process memory. A ttl of zero
// keeps entries until they are refreshed.
type InMemoryPaymentSummaryCache struct {
	load interfaces.PaymentSummaryLoader
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[summaryKey]cachedSummary
}

var _ interfaces.IPaymentSummaryCache = (*InMemoryPaymentSummaryCache)(nil)

func NewInMemoryPaymentSummaryCache(load interfaces.PaymentSummaryLoader, ttl time.Duration) *InMemoryPaymentSummaryCache {
	return &InMemoryPaymentSummaryCache{
		load:    load,
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		entries: make(map[summaryKey]cachedSummary),
	}
}

func (c *InMemoryPaymentSummaryCache) Fetch(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error) {
	key := summaryKey{payerID: payerID, subjectID: subjectID}

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && (c.ttl == 0 || c.now().Sub(cached.lastUpdated) < c.ttl) {
		return cached.summary, cached.lastUpdated, nil
	}
	return c.Refresh(ctx, payerID, subjectID)
}

func (c *InMemoryPaymentSummaryCache) Refresh(ctx context.Context, payerID, subjectID string) (entities.PaymentSummary, time.Time, error) {
	summary, err := c.load(ctx, payerID, subjectID)
	if err != nil {
		return entities.PaymentSummary{}, time.Time{}, err
	}
	updated := c.now()

	c.mu.Lock()
	c.entries[summaryKey{payerID: payerID, subjectID: subjectID}] = cachedSummary{summary: summary, lastUpdated: updated}
	c.mu.Unlock()

	return summary, updated, nil
}
