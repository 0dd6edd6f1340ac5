package memory

import (
	"sync"
	"time"

	"github.com/sheikh-saqib/bank-account-ledger/internal/metrics"
)

// Collector keeps metrics in memory. Used by tests.
type Collector struct {
	mu sync.RWMutex

	operations     map[string]map[string]int64
	latencies      map[string][]time.Duration
	accountsOpened map[string]int64
	published      map[string]int64
	publishErrors  map[string]int64
}

func NewCollector() *Collector {
	return &Collector{
		operations:     make(map[string]map[string]int64),
		latencies:      make(map[string][]time.Duration),
		accountsOpened: make(map[string]int64),
		published:      make(map[string]int64),
		publishErrors:  make(map[string]int64),
	}
}

var _ metrics.Collector = (*Collector)(nil)

func (c *Collector) RecordOperation(op string, outcome string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	byOutcome, ok := c.operations[op]
	if !ok {
		byOutcome = make(map[string]int64)
		c.operations[op] = byOutcome
	}
	byOutcome[outcome]++
	c.latencies[op] = append(c.latencies[op], duration)
}

func (c *Collector) RecordAccountOpened(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accountsOpened[category]++
}

func (c *Collector) RecordPublish(topic string, success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if success {
		c.published[topic]++
	} else {
		c.publishErrors[topic]++
	}
}

// Operations returns how many times op finished with outcome.
func (c *Collector) Operations(op, outcome string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.operations[op][outcome]
}

func (c *Collector) AccountsOpened(category string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accountsOpened[category]
}

func (c *Collector) Published(topic string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.published[topic]
}

func (c *Collector) PublishErrors(topic string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.publishErrors[topic]
}

// Latencies returns a copy of the durations recorded for op, oldest first.
func (c *Collector) Latencies(op string) []time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]time.Duration, len(c.latencies[op]))
	copy(out, c.latencies[op])
	return out
}
