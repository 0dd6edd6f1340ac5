package metrics

import (
	"time"
)

// Ledger operation names used as metric labels.
const (
	OpCreateAccount = "create_account"
	OpDeposit       = "deposit"
	OpWithdraw      = "withdraw"
	OpTransfer      = "transfer"
)

// Collector defines the interface for collecting ledger metrics.
type Collector interface {
	// RecordOperation records one ledger operation. Outcome is "ok" or an error class.
	RecordOperation(op string, outcome string, duration time.Duration)
	RecordAccountOpened(category string)
	RecordPublish(topic string, success bool)
}

// NoOpCollector is used when metrics are not needed.
type NoOpCollector struct{}

func (NoOpCollector) RecordOperation(op string, outcome string, duration time.Duration) {}

func (NoOpCollector) RecordAccountOpened(category string) {}

func (NoOpCollector) RecordPublish(topic string, success bool) {}
