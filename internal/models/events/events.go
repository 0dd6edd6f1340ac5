package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// Topics the ledger publishes to.
const (
	TopicAccountOpened     = "account_opened"
	TopicFundsDeposited    = "funds_deposited"
	TopicFundsWithdrawn    = "funds_withdrawn"
	TopicTransferCompleted = "transfer_completed"
)

// Event is anything the ledger publishes. Key selects the partition.
type Event interface {
	Topic() string
	Key() string
}

type AccountOpened struct {
	EventID        string          `json:"event_id"`
	AccountID      string          `json:"account_id"`
	Category       string          `json:"category"`
	InitialDeposit decimal.Decimal `json:"initial_deposit"`
	OccurredAt     time.Time       `json:"occurred_at"`
}

func (e AccountOpened) Topic() string { return TopicAccountOpened }
func (e AccountOpened) Key() string   { return e.AccountID }

type FundsDeposited struct {
	EventID    string          `json:"event_id"`
	AccountID  string          `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e FundsDeposited) Topic() string { return TopicFundsDeposited }
func (e FundsDeposited) Key() string   { return e.AccountID }

type FundsWithdrawn struct {
	EventID    string          `json:"event_id"`
	AccountID  string          `json:"account_id"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e FundsWithdrawn) Topic() string { return TopicFundsWithdrawn }
func (e FundsWithdrawn) Key() string   { return e.AccountID }

type TransferCompleted struct {
	TransactionID string          `json:"transaction_id"`
	FromAccount   string          `json:"from_account"`
	ToAccount     string          `json:"to_account"`
	Amount        decimal.Decimal `json:"amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func (e TransferCompleted) Topic() string { return TopicTransferCompleted }
func (e TransferCompleted) Key() string   { return e.FromAccount }
