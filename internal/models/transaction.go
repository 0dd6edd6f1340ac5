package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a completed transfer between two accounts
type Transaction struct {
	ID          string          `json:"id"`
	FromAccount string          `json:"from_account"`
	ToAccount   string          `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
