package interfaces

import (
	"context"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models"
)

// AccountStore owns the account records. Returned handles are mutated by the
// ledger only, under its own lock.
type AccountStore interface {
	SaveAccount(ctx context.Context, account *models.Account) error
	GetAccount(accountId string) (*models.Account, error)
	GetAccounts() ([]*models.Account, error)
}
