package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/bank-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
)

// MemoryAccountStore is an in-memory implementation of interfaces.AccountStore.
// Accounts are keyed by id; order keeps insertion order for listing.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
	order    []string
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		accounts: make(map[string]*models.Account),
		order:    make([]string, 0),
	}
}

// SaveAccount stores a new account. An id that is already taken is rejected
// and the existing account is left as is.
func (m *MemoryAccountStore) SaveAccount(ctx context.Context, account *models.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.ID]; exists {
		return errs.ErrAccountExists
	}

	m.accounts[account.ID] = account
	m.order = append(m.order, account.ID)
	return nil
}

func (m *MemoryAccountStore) GetAccount(accountId string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[accountId]
	if !ok {
		return nil, &errs.AccountNotFoundError{ID: accountId}
	}
	return account, nil
}

// GetAccounts returns the account handles in insertion order.
func (m *MemoryAccountStore) GetAccounts() ([]*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*models.Account, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.accounts[id])
	}
	return result, nil
}

// Compile-time check: ensure MemoryAccountStore implements AccountStore interface
var _ interfaces.AccountStore = (*MemoryAccountStore)(nil)
