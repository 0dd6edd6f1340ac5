package memory

import (
	"context"
	"testing"
	"time"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(id string) *models.Account {
	a, err := models.NewAccount(models.Checking, id, decimal.NewFromInt(100), time.Now())
	if err != nil {
		panic(err)
	}
	return a
}

func TestMemoryAccountStore_SaveAndGet(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAccount(ctx, account("C1")))

	got, err := store.GetAccount("C1")
	require.NoError(t, err)
	assert.Equal(t, "C1", got.ID)

	_, err = store.GetAccount("C2")
	assert.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestMemoryAccountStore_RejectsDuplicate(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()

	first := account("C1")
	require.NoError(t, store.SaveAccount(ctx, first))
	assert.ErrorIs(t, store.SaveAccount(ctx, account("C1")), errs.ErrAccountExists)

	got, err := store.GetAccount("C1")
	require.NoError(t, err)
	assert.Same(t, first, got)

	all, err := store.GetAccounts()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryAccountStore_GetAccountsKeepsOrder(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx := context.Background()
	ids := []string{"b", "c", "a"}
	for _, id := range ids {
		require.NoError(t, store.SaveAccount(ctx, account(id)))
	}

	all, err := store.GetAccounts()
	require.NoError(t, err)
	require.Len(t, all, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, all[i].ID)
	}
}

func TestMemoryAccountStore_CanceledContext(t *testing.T) {
	store := NewMemoryAccountStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.SaveAccount(ctx, account("C1")), context.Canceled)
	_, err := store.GetAccount("C1")
	assert.Error(t, err)
}
