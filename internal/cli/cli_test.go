package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sheikh-saqib/bank-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/bank-account-ledger/internal/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input ...string) (*ledger.Ledger, string) {
	t.Helper()

	l := ledger.NewLedger(memory.NewMemoryAccountStore())
	var out bytes.Buffer
	err := Run(context.Background(), strings.NewReader(strings.Join(input, "\n")+"\n"), &out, l)
	require.NoError(t, err)
	return l, out.String()
}

func TestRun_CreateAndDisplay(t *testing.T) {
	_, out := run(t,
		"1", "checking", "C1", "100",
		"1", "savings", "S1", "499",
		"2",
		"6",
	)

	assert.Contains(t, out, "Account created.")
	assert.Contains(t, out, "Initial deposit must be at least $500.00 for savings accounts, got $499.00.")
	assert.Contains(t, out, "Account Number: C1, Balance: $100.00")
	assert.NotContains(t, out, "Account Number: S1")
}

func TestRun_WithdrawDenied(t *testing.T) {
	l, out := run(t,
		"1", "checking", "C1", "100",
		"4", "C1", "1",
		"4", "C9", "1",
		"6",
	)

	assert.Contains(t, out, "Withdrawal denied: cannot go below minimum balance of $100.00.")
	assert.Contains(t, out, "Account not found.")
	assert.NotContains(t, out, "Withdrawal successful.")

	view, ok := l.FindAccount("C1")
	require.True(t, ok)
	assert.True(t, view.Balance.Equal(decimal.NewFromInt(100)))
}

func TestRun_Deposit(t *testing.T) {
	l, out := run(t,
		"1", "checking", "C1", "100",
		"3", "C1", "25",
		"3", "C1", "0.001",
		"2",
		"6",
	)

	assert.Contains(t, out, "Deposit successful.")
	assert.Contains(t, out, "Amount must be whole cents below 1000000000000000.")
	assert.Contains(t, out, "Account Number: C1, Balance: $125.00")

	view, ok := l.FindAccount("C1")
	require.True(t, ok)
	assert.True(t, view.Balance.Equal(decimal.NewFromInt(125)))
}

func TestRun_Transfer(t *testing.T) {
	l, out := run(t,
		"1", "savings", "S1", "550",
		"1", "checking", "C1", "100",
		"5", "S1", "C1", "50",
		"5", "S1", "C1", "1",
		"6",
	)

	assert.Contains(t, out, "Transfer successful.")
	assert.Contains(t, out, "Transfer denied: cannot reduce balance below minimum required.")

	s1, _ := l.FindAccount("S1")
	c1, _ := l.FindAccount("C1")
	assert.True(t, s1.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, c1.Balance.Equal(decimal.NewFromInt(150)))
}

func TestRun_InvalidInput(t *testing.T) {
	_, out := run(t,
		"9",
		"3", "C1", "lots",
		"6",
	)

	assert.Contains(t, out, "Invalid option. Please try again.")
	assert.Contains(t, out, `Invalid amount "lots".`)
}

func TestRun_EndOfInput(t *testing.T) {
	l, out := run(t, "1", "checking")

	assert.Contains(t, out, "Enter account number: ")
	assert.Empty(t, l.ListAccounts())
}
