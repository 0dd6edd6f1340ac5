package models

import (
	"testing"
	"time"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, category Category, id string, initial int64) *Account {
	t.Helper()
	a, err := NewAccount(category, id, decimal.NewFromInt(initial), time.Now())
	require.NoError(t, err)
	return a
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{in: "checking", want: Checking},
		{in: "SAVINGS", want: Savings},
		{in: "  savings\n", want: Savings},
		{in: "", wantErr: true},
		{in: "credit", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_Floors(t *testing.T) {
	assert.True(t, Checking.MinBalance().Equal(decimal.NewFromInt(100)))
	assert.True(t, Savings.MinBalance().Equal(decimal.NewFromInt(500)))
	assert.True(t, Savings.MinInitialDeposit().Equal(Savings.MinBalance()))
}

func TestAccount_Withdraw(t *testing.T) {
	a := newAccount(t, Checking, "C1", 150)

	require.NoError(t, a.Withdraw(decimal.NewFromInt(50)))
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(100)))

	err := a.Withdraw(decimal.RequireFromString("0.01"))
	var minErr *errs.MinimumBalanceError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, "C1", minErr.AccountID)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(100)))

	assert.ErrorIs(t, a.Withdraw(decimal.NewFromInt(-5)), errs.ErrNegativeAmount)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(100)))
}

func TestAccount_Deposit(t *testing.T) {
	a := newAccount(t, Savings, "S1", 500)

	require.NoError(t, a.Deposit(decimal.RequireFromString("1000000.25")))
	assert.Equal(t, "1000500.25", a.Balance.String())
	assert.ErrorIs(t, a.Deposit(decimal.NewFromInt(-1)), errs.ErrNegativeAmount)
}

func TestAccount_ViewIsCopy(t *testing.T) {
	a := newAccount(t, Savings, "S1", 700)
	view := a.View()

	require.NoError(t, a.Withdraw(decimal.NewFromInt(100)))

	assert.True(t, view.Balance.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, "Account Number: S1, Balance: $600.00", a.String())
}

func TestNewAccount_UnknownCategory(t *testing.T) {
	for _, c := range []Category{"", "bogus", "Savings"} {
		_, err := NewAccount(c, "X1", decimal.NewFromInt(1000), time.Now())
		assert.ErrorIs(t, err, errs.ErrUnknownCategory, "category %q", c)
	}
	assert.True(t, Category("bogus").MinBalance().IsZero())
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{in: "0"},
		{in: "25"},
		{in: "0.01"},
		{in: "1.000"},
		{in: "999999999999999.99"},
		{in: "-1", wantErr: errs.ErrNegativeAmount},
		{in: "0.001", wantErr: errs.ErrInvalidAmount},
		{in: "1e-2000000", wantErr: errs.ErrInvalidAmount},
		{in: "1e2000000", wantErr: errs.ErrInvalidAmount},
		{in: "1000000000000000", wantErr: errs.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.in))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAccount_DepositRejectsExtremeExponent(t *testing.T) {
	a := newAccount(t, Checking, "C1", 100)

	assert.ErrorIs(t, a.Deposit(decimal.RequireFromString("1e-2000000")), errs.ErrInvalidAmount)
	assert.Equal(t, "100", a.Balance.String())
}
