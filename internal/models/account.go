package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/shopspring/decimal"
)

// Category is the closed set of account kinds. The kind fixes the minimum balance.
type Category string

const (
	Checking Category = "checking"
	Savings  Category = "savings"
)

// Amounts are whole cents below 10^15. The exponent is bounded before any
// arithmetic so a value like 1e-2000000 is never expanded.
const (
	amountScale       = 2
	amountMinExponent = -18
	amountMaxExponent = 15
)

var (
	checkingFloor = decimal.NewFromInt(100)
	savingsFloor  = decimal.NewFromInt(500)
	maxAmount     = decimal.New(1, amountMaxExponent)
)

// ValidateAmount rejects negative amounts and amounts that are not whole cents
// below 10^15.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.ErrNegativeAmount
	}
	if exp := amount.Exponent(); exp < amountMinExponent || exp > amountMaxExponent {
		return errs.ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(amountScale)) || amount.GreaterThanOrEqual(maxAmount) {
		return errs.ErrInvalidAmount
	}
	return nil
}

// ParseCategory accepts "checking" or "savings" in any case.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Checking, Savings:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownCategory, s)
	}
}

// MinBalance is the lowest balance an account of this category may hold after
// a withdrawal. Only defined for categories returned by ParseCategory; any
// other value has no floor and reports zero.
func (c Category) MinBalance() decimal.Decimal {
	switch c {
	case Checking:
		return checkingFloor
	case Savings:
		return savingsFloor
	default:
		return decimal.Zero
	}
}

// MinInitialDeposit is the smallest amount an account of this category can be opened with.
func (c Category) MinInitialDeposit() decimal.Decimal {
	return c.MinBalance()
}

// Account is a single bank account. Balance only changes through Deposit and Withdraw.
type Account struct {
	ID         string
	Category   Category
	Balance    decimal.Decimal
	MinBalance decimal.Decimal
	OpenedAt   time.Time
}

// AccountView is a read-only copy of an account handed out to callers.
type AccountView struct {
	ID         string          `json:"id"`
	Category   Category        `json:"category"`
	Balance    decimal.Decimal `json:"balance"`
	MinBalance decimal.Decimal `json:"min_balance"`
}

// NewAccount opens an account of a known category. Any other category value
// is rejected with errs.ErrUnknownCategory.
func NewAccount(category Category, id string, initial decimal.Decimal, openedAt time.Time) (*Account, error) {
	if category != Checking && category != Savings {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCategory, category)
	}

	return &Account{
		ID:         id,
		Category:   category,
		Balance:    initial,
		MinBalance: category.MinBalance(),
		OpenedAt:   openedAt,
	}, nil
}

// Deposit adds amount to the balance. The balance itself has no upper bound.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// CanWithdraw reports whether taking amount keeps the balance at or above the floor.
func (a *Account) CanWithdraw(amount decimal.Decimal) bool {
	return a.Balance.Sub(amount).GreaterThanOrEqual(a.MinBalance)
}

// Withdraw subtracts amount, or leaves the balance untouched and returns
// a *errs.MinimumBalanceError if the floor would be breached.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if !a.CanWithdraw(amount) {
		return &errs.MinimumBalanceError{AccountID: a.ID, MinBalance: a.MinBalance}
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

func (a *Account) View() AccountView {
	return AccountView{
		ID:         a.ID,
		Category:   a.Category,
		Balance:    a.Balance,
		MinBalance: a.MinBalance,
	}
}

func (a *Account) String() string {
	return fmt.Sprintf("Account Number: %s, Balance: $%s", a.ID, a.Balance.StringFixed(2))
}
