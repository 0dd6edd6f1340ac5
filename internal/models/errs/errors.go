package errs

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors of the ledger. Callers match them with errors.Is.
var (
	ErrInsufficientInitialDeposit = errors.New("insufficient initial deposit")
	ErrUnknownCategory            = errors.New("unknown account category")
	ErrAccountNotFound            = errors.New("account not found")
	ErrAccountExists              = errors.New("account already exists")
	ErrBelowMinimumBalance        = errors.New("balance would go below minimum")
	ErrSourceBelowMinimumBalance  = errors.New("transfer source would go below minimum")
	ErrNegativeAmount             = errors.New("amount must not be negative")
	ErrInvalidAmount              = errors.New("amount must be whole cents below 1000000000000000")
	ErrEmptyAccountID             = errors.New("account id is required")
)

// Initial deposit did not reach the floor of the requested category.
type InitialDepositError struct {
	Category string
	Required decimal.Decimal
	Got      decimal.Decimal
}

func (e *InitialDepositError) Error() string {
	return fmt.Sprintf("initial deposit must be at least $%s for %s accounts, got $%s",
		e.Required.StringFixed(2), e.Category, e.Got.StringFixed(2))
}

func (e *InitialDepositError) Unwrap() error {
	return ErrInsufficientInitialDeposit
}

// Names the account that could not be found.
type AccountNotFoundError struct {
	ID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %q not found", e.ID)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrAccountNotFound
}

// Withdrawal denied because the account floor would be breached.
type MinimumBalanceError struct {
	AccountID  string
	MinBalance decimal.Decimal
}

func (e *MinimumBalanceError) Error() string {
	return fmt.Sprintf("withdrawal denied: cannot go below minimum balance of $%s", e.MinBalance.StringFixed(2))
}

func (e *MinimumBalanceError) Unwrap() error {
	return ErrBelowMinimumBalance
}

// Classify returns a short label of the error kind for metrics and logs.
func Classify(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, ErrAccountExists):
		return "conflict"
	case errors.Is(err, ErrSourceBelowMinimumBalance), errors.Is(err, ErrBelowMinimumBalance):
		return "below_minimum"
	case errors.Is(err, ErrInsufficientInitialDeposit):
		return "insufficient_initial_deposit"
	case errors.Is(err, ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrEmptyAccountID):
		return "invalid_input"
	default:
		return "other"
	}
}

// Type just for marshalling purpose.
type JSON struct {
	Error string `json:"error"`
}
