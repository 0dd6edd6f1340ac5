package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sheikh-saqib/bank-account-ledger/internal/ledger"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/shopspring/decimal"
)

const menu = `
Bank Account Management System
1. Create Account
2. Display All Accounts
3. Deposit Money
4. Withdraw Money
5. Transfer Money
6. Exit
Enter your choice: `

// errQuit ends the session when input runs out mid-prompt.
var errQuit = errors.New("quit")

type session struct {
	ctx    context.Context
	in     *bufio.Scanner
	out    io.Writer
	ledger *ledger.Ledger
}

// Run drives the interactive menu until the user exits or input ends.
func Run(ctx context.Context, in io.Reader, out io.Writer, l *ledger.Ledger) error {
	s := &session{ctx: ctx, in: bufio.NewScanner(in), out: out, ledger: l}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.prompt(menu)
		if err != nil {
			return s.end(err)
		}

		switch choice {
		case "1":
			err = s.createAccount()
		case "2":
			err = l.DisplayAccounts(out)
		case "3":
			err = s.deposit()
		case "4":
			err = s.withdraw()
		case "5":
			err = s.transfer()
		case "6":
			return nil
		default:
			fmt.Fprintln(out, "Invalid option. Please try again.")
		}
		if err != nil {
			return s.end(err)
		}
	}
}

func (s *session) end(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *session) promptAmount(label string) (decimal.Decimal, bool, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, false, err
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid amount %q.\n", raw)
		return decimal.Zero, false, nil
	}
	return amount, true, nil
}

func (s *session) createAccount() error {
	category, err := s.prompt("Enter account type (checking/savings): ")
	if err != nil {
		return err
	}
	id, err := s.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := s.promptAmount("Enter initial deposit: ")
	if err != nil || !ok {
		return err
	}

	if _, err := s.ledger.CreateAccount(s.ctx, category, id, amount); err != nil {
		s.report(err)
		return nil
	}
	fmt.Fprintln(s.out, "Account created.")
	return nil
}

func (s *session) deposit() error {
	id, err := s.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := s.promptAmount("Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	if _, err := s.ledger.Deposit(s.ctx, id, amount); err != nil {
		s.report(err)
		return nil
	}
	fmt.Fprintln(s.out, "Deposit successful.")
	return nil
}

func (s *session) withdraw() error {
	id, err := s.prompt("Enter account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := s.promptAmount("Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	if _, err := s.ledger.Withdraw(s.ctx, id, amount); err != nil {
		s.report(err)
		return nil
	}
	fmt.Fprintln(s.out, "Withdrawal successful.")
	return nil
}

func (s *session) transfer() error {
	from, err := s.prompt("Enter from account number: ")
	if err != nil {
		return err
	}
	to, err := s.prompt("Enter to account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := s.promptAmount("Enter amount to transfer: ")
	if err != nil || !ok {
		return err
	}

	if _, err := s.ledger.Transfer(s.ctx, from, to, amount); err != nil {
		s.report(err)
		return nil
	}
	fmt.Fprintln(s.out, "Transfer successful.")
	return nil
}

// report prints the user-facing reason an operation was refused.
func (s *session) report(err error) {
	switch {
	case errors.Is(err, errs.ErrSourceBelowMinimumBalance):
		fmt.Fprintln(s.out, "Transfer denied: cannot reduce balance below minimum required.")
	case errors.Is(err, errs.ErrAccountNotFound):
		fmt.Fprintln(s.out, "Account not found.")
	default:
		fmt.Fprintf(s.out, "%s.\n", capitalize(err.Error()))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
