package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	interfaces "github.com/sheikh-saqib/bank-account-ledger/internal/interfaces"
	"github.com/sheikh-saqib/bank-account-ledger/internal/metrics"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/errs"
	"github.com/sheikh-saqib/bank-account-ledger/internal/models/events"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger owns every account of the bank and enforces the minimum balance
// rules on withdrawals and transfers.
//
// mu serialises all reads and writes of account balances, so a transfer is
// never observed half done.
type Ledger struct {
	store     interfaces.AccountStore
	publisher interfaces.EventPublisher
	metrics   metrics.Collector
	logger    *zap.Logger
	now       func() time.Time

	mu sync.RWMutex
}

type Option func(*Ledger)

func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger }
}

func WithPublisher(publisher interfaces.EventPublisher) Option {
	return func(l *Ledger) { l.publisher = publisher }
}

func WithMetrics(collector metrics.Collector) Option {
	return func(l *Ledger) { l.metrics = collector }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// NewLedger creates a Ledger on top of the given account store.
func NewLedger(store interfaces.AccountStore, opts ...Option) *Ledger {
	l := &Ledger{
		store:   store,
		metrics: metrics.NoOpCollector{},
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CreateAccount opens an account of the given category. The initial deposit
// must reach the category floor and the id must not be taken.
func (l *Ledger) CreateAccount(ctx context.Context, category string, accountId string, initialDeposit decimal.Decimal) (view models.AccountView, err error) {
	defer l.observe(metrics.OpCreateAccount, time.Now(), &err)

	cat, err := models.ParseCategory(category)
	if err != nil {
		l.deny("unknown account category", err, zap.String("category", category))
		return models.AccountView{}, err
	}

	accountId = accountID(accountId)
	if accountId == "" {
		l.deny("account not opened", errs.ErrEmptyAccountID)
		return models.AccountView{}, errs.ErrEmptyAccountID
	}

	if err = models.ValidateAmount(initialDeposit); err != nil {
		l.deny("account not opened", err, zap.String("account_id", accountId))
		return models.AccountView{}, err
	}
	if initialDeposit.LessThan(cat.MinInitialDeposit()) {
		err = &errs.InitialDepositError{
			Category: string(cat),
			Required: cat.MinInitialDeposit(),
			Got:      initialDeposit,
		}
		l.deny("account not opened", err, zap.String("account_id", accountId))
		return models.AccountView{}, err
	}

	account, err := models.NewAccount(cat, accountId, initialDeposit, l.now())
	if err != nil {
		return models.AccountView{}, err
	}

	l.mu.Lock()
	if err = l.store.SaveAccount(ctx, account); err != nil {
		l.mu.Unlock()
		if errors.Is(err, errs.ErrAccountExists) {
			err = fmt.Errorf("%w: %q", errs.ErrAccountExists, accountId)
			l.deny("account not opened", err, zap.String("account_id", accountId))
		}
		return models.AccountView{}, err
	}
	view = account.View()
	l.mu.Unlock()

	l.metrics.RecordAccountOpened(string(cat))
	l.logger.Info("account opened",
		zap.String("account_id", view.ID),
		zap.String("category", string(cat)),
		zap.Stringer("balance", view.Balance),
	)
	l.publish(ctx, events.AccountOpened{
		EventID:        uuid.NewString(),
		AccountID:      view.ID,
		Category:       string(cat),
		InitialDeposit: initialDeposit,
		OccurredAt:     account.OpenedAt,
	})

	return view, nil
}

// FindAccount returns a snapshot of the account, or false if no account has that id.
func (l *Ledger) FindAccount(accountId string) (models.AccountView, bool) {
	accountId = accountID(accountId)

	l.mu.RLock()
	defer l.mu.RUnlock()

	account, err := l.store.GetAccount(accountId)
	if err != nil {
		return models.AccountView{}, false
	}
	return account.View(), true
}

// Deposit adds amount to the account. Deposits have no upper bound.
func (l *Ledger) Deposit(ctx context.Context, accountId string, amount decimal.Decimal) (view models.AccountView, err error) {
	defer l.observe(metrics.OpDeposit, time.Now(), &err)

	accountId = accountID(accountId)
	l.mu.Lock()
	account, err := l.store.GetAccount(accountId)
	if err != nil {
		l.mu.Unlock()
		l.deny("deposit denied", err, zap.String("account_id", accountId))
		return models.AccountView{}, err
	}
	if err = account.Deposit(amount); err != nil {
		l.mu.Unlock()
		l.deny("deposit denied", err, zap.String("account_id", accountId))
		return models.AccountView{}, err
	}
	view = account.View()
	l.mu.Unlock()

	l.publish(ctx, events.FundsDeposited{
		EventID:    uuid.NewString(),
		AccountID:  accountId,
		Amount:     amount,
		Balance:    view.Balance,
		OccurredAt: l.now(),
	})

	return view, nil
}

// Withdraw takes amount out of the account unless that would leave the
// balance below the account's minimum.
func (l *Ledger) Withdraw(ctx context.Context, accountId string, amount decimal.Decimal) (view models.AccountView, err error) {
	defer l.observe(metrics.OpWithdraw, time.Now(), &err)

	accountId = accountID(accountId)
	l.mu.Lock()
	account, err := l.store.GetAccount(accountId)
	if err != nil {
		l.mu.Unlock()
		l.deny("withdrawal denied", err, zap.String("account_id", accountId))
		return models.AccountView{}, err
	}
	if err = account.Withdraw(amount); err != nil {
		l.mu.Unlock()
		l.deny("withdrawal denied", err,
			zap.String("account_id", accountId),
			zap.Stringer("amount", amount),
		)
		return models.AccountView{}, err
	}
	view = account.View()
	l.mu.Unlock()

	l.publish(ctx, events.FundsWithdrawn{
		EventID:    uuid.NewString(),
		AccountID:  accountId,
		Amount:     amount,
		Balance:    view.Balance,
		OccurredAt: l.now(),
	})

	return view, nil
}

// Transfer moves amount from one account to another. Both accounts must
// exist and the source must stay at or above its minimum balance. Either
// both balances change or neither does.
func (l *Ledger) Transfer(ctx context.Context, fromAccountId, toAccountId string, amount decimal.Decimal) (tx models.Transaction, err error) {
	defer l.observe(metrics.OpTransfer, time.Now(), &err)

	fromAccountId, toAccountId = accountID(fromAccountId), accountID(toAccountId)
	fields := []zap.Field{
		zap.String("from_account", fromAccountId),
		zap.String("to_account", toAccountId),
		zap.Stringer("amount", amount),
	}

	if err = models.ValidateAmount(amount); err != nil {
		l.deny("transfer denied", err, fields...)
		return models.Transaction{}, err
	}

	l.mu.Lock()
	from, err := l.store.GetAccount(fromAccountId)
	if err != nil {
		l.mu.Unlock()
		l.deny("transfer denied", err, fields...)
		return models.Transaction{}, err
	}
	to, err := l.store.GetAccount(toAccountId)
	if err != nil {
		l.mu.Unlock()
		l.deny("transfer denied", err, fields...)
		return models.Transaction{}, err
	}

	if !from.CanWithdraw(amount) {
		l.mu.Unlock()
		err = fmt.Errorf("%w: %w", errs.ErrSourceBelowMinimumBalance,
			&errs.MinimumBalanceError{AccountID: from.ID, MinBalance: from.MinBalance})
		l.deny("transfer denied", err, fields...)
		return models.Transaction{}, err
	}

	// The withdrawal re-checks the floor; nothing is deposited unless it succeeds.
	if err = from.Withdraw(amount); err != nil {
		l.mu.Unlock()
		l.deny("transfer denied", err, fields...)
		return models.Transaction{}, err
	}
	if err = to.Deposit(amount); err != nil {
		// Cannot happen for a validated amount; restore the source anyway.
		from.Balance = from.Balance.Add(amount)
		l.mu.Unlock()
		return models.Transaction{}, err
	}

	tx = models.Transaction{
		ID:          uuid.NewString(),
		FromAccount: from.ID,
		ToAccount:   to.ID,
		Amount:      amount,
		CreatedAt:   l.now(),
	}
	l.mu.Unlock()

	l.logger.Info("transfer completed", append(fields, zap.String("transaction_id", tx.ID))...)
	l.publish(ctx, events.TransferCompleted{
		TransactionID: tx.ID,
		FromAccount:   tx.FromAccount,
		ToAccount:     tx.ToAccount,
		Amount:        tx.Amount,
		OccurredAt:    tx.CreatedAt,
	})

	return tx, nil
}

// ListAccounts returns a snapshot of all accounts in the order they were opened.
func (l *Ledger) ListAccounts() []models.AccountView {
	l.mu.RLock()
	defer l.mu.RUnlock()

	accounts, err := l.store.GetAccounts()
	if err != nil {
		l.logger.Error("failed to list accounts", zap.Error(err))
		return []models.AccountView{}
	}

	views := make([]models.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views
}

// DisplayAccounts writes one line per account, in the order they were opened.
func (l *Ledger) DisplayAccounts(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	accounts, err := l.store.GetAccounts()
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if _, err := fmt.Fprintln(w, account.String()); err != nil {
			return err
		}
	}
	return nil
}

// accountID normalises an id the same way for every operation.
func accountID(id string) string {
	return strings.TrimSpace(id)
}

func (l *Ledger) observe(op string, start time.Time, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = errs.Classify(*err)
	}
	l.metrics.RecordOperation(op, outcome, time.Since(start))
}

// deny logs a refused operation. Refusals are expected, so they are not errors.
func (l *Ledger) deny(msg string, err error, fields ...zap.Field) {
	l.logger.Info(msg, append(fields, zap.Error(err))...)
}

// publish sends the event after the operation is committed. A failed publish
// is logged and does not undo the operation.
func (l *Ledger) publish(ctx context.Context, event events.Event) {
	if l.publisher == nil {
		return
	}

	err := l.publisher.Publish(ctx, event)
	l.metrics.RecordPublish(event.Topic(), err == nil)
	if err != nil {
		l.logger.Warn("failed to publish event",
			zap.String("topic", event.Topic()),
			zap.String("key", event.Key()),
			zap.Error(err),
		)
	}
}
