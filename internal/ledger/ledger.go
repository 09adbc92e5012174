// Package ledger keeps the coin balance and the transaction history of one
// session as a single aggregate.
//
// Balance and history change together under one lock, so a reader never
// observes a row without its balance effect or the reverse. The balance
// never goes negative: every debit is validated against it before any
// mutation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"earnplay/internal/domain"
	"earnplay/internal/gateway"
	"earnplay/internal/money"
)

//go:generate mockgen -destination=./mocks/mock_gateway.go -package=mocks earnplay/internal/ledger Gateway

// Gateway submits payouts for withdrawals.
type Gateway interface {
	Submit(ctx context.Context, p gateway.Payout) (gateway.Receipt, error)
}

// Withdrawal is a request to pay out Amount currency units.
type Withdrawal struct {
	Amount  decimal.Decimal
	Method  domain.PaymentMethodType
	Details string
}

// Snapshot is a consistent view of the ledger.
type Snapshot struct {
	Balance      int64
	Transactions []domain.Transaction
	Pending      bool // a withdrawal is being submitted
}

// Ledger is safe for concurrent use.
type Ledger struct {
	mu       sync.Mutex
	balance  int64
	txs      []domain.Transaction // newest first
	inflight bool

	gateway Gateway
	now     func() time.Time
	newID   func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDGenerator replaces the UUIDv7 transaction id generator.
func WithIDGenerator(f func() string) Option {
	return func(l *Ledger) { l.newID = f }
}

// New creates a ledger holding opening coins. Negative openings start at zero.
func New(opening int64, gw Gateway, opts ...Option) *Ledger {
	if opening < 0 {
		opening = 0
	}
	l := &Ledger{
		balance: opening,
		gateway: gw,
		now:     time.Now,
		newID:   newTransactionID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// newTransactionID returns a time-ordered identifier.
func newTransactionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Balance returns the current coin balance.
func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Snapshot returns balance, a copy of the history (newest first) and the
// in-flight flag, all read under the same lock.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	txs := make([]domain.Transaction, len(l.txs))
	copy(txs, l.txs)
	return Snapshot{Balance: l.balance, Transactions: txs, Pending: l.inflight}
}

func (l *Ledger) prepend(tx domain.Transaction) {
	l.txs = append([]domain.Transaction{tx}, l.txs...)
}

// Credit adds coins earned by completing an activity and records a
// completed earning.
func (l *Ledger) Credit(coins int64, description string) (domain.Transaction, error) {
	if coins <= 0 {
		return domain.Transaction{}, ErrBadAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	tx := domain.Transaction{
		ID:          l.newID(),
		Type:        domain.TypeEarning,
		Amount:      decimal.NewFromInt(coins),
		Coins:       coins,
		Status:      domain.StatusCompleted,
		Date:        l.now(),
		Description: description,
	}
	l.balance += coins
	l.prepend(tx)

	logrus.WithFields(logrus.Fields{
		"tx_id":   tx.ID,
		"coins":   coins,
		"balance": l.balance,
	}).Info("Earning credited")
	return tx, nil
}

// Debit validates a withdrawal, submits it to the gateway and, once the
// gateway accepts, deducts amount*1000 coins and records a pending
// withdrawal. Only one withdrawal may be outstanding at a time. The gateway
// call is not cancelled when ctx is; once submitted it runs to completion.
func (l *Ledger) Debit(ctx context.Context, w Withdrawal) (domain.Transaction, error) {
	coins, err := l.reserve(w)
	if err != nil {
		return domain.Transaction{}, err
	}
	defer l.release()

	id := l.newID()
	payout := gateway.Payout{Reference: id, Method: w.Method, Amount: w.Amount, Details: w.Details}
	if _, err := l.gateway.Submit(context.WithoutCancel(ctx), payout); err != nil {
		logrus.WithFields(logrus.Fields{
			"tx_id":  id,
			"method": w.Method,
			"amount": w.Amount.String(),
			"error":  err.Error(),
		}).Error("Withdrawal failed")
		return domain.Transaction{}, fmt.Errorf("%w: %w", ErrGatewayFailed, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Credits may have landed meanwhile; nothing else can lower the balance.
	if coins > l.balance {
		return domain.Transaction{}, ErrInsufficient
	}
	tx := domain.Transaction{
		ID:          id,
		Type:        domain.TypeWithdrawal,
		Amount:      w.Amount,
		Coins:       -coins,
		Method:      w.Method,
		Details:     w.Details,
		Status:      domain.StatusPending,
		Date:        l.now(),
		Description: "Withdrawal to " + string(w.Method),
	}
	l.balance -= coins
	l.prepend(tx)

	logrus.WithFields(logrus.Fields{
		"tx_id":   tx.ID,
		"method":  w.Method,
		"amount":  w.Amount.String(),
		"coins":   coins,
		"balance": l.balance,
	}).Info("Withdrawal requested")
	return tx, nil
}

// reserve runs every validation and marks a withdrawal as outstanding.
func (l *Ledger) reserve(w Withdrawal) (int64, error) {
	method, ok := domain.FindPaymentMethod(w.Method)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, w.Method)
	}
	switch err := money.Validate(w.Amount); {
	case errors.Is(err, money.ErrPrecision):
		return 0, ErrPrecision
	case err != nil:
		return 0, ErrBadAmount
	}
	if w.Amount.LessThan(method.Minimum) {
		return 0, fmt.Errorf("%w: minimum for %s is %s", ErrBelowMinimum, method.Label, money.Format(method.Minimum))
	}
	if w.Details == "" {
		return 0, fmt.Errorf("%w: %s", ErrDetailsRequired, method.DetailsLabel)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inflight {
		return 0, ErrInProgress
	}
	// amount*1000 may not fit in an int64; compare before converting.
	if money.CoinValue(w.Amount).GreaterThan(decimal.NewFromInt(l.balance)) {
		return 0, ErrInsufficient
	}
	l.inflight = true
	return money.ToCoins(w.Amount), nil
}

func (l *Ledger) release() {
	l.mu.Lock()
	l.inflight = false
	l.mu.Unlock()
}

// Settle resolves a pending withdrawal. A failed payout returns its coins
// to the balance.
func (l *Ledger) Settle(id string, status domain.Status) (domain.Transaction, error) {
	if status != domain.StatusCompleted && status != domain.StatusFailed {
		return domain.Transaction{}, ErrInvalidSettlement
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.txs {
		tx := &l.txs[i]
		if tx.ID != id {
			continue
		}
		if tx.Type != domain.TypeWithdrawal || tx.Status != domain.StatusPending {
			return domain.Transaction{}, ErrNotPending
		}
		tx.Status = status
		if status == domain.StatusFailed {
			l.balance -= tx.Coins
		}
		logrus.WithFields(logrus.Fields{
			"tx_id":   tx.ID,
			"status":  status,
			"balance": l.balance,
		}).Info("Withdrawal settled")
		return *tx, nil
	}
	return domain.Transaction{}, ErrNotFound
}
