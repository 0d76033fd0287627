package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

var (
	// ErrCustodyAccountAsSource is returned when trying to deposit from the
	// custody account itself.
	ErrCustodyAccountAsSource = errors.New("custody account cannot deposit into itself")
)

type custodyLedger struct {
	balances ports.RepoManager
	custody  domain.Address
}

// NewCustodyLedger returns a ledger whose balances live in the same storage
// as the offers. Every method must be called with the context of a running
// transaction, so that transfers are committed or discarded together with
// the operation that issued them.
func NewCustodyLedger(
	repoManager ports.RepoManager, custodyAccount domain.Address,
) (ports.LedgerAdmin, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if err := custodyAccount.Validate(); err != nil {
		return nil, fmt.Errorf("invalid custody account: %w", err)
	}
	return &custodyLedger{repoManager, custodyAccount}, nil
}

func (l *custodyLedger) CustodyAccount() domain.Address {
	return l.custody
}

func (l *custodyLedger) Deposit(
	ctx context.Context, from domain.Address, payment domain.Payment,
) error {
	if from == l.custody {
		return ErrCustodyAccountAsSource
	}
	return l.move(ctx, from, l.custody, payment)
}

func (l *custodyLedger) Transfer(
	ctx context.Context, to domain.Address, payment domain.Payment,
) error {
	return l.move(ctx, l.custody, to, payment)
}

func (l *custodyLedger) Fund(
	ctx context.Context, to domain.Address, payment domain.Payment,
) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := payment.Validate(); err != nil {
		return err
	}
	return l.credit(ctx, to, payment)
}

func (l *custodyLedger) Balance(
	ctx context.Context, account domain.Address,
	tokenRef domain.TokenRef, subUnit domain.SubUnitId,
) (*domain.Balance, error) {
	return l.balances.BalanceRepository().GetBalance(
		ctx, account, tokenRef, subUnit,
	)
}

func (l *custodyLedger) move(
	ctx context.Context, from, to domain.Address, payment domain.Payment,
) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := payment.Validate(); err != nil {
		return err
	}

	if err := l.balances.BalanceRepository().UpdateBalance(
		ctx, from, payment.TokenRef, payment.SubUnit,
		func(b *domain.Balance) (*domain.Balance, error) {
			if err := b.Debit(payment.Amount); err != nil {
				return nil, err
			}
			return b, nil
		},
	); err != nil {
		return fmt.Errorf("debiting %s: %w", from, err)
	}

	return l.credit(ctx, to, payment)
}

func (l *custodyLedger) credit(
	ctx context.Context, to domain.Address, payment domain.Payment,
) error {
	return l.balances.BalanceRepository().UpdateBalance(
		ctx, to, payment.TokenRef, payment.SubUnit,
		func(b *domain.Balance) (*domain.Balance, error) {
			b.Credit(payment.Amount)
			return b, nil
		},
	)
}
