package ports

import (
	"context"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

// Ledger is the value-transfer capability the escrow relies on. Custody
// funds are held on behalf of the escrow itself.
// Implementations may fail, in which case the enclosing operation must be
// aborted without compensating writes.
type Ledger interface {
	// Deposit moves the payment from the given account into custody.
	Deposit(ctx context.Context, from domain.Address, payment domain.Payment) error
	// Transfer moves the payment from custody to the given account.
	Transfer(ctx context.Context, to domain.Address, payment domain.Payment) error
}

// LedgerAdmin is implemented by ledgers that are managed by the daemon
// itself rather than by an external chain.
type LedgerAdmin interface {
	Ledger
	// Fund credits the account with the given payment out of thin air.
	Fund(ctx context.Context, to domain.Address, payment domain.Payment) error
	// Balance returns the account balance for the given token sub-unit.
	Balance(
		ctx context.Context, account domain.Address,
		tokenRef domain.TokenRef, subUnit domain.SubUnitId,
	) (*domain.Balance, error)
	CustodyAccount() domain.Address
}
