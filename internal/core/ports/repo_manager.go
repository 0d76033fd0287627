package ports

import (
	"context"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

// RepoManager gives access to all the repositories and lets run a set of
// read/write operations on them as a single all-or-nothing transaction.
type RepoManager interface {
	OfferRepository() domain.OfferRepository
	OfferIndexRepository() domain.OfferIndexRepository
	SequenceRepository() domain.SequenceRepository
	BalanceRepository() domain.BalanceRepository

	// RunTransaction executes handler within a transaction. Write
	// transactions are serialized: one runs to completion before the next
	// begins. If handler returns an error every change made through the
	// given ctx is discarded.
	RunTransaction(
		ctx context.Context, readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)

	Close()
}
