package uow

import (
	"context"
	"fmt"
)

// Transactional begins a transaction
type Transactional interface {
	Begin() (Tx, error)
}

// Tx represents an all-or-nothing transaction, by committing or rolling back
// a set of read/write operations
type Tx interface {
	Commit() error
	Rollback() error
}

// ContextProvider returns a context key
type ContextProvider interface {
	ContextKey() interface{}
}

// UnitOfWork allows to run multiple transactions as one
type UnitOfWork struct {
	repositories []Transactional
}

// NewUnitOfWork returns a new UnitOfWork with the given Transaction interfaces
func NewUnitOfWork(repositories ...Transactional) *UnitOfWork {
	return &UnitOfWork{repositories}
}

// TxFromContext returns the transaction started by a UnitOfWork for the
// given repository (or context key), if any.
func TxFromContext(ctx context.Context, repository interface{}) (Tx, bool) {
	key := contextKey(repository)
	tx, ok := ctx.Value(key).(Tx)
	return tx, ok
}

// Run begins a transaction for every repository and executes fn with a
// context carrying all of them. Run makes sure that all the transactions
// are either all committed or all rolled back if any error occurs, fn
// panicking included.
func (u *UnitOfWork) Run(
	ctx context.Context, fn func(ctx context.Context) error,
) (err error) {
	txs := make([]Tx, 0, len(u.repositories))
	started := map[interface{}]struct{}{}

	defer func() {
		if err == nil {
			return
		}
		// Undo in reverse order so that later changes are reverted first.
		for i := len(txs) - 1; i >= 0; i-- {
			if _err := txs[i].Rollback(); _err != nil {
				// TODO: a failed rollback leaves the remaining txs untouched,
				// retry them once storage reports transient errors.
				err = _err
				return
			}
		}
	}()

	defer func() {
		if err != nil {
			return
		}
		for _, tx := range txs {
			if _err := tx.Commit(); _err != nil {
				err = _err
				return
			}
		}
	}()

	defer func() {
		// panicking returns an error that causes txs rollback
		if rec := recover(); rec != nil {
			err = fmt.Errorf("recovered: %v", rec)
		}
	}()

	for _, r := range u.repositories {
		key := contextKey(r)
		// make sure that the same context providers share the same tx
		if _, ok := started[key]; ok {
			continue
		}

		tx, err := r.Begin()
		if err != nil {
			return err
		}
		started[key] = struct{}{}
		txs = append(txs, tx)
		ctx = context.WithValue(ctx, key, tx)
	}

	return fn(ctx)
}

func contextKey(repository interface{}) interface{} {
	if cp, ok := repository.(ContextProvider); ok {
		return cp.ContextKey()
	}
	return repository
}
