package uow

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// journalTx keeps the undo functions of the writes made while it is open.
type journalTx struct {
	undo      []func()
	commits   int
	rollbacks int
	commitErr error
}

func (t *journalTx) Commit() error {
	t.commits++
	if t.commitErr != nil {
		return t.commitErr
	}
	t.undo = nil
	return nil
}

func (t *journalTx) Rollback() error {
	t.rollbacks++
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	return nil
}

// balances is an in-memory account store whose writes are journaled by the
// tx found in context. Stores with the same key share one tx.
type balances struct {
	key      interface{}
	values   map[string]int
	tx       journalTx
	beginErr error
	writeErr error
	panic    interface{}
}

func newBalances(values map[string]int) *balances {
	return &balances{values: values}
}

func (b *balances) ContextKey() interface{} {
	if b.key != nil {
		return b.key
	}
	return b
}

func (b *balances) Begin() (Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return &b.tx, nil
}

func (b *balances) add(ctx context.Context, account string, amount int) error {
	if b.panic != nil {
		panic(b.panic)
	}
	if b.writeErr != nil {
		return b.writeErr
	}

	prev, found := b.values[account]
	b.values[account] = prev + amount

	if tx, ok := TxFromContext(ctx, b); ok {
		journal := tx.(*journalTx)
		journal.undo = append(journal.undo, func() {
			if found {
				b.values[account] = prev
				return
			}
			delete(b.values, account)
		})
	}
	return nil
}

func TestUOWRun(t *testing.T) {
	tests := []struct {
		name            string
		setup           func(credit, debit *balances)
		expectedError   string
		expectedCredit  map[string]int
		expectedDebit   map[string]int
		creditCommits   int
		debitCommits    int
		creditRollbacks int
		debitRollbacks  int
	}{
		{
			name:           "success",
			setup:          func(_, _ *balances) {},
			expectedCredit: map[string]int{"alice": 10},
			expectedDebit:  map[string]int{"bob": 10},
			creditCommits:  1,
			debitCommits:   1,
		},
		{
			name: "first begin fails",
			setup: func(credit, _ *balances) {
				credit.beginErr = fmt.Errorf("begin err")
			},
			expectedError:  "begin err",
			expectedCredit: map[string]int{},
			expectedDebit:  map[string]int{"bob": 20},
		},
		{
			name: "second begin fails",
			setup: func(_, debit *balances) {
				debit.beginErr = fmt.Errorf("begin err")
			},
			expectedError:   "begin err",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditRollbacks: 1,
		},
		{
			name: "first write fails",
			setup: func(credit, _ *balances) {
				credit.writeErr = fmt.Errorf("boom credit")
			},
			expectedError:   "boom credit",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
		{
			name: "second write fails",
			setup: func(_, debit *balances) {
				debit.writeErr = fmt.Errorf("boom debit")
			},
			expectedError:   "boom debit",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
		{
			name: "first commit fails",
			setup: func(credit, _ *balances) {
				credit.tx.commitErr = fmt.Errorf("credit commit err")
			},
			expectedError:   "credit commit err",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditCommits:   1,
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
		{
			// Already committed changes can't be undone anymore.
			name: "second commit fails",
			setup: func(_, debit *balances) {
				debit.tx.commitErr = fmt.Errorf("debit commit err")
			},
			expectedError:   "debit commit err",
			expectedCredit:  map[string]int{"alice": 10},
			expectedDebit:   map[string]int{"bob": 20},
			creditCommits:   1,
			debitCommits:    1,
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
		{
			name: "panic with value",
			setup: func(_, debit *balances) {
				debit.panic = "boom"
			},
			expectedError:   "recovered: boom",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
		{
			name: "panic with error",
			setup: func(_, debit *balances) {
				debit.panic = fmt.Errorf("boom")
			},
			expectedError:   "recovered: boom",
			expectedCredit:  map[string]int{},
			expectedDebit:   map[string]int{"bob": 20},
			creditRollbacks: 1,
			debitRollbacks:  1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			credit := newBalances(map[string]int{})
			debit := newBalances(map[string]int{"bob": 20})
			tt.setup(credit, debit)

			err := NewUnitOfWork(credit, debit).Run(
				context.Background(), func(ctx context.Context) error {
					if err := credit.add(ctx, "alice", 10); err != nil {
						return err
					}
					return debit.add(ctx, "bob", -10)
				},
			)
			if len(tt.expectedError) > 0 {
				require.EqualError(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.expectedCredit, credit.values)
			require.Equal(t, tt.expectedDebit, debit.values)
			require.Equal(t, tt.creditCommits, credit.tx.commits)
			require.Equal(t, tt.debitCommits, debit.tx.commits)
			require.Equal(t, tt.creditRollbacks, credit.tx.rollbacks)
			require.Equal(t, tt.debitRollbacks, debit.tx.rollbacks)
		})
	}
}

func TestUOWUndoOrder(t *testing.T) {
	store := newBalances(map[string]int{"alice": 1})

	err := NewUnitOfWork(store).Run(
		context.Background(), func(ctx context.Context) error {
			for i := 0; i < 3; i++ {
				if err := store.add(ctx, "alice", 1); err != nil {
					return err
				}
			}
			require.Equal(t, 4, store.values["alice"])
			return fmt.Errorf("abort")
		},
	)
	require.EqualError(t, err, "abort")
	require.Equal(t, map[string]int{"alice": 1}, store.values)
}

func TestUOWSharedContextProvider(t *testing.T) {
	newShared := func() (*balances, *balances) {
		a := newBalances(map[string]int{})
		a.key = "shared"
		b := newBalances(map[string]int{"bob": 5})
		b.key = "shared"
		return a, b
	}

	t.Run("commit", func(t *testing.T) {
		a, b := newShared()
		err := NewUnitOfWork(a, b).Run(
			context.Background(), func(ctx context.Context) error {
				tx, ok := TxFromContext(ctx, b)
				require.True(t, ok)
				require.Same(t, &a.tx, tx)
				return b.add(ctx, "bob", 1)
			},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]int{"bob": 6}, b.values)
		require.Equal(t, 1, a.tx.commits)
		require.Zero(t, b.tx.commits)
	})

	t.Run("rollback", func(t *testing.T) {
		a, b := newShared()
		err := NewUnitOfWork(a, b).Run(
			context.Background(), func(ctx context.Context) error {
				if err := b.add(ctx, "bob", 1); err != nil {
					return err
				}
				return fmt.Errorf("abort")
			},
		)
		require.EqualError(t, err, "abort")
		require.Equal(t, map[string]int{"bob": 5}, b.values)
		require.Equal(t, 1, a.tx.rollbacks)
		require.Zero(t, b.tx.rollbacks)
	})
}
