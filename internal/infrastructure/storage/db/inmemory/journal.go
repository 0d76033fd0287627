package inmemory

import "github.com/tdex-network/escrowd/internal/storageutil/uow"

// journal records how to undo every change made to a repository while a
// transaction is running. Committing forgets the records, rolling back
// replays them in reverse order.
type journal struct {
	undo   []func()
	active bool
}

func (j *journal) Begin() (uow.Tx, error) {
	j.undo = nil
	j.active = true
	return j, nil
}

func (j *journal) Commit() error {
	j.undo = nil
	j.active = false
	return nil
}

func (j *journal) Rollback() error {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.undo = nil
	j.active = false
	return nil
}

func (j *journal) record(undoFn func()) {
	if !j.active {
		return
	}
	j.undo = append(j.undo, undoFn)
}
