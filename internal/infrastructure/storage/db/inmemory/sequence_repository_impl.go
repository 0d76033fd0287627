package inmemory

import (
	"context"
	"math"
	"sync"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

type sequenceRepositoryImpl struct {
	*journal
	lastOfferId domain.OfferId
	lock        *sync.Mutex
}

// NewSequenceRepositoryImpl returns an in-memory SequenceRepository with the
// counter set to 0.
func NewSequenceRepositoryImpl() *sequenceRepositoryImpl {
	return &sequenceRepositoryImpl{
		journal: &journal{},
		lock:    &sync.Mutex{},
	}
}

func (r *sequenceRepositoryImpl) NextOfferId(
	_ context.Context,
) (domain.OfferId, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.lastOfferId == math.MaxUint64 {
		return 0, domain.ErrSequenceOverflow
	}
	prev := r.lastOfferId
	r.lastOfferId++

	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.lastOfferId = prev
	})
	return r.lastOfferId, nil
}

func (r *sequenceRepositoryImpl) LastOfferId(
	_ context.Context,
) (domain.OfferId, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.lastOfferId, nil
}
