package inmemory

import (
	"context"
	"sync"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

type offerSet map[domain.OfferId]struct{}

type offerIndexRepositoryImpl struct {
	*journal
	buckets map[domain.IndexKind]map[domain.Address]offerSet
	lock    *sync.RWMutex
}

// NewOfferIndexRepositoryImpl returns a new empty in-memory
// OfferIndexRepository backed by a hash set per address.
func NewOfferIndexRepositoryImpl() *offerIndexRepositoryImpl {
	return &offerIndexRepositoryImpl{
		journal: &journal{},
		buckets: map[domain.IndexKind]map[domain.Address]offerSet{
			domain.IndexByCreator:      {},
			domain.IndexByCounterparty: {},
		},
		lock: &sync.RWMutex{},
	}
}

func (r *offerIndexRepositoryImpl) AddToIndex(
	_ context.Context, kind domain.IndexKind, addr domain.Address,
	id domain.OfferId,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if !r.add(kind, addr, id) {
		return nil
	}
	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.remove(kind, addr, id)
	})
	return nil
}

func (r *offerIndexRepositoryImpl) RemoveFromIndex(
	_ context.Context, kind domain.IndexKind, addr domain.Address,
	id domain.OfferId,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if !r.remove(kind, addr, id) {
		return nil
	}
	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.add(kind, addr, id)
	})
	return nil
}

func (r *offerIndexRepositoryImpl) ListIndex(
	_ context.Context, kind domain.IndexKind, addr domain.Address,
) ([]domain.OfferId, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	set := r.bucket(kind)[addr]
	ids := make([]domain.OfferId, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *offerIndexRepositoryImpl) bucket(
	kind domain.IndexKind,
) map[domain.Address]offerSet {
	b, ok := r.buckets[kind]
	if !ok {
		b = map[domain.Address]offerSet{}
		r.buckets[kind] = b
	}
	return b
}

// add returns whether the id was not a member yet.
func (r *offerIndexRepositoryImpl) add(
	kind domain.IndexKind, addr domain.Address, id domain.OfferId,
) bool {
	b := r.bucket(kind)
	set, ok := b[addr]
	if !ok {
		set = offerSet{}
		b[addr] = set
	}
	if _, ok := set[id]; ok {
		return false
	}
	set[id] = struct{}{}
	return true
}

// remove returns whether the id was a member.
func (r *offerIndexRepositoryImpl) remove(
	kind domain.IndexKind, addr domain.Address, id domain.OfferId,
) bool {
	b := r.bucket(kind)
	set, ok := b[addr]
	if !ok {
		return false
	}
	if _, ok := set[id]; !ok {
		return false
	}
	delete(set, id)
	if len(set) <= 0 {
		delete(b, addr)
	}
	return true
}
