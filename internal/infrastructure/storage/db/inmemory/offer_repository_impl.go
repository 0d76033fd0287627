package inmemory

import (
	"context"
	"sync"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

type offerRepositoryImpl struct {
	*journal
	offers map[domain.OfferId]domain.Offer
	lock   *sync.RWMutex
}

// NewOfferRepositoryImpl returns a new empty in-memory OfferRepository.
func NewOfferRepositoryImpl() *offerRepositoryImpl {
	return &offerRepositoryImpl{
		journal: &journal{},
		offers:  map[domain.OfferId]domain.Offer{},
		lock:    &sync.RWMutex{},
	}
}

func (r *offerRepositoryImpl) GetOffer(
	_ context.Context, id domain.OfferId,
) (*domain.Offer, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	offer, ok := r.offers[id]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	return &offer, nil
}

func (r *offerRepositoryImpl) AddOffer(
	_ context.Context, offer domain.Offer,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.offers[offer.Id]; ok {
		return domain.ErrOfferAlreadyExists
	}
	r.offers[offer.Id] = offer

	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		delete(r.offers, offer.Id)
	})
	return nil
}

func (r *offerRepositoryImpl) DeleteOffer(
	_ context.Context, id domain.OfferId,
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	offer, ok := r.offers[id]
	if !ok {
		return domain.ErrOfferNotFound
	}
	delete(r.offers, id)

	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		r.offers[id] = offer
	})
	return nil
}
