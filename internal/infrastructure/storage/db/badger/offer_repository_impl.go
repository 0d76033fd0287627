package dbbadger

import (
	"context"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type offerRepositoryImpl struct {
	store *badgerhold.Store
}

// NewOfferRepositoryImpl initialize a badger implementation of the
// domain.OfferRepository
func NewOfferRepositoryImpl(store *badgerhold.Store) domain.OfferRepository {
	return &offerRepositoryImpl{store}
}

func (r *offerRepositoryImpl) GetOffer(
	ctx context.Context, id domain.OfferId,
) (*domain.Offer, error) {
	var offer domain.Offer
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxGet(tx, uint64(id), &offer)
	} else {
		err = r.store.Get(uint64(id), &offer)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepositoryImpl) AddOffer(
	ctx context.Context, offer domain.Offer,
) error {
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxInsert(tx, uint64(offer.Id), &offer)
	} else {
		err = r.store.Insert(uint64(offer.Id), &offer)
	}
	if err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrOfferAlreadyExists
		}
		return err
	}
	return nil
}

func (r *offerRepositoryImpl) DeleteOffer(
	ctx context.Context, id domain.OfferId,
) error {
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxDelete(tx, uint64(id), domain.Offer{})
	} else {
		err = r.store.Delete(uint64(id), domain.Offer{})
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrOfferNotFound
		}
		return err
	}
	return nil
}
