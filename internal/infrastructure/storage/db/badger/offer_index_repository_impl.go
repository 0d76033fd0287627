package dbbadger

import (
	"context"
	"fmt"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

// offerRef is a member of an address' index bucket. Every ref has its own
// key, so membership checks, insertion and removal are single key ops while
// listing a bucket goes through the Address index.
type offerRef struct {
	Kind    int
	Address string `badgerhold:"index"`
	OfferId uint64
}

func offerRefKey(kind domain.IndexKind, addr domain.Address, id domain.OfferId) string {
	return fmt.Sprintf("%s/%s/%d", kind, addr, id)
}

type offerIndexRepositoryImpl struct {
	store *badgerhold.Store
}

// NewOfferIndexRepositoryImpl initialize a badger implementation of the
// domain.OfferIndexRepository
func NewOfferIndexRepositoryImpl(
	store *badgerhold.Store,
) domain.OfferIndexRepository {
	return &offerIndexRepositoryImpl{store}
}

func (r *offerIndexRepositoryImpl) AddToIndex(
	ctx context.Context, kind domain.IndexKind, addr domain.Address,
	id domain.OfferId,
) error {
	key := offerRefKey(kind, addr, id)
	ref := &offerRef{int(kind), string(addr), uint64(id)}

	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxInsert(tx, key, ref)
	} else {
		err = r.store.Insert(key, ref)
	}
	if err != nil && err != badgerhold.ErrKeyExists {
		return err
	}
	return nil
}

func (r *offerIndexRepositoryImpl) RemoveFromIndex(
	ctx context.Context, kind domain.IndexKind, addr domain.Address,
	id domain.OfferId,
) error {
	key := offerRefKey(kind, addr, id)

	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxDelete(tx, key, offerRef{})
	} else {
		err = r.store.Delete(key, offerRef{})
	}
	if err != nil && err != badgerhold.ErrNotFound {
		return err
	}
	return nil
}

func (r *offerIndexRepositoryImpl) ListIndex(
	ctx context.Context, kind domain.IndexKind, addr domain.Address,
) ([]domain.OfferId, error) {
	query := badgerhold.Where("Address").Eq(string(addr)).Index("Address").
		And("Kind").Eq(int(kind))

	var refs []offerRef
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxFind(tx, &refs, query)
	} else {
		err = r.store.Find(&refs, query)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]domain.OfferId, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, domain.OfferId(ref.OfferId))
	}
	return ids, nil
}
