package dbbadger

import (
	"context"
	"math"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

const lastOfferIdKey = "lastOfferId"

type sequence struct {
	Value uint64
}

type sequenceRepositoryImpl struct {
	store *badgerhold.Store
}

// NewSequenceRepositoryImpl initialize a badger implementation of the
// domain.SequenceRepository. The counter is a single record, read and
// written within the caller's transaction so that a rolled back operation
// does not consume ids.
func NewSequenceRepositoryImpl(
	store *badgerhold.Store,
) domain.SequenceRepository {
	return &sequenceRepositoryImpl{store}
}

func (r *sequenceRepositoryImpl) NextOfferId(
	ctx context.Context,
) (domain.OfferId, error) {
	tx, ok := txFromContext(ctx)
	if !ok {
		return 0, ErrMissingTx
	}

	seq, err := r.getSequence(ctx)
	if err != nil {
		return 0, err
	}
	if seq.Value == math.MaxUint64 {
		return 0, domain.ErrSequenceOverflow
	}
	seq.Value++

	if err := r.store.TxUpsert(tx, lastOfferIdKey, seq); err != nil {
		return 0, err
	}
	return domain.OfferId(seq.Value), nil
}

func (r *sequenceRepositoryImpl) LastOfferId(
	ctx context.Context,
) (domain.OfferId, error) {
	seq, err := r.getSequence(ctx)
	if err != nil {
		return 0, err
	}
	return domain.OfferId(seq.Value), nil
}

func (r *sequenceRepositoryImpl) getSequence(
	ctx context.Context,
) (*sequence, error) {
	seq := &sequence{}
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxGet(tx, lastOfferIdKey, seq)
	} else {
		err = r.store.Get(lastOfferIdKey, seq)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return &sequence{}, nil
		}
		return nil, err
	}
	return seq, nil
}
