package dbbadger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type balanceRepositoryImpl struct {
	store *badgerhold.Store
}

// NewBalanceRepositoryImpl initialize a badger implementation of the
// domain.BalanceRepository
func NewBalanceRepositoryImpl(
	store *badgerhold.Store,
) domain.BalanceRepository {
	return &balanceRepositoryImpl{store}
}

func (r *balanceRepositoryImpl) GetBalance(
	ctx context.Context, account domain.Address, tokenRef domain.TokenRef,
	subUnit domain.SubUnitId,
) (*domain.Balance, error) {
	key := balanceKey(account, tokenRef, subUnit)

	var balance domain.Balance
	var err error
	if tx, ok := txFromContext(ctx); ok {
		err = r.store.TxGet(tx, key, &balance)
	} else {
		err = r.store.Get(key, &balance)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return &domain.Balance{
				Account:  account,
				TokenRef: tokenRef,
				SubUnit:  subUnit,
				Amount:   decimal.Zero,
			}, nil
		}
		return nil, err
	}
	return &balance, nil
}

func (r *balanceRepositoryImpl) UpdateBalance(
	ctx context.Context, account domain.Address, tokenRef domain.TokenRef,
	subUnit domain.SubUnitId,
	updateFn func(b *domain.Balance) (*domain.Balance, error),
) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrMissingTx
	}

	balance, err := r.GetBalance(ctx, account, tokenRef, subUnit)
	if err != nil {
		return err
	}

	updatedBalance, err := updateFn(balance)
	if err != nil {
		return err
	}

	return r.store.TxUpsert(
		tx, balanceKey(account, tokenRef, subUnit), updatedBalance,
	)
}

func balanceKey(
	account domain.Address, tokenRef domain.TokenRef, subUnit domain.SubUnitId,
) string {
	return fmt.Sprintf("%q/%q/%d", account, tokenRef, subUnit)
}
