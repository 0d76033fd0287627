package inmemory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/escrowd/internal/core/domain"
)

type balanceKey struct {
	account  domain.Address
	tokenRef domain.TokenRef
	subUnit  domain.SubUnitId
}

type balanceRepositoryImpl struct {
	*journal
	balances map[balanceKey]domain.Balance
	lock     *sync.RWMutex
}

// NewBalanceRepositoryImpl returns a new empty in-memory BalanceRepository.
func NewBalanceRepositoryImpl() *balanceRepositoryImpl {
	return &balanceRepositoryImpl{
		journal:  &journal{},
		balances: map[balanceKey]domain.Balance{},
		lock:     &sync.RWMutex{},
	}
}

func (r *balanceRepositoryImpl) GetBalance(
	_ context.Context, account domain.Address, tokenRef domain.TokenRef,
	subUnit domain.SubUnitId,
) (*domain.Balance, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	balance := r.getBalance(balanceKey{account, tokenRef, subUnit})
	return &balance, nil
}

func (r *balanceRepositoryImpl) UpdateBalance(
	_ context.Context, account domain.Address, tokenRef domain.TokenRef,
	subUnit domain.SubUnitId,
	updateFn func(b *domain.Balance) (*domain.Balance, error),
) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	key := balanceKey{account, tokenRef, subUnit}
	prev, existed := r.balances[key]
	current := r.getBalance(key)

	updated, err := updateFn(&current)
	if err != nil {
		return err
	}
	r.balances[key] = *updated

	r.record(func() {
		r.lock.Lock()
		defer r.lock.Unlock()
		if !existed {
			delete(r.balances, key)
			return
		}
		r.balances[key] = prev
	})
	return nil
}

func (r *balanceRepositoryImpl) getBalance(key balanceKey) domain.Balance {
	if b, ok := r.balances[key]; ok {
		return b
	}
	return domain.Balance{
		Account:  key.account,
		TokenRef: key.tokenRef,
		SubUnit:  key.subUnit,
		Amount:   decimal.Zero,
	}
}
