package inmemory

import (
	"context"
	"sync"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
	"github.com/tdex-network/escrowd/internal/storageutil/uow"
)

type repoManager struct {
	offerRepository      *offerRepositoryImpl
	offerIndexRepository *offerIndexRepositoryImpl
	sequenceRepository   *sequenceRepositoryImpl
	balanceRepository    *balanceRepositoryImpl

	lock *sync.RWMutex
}

// NewRepoManager returns a volatile RepoManager. Transactions are made
// atomic by journaling the changes of every repository within a
// uow.UnitOfWork.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		offerRepository:      NewOfferRepositoryImpl(),
		offerIndexRepository: NewOfferIndexRepositoryImpl(),
		sequenceRepository:   NewSequenceRepositoryImpl(),
		balanceRepository:    NewBalanceRepositoryImpl(),
		lock:                 &sync.RWMutex{},
	}
}

func (r *repoManager) OfferRepository() domain.OfferRepository {
	return r.offerRepository
}

func (r *repoManager) OfferIndexRepository() domain.OfferIndexRepository {
	return r.offerIndexRepository
}

func (r *repoManager) SequenceRepository() domain.SequenceRepository {
	return r.sequenceRepository
}

func (r *repoManager) BalanceRepository() domain.BalanceRepository {
	return r.balanceRepository
}

func (r *repoManager) RunTransaction(
	ctx context.Context, readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	if readOnly {
		r.lock.RLock()
		defer r.lock.RUnlock()

		return handler(ctx)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	var result interface{}
	unit := uow.NewUnitOfWork(
		r.offerRepository,
		r.offerIndexRepository,
		r.sequenceRepository,
		r.balanceRepository,
	)
	if err := unit.Run(ctx, func(ctx context.Context) (err error) {
		result, err = handler(ctx)
		return
	}); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repoManager) Close() {}
