package dbbadger

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const (
	escrowDbDir = "escrow"
	gcInterval  = 30 * time.Minute
)

type txKey struct{}

type repoManager struct {
	store *badgerhold.Store

	offerRepository      domain.OfferRepository
	offerIndexRepository domain.OfferIndexRepository
	sequenceRepository   domain.SequenceRepository
	balanceRepository    domain.BalanceRepository

	lock   *sync.Mutex
	stopGC chan struct{}
}

// NewRepoManager opens (or creates if not exists) the badger store on disk.
// It expects a base data dir and an optional logger. If the base dir is
// empty the store is kept in memory.
// Offers, indexes, sequence and balances share the same store so that a
// single badger transaction covers all of them.
func NewRepoManager(
	baseDbDir string, logger badger.Logger,
) (ports.RepoManager, error) {
	var dbDir string
	if len(baseDbDir) > 0 {
		dbDir = filepath.Join(baseDbDir, escrowDbDir)
	}

	store, err := createDb(dbDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening escrow db: %w", err)
	}

	rm := &repoManager{
		store:                store,
		offerRepository:      NewOfferRepositoryImpl(store),
		offerIndexRepository: NewOfferIndexRepositoryImpl(store),
		sequenceRepository:   NewSequenceRepositoryImpl(store),
		balanceRepository:    NewBalanceRepositoryImpl(store),
		lock:                 &sync.Mutex{},
		stopGC:               make(chan struct{}),
	}

	if len(dbDir) > 0 {
		go rm.runValueLogGC()
	}

	return rm, nil
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
	if !readOnly {
		// Writers never interleave, this also avoids badger.ErrConflict.
		r.lock.Lock()
		defer r.lock.Unlock()
	}

	tx := r.store.Badger().NewTransaction(!readOnly)
	// Discard is a no-op after a successful Commit.
	defer tx.Discard()

	res, err := handler(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		return nil, err
	}

	if readOnly {
		return res, nil
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repoManager) Close() {
	close(r.stopGC)
	if err := r.store.Close(); err != nil {
		log.WithError(err).Warn("error while closing escrow db")
	}
}

func (r *repoManager) runValueLogGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := r.store.Badger().RunValueLogGC(0.5); err != nil &&
				err != badger.ErrNoRewrite {
				log.Error(err)
			}
		case <-r.stopGC:
			return
		}
	}
}

func txFromContext(ctx context.Context) (*badger.Txn, bool) {
	tx, ok := ctx.Value(txKey{}).(*badger.Txn)
	return tx, ok
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          CBOREncode,
		Decoder:          CBORDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
