package pubsub

import (
	"errors"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/tdex-network/escrowd/internal/core/ports"
	dbbadger "github.com/tdex-network/escrowd/internal/infrastructure/storage/db/badger"
	"github.com/timshannon/badgerhold/v4"
)

const subscriptionsDir = "pubsub"

// SubscriptionStore persists the registered webhooks.
type SubscriptionStore interface {
	Add(sub Subscription) error
	Get(id string) (*Subscription, error)
	Remove(id string) error
	// List returns the subscriptions for the given topic, or all of them if
	// topic is unspecified.
	List(topic string) ([]Subscription, error)
	Close() error
}

type badgerStore struct {
	store *badgerhold.Store
}

// NewBadgerStore opens the subscription store in the given datadir. An empty
// datadir makes badger run in memory.
func NewBadgerStore(
	datadir string, logger badger.Logger,
) (SubscriptionStore, error) {
	var opts badger.Options
	if len(datadir) <= 0 {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(filepath.Join(datadir, subscriptionsDir)).
			WithCompression(options.ZSTD)
	}
	opts.Logger = logger

	store, err := badgerhold.Open(badgerhold.Options{
		Encoder: dbbadger.CBOREncode,
		Decoder: dbbadger.CBORDecode,
		Options: opts,
	})
	if err != nil {
		return nil, err
	}
	return &badgerStore{store}, nil
}

func (s *badgerStore) Add(sub Subscription) error {
	if err := s.store.Insert(sub.ID, sub); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return nil
		}
		return err
	}
	return nil
}

func (s *badgerStore) Get(id string) (*Subscription, error) {
	var sub Subscription
	if err := s.store.Get(id, &sub); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *badgerStore) Remove(id string) error {
	if err := s.store.Delete(id, Subscription{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return nil
}

func (s *badgerStore) List(topic string) ([]Subscription, error) {
	var query *badgerhold.Query
	if topic != ports.UnspecifiedTopic {
		query = badgerhold.Where("Event").Eq(topic).Index("Event")
	}

	var subs []Subscription
	if err := s.store.Find(&subs, query); err != nil {
		return nil, err
	}
	sortSubscriptions(subs)
	return subs, nil
}

func (s *badgerStore) Close() error {
	return s.store.Close()
}

type inmemoryStore struct {
	subs map[string]Subscription
	lock *sync.RWMutex
}

// NewInMemoryStore returns a volatile SubscriptionStore.
func NewInMemoryStore() SubscriptionStore {
	return &inmemoryStore{
		subs: make(map[string]Subscription),
		lock: &sync.RWMutex{},
	}
}

func (s *inmemoryStore) Add(sub Subscription) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[sub.ID]; !ok {
		s.subs[sub.ID] = sub
	}
	return nil
}

func (s *inmemoryStore) Get(id string) (*Subscription, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	sub, ok := s.subs[id]
	if !ok {
		return nil, ErrSubscriptionNotFound
	}
	return &sub, nil
}

func (s *inmemoryStore) Remove(id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.subs[id]; !ok {
		return ErrSubscriptionNotFound
	}
	delete(s.subs, id)
	return nil
}

func (s *inmemoryStore) List(topic string) ([]Subscription, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	subs := make([]Subscription, 0)
	for _, sub := range s.subs {
		if topic == ports.UnspecifiedTopic || sub.Event == topic {
			subs = append(subs, sub)
		}
	}
	sortSubscriptions(subs)
	return subs, nil
}

func (s *inmemoryStore) Close() error {
	return nil
}

func sortSubscriptions(subs []Subscription) {
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].CreatedAt == subs[j].CreatedAt {
			return subs[i].ID < subs[j].ID
		}
		return subs[i].CreatedAt < subs[j].CreatedAt
	})
}
