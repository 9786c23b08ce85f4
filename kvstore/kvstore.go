package kvstore

import (
	"errors"
	"sync"
	"txkv/memstore"
	"txkv/memstore/entry"
	"txkv/tx"

	"github.com/rs/zerolog/log"
)

// KVStore layers nested transaction frames over a base store. Every operation
// acts on the innermost active transaction, or on the base when none is open.
type KVStore struct {
	mutex   sync.Mutex
	base    *memstore.MemStore
	manager *tx.Manager
}

func New(base *memstore.MemStore, manager *tx.Manager) *KVStore {
	return &KVStore{
		base:    base,
		manager: manager,
	}
}

func NewDefault() *KVStore {
	return New(memstore.New(), tx.NewManager())
}

func (s *KVStore) Set(key string, value string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if frame, ok := s.manager.Top(); ok {
		frame.Set(key, value)
		return
	}

	s.base.Set(key, value)
}

func (s *KVStore) Get(key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.resolve(key)
}

// Delete returns the value visible before the deletion. Inside a transaction
// the key is shadowed by a tombstone instead of touching outer layers.
func (s *KVStore) Delete(key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	frame, ok := s.manager.Top()
	if !ok {
		value, err := s.base.Delete(key)
		if errors.Is(err, memstore.ErrKeyNotFound) {
			return "", ErrKeyNotFound
		}

		return value, err
	}

	value, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	frame.Delete(key)
	return value, nil
}

// Count returns how many keys currently resolve to value.
func (s *KVStore) Count(value string) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	count := 0

	for _, v := range s.flatten() {
		if v == value {
			count++
		}
	}

	if count == 0 {
		return 0, ErrValueNotFound
	}

	return count, nil
}

func (s *KVStore) Begin() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.manager.Begin()
}

func (s *KVStore) Commit() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.manager.Commit(s.base)
}

func (s *KVStore) Rollback() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.manager.Rollback()
}

// Depth is the number of open transactions.
func (s *KVStore) Depth() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.manager.Depth()
}

// Snapshot returns every visible key with its resolved value.
func (s *KVStore) Snapshot() map[string]string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.flatten()
}

// BaseLen is the number of keys in the base store.
func (s *KVStore) BaseLen() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.base.Len()
}

// resolve scans frames innermost first and stops at the first record for key,
// so a tombstone hides every outer value.
func (s *KVStore) resolve(key string) (string, error) {
	frames := s.manager.Frames()

	for i := len(frames) - 1; i >= 0; i-- {
		e, ok := frames[i].Lookup(key)
		if !ok {
			continue
		}

		if e.Deleted {
			return "", ErrKeyNotFound
		}

		return e.Value, nil
	}

	value, err := s.base.Get(key)
	if errors.Is(err, memstore.ErrKeyNotFound) {
		return "", ErrKeyNotFound
	}

	return value, err
}

func (s *KVStore) flatten() map[string]string {
	view := make(map[string]string, s.base.Len())

	s.base.Range(func(key, value string) bool {
		view[key] = value
		return true
	})

	for _, frame := range s.manager.Frames() {
		frame.Range(func(e entry.Entry) bool {
			if e.Deleted {
				delete(view, e.Key)
			} else {
				view[e.Key] = e.Value
			}

			return true
		})
	}

	log.Trace().
		Int("keys", len(view)).
		Msg("kvstore: flattened view")

	return view
}
