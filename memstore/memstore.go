package memstore

import (
	"txkv/memstore/entry"

	"github.com/google/btree"
)

const defaultDegree = 32

type item struct {
	key   string
	value string
}

func less(a, b item) bool {
	return a.key < b.key
}

// MemStore is the permanent layer underneath all transaction frames.
type MemStore struct {
	tree *btree.BTreeG[item]
}

func New() *MemStore {
	return &MemStore{
		tree: btree.NewG[item](defaultDegree, less),
	}
}

func (s *MemStore) Get(key string) (string, error) {
	found, ok := s.tree.Get(item{key: key})

	if !ok {
		return "", ErrKeyNotFound
	}

	return found.value, nil
}

func (s *MemStore) Set(key string, value string) {
	s.tree.ReplaceOrInsert(item{key: key, value: value})
}

func (s *MemStore) Delete(key string) (string, error) {
	removed, ok := s.tree.Delete(item{key: key})

	if !ok {
		return "", ErrKeyNotFound
	}

	return removed.value, nil
}

// Apply folds a record into the store. Tombstones remove the key.
func (s *MemStore) Apply(e entry.Entry) {
	if e.Deleted {
		s.tree.Delete(item{key: e.Key})
		return
	}

	s.Set(e.Key, e.Value)
}

func (s *MemStore) Len() int {
	return s.tree.Len()
}

// Range calls fn for every key in ascending order until fn returns false.
func (s *MemStore) Range(fn func(key, value string) bool) {
	s.tree.Ascend(func(i item) bool {
		return fn(i.key, i.value)
	})
}
