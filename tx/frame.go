package tx

import (
	"sort"
	"txkv/memstore/entry"
)

// Target receives the records of a committed frame.
type Target interface {
	Apply(e entry.Entry)
}

// Frame holds the writes and deletions made since the matching Begin.
type Frame struct {
	records map[string]entry.Entry
}

func NewFrame() *Frame {
	return &Frame{
		records: make(map[string]entry.Entry),
	}
}

func (f *Frame) Set(key string, value string) {
	f.records[key] = entry.New(key, value)
}

func (f *Frame) Delete(key string) {
	f.records[key] = entry.Tombstone(key)
}

// Lookup reports whether the frame holds any record for key, tombstones included.
func (f *Frame) Lookup(key string) (entry.Entry, bool) {
	e, ok := f.records[key]
	return e, ok
}

// Apply overwrites whatever the frame recorded for the key.
func (f *Frame) Apply(e entry.Entry) {
	f.records[e.Key] = e
}

func (f *Frame) Len() int {
	return len(f.records)
}

// Range visits records in ascending key order until fn returns false.
func (f *Frame) Range(fn func(e entry.Entry) bool) {
	keys := make([]string, 0, len(f.records))

	for key := range f.records {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if !fn(f.records[key]) {
			return
		}
	}
}

func (f *Frame) fold(target Target) {
	for _, e := range f.records {
		target.Apply(e)
	}
}
