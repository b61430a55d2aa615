package cache

import (
	"errors"
	"sync"

	"painel_backend/internals/constants"
)

var ErrUnknownTag = errors.New("tag de cache desconhecida")

// TagStore memoizes computed values under a key, grouped by tags.
// Entries never expire; they are dropped only by RevalidateTag.
type TagStore struct {
	mu      sync.RWMutex
	entries map[string]any
	byTag   map[string]map[string]struct{}
	gen     map[string]uint64
}

func NewTagStore() *TagStore {
	return &TagStore{
		entries: map[string]any{},
		byTag:   map[string]map[string]struct{}{},
		gen:     map[string]uint64{},
	}
}

func (s *TagStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *TagStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *TagStore) snapshot(tags []string) []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint64, len(tags))
	for i, t := range tags {
		out[i] = s.gen[t]
	}
	return out
}

// set stores v unless one of the tags was revalidated after snap was taken.
func (s *TagStore) set(key string, tags []string, snap []uint64, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range tags {
		if s.gen[t] != snap[i] {
			return
		}
	}
	s.entries[key] = v
	for _, t := range tags {
		if s.byTag[t] == nil {
			s.byTag[t] = map[string]struct{}{}
		}
		s.byTag[t][key] = struct{}{}
	}
}

// RevalidateTag drops every entry carrying tag.
func (s *TagStore) RevalidateTag(tag string) error {
	if !constants.IsCacheTag(tag) {
		return ErrUnknownTag
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.byTag[tag] {
		delete(s.entries, key)
	}
	delete(s.byTag, tag)
	s.gen[tag]++
	return nil
}

// Remember returns the cached value for key or computes it with fn.
// Concurrent misses each run fn; errors are never cached.
func Remember[T any](s *TagStore, key string, tags []string, fn func() (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	snap := s.snapshot(tags)
	v, err := fn()
	if err != nil {
		return v, err
	}
	s.set(key, tags, snap, v)
	return v, nil
}
