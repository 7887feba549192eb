// Package stats counts selection results, for reporting how the
// empirical distribution compares to the configured weights.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Stats records how often each item was selected.
type Stats[T comparable] struct {
	sync.RWMutex
	counts map[T]uint64
	total  uint64
}

// New returns an empty Stats object.
func New[T comparable]() *Stats[T] {
	return &Stats[T]{
		counts: map[T]uint64{},
	}
}

// Inc records one selection of item.
func (s *Stats[T]) Inc(item T) {
	s.Lock()
	defer s.Unlock()

	s.counts[item] += 1
	s.total += 1
}

// Count returns how often item was selected.
func (s *Stats[T]) Count(item T) uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.counts[item]
}

// Total returns the number of recorded selections.
func (s *Stats[T]) Total() uint64 {
	s.RLock()
	defer s.RUnlock()
	return s.total
}

// Ratio returns the fraction of recorded selections that picked item,
// 0 if nothing was recorded yet.
func (s *Stats[T]) Ratio(item T) float64 {
	s.RLock()
	defer s.RUnlock()

	if s.total == 0 {
		return 0
	}
	return float64(s.counts[item]) / float64(s.total)
}

func (s *Stats[T]) String() string {
	s.RLock()
	defer s.RUnlock()

	keys := []string{}
	byKey := map[string]uint64{}
	for item, count := range s.counts {
		key := fmt.Sprintf("%v", item)
		keys = append(keys, key)
		byKey[key] = count
	}
	sort.Strings(keys)

	result := []string{}
	for _, key := range keys {
		result = append(result, fmt.Sprintf("%s:%d", key, byKey[key]))
	}
	return strings.Join(result, ", ")
}
