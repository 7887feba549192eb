package random

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Item is a registered value and its weight.
type Item[T any] struct {
	Value  T
	Weight int
}

// Selector picks items at random, in proportion to their weights.
// It is not safe for concurrent use.
type Selector[T any] struct {
	items        []Item[T]
	sumOfWeights int
	r            *rand.Rand
}

// New returns an empty Selector seeded from the wall clock.
func New[T any]() *Selector[T] {
	return NewWithSource[T](rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns an empty Selector drawing from src. Tests pass a
// fixed-seed source to make the selection sequence reproducible.
func NewWithSource[T any](src rand.Source) *Selector[T] {
	return &Selector[T]{
		items: []Item[T]{},
		r:     rand.New(src),
	}
}

func (s *Selector[T]) String() string {
	result := make([]string, len(s.items))
	for i, item := range s.items {
		result[i] = fmt.Sprintf("%v:%d", item.Value, item.Weight)
	}
	return strings.Join(result, ", ")
}

// Add registers an item with a non-negative weight.
func (s *Selector[T]) Add(value T, weight int) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	s.items = append(s.items, Item[T]{Value: value, Weight: weight})
	s.sumOfWeights += weight
	return nil
}

// Next returns a randomly selected item. An item is selected iff the
// draw falls inside its weight-wide span of the cumulative scan, so
// items with weight 0 are never selected.
func (s *Selector[T]) Next() (T, error) {
	var none T
	if len(s.items) == 0 || s.sumOfWeights <= 0 {
		return none, ErrNoneAvailable
	}

	draw := s.r.Intn(s.sumOfWeights)
	for _, item := range s.items {
		draw -= item.Weight
		if draw < 0 {
			return item.Value, nil
		}
	}
	// unreachable: the weights sum to sumOfWeights
	return s.items[len(s.items)-1].Value, nil
}

// IsEmpty reports whether no item is registered.
func (s *Selector[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// TotalWeight returns the sum of all registered weights.
func (s *Selector[T]) TotalWeight() int {
	return s.sumOfWeights
}

// All returns the registered items in insertion order.
func (s *Selector[T]) All() []Item[T] {
	result := make([]Item[T], len(s.items))
	copy(result, s.items)
	return result
}

// Reset is a no-op: the only state beyond the table is the random source.
func (s *Selector[T]) Reset() {}

// RemoveAll removes all registered items.
func (s *Selector[T]) RemoveAll() {
	s.items = []Item[T]{}
	s.sumOfWeights = 0
}
