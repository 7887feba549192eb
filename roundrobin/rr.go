package roundrobin

import (
	"fmt"
	"strings"
)

// Item is a registered value and its weight.
type Item[T any] struct {
	Value  T
	Weight int
}

// Selector schedules items with the LVS weighted round-robin algorithm.
// It is not safe for concurrent use.
type Selector[T any] struct {
	items        []Item[T]
	sumOfWeights int
	index        int // scan index, -1 means before the first item
	cw           int // current weight threshold
	maxW         int // cached maximum weight
	gcd          int // cached gcd of all positive weights
}

// New returns an empty Selector.
func New[T any]() *Selector[T] {
	return &Selector[T]{
		items: []Item[T]{},
		index: -1,
	}
}

func (s *Selector[T]) String() string {
	result := make([]string, len(s.items))
	for i, item := range s.items {
		result[i] = fmt.Sprintf("%v:%d", item.Value, item.Weight)
	}
	return strings.Join(result, ", ")
}

// Add registers an item with a non-negative weight. The cached maximum
// weight and gcd are updated here, keeping them consistent with the
// table before the next scheduling decision.
func (s *Selector[T]) Add(value T, weight int) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	s.items = append(s.items, Item[T]{Value: value, Weight: weight})
	s.sumOfWeights += weight

	if weight > 0 {
		if s.gcd == 0 {
			// first positive weight, start a fresh cycle
			s.gcd = weight
			s.maxW = weight
			s.index = -1
			s.cw = 0
		} else {
			s.gcd = gcdInt(s.gcd, weight)
			if s.maxW < weight {
				s.maxW = weight
			}
		}
	}
	return nil
}

// Next returns the next item of the cyclic schedule. Every scan pass
// steps the threshold down by the gcd, items whose weight reaches the
// threshold are selected.
func (s *Selector[T]) Next() (T, error) {
	var none T
	// maxW == 0 means no item has a positive weight, looping would
	// never terminate
	if len(s.items) == 0 || s.maxW == 0 {
		return none, ErrNoneAvailable
	}

	for {
		s.index = (s.index + 1) % len(s.items)
		if s.index == 0 {
			s.cw -= s.gcd
			if s.cw <= 0 {
				s.cw = s.maxW
			}
		}
		if s.items[s.index].Weight >= s.cw {
			return s.items[s.index].Value, nil
		}
	}
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

// Reset rewinds the schedule to the start of a cycle, keeping the
// registered items.
func (s *Selector[T]) Reset() {
	s.index = -1
	s.cw = 0
}

// RemoveAll removes all registered items.
func (s *Selector[T]) RemoveAll() {
	s.items = []Item[T]{}
	s.sumOfWeights = 0
	s.index = -1
	s.cw = 0
	s.maxW = 0
	s.gcd = 0
}

func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
