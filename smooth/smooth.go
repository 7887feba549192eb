package smooth

import (
	"fmt"
	"strings"
)

// Item is a registered value and its weight.
type Item[T any] struct {
	Value  T
	Weight int
}

type weightedItem[T any] struct {
	value           T
	weight          int
	currentWeight   int
	effectiveWeight int
}

// Selector schedules items with the Nginx smooth weighted round-robin
// algorithm. It is not safe for concurrent use.
type Selector[T any] struct {
	items        []*weightedItem[T]
	sumOfWeights int
}

// New returns an empty Selector.
func New[T any]() *Selector[T] {
	return &Selector[T]{
		items: []*weightedItem[T]{},
	}
}

func (s *Selector[T]) String() string {
	result := make([]string, len(s.items))
	for i, item := range s.items {
		result[i] = fmt.Sprintf("%v: (w=%d, ew=%d, cw=%d)",
			item.value, item.weight, item.effectiveWeight, item.currentWeight)
	}
	return strings.Join(result, ", ")
}

// Add registers an item with a non-negative weight. The effective weight
// starts equal to the configured weight and nothing in this package ever
// diverges them.
func (s *Selector[T]) Add(value T, weight int) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	s.items = append(s.items, &weightedItem[T]{
		value:           value,
		weight:          weight,
		currentWeight:   0,
		effectiveWeight: weight,
	})
	s.sumOfWeights += weight
	return nil
}

// Next credits every item by its effective weight, selects the item with
// the greatest credit (earliest registered wins ties) and makes it pay
// back the total weight.
func (s *Selector[T]) Next() (T, error) {
	var none T
	if len(s.items) == 0 {
		return none, ErrNoneAvailable
	}

	total := 0
	var best *weightedItem[T]
	for _, item := range s.items {
		item.currentWeight += item.effectiveWeight
		total += item.effectiveWeight

		if best == nil || item.currentWeight > best.currentWeight {
			best = item
		}
	}
	if total == 0 {
		return none, ErrNoneAvailable
	}

	best.currentWeight -= total
	return best.value, nil
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
	for i, item := range s.items {
		result[i] = Item[T]{Value: item.value, Weight: item.weight}
	}
	return result
}

// Reset zeroes every item's credit and restores its effective weight,
// keeping the registered items.
func (s *Selector[T]) Reset() {
	for _, item := range s.items {
		item.currentWeight = 0
		item.effectiveWeight = item.weight
	}
}

// RemoveAll removes all registered items.
func (s *Selector[T]) RemoveAll() {
	s.items = []*weightedItem[T]{}
	s.sumOfWeights = 0
}
