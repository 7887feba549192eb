package weighted

import (
	"github.com/onestraw/weighted/random"
	"github.com/onestraw/weighted/roundrobin"
	"github.com/onestraw/weighted/smooth"
)

// Selection method names.
const (
	MethodRandom     = "random"
	MethodRoundRobin = "round-robin"
	MethodSmooth     = "smooth"
)

// Selector picks one of the registered items on each Next call, so that
// over many calls each item is picked in proportion to its weight.
type Selector[T any] interface {
	String() string
	// Add registers an item with a non-negative weight. An item with
	// weight 0 stays registered but is never selected.
	Add(value T, weight int) error
	// Next returns the selected item, or an error when the table is
	// empty or no item has a positive weight.
	Next() (T, error)
	// IsEmpty reports whether no item is registered.
	IsEmpty() bool
	// TotalWeight returns the sum of all registered weights.
	TotalWeight() int
	// Reset rewinds the scheduling state, keeping the registered items.
	Reset()
	// RemoveAll removes all registered items.
	RemoveAll()
}

var (
	_ Selector[string] = (*random.Selector[string])(nil)
	_ Selector[string] = (*roundrobin.Selector[string])(nil)
	_ Selector[string] = (*smooth.Selector[string])(nil)
)

// New returns an empty Selector using the given method.
func New[T any](method string) (Selector[T], error) {
	switch method {
	case MethodRandom:
		return random.New[T](), nil
	case MethodRoundRobin:
		return roundrobin.New[T](), nil
	case MethodSmooth:
		return smooth.New[T](), nil
	default:
		return nil, ErrNotSupportedMethod
	}
}
