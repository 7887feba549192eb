package smooth

import (
	"strings"
	"testing"
)

func testNextSequence(t *testing.T, s *Selector[string], count int, expected string) {
	result := []string{}

	t.Logf("%v", s)
	for i := 0; i < count; i++ {
		v, err := s.Next()
		if err != nil {
			t.Fatalf("Next error: %v", err)
		}
		result = append(result, v)
	}

	got := strings.Join(result, ",")
	if got != expected {
		t.Errorf("expected order: '%s', but got '%s'", expected, got)
	}
}

func newSelector(t *testing.T, items map[string]int, order []string) *Selector[string] {
	s := New[string]()
	for _, value := range order {
		if err := s.Add(value, items[value]); err != nil {
			t.Fatalf("Add error: %v", err)
		}
	}
	return s
}

func TestNextWithDifferentWeight(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 1, "c": 1}, []string{"a", "b", "c"})
	testNextSequence(t, s, 7, "a,a,b,a,c,a,a")
}

func TestNextWithSameWeight(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 1, "b": 1, "c": 1}, []string{"a", "b", "c"})
	testNextSequence(t, s, 6, "a,b,c,a,b,c")
}

func TestNextWithSameWeightNotOne(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 2, "b": 2, "c": 2}, []string{"a", "b", "c"})
	testNextSequence(t, s, 6, "a,b,c,a,b,c")
}

func TestExactCountPerWindow(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 2, "c": 3}, []string{"a", "b", "c"})

	// every window of totalWeight=10 calls selects each item exactly
	// weight times
	for window := 0; window < 3; window++ {
		counts := map[string]int{}
		for i := 0; i < 10; i++ {
			v, err := s.Next()
			if err != nil {
				t.Fatalf("Next error: %v", err)
			}
			counts[v]++
		}
		if counts["a"] != 5 || counts["b"] != 2 || counts["c"] != 3 {
			t.Errorf("window %d: expected counts a:5 b:2 c:3, but got %v", window, counts)
		}
	}
}

func TestTieBreakInsertionOrder(t *testing.T) {
	s := newSelector(t, map[string]int{"b": 1, "a": 1}, []string{"b", "a"})
	testNextSequence(t, s, 4, "b,a,b,a")
}

func TestZeroWeightNeverSelected(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 0, "b": 2, "c": 1}, []string{"a", "b", "c"})
	testNextSequence(t, s, 3, "b,c,b")
}

func TestSingleItem(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 7}, []string{"a"})
	testNextSequence(t, s, 5, "a,a,a,a,a")
}

func TestEmpty(t *testing.T) {
	s := New[string]()
	if !s.IsEmpty() {
		t.Errorf("selector should be empty")
	}
	if _, err := s.Next(); err != ErrNoneAvailable {
		t.Errorf("expected ErrNoneAvailable, but got %v", err)
	}
}

func TestAllZeroWeight(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 0, "b": 0}, []string{"a", "b"})
	for i := 0; i < 3; i++ {
		if _, err := s.Next(); err != ErrNoneAvailable {
			t.Errorf("expected ErrNoneAvailable, but got %v", err)
		}
	}
}

func TestNegativeWeight(t *testing.T) {
	s := New[string]()
	if err := s.Add("a", -1); err != ErrNegativeWeight {
		t.Errorf("expected ErrNegativeWeight, but got %v", err)
	}
	if !s.IsEmpty() {
		t.Errorf("rejected item should not be registered")
	}
}

func TestTotalWeight(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 0, "c": 3}, []string{"a", "b", "c"})
	if s.TotalWeight() != 8 {
		t.Errorf("total weight should be 8, but got %d", s.TotalWeight())
	}
}

func TestAll(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 2}, []string{"a", "b"})
	items := s.All()
	if len(items) != 2 || items[0] != (Item[string]{"a", 5}) || items[1] != (Item[string]{"b", 2}) {
		t.Errorf("unexpected items: %v", items)
	}
}

func TestReset(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 1, "c": 1}, []string{"a", "b", "c"})
	testNextSequence(t, s, 4, "a,a,b,a")

	s.Reset()
	testNextSequence(t, s, 7, "a,a,b,a,c,a,a")
}

func TestRemoveAll(t *testing.T) {
	s := newSelector(t, map[string]int{"a": 5, "b": 2}, []string{"a", "b"})
	s.RemoveAll()
	if !s.IsEmpty() || s.TotalWeight() != 0 {
		t.Errorf("selector should be empty after RemoveAll")
	}
	if _, err := s.Next(); err != ErrNoneAvailable {
		t.Errorf("expected ErrNoneAvailable, but got %v", err)
	}
}
