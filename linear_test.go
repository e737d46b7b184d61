package seek

import (
	"testing"
)

func TestContains(t *testing.T) {
	s := []int{1, 3, 5, 7, 9}
	tests := []struct {
		name   string
		s      []int
		target int
		want   bool
	}{
		{"beginning", s, 1, true},
		{"middle", s, 5, true},
		{"end", s, 9, true},
		{"absent", s, 6, false},
		{"empty", nil, 5, false},
		{"single found", []int{5}, 5, true},
		{"single absent", []int{5}, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.s, tt.target); got != tt.want {
				t.Errorf("Contains(%v, %d) = %v, want %v", tt.s, tt.target, got, tt.want)
			}
		})
	}

	fruit := []string{"apple", "banana", "cherry"}
	if !Contains(fruit, "banana") || Contains(fruit, "grape") {
		t.Error("Contains on strings")
	}
	flags := []bool{true, false, true}
	if !Contains(flags, true) || !Contains(flags, false) {
		t.Error("Contains on bools")
	}
}

func TestIndex(t *testing.T) {
	s := []int{1, 3, 5, 7, 9}
	tests := []struct {
		name   string
		s      []int
		target int
		want   int
	}{
		{"first", s, 1, 0},
		{"middle", s, 5, 2},
		{"last", s, 9, 4},
		{"absent", s, 6, NotFound},
		{"first of duplicates", []int{1, 3, 5, 5, 5, 7, 9}, 5, 2},
		{"empty", []int{}, 5, NotFound},
		{"single found", []int{5}, 5, 0},
		{"single absent", []int{5}, 3, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Index(tt.s, tt.target); got != tt.want {
				t.Errorf("Index(%v, %d) = %d, want %d", tt.s, tt.target, got, tt.want)
			}
		})
	}

	fruit := []string{"apple", "banana", "cherry", "date"}
	if got := Index(fruit, "cherry"); got != 2 {
		t.Errorf("Index(cherry) = %d, want 2", got)
	}
	if got := Index(fruit, "grape"); got != NotFound {
		t.Errorf("Index(grape) = %d, want %d", got, NotFound)
	}
}

// TestIndexPointerIdentity matches the == semantics of comparable: pointers
// compare by identity, structs by value.
func TestIndexPointerIdentity(t *testing.T) {
	type obj struct{ id int }
	o1, o2, o3 := &obj{1}, &obj{2}, &obj{3}
	ptrs := []*obj{o1, o2, o3}
	if got := Index(ptrs, o2); got != 1 {
		t.Errorf("Index(ptrs, o2) = %d, want 1", got)
	}
	if got := Index(ptrs, &obj{2}); got != NotFound {
		t.Errorf("Index(ptrs, &obj{2}) = %d, want NotFound (different pointer)", got)
	}

	vals := []obj{{1}, {2}, {3}}
	if got := Index(vals, obj{2}); got != 1 {
		t.Errorf("Index(vals, obj{2}) = %d, want 1", got)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		s      []int
		target int
		want   Match[int]
		ok     bool
	}{
		{"found", []int{10, 20, 30, 40}, 30, Match[int]{Index: 2, Value: 30}, true},
		{"absent", []int{10, 20, 30, 40}, 50, Match[int]{}, false},
		{"first of duplicates", []int{10, 20, 30, 30, 40}, 30, Match[int]{Index: 2, Value: 30}, true},
		{"empty", nil, 5, Match[int]{}, false},
		{"single found", []int{5}, 5, Match[int]{Index: 0, Value: 5}, true},
		{"single absent", []int{5}, 3, Match[int]{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Find(tt.s, tt.target)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Find(%v, %d) = %+v, %v; want %+v, %v", tt.s, tt.target, got, ok, tt.want, tt.ok)
			}
		})
	}

	if m, ok := Find([]string{"apple", "banana", "cherry"}, "banana"); !ok || m.Index != 1 || m.Value != "banana" {
		t.Errorf("Find(banana) = %+v, %v", m, ok)
	}
	if m, ok := Find([]float64{1.5, 2.5, 3.5, 4.5}, 3.5); !ok || m.Index != 2 || m.Value != 3.5 {
		t.Errorf("Find(3.5) = %+v, %v", m, ok)
	}
}

// TestLinearShapesAgree checks the three shapes against the oracle on random
// input with many duplicates, and that repeated calls are stable.
func TestLinearShapesAgree(t *testing.T) {
	rng := newTestRNG(t)
	for iter := range 500 {
		n := rng.IntN(64)
		s := randomInts(rng, n, 20)
		target := rng.IntN(25)

		want := naiveIndex(s, target)
		idx := Index(s, target)
		if idx != want {
			t.Fatalf("iter %d: Index(%v, %d) = %d, want %d", iter, s, target, idx, want)
		}
		if Index(s, target) != idx {
			t.Fatalf("iter %d: Index not stable across calls", iter)
		}
		if got := Contains(s, target); got != (want != NotFound) {
			t.Fatalf("iter %d: Contains = %v, want %v", iter, got, want != NotFound)
		}
		m, ok := Find(s, target)
		if ok != (want != NotFound) || (ok && (m.Index != want || m.Value != target)) {
			t.Fatalf("iter %d: Find = %+v, %v; want index %d", iter, m, ok, want)
		}
		if idx != NotFound && s[idx] != target {
			t.Fatalf("iter %d: s[%d] = %d, want %d", iter, idx, s[idx], target)
		}
	}
}
