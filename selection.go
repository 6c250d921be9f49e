package main

// SelectionSet is the ordered set of target application names.
//
// Names are matched exactly and case-sensitively against process names.
// Duplicates keep their first position and empty names are dropped.
// The zero value is an empty set.
type SelectionSet struct {
	names []string
	index map[string]struct{}
}

// NewSelectionSet builds a set from names in the given order
func NewSelectionSet(names ...string) SelectionSet {
	s := SelectionSet{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := s.index[n]; ok {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s
}

// Contains reports whether name is in the set
func (s SelectionSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of names
func (s SelectionSet) Len() int { return len(s.names) }

// Empty reports whether the set has no names
func (s SelectionSet) Empty() bool { return len(s.names) == 0 }

// Names returns a copy of the names in insertion order. Never nil.
func (s SelectionSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Equal reports whether both sets hold the same names, ignoring order
func (s SelectionSet) Equal(other SelectionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, n := range s.names {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Intersect returns the names of s that are also in names, in s's order
func (s SelectionSet) Intersect(names []string) SelectionSet {
	other := NewSelectionSet(names...)
	kept := make([]string, 0, len(s.names))
	for _, n := range s.names {
		if other.Contains(n) {
			kept = append(kept, n)
		}
	}
	return NewSelectionSet(kept...)
}
