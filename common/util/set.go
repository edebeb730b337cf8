package util

// Set is an unordered collection of unique values.
type Set[V comparable] struct {
	values map[V]struct{}
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{values: map[V]struct{}{}}
}

func NewSetOf[V comparable](values ...V) *Set[V] {
	set := NewSet[V]()
	for _, value := range values {
		set.Add(value)
	}
	return set
}

func (s *Set[V]) Add(value V) {
	s.values[value] = struct{}{}
}

func (s *Set[V]) Contains(value V) bool {
	_, ok := s.values[value]
	return ok
}

func (s *Set[V]) Len() int {
	return len(s.values)
}
