package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func IndexFunc[S ~[]E, E any](s S, pred func(E) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}

	return -1
}

// OrderedSet keeps values keyed by name in first-insertion order.
// Setting an existing key replaces its value but keeps its position.
type OrderedSet[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[V any]() *OrderedSet[V] {
	return &OrderedSet[V]{values: make(map[string]V)}
}

// Set stores v under key and reports whether key was already present.
func (s *OrderedSet[V]) Set(key string, v V) bool {
	_, exists := s.values[key]
	if !exists {
		s.keys = append(s.keys, key)
	}

	s.values[key] = v

	return exists
}

// Values returns the values in key order.
func (s *OrderedSet[V]) Values() []V {
	out := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.values[k])
	}

	return out
}
