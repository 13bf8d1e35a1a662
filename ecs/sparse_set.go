package ecs

// SparseSet stores values keyed by a positive slot id. Removal swaps with the last dense
// entry, so dense order is not stable; Ascending walks ids in increasing order instead.
type SparseSet[T any] struct {
	denseIDs    []int
	denseValues []T
	sparse      []int
}

// Has returns true if the id exists in the set.
func (s *SparseSet[T]) Has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

// Get returns the value for id.
func (s *SparseSet[T]) Get(id int) (T, bool) {
	var zero T
	if !s.Has(id) {
		return zero, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

// Set inserts or updates the value for id.
func (s *SparseSet[T]) Set(id int, v T) {
	if s == nil || id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

// Remove deletes the value for id if present.
func (s *SparseSet[T]) Remove(id int) {
	if s == nil || !s.Has(id) {
		return
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = s.denseIDs[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	var zero T
	s.denseValues[last] = zero
	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
}

func (s *SparseSet[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// Ascending calls fn for every stored value in increasing id order. fn must not add or
// remove entries.
func (s *SparseSet[T]) Ascending(fn func(id int, v T)) {
	if s == nil || fn == nil {
		return
	}
	for i, idx := range s.sparse {
		if idx < 0 {
			continue
		}
		fn(i+1, s.denseValues[idx])
	}
}
