package multigraph

// EdgeSet tracks which edges have been consumed by an in-progress walk.
//
// Membership is keyed by edge ID, so marking an edge used covers both of its
// directed forms at once. The zero value is an empty set that grows on Add.
type EdgeSet struct {
	used []bool
	n    int
}

// NewEdgeSet returns an empty set sized for a graph with size edges.
func NewEdgeSet(size int) EdgeSet {
	return EdgeSet{used: make([]bool, size)}
}

// Has reports whether edge id is in the set.
func (s *EdgeSet) Has(id int) bool {
	return s != nil && id >= 0 && id < len(s.used) && s.used[id]
}

// Add marks edge id as used. It reports false if id was already present.
func (s *EdgeSet) Add(id int) bool {
	for id >= len(s.used) {
		s.used = append(s.used, false)
	}
	if s.used[id] {
		return false
	}
	s.used[id] = true
	s.n++
	return true
}

// Remove unmarks edge id. It reports false if id was not present.
func (s *EdgeSet) Remove(id int) bool {
	if !s.Has(id) {
		return false
	}
	s.used[id] = false
	s.n--
	return true
}

// Len returns the number of edges in the set.
func (s *EdgeSet) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// IDs returns the members in ascending order.
func (s *EdgeSet) IDs() []int {
	if s == nil {
		return nil
	}
	ids := make([]int, 0, s.n)
	for id, ok := range s.used {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}
