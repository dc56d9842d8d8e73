package predicate

import (
	"github.com/cespare/xxhash/v2"
)

// Set is the ordered container mapping index i to predicate P_i; |Set|
// determines the universe of 2^n boolean assignments. Interning is keyed
// by a hash of the predicate's canonical Key, bucketed to resolve the rare
// collision without ever returning a false positive, the same symbol-table
// lookup idiom used elsewhere in this codebase, adapted for collision
// safety since the key space here is hashed rather than compared directly.
type Set struct {
	list    []Atomic
	buckets map[uint64][]int
}

// NewSet returns an empty predicate set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]int)}
}

// Intern returns the stable index for p, assigning a fresh index the first
// time a structurally distinct predicate is seen.
func (s *Set) Intern(p Atomic) int {
	key := p.Key()
	h := xxhash.Sum64String(key)
	for _, idx := range s.buckets[h] {
		if s.list[idx].Key() == key {
			return idx
		}
	}
	idx := len(s.list)
	s.list = append(s.list, p)
	s.buckets[h] = append(s.buckets[h], idx)
	return idx
}

// Lookup returns the atomic predicate at index i.
func (s *Set) Lookup(i int) (Atomic, bool) {
	if i < 0 || i >= len(s.list) {
		return Atomic{}, false
	}
	return s.list[i], true
}

// Len returns the number of distinct interned predicates.
func (s *Set) Len() int { return len(s.list) }

// All returns the predicates in interning order.
func (s *Set) All() []Atomic {
	out := make([]Atomic, len(s.list))
	copy(out, s.list)
	return out
}
