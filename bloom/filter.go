// Package bloom provides probabilistic name sets backed by Bloom filters.
// The symbol index uses them to reject lookups for names a crate does not
// define without scanning the full listing.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is used by NewNameSet when fpRate is not positive.
const DefaultFalsePositiveRate = 0.01

// NameSet is a Bloom filter over strings.
// MayContainAny never misses an added name.
type NameSet struct {
	f *bloom.BloomFilter
}

// NewNameSet creates a set sized for n expected names.
func NewNameSet(n uint, fpRate float64) *NameSet {
	if n == 0 {
		n = 1
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFalsePositiveRate
	}
	return &NameSet{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add inserts names into the set.
func (s *NameSet) Add(names ...string) {
	for _, name := range names {
		s.f.AddString(name)
	}
}

// MayContainAny reports whether any of names might have been added.
func (s *NameSet) MayContainAny(names ...string) bool {
	for _, name := range names {
		if s.f.TestString(name) {
			return true
		}
	}
	return false
}
