// Package bloom provides probabilistic seen-hash tracking for change
// detection between scraping runs.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks content hashes already observed in earlier runs. A negative
// test is definitive (the hash is new); a positive test may be a false
// positive and needs exact confirmation.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected hashes with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a content hash.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might have been recorded. False positives
// are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// EstimatedCount returns the approximate number of recorded hashes.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
