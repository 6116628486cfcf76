// Package bloom provides page deduplication using Bloom filters.
package bloom

import (
	"strconv"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter keyed on wiki page IDs. Dumps can carry
// the same page more than once; the filter lets the pipeline drop
// repeats without holding every seen ID in memory.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected pages
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a page ID in the filter.
func (f *Filter) Add(pageID int64) {
	f.f.AddString(strconv.FormatInt(pageID, 10))
}

// Seen returns true if the page ID might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(pageID int64) bool {
	return f.f.TestString(strconv.FormatInt(pageID, 10))
}

// EstimatedCount returns the approximate number of pages recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
