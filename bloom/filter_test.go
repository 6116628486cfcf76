package bloom_test

import (
	"testing"

	"github.com/fwojciec/wikidump/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndSeen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Page not yet added should return false
	assert.False(t, f.Seen(42))

	// Add page
	f.Add(42)

	// Now it should return true
	assert.True(t, f.Seen(42))

	// Different page should still return false
	assert.False(t, f.Seen(43))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// Empty filter should have count near 0
	assert.Equal(t, uint(0), f.EstimatedCount())

	// Add some pages
	f.Add(1)
	f.Add(2)
	f.Add(3)

	// Estimated count should be approximately 3
	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add(42)
	countAfterFirst := f.EstimatedCount()

	// Adding the same page multiple times should not change the filter
	f.Add(42)
	f.Add(42)
	f.Add(42)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Seen(42))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	// Add 10k page IDs
	for i := range numItems {
		f.Add(int64(i))
	}

	// Test with 10k IDs that were NOT added
	falsePositives := 0
	for i := range testProbes {
		if f.Seen(int64(numItems + i)) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
