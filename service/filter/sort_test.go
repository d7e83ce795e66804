package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_RatingDesc(t *testing.T) {
	got := Sort(sampleVendors(), SortRatingDesc, VendorSorters)

	// vendor 4 has no rating and sinks to the end
	assert.Equal(t, []string{"2", "5", "1", "3", "4"}, ids(got))
}

func TestSort_PriceAscDoesNotTouchInput(t *testing.T) {
	in := sampleVendors()

	got := Sort(in, SortPriceAsc, VendorSorters)

	assert.Equal(t, []string{"2", "1", "5", "3", "4"}, ids(got))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(in))
}

func TestSort_NameAsc(t *testing.T) {
	got := Sort(sampleVendors(), SortNameAsc, VendorSorters)

	assert.Equal(t, []string{"5", "2", "1", "4", "3"}, ids(got))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	got := Sort(sampleVendors(), "random", VendorSorters)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(got))
	assert.False(t, ValidSortKey("random"))
	assert.True(t, ValidSortKey(SortPriceDesc))
}
