package districts

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("Hyderabad"))
	assert.True(t, Valid("Yadadri Bhuvanagiri"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("hyderabad"))
	assert.False(t, Valid("Mumbai"))
}

func TestSortedIsOrderedAndComplete(t *testing.T) {
	list := Sorted()
	assert.Len(t, list, len(all))
	assert.True(t, sort.StringsAreSorted(list))

	for _, d := range list {
		assert.True(t, Valid(d), "sorted entry %q must be a member", d)
	}
}

func TestSortedReturnsCopy(t *testing.T) {
	list := Sorted()
	list[0] = "Tampered"
	assert.NotEqual(t, "Tampered", Sorted()[0])
}
