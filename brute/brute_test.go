package brute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wallberg/commafree/brute"
	"github.com/wallberg/commafree/commafree"
)

func TestIsCommafree(t *testing.T) {
	good := []commafree.Word{{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 1, 1}}
	assert.True(t, brute.IsCommafree(good))

	// Adding 0010 collides: "0001"+"0010" contains "0010" again at an
	// interior offset, so the pair is no longer commafree.
	bad := append(append([]commafree.Word{}, good...), commafree.Word{0, 0, 1, 0})
	assert.False(t, brute.IsCommafree(bad))
}

func TestAllCodes_M2G3MatchesSearchCount(t *testing.T) {
	codes := brute.AllCodes(2, 3)
	assert.Len(t, codes, 14)
	for _, c := range codes {
		assert.True(t, brute.IsCommafree(c))
		assert.Len(t, c, 3)
	}
}
