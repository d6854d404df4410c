package preprime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallberg/commafree/preprime"
)

func TestPreprimes_M2N3(t *testing.T) {
	reps := preprime.Preprimes(2, 3)
	require.Len(t, reps, 5)

	want := []struct {
		word [3]int
		j    int
	}{
		{[3]int{0, 0, 0}, 1},
		{[3]int{0, 0, 1}, 3},
		{[3]int{0, 1, 0}, 2},
		{[3]int{0, 1, 1}, 3},
		{[3]int{1, 1, 1}, 1},
	}

	for i, w := range want {
		assert.Equal(t, w.word[:], []int(reps[i].Word))
		assert.Equal(t, w.j, reps[i].J)
	}
}

func TestPreprimes_M3N4(t *testing.T) {
	reps := preprime.Preprimes(3, 4)
	require.Len(t, reps, 32)

	assert.Equal(t, []int{0, 0, 0, 0}, []int(reps[0].Word))
	assert.Equal(t, 1, reps[0].J)

	assert.Equal(t, []int{0, 0, 1, 1}, []int(reps[4].Word))
	assert.Equal(t, 4, reps[4].J)

	assert.Equal(t, []int{0, 2, 1, 0}, []int(reps[18].Word))
	assert.Equal(t, 3, reps[18].J)

	assert.Equal(t, []int{2, 2, 2, 2}, []int(reps[31].Word))
	assert.Equal(t, 1, reps[31].J)
}
