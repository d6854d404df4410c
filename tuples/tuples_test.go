package tuples_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wallberg/commafree/tuples"
)

func TestPrimeFactors(t *testing.T) {
	factors := tuples.PrimeFactors(tuples.PI)
	require := assert.New(t)
	require.NotEmpty(factors)

	joined := ""
	for _, f := range factors {
		joined += f
	}
	require.Equal(tuples.PI, joined, "factors must reassemble the original string in order")
}

func TestPrimeFactors_Simple(t *testing.T) {
	assert.Equal(t, []string{"12", "1"}, tuples.PrimeFactors("121"))
}
