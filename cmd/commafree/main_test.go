package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wallberg/commafree/commafree"
)

func TestFormatCode(t *testing.T) {
	code := commafree.Code{{0, 0, 0, 1}, {0, 0, 1, 1}, {0, 1, 1, 1}}
	assert.Equal(t, "0001,0011,0111", formatCode(code))
}
