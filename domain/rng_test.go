package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRNG_Deterministic(t *testing.T) {
	r1 := DefaultRNG()
	r2 := DefaultRNG()
	assert.Equal(t, r1.Int63(), r2.Int63())
}

func TestRandomWalkLength_Bounds(t *testing.T) {
	r := DefaultRNG()
	for i := 0; i < 100; i++ {
		n := RandomWalkLength(5, 10, r)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestRandomWalkLength_EqualBounds(t *testing.T) {
	r := DefaultRNG()
	assert.Equal(t, 7, RandomWalkLength(7, 7, r))
}

func TestRandomWalkLength_PanicsOnBadRange(t *testing.T) {
	r := DefaultRNG()
	assert.Panics(t, func() { RandomWalkLength(10, 5, r) })
}
