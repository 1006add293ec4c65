package zhl16

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableHasSixteenCompartments(t *testing.T) {
	assert.Equal(t, 16, Count)
	assert.Len(t, Compartments, 16)
}

func TestHalfTimesAreIncreasing(t *testing.T) {
	for i := 1; i < Count; i++ {
		assert.Greater(t, Compartments[i].HtN2, Compartments[i-1].HtN2, "N2 half-time at %d", i)
		assert.Greater(t, Compartments[i].HtHe, Compartments[i-1].HtHe, "He half-time at %d", i)
	}
}

func TestCoefficientsArePositive(t *testing.T) {
	for i, c := range Compartments {
		assert.Greater(t, c.AN2, 0.0, "AN2 at %d", i)
		assert.Greater(t, c.BN2, 0.0, "BN2 at %d", i)
		assert.Greater(t, c.AHe, 0.0, "AHe at %d", i)
		assert.Greater(t, c.BHe, 0.0, "BHe at %d", i)
	}
}
