package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCompartment struct {
	pAmb float64
}

func (f fakeCompartment) AmbientAtGradient(g float64) float64 {
	return f.pAmb
}

func TestLowDepthTakesMaxOverCompartments(t *testing.T) {
	comps := []fakeCompartment{{pAmb: 1.5}, {pAmb: 2.0}, {pAmb: 1.013}}
	d := LowDepth(comps, 30, 1.013)
	assert.InDelta(t, 10*(2.0-1.013), d, 1e-9)
}

func TestLowDepthFloorsAtZero(t *testing.T) {
	comps := []fakeCompartment{{pAmb: 0.5}}
	d := LowDepth(comps, 30, 1.013)
	assert.Equal(t, 0.0, d)
}

func TestSlopedNoSlopeWhenEqual(t *testing.T) {
	assert.Equal(t, 70.0, Sloped(10, 70, 70, 20))
	assert.Equal(t, 70.0, Sloped(0, 70, 70, 20))
}

func TestSlopedNotInDeco(t *testing.T) {
	assert.Equal(t, 85.0, Sloped(10, 30, 85, 0))
}

func TestSlopedAtAnchorAndSurface(t *testing.T) {
	assert.InDelta(t, 30.0, Sloped(20, 30, 85, 20), 1e-9)
	assert.InDelta(t, 85.0, Sloped(0, 30, 85, 20), 1e-9)
}

func TestSlopedLinearBetween(t *testing.T) {
	got := Sloped(10, 30, 80, 20)
	want := 80 - (80-30)*10.0/20.0
	assert.InDelta(t, want, got, 1e-9)
}

func TestLowDepthCache(t *testing.T) {
	var c LowDepthCache
	_, ok := c.Get()
	assert.False(t, ok)

	c.Set(12.5)
	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, 12.5, v)

	c.Invalidate()
	_, ok = c.Get()
	assert.False(t, ok)
}
