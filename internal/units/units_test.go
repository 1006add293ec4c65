package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepthFeetRoundTrip(t *testing.T) {
	d := FromFeet(100)
	assert.InDelta(t, 30.48, d.Meters(), 1e-9)
	assert.InDelta(t, 100, d.Feet(), 1e-9)
}

func TestDepthArithmetic(t *testing.T) {
	a := FromMeters(40)
	b := FromMeters(10)
	assert.Equal(t, FromMeters(50), a.Add(b))
	assert.Equal(t, FromMeters(30), a.Sub(b))
	assert.Equal(t, FromMeters(20), a.Scale(0.5))
	assert.True(t, b.Less(a))
	assert.True(t, b.LessOrEqual(FromMeters(10)))
	assert.Equal(t, a, Max(a, b))
}

func TestDepthIsSurface(t *testing.T) {
	assert.True(t, Zero.IsSurface())
	assert.True(t, FromMeters(-0.1).IsSurface())
	assert.False(t, FromMeters(0.1).IsSurface())
}

func TestTimeConversions(t *testing.T) {
	tm := FromMinutes(2.5)
	assert.InDelta(t, 150, tm.Seconds(), 1e-9)
	assert.InDelta(t, 2.5, tm.Minutes(), 1e-9)

	sec := FromSeconds(90)
	assert.InDelta(t, 1.5, sec.Minutes(), 1e-9)
}

func TestTimeArithmetic(t *testing.T) {
	a := FromSeconds(30)
	b := FromSeconds(10)
	assert.Equal(t, FromSeconds(40), a.Add(b))
	assert.Equal(t, FromSeconds(20), a.Sub(b))
	assert.True(t, ZeroTime.IsZero())
	assert.False(t, a.IsZero())
}
