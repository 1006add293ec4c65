// Package units provides value-typed physical quantities (depth, time)
// used throughout the decompression engine. Metric is canonical; imperial
// conversions are provided at the boundary only.
package units

// MetersPerFoot is the exact conversion factor: 1 ft = 0.3048 m.
const MetersPerFoot = 0.3048

// Depth is a scalar depth in meters. The zero value is the surface.
type Depth struct {
	meters float64
}

// Zero is the surface, 0 m.
var Zero = Depth{}

// FromMeters constructs a Depth from a metric value.
func FromMeters(m float64) Depth {
	return Depth{meters: m}
}

// FromFeet constructs a Depth from an imperial value.
func FromFeet(ft float64) Depth {
	return Depth{meters: ft * MetersPerFoot}
}

// Meters returns the depth in meters.
func (d Depth) Meters() float64 {
	return d.meters
}

// Feet returns the depth in feet.
func (d Depth) Feet() float64 {
	return d.meters / MetersPerFoot
}

// Add returns d + o.
func (d Depth) Add(o Depth) Depth {
	return Depth{meters: d.meters + o.meters}
}

// Sub returns d - o.
func (d Depth) Sub(o Depth) Depth {
	return Depth{meters: d.meters - o.meters}
}

// Scale returns d scaled by a dimensionless factor.
func (d Depth) Scale(factor float64) Depth {
	return Depth{meters: d.meters * factor}
}

// Less reports whether d is shallower than o.
func (d Depth) Less(o Depth) bool {
	return d.meters < o.meters
}

// LessOrEqual reports whether d is shallower than or equal to o.
func (d Depth) LessOrEqual(o Depth) bool {
	return d.meters <= o.meters
}

// Max returns the deeper of d and o.
func Max(d, o Depth) Depth {
	if o.meters > d.meters {
		return o
	}
	return d
}

// IsSurface reports whether the depth is at or above 0 m.
func (d Depth) IsSurface() bool {
	return d.meters <= 0
}
