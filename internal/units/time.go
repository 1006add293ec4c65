package units

// SecondsPerMinute is the conversion factor between seconds and minutes.
const SecondsPerMinute = 60.0

// Time is a scalar duration in seconds. The zero value is no elapsed time.
type Time struct {
	seconds float64
}

// ZeroTime is a duration of 0 s.
var ZeroTime = Time{}

// FromSeconds constructs a Time from a value in seconds.
func FromSeconds(s float64) Time {
	return Time{seconds: s}
}

// FromMinutes constructs a Time from a value in minutes.
func FromMinutes(m float64) Time {
	return Time{seconds: m * SecondsPerMinute}
}

// Seconds returns the duration in seconds.
func (t Time) Seconds() float64 {
	return t.seconds
}

// Minutes returns the duration in minutes. All physiological calculations
// in this engine operate on minutes.
func (t Time) Minutes() float64 {
	return t.seconds / SecondsPerMinute
}

// Add returns t + o.
func (t Time) Add(o Time) Time {
	return Time{seconds: t.seconds + o.seconds}
}

// Sub returns t - o.
func (t Time) Sub(o Time) Time {
	return Time{seconds: t.seconds - o.seconds}
}

// IsZero reports whether the duration is exactly zero.
func (t Time) IsZero() bool {
	return t.seconds == 0
}
