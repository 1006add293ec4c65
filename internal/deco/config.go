package deco

// CeilingType selects how Model.Ceiling computes the current ceiling.
type CeilingType int

const (
	// CeilingActual is the leading compartment's ceiling directly.
	CeilingActual CeilingType = iota
	// CeilingAdaptive iteratively ascends a fork toward the ceiling,
	// recomputing until it converges (spec.md §4.4).
	CeilingAdaptive
)

func (t CeilingType) String() string {
	switch t {
	case CeilingActual:
		return "actual"
	case CeilingAdaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

// NDLType selects how Model.NDL is computed.
type NDLType int

const (
	// NDLActual forward-simulates to the 99-minute cutoff (spec.md §4.5).
	NDLActual NDLType = iota
	// NDLByCeiling derives NDL from when the ceiling first exceeds zero.
	// (Equivalent in this design — see Model.NDL.)
	NDLByCeiling
)

// GradientFactors pairs GF-low (applied at the deepest required stop) and
// GF-high (applied at the surface).
type GradientFactors struct {
	Low, High float64
}

// Config carries every tunable parameter of the planning engine.
// spec.md §4.7.
type Config struct {
	GradientFactors        GradientFactors `yaml:"gradient_factors"`
	SurfacePressureMbar    float64         `yaml:"surface_pressure_mbar"`
	DecoAscentRateMPerMin  float64         `yaml:"deco_ascent_rate_m_per_min"`
	CeilingType            CeilingType     `yaml:"ceiling_type"`
	RoundCeiling           bool            `yaml:"round_ceiling"`
	NDLType                NDLType         `yaml:"ndl_type"`
}

// DefaultConfig returns the spec.md §4.7 defaults: GF 100/100, 1013 mbar,
// 10 m/min deco ascent, actual ceiling, no rounding, actual NDL.
func DefaultConfig() Config {
	return Config{
		GradientFactors:       GradientFactors{Low: 100, High: 100},
		SurfacePressureMbar:   1013,
		DecoAscentRateMPerMin: 10,
		CeilingType:           CeilingActual,
		RoundCeiling:          false,
		NDLType:               NDLActual,
	}
}

// SurfacePressureBar returns the configured surface pressure in bar.
func (c Config) SurfacePressureBar() float64 {
	return c.SurfacePressureMbar / 1000
}

// Validate checks every invariant in spec.md §4.7, collecting all
// violations rather than stopping at the first (SPEC_FULL.md §4.11).
// Returns nil when the configuration is valid.
func (c Config) Validate() error {
	errs := newConfigError()

	if c.GradientFactors.Low < 1 || c.GradientFactors.Low > 100 {
		errs.add("gradient_factors.low", "must be within [1, 100]")
	}
	if c.GradientFactors.High < 1 || c.GradientFactors.High > 100 {
		errs.add("gradient_factors.high", "must be within [1, 100]")
	}
	if c.GradientFactors.Low > c.GradientFactors.High {
		errs.add("gradient_factors", "low must not exceed high")
	}
	if c.SurfacePressureMbar < 500 || c.SurfacePressureMbar > 1200 {
		errs.add("surface_pressure_mbar", "must be within [500, 1200]")
	}
	if c.DecoAscentRateMPerMin <= 0 || c.DecoAscentRateMPerMin > 30 {
		errs.add("deco_ascent_rate_m_per_min", "must be within (0, 30]")
	}
	if c.CeilingType != CeilingActual && c.CeilingType != CeilingAdaptive {
		errs.add("ceiling_type", "must be actual or adaptive")
	}

	if errs.empty() {
		return nil
	}
	return errs
}
