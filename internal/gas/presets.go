package gas

// Air is standard surface air: 21% O2, 0% He.
func Air() Gas {
	return MustNew(0.21, 0)
}

// Nitrox constructs an enriched-air nitrox mix at the given oxygen
// fraction with no helium.
func Nitrox(fO2 float64) (Gas, error) {
	return New(fO2, 0)
}

// Trimix constructs a trimix mix at the given oxygen and helium fractions.
func Trimix(fO2, fHe float64) (Gas, error) {
	return New(fO2, fHe)
}

// StandardDecoSet returns a common recreational-technical deco gas
// loadout: bottom air, EAN50 for the mid-water accelerated stops, and
// pure oxygen for the shallow stops.
func StandardDecoSet() []Gas {
	return []Gas{
		Air(),
		MustNew(0.50, 0),
		MustNew(1.00, 0),
	}
}
