package grid

// ============================================================================
// SPEED FILTERS
// ============================================================================
// The source data is simulated on a fixed speed ladder (3, 6, 9 ... 27 kn),
// so exact equality against a ladder value is well defined. Range selection
// is expressed with the same predicate type.
// ============================================================================

// SpeedFilter decides whether an observation's speed is included.
// A nil SpeedFilter includes everything.
type SpeedFilter func(knots float64) bool

// AllSpeeds includes every observation.
func AllSpeeds(float64) bool { return true }

// SpeedIs matches one exact operating point.
func SpeedIs(v float64) SpeedFilter {
	return func(knots float64) bool { return knots == v }
}

// SpeedAtLeast matches the half-open range [v, ∞).
func SpeedAtLeast(v float64) SpeedFilter {
	return func(knots float64) bool { return knots >= v }
}

// SpeedBetween matches the closed range [lo, hi].
func SpeedBetween(lo, hi float64) SpeedFilter {
	return func(knots float64) bool { return knots >= lo && knots <= hi }
}
