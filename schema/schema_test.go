package schema

import "testing"

// ============================================================================
// CANONICALIZATION TESTS
// ============================================================================

func TestCanonicalUCIHeaders(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Lever position (lp) [ ]", FieldLeverPos},
		{"Ship speed (v) [knots]", FieldSpeed},
		{"Gas Turbine shaft torque (GTT) [kN m]", FieldGTTorque},
		{"GT rate of revolutions (GTn) [rpm]", FieldGTRPM},
		{"Gas Generator rate of revolutions (GGn) [rpm]", FieldGGRPM},
		{"Starboard Propeller Torque (Ts) [kN]", FieldPropTorqueS},
		{"Port Propeller Torque (Tp) [kN]", FieldPropTorqueP},
		{"HP Turbine exit temperature (T48) [C]", FieldT48},
		{"GT Compressor inlet air temperature (T1) [C]", FieldT1},
		{"GT Compressor outlet air temperature (T2) [C]", FieldT2},
		{"HP Turbine exit pressure (P48) [bar]", FieldP48},
		{"GT Compressor inlet air pressure (P1) [bar]", FieldP1},
		{"GT Compressor outlet air pressure (P2) [bar]", FieldP2},
		{"Gas Turbine exhaust gas pressure (Pexh) [bar]", FieldPexh},
		{"Turbine Injecton Control (TIC) [%]", FieldTIC},
		{"Fuel flow (mf) [kg/s]", FieldFuelFlow},
		{"GT Compressor decay state coefficient", FieldCompressorDecay},
		{"GT Turbine decay state coefficient", FieldTurbineDecay},
	}

	for _, c := range cases {
		if got := Canonical(c.header); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestCanonicalCleanedHeaders(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"Ship_Speed", FieldSpeed},
		{"Fuel_Flow", FieldFuelFlow},
		{"Compressor_Decay", FieldCompressorDecay},
		{"Turbine_Decay", FieldTurbineDecay},
		{"T48", FieldT48},
		{"P2", FieldP2},
		{"GT_Torque", FieldGTTorque},
	}

	for _, c := range cases {
		if got := Canonical(c.header); got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestCanonicalUnknownFallsBackToSnake(t *testing.T) {
	if got := Canonical("Sea Water Temperature [C]"); got != "sea_water_temperature" {
		t.Errorf("fallback = %q, want sea_water_temperature", got)
	}
}
