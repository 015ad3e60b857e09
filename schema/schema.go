package schema

import "strings"

// ============================================================================
// SCHEMA — Canonical field keys for the gas-turbine sensor table
// ============================================================================
// The UCI condition-based-maintenance export ships with long descriptive
// captions ("GT Compressor decay state coefficient"); cleaned exports ship
// with short names ("Compressor_Decay"). Both map onto one canonical key set
// so the rest of the pipeline never sees raw headers.
// ============================================================================

// Canonical field keys. The grid aggregator requires the first three.
const (
	FieldSpeed           = "speed"
	FieldCompressorDecay = "compressor_decay"
	FieldTurbineDecay    = "turbine_decay"

	FieldLeverPos    = "lever_pos"
	FieldGTTorque    = "gt_torque"
	FieldGTRPM       = "gt_rpm"
	FieldGGRPM       = "gg_rpm"
	FieldPropTorqueS = "prop_torque_s"
	FieldPropTorqueP = "prop_torque_p"
	FieldT48         = "t48"
	FieldT1          = "t1"
	FieldT2          = "t2"
	FieldP48         = "p48"
	FieldP1          = "p1"
	FieldP2          = "p2"
	FieldPexh        = "pexh"
	FieldTIC         = "tic"
	FieldFuelFlow    = "fuel_flow"
)

// Config describes the columns of one dataset.
type Config struct {
	Name    string          `json:"name"`
	Columns []ColumnMeta    `json:"columns"`
	Skipped []SkippedColumn `json:"skippedColumns,omitempty"`
}

// ColumnMeta describes one numeric column.
type ColumnMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Unit        string `json:"unit,omitempty"`
}

// SkippedColumn records why a column was excluded during discovery.
type SkippedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"` // "constant", "non_numeric", "unique_id"
}

// Keys returns all column keys in declaration order.
func (c Config) Keys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// Has reports whether a canonical key is part of the schema.
func (c Config) Has(key string) bool {
	for _, col := range c.Columns {
		if col.Key == key {
			return true
		}
	}
	return false
}

// ============================================================================
// HEADER CANONICALIZATION
// ============================================================================

// codeKeys maps the parenthesized sensor codes in the UCI captions,
// e.g. "Fuel flow (mf) [kg/s]" → code "mf".
var codeKeys = map[string]string{
	"v":    FieldSpeed,
	"lp":   FieldLeverPos,
	"gtt":  FieldGTTorque,
	"gtn":  FieldGTRPM,
	"ggn":  FieldGGRPM,
	"ts":   FieldPropTorqueS,
	"tp":   FieldPropTorqueP,
	"t48":  FieldT48,
	"t1":   FieldT1,
	"t2":   FieldT2,
	"p48":  FieldP48,
	"p1":   FieldP1,
	"p2":   FieldP2,
	"pexh": FieldPexh,
	"tic":  FieldTIC,
	"mf":   FieldFuelFlow,
}

// aliasKeys maps already-short header spellings from cleaned exports.
var aliasKeys = map[string]string{
	"ship_speed":       FieldSpeed,
	"speed":            FieldSpeed,
	"compressor_decay": FieldCompressorDecay,
	"turbine_decay":    FieldTurbineDecay,
	"lever_position":   FieldLeverPos,
	"lever_pos":        FieldLeverPos,
	"gt_torque":        FieldGTTorque,
	"gt_rpm":           FieldGTRPM,
	"gg_rpm":           FieldGGRPM,
	"prop_torque_s":    FieldPropTorqueS,
	"prop_torque_p":    FieldPropTorqueP,
	"fuel_flow":        FieldFuelFlow,
	"t48":              FieldT48,
	"t1":               FieldT1,
	"t2":               FieldT2,
	"p48":              FieldP48,
	"p1":               FieldP1,
	"p2":               FieldP2,
	"pexh":             FieldPexh,
	"tic":              FieldTIC,
}

// Canonical maps a raw CSV header to its canonical key.
//
// Resolution order: decay captions, known short aliases, parenthesized
// sensor code, snake_case fallback for anything unrecognized.
func Canonical(header string) string {
	h := strings.TrimSpace(header)
	lower := strings.ToLower(h)

	// Decay coefficient captions carry no sensor code.
	if strings.Contains(lower, "compressor decay") {
		return FieldCompressorDecay
	}
	if strings.Contains(lower, "turbine decay") {
		return FieldTurbineDecay
	}

	if key, ok := aliasKeys[toSnakeCase(h)]; ok {
		return key
	}

	if code := parenCode(lower); code != "" {
		if key, ok := codeKeys[code]; ok {
			return key
		}
	}

	return toSnakeCase(h)
}

// parenCode extracts the last parenthesized token from a caption,
// e.g. "HP Turbine exit temperature (T48) [C]" → "t48".
func parenCode(s string) string {
	close := strings.LastIndex(s, ")")
	if close < 0 {
		return ""
	}
	open := strings.LastIndex(s[:close], "(")
	if open < 0 {
		return ""
	}
	code := strings.TrimSpace(s[open+1 : close])
	if code == "" || strings.ContainsAny(code, " /") {
		return ""
	}
	return code
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// Drop unit suffixes like "[kn m]" before normalizing.
	if i := strings.Index(s, "["); i > 0 {
		s = strings.TrimSpace(s[:i])
	}
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
