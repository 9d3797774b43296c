package domain

// UnitMultiplier maps a damage-magnitude suffix code to its dollar multiplier.
// The function is total: every input, however malformed, yields a defined
// multiplier. Matching is case-sensitive per the NWS encoding convention:
// lowercase "b" is NOT a billion marker and falls through to 1.
//
// The source data contains sporadic digit codes ("0"–"9") whose meaning cannot
// be reliably reconciled against the free-text remarks, so they deliberately
// map to 1 rather than being guessed as powers of ten. This is a documented
// analytical decision carried over from the original study, not an oversight.
func UnitMultiplier(code string) float64 {
	switch code {
	case "k", "K":
		return 1_000
	case "m", "M":
		return 1_000_000
	case "B":
		return 1_000_000_000
	}
	return 1
}

// DamageActual converts a (magnitude, suffix code) pair into dollars.
func DamageActual(magnitude float64, code string) float64 {
	return magnitude * UnitMultiplier(code)
}

// RecognizedUnitCode reports whether code is one of the documented scale
// suffixes. Unrecognized non-empty codes still get multiplier 1; this exists
// so the pipeline can count how often that fallback fires.
func RecognizedUnitCode(code string) bool {
	switch code {
	case "k", "K", "m", "M", "B":
		return true
	}
	return false
}
