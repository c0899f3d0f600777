package arith

import (
	"math"
	"strconv"
)

// Decimals is the number of decimal places to which Format rounds non-integral
// values.
const Decimals = 10

// Format renders a result for display. Integral values have no fractional
// part. Other values are rounded to Decimals places with trailing zeros
// removed, so that 0.1+0.2 shows as 0.3. Negative zero renders as "0".
// NaN and infinities render as strconv would.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v != math.Trunc(v) {
		// Round through the decimal text so that the result is the nearest
		// float64 to the rounded decimal.
		v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'f', Decimals, 64), 64)
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
