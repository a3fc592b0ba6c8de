package calculator

import (
	"math"
	"strconv"
	"strings"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// formatNumber renders v in its shortest round-trip form. Plain decimal
// notation is used for magnitudes in [1e-6, 1e21), exponent notation with an
// unpadded exponent outside it.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// parseOperand reads a display value. A display ending in a bare decimal
// point ("5.") is accepted.
func parseOperand(display string) (float64, bool) {
	v, err := strconv.ParseFloat(display, 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}
