package render

import (
	"fmt"
	"math"
	"strconv"
)

// valuePrecision bounds the decimals kept when formatting floats, so that
// 0.1*100 renders as "10" rather than "10.000000000000002".
const valuePrecision = 1e6

// FormatValue converts an attribute or style value to its markup string.
// Floats use the shortest representation after rounding to six decimals.
func FormatValue(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Percent formats v as a CSS percentage, e.g. "30%".
func Percent(v float64) string {
	return formatFloat(v) + "%"
}

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	r := math.Round(v*valuePrecision) / valuePrecision
	if r == 0 {
		r = 0 // normalize -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
