package conv

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// AsFloat coerces a decoded JSON value into float64; unparseable values yield 0.
func AsFloat(value interface{}) float64 {
	switch actual := value.(type) {
	case nil:
		return 0
	case float64:
		return finite(actual)
	case float32:
		return finite(float64(actual))
	case int:
		return float64(actual)
	case int64:
		return float64(actual)
	case json.Number:
		ret, _ := actual.Float64()
		return finite(ret)
	case string:
		return parseLeadingFloat(actual)
	}
	return 0
}

// finite maps NaN and infinities to 0
func finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// parseLeadingFloat parses the longest numeric prefix, "12.5abc" -> 12.5; NaN and Inf spellings yield 0.
func parseLeadingFloat(text string) float64 {
	text = strings.TrimSpace(text)
	if ret, err := strconv.ParseFloat(text, 64); err == nil {
		return finite(ret)
	}
	end := 0
	seenDot := false
scan:
	for i, r := range text {
		switch {
		case r >= '0' && r <= '9':
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			break scan
		}
	}
	if end == 0 {
		return 0
	}
	ret, _ := strconv.ParseFloat(text[:end], 64)
	return finite(ret)
}
