package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"shop-ledger/internal/catalog/domain/model"
)

// Clients of this API send loosely typed JSON, and the required-field checks
// follow the same truthiness rules those clients use: 0, "" and null count as
// missing. The helpers below encode those rules in one place.

var leadingInteger = regexp.MustCompile(`^\s*([+-]?\d+)`)

// asObject accepts only JSON objects.
func asObject(payload interface{}) (model.Document, bool) {
	switch v := payload.(type) {
	case model.Document:
		return v, v != nil
	case map[string]interface{}:
		return model.Document(v), v != nil
	default:
		return nil, false
	}
}

// isTruthy reports whether v would pass a loose boolean check.
func isTruthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	default:
		return true
	}
}

// toNumber converts v to a finite float. ok is false when the value is not numeric.
func toNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case float64:
		return t, !math.IsNaN(t) && !math.IsInf(t, 0)
	case float32:
		return toNumber(float64(t))
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		if len(s) > 2 && s[0] == '0' {
			base := 0
			switch s[1] {
			case 'x', 'X':
				base = 16
			case 'o', 'O':
				base = 8
			case 'b', 'B':
				base = 2
			}
			if base != 0 {
				n, err := strconv.ParseUint(s[2:], base, 64)
				if err != nil {
					return 0, false
				}
				return float64(n), true
			}
		}
		if strings.ContainsAny(s, "_xXpP") {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// parseInteger extracts a leading base-10 integer: numbers are truncated and
// strings contribute their integer prefix ("12abc" is 12).
func parseInteger(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) || math.Abs(t) >= math.MaxInt64 {
			return 0, false
		}
		return int64(math.Trunc(t)), true
	case string:
		m := leadingInteger.FindStringSubmatch(t)
		if m == nil {
			return 0, false
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// valueOr returns v unchanged when it is truthy and def otherwise.
func valueOr(v interface{}, def interface{}) interface{} {
	if !isTruthy(v) {
		return def
	}
	return v
}
