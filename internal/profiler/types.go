package profiler

import (
	"encoding/json"
	"strings"
)

// DataType classifies a single cell value.
type DataType uint8

const (
	TypeEmpty DataType = iota
	TypeInteger
	TypeFloat
	TypeText
)

// inferenceOrder is the precedence used both during classification and when
// breaking predominant-type ties: the first type to reach the maximum tally
// wins. TypeEmpty never appears in a tally; empty values are counted
// separately before inference runs.
var inferenceOrder = [3]DataType{TypeInteger, TypeFloat, TypeText}

func (t DataType) String() string {
	switch t {
	case TypeEmpty:
		return "empty"
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeText:
		return "text"
	}
	return "unknown"
}

func (t DataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Infer classifies a raw cell value into exactly one DataType. It trims
// surrounding whitespace first, so an all-whitespace value is TypeEmpty.
// Non-finite literals such as "NaN" or "Inf" never pass the float scan and
// classify as TypeText, which keeps sentinel strings from skewing a column
// toward float.
func Infer(value string) DataType {
	value = strings.TrimSpace(value)
	if value == "" {
		return TypeEmpty
	}
	if isInt(value) {
		return TypeInteger
	}
	if isFloat(value) {
		return TypeFloat
	}
	return TypeText
}

// isInt reports whether s is an optionally signed run of decimal digits.
// A pure byte scan rather than strconv.ParseInt: the profiler never needs the
// numeric value, and this keeps arbitrarily long digit strings classified as
// integers instead of overflowing.
func isInt(s string) bool {
	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}

	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// isFloat reports whether s is a decimal or exponential floating-point
// literal. Requires at least one digit in the mantissa and, when an exponent
// marker is present, at least one digit after it.
func isFloat(s string) bool {
	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}

	var mantDigits, expDigits, hasDot, hasExp bool
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if hasExp {
				expDigits = true
			} else {
				mantDigits = true
			}
		case c == '.':
			if hasDot || hasExp {
				return false
			}
			hasDot = true
		case c == 'e' || c == 'E':
			if hasExp || !mantDigits {
				return false
			}
			hasExp = true
			if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
				i++
			}
		default:
			return false
		}
	}

	if hasExp && !expDigits {
		return false
	}
	return mantDigits && (hasDot || hasExp)
}
