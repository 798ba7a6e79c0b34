package vector

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const textWhitespace = " \t\n\r\v\f"

// ParseText parses a literal like "[1, 2.5, -3e2]" into a vector of the given
// type. Whitespace around brackets and elements is ignored. Out-of-range
// magnitudes saturate to the largest finite value of the type; extra
// precision is rounded away.
func ParseText(text string, typ Type) (*Vector, error) {
	if !typ.Valid() {
		return nil, newError(ErrInvalidFormat, "unsupported type %v", typ)
	}
	s := strings.TrimLeft(text, textWhitespace)
	if !strings.HasPrefix(s, "[") {
		return nil, newError(ErrInvalidFormat, "doesn't start with '['")
	}
	s = s[1:]
	end := strings.IndexByte(s, ']')
	if end < 0 {
		return nil, newError(ErrMalformedVector, "doesn't end with ']'")
	}
	if strings.Trim(s[end+1:], textWhitespace) != "" {
		return nil, newError(ErrMalformedVector, "extra data after closing ']'")
	}
	body := s[:end]

	var values []float64
	if strings.Trim(body, textWhitespace) != "" {
		tokens := strings.Split(body, ",")
		values = make([]float64, 0, len(tokens))
		for _, token := range tokens {
			f, err := parseNumber(strings.Trim(token, textWhitespace))
			if err != nil {
				return nil, err
			}
			values = append(values, f)
		}
	}

	if typ == TypeFloat64 {
		return &Vector{typ: TypeFloat64, f64: values}, nil
	}
	f32 := make([]float32, len(values))
	for i, f := range values {
		f32[i] = narrow(f)
	}
	return &Vector{typ: TypeFloat32, f32: f32}, nil
}

// parseNumber accepts decimal literals only: optional sign, digits with an
// optional fraction, optional exponent.
func parseNumber(token string) (float64, error) {
	if !isDecimal(token) {
		return 0, &Error{Kind: ErrInvalidNumber, Detail: token}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, -1) {
				return -math.MaxFloat64, nil
			}
			if math.IsInf(f, 1) {
				return math.MaxFloat64, nil
			}
			return f, nil
		}
		return 0, &Error{Kind: ErrInvalidNumber, Detail: token}
	}
	return f, nil
}

func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
