package setupparam

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Optional numeric values are represented as *float64: nil means "no value".
// Absence propagates through every helper below instead of raising; the
// engine prefers a partial but inspectable result over an aborted one.

// Float returns a pointer to v, for building optional values from literals.
func Float(v float64) *float64 { return &v }

// EnsureFloat coerces an arbitrary input to an optional float. It accepts
// native numeric types and numeric strings; anything unparseable yields nil,
// never an error.
func EnsureFloat(v any) *float64 {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return sanitize(x)
	case float32:
		return sanitize(float64(x))
	case int:
		return Float(float64(x))
	case int32:
		return Float(float64(x))
	case int64:
		return Float(float64(x))
	case uint:
		return Float(float64(x))
	case uint64:
		return Float(float64(x))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil
		}
		return sanitize(f)
	case fmt.Stringer:
		return EnsureFloat(x.String())
	default:
		return nil
	}
}

// ParseLeadingNumber extracts the leading numeric token of a compound string,
// discarding the unit suffix: "10 mM" -> 10.0, "7.5mg/mL" -> 7.5. A string
// with no leading digits ("mM", "N/A", "") yields nil. Native numeric inputs
// pass through like EnsureFloat.
func ParseLeadingNumber(v any) *float64 {
	switch v.(type) {
	case nil:
		return nil
	case float64, float32, int, int32, int64, uint, uint64:
		return EnsureFloat(v)
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return nil
	}

	var b strings.Builder
	dotSeen := false
	for i, ch := range s {
		switch {
		case (ch == '+' || ch == '-') && i == 0:
			b.WriteRune(ch)
			continue
		case ch >= '0' && ch <= '9':
			b.WriteRune(ch)
			continue
		case ch == '.' && !dotSeen:
			dotSeen = true
			b.WriteRune(ch)
			continue
		}
		// stop at the first character that cannot extend the number
		break
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return nil
	}
	return sanitize(f)
}

// SafeDiv divides num by den, yielding nil when either operand is absent or
// the denominator is zero. It never panics and never produces ±Inf or NaN.
func SafeDiv(num, den *float64) *float64 {
	if num == nil || den == nil || *den == 0 {
		return nil
	}
	return sanitize(*num / *den)
}

// SafeMul multiplies optional operands, nil-propagating.
func SafeMul(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	return sanitize(*a * *b)
}

// SafeSum adds optional operands, yielding nil if any is absent.
func SafeSum(vs ...*float64) *float64 {
	total := 0.0
	for _, v := range vs {
		if v == nil {
			return nil
		}
		total += *v
	}
	return sanitize(total)
}

// FormatNumber renders an optional float with a fixed decimal precision,
// stripping trailing zeros and the dangling dot. nil renders as the display
// sentinel "N/A".
func FormatNumber(v *float64, digits int) string {
	if v == nil {
		return "N/A"
	}
	s := strconv.FormatFloat(*v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

func sanitize(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
