package util

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrFieldEmpty    = errors.New("field is empty")
	ErrAmountInvalid = errors.New("amount is not a number")
)

// ValidateRequired returns ErrFieldEmpty naming the first blank field.
// Fields are checked in the order given as name, value pairs.
func ValidateRequired(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%s: %w", pairs[i], ErrFieldEmpty)
		}
	}
	return nil
}

// ParseAmount parses user-typed amount text such as "49.99" or "-12".
// Surrounding spaces are ignored. NaN, Inf, values too large for a float64
// and anything that is not a plain decimal number are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount: %w", ErrFieldEmpty)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, ErrAmountInvalid)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("amount %q out of range: %w", s, ErrAmountInvalid)
	}
	return f, nil
}
