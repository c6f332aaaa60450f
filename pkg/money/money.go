package money

import (
	"fmt"
	"math"
)

// Cents is an amount in minor units (2 decimal places).
// Stored as int64 so sums and multiplications stay exact.
type Cents int64

// MarshalJSON renders the amount as a plain number with two decimals,
// e.g. 2550 -> 25.50, matching the decimal(10,2) columns.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Mul scales the amount by a line quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// FromFloat converts a request-level price (e.g. 10.5) to cents,
// rounding half away from zero.
func FromFloat(f float64) Cents {
	return Cents(math.Round(f * 100))
}
