package ledger

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountTolerance is the absolute tolerance applied when matching an exact
// amount criterion, loose enough to absorb 2-decimal rounding.
var amountTolerance = decimal.New(1, -4) // 0.0001

// Money represents a signed monetary value. The sign is the sole
// discriminator between an expense (negative) and an income (positive).
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a signed decimal amount like "-4.50" or "123.45".
func ParseMoney(str string) (Money, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Money{value: value}, nil
}

// String returns the plain decimal representation with exactly two digits
// after the point. This is also the wire representation in the ledger file.
func (m Money) String() string { return m.value.StringFixed(2) }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) Neg() Money       { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money       { return Money{value: m.value.Abs()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// EqualApprox reports whether n is within amountTolerance of m.
func (m Money) EqualApprox(n Money) bool {
	return m.value.Sub(n.value).Abs().LessThanOrEqual(amountTolerance)
}

// round returns a copy of m rounded to two decimal places, the precision of
// the ledger file.
func (m Money) round() Money { return Money{value: m.value.Round(2)} }

// Display returns the currency-formatted representation for terminal output,
// e.g. "-$4.50".
func (m Money) Display() string {
	cur := *money.New(0, money.USD).Currency()
	cents := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(cents.IntPart())
}
