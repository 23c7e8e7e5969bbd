package model

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxPrice is the largest amount a decimal(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// Price is a fixed-point currency amount. It is stored as decimal(10,2) and
// always written to JSON as a two-decimal string ("1000.00").
type Price struct {
	decimal.Decimal
}

// ParsePrice parses a decimal string such as "245000.00".
func ParsePrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{Decimal: d}, nil
}

// MustPrice is ParsePrice for constants; it panics on malformed input.
func MustPrice(s string) Price {
	p, err := ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether the price is non-negative, fits decimal(10,2) and has
// at most two fractional digits.
func (p Price) Valid() bool {
	return !p.IsNegative() && p.LessThanOrEqual(MaxPrice) && p.Equal(p.Round(2))
}

func (p Price) String() string {
	return p.StringFixed(2)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both "1000.00" and 1000.
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(raw) == 0 {
		return fmt.Errorf("invalid price: empty value")
	}
	parsed, err := ParsePrice(string(raw))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
