package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("invalid price")

// ParsePrice extracts a major-unit amount from a currency string such as
// "Ksh 1,000" or "KSh 12.50" by keeping only digits and the decimal point.
func ParsePrice(text string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return decimal.Zero, ErrInvalidPrice
	}
	price, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}
