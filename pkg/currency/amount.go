package currency

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyAmount marks a pricing option the provider sent without a price.
var ErrEmptyAmount = errors.New("empty amount")

// ParseAmount parses a provider price string. Amounts arrive as decimals in
// milli-units of the requested currency, e.g. "120000" for 120.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyAmount
	}
	return strconv.ParseFloat(s, 64)
}

// FormatDisplay renders a milli-unit amount in whole currency units,
// dropping trailing zeros: 120000 -> "120", 99500 -> "99.5".
func FormatDisplay(amount float64) string {
	return strconv.FormatFloat(amount/1000, 'f', -1, 64)
}
