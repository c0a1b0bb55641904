// Package currency formats prices and loyalty points for display.
package currency

import (
	"fmt"
	"math"
	"strings"
)

// DefaultCode is used when no currency code is configured.
const DefaultCode = "EUR"

// Format renders a whole-unit amount followed by the currency code,
// e.g. "1,000 EUR".
func Format(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = DefaultCode
	}

	rounded := math.Round(amount)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	result := addThousandsSeparator(fmt.Sprintf("%.0f", rounded), ",") + " " + code
	if negative {
		result = "-" + result
	}
	return result
}

// FormatPoints renders a points balance with thousands separators.
func FormatPoints(points int) string {
	if points < 0 {
		return "-" + addThousandsSeparator(fmt.Sprintf("%d", -points), ",")
	}
	return addThousandsSeparator(fmt.Sprintf("%d", points), ",")
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
