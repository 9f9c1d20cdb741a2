// Package money converts integer centavos to and from the display format used
// across the app ("1.234,56"). Storage is always the integer minor unit; the
// display string exists only at the edges.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ToDisplay formats centavos with a comma decimal separator and dot thousands
// separators: 123456789 -> "1.234.567,89".
func ToDisplay(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	d := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
	s := d.StringFixed(2) // "1234567.89"

	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// ToDisplayPtr is ToDisplay for nullable columns; nil renders as "0,00".
func ToDisplayPtr(cents *int64) string {
	if cents == nil {
		return ToDisplay(0)
	}
	return ToDisplay(*cents)
}

// FromDisplay parses a display string back to centavos. Currency symbols,
// whitespace and thousands dots are stripped and the comma becomes the decimal
// point. Anything that still fails to parse yields 0: form input is lenient on
// purpose, the data-quality rules catch the zeros later.
func FromDisplay(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
