package deliverynote

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// FormatCentsForInput renders a cent amount as a comma-decimal string for
// form inputs. Zero means "no price entered" and renders as the empty string.
func FormatCentsForInput(cents int64) string {
	if cents == 0 {
		return ""
	}
	s := decimal.NewFromInt(cents).Div(oneHundred).StringFixed(2)
	return strings.ReplaceAll(s, ".", ",")
}

// FormatCentsForDisplay renders a cent amount for read-only views.
// Zero renders as an em dash placeholder, everything else as "2,50 €".
func FormatCentsForDisplay(cents int64) string {
	if cents == 0 {
		return "—"
	}
	return FormatCentsForInput(cents) + " €"
}

// ParseCentsFromInput converts user-entered price text back to cents.
// Comma decimal separators are accepted; unparseable input coerces to 0
// rather than failing, so a cleared or garbled field saves as "no price".
func ParseCentsFromInput(input string) int64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Mul(oneHundred).Round(0).IntPart()
}
