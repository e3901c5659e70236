// Package quickentry turns a free-text sentence ("Gasté 20.000 en el super") into a
// structured financial entry.
package quickentry

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// numberPattern matches, in order of preference:
	//   dot-grouped thousands with optional comma decimals   1.234,56 / 25.000
	//   comma-grouped thousands with optional dot decimals   1,234.56 / 25,000
	//   plain digits with an optional decimal part           10000 / 10,5 / 12.50
	numberPattern = regexp.MustCompile(
		`\d{1,3}(?:\.\d{3})+(?:,\d+)?` +
			`|\d{1,3}(?:,\d{3})+(?:\.\d+)?` +
			`|\d+(?:[.,]\d+)?`,
	)

	dotGroupedPattern   = regexp.MustCompile(`^\d{1,3}(?:\.\d{3})+(?:,\d+)?$`)
	commaGroupedPattern = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
)

// ExtractAmounts returns every numeric literal in text, in the order it appears.
func ExtractAmounts(text string) []decimal.Decimal {
	tokens := numberPattern.FindAllString(text, -1)
	amounts := make([]decimal.Decimal, 0, len(tokens))
	for _, tok := range tokens {
		amount, ok := parseLiteral(tok)
		if !ok {
			continue
		}
		amounts = append(amounts, amount)
	}
	return amounts
}

// StripAmounts removes every numeric literal from text and trims the result.
func StripAmounts(text string) string {
	return strings.TrimSpace(numberPattern.ReplaceAllString(text, ""))
}

// parseLiteral converts a single matched token into a decimal.
func parseLiteral(tok string) (decimal.Decimal, bool) {
	var canonical string
	switch {
	case dotGroupedPattern.MatchString(tok):
		canonical = strings.ReplaceAll(tok, ".", "")
		canonical = strings.Replace(canonical, ",", ".", 1)
	case commaGroupedPattern.MatchString(tok):
		canonical = strings.ReplaceAll(tok, ",", "")
	default:
		canonical = strings.Replace(tok, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(canonical)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}
