package quickentry

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases text and folds accents ("Pagué" -> "pague") so keyword
// patterns only need to be written once.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// DisplayDescription capitalizes the first letter of a description and collapses
// inner whitespace. It is used for records created from quick entries; the parsed
// description itself is left untouched.
func DisplayDescription(description string) string {
	fields := strings.Fields(description)
	if len(fields) == 0 {
		return ""
	}
	// NoLower keeps brand names and acronyms ("YPF", "iPhone") intact.
	caser := cases.Title(language.Spanish, cases.NoLower)
	fields[0] = caser.String(fields[0])
	return strings.Join(fields, " ")
}
