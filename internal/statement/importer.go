package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/castlemilk/cuentas/internal/quickentry"
)

// leadingDate matches the purchase date card statements print at the start
// of each line: 10/03/24, 10-03-2024, 10.03.24.
var leadingDate = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2}|\d{4})\s+`)

var dateLayouts = []string{"2/1/06", "2/1/2006"}

// Result is what an import produced. Entries are previews; nothing is stored.
type Result struct {
	Entries []quickentry.Transaction
	// Skipped counts lines without any amount (headers, addresses, legal text).
	Skipped int
}

// Importer runs statement lines through the quick-entry parser.
type Importer struct {
	parser *quickentry.Parser
}

// NewImporter returns an importer backed by p.
func NewImporter(p *quickentry.Parser) *Importer {
	return &Importer{parser: p}
}

// Import extracts the lines of a PDF statement and previews each one.
func (im *Importer) Import(data []byte, today time.Time) (*Result, error) {
	lines, err := ExtractLines(data)
	if err != nil {
		return nil, err
	}
	return im.Preview(lines, today), nil
}

// Preview parses every line that carries an amount. A leading purchase date
// is removed from the text and becomes the entry date; lines without one get
// today.
func (im *Importer) Preview(lines []string, today time.Time) *Result {
	res := &Result{}
	for _, line := range lines {
		text, date := splitDate(strings.TrimSpace(line), today)
		if text == "" || len(quickentry.ExtractAmounts(text)) == 0 {
			res.Skipped++
			continue
		}
		res.Entries = append(res.Entries, im.parser.Parse(text, date))
	}
	return res
}

func splitDate(line string, today time.Time) (string, time.Time) {
	loc := leadingDate.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, today
	}
	prefix := strings.TrimSpace(line[:loc[1]])
	normalized := strings.NewReplacer("-", "/", ".", "/").Replace(prefix)
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, normalized, today.Location()); err == nil {
			return strings.TrimSpace(line[loc[1]:]), d
		}
	}
	// Looked like a date but was not one; leave the line untouched.
	return line, today
}
