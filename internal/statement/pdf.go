// Package statement reads card statements in PDF form and turns their
// transaction lines into quick-entry previews.
package statement

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

const maxTextBytes = 100 * 1024

// ErrNoText is returned when a PDF has no extractable text (usually a scan).
var ErrNoText = errors.New("pdf has no extractable text")

// ExtractLines returns the non-empty text lines of a PDF, page by page. It
// never panics: the pdf library does on some malformed inputs, and those
// come back as errors.
func ExtractLines(data []byte) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("panic during PDF extraction: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open PDF reader: %w", err)
	}

	lines = linesByRow(reader)
	if len(lines) == 0 {
		// Some generators lay text out in a way GetTextByRow cannot group.
		lines, err = linesFromPlainText(reader)
		if err != nil {
			return nil, err
		}
	}
	if len(lines) == 0 {
		return nil, ErrNoText
	}
	return lines, nil
}

func linesByRow(r *pdf.Reader) []string {
	var (
		lines []string
		size  int
	)
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			parts := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line == "" {
				continue
			}
			size += len(line)
			if size > maxTextBytes {
				return lines
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func linesFromPlainText(r *pdf.Reader) ([]string, error) {
	plain, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract plain text: %w", err)
	}
	text, err := io.ReadAll(io.LimitReader(plain, maxTextBytes))
	if err != nil {
		return nil, fmt.Errorf("read plain text: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(text), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}
