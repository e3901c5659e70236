// Package export renders movements as CSV and stores the files in Cloud Storage.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/castlemilk/cuentas/internal/model"
)

var header = []string{"date", "type", "description", "category", "amount", "source"}

// WriteMovements writes one CSV row per movement after a header row. Amounts
// keep two decimals and are unsigned; the type column carries the direction.
func WriteMovements(out io.Writer, movements []*model.Movement) error {
	w := csv.NewWriter(out)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range movements {
		row := []string{
			m.Date.String(),
			string(m.Type),
			m.Description,
			m.Category,
			m.Amount.StringFixed(2),
			string(m.Source),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", m.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}

// MovementsCSV returns the CSV document for movements.
func MovementsCSV(movements []*model.Movement) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMovements(&buf, movements); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
