// Package billing computes the credit-card statement cycle a purchase belongs to.
package billing

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// ErrMissingConfiguration matches every ConfigurationError via errors.Is.
var ErrMissingConfiguration = errors.New("card missing close/due day configuration")

// ConfigurationError is returned when a card has no close day or due day.
type ConfigurationError struct {
	CloseDay int
	DueDay   int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s (close_day=%d, due_day=%d)", ErrMissingConfiguration, e.CloseDay, e.DueDay)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

// Cycle is one statement period of a card. WindowStart and WindowEnd are
// inclusive; WindowEnd is the close date.
type Cycle struct {
	ID          string
	WindowStart civil.Date
	WindowEnd   civil.Date
	DueDate     civil.Date
}

// Contains reports whether d falls inside the cycle window.
func (c Cycle) Contains(d civil.Date) bool {
	return !d.Before(c.WindowStart) && !d.After(c.WindowEnd)
}

// ComputeCycle returns the cycle a purchase made on purchase belongs to, for a card
// closing on closeDay and due on dueDay. Days are clamped into each month, so a
// close day of 31 means "last day of the month" and anything below 1 means the
// 1st. A zero close or due day means the card is not configured.
func ComputeCycle(purchase civil.Date, closeDay, dueDay int) (Cycle, error) {
	if closeDay == 0 || dueDay == 0 {
		return Cycle{}, &ConfigurationError{CloseDay: closeDay, DueDay: dueDay}
	}

	year, month := purchase.Year, purchase.Month
	closeDate := ClampDay(year, month, closeDay)
	if purchase.Day > closeDate.Day {
		year, month = addMonths(year, month, 1)
		closeDate = ClampDay(year, month, closeDay)
	}

	prevYear, prevMonth := addMonths(closeDate.Year, closeDate.Month, -1)
	start := ClampDay(prevYear, prevMonth, closeDay).AddDays(1)

	dueYear, dueMonth := addMonths(closeDate.Year, closeDate.Month, 1)

	return Cycle{
		ID:          CycleID(closeDate),
		WindowStart: start,
		WindowEnd:   closeDate,
		DueDate:     ClampDay(dueYear, dueMonth, dueDay),
	}, nil
}

// ComputeCycleAt is ComputeCycle for a timestamp; the time of day is dropped.
func ComputeCycleAt(purchase time.Time, closeDay, dueDay int) (Cycle, error) {
	return ComputeCycle(civil.DateOf(purchase), closeDay, dueDay)
}

// CycleID formats the "YYYY-MM" key of the cycle closing on closeDate.
func CycleID(closeDate civil.Date) string {
	return fmt.Sprintf("%04d-%02d", closeDate.Year, int(closeDate.Month))
}

// ClampDay returns day-of-month day in the given month, constrained to
// [1, last day of month].
func ClampDay(year int, month time.Month, day int) civil.Date {
	last := DaysIn(year, month)
	switch {
	case day <= 1:
		day = 1
	case day >= last:
		day = last
	}
	return civil.Date{Year: year, Month: month, Day: day}
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func addMonths(year int, month time.Month, n int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return t.Year(), t.Month()
}
