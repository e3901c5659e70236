package billing

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestComputeCycle(t *testing.T) {
	tests := []struct {
		name      string
		purchase  civil.Date
		closeDay  int
		dueDay    int
		wantID    string
		wantStart civil.Date
		wantEnd   civil.Date
		wantDue   civil.Date
	}{
		{
			name:     "on the close day stays in the current cycle",
			purchase: date(2024, 3, 25), closeDay: 25, dueDay: 5,
			wantID: "2024-03", wantStart: date(2024, 2, 26), wantEnd: date(2024, 3, 25), wantDue: date(2024, 4, 5),
		},
		{
			name:     "day after close moves to next cycle",
			purchase: date(2024, 3, 26), closeDay: 25, dueDay: 5,
			wantID: "2024-04", wantStart: date(2024, 3, 26), wantEnd: date(2024, 4, 25), wantDue: date(2024, 5, 5),
		},
		{
			name:     "close day 31 in a non-leap February",
			purchase: date(2023, 2, 15), closeDay: 31, dueDay: 10,
			wantID: "2023-02", wantStart: date(2023, 2, 1), wantEnd: date(2023, 2, 28), wantDue: date(2023, 3, 10),
		},
		{
			name:     "close day 30 on leap day",
			purchase: date(2024, 2, 29), closeDay: 30, dueDay: 10,
			wantID: "2024-02", wantStart: date(2024, 1, 31), wantEnd: date(2024, 2, 29), wantDue: date(2024, 3, 10),
		},
		{
			name:     "first of the month after a clamped close",
			purchase: date(2024, 3, 1), closeDay: 30, dueDay: 10,
			wantID: "2024-03", wantStart: date(2024, 3, 1), wantEnd: date(2024, 3, 30), wantDue: date(2024, 4, 10),
		},
		{
			name:     "due day clamped into February",
			purchase: date(2024, 1, 15), closeDay: 31, dueDay: 31,
			wantID: "2024-01", wantStart: date(2024, 1, 1), wantEnd: date(2024, 1, 31), wantDue: date(2024, 2, 29),
		},
		{
			name:     "December purchase after close wraps the year",
			purchase: date(2024, 12, 21), closeDay: 20, dueDay: 2,
			wantID: "2025-01", wantStart: date(2024, 12, 21), wantEnd: date(2025, 1, 20), wantDue: date(2025, 2, 2),
		},
		{
			name:     "December close has a January due date",
			purchase: date(2024, 12, 10), closeDay: 20, dueDay: 2,
			wantID: "2024-12", wantStart: date(2024, 11, 21), wantEnd: date(2024, 12, 20), wantDue: date(2025, 1, 2),
		},
		{
			name:     "negative close day behaves as the 1st",
			purchase: date(2024, 5, 2), closeDay: -3, dueDay: 15,
			wantID: "2024-06", wantStart: date(2024, 5, 2), wantEnd: date(2024, 6, 1), wantDue: date(2024, 7, 15),
		},
		{
			name:     "out of range close day behaves as last day",
			purchase: date(2024, 4, 30), closeDay: 45, dueDay: 45,
			wantID: "2024-04", wantStart: date(2024, 4, 1), wantEnd: date(2024, 4, 30), wantDue: date(2024, 5, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeCycle(tt.purchase, tt.closeDay, tt.dueDay)
			require.NoError(t, err)

			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantStart, got.WindowStart)
			assert.Equal(t, tt.wantEnd, got.WindowEnd)
			assert.Equal(t, tt.wantDue, got.DueDate)
			assert.True(t, got.Contains(tt.purchase))
		})
	}
}

func TestComputeCycle_MissingConfiguration(t *testing.T) {
	purchase := date(2024, 3, 10)

	for _, cfg := range []struct{ closeDay, dueDay int }{{0, 10}, {10, 0}, {0, 0}} {
		_, err := ComputeCycle(purchase, cfg.closeDay, cfg.dueDay)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingConfiguration)

		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, cfg.closeDay, cfgErr.CloseDay)
		assert.Equal(t, cfg.dueDay, cfgErr.DueDay)
	}
}

// Every day of a year lands in exactly one cycle: the cycle computed for a day
// contains it, and computing the cycle for either window edge returns the same
// cycle, so windows neither overlap nor leave gaps.
func TestComputeCycle_Totality(t *testing.T) {
	configs := []struct{ closeDay, dueDay int }{
		{1, 10}, {15, 1}, {25, 5}, {28, 10}, {29, 10}, {30, 15}, {31, 31}, {-2, 3},
	}

	for _, year := range []int{2023, 2024} {
		for _, cfg := range configs {
			var prev Cycle
			for d := date(year, 1, 1); d.Year == year; d = d.AddDays(1) {
				c, err := ComputeCycle(d, cfg.closeDay, cfg.dueDay)
				require.NoError(t, err)
				require.True(t, c.Contains(d), "%v not in cycle %+v (close=%d)", d, c, cfg.closeDay)

				fromStart, err := ComputeCycle(c.WindowStart, cfg.closeDay, cfg.dueDay)
				require.NoError(t, err)
				require.Equal(t, c, fromStart)

				fromEnd, err := ComputeCycle(c.WindowEnd, cfg.closeDay, cfg.dueDay)
				require.NoError(t, err)
				require.Equal(t, c, fromEnd)

				if prev.ID != "" && prev.ID != c.ID {
					require.Equal(t, prev.WindowEnd.AddDays(1), c.WindowStart, "gap or overlap between %s and %s", prev.ID, c.ID)
					require.Equal(t, d, c.WindowStart)
				}
				prev = c
			}
		}
	}
}

func TestComputeCycle_DueDateInFollowingMonth(t *testing.T) {
	for _, dueDay := range []int{1, 5, 28, 30, 31} {
		for d := date(2024, 1, 1); d.Year == 2024; d = d.AddDays(7) {
			c, err := ComputeCycle(d, 31, dueDay)
			require.NoError(t, err)

			wantYear, wantMonth := c.WindowEnd.Year, c.WindowEnd.Month+1
			if wantMonth > time.December {
				wantYear, wantMonth = wantYear+1, time.January
			}
			assert.Equal(t, wantYear, c.DueDate.Year)
			assert.Equal(t, wantMonth, c.DueDate.Month)
		}
	}
}

func TestComputeCycleAt_DropsTimeOfDay(t *testing.T) {
	art := time.FixedZone("ART", -3*60*60)
	late := time.Date(2024, 3, 25, 23, 59, 59, 0, art)

	c, err := ComputeCycleAt(late, 25, 5)
	require.NoError(t, err)
	assert.Equal(t, "2024-03", c.ID)
}

func TestClampDay(t *testing.T) {
	assert.Equal(t, date(2023, 2, 28), ClampDay(2023, time.February, 31))
	assert.Equal(t, date(2024, 2, 29), ClampDay(2024, time.February, 30))
	assert.Equal(t, date(2024, 4, 30), ClampDay(2024, time.April, 31))
	assert.Equal(t, date(2024, 4, 1), ClampDay(2024, time.April, 0))
	assert.Equal(t, date(2024, 4, 1), ClampDay(2024, time.April, -7))
	assert.Equal(t, date(2024, 4, 15), ClampDay(2024, time.April, 15))
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 31, DaysIn(2024, time.January))
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2100, time.February))
	assert.Equal(t, 30, DaysIn(2024, time.November))
	assert.Equal(t, 31, DaysIn(2024, time.December))
}
