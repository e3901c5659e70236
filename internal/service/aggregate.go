package service

import (
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/billing"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/quickentry"
	"github.com/shopspring/decimal"
)

// sortMovementsDesc orders by date, then creation time, newest first.
func sortMovementsDesc(movements []*model.Movement) {
	sort.SliceStable(movements, func(i, j int) bool {
		a, b := movements[i], movements[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c > 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

func sumAmounts(movements []*model.Movement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		total = total.Add(m.Amount)
	}
	return total
}

// monthlySummary returns twelve rows for year, January first. Movements
// outside year are ignored.
func monthlySummary(movements []*model.Movement, year int) ([]v1.MonthSummary, decimal.Decimal, decimal.Decimal) {
	months := make([]v1.MonthSummary, 12)
	for i := range months {
		months[i] = v1.MonthSummary{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Balance: decimal.Zero,
		}
	}

	totalIncome, totalExpense := decimal.Zero, decimal.Zero
	for _, m := range movements {
		if m.Date.Year != year {
			continue
		}
		row := &months[m.Date.Month-1]
		switch m.Type {
		case model.MovementIncome:
			row.Income = row.Income.Add(m.Amount)
			totalIncome = totalIncome.Add(m.Amount)
		case model.MovementExpense:
			row.Expense = row.Expense.Add(m.Amount)
			totalExpense = totalExpense.Add(m.Amount)
		}
	}
	for i := range months {
		months[i].Balance = months[i].Income.Sub(months[i].Expense)
	}
	return months, totalIncome, totalExpense
}

// categoryBreakdown totals movements per category, largest first. Ties sort
// by name so the order is stable.
func categoryBreakdown(movements []*model.Movement) ([]v1.CategoryTotal, decimal.Decimal) {
	byCategory := make(map[string]*v1.CategoryTotal)
	total := decimal.Zero
	for _, m := range movements {
		name := m.Category
		if name == "" {
			name = quickentry.CategoryOther
		}
		ct, ok := byCategory[name]
		if !ok {
			ct = &v1.CategoryTotal{Category: name, Total: decimal.Zero}
			byCategory[name] = ct
		}
		ct.Total = ct.Total.Add(m.Amount)
		ct.Count++
		total = total.Add(m.Amount)
	}

	out := make([]v1.CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		if total.IsPositive() {
			ct.Share = ct.Total.Div(total).InexactFloat64()
		}
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})
	return out, total
}

// calendarHeatmap returns one cell per day of the month, including empty
// days, plus the largest daily total.
func calendarHeatmap(movements []*model.Movement, year int, month time.Month) ([]v1.DayTotal, decimal.Decimal) {
	days := make([]v1.DayTotal, billing.DaysIn(year, month))
	for i := range days {
		days[i] = v1.DayTotal{
			Date:  civil.Date{Year: year, Month: month, Day: i + 1},
			Total: decimal.Zero,
		}
	}

	for _, m := range movements {
		if m.Date.Year != year || m.Date.Month != month {
			continue
		}
		cell := &days[m.Date.Day-1]
		cell.Total = cell.Total.Add(m.Amount)
		cell.Count++
	}

	peak := decimal.Zero
	for _, d := range days {
		if d.Total.GreaterThan(peak) {
			peak = d.Total
		}
	}
	return days, peak
}

// pendingCycles groups unliquidated purchases by card and cycle. A cycle is
// closed once its window ended before today. Cycles are ordered by due date.
func pendingCycles(cards []*model.Card, purchases []*model.CardPurchase, today civil.Date) []v1.PendingCycle {
	names := make(map[string]string, len(cards))
	closeDays := make(map[string]int, len(cards))
	for _, c := range cards {
		names[c.ID] = c.Name
		closeDays[c.ID] = c.CloseDay
	}

	type key struct{ card, cycle string }
	groups := make(map[key]*v1.PendingCycle)
	for _, p := range purchases {
		if p.Liquidated {
			continue
		}
		k := key{p.CardID, p.CycleID}
		g, ok := groups[k]
		if !ok {
			g = &v1.PendingCycle{
				CardID:   p.CardID,
				CardName: names[p.CardID],
				CycleID:  p.CycleID,
				Total:    decimal.Zero,
				DueDate:  p.DueDate,
			}
			groups[k] = g
		}
		g.Total = g.Total.Add(p.Amount)
		g.Count++
		g.Closed = cycleClosed(p, closeDays[p.CardID], today)
	}

	out := make([]v1.PendingCycle, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].DueDate.Compare(out[j].DueDate); c != 0 {
			return c < 0
		}
		if out[i].CardName != out[j].CardName {
			return out[i].CardName < out[j].CardName
		}
		return out[i].CycleID < out[j].CycleID
	})
	return out
}

// cycleClosed recomputes the window end from the purchase's stored cycle.
// Purchases keep the cycle they were assigned, so when the card has been
// reconfigured the stored cycle ID decides: its month is the close month.
func cycleClosed(p *model.CardPurchase, closeDay int, today civil.Date) bool {
	closeDate, ok := closeDateOf(p.CycleID, closeDay)
	if !ok {
		// Without a usable close day, a cycle counts as closed once its
		// due month has started.
		return !today.Before(civil.Date{Year: p.DueDate.Year, Month: p.DueDate.Month, Day: 1})
	}
	return closeDate.Before(today)
}

func closeDateOf(cycleID string, closeDay int) (civil.Date, bool) {
	if closeDay == 0 {
		return civil.Date{}, false
	}
	t, err := time.Parse("2006-01", cycleID)
	if err != nil {
		return civil.Date{}, false
	}
	return billing.ClampDay(t.Year(), t.Month(), closeDay), true
}

// movementQuery filters movements in memory when no search index is set.
type movementQuery struct {
	text      string
	start     *civil.Date
	end       *civil.Date
	minAmount *decimal.Decimal
	maxAmount *decimal.Decimal
	category  string
	typ       model.MovementType
}

func (q movementQuery) matches(m *model.Movement) bool {
	if q.start != nil && m.Date.Before(*q.start) {
		return false
	}
	if q.end != nil && m.Date.After(*q.end) {
		return false
	}
	if q.minAmount != nil && m.Amount.LessThan(*q.minAmount) {
		return false
	}
	if q.maxAmount != nil && m.Amount.GreaterThan(*q.maxAmount) {
		return false
	}
	if q.category != "" && !strings.EqualFold(m.Category, q.category) {
		return false
	}
	if q.typ != "" && m.Type != q.typ {
		return false
	}
	if q.text != "" {
		needle := quickentry.Normalize(strings.TrimSpace(q.text))
		haystack := quickentry.Normalize(m.Description + " " + m.Category)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
