package service

import (
	"context"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/billing"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/search"
	"github.com/castlemilk/cuentas/internal/store"
)

// GetMonthlySummary returns income, expense and balance for each month of a
// year. Year 0 means the current year.
func (s *FinanceService) GetMonthlySummary(ctx context.Context, req *connect.Request[v1.GetMonthlySummaryRequest]) (*connect.Response[v1.GetMonthlySummaryResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	year := req.Msg.Year
	if year == 0 {
		year = s.today().Year
	}
	if year < 1 || year > 9999 {
		return nil, invalidArgument("invalid year %d", year)
	}

	start := civil.Date{Year: year, Month: time.January, Day: 1}
	end := civil.Date{Year: year, Month: time.December, Day: 31}
	movements, err := s.listAllMovements(ctx, claims.UID, store.MovementFilter{Start: &start, End: &end})
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}

	months, income, expense := monthlySummary(movements, year)
	return connect.NewResponse(&v1.GetMonthlySummaryResponse{
		Year:         year,
		Months:       months,
		TotalIncome:  income,
		TotalExpense: expense,
	}), nil
}

// GetCategoryBreakdown totals movements per category. Type defaults to
// expense.
func (s *FinanceService) GetCategoryBreakdown(ctx context.Context, req *connect.Request[v1.GetCategoryBreakdownRequest]) (*connect.Response[v1.GetCategoryBreakdownResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	typ := msg.Type
	if typ == "" {
		typ = model.MovementExpense
	}
	if !typ.Valid() {
		return nil, invalidArgument("type must be expense or income")
	}
	if msg.Start != nil && msg.End != nil && msg.End.Before(*msg.Start) {
		return nil, invalidArgument("end is before start")
	}

	movements, err := s.listAllMovements(ctx, claims.UID, store.MovementFilter{
		Start: msg.Start,
		End:   msg.End,
		Type:  typ,
	})
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}

	categories, total := categoryBreakdown(movements)
	return connect.NewResponse(&v1.GetCategoryBreakdownResponse{Categories: categories, Total: total}), nil
}

// GetCalendarHeatmap returns daily totals for one month. Zero year or month
// means the current one; type defaults to expense.
func (s *FinanceService) GetCalendarHeatmap(ctx context.Context, req *connect.Request[v1.GetCalendarHeatmapRequest]) (*connect.Response[v1.GetCalendarHeatmapResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	today := s.today()
	year, month := msg.Year, time.Month(msg.Month)
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = today.Month
	}
	if month < time.January || month > time.December {
		return nil, invalidArgument("invalid month %d", msg.Month)
	}
	typ := msg.Type
	if typ == "" {
		typ = model.MovementExpense
	}
	if !typ.Valid() {
		return nil, invalidArgument("type must be expense or income")
	}

	start := civil.Date{Year: year, Month: month, Day: 1}
	end := civil.Date{Year: year, Month: month, Day: billing.DaysIn(year, month)}
	movements, err := s.listAllMovements(ctx, claims.UID, store.MovementFilter{Start: &start, End: &end, Type: typ})
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}

	days, peak := calendarHeatmap(movements, year, month)
	return connect.NewResponse(&v1.GetCalendarHeatmapResponse{Days: days, Max: peak}), nil
}

// QueryMovements filters movements by text, date, amount, category and type.
// With a search index configured the index answers and the store supplies
// the records; otherwise the store results are filtered here.
func (s *FinanceService) QueryMovements(ctx context.Context, req *connect.Request[v1.QueryMovementsRequest]) (*connect.Response[v1.QueryMovementsResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if msg.Type != "" && !msg.Type.Valid() {
		return nil, invalidArgument("type must be expense or income")
	}
	if msg.MinAmount != nil && msg.MaxAmount != nil && msg.MaxAmount.LessThan(*msg.MinAmount) {
		return nil, invalidArgument("maxAmount is below minAmount")
	}

	var movements []*model.Movement
	if s.searchIndex != nil && msg.Text != "" {
		movements, err = s.searchMovements(ctx, claims, msg)
	} else {
		movements, err = s.filterMovements(ctx, claims.UID, msg)
	}
	if err != nil {
		return nil, err
	}
	sortMovementsDesc(movements)

	return connect.NewResponse(&v1.QueryMovementsResponse{
		Movements: movements,
		Total:     sumAmounts(movements),
		Count:     int32(len(movements)),
	}), nil
}

func (s *FinanceService) filterMovements(ctx context.Context, userID string, msg *v1.QueryMovementsRequest) ([]*model.Movement, error) {
	all, err := s.listAllMovements(ctx, userID, store.MovementFilter{
		Start: msg.Start,
		End:   msg.End,
		Type:  msg.Type,
	})
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}

	q := movementQuery{
		text:      msg.Text,
		start:     msg.Start,
		end:       msg.End,
		minAmount: msg.MinAmount,
		maxAmount: msg.MaxAmount,
		category:  msg.Category,
		typ:       msg.Type,
	}
	out := make([]*model.Movement, 0, len(all))
	for _, m := range all {
		if q.matches(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// searchMovements asks the index for IDs and loads each record from the
// store. Hits the store no longer has (deleted since indexing) are dropped.
func (s *FinanceService) searchMovements(ctx context.Context, claims *auth.UserClaims, msg *v1.QueryMovementsRequest) ([]*model.Movement, error) {
	resp, err := s.searchIndex.Search(ctx, search.MovementQuery{
		Text:      msg.Text,
		UserID:    claims.UID,
		Category:  msg.Category,
		Type:      msg.Type,
		MinAmount: msg.MinAmount,
		MaxAmount: msg.MaxAmount,
		Start:     msg.Start,
		End:       msg.End,
	})
	if err != nil {
		s.reqLog(ctx).Warn().Err(err).Msg("search failed, filtering store results instead")
		return s.filterMovements(ctx, claims.UID, msg)
	}

	out := make([]*model.Movement, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		m, err := s.store.GetMovement(ctx, hit.ID)
		if err != nil {
			s.reqLog(ctx).Debug().Err(err).Str("movement_id", hit.ID).Msg("dropping stale search hit")
			continue
		}
		if m.UserID != claims.UID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
