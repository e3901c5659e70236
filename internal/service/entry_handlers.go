package service

import (
	"context"
	"fmt"
	"time"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/quickentry"
	"github.com/shopspring/decimal"
)

// ParseEntry previews what a quick-entry sentence would create.
func (s *FinanceService) ParseEntry(ctx context.Context, req *connect.Request[v1.ParseEntryRequest]) (*connect.Response[v1.ParseEntryResponse], error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	if err := quickentry.ValidateInput(req.Msg.Text); err != nil {
		return nil, parseError(err)
	}

	tx := s.parser.Parse(req.Msg.Text, s.localNow())
	return connect.NewResponse(&v1.ParseEntryResponse{Entry: toParsedEntry(tx)}), nil
}

// CreateEntry parses a quick-entry sentence and stores the result: a movement
// for expenses and income, a saving for everything in foreign currency.
func (s *FinanceService) CreateEntry(ctx context.Context, req *connect.Request[v1.CreateEntryRequest]) (*connect.Response[v1.CreateEntryResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if err := quickentry.ValidateInput(req.Msg.Text); err != nil {
		return nil, parseError(err)
	}

	tx := s.parser.Parse(req.Msg.Text, s.localNow())
	resp := &v1.CreateEntryResponse{Entry: toParsedEntry(tx)}
	now := s.now()

	switch t := tx.(type) {
	case quickentry.Expense:
		resp.Movement, err = s.createEntryMovement(ctx, claims.UID, model.MovementExpense, t.Entry, t.Amount, t.Category, now)
	case quickentry.Income:
		resp.Movement, err = s.createEntryMovement(ctx, claims.UID, model.MovementIncome, t.Entry, t.Amount, t.Category, now)
	case quickentry.Saving:
		resp.Saving, err = s.createEntrySaving(ctx, claims.UID, model.SavingDeposit, t.Entry, t.ForeignAmount, decimal.Zero, now)
	case quickentry.CurrencyBuy:
		resp.Saving, err = s.createEntrySaving(ctx, claims.UID, model.SavingBuy, t.Entry, t.ForeignAmount, t.LocalAmount, now)
	case quickentry.CurrencySell:
		resp.Saving, err = s.createEntrySaving(ctx, claims.UID, model.SavingSell, t.Entry, t.ForeignAmount, t.LocalAmount, now)
	default:
		err = connect.NewError(connect.CodeInternal, fmt.Errorf("unhandled entry kind %q", tx.Kind()))
	}
	if err != nil {
		return nil, err
	}

	s.reqLog(ctx).Debug().Str("kind", string(tx.Kind())).Msg("quick entry stored")
	return connect.NewResponse(resp), nil
}

func (s *FinanceService) createEntryMovement(ctx context.Context, userID string, typ model.MovementType, entry quickentry.Entry, amount decimal.NullDecimal, category string, now time.Time) (*model.Movement, error) {
	// Sentences without a number are stored at zero for the user to fix
	// later; the response keeps the null amount.
	value := decimal.Zero
	if amount.Valid {
		value = amount.Decimal
	}
	movement := &model.Movement{
		UserID:      userID,
		Type:        typ,
		Description: entryDescription(entry.Description, category),
		Amount:      value,
		Date:        entry.Date,
		Category:    category,
		Source:      model.SourceQuickEntry,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMovement(ctx, movement); err != nil {
		return nil, auth.WrapStoreError("create movement", err)
	}
	s.indexMovement(ctx, movement)
	return movement, nil
}

func (s *FinanceService) createEntrySaving(ctx context.Context, userID string, op model.SavingOperation, entry quickentry.Entry, foreign, local decimal.Decimal, now time.Time) (*model.Saving, error) {
	saving := &model.Saving{
		UserID:        userID,
		Operation:     op,
		Description:   entryDescription(entry.Description, string(op)),
		ForeignAmount: foreign,
		LocalAmount:   local,
		Currency:      model.DefaultCurrency,
		Date:          entry.Date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateSaving(ctx, saving); err != nil {
		return nil, auth.WrapStoreError("create saving", err)
	}
	return saving, nil
}

// entryDescription is the display form of a parsed description, or fallback
// when the sentence was nothing but numbers.
func entryDescription(description, fallback string) string {
	if d := quickentry.DisplayDescription(description); d != "" {
		return d
	}
	return quickentry.DisplayDescription(fallback)
}

func toParsedEntry(tx quickentry.Transaction) v1.ParsedEntry {
	base := tx.Base()
	out := v1.ParsedEntry{
		Kind:        string(tx.Kind()),
		Description: base.Description,
		Date:        base.Date,
	}
	switch t := tx.(type) {
	case quickentry.Expense:
		out.Amount = t.Amount
		out.Category = t.Category
	case quickentry.Income:
		out.Amount = t.Amount
		out.Category = t.Category
	case quickentry.Saving:
		out.ForeignAmount = decimal.NewNullDecimal(t.ForeignAmount)
	case quickentry.CurrencyBuy:
		out.ForeignAmount = decimal.NewNullDecimal(t.ForeignAmount)
		out.LocalAmount = decimal.NewNullDecimal(t.LocalAmount)
	case quickentry.CurrencySell:
		out.ForeignAmount = decimal.NewNullDecimal(t.ForeignAmount)
		out.LocalAmount = decimal.NewNullDecimal(t.LocalAmount)
	}
	return out
}
