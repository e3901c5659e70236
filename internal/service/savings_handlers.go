package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/shopspring/decimal"
)

// CreateSaving records a foreign-currency ledger entry.
func (s *FinanceService) CreateSaving(ctx context.Context, req *connect.Request[v1.CreateSavingRequest]) (*connect.Response[v1.CreateSavingResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if !msg.Operation.Valid() {
		return nil, invalidArgument("operation must be deposit, buy or sell")
	}
	if err := validateAmount(msg.ForeignAmount); err != nil {
		return nil, err
	}
	local := msg.LocalAmount
	switch msg.Operation {
	case model.SavingDeposit:
		local = decimal.Zero
	default:
		if err := validateAmount(local); err != nil {
			return nil, invalidArgument("localAmount must be positive for %s", msg.Operation)
		}
	}
	date, err := s.dateOrToday(msg.Date)
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(msg.Currency))
	if currency == "" {
		currency = model.DefaultCurrency
	}

	now := s.now()
	saving := &model.Saving{
		UserID:        claims.UID,
		Operation:     msg.Operation,
		Description:   strings.TrimSpace(msg.Description),
		ForeignAmount: msg.ForeignAmount,
		LocalAmount:   local,
		Currency:      currency,
		Date:          date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.CreateSaving(ctx, saving); err != nil {
		return nil, auth.WrapStoreError("create saving", err)
	}

	return connect.NewResponse(&v1.CreateSavingResponse{Saving: saving}), nil
}

// DeleteSaving deletes one of the caller's savings
func (s *FinanceService) DeleteSaving(ctx context.Context, req *connect.Request[v1.DeleteSavingRequest]) (*connect.Response[v1.DeleteSavingResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, invalidArgument("id is required")
	}

	saving, err := s.store.GetSaving(ctx, req.Msg.ID)
	if err != nil {
		return nil, auth.WrapStoreError("get saving", err)
	}
	if err := auth.RequireOwner(claims, saving.UserID, "saving"); err != nil {
		return nil, err
	}
	if err := s.store.DeleteSaving(ctx, req.Msg.ID); err != nil {
		return nil, auth.WrapStoreError("delete saving", err)
	}

	return connect.NewResponse(&v1.DeleteSavingResponse{}), nil
}

// ListSavings lists the caller's savings
func (s *FinanceService) ListSavings(ctx context.Context, req *connect.Request[v1.ListSavingsRequest]) (*connect.Response[v1.ListSavingsResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	savings, err := s.store.ListSavings(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("list savings", err)
	}
	return connect.NewResponse(&v1.ListSavingsResponse{Savings: savings}), nil
}

// GetSavingsBalance sums the ledger: deposits and buys add foreign currency,
// sells remove it. LocalSpent is what buys cost minus what sells returned.
func (s *FinanceService) GetSavingsBalance(ctx context.Context, req *connect.Request[v1.GetSavingsBalanceRequest]) (*connect.Response[v1.GetSavingsBalanceResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	savings, err := s.store.ListSavings(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("list savings", err)
	}

	balance, spent := savingsBalance(savings)
	return connect.NewResponse(&v1.GetSavingsBalanceResponse{
		Currency:       model.DefaultCurrency,
		ForeignBalance: balance,
		LocalSpent:     spent,
	}), nil
}

func savingsBalance(savings []*model.Saving) (decimal.Decimal, decimal.Decimal) {
	balance, spent := decimal.Zero, decimal.Zero
	for _, sv := range savings {
		switch sv.Operation {
		case model.SavingDeposit:
			balance = balance.Add(sv.ForeignAmount)
		case model.SavingBuy:
			balance = balance.Add(sv.ForeignAmount)
			spent = spent.Add(sv.LocalAmount)
		case model.SavingSell:
			balance = balance.Sub(sv.ForeignAmount)
			spent = spent.Sub(sv.LocalAmount)
		}
	}
	return balance, spent
}
