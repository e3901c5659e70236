package service

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
)

// CreatePayable records a bill to pay later.
func (s *FinanceService) CreatePayable(ctx context.Context, req *connect.Request[v1.CreatePayableRequest]) (*connect.Response[v1.CreatePayableResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if strings.TrimSpace(msg.Description) == "" {
		return nil, invalidArgument("description is required")
	}
	if err := validateAmount(msg.Amount); err != nil {
		return nil, err
	}
	if !msg.DueDate.IsValid() {
		return nil, invalidArgument("dueDate is required")
	}

	now := s.now()
	payable := &model.Payable{
		UserID:      claims.UID,
		Description: strings.TrimSpace(msg.Description),
		Amount:      msg.Amount,
		Category:    categoryOrOther(msg.Category),
		DueDate:     msg.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreatePayable(ctx, payable); err != nil {
		return nil, auth.WrapStoreError("create payable", err)
	}

	return connect.NewResponse(&v1.CreatePayableResponse{Payable: payable}), nil
}

// ListPayables lists the caller's payables by due date.
func (s *FinanceService) ListPayables(ctx context.Context, req *connect.Request[v1.ListPayablesRequest]) (*connect.Response[v1.ListPayablesResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	payables, err := s.store.ListPayables(ctx, claims.UID, req.Msg.IncludePaid)
	if err != nil {
		return nil, auth.WrapStoreError("list payables", err)
	}
	return connect.NewResponse(&v1.ListPayablesResponse{Payables: payables}), nil
}

// DeletePayable deletes one of the caller's payables
func (s *FinanceService) DeletePayable(ctx context.Context, req *connect.Request[v1.DeletePayableRequest]) (*connect.Response[v1.DeletePayableResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedPayable(ctx, claims, req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeletePayable(ctx, req.Msg.ID); err != nil {
		return nil, auth.WrapStoreError("delete payable", err)
	}
	return connect.NewResponse(&v1.DeletePayableResponse{}), nil
}

// MarkPayablePaid flags the payable as paid and then records the expense.
// The two writes are independent: if the expense cannot be stored the
// payable stays paid and the error is returned.
func (s *FinanceService) MarkPayablePaid(ctx context.Context, req *connect.Request[v1.MarkPayablePaidRequest]) (*connect.Response[v1.MarkPayablePaidResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	payable, err := s.ownedPayable(ctx, claims, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	if payable.Paid {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("payable %s is already paid", payable.ID))
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	payable.Paid = true
	payable.PaidAt = &now
	payable.UpdatedAt = now
	if err := s.store.UpdatePayable(ctx, payable); err != nil {
		return nil, auth.WrapStoreError("update payable", err)
	}

	movement := &model.Movement{
		UserID:      claims.UID,
		Type:        model.MovementExpense,
		Description: payable.Description,
		Amount:      payable.Amount,
		Date:        date,
		Category:    payable.Category,
		Source:      model.SourcePayable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMovement(ctx, movement); err != nil {
		s.reqLog(ctx).Error().Err(err).Str("payable_id", payable.ID).Msg("payable marked paid but expense not recorded")
		return nil, auth.WrapStoreError("create movement", err)
	}
	s.indexMovement(ctx, movement)

	// Best effort: the link is informational.
	payable.MovementID = movement.ID
	if err := s.store.UpdatePayable(ctx, payable); err != nil {
		s.reqLog(ctx).Warn().Err(err).Str("payable_id", payable.ID).Msg("could not link payable to movement")
	}

	return connect.NewResponse(&v1.MarkPayablePaidResponse{Payable: payable, Movement: movement}), nil
}

func (s *FinanceService) ownedPayable(ctx context.Context, claims *auth.UserClaims, id string) (*model.Payable, error) {
	if id == "" {
		return nil, invalidArgument("id is required")
	}
	payable, err := s.store.GetPayable(ctx, id)
	if err != nil {
		return nil, auth.WrapStoreError("get payable", err)
	}
	if err := auth.RequireOwner(claims, payable.UserID, "payable"); err != nil {
		return nil, err
	}
	return payable, nil
}

// CreateReceivable records money to collect later.
func (s *FinanceService) CreateReceivable(ctx context.Context, req *connect.Request[v1.CreateReceivableRequest]) (*connect.Response[v1.CreateReceivableResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if strings.TrimSpace(msg.Description) == "" {
		return nil, invalidArgument("description is required")
	}
	if err := validateAmount(msg.Amount); err != nil {
		return nil, err
	}
	if !msg.DueDate.IsValid() {
		return nil, invalidArgument("dueDate is required")
	}

	now := s.now()
	receivable := &model.Receivable{
		UserID:      claims.UID,
		Description: strings.TrimSpace(msg.Description),
		Amount:      msg.Amount,
		Category:    categoryOrOther(msg.Category),
		DueDate:     msg.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateReceivable(ctx, receivable); err != nil {
		return nil, auth.WrapStoreError("create receivable", err)
	}

	return connect.NewResponse(&v1.CreateReceivableResponse{Receivable: receivable}), nil
}

// ListReceivables lists the caller's receivables by due date.
func (s *FinanceService) ListReceivables(ctx context.Context, req *connect.Request[v1.ListReceivablesRequest]) (*connect.Response[v1.ListReceivablesResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	receivables, err := s.store.ListReceivables(ctx, claims.UID, req.Msg.IncludeCollected)
	if err != nil {
		return nil, auth.WrapStoreError("list receivables", err)
	}
	return connect.NewResponse(&v1.ListReceivablesResponse{Receivables: receivables}), nil
}

// DeleteReceivable deletes one of the caller's receivables
func (s *FinanceService) DeleteReceivable(ctx context.Context, req *connect.Request[v1.DeleteReceivableRequest]) (*connect.Response[v1.DeleteReceivableResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedReceivable(ctx, claims, req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteReceivable(ctx, req.Msg.ID); err != nil {
		return nil, auth.WrapStoreError("delete receivable", err)
	}
	return connect.NewResponse(&v1.DeleteReceivableResponse{}), nil
}

// MarkReceivableCollected flags the receivable as collected and then records
// the income, with the same two-write behaviour as MarkPayablePaid.
func (s *FinanceService) MarkReceivableCollected(ctx context.Context, req *connect.Request[v1.MarkReceivableCollectedRequest]) (*connect.Response[v1.MarkReceivableCollectedResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	receivable, err := s.ownedReceivable(ctx, claims, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	if receivable.Collected {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("receivable %s is already collected", receivable.ID))
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	receivable.Collected = true
	receivable.CollectedAt = &now
	receivable.UpdatedAt = now
	if err := s.store.UpdateReceivable(ctx, receivable); err != nil {
		return nil, auth.WrapStoreError("update receivable", err)
	}

	movement := &model.Movement{
		UserID:      claims.UID,
		Type:        model.MovementIncome,
		Description: receivable.Description,
		Amount:      receivable.Amount,
		Date:        date,
		Category:    receivable.Category,
		Source:      model.SourceReceivable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMovement(ctx, movement); err != nil {
		s.reqLog(ctx).Error().Err(err).Str("receivable_id", receivable.ID).Msg("receivable marked collected but income not recorded")
		return nil, auth.WrapStoreError("create movement", err)
	}
	s.indexMovement(ctx, movement)

	receivable.MovementID = movement.ID
	if err := s.store.UpdateReceivable(ctx, receivable); err != nil {
		s.reqLog(ctx).Warn().Err(err).Str("receivable_id", receivable.ID).Msg("could not link receivable to movement")
	}

	return connect.NewResponse(&v1.MarkReceivableCollectedResponse{Receivable: receivable, Movement: movement}), nil
}

func (s *FinanceService) ownedReceivable(ctx context.Context, claims *auth.UserClaims, id string) (*model.Receivable, error) {
	if id == "" {
		return nil, invalidArgument("id is required")
	}
	receivable, err := s.store.GetReceivable(ctx, id)
	if err != nil {
		return nil, auth.WrapStoreError("get receivable", err)
	}
	if err := auth.RequireOwner(claims, receivable.UserID, "receivable"); err != nil {
		return nil, err
	}
	return receivable, nil
}
