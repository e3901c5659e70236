package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/quickentry"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
)

// CreateMovement creates a movement
func (s *FinanceService) CreateMovement(ctx context.Context, req *connect.Request[v1.CreateMovementRequest]) (*connect.Response[v1.CreateMovementResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if !msg.Type.Valid() {
		return nil, invalidArgument("type must be expense or income")
	}
	if err := validateAmount(msg.Amount); err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(msg.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	movement := &model.Movement{
		UserID:      claims.UID,
		Type:        msg.Type,
		Description: strings.TrimSpace(msg.Description),
		Amount:      msg.Amount,
		Date:        date,
		Category:    categoryOrOther(msg.Category),
		Source:      model.SourceManual,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMovement(ctx, movement); err != nil {
		return nil, auth.WrapStoreError("create movement", err)
	}
	s.indexMovement(ctx, movement)

	return connect.NewResponse(&v1.CreateMovementResponse{Movement: movement}), nil
}

// GetMovement returns one of the caller's movements
func (s *FinanceService) GetMovement(ctx context.Context, req *connect.Request[v1.GetMovementRequest]) (*connect.Response[v1.GetMovementResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	movement, err := s.ownedMovement(ctx, claims, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.GetMovementResponse{Movement: movement}), nil
}

// UpdateMovement applies the fields set on the request.
func (s *FinanceService) UpdateMovement(ctx context.Context, req *connect.Request[v1.UpdateMovementRequest]) (*connect.Response[v1.UpdateMovementResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	movement, err := s.ownedMovement(ctx, claims, msg.ID)
	if err != nil {
		return nil, err
	}

	if msg.Type != nil {
		if !msg.Type.Valid() {
			return nil, invalidArgument("type must be expense or income")
		}
		movement.Type = *msg.Type
	}
	if msg.Description != nil {
		movement.Description = strings.TrimSpace(*msg.Description)
	}
	if msg.Amount != nil {
		if err := validateAmount(*msg.Amount); err != nil {
			return nil, err
		}
		movement.Amount = *msg.Amount
	}
	if msg.Date != nil {
		if !msg.Date.IsValid() {
			return nil, invalidArgument("invalid date %s", msg.Date)
		}
		movement.Date = *msg.Date
	}
	if msg.Category != nil {
		movement.Category = categoryOrOther(*msg.Category)
	}
	movement.UpdatedAt = s.now()

	if err := s.store.UpdateMovement(ctx, movement); err != nil {
		return nil, auth.WrapStoreError("update movement", err)
	}
	s.indexMovement(ctx, movement)

	return connect.NewResponse(&v1.UpdateMovementResponse{Movement: movement}), nil
}

// DeleteMovement deletes one of the caller's movements
func (s *FinanceService) DeleteMovement(ctx context.Context, req *connect.Request[v1.DeleteMovementRequest]) (*connect.Response[v1.DeleteMovementResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedMovement(ctx, claims, req.Msg.ID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteMovement(ctx, req.Msg.ID); err != nil {
		return nil, auth.WrapStoreError("delete movement", err)
	}
	s.unindexMovement(ctx, req.Msg.ID)

	return connect.NewResponse(&v1.DeleteMovementResponse{}), nil
}

// ListMovements lists the caller's movements, newest first within a page.
func (s *FinanceService) ListMovements(ctx context.Context, req *connect.Request[v1.ListMovementsRequest]) (*connect.Response[v1.ListMovementsResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if msg.Type != "" && !msg.Type.Valid() {
		return nil, invalidArgument("type must be expense or income")
	}
	filter := store.MovementFilter{
		Start:    msg.Start,
		End:      msg.End,
		Type:     msg.Type,
		Category: msg.Category,
	}

	movements, next, err := s.store.ListMovements(ctx, claims.UID, filter, auth.NormalizePageSize(msg.PageSize), msg.PageToken)
	if err != nil {
		return nil, auth.WrapStoreError("list movements", err)
	}
	sortMovementsDesc(movements)

	return connect.NewResponse(&v1.ListMovementsResponse{
		Movements:     movements,
		NextPageToken: next,
	}), nil
}

// WatchMovements streams the caller's full movement list after every change
// until the client goes away.
func (s *FinanceService) WatchMovements(ctx context.Context, req *connect.Request[v1.WatchMovementsRequest], stream *connect.ServerStream[v1.WatchMovementsResponse]) error {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return err
	}

	updates, err := s.store.WatchMovements(ctx, claims.UID)
	if err != nil {
		return auth.WrapStoreError("watch movements", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case movements, ok := <-updates:
			if !ok {
				return nil
			}
			sortMovementsDesc(movements)
			if err := stream.Send(&v1.WatchMovementsResponse{Movements: movements}); err != nil {
				return err
			}
		}
	}
}

func (s *FinanceService) ownedMovement(ctx context.Context, claims *auth.UserClaims, id string) (*model.Movement, error) {
	if id == "" {
		return nil, invalidArgument("id is required")
	}
	movement, err := s.store.GetMovement(ctx, id)
	if err != nil {
		return nil, auth.WrapStoreError("get movement", err)
	}
	if err := auth.RequireOwner(claims, movement.UserID, "movement"); err != nil {
		return nil, err
	}
	return movement, nil
}

// indexMovement pushes m to the search index. Failures are logged only; the
// store stays the source of truth.
func (s *FinanceService) indexMovement(ctx context.Context, m *model.Movement) {
	if s.searchIndex == nil {
		return
	}
	if err := s.searchIndex.IndexMovement(ctx, m); err != nil {
		s.reqLog(ctx).Warn().Err(err).Str("movement_id", m.ID).Msg("search index update failed")
	}
}

func (s *FinanceService) unindexMovement(ctx context.Context, id string) {
	if s.searchIndex == nil {
		return
	}
	if err := s.searchIndex.RemoveMovement(ctx, id); err != nil {
		s.reqLog(ctx).Warn().Err(err).Str("movement_id", id).Msg("search index delete failed")
	}
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return invalidArgument("amount must be positive")
	}
	return nil
}

func categoryOrOther(category string) string {
	if c := strings.TrimSpace(category); c != "" {
		return c
	}
	return quickentry.CategoryOther
}
