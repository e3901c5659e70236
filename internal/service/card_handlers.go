package service

import (
	"context"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/billing"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
)

// liquidationCategory is the category of the expense a paid statement creates.
const liquidationCategory = "Tarjeta"

// CreateCard creates a credit card. Close and due days may be left at zero
// and configured later.
func (s *FinanceService) CreateCard(ctx context.Context, req *connect.Request[v1.CreateCardRequest]) (*connect.Response[v1.CreateCardResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	name := strings.TrimSpace(msg.Name)
	if name == "" {
		return nil, invalidArgument("name is required")
	}
	if err := validateCardDays(msg.CloseDay, msg.DueDay); err != nil {
		return nil, err
	}

	now := s.now()
	card := &model.Card{
		UserID:    claims.UID,
		Name:      name,
		CloseDay:  msg.CloseDay,
		DueDay:    msg.DueDay,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateCard(ctx, card); err != nil {
		return nil, auth.WrapStoreError("create card", err)
	}

	return connect.NewResponse(&v1.CreateCardResponse{Card: card}), nil
}

// UpdateCard changes the fields set on the request. Purchases already
// recorded keep their cycle.
func (s *FinanceService) UpdateCard(ctx context.Context, req *connect.Request[v1.UpdateCardRequest]) (*connect.Response[v1.UpdateCardResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	card, err := s.ownedCard(ctx, claims, msg.ID)
	if err != nil {
		return nil, err
	}
	if msg.Name != nil {
		name := strings.TrimSpace(*msg.Name)
		if name == "" {
			return nil, invalidArgument("name must not be empty")
		}
		card.Name = name
	}
	if msg.CloseDay != nil {
		card.CloseDay = *msg.CloseDay
	}
	if msg.DueDay != nil {
		card.DueDay = *msg.DueDay
	}
	if err := validateCardDays(card.CloseDay, card.DueDay); err != nil {
		return nil, err
	}
	card.UpdatedAt = s.now()

	if err := s.store.UpdateCard(ctx, card); err != nil {
		return nil, auth.WrapStoreError("update card", err)
	}
	return connect.NewResponse(&v1.UpdateCardResponse{Card: card}), nil
}

// ListCards lists the caller's cards by name
func (s *FinanceService) ListCards(ctx context.Context, req *connect.Request[v1.ListCardsRequest]) (*connect.Response[v1.ListCardsResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := s.store.ListCards(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("list cards", err)
	}
	return connect.NewResponse(&v1.ListCardsResponse{Cards: cards}), nil
}

// DeleteCard deletes a card. A card with unliquidated purchases cannot be
// deleted.
func (s *FinanceService) DeleteCard(ctx context.Context, req *connect.Request[v1.DeleteCardRequest]) (*connect.Response[v1.DeleteCardResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	card, err := s.ownedCard(ctx, claims, req.Msg.ID)
	if err != nil {
		return nil, err
	}

	pending, err := s.store.ListCardPurchases(ctx, claims.UID, store.PurchaseFilter{CardID: card.ID})
	if err != nil {
		return nil, auth.WrapStoreError("list card purchases", err)
	}
	if len(pending) > 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("card %s has %d unliquidated purchases", card.ID, len(pending)))
	}

	if err := s.store.DeleteCard(ctx, card.ID); err != nil {
		return nil, auth.WrapStoreError("delete card", err)
	}
	return connect.NewResponse(&v1.DeleteCardResponse{}), nil
}

// ComputeCycle exposes the billing cycle calculator.
func (s *FinanceService) ComputeCycle(ctx context.Context, req *connect.Request[v1.ComputeCycleRequest]) (*connect.Response[v1.ComputeCycleResponse], error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}
	msg := req.Msg
	if !msg.PurchaseDate.IsValid() {
		return nil, invalidArgument("purchaseDate is required")
	}

	cycle, err := billing.ComputeCycle(msg.PurchaseDate, msg.CloseDay, msg.DueDay)
	if err != nil {
		return nil, cycleError(err)
	}
	return connect.NewResponse(&v1.ComputeCycleResponse{Cycle: toBillingCycle(cycle)}), nil
}

// CreateCardPurchase records a purchase and fixes its billing cycle from the
// card's current configuration.
func (s *FinanceService) CreateCardPurchase(ctx context.Context, req *connect.Request[v1.CreateCardPurchaseRequest]) (*connect.Response[v1.CreateCardPurchaseResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	if err := validateAmount(msg.Amount); err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(msg.Date)
	if err != nil {
		return nil, err
	}
	card, err := s.ownedCard(ctx, claims, msg.CardID)
	if err != nil {
		return nil, err
	}

	cycle, err := billing.ComputeCycle(date, card.CloseDay, card.DueDay)
	if err != nil {
		return nil, cycleError(err)
	}

	now := s.now()
	purchase := &model.CardPurchase{
		UserID:      claims.UID,
		CardID:      card.ID,
		Description: strings.TrimSpace(msg.Description),
		Amount:      msg.Amount,
		Category:    categoryOrOther(msg.Category),
		Date:        date,
		CycleID:     cycle.ID,
		DueDate:     cycle.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateCardPurchase(ctx, purchase); err != nil {
		return nil, auth.WrapStoreError("create card purchase", err)
	}

	return connect.NewResponse(&v1.CreateCardPurchaseResponse{
		Purchase: purchase,
		Cycle:    toBillingCycle(cycle),
	}), nil
}

// ListCardPurchases lists the caller's purchases with their total.
func (s *FinanceService) ListCardPurchases(ctx context.Context, req *connect.Request[v1.ListCardPurchasesRequest]) (*connect.Response[v1.ListCardPurchasesResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	purchases, err := s.store.ListCardPurchases(ctx, claims.UID, store.PurchaseFilter{
		CardID:            msg.CardID,
		CycleID:           msg.CycleID,
		IncludeLiquidated: msg.IncludeLiquidated,
	})
	if err != nil {
		return nil, auth.WrapStoreError("list card purchases", err)
	}

	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Amount)
	}
	return connect.NewResponse(&v1.ListCardPurchasesResponse{Purchases: purchases, Total: total}), nil
}

// DeleteCardPurchase deletes a purchase that has not been liquidated.
func (s *FinanceService) DeleteCardPurchase(ctx context.Context, req *connect.Request[v1.DeleteCardPurchaseRequest]) (*connect.Response[v1.DeleteCardPurchaseResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, invalidArgument("id is required")
	}

	purchase, err := s.store.GetCardPurchase(ctx, req.Msg.ID)
	if err != nil {
		return nil, auth.WrapStoreError("get card purchase", err)
	}
	if err := auth.RequireOwner(claims, purchase.UserID, "card purchase"); err != nil {
		return nil, err
	}
	if purchase.Liquidated {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("purchase %s is already liquidated", purchase.ID))
	}

	if err := s.store.DeleteCardPurchase(ctx, purchase.ID); err != nil {
		return nil, auth.WrapStoreError("delete card purchase", err)
	}
	return connect.NewResponse(&v1.DeleteCardPurchaseResponse{}), nil
}

// ListPendingCycles totals unliquidated purchases per card and cycle.
func (s *FinanceService) ListPendingCycles(ctx context.Context, req *connect.Request[v1.ListPendingCyclesRequest]) (*connect.Response[v1.ListPendingCyclesResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	cycles, err := s.pendingCyclesFor(ctx, claims.UID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&v1.ListPendingCyclesResponse{Cycles: cycles}), nil
}

func (s *FinanceService) pendingCyclesFor(ctx context.Context, userID string) ([]v1.PendingCycle, error) {
	cards, err := s.store.ListCards(ctx, userID)
	if err != nil {
		return nil, auth.WrapStoreError("list cards", err)
	}
	purchases, err := s.store.ListCardPurchases(ctx, userID, store.PurchaseFilter{})
	if err != nil {
		return nil, auth.WrapStoreError("list card purchases", err)
	}
	return pendingCycles(cards, purchases, s.today()), nil
}

// LiquidateCycle pays a closed statement: it records one expense for the
// cycle total and then marks each purchase liquidated. The writes are sequential;
// a failure midway leaves the remaining purchases pending and is returned.
func (s *FinanceService) LiquidateCycle(ctx context.Context, req *connect.Request[v1.LiquidateCycleRequest]) (*connect.Response[v1.LiquidateCycleResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	if msg.CycleID == "" {
		return nil, invalidArgument("cycleId is required")
	}
	date, err := s.dateOrToday(msg.Date)
	if err != nil {
		return nil, err
	}
	card, err := s.ownedCard(ctx, claims, msg.CardID)
	if err != nil {
		return nil, err
	}

	purchases, err := s.store.ListCardPurchases(ctx, claims.UID, store.PurchaseFilter{
		CardID:  card.ID,
		CycleID: msg.CycleID,
	})
	if err != nil {
		return nil, auth.WrapStoreError("list card purchases", err)
	}
	if len(purchases) == 0 {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("no pending purchases for card %s cycle %s", card.ID, msg.CycleID))
	}
	if !cycleClosed(purchases[0], card.CloseDay, s.today()) {
		return nil, connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("cycle %s has not closed yet", msg.CycleID))
	}

	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.Amount)
	}

	now := s.now()
	movement := &model.Movement{
		UserID:      claims.UID,
		Type:        model.MovementExpense,
		Description: fmt.Sprintf("%s %s", card.Name, msg.CycleID),
		Amount:      total,
		Date:        date,
		Category:    liquidationCategory,
		Source:      model.SourceCardLiquidation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateMovement(ctx, movement); err != nil {
		return nil, auth.WrapStoreError("create movement", err)
	}
	s.indexMovement(ctx, movement)

	var liquidated int32
	for _, p := range purchases {
		p.Liquidated = true
		p.LiquidatedAt = &now
		p.MovementID = movement.ID
		p.UpdatedAt = now
		if err := s.store.UpdateCardPurchase(ctx, p); err != nil {
			s.reqLog(ctx).Error().Err(err).
				Str("movement_id", movement.ID).
				Int32("liquidated", liquidated).
				Int("pending", len(purchases)-int(liquidated)).
				Msg("cycle liquidation stopped midway")
			return nil, auth.WrapStoreError("update card purchase", err)
		}
		liquidated++
	}

	return connect.NewResponse(&v1.LiquidateCycleResponse{Movement: movement, Liquidated: liquidated}), nil
}

func (s *FinanceService) ownedCard(ctx context.Context, claims *auth.UserClaims, id string) (*model.Card, error) {
	if id == "" {
		return nil, invalidArgument("cardId is required")
	}
	card, err := s.store.GetCard(ctx, id)
	if err != nil {
		return nil, auth.WrapStoreError("get card", err)
	}
	if err := auth.RequireOwner(claims, card.UserID, "card"); err != nil {
		return nil, err
	}
	return card, nil
}

// validateCardDays accepts 0 (not configured) or a day of month.
func validateCardDays(closeDay, dueDay int) error {
	if closeDay < 0 || closeDay > 31 {
		return invalidArgument("closeDay must be between 1 and 31, or 0 to leave it unset")
	}
	if dueDay < 0 || dueDay > 31 {
		return invalidArgument("dueDay must be between 1 and 31, or 0 to leave it unset")
	}
	return nil
}

func toBillingCycle(c billing.Cycle) v1.BillingCycle {
	return v1.BillingCycle{
		ID:          c.ID,
		WindowStart: c.WindowStart,
		WindowEnd:   c.WindowEnd,
		DueDate:     c.DueDate,
	}
}
