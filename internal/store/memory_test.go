package store

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestMemoryStore_MovementCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	m := &model.Movement{
		UserID:      "user-1",
		Type:        model.MovementExpense,
		Description: "super",
		Amount:      decimal.NewFromInt(20000),
		Date:        day(2024, 3, 10),
		Category:    "Supermercado",
	}
	require.NoError(t, s.CreateMovement(ctx, m))
	require.NotEmpty(t, m.ID, "create must assign an ID")

	got, err := s.GetMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "super", got.Description)

	// Returned records are copies.
	got.Description = "mutated"
	again, err := s.GetMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "super", again.Description)

	got.Description = "changed"
	require.NoError(t, s.UpdateMovement(ctx, got))
	again, err = s.GetMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed", again.Description)

	require.NoError(t, s.DeleteMovement(ctx, m.ID))
	_, err = s.GetMovement(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteMovement(ctx, m.ID), ErrNotFound)
	assert.ErrorIs(t, s.UpdateMovement(ctx, got), ErrNotFound)
}

func TestMemoryStore_ListMovementsFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 1; i <= 5; i++ {
		require.NoError(t, s.CreateMovement(ctx, &model.Movement{
			UserID: "user-1",
			Type:   model.MovementExpense,
			Amount: decimal.NewFromInt(int64(i * 100)),
			Date:   day(2024, 3, i),
		}))
	}
	require.NoError(t, s.CreateMovement(ctx, &model.Movement{
		UserID: "user-1", Type: model.MovementIncome, Amount: decimal.NewFromInt(1), Date: day(2024, 3, 3),
	}))
	require.NoError(t, s.CreateMovement(ctx, &model.Movement{
		UserID: "user-2", Type: model.MovementExpense, Amount: decimal.NewFromInt(1), Date: day(2024, 3, 3),
	}))

	start, end := day(2024, 3, 2), day(2024, 3, 4)
	got, next, err := s.ListMovements(ctx, "user-1", MovementFilter{Start: &start, End: &end, Type: model.MovementExpense}, 0, "")
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.Len(t, got, 3)

	var all []*model.Movement
	token := ""
	for {
		page, next, err := s.ListMovements(ctx, "user-1", MovementFilter{}, 2, token)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page), 2)
		all = append(all, page...)
		if next == "" {
			break
		}
		token = next
	}
	assert.Len(t, all, 6)

	seen := map[string]bool{}
	for _, m := range all {
		assert.False(t, seen[m.ID], "duplicate %s across pages", m.ID)
		seen[m.ID] = true
	}
}

func TestMemoryStore_WatchMovements(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewMemoryStore()

	ch, err := s.WatchMovements(ctx, "user-1")
	require.NoError(t, err)

	initial := <-ch
	assert.Empty(t, initial)

	require.NoError(t, s.CreateMovement(context.Background(), &model.Movement{
		UserID: "user-2", Type: model.MovementExpense, Amount: decimal.NewFromInt(1), Date: day(2024, 1, 1),
	}))
	require.NoError(t, s.CreateMovement(context.Background(), &model.Movement{
		UserID: "user-1", Type: model.MovementExpense, Amount: decimal.NewFromInt(5), Date: day(2024, 1, 1),
	}))

	select {
	case snap := <-ch:
		require.Len(t, snap, 1)
		assert.Equal(t, "user-1", snap[0].UserID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot after write")
	}

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel must close after cancel")
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestMemoryStore_WatchersGetOwnSnapshots(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := NewMemoryStore()

	tab1, err := s.WatchMovements(ctx, "user-1")
	require.NoError(t, err)
	tab2, err := s.WatchMovements(ctx, "user-1")
	require.NoError(t, err)
	<-tab1
	<-tab2

	for i, d := range []int{3, 1, 2} {
		require.NoError(t, s.CreateMovement(context.Background(), &model.Movement{
			UserID:    "user-1",
			Type:      model.MovementExpense,
			Amount:    decimal.NewFromInt(int64(i + 1)),
			Date:      day(2024, 1, d),
			CreatedAt: time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC),
		}))
	}

	receive := func(ch <-chan []*model.Movement) []*model.Movement {
		select {
		case snap := <-ch:
			return snap
		case <-time.After(time.Second):
			t.Fatal("no snapshot after write")
			return nil
		}
	}
	snap1, snap2 := receive(tab1), receive(tab2)
	require.Len(t, snap1, 3)
	require.Len(t, snap2, 3)
	assert.NotSame(t, &snap1[0], &snap2[0], "watchers must not share a slice")
	assert.NotSame(t, snap1[0], snap2[0], "watchers must not share records")

	// Both readers reorder their snapshot at once; run with -race.
	var wg sync.WaitGroup
	for _, snap := range [][]*model.Movement{snap1, snap2} {
		wg.Add(1)
		go func(snap []*model.Movement) {
			defer wg.Done()
			sort.Slice(snap, func(i, j int) bool { return snap[i].CreatedAt.After(snap[j].CreatedAt) })
			snap[0].Description = "edited"
		}(snap)
	}
	wg.Wait()

	stored, _, err := s.ListMovements(context.Background(), "user-1", MovementFilter{}, 10, "")
	require.NoError(t, err)
	for _, m := range stored {
		assert.Empty(t, m.Description)
	}
}

func TestMemoryStore_ListPayables(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.CreatePayable(ctx, &model.Payable{UserID: "u", Description: "later", DueDate: day(2024, 5, 1)}))
	require.NoError(t, s.CreatePayable(ctx, &model.Payable{UserID: "u", Description: "sooner", DueDate: day(2024, 4, 1)}))
	require.NoError(t, s.CreatePayable(ctx, &model.Payable{UserID: "u", Description: "done", DueDate: day(2024, 3, 1), Paid: true}))

	pending, err := s.ListPayables(ctx, "u", false)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "sooner", pending[0].Description)

	all, err := s.ListPayables(ctx, "u", true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore_ListCardPurchases(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	purchases := []*model.CardPurchase{
		{UserID: "u", CardID: "visa", CycleID: "2024-03", Date: day(2024, 3, 2)},
		{UserID: "u", CardID: "visa", CycleID: "2024-04", Date: day(2024, 3, 28)},
		{UserID: "u", CardID: "amex", CycleID: "2024-03", Date: day(2024, 3, 5)},
		{UserID: "u", CardID: "visa", CycleID: "2024-03", Date: day(2024, 3, 1), Liquidated: true},
	}
	for _, p := range purchases {
		require.NoError(t, s.CreateCardPurchase(ctx, p))
	}

	got, err := s.ListCardPurchases(ctx, "u", PurchaseFilter{CardID: "visa", CycleID: "2024-03"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = s.ListCardPurchases(ctx, "u", PurchaseFilter{CardID: "visa", CycleID: "2024-03", IncludeLiquidated: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, day(2024, 3, 1), got[0].Date)

	got, err = s.ListCardPurchases(ctx, "other", PurchaseFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_NotificationPreferences(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	prefs, err := s.GetNotificationPreferences(ctx, "u")
	require.NoError(t, err)
	assert.True(t, prefs.DueReminders)
	assert.False(t, prefs.PushEnabled)

	require.NoError(t, s.UpdateNotificationPreferences(ctx, &model.NotificationPreferences{UserID: "u", PushEnabled: true, FCMToken: "tok"}))
	require.NoError(t, s.UpdateNotificationPreferences(ctx, &model.NotificationPreferences{UserID: "v", PushEnabled: true}))
	require.NoError(t, s.UpdateNotificationPreferences(ctx, &model.NotificationPreferences{UserID: "w", FCMToken: "tok"}))

	subs, err := s.ListPushSubscribers(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "u", subs[0].UserID)
}

func TestPageTokens(t *testing.T) {
	assert.Empty(t, EncodePageToken(""))
	id, err := DecodePageToken(EncodePageToken("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	_, err = DecodePageToken("%%%")
	assert.Error(t, err)
}

func TestDocConversions(t *testing.T) {
	paidAt := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	p := &model.Payable{
		ID:      "p1",
		UserID:  "u",
		Amount:  decimal.RequireFromString("1234.567"),
		DueDate: day(2024, 2, 29),
		Paid:    true,
		PaidAt:  &paidAt,
	}
	doc := toPayableDoc(p)
	assert.Equal(t, int64(123457), doc.AmountCents)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), doc.DueDate)

	back := doc.toModel()
	assert.True(t, p.Amount.Equal(back.Amount))
	assert.Equal(t, p.DueDate, back.DueDate)

	// A corrupt amount string falls back to cents.
	doc.Amount = "garbage"
	assert.Equal(t, "1234.57", doc.toModel().Amount.StringFixed(2))
}
