package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/api/cuentas/v1/cuentasv1connect"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/service"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var e2eNow = time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)

func newE2EClient(t *testing.T) *cuentasv1connect.FinanceServiceClient {
	t.Helper()

	financeService := service.NewFinanceService(store.NewMemoryStore(),
		service.WithClock(func() time.Time { return e2eNow }, time.UTC),
	)
	path, handler := cuentasv1connect.NewFinanceServiceHandler(financeService,
		connect.WithInterceptors(auth.DebugAuthInterceptor(true), auth.LocalDevInterceptor()),
	)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return cuentasv1connect.NewFinanceServiceClient(server.Client(), server.URL)
}

func TestE2E_UnknownPath(t *testing.T) {
	financeService := service.NewFinanceService(store.NewMemoryStore())
	path, handler := cuentasv1connect.NewFinanceServiceHandler(financeService)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_QuickEntryToMovements(t *testing.T) {
	client := newE2EClient(t)
	ctx := context.Background()

	preview, err := client.ParseEntry(ctx, connect.NewRequest(&v1.ParseEntryRequest{Text: "Pagué 20.000 del super"}))
	require.NoError(t, err)
	assert.Equal(t, "expense", preview.Msg.Entry.Kind)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.March, Day: 15}, preview.Msg.Entry.Date)

	for _, text := range []string{"Pagué 20.000 del super", "Cobré el sueldo 850.000"} {
		_, err := client.CreateEntry(ctx, connect.NewRequest(&v1.CreateEntryRequest{Text: text}))
		require.NoError(t, err, text)
	}

	list, err := client.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Movements, 2)
	for _, m := range list.Msg.Movements {
		assert.Equal(t, auth.LocalDevUserID, m.UserID)
		assert.Equal(t, model.SourceQuickEntry, m.Source)
	}

	summary, err := client.GetMonthlySummary(ctx, connect.NewRequest(&v1.GetMonthlySummaryRequest{Year: 2024}))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(850000).Equal(summary.Msg.TotalIncome))
	assert.True(t, decimal.NewFromInt(20000).Equal(summary.Msg.TotalExpense))

	// Another user sees nothing.
	req := connect.NewRequest(&v1.ListMovementsRequest{})
	req.Header().Set("X-Debug-Impersonate-User", "alice")
	other, err := client.ListMovements(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, other.Msg.Movements)
}

func TestE2E_CardCycleLiquidation(t *testing.T) {
	client := newE2EClient(t)
	ctx := context.Background()

	card, err := client.CreateCard(ctx, connect.NewRequest(&v1.CreateCardRequest{Name: "Visa", CloseDay: 10, DueDay: 5}))
	require.NoError(t, err)

	purchaseDate := civil.Date{Year: 2024, Month: time.March, Day: 5}
	for _, amount := range []int64{1000, 250} {
		resp, err := client.CreateCardPurchase(ctx, connect.NewRequest(&v1.CreateCardPurchaseRequest{
			CardID:      card.Msg.Card.ID,
			Description: "Compra",
			Amount:      decimal.NewFromInt(amount),
			Date:        &purchaseDate,
		}))
		require.NoError(t, err)
		assert.Equal(t, "2024-03", resp.Msg.Cycle.ID)
		assert.Equal(t, civil.Date{Year: 2024, Month: time.April, Day: 5}, resp.Msg.Cycle.DueDate)
	}

	cycles, err := client.ListPendingCycles(ctx, connect.NewRequest(&v1.ListPendingCyclesRequest{}))
	require.NoError(t, err)
	require.Len(t, cycles.Msg.Cycles, 1)
	assert.True(t, decimal.NewFromInt(1250).Equal(cycles.Msg.Cycles[0].Total))
	assert.Equal(t, int32(2), cycles.Msg.Cycles[0].Count)

	liq, err := client.LiquidateCycle(ctx, connect.NewRequest(&v1.LiquidateCycleRequest{
		CardID:  card.Msg.Card.ID,
		CycleID: "2024-03",
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), liq.Msg.Liquidated)
	assert.Equal(t, model.SourceCardLiquidation, liq.Msg.Movement.Source)
	assert.True(t, decimal.NewFromInt(1250).Equal(liq.Msg.Movement.Amount))

	cycles, err = client.ListPendingCycles(ctx, connect.NewRequest(&v1.ListPendingCyclesRequest{}))
	require.NoError(t, err)
	assert.Empty(t, cycles.Msg.Cycles)

	_, err = client.LiquidateCycle(ctx, connect.NewRequest(&v1.LiquidateCycleRequest{
		CardID:  card.Msg.Card.ID,
		CycleID: "2024-03",
	}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))
}

func TestE2E_WatchMovements(t *testing.T) {
	client := newE2EClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := client.WatchMovements(ctx, connect.NewRequest(&v1.WatchMovementsRequest{}))
	require.NoError(t, err)
	defer stream.Close()

	require.True(t, stream.Receive(), "initial snapshot: %v", stream.Err())
	assert.Empty(t, stream.Msg().Movements)

	_, err = client.CreateMovement(ctx, connect.NewRequest(&v1.CreateMovementRequest{
		Type:        model.MovementExpense,
		Description: "Kiosco",
		Amount:      decimal.NewFromInt(900),
		Category:    "Otros",
	}))
	require.NoError(t, err)

	require.True(t, stream.Receive(), "update: %v", stream.Err())
	require.Len(t, stream.Msg().Movements, 1)
	assert.Equal(t, "Kiosco", stream.Msg().Movements[0].Description)
}
