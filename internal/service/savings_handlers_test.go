package service

import (
	"testing"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSaving(t *testing.T) {
	tests := []struct {
		name      string
		req       *v1.CreateSavingRequest
		wantCode  connect.Code
		wantLocal decimal.Decimal
		wantCurr  string
	}{
		{
			name:      "deposit ignores local amount",
			req:       &v1.CreateSavingRequest{Operation: model.SavingDeposit, ForeignAmount: dec("100"), LocalAmount: dec("999")},
			wantLocal: decimal.Zero,
			wantCurr:  "USD",
		},
		{
			name:      "buy with currency",
			req:       &v1.CreateSavingRequest{Operation: model.SavingBuy, ForeignAmount: dec("100"), LocalAmount: dec("120000"), Currency: " eur "},
			wantLocal: dec("120000"),
			wantCurr:  "EUR",
		},
		{
			name:     "sell without local amount",
			req:      &v1.CreateSavingRequest{Operation: model.SavingSell, ForeignAmount: dec("100")},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "unknown operation",
			req:      &v1.CreateSavingRequest{Operation: "withdraw", ForeignAmount: dec("100")},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "zero foreign amount",
			req:      &v1.CreateSavingRequest{Operation: model.SavingDeposit},
			wantCode: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(store.NewMemoryStore())
			resp, err := svc.CreateSaving(testContextWithUser("user-1"), connect.NewRequest(tt.req))
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.wantLocal.Equal(resp.Msg.Saving.LocalAmount))
			assert.Equal(t, tt.wantCurr, resp.Msg.Saving.Currency)
			assert.Equal(t, "2024-03-15", resp.Msg.Saving.Date.String())
		})
	}
}

func TestGetSavingsBalance(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")

	for _, text := range []string{
		"Ahorré 300 dólares",
		"Compré 200 dólares a 1500",
		"Vendí 100 usd a 120.000",
	} {
		_, err := svc.CreateEntry(ctx, connect.NewRequest(&v1.CreateEntryRequest{Text: text}))
		require.NoError(t, err, text)
	}

	resp, err := svc.GetSavingsBalance(ctx, connect.NewRequest(&v1.GetSavingsBalanceRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "USD", resp.Msg.Currency)
	assert.True(t, dec("400").Equal(resp.Msg.ForeignBalance), "balance %s", resp.Msg.ForeignBalance)
	assert.True(t, dec("-118500").Equal(resp.Msg.LocalSpent), "spent %s", resp.Msg.LocalSpent)

	list, err := svc.ListSavings(ctx, connect.NewRequest(&v1.ListSavingsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Savings, 3)

	_, err = svc.DeleteSaving(testContextWithUser("user-2"), connect.NewRequest(&v1.DeleteSavingRequest{ID: list.Msg.Savings[0].ID}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = svc.DeleteSaving(ctx, connect.NewRequest(&v1.DeleteSavingRequest{ID: list.Msg.Savings[0].ID}))
	require.NoError(t, err)
}

func TestSavingsBalance_Empty(t *testing.T) {
	balance, spent := savingsBalance(nil)
	assert.True(t, balance.IsZero())
	assert.True(t, spent.IsZero())
}
