package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseEntry(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())
	ctx := testContextWithUser("user-1")

	resp, err := svc.ParseEntry(ctx, connect.NewRequest(&v1.ParseEntryRequest{Text: "Pagué 20.000 del super"}))
	require.NoError(t, err)

	entry := resp.Msg.Entry
	assert.Equal(t, "expense", entry.Kind)
	assert.Equal(t, "Pagué  del super", entry.Description)
	assert.Equal(t, "2024-03-15", entry.Date.String())
	require.True(t, entry.Amount.Valid)
	assert.True(t, decimal.NewFromInt(20000).Equal(entry.Amount.Decimal))
	assert.Equal(t, "Supermercado", entry.Category)
	assert.False(t, entry.ForeignAmount.Valid)
	assert.False(t, entry.LocalAmount.Valid)
}

func TestParseEntry_Validation(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())

	_, err := svc.ParseEntry(testContextWithUser("user-1"), connect.NewRequest(&v1.ParseEntryRequest{Text: "   "}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = svc.ParseEntry(context.Background(), connect.NewRequest(&v1.ParseEntryRequest{Text: "pan 100"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestParseEntry_UsesLocalDate(t *testing.T) {
	// 02:00 UTC on the 16th is still the 15th in Buenos Aires.
	st := store.NewMemoryStore()
	svc := newTestService(st)
	svc.now = func() time.Time { return time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC) }

	resp, err := svc.ParseEntry(testContextWithUser("user-1"), connect.NewRequest(&v1.ParseEntryRequest{Text: "cafe 900"}))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", resp.Msg.Entry.Date.String())
}

func TestCreateEntry(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantMovement *model.Movement
		wantSaving   *model.Saving
	}{
		{
			name: "expense",
			text: "Pagué 20.000 del super",
			wantMovement: &model.Movement{
				Type:        model.MovementExpense,
				Description: "Pagué del super",
				Amount:      decimal.NewFromInt(20000),
				Category:    "Supermercado",
				Source:      model.SourceQuickEntry,
			},
		},
		{
			name: "income",
			text: "cobré el sueldo 850.000",
			wantMovement: &model.Movement{
				Type:        model.MovementIncome,
				Description: "Cobré el sueldo",
				Amount:      decimal.NewFromInt(850000),
				Category:    "Sueldo",
				Source:      model.SourceQuickEntry,
			},
		},
		{
			name: "saving deposit",
			text: "Ahorré 300 dólares",
			wantSaving: &model.Saving{
				Operation:     model.SavingDeposit,
				ForeignAmount: decimal.NewFromInt(300),
				LocalAmount:   decimal.Zero,
			},
		},
		{
			name: "currency buy keeps both legs",
			text: "Compré 200 dólares a 1500",
			wantSaving: &model.Saving{
				Operation:     model.SavingBuy,
				ForeignAmount: decimal.NewFromInt(200),
				LocalAmount:   decimal.NewFromInt(1500),
			},
		},
		{
			name: "currency sell",
			text: "Vendí 100 usd a 120.000",
			wantSaving: &model.Saving{
				Operation:     model.SavingSell,
				ForeignAmount: decimal.NewFromInt(100),
				LocalAmount:   decimal.NewFromInt(120000),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			svc := newTestService(st)
			ctx := testContextWithUser("user-1")

			resp, err := svc.CreateEntry(ctx, connect.NewRequest(&v1.CreateEntryRequest{Text: tt.text}))
			require.NoError(t, err)

			if tt.wantMovement != nil {
				require.NotNil(t, resp.Msg.Movement)
				assert.Nil(t, resp.Msg.Saving)
				got := resp.Msg.Movement
				assert.NotEmpty(t, got.ID)
				assert.Equal(t, "user-1", got.UserID)
				assert.Equal(t, tt.wantMovement.Type, got.Type)
				assert.Equal(t, tt.wantMovement.Description, got.Description)
				assert.True(t, tt.wantMovement.Amount.Equal(got.Amount))
				assert.Equal(t, tt.wantMovement.Category, got.Category)
				assert.Equal(t, tt.wantMovement.Source, got.Source)
				assert.Equal(t, "2024-03-15", got.Date.String())

				stored, err := st.GetMovement(ctx, got.ID)
				require.NoError(t, err)
				assert.Equal(t, got.Description, stored.Description)
				return
			}

			require.NotNil(t, resp.Msg.Saving)
			assert.Nil(t, resp.Msg.Movement)
			got := resp.Msg.Saving
			assert.Equal(t, tt.wantSaving.Operation, got.Operation)
			assert.True(t, tt.wantSaving.ForeignAmount.Equal(got.ForeignAmount), "foreign %s", got.ForeignAmount)
			assert.True(t, tt.wantSaving.LocalAmount.Equal(got.LocalAmount), "local %s", got.LocalAmount)
			assert.Equal(t, model.DefaultCurrency, got.Currency)

			savings, err := st.ListSavings(ctx, "user-1")
			require.NoError(t, err)
			assert.Len(t, savings, 1)
		})
	}
}

func TestCreateEntry_StoresMissingAmountAsZero(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")

	resp, err := svc.CreateEntry(ctx, connect.NewRequest(&v1.CreateEntryRequest{Text: "algo raro"}))
	require.NoError(t, err)
	assert.False(t, resp.Msg.Entry.Amount.Valid, "the preview keeps the missing amount")
	require.NotNil(t, resp.Msg.Movement)
	assert.True(t, resp.Msg.Movement.Amount.IsZero())
	assert.Equal(t, model.MovementExpense, resp.Msg.Movement.Type)

	movements, _, err := st.ListMovements(ctx, "user-1", store.MovementFilter{}, 10, "")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, movements[0].Amount.IsZero())
	assert.Equal(t, "Algo raro", movements[0].Description)
}

func TestCreateEntry_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	svc := newTestService(mockStore)

	mockStore.EXPECT().
		CreateMovement(gomock.Any(), gomock.Any()).
		Return(errors.New("firestore unavailable"))

	_, err := svc.CreateEntry(testContextWithUser("user-1"), connect.NewRequest(&v1.CreateEntryRequest{Text: "pan 100"}))
	assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))
}

func TestEntryDescription(t *testing.T) {
	assert.Equal(t, "Pagué del super", entryDescription("pagué  del super", "x"))
	assert.Equal(t, "Supermercado", entryDescription("", "Supermercado"))
}
