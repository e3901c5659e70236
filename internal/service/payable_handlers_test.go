package service

import (
	"errors"
	"testing"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreatePayable_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      *v1.CreatePayableRequest
		wantCode connect.Code
	}{
		{"valid", &v1.CreatePayableRequest{Description: "Luz", Amount: dec("8000"), DueDate: date("2024-03-20")}, 0},
		{"missing description", &v1.CreatePayableRequest{Amount: dec("8000"), DueDate: date("2024-03-20")}, connect.CodeInvalidArgument},
		{"missing due date", &v1.CreatePayableRequest{Description: "Luz", Amount: dec("8000")}, connect.CodeInvalidArgument},
		{"negative amount", &v1.CreatePayableRequest{Description: "Luz", Amount: dec("-1"), DueDate: date("2024-03-20")}, connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(store.NewMemoryStore())
			resp, err := svc.CreatePayable(testContextWithUser("user-1"), connect.NewRequest(tt.req))
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Other", resp.Msg.Payable.Category)
			assert.False(t, resp.Msg.Payable.Paid)
		})
	}
}

func TestMarkPayablePaid(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")

	created, err := svc.CreatePayable(ctx, connect.NewRequest(&v1.CreatePayableRequest{
		Description: "Luz",
		Amount:      dec("8000"),
		Category:    "Servicios",
		DueDate:     date("2024-03-20"),
	}))
	require.NoError(t, err)
	id := created.Msg.Payable.ID

	resp, err := svc.MarkPayablePaid(ctx, connect.NewRequest(&v1.MarkPayablePaidRequest{ID: id}))
	require.NoError(t, err)

	m := resp.Msg.Movement
	assert.Equal(t, model.MovementExpense, m.Type)
	assert.True(t, dec("8000").Equal(m.Amount))
	assert.Equal(t, "Luz", m.Description)
	assert.Equal(t, "Servicios", m.Category)
	assert.Equal(t, model.SourcePayable, m.Source)
	assert.Equal(t, "2024-03-15", m.Date.String())

	stored, err := st.GetPayable(ctx, id)
	require.NoError(t, err)
	assert.True(t, stored.Paid)
	require.NotNil(t, stored.PaidAt)
	assert.Equal(t, m.ID, stored.MovementID)

	list, err := svc.ListPayables(ctx, connect.NewRequest(&v1.ListPayablesRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Payables)
	list, err = svc.ListPayables(ctx, connect.NewRequest(&v1.ListPayablesRequest{IncludePaid: true}))
	require.NoError(t, err)
	assert.Len(t, list.Msg.Payables, 1)

	_, err = svc.MarkPayablePaid(ctx, connect.NewRequest(&v1.MarkPayablePaidRequest{ID: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = svc.MarkPayablePaid(testContextWithUser("user-2"), connect.NewRequest(&v1.MarkPayablePaidRequest{ID: id}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
}

func TestMarkPayablePaid_StoreFailures(t *testing.T) {
	unpaid := func() *model.Payable {
		return &model.Payable{ID: "pay-1", UserID: "user-1", Description: "Luz", Amount: dec("8000"), Category: "Servicios", DueDate: date("2024-03-20")}
	}

	tests := []struct {
		name      string
		setupMock func(m *store.MockStore)
		wantCode  connect.Code
	}{
		{
			name: "flag write fails",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetPayable(gomock.Any(), "pay-1").Return(unpaid(), nil)
				m.EXPECT().UpdatePayable(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantCode: connect.CodeInternal,
		},
		{
			name: "expense write fails after flag",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetPayable(gomock.Any(), "pay-1").Return(unpaid(), nil)
				m.EXPECT().UpdatePayable(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			wantCode: connect.CodeInternal,
		},
		{
			name: "link write failure is not fatal",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetPayable(gomock.Any(), "pay-1").Return(unpaid(), nil)
				gomock.InOrder(
					m.EXPECT().UpdatePayable(gomock.Any(), gomock.Any()).Return(nil),
					m.EXPECT().CreateMovement(gomock.Any(), gomock.Any()).Return(nil),
					m.EXPECT().UpdatePayable(gomock.Any(), gomock.Any()).Return(errors.New("boom")),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStore := store.NewMockStore(ctrl)
			tt.setupMock(mockStore)
			svc := newTestService(mockStore)

			resp, err := svc.MarkPayablePaid(testContextWithUser("user-1"), connect.NewRequest(&v1.MarkPayablePaidRequest{ID: "pay-1"}))
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.Msg.Payable.Paid)
		})
	}
}

func TestMarkReceivableCollected(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")

	created, err := svc.CreateReceivable(ctx, connect.NewRequest(&v1.CreateReceivableRequest{
		Description: "Préstamo a Juan",
		Amount:      dec("15000"),
		DueDate:     date("2024-03-30"),
	}))
	require.NoError(t, err)
	id := created.Msg.Receivable.ID

	resp, err := svc.MarkReceivableCollected(ctx, connect.NewRequest(&v1.MarkReceivableCollectedRequest{
		ID:   id,
		Date: datePtr("2024-03-14"),
	}))
	require.NoError(t, err)

	m := resp.Msg.Movement
	assert.Equal(t, model.MovementIncome, m.Type)
	assert.True(t, dec("15000").Equal(m.Amount))
	assert.Equal(t, model.SourceReceivable, m.Source)
	assert.Equal(t, "2024-03-14", m.Date.String())
	assert.True(t, resp.Msg.Receivable.Collected)
	assert.Equal(t, m.ID, resp.Msg.Receivable.MovementID)

	_, err = svc.MarkReceivableCollected(ctx, connect.NewRequest(&v1.MarkReceivableCollectedRequest{ID: id}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	list, err := svc.ListReceivables(ctx, connect.NewRequest(&v1.ListReceivablesRequest{IncludeCollected: true}))
	require.NoError(t, err)
	assert.Len(t, list.Msg.Receivables, 1)
}

func TestDeletePayableAndReceivable(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")

	p, err := svc.CreatePayable(ctx, connect.NewRequest(&v1.CreatePayableRequest{Description: "Gas", Amount: dec("10"), DueDate: date("2024-04-01")}))
	require.NoError(t, err)
	r, err := svc.CreateReceivable(ctx, connect.NewRequest(&v1.CreateReceivableRequest{Description: "Venta", Amount: dec("10"), DueDate: date("2024-04-01")}))
	require.NoError(t, err)

	_, err = svc.DeletePayable(testContextWithUser("user-2"), connect.NewRequest(&v1.DeletePayableRequest{ID: p.Msg.Payable.ID}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = svc.DeletePayable(ctx, connect.NewRequest(&v1.DeletePayableRequest{ID: p.Msg.Payable.ID}))
	require.NoError(t, err)
	_, err = svc.DeleteReceivable(ctx, connect.NewRequest(&v1.DeleteReceivableRequest{ID: r.Msg.Receivable.ID}))
	require.NoError(t, err)

	_, err = svc.DeleteReceivable(ctx, connect.NewRequest(&v1.DeleteReceivableRequest{ID: r.Msg.Receivable.ID}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
