package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/search"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeIndex records index writes and answers searches with fixed hits.
type fakeIndex struct {
	indexed   []string
	removed   []string
	hits      []search.Hit
	searchErr error
	lastQuery search.MovementQuery
}

func (f *fakeIndex) IndexMovement(_ context.Context, m *model.Movement) error {
	f.indexed = append(f.indexed, m.ID)
	return nil
}

func (f *fakeIndex) RemoveMovement(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, q search.MovementQuery) (*search.SearchResponse, error) {
	f.lastQuery = q
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return &search.SearchResponse{Hits: f.hits, TotalCount: len(f.hits), TotalPages: 1}, nil
}

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *civil.Date {
	d := date(s)
	return &d
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedMovement(t *testing.T, st store.Store, userID string, typ model.MovementType, amount, day, category string) *model.Movement {
	t.Helper()
	m := &model.Movement{
		UserID:      userID,
		Type:        typ,
		Description: fmt.Sprintf("%s %s", category, day),
		Amount:      dec(amount),
		Date:        date(day),
		Category:    category,
		Source:      model.SourceManual,
	}
	require.NoError(t, st.CreateMovement(context.Background(), m))
	return m
}

func TestCreateMovement(t *testing.T) {
	tests := []struct {
		name     string
		req      *v1.CreateMovementRequest
		wantCode connect.Code
		check    func(t *testing.T, m *model.Movement)
	}{
		{
			name: "defaults date and category",
			req: &v1.CreateMovementRequest{
				Type:        model.MovementExpense,
				Description: "  Farmacia ",
				Amount:      dec("3500.50"),
			},
			check: func(t *testing.T, m *model.Movement) {
				assert.Equal(t, "Farmacia", m.Description)
				assert.Equal(t, "2024-03-15", m.Date.String())
				assert.Equal(t, "Other", m.Category)
				assert.Equal(t, model.SourceManual, m.Source)
				assert.Equal(t, testNow, m.CreatedAt)
			},
		},
		{
			name: "explicit date",
			req: &v1.CreateMovementRequest{
				Type:     model.MovementIncome,
				Amount:   dec("1000"),
				Date:     datePtr("2024-02-29"),
				Category: "Sueldo",
			},
			check: func(t *testing.T, m *model.Movement) {
				assert.Equal(t, "2024-02-29", m.Date.String())
				assert.Equal(t, "Sueldo", m.Category)
			},
		},
		{
			name:     "unknown type",
			req:      &v1.CreateMovementRequest{Type: "transfer", Amount: dec("1")},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "zero amount",
			req:      &v1.CreateMovementRequest{Type: model.MovementExpense, Amount: decimal.Zero},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "negative amount",
			req:      &v1.CreateMovementRequest{Type: model.MovementExpense, Amount: dec("-5")},
			wantCode: connect.CodeInvalidArgument,
		},
		{
			name:     "invalid date",
			req:      &v1.CreateMovementRequest{Type: model.MovementExpense, Amount: dec("5"), Date: &civil.Date{Year: 2023, Month: 2, Day: 29}},
			wantCode: connect.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemoryStore()
			idx := &fakeIndex{}
			svc := newTestService(st)
			svc.SetSearchIndex(idx)

			resp, err := svc.CreateMovement(testContextWithUser("user-1"), connect.NewRequest(tt.req))
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				assert.Empty(t, idx.indexed)
				return
			}
			require.NoError(t, err)
			m := resp.Msg.Movement
			assert.NotEmpty(t, m.ID)
			assert.Equal(t, "user-1", m.UserID)
			assert.Equal(t, []string{m.ID}, idx.indexed)
			tt.check(t, m)
		})
	}
}

func TestMovementOwnership(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	theirs := seedMovement(t, st, "user-2", model.MovementExpense, "100", "2024-03-01", "Comida")
	ctx := testContextWithUser("user-1")

	_, err := svc.GetMovement(ctx, connect.NewRequest(&v1.GetMovementRequest{ID: theirs.ID}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	desc := "mine now"
	_, err = svc.UpdateMovement(ctx, connect.NewRequest(&v1.UpdateMovementRequest{ID: theirs.ID, Description: &desc}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	_, err = svc.DeleteMovement(ctx, connect.NewRequest(&v1.DeleteMovementRequest{ID: theirs.ID}))
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))

	stored, err := st.GetMovement(context.Background(), theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, theirs.Description, stored.Description)

	_, err = svc.GetMovement(ctx, connect.NewRequest(&v1.GetMovementRequest{ID: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = svc.GetMovement(ctx, connect.NewRequest(&v1.GetMovementRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestUpdateMovement(t *testing.T) {
	st := store.NewMemoryStore()
	idx := &fakeIndex{}
	svc := newTestService(st)
	svc.SetSearchIndex(idx)
	ctx := testContextWithUser("user-1")
	m := seedMovement(t, st, "user-1", model.MovementExpense, "100", "2024-03-01", "Comida")

	amount := dec("250")
	category := " "
	resp, err := svc.UpdateMovement(ctx, connect.NewRequest(&v1.UpdateMovementRequest{
		ID:       m.ID,
		Amount:   &amount,
		Category: &category,
	}))
	require.NoError(t, err)
	assert.True(t, amount.Equal(resp.Msg.Movement.Amount))
	assert.Equal(t, "Other", resp.Msg.Movement.Category)
	assert.Equal(t, m.Description, resp.Msg.Movement.Description, "unset fields are kept")
	assert.Equal(t, testNow, resp.Msg.Movement.UpdatedAt)
	assert.Equal(t, []string{m.ID}, idx.indexed)

	stored, err := st.GetMovement(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, amount.Equal(stored.Amount))

	bad := dec("0")
	_, err = svc.UpdateMovement(ctx, connect.NewRequest(&v1.UpdateMovementRequest{ID: m.ID, Amount: &bad}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestDeleteMovement(t *testing.T) {
	st := store.NewMemoryStore()
	idx := &fakeIndex{}
	svc := newTestService(st)
	svc.SetSearchIndex(idx)
	ctx := testContextWithUser("user-1")
	m := seedMovement(t, st, "user-1", model.MovementExpense, "100", "2024-03-01", "Comida")

	_, err := svc.DeleteMovement(ctx, connect.NewRequest(&v1.DeleteMovementRequest{ID: m.ID}))
	require.NoError(t, err)
	assert.Equal(t, []string{m.ID}, idx.removed)

	_, err = st.GetMovement(ctx, m.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListMovements(t *testing.T) {
	st := store.NewMemoryStore()
	svc := newTestService(st)
	ctx := testContextWithUser("user-1")
	seedMovement(t, st, "user-1", model.MovementExpense, "100", "2024-03-01", "Comida")
	seedMovement(t, st, "user-1", model.MovementIncome, "900", "2024-03-05", "Sueldo")
	seedMovement(t, st, "user-1", model.MovementExpense, "50", "2024-02-20", "Comida")
	seedMovement(t, st, "user-2", model.MovementExpense, "70", "2024-03-02", "Comida")

	resp, err := svc.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Movements, 3)
	assert.Equal(t, "2024-03-05", resp.Msg.Movements[0].Date.String())
	assert.Equal(t, "2024-02-20", resp.Msg.Movements[2].Date.String())

	resp, err = svc.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{
		Start: datePtr("2024-03-01"),
		Type:  model.MovementExpense,
	}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Movements, 1)
	assert.True(t, dec("100").Equal(resp.Msg.Movements[0].Amount))

	_, err = svc.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{Type: "bogus"}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestMovementHandlers_StoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *store.MockStore)
		call      func(svc *FinanceService) error
		wantCode  connect.Code
	}{
		{
			name: "get fails",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetMovement(gomock.Any(), "mov-1").Return(nil, errors.New("boom"))
			},
			call: func(svc *FinanceService) error {
				_, err := svc.GetMovement(testContextWithUser("user-1"), connect.NewRequest(&v1.GetMovementRequest{ID: "mov-1"}))
				return err
			},
			wantCode: connect.CodeInternal,
		},
		{
			name: "missing movement",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetMovement(gomock.Any(), "mov-1").Return(nil, fmt.Errorf("movement mov-1: %w", store.ErrNotFound))
			},
			call: func(svc *FinanceService) error {
				_, err := svc.DeleteMovement(testContextWithUser("user-1"), connect.NewRequest(&v1.DeleteMovementRequest{ID: "mov-1"}))
				return err
			},
			wantCode: connect.CodeNotFound,
		},
		{
			name: "update write fails",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().GetMovement(gomock.Any(), "mov-1").Return(&model.Movement{ID: "mov-1", UserID: "user-1", Type: model.MovementExpense, Amount: dec("1")}, nil)
				m.EXPECT().UpdateMovement(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
			},
			call: func(svc *FinanceService) error {
				desc := "x"
				_, err := svc.UpdateMovement(testContextWithUser("user-1"), connect.NewRequest(&v1.UpdateMovementRequest{ID: "mov-1", Description: &desc}))
				return err
			},
			wantCode: connect.CodeInternal,
		},
		{
			name: "list fails",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().ListMovements(gomock.Any(), "user-1", gomock.Any(), int32(100), "").Return(nil, "", errors.New("boom"))
			},
			call: func(svc *FinanceService) error {
				_, err := svc.ListMovements(testContextWithUser("user-1"), connect.NewRequest(&v1.ListMovementsRequest{}))
				return err
			},
			wantCode: connect.CodeInternal,
		},
		{
			name: "watch fails",
			setupMock: func(m *store.MockStore) {
				m.EXPECT().WatchMovements(gomock.Any(), "user-1").Return(nil, errors.New("boom"))
			},
			call: func(svc *FinanceService) error {
				return svc.WatchMovements(testContextWithUser("user-1"), connect.NewRequest(&v1.WatchMovementsRequest{}), nil)
			},
			wantCode: connect.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockStore := store.NewMockStore(ctrl)
			tt.setupMock(mockStore)

			err := tt.call(newTestService(mockStore))
			assert.Equal(t, tt.wantCode, connect.CodeOf(err))
		})
	}
}

func TestMovementHandlers_Unauthenticated(t *testing.T) {
	svc := newTestService(store.NewMemoryStore())
	ctx := context.Background()

	_, err := svc.CreateMovement(ctx, connect.NewRequest(&v1.CreateMovementRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	_, err = svc.ListMovements(ctx, connect.NewRequest(&v1.ListMovementsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	err = svc.WatchMovements(ctx, connect.NewRequest(&v1.WatchMovementsRequest{}), nil)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}
