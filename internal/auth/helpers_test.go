package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	t.Run("returns error when no claims in context", func(t *testing.T) {
		claims, err := RequireAuth(context.Background())
		assert.Nil(t, claims)
		require.Error(t, err)
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	})

	t.Run("returns claims when present in context", func(t *testing.T) {
		expected := &UserClaims{UID: "user-123", Email: "test@example.com"}
		ctx := withUserClaims(context.Background(), expected)

		claims, err := RequireAuth(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected.UID, claims.UID)
		assert.Equal(t, expected.Email, claims.Email)
	})
}

func TestRequireOwner(t *testing.T) {
	claims := &UserClaims{UID: "owner"}

	assert.NoError(t, RequireOwner(claims, "owner", "card"))

	err := RequireOwner(claims, "someone-else", "card")
	assert.Equal(t, connect.CodePermissionDenied, connect.CodeOf(err))
	assert.Contains(t, err.Error(), "card")

	assert.Error(t, RequireOwner(nil, "owner", "card"))
}

func TestNormalizePageSize(t *testing.T) {
	tests := []struct {
		in, want int32
	}{
		{0, 100},
		{-5, 100},
		{50, 50},
		{1000, 1000},
		{5000, 1000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePageSize(tt.in))
		})
	}
}

func TestWrapStoreError(t *testing.T) {
	assert.NoError(t, WrapStoreError("get card", nil))

	err := WrapStoreError("get card", fmt.Errorf("card x: %w", store.ErrNotFound))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to get card")

	err = WrapStoreError("list cards", errors.New("deadline exceeded"))
	assert.Equal(t, connect.CodeInternal, connect.CodeOf(err))

	denied := connect.NewError(connect.CodePermissionDenied, errors.New("nope"))
	assert.Same(t, denied, WrapStoreError("get card", denied))
}
