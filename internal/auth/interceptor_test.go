package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	tokens map[string]string
}

func (f fakeVerifier) VerifyToken(ctx context.Context, token string) (*UserClaims, error) {
	uid, ok := f.tokens[token]
	if !ok {
		return nil, errors.New("invalid token")
	}
	return &UserClaims{UID: uid}, nil
}

func authenticate(t *testing.T, i connect.Interceptor, ctx context.Context, procedure string, header http.Header) (context.Context, error) {
	t.Helper()
	hi, ok := i.(headerInterceptor)
	require.True(t, ok)
	return hi.authenticate(ctx, procedure, header)
}

const testProcedure = "/cuentas.v1.FinanceService/ListCards"

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		expectedErr bool
		errContains string
		wantToken   string
	}{
		{name: "empty header", authHeader: "", expectedErr: true, errContains: "authorization header is required"},
		{name: "no bearer prefix", authHeader: "token123", expectedErr: true, errContains: "must be Bearer token"},
		{name: "wrong prefix", authHeader: "Basic token123", expectedErr: true, errContains: "must be Bearer token"},
		{name: "valid bearer token", authHeader: "Bearer mytoken123", wantToken: "mytoken123"},
		{name: "bearer mixed case", authHeader: "BEARER mytoken789", wantToken: "mytoken789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ExtractTokenFromHeader(tt.authHeader)
			if tt.expectedErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthInterceptor(t *testing.T) {
	verifier := fakeVerifier{tokens: map[string]string{"good": "user-1"}}
	scheduler := "/cuentas.v1.FinanceService/SendDueReminders"
	interceptor := AuthInterceptor(verifier, scheduler)

	tests := []struct {
		name      string
		procedure string
		header    string
		wantCode  connect.Code
		wantUID   string
	}{
		{name: "valid token", procedure: testProcedure, header: "Bearer good", wantUID: "user-1"},
		{name: "missing header", procedure: testProcedure, wantCode: connect.CodeUnauthenticated},
		{name: "bad scheme", procedure: testProcedure, header: "Basic good", wantCode: connect.CodeUnauthenticated},
		{name: "unknown token", procedure: testProcedure, header: "Bearer bad", wantCode: connect.CodeUnauthenticated},
		{name: "public endpoint", procedure: "/health"},
		{name: "optional endpoint without token", procedure: scheduler},
		{name: "optional endpoint still verifies tokens", procedure: scheduler, header: "Bearer bad", wantCode: connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			ctx, err := authenticate(t, interceptor, context.Background(), tt.procedure, header)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, connect.CodeOf(err))
				return
			}
			require.NoError(t, err)

			uid, ok := GetUserID(ctx)
			assert.Equal(t, tt.wantUID != "", ok)
			assert.Equal(t, tt.wantUID, uid)
		})
	}
}

func TestAuthInterceptor_KeepsExistingClaims(t *testing.T) {
	interceptor := AuthInterceptor(fakeVerifier{})
	ctx := WithUserClaims(context.Background(), &UserClaims{UID: "impersonated"})

	ctx, err := authenticate(t, interceptor, ctx, testProcedure, http.Header{})
	require.NoError(t, err)
	uid, _ := GetUserID(ctx)
	assert.Equal(t, "impersonated", uid)
}

func TestDebugAuthInterceptor(t *testing.T) {
	header := http.Header{}
	header.Set("X-Debug-Impersonate-User", "alice")

	ctx, err := authenticate(t, DebugAuthInterceptor(true), context.Background(), testProcedure, header)
	require.NoError(t, err)
	claims, ok := GetUserClaims(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.UID)
	assert.Equal(t, "alice@debug.local", claims.Email)

	ctx, err = authenticate(t, DebugAuthInterceptor(false), context.Background(), testProcedure, header)
	require.NoError(t, err)
	_, ok = GetUserClaims(ctx)
	assert.False(t, ok, "impersonation must be ignored unless auth is skipped")
}

func TestLocalDevInterceptor(t *testing.T) {
	ctx, err := authenticate(t, LocalDevInterceptor(), context.Background(), testProcedure, http.Header{})
	require.NoError(t, err)
	uid, ok := GetUserID(ctx)
	require.True(t, ok)
	assert.Equal(t, LocalDevUserID, uid)

	ctx, err = authenticate(t, LocalDevInterceptor(), context.Background(), "/health", http.Header{})
	require.NoError(t, err)
	_, ok = GetUserID(ctx)
	assert.False(t, ok)
}

func TestContextUserClaims(t *testing.T) {
	t.Run("WithUserClaims adds claims to context", func(t *testing.T) {
		claims := &UserClaims{
			UID:         "test-uid",
			Email:       "test@example.com",
			DisplayName: "Test User",
			Verified:    true,
		}

		got, ok := GetUserClaims(WithUserClaims(context.Background(), claims))
		require.True(t, ok)
		assert.Equal(t, claims, got)
	})

	t.Run("GetUserID returns empty for empty context", func(t *testing.T) {
		uid, ok := GetUserID(context.Background())
		assert.False(t, ok)
		assert.Empty(t, uid)
	})
}

func TestClaimsFromToken(t *testing.T) {
	claims := claimsFromToken("uid-1", map[string]interface{}{
		"email":          "a@b.c",
		"email_verified": true,
		"name":           "Ana",
		"picture":        "https://example.com/a.png",
	})
	assert.Equal(t, &UserClaims{
		UID:         "uid-1",
		Email:       "a@b.c",
		DisplayName: "Ana",
		Picture:     "https://example.com/a.png",
		Verified:    true,
	}, claims)

	bare := claimsFromToken("uid-2", map[string]interface{}{})
	assert.Equal(t, "uid-2", bare.UID)
	assert.False(t, bare.Verified)
}
