package auth

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"
	"github.com/castlemilk/cuentas/internal/store"
)

// RequireAuth extracts user claims from context or returns an unauthenticated error
func RequireAuth(ctx context.Context) (*UserClaims, error) {
	claims, ok := GetUserClaims(ctx)
	if !ok {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("user not authenticated"))
	}
	return claims, nil
}

// RequireOwner rejects access to a record owned by someone other than the caller.
func RequireOwner(claims *UserClaims, ownerID, kind string) error {
	if claims == nil || ownerID != claims.UID {
		return connect.NewError(connect.CodePermissionDenied,
			fmt.Errorf("cannot access another user's %s", kind))
	}
	return nil
}

// NormalizePageSize returns a valid page size (default 100, max 1000)
func NormalizePageSize(pageSize int32) int32 {
	if pageSize <= 0 {
		return 100
	}
	if pageSize > 1000 {
		return 1000
	}
	return pageSize
}

// WrapStoreError converts a store failure into a connect error: missing
// records become NotFound, everything else Internal.
func WrapStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	if errors.Is(err, store.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, fmt.Errorf("failed to %s: %w", operation, err))
	}
	return connect.NewError(connect.CodeInternal, fmt.Errorf("failed to %s: %w", operation, err))
}
