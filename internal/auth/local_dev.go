package auth

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// LocalDevUserID is the user every local-dev request runs as.
const LocalDevUserID = "local-dev-user"

// LocalDevInterceptor provides a mock user context for local development.
// Requests already carrying claims (debug impersonation) keep them.
func LocalDevInterceptor() connect.Interceptor {
	return headerInterceptor{authenticate: func(ctx context.Context, procedure string, header http.Header) (context.Context, error) {
		if isPublicEndpoint(procedure) {
			return ctx, nil
		}
		if _, ok := GetUserClaims(ctx); ok {
			return ctx, nil
		}
		return withUserClaims(ctx, &UserClaims{
			UID:         LocalDevUserID,
			Email:       "dev@localhost",
			DisplayName: "Local Dev User",
			Verified:    true,
		}), nil
	}}
}
