package service

import (
	"context"
	"time"

	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/store"
)

// testNow is the fixed clock used by service tests: 2024-03-15 10:00 in
// Buenos Aires.
var testNow = time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC)

// testContextWithUser creates a context with authenticated user claims for testing
func testContextWithUser(userID string) context.Context {
	return auth.WithUserClaims(context.Background(), &auth.UserClaims{
		UID:   userID,
		Email: userID + "@test.local",
	})
}

// newTestService returns a service over st with the fixed test clock.
func newTestService(st store.Store, opts ...Option) *FinanceService {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		loc = time.FixedZone("ART", -3*60*60)
	}
	base := []Option{WithClock(func() time.Time { return testNow }, loc)}
	return NewFinanceService(st, append(base, opts...)...)
}
