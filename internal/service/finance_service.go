// Package service implements cuentas.v1.FinanceService on top of a store.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/castlemilk/cuentas/api/cuentas/v1/cuentasv1connect"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/billing"
	"github.com/castlemilk/cuentas/internal/export"
	"github.com/castlemilk/cuentas/internal/logger"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/notify"
	"github.com/castlemilk/cuentas/internal/quickentry"
	"github.com/castlemilk/cuentas/internal/search"
	"github.com/castlemilk/cuentas/internal/statement"
	"github.com/castlemilk/cuentas/internal/store"
	"github.com/rs/zerolog"
)

const (
	defaultReminderDays = 3
	// listBatchSize is the page size used when a handler needs every record.
	listBatchSize = 500
)

type FinanceService struct {
	store    store.Store
	parser   *quickentry.Parser
	importer *statement.Importer
	log      zerolog.Logger
	now      func() time.Time
	loc      *time.Location

	searchIndex     search.Index
	pusher          notify.Pusher
	exportWriter    export.ObjectWriter
	schedulerSecret string
	reminderDays    int
}

var _ cuentasv1connect.FinanceServiceHandler = (*FinanceService)(nil)

// Option configures a FinanceService.
type Option func(*FinanceService)

// WithLogger sets the service logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *FinanceService) {
		s.log = log
	}
}

// WithClock sets the time source and the zone "today" is computed in.
func WithClock(now func() time.Time, loc *time.Location) Option {
	return func(s *FinanceService) {
		if now != nil {
			s.now = now
		}
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithParser replaces the default quick-entry parser.
func WithParser(p *quickentry.Parser) Option {
	return func(s *FinanceService) {
		s.parser = p
	}
}

// WithReminderDays sets how far ahead SendDueReminders looks.
func WithReminderDays(days int) Option {
	return func(s *FinanceService) {
		if days > 0 {
			s.reminderDays = days
		}
	}
}

// WithSchedulerSecret sets the shared secret Cloud Scheduler sends in
// X-Scheduler-Secret.
func WithSchedulerSecret(secret string) Option {
	return func(s *FinanceService) {
		s.schedulerSecret = secret
	}
}

func NewFinanceService(st store.Store, opts ...Option) *FinanceService {
	s := &FinanceService{
		store:        st,
		parser:       quickentry.NewParser(),
		log:          zerolog.Nop(),
		now:          time.Now,
		loc:          time.UTC,
		reminderDays: defaultReminderDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.importer = statement.NewImporter(s.parser)
	return s
}

// SetSearchIndex enables Algolia indexing and search.
func (s *FinanceService) SetSearchIndex(idx search.Index) {
	s.searchIndex = idx
}

// reqLog returns the request-scoped logger set by the RPC interceptor, or
// the service logger outside a request, tagged with the caller.
func (s *FinanceService) reqLog(ctx context.Context) *zerolog.Logger {
	l := logger.FromContext(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = s.log
	}
	if uid, ok := auth.GetUserID(ctx); ok {
		l = l.With().Str("user_id", uid).Logger()
	}
	return &l
}

// localNow is the current time in the service zone.
func (s *FinanceService) localNow() time.Time {
	return s.now().In(s.loc)
}

func (s *FinanceService) today() civil.Date {
	return civil.DateOf(s.localNow())
}

func (s *FinanceService) dateOrToday(d *civil.Date) (civil.Date, error) {
	if d == nil {
		return s.today(), nil
	}
	if !d.IsValid() {
		return civil.Date{}, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("invalid date %s", d))
	}
	return *d, nil
}

// listAllMovements pages through every movement matching filter.
func (s *FinanceService) listAllMovements(ctx context.Context, userID string, filter store.MovementFilter) ([]*model.Movement, error) {
	var all []*model.Movement
	var pageToken string
	for {
		movements, next, err := s.store.ListMovements(ctx, userID, filter, listBatchSize, pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, movements...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

// parseError maps quick-entry validation failures to InvalidArgument.
func parseError(err error) error {
	if errors.Is(err, quickentry.ErrValidation) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// cycleError maps a missing card configuration to FailedPrecondition.
func cycleError(err error) error {
	if errors.Is(err, billing.ErrMissingConfiguration) {
		return connect.NewError(connect.CodeFailedPrecondition,
			fmt.Errorf("complete the card configuration: %w", err))
	}
	return connect.NewError(connect.CodeInternal, err)
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}
