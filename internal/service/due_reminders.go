package service

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/notify"
)

// SendDueReminders pushes a reminder for every pending card cycle and unpaid
// payable falling due within the reminder window.
//
// Authentication: either a valid user token, which limits the run to that
// user, or an X-Scheduler-Secret header matching the configured secret,
// which runs it for every push subscriber.
func (s *FinanceService) SendDueReminders(ctx context.Context, req *connect.Request[v1.SendDueRemindersRequest]) (*connect.Response[v1.SendDueRemindersResponse], error) {
	claims, hasAuth := auth.GetUserClaims(ctx)
	if !hasAuth {
		provided := req.Header().Get("X-Scheduler-Secret")
		if s.schedulerSecret == "" || provided != s.schedulerSecret {
			return nil, connect.NewError(connect.CodeUnauthenticated,
				fmt.Errorf("missing or invalid authentication: provide a valid auth token or X-Scheduler-Secret header"))
		}
		s.log.Info().Msg("due reminders authenticated via scheduler secret")
	}

	var subscribers []*model.NotificationPreferences
	if hasAuth {
		prefs, err := s.store.GetNotificationPreferences(ctx, claims.UID)
		if err != nil {
			return nil, auth.WrapStoreError("get notification preferences", err)
		}
		subscribers = append(subscribers, prefs)
	} else {
		all, err := s.store.ListPushSubscribers(ctx)
		if err != nil {
			return nil, auth.WrapStoreError("list push subscribers", err)
		}
		subscribers = all
	}

	today := s.today()
	horizon := today.AddDays(s.reminderDays)

	var usersProcessed, remindersSent int32
	for _, prefs := range subscribers {
		if !prefs.DueReminders || !prefs.PushEnabled || prefs.FCMToken == "" {
			continue
		}
		sent, err := s.remindUser(ctx, prefs, today, horizon)
		if err != nil {
			// One user's failure must not stop the run for the rest.
			s.log.Error().Err(err).Str("user_id", prefs.UserID).Msg("due reminders failed for user")
			continue
		}
		usersProcessed++
		remindersSent += sent
	}

	s.log.Info().
		Int32("users_processed", usersProcessed).
		Int32("reminders_sent", remindersSent).
		Msg("due reminders done")

	return connect.NewResponse(&v1.SendDueRemindersResponse{
		UsersProcessed: usersProcessed,
		RemindersSent:  remindersSent,
	}), nil
}

func (s *FinanceService) remindUser(ctx context.Context, prefs *model.NotificationPreferences, today, horizon civil.Date) (int32, error) {
	var sent int32

	cycles, err := s.pendingCyclesFor(ctx, prefs.UserID)
	if err != nil {
		return 0, err
	}
	for _, c := range cycles {
		if !dueWithin(c.DueDate, today, horizon) {
			continue
		}
		msg := notify.Message{
			Title:     fmt.Sprintf("Vence %s", c.CardName),
			Body:      fmt.Sprintf("Resumen %s: %s el %s", c.CycleID, c.Total.StringFixed(2), c.DueDate),
			ActionURL: "/cards",
			Data:      map[string]string{"cardId": c.CardID, "cycleId": c.CycleID},
		}
		if s.sendPush(ctx, prefs, msg) {
			sent++
		}
	}

	payables, err := s.store.ListPayables(ctx, prefs.UserID, false)
	if err != nil {
		return sent, auth.WrapStoreError("list payables", err)
	}
	for _, p := range payables {
		if !dueWithin(p.DueDate, today, horizon) {
			continue
		}
		msg := notify.Message{
			Title:     fmt.Sprintf("Vence %s", p.Description),
			Body:      fmt.Sprintf("%s el %s", p.Amount.StringFixed(2), p.DueDate),
			ActionURL: "/payables",
			Data:      map[string]string{"payableId": p.ID},
		}
		if s.sendPush(ctx, prefs, msg) {
			sent++
		}
	}
	return sent, nil
}

// dueWithin reports whether due falls in [today, horizon].
func dueWithin(due, today, horizon civil.Date) bool {
	return !due.Before(today) && !due.After(horizon)
}
