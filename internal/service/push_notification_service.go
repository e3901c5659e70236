package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
	v1 "github.com/castlemilk/cuentas/api/cuentas/v1"
	"github.com/castlemilk/cuentas/internal/auth"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/castlemilk/cuentas/internal/notify"
)

// SetPusher sets the push notification sender.
func (s *FinanceService) SetPusher(p notify.Pusher) {
	s.pusher = p
}

// RegisterPushToken registers an FCM token for push notifications.
func (s *FinanceService) RegisterPushToken(ctx context.Context, req *connect.Request[v1.RegisterPushTokenRequest]) (*connect.Response[v1.RegisterPushTokenResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(req.Msg.Token)
	if token == "" {
		return nil, invalidArgument("token is required")
	}

	prefs, err := s.store.GetNotificationPreferences(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("get notification preferences", err)
	}

	prefs.PushEnabled = true
	prefs.FCMToken = token
	prefs.UpdatedAt = s.now()

	if err := s.store.UpdateNotificationPreferences(ctx, prefs); err != nil {
		return nil, auth.WrapStoreError("update notification preferences", err)
	}

	s.reqLog(ctx).Info().Msg("registered push token")

	return connect.NewResponse(&v1.RegisterPushTokenResponse{Preferences: prefs}), nil
}

// UnregisterPushToken removes the FCM token and disables push notifications.
func (s *FinanceService) UnregisterPushToken(ctx context.Context, req *connect.Request[v1.UnregisterPushTokenRequest]) (*connect.Response[v1.UnregisterPushTokenResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.store.GetNotificationPreferences(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("get notification preferences", err)
	}
	if !prefs.PushEnabled && prefs.FCMToken == "" {
		return connect.NewResponse(&v1.UnregisterPushTokenResponse{}), nil
	}

	prefs.PushEnabled = false
	prefs.FCMToken = ""
	prefs.UpdatedAt = s.now()

	if err := s.store.UpdateNotificationPreferences(ctx, prefs); err != nil {
		return nil, auth.WrapStoreError("update notification preferences", err)
	}

	s.reqLog(ctx).Info().Msg("unregistered push token")

	return connect.NewResponse(&v1.UnregisterPushTokenResponse{}), nil
}

// UpdateNotificationPreferences changes the fields set on the request.
func (s *FinanceService) UpdateNotificationPreferences(ctx context.Context, req *connect.Request[v1.UpdateNotificationPreferencesRequest]) (*connect.Response[v1.UpdateNotificationPreferencesResponse], error) {
	claims, err := auth.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.store.GetNotificationPreferences(ctx, claims.UID)
	if err != nil {
		return nil, auth.WrapStoreError("get notification preferences", err)
	}
	if req.Msg.DueReminders != nil {
		prefs.DueReminders = *req.Msg.DueReminders
	}
	prefs.UpdatedAt = s.now()

	if err := s.store.UpdateNotificationPreferences(ctx, prefs); err != nil {
		return nil, auth.WrapStoreError("update notification preferences", err)
	}

	return connect.NewResponse(&v1.UpdateNotificationPreferencesResponse{Preferences: prefs}), nil
}

// sendPush sends a notification to the user's registered device.
// This is fire-and-forget: errors are logged but never returned.
func (s *FinanceService) sendPush(ctx context.Context, prefs *model.NotificationPreferences, msg notify.Message) bool {
	if s.pusher == nil || !prefs.PushEnabled || prefs.FCMToken == "" {
		return false
	}

	msg.Token = prefs.FCMToken
	if err := s.pusher.Push(ctx, msg); err != nil {
		s.log.Warn().Err(err).Str("user_id", prefs.UserID).Msg("failed to send push")
		return false
	}
	return true
}
