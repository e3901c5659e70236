// Package notify delivers push notifications through Firebase Cloud Messaging.
package notify

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// ErrNoToken is returned when a message has no device token to go to.
var ErrNoToken = errors.New("no device token")

// Message is one notification for one device.
type Message struct {
	Token     string
	Title     string
	Body      string
	ActionURL string
	Data      map[string]string
}

// Pusher sends a single notification.
type Pusher interface {
	Push(ctx context.Context, msg Message) error
}

// messageSender is the part of *messaging.Client the pusher uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMPusher sends notifications with a Firebase messaging client, retrying
// transient FCM failures.
type FCMPusher struct {
	client    messageSender
	retry     RetryConfig
	retryable func(error) bool
}

// NewFCMPusher wraps a Firebase messaging client.
func NewFCMPusher(client *messaging.Client) *FCMPusher {
	return &FCMPusher{client: client, retry: DefaultRetryConfig, retryable: isTransient}
}

// Push sends msg to its device token.
func (p *FCMPusher) Push(ctx context.Context, msg Message) error {
	if msg.Token == "" {
		return ErrNoToken
	}
	m := buildMessage(msg)
	err := withRetry(ctx, p.retry, p.retryable, func(ctx context.Context) error {
		_, err := p.client.Send(ctx, m)
		return err
	})
	if err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}

func buildMessage(msg Message) *messaging.Message {
	m := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
	if msg.ActionURL != "" {
		m.Webpush = &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{
				Link: msg.ActionURL,
			},
		}
	}
	return m
}
