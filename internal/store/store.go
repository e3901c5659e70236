package store

import (
	"context"
	"encoding/base64"
	"errors"

	"cloud.google.com/go/civil"
	"github.com/castlemilk/cuentas/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// MovementFilter narrows ListMovements. Zero values match everything; date
// bounds are inclusive.
type MovementFilter struct {
	Start    *civil.Date
	End      *civil.Date
	Type     model.MovementType
	Category string
}

// Matches reports whether m passes the filter.
func (f MovementFilter) Matches(m *model.Movement) bool {
	if f.Start != nil && m.Date.Before(*f.Start) {
		return false
	}
	if f.End != nil && m.Date.After(*f.End) {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	return true
}

// PurchaseFilter narrows ListCardPurchases.
type PurchaseFilter struct {
	CardID            string
	CycleID           string
	IncludeLiquidated bool
}

// Matches reports whether p passes the filter.
func (f PurchaseFilter) Matches(p *model.CardPurchase) bool {
	if f.CardID != "" && p.CardID != f.CardID {
		return false
	}
	if f.CycleID != "" && p.CycleID != f.CycleID {
		return false
	}
	if !f.IncludeLiquidated && p.Liquidated {
		return false
	}
	return true
}

// Store defines the interface for all database operations used by the service.
// Implementations assign IDs to records created with an empty ID. No method
// spans more than one record atomically.
type Store interface {
	// Movement operations
	CreateMovement(ctx context.Context, movement *model.Movement) error
	GetMovement(ctx context.Context, movementID string) (*model.Movement, error)
	UpdateMovement(ctx context.Context, movement *model.Movement) error
	DeleteMovement(ctx context.Context, movementID string) error
	ListMovements(ctx context.Context, userID string, filter MovementFilter, pageSize int32, pageToken string) ([]*model.Movement, string, error)
	// WatchMovements emits the user's full movement list once at start and
	// again after every change, until ctx is done. The channel is then closed.
	WatchMovements(ctx context.Context, userID string) (<-chan []*model.Movement, error)

	// Saving operations
	CreateSaving(ctx context.Context, saving *model.Saving) error
	GetSaving(ctx context.Context, savingID string) (*model.Saving, error)
	DeleteSaving(ctx context.Context, savingID string) error
	ListSavings(ctx context.Context, userID string) ([]*model.Saving, error)

	// Payable operations
	CreatePayable(ctx context.Context, payable *model.Payable) error
	GetPayable(ctx context.Context, payableID string) (*model.Payable, error)
	UpdatePayable(ctx context.Context, payable *model.Payable) error
	DeletePayable(ctx context.Context, payableID string) error
	ListPayables(ctx context.Context, userID string, includePaid bool) ([]*model.Payable, error)

	// Receivable operations
	CreateReceivable(ctx context.Context, receivable *model.Receivable) error
	GetReceivable(ctx context.Context, receivableID string) (*model.Receivable, error)
	UpdateReceivable(ctx context.Context, receivable *model.Receivable) error
	DeleteReceivable(ctx context.Context, receivableID string) error
	ListReceivables(ctx context.Context, userID string, includeCollected bool) ([]*model.Receivable, error)

	// Card operations
	CreateCard(ctx context.Context, card *model.Card) error
	GetCard(ctx context.Context, cardID string) (*model.Card, error)
	UpdateCard(ctx context.Context, card *model.Card) error
	DeleteCard(ctx context.Context, cardID string) error
	ListCards(ctx context.Context, userID string) ([]*model.Card, error)

	// Card purchase operations
	CreateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error
	GetCardPurchase(ctx context.Context, purchaseID string) (*model.CardPurchase, error)
	UpdateCardPurchase(ctx context.Context, purchase *model.CardPurchase) error
	DeleteCardPurchase(ctx context.Context, purchaseID string) error
	ListCardPurchases(ctx context.Context, userID string, filter PurchaseFilter) ([]*model.CardPurchase, error)

	// Notification preference operations
	GetNotificationPreferences(ctx context.Context, userID string) (*model.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, prefs *model.NotificationPreferences) error
	ListPushSubscribers(ctx context.Context) ([]*model.NotificationPreferences, error)
}

// EncodePageToken encodes a document ID into a page token.
func EncodePageToken(docID string) string {
	if docID == "" {
		return ""
	}
	return base64.URLEncoding.EncodeToString([]byte(docID))
}

// DecodePageToken decodes a page token back to a document ID.
func DecodePageToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func normalizePageSize(pageSize int32) int32 {
	if pageSize <= 0 {
		return 100
	}
	if pageSize > 1000 {
		return 1000
	}
	return pageSize
}
