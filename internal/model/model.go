// Package model holds the records the service persists for each user.
package model

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// MovementType is the direction of a local-currency movement.
type MovementType string

const (
	MovementExpense MovementType = "expense"
	MovementIncome  MovementType = "income"
)

// Valid reports whether t is a known movement type.
func (t MovementType) Valid() bool {
	return t == MovementExpense || t == MovementIncome
}

// Source records which flow created a movement.
type Source string

const (
	SourceManual          Source = "manual"
	SourceQuickEntry      Source = "quick_entry"
	SourcePayable         Source = "payable"
	SourceReceivable      Source = "receivable"
	SourceCardLiquidation Source = "card_liquidation"
)

// Movement is an expense or income in local currency.
type Movement struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Type        MovementType    `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        civil.Date      `json:"date"`
	Category    string          `json:"category"`
	Source      Source          `json:"source"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Signed returns the amount with expenses negated.
func (m *Movement) Signed() decimal.Decimal {
	if m.Type == MovementExpense {
		return m.Amount.Neg()
	}
	return m.Amount
}

// SavingOperation is the kind of foreign-currency ledger entry.
type SavingOperation string

const (
	SavingDeposit SavingOperation = "deposit"
	SavingBuy     SavingOperation = "buy"
	SavingSell    SavingOperation = "sell"
)

// Valid reports whether o is a known operation.
func (o SavingOperation) Valid() bool {
	switch o {
	case SavingDeposit, SavingBuy, SavingSell:
		return true
	}
	return false
}

// DefaultCurrency is the foreign currency the ledger tracks unless told otherwise.
const DefaultCurrency = "USD"

// Saving is one entry in the foreign-currency ledger. A buy or sell carries
// both legs; a deposit has a zero LocalAmount.
type Saving struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Operation     SavingOperation `json:"operation"`
	Description   string          `json:"description"`
	ForeignAmount decimal.Decimal `json:"foreignAmount"`
	LocalAmount   decimal.Decimal `json:"localAmount"`
	Currency      string          `json:"currency"`
	Date          civil.Date      `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// Payable is a bill the user still has to pay.
type Payable struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDate     civil.Date      `json:"dueDate"`
	Paid        bool            `json:"paid"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`
	MovementID  string          `json:"movementId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Receivable is money the user expects to collect.
type Receivable struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDate     civil.Date      `json:"dueDate"`
	Collected   bool            `json:"collected"`
	CollectedAt *time.Time      `json:"collectedAt,omitempty"`
	MovementID  string          `json:"movementId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Card is a credit card. A zero CloseDay or DueDay means it is not configured
// yet and purchases cannot be assigned to a cycle.
type Card struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	CloseDay  int       `json:"closeDay"`
	DueDay    int       `json:"dueDay"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Configured reports whether both days are set.
func (c *Card) Configured() bool {
	return c.CloseDay != 0 && c.DueDay != 0
}

// CardPurchase is a purchase charged to a card. CycleID and DueDate are fixed
// when the purchase is recorded.
type CardPurchase struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	CardID       string          `json:"cardId"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Date         civil.Date      `json:"date"`
	CycleID      string          `json:"cycleId"`
	DueDate      civil.Date      `json:"dueDate"`
	Liquidated   bool            `json:"liquidated"`
	LiquidatedAt *time.Time      `json:"liquidatedAt,omitempty"`
	MovementID   string          `json:"movementId,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// NotificationPreferences is keyed by user.
type NotificationPreferences struct {
	UserID       string    `json:"userId"`
	PushEnabled  bool      `json:"pushEnabled"`
	FCMToken     string    `json:"fcmToken,omitempty"`
	DueReminders bool      `json:"dueReminders"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DefaultNotificationPreferences is what a user who never registered a device gets.
func DefaultNotificationPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:       userID,
		DueReminders: true,
	}
}
