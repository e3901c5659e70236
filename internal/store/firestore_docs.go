package store

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/shopspring/decimal"
)

// Firestore cannot encode decimal.Decimal or civil.Date, so each record is
// stored through a document struct. Amounts keep the exact string plus integer
// cents for range queries; dates are UTC midnight timestamps.
// NOTE: field names are the Go field names, so queries use PascalCase.

type movementDoc struct {
	ID          string
	UserID      string
	Type        string
	Description string
	Amount      string
	AmountCents int64
	Date        time.Time
	Category    string
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type savingDoc struct {
	ID            string
	UserID        string
	Operation     string
	Description   string
	ForeignAmount string
	LocalAmount   string
	Currency      string
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type payableDoc struct {
	ID          string
	UserID      string
	Description string
	Amount      string
	AmountCents int64
	Category    string
	DueDate     time.Time
	Paid        bool
	PaidAt      *time.Time
	MovementID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type receivableDoc struct {
	ID          string
	UserID      string
	Description string
	Amount      string
	AmountCents int64
	Category    string
	DueDate     time.Time
	Collected   bool
	CollectedAt *time.Time
	MovementID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type cardDoc struct {
	ID        string
	UserID    string
	Name      string
	CloseDay  int
	DueDay    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type cardPurchaseDoc struct {
	ID           string
	UserID       string
	CardID       string
	Description  string
	Amount       string
	AmountCents  int64
	Category     string
	Date         time.Time
	CycleID      string
	DueDate      time.Time
	Liquidated   bool
	LiquidatedAt *time.Time
	MovementID   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type preferencesDoc struct {
	UserID       string
	PushEnabled  bool
	FCMToken     string
	DueReminders bool
	UpdatedAt    time.Time
}

func dateToTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}

func timeToDate(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}

func cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

func parseAmount(s string, fallbackCents int64) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.New(fallbackCents, -2)
	}
	return d
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toMovementDoc(m *model.Movement) *movementDoc {
	return &movementDoc{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        string(m.Type),
		Description: m.Description,
		Amount:      m.Amount.String(),
		AmountCents: cents(m.Amount),
		Date:        dateToTime(m.Date),
		Category:    m.Category,
		Source:      string(m.Source),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (d *movementDoc) toModel() *model.Movement {
	return &model.Movement{
		ID:          d.ID,
		UserID:      d.UserID,
		Type:        model.MovementType(d.Type),
		Description: d.Description,
		Amount:      parseAmount(d.Amount, d.AmountCents),
		Date:        timeToDate(d.Date),
		Category:    d.Category,
		Source:      model.Source(d.Source),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toSavingDoc(s *model.Saving) *savingDoc {
	return &savingDoc{
		ID:            s.ID,
		UserID:        s.UserID,
		Operation:     string(s.Operation),
		Description:   s.Description,
		ForeignAmount: s.ForeignAmount.String(),
		LocalAmount:   s.LocalAmount.String(),
		Currency:      s.Currency,
		Date:          dateToTime(s.Date),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (d *savingDoc) toModel() *model.Saving {
	return &model.Saving{
		ID:            d.ID,
		UserID:        d.UserID,
		Operation:     model.SavingOperation(d.Operation),
		Description:   d.Description,
		ForeignAmount: parseDecimal(d.ForeignAmount),
		LocalAmount:   parseDecimal(d.LocalAmount),
		Currency:      d.Currency,
		Date:          timeToDate(d.Date),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toPayableDoc(p *model.Payable) *payableDoc {
	return &payableDoc{
		ID:          p.ID,
		UserID:      p.UserID,
		Description: p.Description,
		Amount:      p.Amount.String(),
		AmountCents: cents(p.Amount),
		Category:    p.Category,
		DueDate:     dateToTime(p.DueDate),
		Paid:        p.Paid,
		PaidAt:      p.PaidAt,
		MovementID:  p.MovementID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d *payableDoc) toModel() *model.Payable {
	return &model.Payable{
		ID:          d.ID,
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      parseAmount(d.Amount, d.AmountCents),
		Category:    d.Category,
		DueDate:     timeToDate(d.DueDate),
		Paid:        d.Paid,
		PaidAt:      d.PaidAt,
		MovementID:  d.MovementID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toReceivableDoc(r *model.Receivable) *receivableDoc {
	return &receivableDoc{
		ID:          r.ID,
		UserID:      r.UserID,
		Description: r.Description,
		Amount:      r.Amount.String(),
		AmountCents: cents(r.Amount),
		Category:    r.Category,
		DueDate:     dateToTime(r.DueDate),
		Collected:   r.Collected,
		CollectedAt: r.CollectedAt,
		MovementID:  r.MovementID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (d *receivableDoc) toModel() *model.Receivable {
	return &model.Receivable{
		ID:          d.ID,
		UserID:      d.UserID,
		Description: d.Description,
		Amount:      parseAmount(d.Amount, d.AmountCents),
		Category:    d.Category,
		DueDate:     timeToDate(d.DueDate),
		Collected:   d.Collected,
		CollectedAt: d.CollectedAt,
		MovementID:  d.MovementID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toCardDoc(c *model.Card) *cardDoc {
	return &cardDoc{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CloseDay:  c.CloseDay,
		DueDay:    c.DueDay,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (d *cardDoc) toModel() *model.Card {
	return &model.Card{
		ID:        d.ID,
		UserID:    d.UserID,
		Name:      d.Name,
		CloseDay:  d.CloseDay,
		DueDay:    d.DueDay,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toCardPurchaseDoc(p *model.CardPurchase) *cardPurchaseDoc {
	return &cardPurchaseDoc{
		ID:           p.ID,
		UserID:       p.UserID,
		CardID:       p.CardID,
		Description:  p.Description,
		Amount:       p.Amount.String(),
		AmountCents:  cents(p.Amount),
		Category:     p.Category,
		Date:         dateToTime(p.Date),
		CycleID:      p.CycleID,
		DueDate:      dateToTime(p.DueDate),
		Liquidated:   p.Liquidated,
		LiquidatedAt: p.LiquidatedAt,
		MovementID:   p.MovementID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d *cardPurchaseDoc) toModel() *model.CardPurchase {
	return &model.CardPurchase{
		ID:           d.ID,
		UserID:       d.UserID,
		CardID:       d.CardID,
		Description:  d.Description,
		Amount:       parseAmount(d.Amount, d.AmountCents),
		Category:     d.Category,
		Date:         timeToDate(d.Date),
		CycleID:      d.CycleID,
		DueDate:      timeToDate(d.DueDate),
		Liquidated:   d.Liquidated,
		LiquidatedAt: d.LiquidatedAt,
		MovementID:   d.MovementID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toPreferencesDoc(p *model.NotificationPreferences) *preferencesDoc {
	return &preferencesDoc{
		UserID:       p.UserID,
		PushEnabled:  p.PushEnabled,
		FCMToken:     p.FCMToken,
		DueReminders: p.DueReminders,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d *preferencesDoc) toModel() *model.NotificationPreferences {
	return &model.NotificationPreferences{
		UserID:       d.UserID,
		PushEnabled:  d.PushEnabled,
		FCMToken:     d.FCMToken,
		DueReminders: d.DueReminders,
		UpdatedAt:    d.UpdatedAt,
	}
}
