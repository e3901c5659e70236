// Package cuentasv1 holds the request and response messages of the
// cuentas.v1.FinanceService RPC API. Messages travel as JSON: amounts are
// decimal strings and dates are "YYYY-MM-DD".
package cuentasv1

import (
	"cloud.google.com/go/civil"
	"github.com/castlemilk/cuentas/internal/model"
	"github.com/shopspring/decimal"
)

// ParsedEntry is the preview of one quick-entry sentence. Amount is set for
// expense and income; ForeignAmount for saving, currency_buy and
// currency_sell; LocalAmount for the two currency kinds.
type ParsedEntry struct {
	Kind          string              `json:"kind"`
	Description   string              `json:"description"`
	Date          civil.Date          `json:"date"`
	Amount        decimal.NullDecimal `json:"amount"`
	Category      string              `json:"category,omitempty"`
	ForeignAmount decimal.NullDecimal `json:"foreignAmount"`
	LocalAmount   decimal.NullDecimal `json:"localAmount"`
}

// BillingCycle is a card statement period.
type BillingCycle struct {
	ID          string     `json:"cycleId"`
	WindowStart civil.Date `json:"windowStart"`
	WindowEnd   civil.Date `json:"windowEnd"`
	DueDate     civil.Date `json:"dueDate"`
}

// PendingCycle totals the unliquidated purchases of one card cycle.
type PendingCycle struct {
	CardID   string          `json:"cardId"`
	CardName string          `json:"cardName"`
	CycleID  string          `json:"cycleId"`
	Total    decimal.Decimal `json:"total"`
	Count    int32           `json:"count"`
	DueDate  civil.Date      `json:"dueDate"`
	Closed   bool            `json:"closed"`
}

// MonthSummary is one row of the yearly summary.
type MonthSummary struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// CategoryTotal is one slice of a category breakdown. Share is the fraction
// of the overall total, in [0, 1].
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int32           `json:"count"`
	Share    float64         `json:"share"`
}

// DayTotal is one cell of the calendar heatmap.
type DayTotal struct {
	Date  civil.Date      `json:"date"`
	Total decimal.Decimal `json:"total"`
	Count int32           `json:"count"`
}

// Quick entry

type ParseEntryRequest struct {
	Text string `json:"text"`
}

type ParseEntryResponse struct {
	Entry ParsedEntry `json:"entry"`
}

type CreateEntryRequest struct {
	Text string `json:"text"`
}

type CreateEntryResponse struct {
	Entry    ParsedEntry     `json:"entry"`
	Movement *model.Movement `json:"movement,omitempty"`
	Saving   *model.Saving   `json:"saving,omitempty"`
}

// Movements

type CreateMovementRequest struct {
	Type        model.MovementType `json:"type"`
	Description string             `json:"description"`
	Amount      decimal.Decimal    `json:"amount"`
	Date        *civil.Date        `json:"date,omitempty"`
	Category    string             `json:"category"`
}

type CreateMovementResponse struct {
	Movement *model.Movement `json:"movement"`
}

type GetMovementRequest struct {
	ID string `json:"id"`
}

type GetMovementResponse struct {
	Movement *model.Movement `json:"movement"`
}

// UpdateMovementRequest changes only the fields that are set.
type UpdateMovementRequest struct {
	ID          string              `json:"id"`
	Type        *model.MovementType `json:"type,omitempty"`
	Description *string             `json:"description,omitempty"`
	Amount      *decimal.Decimal    `json:"amount,omitempty"`
	Date        *civil.Date         `json:"date,omitempty"`
	Category    *string             `json:"category,omitempty"`
}

type UpdateMovementResponse struct {
	Movement *model.Movement `json:"movement"`
}

type DeleteMovementRequest struct {
	ID string `json:"id"`
}

type DeleteMovementResponse struct{}

type ListMovementsRequest struct {
	Start     *civil.Date        `json:"start,omitempty"`
	End       *civil.Date        `json:"end,omitempty"`
	Type      model.MovementType `json:"type,omitempty"`
	Category  string             `json:"category,omitempty"`
	PageSize  int32              `json:"pageSize,omitempty"`
	PageToken string             `json:"pageToken,omitempty"`
}

type ListMovementsResponse struct {
	Movements     []*model.Movement `json:"movements"`
	NextPageToken string            `json:"nextPageToken,omitempty"`
}

type WatchMovementsRequest struct{}

type WatchMovementsResponse struct {
	Movements []*model.Movement `json:"movements"`
}

// Savings

type CreateSavingRequest struct {
	Operation     model.SavingOperation `json:"operation"`
	Description   string                `json:"description"`
	ForeignAmount decimal.Decimal       `json:"foreignAmount"`
	LocalAmount   decimal.Decimal       `json:"localAmount"`
	Currency      string                `json:"currency,omitempty"`
	Date          *civil.Date           `json:"date,omitempty"`
}

type CreateSavingResponse struct {
	Saving *model.Saving `json:"saving"`
}

type DeleteSavingRequest struct {
	ID string `json:"id"`
}

type DeleteSavingResponse struct{}

type ListSavingsRequest struct{}

type ListSavingsResponse struct {
	Savings []*model.Saving `json:"savings"`
}

type GetSavingsBalanceRequest struct{}

// GetSavingsBalanceResponse reports the foreign balance (deposits + buys -
// sells) and the net local currency spent on it (buys - sells).
type GetSavingsBalanceResponse struct {
	Currency       string          `json:"currency"`
	ForeignBalance decimal.Decimal `json:"foreignBalance"`
	LocalSpent     decimal.Decimal `json:"localSpent"`
}

// Payables

type CreatePayableRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDate     civil.Date      `json:"dueDate"`
}

type CreatePayableResponse struct {
	Payable *model.Payable `json:"payable"`
}

type ListPayablesRequest struct {
	IncludePaid bool `json:"includePaid,omitempty"`
}

type ListPayablesResponse struct {
	Payables []*model.Payable `json:"payables"`
}

type DeletePayableRequest struct {
	ID string `json:"id"`
}

type DeletePayableResponse struct{}

type MarkPayablePaidRequest struct {
	ID   string      `json:"id"`
	Date *civil.Date `json:"date,omitempty"`
}

type MarkPayablePaidResponse struct {
	Payable  *model.Payable  `json:"payable"`
	Movement *model.Movement `json:"movement"`
}

// Receivables

type CreateReceivableRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDate     civil.Date      `json:"dueDate"`
}

type CreateReceivableResponse struct {
	Receivable *model.Receivable `json:"receivable"`
}

type ListReceivablesRequest struct {
	IncludeCollected bool `json:"includeCollected,omitempty"`
}

type ListReceivablesResponse struct {
	Receivables []*model.Receivable `json:"receivables"`
}

type DeleteReceivableRequest struct {
	ID string `json:"id"`
}

type DeleteReceivableResponse struct{}

type MarkReceivableCollectedRequest struct {
	ID   string      `json:"id"`
	Date *civil.Date `json:"date,omitempty"`
}

type MarkReceivableCollectedResponse struct {
	Receivable *model.Receivable `json:"receivable"`
	Movement   *model.Movement   `json:"movement"`
}

// Cards

type CreateCardRequest struct {
	Name     string `json:"name"`
	CloseDay int    `json:"closeDay"`
	DueDay   int    `json:"dueDay"`
}

type CreateCardResponse struct {
	Card *model.Card `json:"card"`
}

// UpdateCardRequest changes only the fields that are set. Existing purchases
// keep the cycle they were assigned.
type UpdateCardRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name,omitempty"`
	CloseDay *int    `json:"closeDay,omitempty"`
	DueDay   *int    `json:"dueDay,omitempty"`
}

type UpdateCardResponse struct {
	Card *model.Card `json:"card"`
}

type ListCardsRequest struct{}

type ListCardsResponse struct {
	Cards []*model.Card `json:"cards"`
}

type DeleteCardRequest struct {
	ID string `json:"id"`
}

type DeleteCardResponse struct{}

type ComputeCycleRequest struct {
	PurchaseDate civil.Date `json:"purchaseDate"`
	CloseDay     int        `json:"closeDay"`
	DueDay       int        `json:"dueDay"`
}

type ComputeCycleResponse struct {
	Cycle BillingCycle `json:"cycle"`
}

type CreateCardPurchaseRequest struct {
	CardID      string          `json:"cardId"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	Date        *civil.Date     `json:"date,omitempty"`
}

type CreateCardPurchaseResponse struct {
	Purchase *model.CardPurchase `json:"purchase"`
	Cycle    BillingCycle        `json:"cycle"`
}

type ListCardPurchasesRequest struct {
	CardID            string `json:"cardId,omitempty"`
	CycleID           string `json:"cycleId,omitempty"`
	IncludeLiquidated bool   `json:"includeLiquidated,omitempty"`
}

type ListCardPurchasesResponse struct {
	Purchases []*model.CardPurchase `json:"purchases"`
	Total     decimal.Decimal       `json:"total"`
}

type DeleteCardPurchaseRequest struct {
	ID string `json:"id"`
}

type DeleteCardPurchaseResponse struct{}

type ListPendingCyclesRequest struct{}

type ListPendingCyclesResponse struct {
	Cycles []PendingCycle `json:"cycles"`
}

type LiquidateCycleRequest struct {
	CardID  string      `json:"cardId"`
	CycleID string      `json:"cycleId"`
	Date    *civil.Date `json:"date,omitempty"`
}

type LiquidateCycleResponse struct {
	Movement   *model.Movement `json:"movement"`
	Liquidated int32           `json:"liquidated"`
}

// Reports

type GetMonthlySummaryRequest struct {
	Year int `json:"year"`
}

type GetMonthlySummaryResponse struct {
	Year         int             `json:"year"`
	Months       []MonthSummary  `json:"months"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

type GetCategoryBreakdownRequest struct {
	Start *civil.Date        `json:"start,omitempty"`
	End   *civil.Date        `json:"end,omitempty"`
	Type  model.MovementType `json:"type,omitempty"`
}

type GetCategoryBreakdownResponse struct {
	Categories []CategoryTotal `json:"categories"`
	Total      decimal.Decimal `json:"total"`
}

type GetCalendarHeatmapRequest struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Type  model.MovementType `json:"type,omitempty"`
}

type GetCalendarHeatmapResponse struct {
	Days []DayTotal      `json:"days"`
	Max  decimal.Decimal `json:"max"`
}

type QueryMovementsRequest struct {
	Text      string             `json:"text,omitempty"`
	Start     *civil.Date        `json:"start,omitempty"`
	End       *civil.Date        `json:"end,omitempty"`
	MinAmount *decimal.Decimal   `json:"minAmount,omitempty"`
	MaxAmount *decimal.Decimal   `json:"maxAmount,omitempty"`
	Category  string             `json:"category,omitempty"`
	Type      model.MovementType `json:"type,omitempty"`
}

type QueryMovementsResponse struct {
	Movements []*model.Movement `json:"movements"`
	Total     decimal.Decimal   `json:"total"`
	Count     int32             `json:"count"`
}

// Integrations

type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}

type RegisterPushTokenResponse struct {
	Preferences *model.NotificationPreferences `json:"preferences"`
}

type UnregisterPushTokenRequest struct{}

type UnregisterPushTokenResponse struct{}

type UpdateNotificationPreferencesRequest struct {
	DueReminders *bool `json:"dueReminders,omitempty"`
}

type UpdateNotificationPreferencesResponse struct {
	Preferences *model.NotificationPreferences `json:"preferences"`
}

type SendDueRemindersRequest struct{}

type SendDueRemindersResponse struct {
	UsersProcessed int32 `json:"usersProcessed"`
	RemindersSent  int32 `json:"remindersSent"`
}

type ExportMovementsRequest struct {
	Start *civil.Date `json:"start,omitempty"`
	End   *civil.Date `json:"end,omitempty"`
}

type ExportMovementsResponse struct {
	CSV        []byte `json:"csv"`
	ObjectName string `json:"objectName,omitempty"`
	Count      int32  `json:"count"`
}

type ImportStatementRequest struct {
	PDF []byte `json:"pdf"`
}

type ImportStatementResponse struct {
	Entries []ParsedEntry `json:"entries"`
	Skipped int32         `json:"skipped"`
}
