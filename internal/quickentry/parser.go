package quickentry

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction is the result of parsing one sentence. It is one of Expense,
// Income, Saving, CurrencyBuy or CurrencySell.
type Transaction interface {
	Kind() Kind
	Base() Entry
	isTransaction()
}

// Entry holds the fields every parsed transaction shares.
type Entry struct {
	// Description is the input with its numbers removed.
	Description string
	Date        civil.Date
}

// Base returns the shared fields.
func (e Entry) Base() Entry { return e }

func (Entry) isTransaction() {}

// Expense is money spent in local currency. Amount is invalid (null) when the
// sentence had no number.
type Expense struct {
	Entry
	Amount   decimal.NullDecimal
	Category string
}

func (Expense) Kind() Kind { return KindExpense }

// Income is money received in local currency.
type Income struct {
	Entry
	Amount   decimal.NullDecimal
	Category string
}

func (Income) Kind() Kind { return KindIncome }

// Saving is foreign currency put aside.
type Saving struct {
	Entry
	ForeignAmount decimal.Decimal
}

func (Saving) Kind() Kind { return KindSaving }

// CurrencyBuy is local currency exchanged for foreign currency.
type CurrencyBuy struct {
	Entry
	ForeignAmount decimal.Decimal
	LocalAmount   decimal.Decimal
}

func (CurrencyBuy) Kind() Kind { return KindCurrencyBuy }

// CurrencySell is foreign currency exchanged for local currency.
type CurrencySell struct {
	Entry
	ForeignAmount decimal.Decimal
	LocalAmount   decimal.Decimal
}

func (CurrencySell) Kind() Kind { return KindCurrencySell }

// Parser composes amount extraction and keyword classification. It holds no
// mutable state and is safe for concurrent use.
type Parser struct {
	classifier *KeywordClassifier
	splitter   CurrencySplitter
}

// Option configures a Parser.
type Option func(*Parser)

// WithClassifier replaces the default keyword classifier.
func WithClassifier(c *KeywordClassifier) Option {
	return func(p *Parser) {
		p.classifier = c
	}
}

// WithCurrencySplitter replaces the min/max currency leg heuristic.
func WithCurrencySplitter(s CurrencySplitter) Option {
	return func(p *Parser) {
		p.splitter = s
	}
}

// NewParser returns a parser with the default vocabulary unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		classifier: NewDefaultClassifier(),
		splitter:   MinMaxSplitter{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts a transaction from raw. It never fails: text without numbers or
// keywords degrades to an expense with a null amount in category Other. Callers
// must reject blank input with ValidateInput first.
func (p *Parser) Parse(raw string, today time.Time) Transaction {
	normalized := Normalize(raw)
	amounts := ExtractAmounts(raw)

	entry := Entry{
		Description: StripAmounts(raw),
		Date:        civil.DateOf(today),
	}

	switch p.classifier.Kind(normalized) {
	case KindCurrencyBuy:
		foreign, local := p.splitter.Split(amounts)
		return CurrencyBuy{Entry: entry, ForeignAmount: foreign, LocalAmount: local}
	case KindCurrencySell:
		foreign, local := p.splitter.Split(amounts)
		return CurrencySell{Entry: entry, ForeignAmount: foreign, LocalAmount: local}
	case KindSaving:
		return Saving{Entry: entry, ForeignAmount: lastOrZero(amounts)}
	case KindIncome:
		return Income{Entry: entry, Amount: lastOrNull(amounts), Category: p.classifier.Category(normalized)}
	default:
		return Expense{Entry: entry, Amount: lastOrNull(amounts), Category: p.classifier.Category(normalized)}
	}
}

// ValidateInput rejects text that is empty after trimming.
func ValidateInput(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	return nil
}

func lastOrNull(amounts []decimal.Decimal) decimal.NullDecimal {
	if len(amounts) == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(amounts[len(amounts)-1])
}

func lastOrZero(amounts []decimal.Decimal) decimal.Decimal {
	if len(amounts) == 0 {
		return decimal.Zero
	}
	return amounts[len(amounts)-1]
}
