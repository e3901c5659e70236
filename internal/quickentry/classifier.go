package quickentry

import (
	"regexp"
)

// Kind is the type of financial entry a sentence describes.
type Kind string

const (
	KindExpense      Kind = "expense"
	KindIncome       Kind = "income"
	KindSaving       Kind = "saving"
	KindCurrencyBuy  Kind = "currency_buy"
	KindCurrencySell Kind = "currency_sell"
)

// KeywordSet holds the patterns evaluated against normalized text. Every pattern
// is matched against lower-cased, accent-folded input.
type KeywordSet struct {
	ForeignCurrency *regexp.Regexp
	Expense         *regexp.Regexp
	Income          *regexp.Regexp
	// StrongIncome breaks the tie when both expense and income verbs appear.
	StrongIncome *regexp.Regexp
	Saving       *regexp.Regexp
	Buy          *regexp.Regexp
	Sell         *regexp.Regexp
}

// DefaultKeywordSet returns the Spanish (rioplatense) vocabulary the app ships with.
func DefaultKeywordSet() KeywordSet {
	return KeywordSet{
		ForeignCurrency: regexp.MustCompile(`\b(?:usd|dolar|dolares|dolaritos|dls)\b|\bus\$|\bu\$s`),
		Expense: regexp.MustCompile(
			`\b(?:pague|pagar|pago|pagamos|gaste|gastar|gasto|gastamos|compre|comprar|compra|compramos|abone|abonar|invertir|inverti|invertimos)\b`),
		Income: regexp.MustCompile(
			`\b(?:cobre|cobrar|cobro|cobramos|me pagaron|nos pagaron|me depositaron|deposite|depositaron|deposito|factur(?:e|o|ar|amos)|ingreso|ingresaron|recibi|me transfirieron)\b`),
		StrongIncome: regexp.MustCompile(`\b(?:cobre|cobramos|me pagaron|nos pagaron|me depositaron|me transfirieron)\b`),
		Saving: regexp.MustCompile(
			`\b(?:ahorre|ahorrar|ahorramos|ahorro|guarde|guardamos)\b|\b(?:separe|aparte) (?:plata|algo|dinero)\b`),
		Buy: regexp.MustCompile(
			`\b(?:compre|comprar|compra|compramos)\b|\b(?:pase|cambie|converti)\b.*\ba (?:dolares|usd|u\$s)`),
		Sell: regexp.MustCompile(
			`\b(?:vendi|vender|vendo|vendimos|venta)\b|\b(?:pase|cambie|converti)\b.*\ba pesos\b`),
	}
}

// Signals are the independent flags computed for a sentence before a kind is
// chosen.
type Signals struct {
	ForeignCurrency bool
	Expense         bool
	Income          bool
	StrongIncome    bool
	Saving          bool
	CurrencyBuy     bool
	CurrencySell    bool
}

// Kind resolves the flags into a single kind. Currency operations win over
// savings, savings over income/expense, and anything undecided is an expense.
func (s Signals) Kind() Kind {
	switch {
	case s.CurrencyBuy:
		return KindCurrencyBuy
	case s.CurrencySell:
		return KindCurrencySell
	case s.Saving && s.ForeignCurrency:
		return KindSaving
	case s.Income && !s.Expense:
		return KindIncome
	case s.Income && s.Expense && s.StrongIncome:
		return KindIncome
	default:
		return KindExpense
	}
}

// KeywordClassifier decides the kind and category of normalized text.
type KeywordClassifier struct {
	keywords   KeywordSet
	categories CategoryTable
}

// NewKeywordClassifier builds a classifier from an explicit vocabulary and
// category table.
func NewKeywordClassifier(keywords KeywordSet, categories CategoryTable) *KeywordClassifier {
	return &KeywordClassifier{
		keywords:   keywords,
		categories: categories,
	}
}

// NewDefaultClassifier builds a classifier with the default vocabulary and table.
func NewDefaultClassifier() *KeywordClassifier {
	return NewKeywordClassifier(DefaultKeywordSet(), DefaultCategoryTable())
}

// Signals evaluates every keyword pattern against normalized text.
func (c *KeywordClassifier) Signals(normalized string) Signals {
	k := c.keywords
	foreign := matches(k.ForeignCurrency, normalized)
	return Signals{
		ForeignCurrency: foreign,
		Expense:         matches(k.Expense, normalized),
		Income:          matches(k.Income, normalized),
		StrongIncome:    matches(k.StrongIncome, normalized),
		Saving:          matches(k.Saving, normalized),
		CurrencyBuy:     foreign && matches(k.Buy, normalized),
		CurrencySell:    foreign && matches(k.Sell, normalized),
	}
}

// Kind is shorthand for Signals(normalized).Kind().
func (c *KeywordClassifier) Kind(normalized string) Kind {
	return c.Signals(normalized).Kind()
}

// Category returns the first matching category, or CategoryOther.
func (c *KeywordClassifier) Category(normalized string) string {
	return c.categories.Match(normalized)
}

func matches(re *regexp.Regexp, text string) bool {
	return re != nil && re.MatchString(text)
}
