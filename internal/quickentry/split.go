package quickentry

import "github.com/shopspring/decimal"

// CurrencySplitter assigns the numbers of a currency buy/sell sentence to the
// foreign-currency leg and the local-currency leg.
type CurrencySplitter interface {
	Split(amounts []decimal.Decimal) (foreign, local decimal.Decimal)
}

// MinMaxSplitter assumes foreign-currency figures are always smaller than local
// ones, which holds for USD against ARS. With a single number only the local leg
// is known and the foreign leg is zero.
type MinMaxSplitter struct{}

// Split implements CurrencySplitter.
func (MinMaxSplitter) Split(amounts []decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	switch len(amounts) {
	case 0:
		return decimal.Zero, decimal.Zero
	case 1:
		return decimal.Zero, amounts[0]
	}
	return decimal.Min(amounts[0], amounts[1:]...), decimal.Max(amounts[0], amounts[1:]...)
}
