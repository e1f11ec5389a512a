package cli

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders d in the display currency, e.g. "$1,000.00" or
// "-$50.00". Digits beyond the currency's minor unit are rounded away.
// Unknown currency codes fall back to a plain two-decimal number.
func formatAmount(d decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return d.StringFixed(2)
	}

	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(d.Mul(factor).Round(0).IntPart(), cur.Code).Display()
}

func (a *App) amount(d decimal.Decimal) string {
	return formatAmount(d, a.currency)
}
