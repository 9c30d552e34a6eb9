// AngelaMos | 2026
// money.go

package core

import (
	"github.com/shopspring/decimal"
)

// RoundMoney rounds a rupee amount to the two places the NUMERIC(12,2)
// columns keep, so a created resource reads back the way it was returned.
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// RoundMoneyPtr is RoundMoney for optional fields.
func RoundMoneyPtr(amount *float64) *float64 {
	if amount == nil {
		return nil
	}
	rounded := RoundMoney(*amount)
	return &rounded
}
