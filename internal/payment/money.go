// AngelaMos | 2026
// money.go

package payment

import (
	"github.com/shopspring/decimal"

	"github.com/dheerghayush/storefront-api/internal/core"
)

// MaxMinorUnits is the largest amount, in paise, an order total column can
// hold (NUMERIC(12,2)).
const MaxMinorUnits int64 = 999_999_999_999

var (
	hundred  = decimal.NewFromInt(100)
	maxMinor = decimal.NewFromInt(MaxMinorUnits)
)

// ToMinorUnits converts a rupee amount to paise, dropping any fraction of a
// paisa. 19.999 becomes 1999. Amounts outside (0, MaxMinorUnits] paise are
// rejected before the int64 conversion.
func ToMinorUnits(amount float64) (int64, error) {
	minor := decimal.NewFromFloat(amount).Mul(hundred).Truncate(0)

	if minor.Sign() <= 0 {
		return 0, core.InvalidInput("Amount must be greater than zero")
	}
	if minor.Cmp(maxMinor) > 0 {
		return 0, core.InvalidInput("Amount exceeds the maximum order value")
	}

	return minor.IntPart(), nil
}
