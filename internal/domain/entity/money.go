package entity

import (
	"math"

	domainerrors "florist/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Money is an amount in paise, the minor unit of INR.
type Money int64

// Rupees builds a Money value from whole rupees.
func Rupees(r int64) Money {
	return Money(r * 100)
}

// Paise returns the amount in minor units, as sent to the payment gateway.
func (m Money) Paise() int64 {
	return int64(m)
}

// Times multiplies the amount by a quantity and fails instead of wrapping past int64.
func (m Money) Times(qty int) (Money, error) {
	if m < 0 || qty < 0 {
		return 0, domainerrors.ErrPricingFailed.WrapMessage("negative amount or quantity")
	}
	if qty != 0 && int64(m) > math.MaxInt64/int64(qty) {
		return 0, domainerrors.ErrPricingFailed.WrapMessage("amount overflows")
	}

	return m * Money(qty), nil
}

// Add sums two non-negative amounts and fails instead of wrapping past int64.
func (m Money) Add(o Money) (Money, error) {
	if m < 0 || o < 0 {
		return 0, domainerrors.ErrPricingFailed.WrapMessage("negative amount")
	}
	if m > math.MaxInt64-o {
		return 0, domainerrors.ErrPricingFailed.WrapMessage("amount overflows")
	}

	return m + o, nil
}

// Decimal returns the amount in rupees as a fixed-point decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount as rupees with two decimals, e.g. "1800.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MoneyFromDecimal converts a rupee amount such as 499.50 to paise, rounding half-up.
func MoneyFromDecimal(rupees decimal.Decimal) Money {
	return Money(rupees.Shift(2).Round(0).IntPart())
}
