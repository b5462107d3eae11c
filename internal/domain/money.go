package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// VND has no minor unit, amounts are whole đồng.
var VND = currency.MustParseISO("VND")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewVND(units int64) Money {
	return Money{Amount: decimal.NewFromInt(units), Currency: VND}
}

func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// Add assumes both operands share a currency, which holds within one cart.
// The zero Money is a valid additive identity.
func (m Money) Add(other Money) Money {
	unit := m.Currency
	if unit == (currency.Unit{}) {
		unit = other.Currency
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: unit}
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency.String() == other.Currency.String()
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}
