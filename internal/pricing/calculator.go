// Package pricing derives checkout totals from a cart snapshot. Everything
// here is pure: the same items and config always produce the same breakdown.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tiembanh/cartstore/internal/domain"
)

type Config struct {
	// TaxRate is a fraction of the items subtotal, e.g. 0.05 for 5%.
	TaxRate decimal.Decimal
	// ShippingFee is a flat fee charged on any non-empty cart.
	ShippingFee domain.Money
}

func DefaultConfig() Config {
	return Config{
		TaxRate:     decimal.NewFromFloat(0.05),
		ShippingFee: domain.NewVND(30_000),
	}
}

type Breakdown struct {
	ItemsSubtotal  domain.Money
	ShippingFee    domain.Money
	Tax            domain.Money
	GrandTotal     domain.Money
	TotalItemCount int
}

// Calculate computes the breakdown for a cart snapshot. Tax is rounded
// half-up to the nearest whole currency unit once over the subtotal, not
// per line, so line ordering and grouping cannot change the result. An
// empty cart prices to all zeroes, including the shipping fee.
func Calculate(items []domain.CartItem, cfg Config) Breakdown {
	subtotal := domain.Money{Amount: decimal.Zero, Currency: cfg.ShippingFee.Currency}
	count := 0

	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.MulInt(item.Quantity))
		count += item.Quantity
	}

	zero := domain.Money{Amount: decimal.Zero, Currency: subtotal.Currency}
	if len(items) == 0 {
		return Breakdown{
			ItemsSubtotal: zero,
			ShippingFee:   zero,
			Tax:           zero,
			GrandTotal:    zero,
		}
	}

	tax := domain.Money{
		// decimal rounds half away from zero, i.e. half-up for positive amounts
		Amount:   subtotal.Amount.Mul(cfg.TaxRate).Round(0),
		Currency: subtotal.Currency,
	}

	return Breakdown{
		ItemsSubtotal:  subtotal,
		ShippingFee:    cfg.ShippingFee,
		Tax:            tax,
		GrandTotal:     subtotal.Add(tax).Add(cfg.ShippingFee),
		TotalItemCount: count,
	}
}
