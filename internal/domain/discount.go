package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountCode is a promotional code scoped to a venue
type DiscountCode struct {
	ID           int64
	Code         string
	VenueID      int64
	DiscountType ModifierType
	Value        decimal.Decimal
	IsActive     bool
	ExpiresAt    *time.Time
	CreatedAt    time.Time
}

// IsExpired returns true if the code has an expiry strictly before now
func (d *DiscountCode) IsExpired(now time.Time) bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(now)
}

// AmountFor returns the amount the code takes off subtotal, never negative
func (d *DiscountCode) AmountFor(subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch d.DiscountType {
	case ModifierPercentage:
		amount = subtotal.Mul(d.Value).Div(decimal.NewFromInt(100))
	case ModifierFixedAmount:
		amount = d.Value
	default:
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// DiscountResult is the outcome of validating a discount code
type DiscountResult struct {
	Applied bool
	Amount  decimal.Decimal
	Message string
	Code    *DiscountCode
}
