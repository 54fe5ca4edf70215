package domain

import "github.com/shopspring/decimal"

// PriceBreakdown is the itemised result of pricing a rental
type PriceBreakdown struct {
	Hours             decimal.Decimal
	BasePricePerHour  decimal.Decimal
	AdjustedPerHour   decimal.Decimal
	BaseTotal         decimal.Decimal
	DynamicAdjustment decimal.Decimal
	AppliedRule       *PricingRule
	Subtotal          decimal.Decimal

	DiscountCode    *string
	DiscountApplied bool
	DiscountAmount  decimal.Decimal
	DiscountMessage string

	FinalPrice decimal.Decimal
	Currency   string
}
