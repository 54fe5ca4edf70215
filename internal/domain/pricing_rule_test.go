package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

func TestPricingRule_Matches(t *testing.T) {
	// 2024-06-15 is a Saturday
	saturday := date("2024-06-15")

	tests := []struct {
		name string
		rule PricingRule
		want bool
	}{
		{"every day", PricingRule{VenueID: 1, IsActive: true}, true},
		{"inactive", PricingRule{VenueID: 1}, false},
		{"other venue", PricingRule{VenueID: 2, IsActive: true}, false},
		{"weekend", PricingRule{VenueID: 1, IsActive: true, DaysOfWeek: []int{0, 6}}, true},
		{"weekdays", PricingRule{VenueID: 1, IsActive: true, DaysOfWeek: []int{1, 2, 3, 4, 5}}, false},
		{"range inclusive start", PricingRule{VenueID: 1, IsActive: true, StartDate: ptr.Ptr(saturday)}, true},
		{"range inclusive end", PricingRule{VenueID: 1, IsActive: true, EndDate: ptr.Ptr(saturday)}, true},
		{"range not started", PricingRule{VenueID: 1, IsActive: true, StartDate: ptr.Ptr(date("2024-06-16"))}, false},
		{"range ended", PricingRule{VenueID: 1, IsActive: true, EndDate: ptr.Ptr(date("2024-06-14"))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(1, saturday))
		})
	}
}

func TestPricingRule_Apply(t *testing.T) {
	rate := decimal.NewFromInt(100)

	pct := PricingRule{ModifierType: ModifierPercentage, ModifierValue: decimal.NewFromInt(25)}
	assert.True(t, decimal.NewFromInt(125).Equal(pct.Apply(rate)))

	fixed := PricingRule{ModifierType: ModifierFixedAmount, ModifierValue: decimal.NewFromInt(-30)}
	assert.True(t, decimal.NewFromInt(70).Equal(fixed.Apply(rate)))

	unknown := PricingRule{ModifierType: "multiplier", ModifierValue: decimal.NewFromInt(2)}
	assert.True(t, rate.Equal(unknown.Apply(rate)))
}

func TestDiscountCode_AmountFor(t *testing.T) {
	subtotal := decimal.NewFromInt(375)

	pct := DiscountCode{DiscountType: ModifierPercentage, Value: decimal.NewFromInt(10)}
	assert.True(t, decimal.RequireFromString("37.5").Equal(pct.AmountFor(subtotal)))

	fixed := DiscountCode{DiscountType: ModifierFixedAmount, Value: decimal.NewFromInt(500)}
	assert.True(t, decimal.NewFromInt(500).Equal(fixed.AmountFor(subtotal)))

	negative := DiscountCode{DiscountType: ModifierFixedAmount, Value: decimal.NewFromInt(-5)}
	assert.True(t, negative.AmountFor(subtotal).IsZero())
}
