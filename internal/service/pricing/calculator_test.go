package pricing

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

type stubDiscounts struct {
	result *domain.DiscountResult
	calls  int
	got    decimal.Decimal
}

func (s *stubDiscounts) Validate(_ context.Context, _ string, _ int64, subtotal decimal.Decimal) *domain.DiscountResult {
	s.calls++
	s.got = subtotal
	return s.result
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func venue(rate string) *domain.Venue {
	return &domain.Venue{ID: 1, PricePerHour: dec(rate), Currency: "USD"}
}

func TestCalculatePrice_NoRules(t *testing.T) {
	calc := NewCalculator(FirstMatch{}, nil, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("50"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "14:00", EndTime: "18:00",
	})

	assertDecimal(t, "4", got.Hours, "hours")
	assertDecimal(t, "200", got.BaseTotal, "base total")
	assertDecimal(t, "0", got.DynamicAdjustment, "adjustment")
	assertDecimal(t, "200", got.Subtotal, "subtotal")
	assertDecimal(t, "200", got.FinalPrice, "final")
	assert.Nil(t, got.AppliedRule)
	assert.Equal(t, "USD", got.Currency)
}

func TestCalculatePrice_WeekendSurchargeAndDiscount(t *testing.T) {
	weekend := &domain.PricingRule{
		ID: 1, VenueID: 1, IsActive: true, DaysOfWeek: []int{0, 6},
		ModifierType: domain.ModifierPercentage, ModifierValue: dec("25"),
	}
	discounts := &stubDiscounts{result: &domain.DiscountResult{Applied: true, Amount: dec("37.5"), Message: "Discount applied"}}
	calc := NewCalculator(FirstMatch{}, discounts, nil, logger.NewNop())

	// 2024-06-15 is a Saturday
	got := calc.CalculatePrice(context.Background(), venue("100"), []*domain.PricingRule{weekend}, PriceInput{
		EventDate: "2024-06-15", StartTime: "19:00", EndTime: "22:00", DiscountCode: ptr.Ptr(" SUMMER10 "),
	})

	assertDecimal(t, "3", got.Hours, "hours")
	assertDecimal(t, "300", got.BaseTotal, "base total")
	assertDecimal(t, "125", got.AdjustedPerHour, "adjusted rate")
	assertDecimal(t, "75", got.DynamicAdjustment, "adjustment")
	assertDecimal(t, "375", got.Subtotal, "subtotal")
	assertDecimal(t, "37.5", got.DiscountAmount, "discount")
	assertDecimal(t, "337.5", got.FinalPrice, "final")
	assert.Same(t, weekend, got.AppliedRule)
	require.NotNil(t, got.DiscountCode)
	assert.Equal(t, "SUMMER10", *got.DiscountCode)
	assertDecimal(t, "375", discounts.got, "discount base")
}

func TestCalculatePrice_RejectedDiscountKeepsSubtotal(t *testing.T) {
	discounts := &stubDiscounts{result: &domain.DiscountResult{Message: "This discount code has expired."}}
	calc := NewCalculator(FirstMatch{}, discounts, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("100"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00", DiscountCode: ptr.Ptr("OLD"),
	})

	assertDecimal(t, "0", got.DiscountAmount, "discount")
	assertDecimal(t, "200", got.FinalPrice, "final")
	assert.False(t, got.DiscountApplied)
	assert.Equal(t, "This discount code has expired.", got.DiscountMessage)
}

func TestCalculatePrice_BlankCodeSkipsValidation(t *testing.T) {
	discounts := &stubDiscounts{result: &domain.DiscountResult{}}
	calc := NewCalculator(FirstMatch{}, discounts, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("100"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00", DiscountCode: ptr.Ptr("   "),
	})

	assert.Equal(t, 0, discounts.calls)
	assert.Nil(t, got.DiscountCode)
	assert.Empty(t, got.DiscountMessage)
}

func TestCalculatePrice_FinalNeverNegative(t *testing.T) {
	discounts := &stubDiscounts{result: &domain.DiscountResult{Applied: true, Amount: dec("500")}}
	calc := NewCalculator(FirstMatch{}, discounts, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("50"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00", DiscountCode: ptr.Ptr("BIG"),
	})

	assertDecimal(t, "100", got.Subtotal, "subtotal")
	assertDecimal(t, "500", got.DiscountAmount, "discount")
	assertDecimal(t, "0", got.FinalPrice, "final")
}

func TestCalculatePrice_OvernightAndFullDay(t *testing.T) {
	calc := NewCalculator(FirstMatch{}, nil, nil, logger.NewNop())

	overnight := calc.CalculatePrice(context.Background(), venue("40"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "20:00", EndTime: "02:00",
	})
	assertDecimal(t, "6", overnight.Hours, "overnight hours")
	assertDecimal(t, "240", overnight.FinalPrice, "overnight final")

	fullDay := calc.CalculatePrice(context.Background(), venue("10"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "10:00", EndTime: "10:00",
	})
	assertDecimal(t, "24", fullDay.Hours, "full day hours")
	assertDecimal(t, "240", fullDay.FinalPrice, "full day final")
}

func TestCalculatePrice_MalformedInputIsZeroHours(t *testing.T) {
	calc := NewCalculator(FirstMatch{}, nil, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("50"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "noon", EndTime: "18:00",
	})

	assertDecimal(t, "0", got.Hours, "hours")
	assertDecimal(t, "0", got.FinalPrice, "final")
}

func TestCalculatePrice_PartialHoursRounding(t *testing.T) {
	calc := NewCalculator(FirstMatch{}, nil, nil, logger.NewNop())

	got := calc.CalculatePrice(context.Background(), venue("50"), nil, PriceInput{
		EventDate: "2024-06-12", StartTime: "10:00", EndTime: "10:20",
	})

	assertDecimal(t, "0.3333", got.Hours, "hours")
	assertDecimal(t, "16.67", got.FinalPrice, "final")
}

func TestCalculatePrice_Idempotent(t *testing.T) {
	rules := []*domain.PricingRule{{
		ID: 1, VenueID: 1, IsActive: true,
		ModifierType: domain.ModifierFixedAmount, ModifierValue: dec("-15"),
	}}
	calc := NewCalculator(FirstMatch{}, nil, nil, logger.NewNop())
	in := PriceInput{EventDate: "2024-06-12", StartTime: "09:30", EndTime: "13:15"}

	first := calc.CalculatePrice(context.Background(), venue("80"), rules, in)
	second := calc.CalculatePrice(context.Background(), venue("80"), rules, in)

	assert.True(t, first.Hours.Equal(second.Hours))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.FinalPrice.Equal(second.FinalPrice))
	assert.Same(t, first.AppliedRule, second.AppliedRule)
	assertDecimal(t, "243.75", first.FinalPrice, "final")
}
