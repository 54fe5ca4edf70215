package pricing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// PriceInput исходные данные для расчета стоимости аренды
type PriceInput struct {
	EventDate    string
	EventEndDate *string
	StartTime    string
	EndTime      string
	DiscountCode *string
}

// Calculator рассчитывает стоимость аренды площадки
type Calculator struct {
	selector  RuleSelector
	discounts DiscountValidator
	metrics   MetricsRecorder
	logger    Logger
}

// NewCalculator создает калькулятор; discounts может быть nil, тогда коды скидок игнорируются
func NewCalculator(selector RuleSelector, discounts DiscountValidator, metrics MetricsRecorder, logger Logger) *Calculator {
	if selector == nil {
		selector = FirstMatch{}
	}
	return &Calculator{
		selector:  selector,
		discounts: discounts,
		metrics:   metrics,
		logger:    logger,
	}
}

// CalculatePrice рассчитывает разбивку стоимости
// Никогда не возвращает ошибку: некорректные дата или время дают 0 часов,
// проблемы с кодом скидки отражаются в DiscountMessage.
//
// 1. Длительность в часах по разрешенному интервалу (с переходом через полночь)
// 2. Базовая стоимость = ставка * часы
// 3. Динамическое правило (не более одного) меняет ставку
// 4. Скидка считается от промежуточного итога
// 5. Итог = max(0, промежуточный итог - скидка)
func (c *Calculator) CalculatePrice(ctx context.Context, venue *domain.Venue, rules []*domain.PricingRule, in PriceInput) *domain.PriceBreakdown {
	// 1. Длительность
	hours := decimal.Zero
	interval, err := domain.ResolveSlot(in.EventDate, in.EventEndDate, in.StartTime, in.EndTime)
	if err != nil {
		c.logger.Warn("CalculatePrice: venue=%d malformed time range (date=%q, start=%q, end=%q), pricing as zero hours: %v",
			venue.ID, in.EventDate, in.StartTime, in.EndTime, err)
	} else {
		hours = interval.Hours()
	}

	// 2-3. Ставка и динамическое правило
	base := venue.PricePerHour
	var rule *domain.PricingRule
	if eventDate, err := domain.ParseDate(in.EventDate); err == nil {
		rule = c.selector.Select(venue.ID, eventDate, rules)
	}
	adjusted := ApplyRule(base, rule)

	baseTotal := base.Mul(hours).Round(domain.MoneyPlaces)
	subtotal := adjusted.Mul(hours).Round(domain.MoneyPlaces)

	breakdown := &domain.PriceBreakdown{
		Hours:             hours.Round(domain.HoursPlaces),
		BasePricePerHour:  base,
		AdjustedPerHour:   adjusted.Round(domain.MoneyPlaces),
		BaseTotal:         baseTotal,
		DynamicAdjustment: subtotal.Sub(baseTotal),
		AppliedRule:       rule,
		Subtotal:          subtotal,
		DiscountAmount:    decimal.Zero,
		Currency:          venue.CurrencyOrDefault(),
	}

	// 4. Скидка
	if code := normalizeCode(in.DiscountCode); code != "" && c.discounts != nil {
		breakdown.DiscountCode = &code
		result := c.discounts.Validate(ctx, code, venue.ID, subtotal)
		breakdown.DiscountMessage = result.Message
		if result.Applied {
			breakdown.DiscountApplied = true
			breakdown.DiscountAmount = result.Amount.Round(domain.MoneyPlaces)
		}
	}

	// 5. Итог
	final := subtotal.Sub(breakdown.DiscountAmount)
	if final.IsNegative() {
		final = decimal.Zero
	}
	breakdown.FinalPrice = final

	if c.metrics != nil {
		c.metrics.ObservePriceQuote(rule != nil)
	}

	return breakdown
}

func normalizeCode(code *string) string {
	if code == nil {
		return ""
	}
	return strings.TrimSpace(*code)
}
