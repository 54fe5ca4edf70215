package handlers

import (
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// PriceBreakdownResponse разбивка стоимости, денежные суммы строками с двумя знаками
type PriceBreakdownResponse struct {
	Hours             string           `json:"hours"`
	BasePricePerHour  string           `json:"basePricePerHour"`
	AdjustedPerHour   string           `json:"adjustedPerHour"`
	BaseTotal         string           `json:"baseTotal"`
	DynamicAdjustment string           `json:"dynamicAdjustment"`
	AppliedRule       *AppliedRuleInfo `json:"appliedRule,omitempty"`
	Subtotal          string           `json:"subtotal"`
	DiscountCode      *string          `json:"discountCode,omitempty"`
	DiscountApplied   bool             `json:"discountApplied"`
	DiscountAmount    string           `json:"discountAmount"`
	DiscountMessage   string           `json:"discountMessage,omitempty"`
	FinalPrice        string           `json:"finalPrice"`
	Currency          string           `json:"currency"`
}

// AppliedRuleInfo сработавшее правило динамического ценообразования
type AppliedRuleInfo struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ModifierType  string `json:"modifierType"`
	ModifierValue string `json:"modifierValue"`
}

// FromDomainBreakdown конвертирует разбивку стоимости в DTO
func FromDomainBreakdown(b *domain.PriceBreakdown) *PriceBreakdownResponse {
	if b == nil {
		return nil
	}

	resp := &PriceBreakdownResponse{
		Hours:             b.Hours.StringFixed(domain.HoursPlaces),
		BasePricePerHour:  b.BasePricePerHour.StringFixed(domain.MoneyPlaces),
		AdjustedPerHour:   b.AdjustedPerHour.StringFixed(domain.MoneyPlaces),
		BaseTotal:         b.BaseTotal.StringFixed(domain.MoneyPlaces),
		DynamicAdjustment: b.DynamicAdjustment.StringFixed(domain.MoneyPlaces),
		Subtotal:          b.Subtotal.StringFixed(domain.MoneyPlaces),
		DiscountCode:      b.DiscountCode,
		DiscountApplied:   b.DiscountApplied,
		DiscountAmount:    b.DiscountAmount.StringFixed(domain.MoneyPlaces),
		DiscountMessage:   b.DiscountMessage,
		FinalPrice:        b.FinalPrice.StringFixed(domain.MoneyPlaces),
		Currency:          b.Currency,
	}

	if rule := b.AppliedRule; rule != nil {
		resp.AppliedRule = &AppliedRuleInfo{
			ID:            rule.ID,
			Name:          rule.Name,
			ModifierType:  string(rule.ModifierType),
			ModifierValue: rule.ModifierValue.String(),
		}
	}

	return resp
}
