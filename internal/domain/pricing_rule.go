package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModifierType describes how a rule or discount changes a price
type ModifierType string

const (
	ModifierPercentage  ModifierType = "percentage"
	ModifierFixedAmount ModifierType = "fixed_amount"
)

// IsValid returns true for known modifier types
func (m ModifierType) IsValid() bool {
	return m == ModifierPercentage || m == ModifierFixedAmount
}

// PricingRule adjusts a venue's hourly rate on matching days
type PricingRule struct {
	ID            int64
	VenueID       int64
	Name          string
	DaysOfWeek    []int // 0 = Sunday ... 6 = Saturday; empty means every day
	StartDate     *time.Time
	EndDate       *time.Time
	ModifierType  ModifierType
	ModifierValue decimal.Decimal
	IsActive      bool
	Position      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Matches reports whether the rule applies to venueID on date
func (r *PricingRule) Matches(venueID int64, date time.Time) bool {
	if r == nil || !r.IsActive || r.VenueID != venueID {
		return false
	}

	day := DateOnly(date)
	if len(r.DaysOfWeek) > 0 && !r.onWeekday(day.Weekday()) {
		return false
	}
	if r.StartDate != nil && day.Before(DateOnly(*r.StartDate)) {
		return false
	}
	if r.EndDate != nil && day.After(DateOnly(*r.EndDate)) {
		return false
	}

	return true
}

func (r *PricingRule) onWeekday(wd time.Weekday) bool {
	for _, d := range r.DaysOfWeek {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// Apply returns the hourly rate after applying the rule's modifier
func (r *PricingRule) Apply(rate decimal.Decimal) decimal.Decimal {
	switch r.ModifierType {
	case ModifierPercentage:
		return rate.Add(rate.Mul(r.ModifierValue).Div(decimal.NewFromInt(100)))
	case ModifierFixedAmount:
		return rate.Add(r.ModifierValue)
	default:
		return rate
	}
}
