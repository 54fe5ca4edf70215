package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue represents a rentable space
type Venue struct {
	ID           int64
	OwnerID      int64
	Name         string
	PricePerHour decimal.Decimal
	Currency     string
	Capacity     int // 0 means unlimited
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanHost returns true if the venue fits the given number of guests
func (v *Venue) CanHost(guests int) bool {
	return v.Capacity <= 0 || guests <= v.Capacity
}

// CurrencyOrDefault returns the venue currency, falling back to DefaultCurrency
func (v *Venue) CurrencyOrDefault() string {
	if v.Currency == "" {
		return DefaultCurrency
	}
	return v.Currency
}
