package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBooking/internal/service/currency"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

type fakeVenues struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenues) GetByID(context.Context, int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeRules struct {
	rules []*domain.PricingRule
	err   error
}

func (f *fakeRules) ListActiveByVenue(context.Context, int64) ([]*domain.PricingRule, error) {
	return f.rules, f.err
}

func newUseCase(venues *fakeVenues, rules *fakeRules, allowFullDay bool) *UseCase {
	log := logger.NewNop()
	return NewUseCase(
		venues,
		rules,
		pricing.NewCalculator(pricing.FirstMatch{}, nil, nil, log),
		currency.NewConverter(nil, currency.DefaultRates(), nil, log),
		allowFullDay,
		log,
	)
}

func hall() *domain.Venue {
	return &domain.Venue{ID: 1, PricePerHour: decimal.NewFromInt(100), Currency: "USD"}
}

func TestExecute_WithDisplayCurrency(t *testing.T) {
	uc := newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, false)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00", DisplayCurrency: ptr.Ptr("eur"),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(200).Equal(resp.Breakdown.FinalPrice))
	require.NotNil(t, resp.Display)
	assert.Equal(t, "EUR", resp.Display.Currency)
	assert.True(t, decimal.NewFromInt(184).Equal(resp.Display.FinalPrice))
	assert.True(t, resp.Display.RateFound)
}

func TestExecute_UnknownDisplayCurrencyPassesThrough(t *testing.T) {
	uc := newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, false)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 1, EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00", DisplayCurrency: ptr.Ptr("XYZ"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Display.RateFound)
	assert.Equal(t, "USD", resp.Display.Currency)
	assert.True(t, decimal.NewFromInt(200).Equal(resp.Display.FinalPrice))
}

func TestExecute_FullDayWrapPolicy(t *testing.T) {
	req := &Request{VenueID: 1, EventDate: "2024-06-12", StartTime: "10:00", EndTime: "10:00"}

	_, err := newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, false).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrFullDayWrapNotAllowed)

	resp, err := newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, true).Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(2400).Equal(resp.Breakdown.FinalPrice))
}

func TestExecute_MalformedTimesPriceAsZero(t *testing.T) {
	uc := newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, false)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, EventDate: "2024-06-12", StartTime: "late", EndTime: "later"})
	require.NoError(t, err)
	assert.True(t, resp.Breakdown.FinalPrice.IsZero())
}

func TestExecute_Errors(t *testing.T) {
	_, err := newUseCase(&fakeVenues{err: fmt.Errorf("x: %w", venueRepo.ErrVenueNotFound)}, &fakeRules{}, false).
		Execute(context.Background(), &Request{VenueID: 5, EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = newUseCase(&fakeVenues{venue: hall()}, &fakeRules{err: errors.New("db down")}, false).
		Execute(context.Background(), &Request{VenueID: 1, EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = newUseCase(&fakeVenues{venue: hall()}, &fakeRules{}, false).
		Execute(context.Background(), &Request{EventDate: "2024-06-12", StartTime: "10:00", EndTime: "12:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
