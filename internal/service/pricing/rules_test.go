package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

func day(s string) time.Time {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSelectRule_FirstMatchWins(t *testing.T) {
	everyDay := &domain.PricingRule{ID: 1, VenueID: 1, IsActive: true, ModifierType: domain.ModifierPercentage, ModifierValue: dec("10")}
	weekend := &domain.PricingRule{ID: 2, VenueID: 1, IsActive: true, DaysOfWeek: []int{6}, ModifierType: domain.ModifierPercentage, ModifierValue: dec("50")}

	got := SelectRule(1, day("2024-06-15"), []*domain.PricingRule{everyDay, weekend})
	assert.Same(t, everyDay, got)

	got = SelectRule(1, day("2024-06-15"), []*domain.PricingRule{weekend, everyDay})
	assert.Same(t, weekend, got)
}

func TestSelectRule_SkipsNonMatching(t *testing.T) {
	inactive := &domain.PricingRule{ID: 1, VenueID: 1}
	otherVenue := &domain.PricingRule{ID: 2, VenueID: 9, IsActive: true}
	weekdays := &domain.PricingRule{ID: 3, VenueID: 1, IsActive: true, DaysOfWeek: []int{1, 2, 3, 4, 5}}

	assert.Nil(t, SelectRule(1, day("2024-06-15"), []*domain.PricingRule{inactive, otherVenue, weekdays}))
	assert.Nil(t, SelectRule(1, day("2024-06-15"), nil))
}

func TestMostSpecific(t *testing.T) {
	everyDay := &domain.PricingRule{ID: 1, VenueID: 1, IsActive: true}
	weekend := &domain.PricingRule{ID: 2, VenueID: 1, IsActive: true, DaysOfWeek: []int{0, 6}}
	summer := &domain.PricingRule{ID: 3, VenueID: 1, IsActive: true,
		StartDate: ptr.Ptr(day("2024-06-01")), EndDate: ptr.Ptr(day("2024-08-31"))}
	festival := &domain.PricingRule{ID: 4, VenueID: 1, IsActive: true,
		StartDate: ptr.Ptr(day("2024-06-14")), EndDate: ptr.Ptr(day("2024-06-16"))}

	selector := MostSpecific{}
	saturday := day("2024-06-15")

	assert.Same(t, festival, selector.Select(1, saturday, []*domain.PricingRule{everyDay, weekend, summer, festival}))
	assert.Same(t, summer, selector.Select(1, saturday, []*domain.PricingRule{everyDay, weekend, summer}))
	assert.Same(t, weekend, selector.Select(1, saturday, []*domain.PricingRule{everyDay, weekend}))
	assert.Same(t, everyDay, selector.Select(1, saturday, []*domain.PricingRule{everyDay}))
	assert.Nil(t, selector.Select(1, saturday, nil))
}

func TestNewRuleSelector(t *testing.T) {
	s, err := NewRuleSelector("")
	require.NoError(t, err)
	assert.IsType(t, FirstMatch{}, s)

	s, err = NewRuleSelector(SelectionMostSpecific)
	require.NoError(t, err)
	assert.IsType(t, MostSpecific{}, s)

	_, err = NewRuleSelector("cheapest")
	assert.ErrorIs(t, err, ErrUnknownRuleSelection)
}
