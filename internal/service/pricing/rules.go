package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const (
	SelectionFirstMatch   = "first_match"
	SelectionMostSpecific = "most_specific"
)

// RuleSelector выбирает одно правило из упорядоченного списка
type RuleSelector interface {
	Select(venueID int64, eventDate time.Time, rules []*domain.PricingRule) *domain.PricingRule
}

// NewRuleSelector возвращает стратегию выбора по имени из конфигурации
func NewRuleSelector(mode string) (RuleSelector, error) {
	switch mode {
	case "", SelectionFirstMatch:
		return FirstMatch{}, nil
	case SelectionMostSpecific:
		return MostSpecific{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleSelection, mode)
	}
}

// FirstMatch выбирает первое подходящее правило в порядке списка
type FirstMatch struct{}

func (FirstMatch) Select(venueID int64, eventDate time.Time, rules []*domain.PricingRule) *domain.PricingRule {
	return SelectRule(venueID, eventDate, rules)
}

// SelectRule возвращает первое правило, подходящее площадке и дате, или nil
// Правила не суммируются: применяется не более одного
func SelectRule(venueID int64, eventDate time.Time, rules []*domain.PricingRule) *domain.PricingRule {
	for _, rule := range rules {
		if rule.Matches(venueID, eventDate) {
			return rule
		}
	}
	return nil
}

// MostSpecific выбирает самое узкое подходящее правило
// Приоритет: ограниченный с обеих сторон период, затем более короткий период,
// затем правило с днями недели, затем порядок в списке
type MostSpecific struct{}

func (MostSpecific) Select(venueID int64, eventDate time.Time, rules []*domain.PricingRule) *domain.PricingRule {
	matching := make([]*domain.PricingRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Matches(venueID, eventDate) {
			matching = append(matching, rule)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return moreSpecific(matching[i], matching[j])
	})
	return matching[0]
}

func moreSpecific(a, b *domain.PricingRule) bool {
	if ba, bb := bounds(a), bounds(b); ba != bb {
		return ba > bb
	}
	if bounds(a) == 2 {
		if sa, sb := span(a), span(b); sa != sb {
			return sa < sb
		}
	}
	if da, db := len(a.DaysOfWeek) > 0, len(b.DaysOfWeek) > 0; da != db {
		return da
	}
	return false
}

func bounds(r *domain.PricingRule) int {
	n := 0
	if r.StartDate != nil {
		n++
	}
	if r.EndDate != nil {
		n++
	}
	return n
}

func span(r *domain.PricingRule) time.Duration {
	return domain.DateOnly(*r.EndDate).Sub(domain.DateOnly(*r.StartDate))
}

// ApplyRule применяет правило к часовой ставке; без правила ставка не меняется
func ApplyRule(rate decimal.Decimal, rule *domain.PricingRule) decimal.Decimal {
	if rule == nil {
		return rate
	}
	return rule.Apply(rate)
}
