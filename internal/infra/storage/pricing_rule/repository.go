package pricing_rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

// Repository репозиторий правил динамического ценообразования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveByVenue получает активные правила площадки
// Порядок (position, id) определяет приоритет: выигрывает первое подходящее правило
func (r *Repository) ListActiveByVenue(ctx context.Context, venueID int64) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"venue_id",
		"name",
		"days_of_week",
		"start_date",
		"end_date",
		"modifier_type",
		"modifier_value",
		"is_active",
		"position",
		"created_at",
		"updated_at",
	).
		From("pricing_rules").
		Where(squirrel.Eq{"venue_id": venueID, "is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		var rule domain.PricingRule
		var days pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&rule.ID,
			&rule.VenueID,
			&rule.Name,
			&days,
			&rule.StartDate,
			&rule.EndDate,
			&rule.ModifierType,
			&rule.ModifierValue,
			&rule.IsActive,
			&rule.Position,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListActiveByVenue - scan row: %w", ErrScanRow, err)
		}

		rule.DaysOfWeek = make([]int, len(days))
		for i, d := range days {
			rule.DaysOfWeek[i] = int(d)
		}
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByVenue - rows error: %w", ErrScanRow, err)
	}

	return rules, nil
}
