package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

// Repository репозиторий периодов блокировки площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByVenue получает блокировки площадки с датой в диапазоне [from, to] включительно
// nil границы не ограничивают выборку
func (r *Repository) ListByVenue(ctx context.Context, venueID int64, from, to *time.Time) ([]*domain.Blackout, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"venue_id",
		"blocked_date",
		"start_time",
		"end_time",
		"is_full_day",
		"reason",
		"created_at",
	).
		From("venue_blackouts").
		Where(squirrel.Eq{"venue_id": venueID})

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"blocked_date": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"blocked_date": *to})
	}

	query, args, err := selectBuilder.OrderBy("blocked_date ASC", "id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.Blackout, 0)
	for rows.Next() {
		var b domain.Blackout
		var createdAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.VenueID,
			&b.BlockedDate,
			&b.StartTime,
			&b.EndTime,
			&b.IsFullDay,
			&b.Reason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan row: %w", ErrScanRow, err)
		}

		b.BlockedDate = domain.DateOnly(b.BlockedDate)
		b.CreatedAt = createdAt.Time
		blackouts = append(blackouts, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - rows error: %w", ErrScanRow, err)
	}

	return blackouts, nil
}
