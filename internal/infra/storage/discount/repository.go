package discount

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

// Repository репозиторий кодов скидок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория скидок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActive ищет активный код скидки площадки
// Истечение срока не проверяется: это делает валидатор, чтобы вернуть отдельное сообщение
func (r *Repository) FindActive(ctx context.Context, code string, venueID int64) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"venue_id",
		"discount_type",
		"value",
		"is_active",
		"expires_at",
		"created_at",
	).
		From("discount_codes").
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"is_active": true}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - build select query: %v", ErrBuildQuery, err)
	}

	var discount domain.DiscountCode
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&discount.ID,
		&discount.Code,
		&discount.VenueID,
		&discount.DiscountType,
		&discount.Value,
		&discount.IsActive,
		&discount.ExpiresAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActive - scan discount: %w", ErrScanRow, err)
	}

	discount.CreatedAt = createdAt.Time

	return &discount, nil
}
