package blackout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "venue_id", "blocked_date", "start_time", "end_time", "is_full_day", "reason", "created_at"}

func TestRepository_ListByVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	from := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM venue_blackouts WHERE venue_id = \$1 AND blocked_date >= \$2 AND blocked_date <= \$3 ORDER BY blocked_date ASC, id ASC`).
		WithArgs(int64(3), from, to).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(3), to, nil, nil, true, "Christmas", time.Now()).
			AddRow(int64(2), int64(3), from, "18:00", "23:00", false, nil, time.Now()))

	blackouts, err := repo.ListByVenue(context.Background(), 3, &from, &to)
	require.NoError(t, err)
	require.Len(t, blackouts, 2)

	assert.True(t, blackouts[0].IsFullDay)
	assert.Nil(t, blackouts[0].StartTime)
	assert.Equal(t, "Christmas", *blackouts[0].Reason)

	require.NotNil(t, blackouts[1].StartTime)
	assert.Equal(t, "18:00", blackouts[1].StartTime.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByVenue_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM venue_blackouts`).WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).ListByVenue(context.Background(), 3, nil, nil)
	assert.ErrorIs(t, err, ErrExecQuery)
}
