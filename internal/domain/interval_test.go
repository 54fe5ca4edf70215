package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func at(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestResolveInterval(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		endDate   *string
		start     types.TimeString
		end       types.TimeString
		wantStart string
		wantEnd   string
		wantHours string
	}{
		{
			name: "same day", date: "2024-06-15", start: "14:00", end: "18:00",
			wantStart: "2024-06-15 14:00", wantEnd: "2024-06-15 18:00", wantHours: "4",
		},
		{
			name: "overnight wraps to next day", date: "2024-06-15", start: "20:00", end: "02:00",
			wantStart: "2024-06-15 20:00", wantEnd: "2024-06-16 02:00", wantHours: "6",
		},
		{
			name: "equal times span a full day", date: "2024-06-15", start: "10:00", end: "10:00",
			wantStart: "2024-06-15 10:00", wantEnd: "2024-06-16 10:00", wantHours: "24",
		},
		{
			name: "explicit end date", date: "2024-06-15", endDate: ptr.Ptr("2024-06-17"), start: "09:00", end: "12:00",
			wantStart: "2024-06-15 09:00", wantEnd: "2024-06-17 12:00", wantHours: "51",
		},
		{
			name: "partial hours", date: "2024-06-15", start: "10:00", end: "10:45",
			wantStart: "2024-06-15 10:00", wantEnd: "2024-06-15 10:45", wantHours: "0.75",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var endDate *time.Time
			if tt.endDate != nil {
				endDate = ptr.Ptr(date(*tt.endDate))
			}

			interval, err := ResolveInterval(date(tt.date), endDate, tt.start, tt.end)
			require.NoError(t, err)

			assert.Equal(t, at(tt.wantStart), interval.Start)
			assert.Equal(t, at(tt.wantEnd), interval.End)
			assert.True(t, decimal.RequireFromString(tt.wantHours).Equal(interval.Hours()), "hours = %s", interval.Hours())
		})
	}
}

func TestResolveInterval_Invalid(t *testing.T) {
	_, err := ResolveInterval(date("2024-06-15"), nil, "25:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ResolveInterval(date("2024-06-15"), ptr.Ptr(date("2024-06-10")), "10:00", "12:00")
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = ResolveSlot("15/06/2024", nil, "10:00", "12:00")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestInterval_Overlaps(t *testing.T) {
	existing := Interval{Start: at("2024-06-15 14:00"), End: at("2024-06-15 18:00")}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{"inside", Interval{at("2024-06-15 15:00"), at("2024-06-15 16:00")}, true},
		{"covers", Interval{at("2024-06-15 10:00"), at("2024-06-15 20:00")}, true},
		{"overlaps start", Interval{at("2024-06-15 12:00"), at("2024-06-15 15:00")}, true},
		{"overlaps end", Interval{at("2024-06-15 17:00"), at("2024-06-15 19:00")}, true},
		{"touches end", Interval{at("2024-06-15 18:00"), at("2024-06-15 20:00")}, false},
		{"touches start", Interval{at("2024-06-15 12:00"), at("2024-06-15 14:00")}, false},
		{"before", Interval{at("2024-06-15 08:00"), at("2024-06-15 10:00")}, false},
		{"other day", Interval{at("2024-06-16 14:00"), at("2024-06-16 18:00")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.candidate))
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing), "overlap must be symmetric")
		})
	}
}

func TestInterval_IsFullDayWrap(t *testing.T) {
	wrapped, err := ResolveInterval(date("2024-06-15"), nil, "10:00", "10:00")
	require.NoError(t, err)
	assert.True(t, wrapped.IsFullDayWrap())

	overnight, err := ResolveInterval(date("2024-06-15"), nil, "20:00", "02:00")
	require.NoError(t, err)
	assert.False(t, overnight.IsFullDayWrap())
}

func TestInterval_Days(t *testing.T) {
	overnight := Interval{Start: at("2024-06-15 20:00"), End: at("2024-06-16 02:00")}
	first, last := overnight.Days()
	assert.Equal(t, date("2024-06-15"), first)
	assert.Equal(t, date("2024-06-16"), last)

	untilMidnight := Interval{Start: at("2024-06-15 20:00"), End: at("2024-06-16 00:00")}
	first, last = untilMidnight.Days()
	assert.Equal(t, date("2024-06-15"), first)
	assert.Equal(t, date("2024-06-15"), last)
}

func TestBlackout_Interval(t *testing.T) {
	full := &Blackout{BlockedDate: date("2024-12-25"), IsFullDay: true}
	interval, err := full.Interval()
	require.NoError(t, err)
	assert.Equal(t, at("2024-12-25 00:00"), interval.Start)
	assert.Equal(t, at("2024-12-26 00:00"), interval.End)

	missingTimes := &Blackout{BlockedDate: date("2024-12-25"), StartTime: ptr.Ptr(types.TimeString("10:00"))}
	interval, err = missingTimes.Interval()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, interval.Duration())

	partial := &Blackout{
		BlockedDate: date("2024-12-25"),
		StartTime:   ptr.Ptr(types.TimeString("09:00")),
		EndTime:     ptr.Ptr(types.TimeString("12:00")),
	}
	interval, err = partial.Interval()
	require.NoError(t, err)
	assert.Equal(t, at("2024-12-25 09:00"), interval.Start)
	assert.Equal(t, at("2024-12-25 12:00"), interval.End)
}
