package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var (
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD format
	ErrInvalidDate = errors.New("domain: invalid date, expected YYYY-MM-DD")

	// ErrInvalidInterval is returned when a time range cannot be resolved to a positive interval
	ErrInvalidInterval = errors.New("domain: invalid interval")
)

var minutesPerHour = decimal.NewFromInt(60)

// Interval is a half-open range of absolute instants [Start, End).
// All instants are floating local times expressed in time.UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ResolveInterval combines a date, an optional end date and two wall-clock
// times into an Interval. If the resulting end is not after the start the
// range is taken to cross midnight and the end moves to the next day, so
// 20:00-02:00 lasts six hours and 10:00-10:00 lasts twenty four.
func ResolveInterval(date time.Time, endDate *time.Time, start, end types.TimeString) (Interval, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: start time: %v", ErrInvalidInterval, err)
	}
	endMinutes, err := end.Minutes()
	if err != nil {
		return Interval{}, fmt.Errorf("%w: end time: %v", ErrInvalidInterval, err)
	}

	startDay := DateOnly(date)
	endDay := startDay
	if endDate != nil {
		endDay = DateOnly(*endDate)
	}

	result := Interval{
		Start: startDay.Add(time.Duration(startMinutes) * time.Minute),
		End:   endDay.Add(time.Duration(endMinutes) * time.Minute),
	}
	if !result.End.After(result.Start) {
		result.End = result.End.AddDate(0, 0, 1)
	}
	if !result.End.After(result.Start) {
		return Interval{}, fmt.Errorf("%w: end date %s precedes start date %s",
			ErrInvalidInterval, endDay.Format(DateFormat), startDay.Format(DateFormat))
	}

	return result, nil
}

// ResolveSlot parses raw request values and resolves them into an Interval
func ResolveSlot(date string, endDate *string, start, end string) (Interval, error) {
	day, err := ParseDate(date)
	if err != nil {
		return Interval{}, err
	}

	var lastDay *time.Time
	if endDate != nil && *endDate != "" {
		parsed, err := ParseDate(*endDate)
		if err != nil {
			return Interval{}, err
		}
		lastDay = &parsed
	}

	return ResolveInterval(day, lastDay, types.TimeString(start), types.TimeString(end))
}

// FullDay returns the interval covering the whole calendar day of date
func FullDay(date time.Time) Interval {
	day := DateOnly(date)
	return Interval{Start: day, End: day.AddDate(0, 0, 1)}
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Hours returns the length of the interval in hours, never negative
func (i Interval) Hours() decimal.Decimal {
	minutes := int64(i.Duration() / time.Minute)
	if minutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(minutes).Div(minutesPerHour)
}

// IsFullDayWrap reports whether the interval spans exactly 24 hours because
// the start and end wall-clock times were equal
func (i Interval) IsFullDayWrap() bool {
	return i.Duration() == 24*time.Hour
}

// Days returns the first and last calendar days touched by the interval
func (i Interval) Days() (first, last time.Time) {
	return DateOnly(i.Start), DateOnly(i.End.Add(-time.Nanosecond))
}

// ParseDate parses a YYYY-MM-DD value as a floating local date
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateOnly drops the clock part and the location, keeping the calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
