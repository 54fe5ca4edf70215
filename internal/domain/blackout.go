package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Blackout is an owner-defined period during which a venue cannot be booked
type Blackout struct {
	ID          int64
	VenueID     int64
	BlockedDate time.Time
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	IsFullDay   bool
	Reason      *string
	CreatedAt   time.Time
}

// Interval resolves the blackout into absolute instants.
// A partial blackout without both times is treated as a full day.
func (b *Blackout) Interval() (Interval, error) {
	if b.IsFullDay || b.StartTime == nil || b.EndTime == nil {
		return FullDay(b.BlockedDate), nil
	}
	return ResolveInterval(b.BlockedDate, nil, *b.StartTime, *b.EndTime)
}
