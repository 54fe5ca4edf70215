package domain

import "fmt"

// ConflictType tells what kind of record blocks a requested interval
type ConflictType string

const (
	ConflictBooking  ConflictType = "booking"
	ConflictBlackout ConflictType = "blackout"
)

// Conflict describes the first record found overlapping a requested interval
type Conflict struct {
	Type     ConflictType
	Booking  *Booking
	Blackout *Blackout
	Interval Interval
}

// FindConflict returns the first booking or blackout overlapping candidate.
// Bookings that do not occupy their slot are ignored. A record that cannot
// be resolved into an interval is an error, so callers can fail closed.
func FindConflict(candidate Interval, bookings []*Booking, blackouts []*Blackout) (*Conflict, error) {
	for _, b := range bookings {
		if b == nil || !b.OccupiesSlot() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		if candidate.Overlaps(interval) {
			return &Conflict{Type: ConflictBooking, Booking: b, Interval: interval}, nil
		}
	}

	for _, bo := range blackouts {
		if bo == nil {
			continue
		}
		interval, err := bo.Interval()
		if err != nil {
			return nil, fmt.Errorf("blackout %d: %w", bo.ID, err)
		}
		if candidate.Overlaps(interval) {
			return &Conflict{Type: ConflictBlackout, Blackout: bo, Interval: interval}, nil
		}
	}

	return nil, nil
}
