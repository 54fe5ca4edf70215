package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// resolveCandidate валидирует запрос и разрешает его в интервал
func resolveCandidate(req *Request) (domain.Interval, error) {
	if req.VenueID <= 0 {
		return domain.Interval{}, fmt.Errorf("venueID must be positive, got %d", req.VenueID)
	}
	return domain.ResolveSlot(req.EventDate, req.EventEndDate, req.StartTime, req.EndTime)
}
