package check_availability

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UseCase use case проверки доступности площадки
type UseCase struct {
	bookingRepo  BookingRepository
	blackoutRepo BlackoutRepository
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blackoutRepo BlackoutRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blackoutRepo: blackoutRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute проверяет, свободна ли площадка на запрошенный интервал
// Работает по принципу fail closed: любая ошибка (некорректный ввод, сбой хранилища,
// поврежденные данные) дает Available=false, а не ошибку и не ложное "свободно".
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("CheckAvailability: venue=%d, date=%s, endDate=%v, time=%s-%s",
		req.VenueID, req.EventDate, derefOrEmpty(req.EventEndDate), req.StartTime, req.EndTime)

	// 1. Валидация и разрешение интервала
	candidate, err := resolveCandidate(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: venue=%d invalid input: %v", req.VenueID, err)
		return uc.result(req.VenueID, nil, ReasonInvalidInput, nil)
	}

	// 2. Загружаем бронирования и блокировки параллельно
	// Записи предыдущего дня могут переходить через полночь, поэтому окно начинается на день раньше
	firstDay, lastDay := candidate.Days()
	from := firstDay.AddDate(0, 0, -1)

	var (
		bookings  []*domain.Booking
		blackouts []*domain.Blackout
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListByVenue(gctx, domain.BookingsFilter{
			VenueID:   req.VenueID,
			StartDate: &from,
			EndDate:   &lastDay,
			Statuses:  domain.OccupyingStatuses,
		})
		if err != nil {
			return fmt.Errorf("list bookings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		blackouts, err = uc.blackoutRepo.ListByVenue(gctx, req.VenueID, &from, &lastDay)
		if err != nil {
			return fmt.Errorf("list blackouts: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("CheckAvailability: venue=%d failed to load occupancy, reporting unavailable: %v", req.VenueID, err)
		return uc.result(req.VenueID, &candidate, ReasonCheckFailed, nil)
	}

	// 3. Ищем пересечение
	conflict, err := domain.FindConflict(candidate, bookings, blackouts)
	if err != nil {
		uc.logger.Error("CheckAvailability: venue=%d malformed occupancy data, reporting unavailable: %v", req.VenueID, err)
		return uc.result(req.VenueID, &candidate, ReasonCheckFailed, nil)
	}

	if conflict != nil {
		reason := ReasonConflictBooking
		if conflict.Type == domain.ConflictBlackout {
			reason = ReasonConflictBlackout
		}
		uc.logger.Info("CheckAvailability: venue=%d not available, reason=%s", req.VenueID, reason)
		return uc.result(req.VenueID, &candidate, reason, conflict)
	}

	uc.logger.Info("CheckAvailability: venue=%d available for %s - %s",
		req.VenueID, candidate.Start.Format("2006-01-02 15:04"), candidate.End.Format("2006-01-02 15:04"))
	return uc.result(req.VenueID, &candidate, ReasonAvailable, nil)
}

func (uc *UseCase) result(venueID int64, interval *domain.Interval, reason Reason, conflict *domain.Conflict) *Response {
	if uc.metrics != nil {
		uc.metrics.ObserveAvailabilityCheck(string(reason))
	}
	return &Response{
		VenueID:   venueID,
		Available: reason == ReasonAvailable,
		Reason:    reason,
		Interval:  interval,
		Conflict:  conflict,
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
