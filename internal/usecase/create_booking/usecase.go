package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	venueRepo        VenueRepository
	bookingRepo      BookingRepository
	blackoutRepo     BlackoutRepository
	ruleRepo         PricingRuleRepository
	calculator       PriceCalculator
	txManager        TransactionManager
	timeProvider     TimeProvider
	allowFullDayWrap bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	bookingRepo BookingRepository,
	blackoutRepo BlackoutRepository,
	ruleRepo PricingRuleRepository,
	calculator PriceCalculator,
	txManager TransactionManager,
	allowFullDayWrap bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:        venueRepo,
		bookingRepo:      bookingRepo,
		blackoutRepo:     blackoutRepo,
		ruleRepo:         ruleRepo,
		calculator:       calculator,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		allowFullDayWrap: allowFullDayWrap,
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Стоимость считается до транзакции; в сериализуемой транзакции выполняются только
// повторная проверка пересечений (с блокировкой строк) и вставка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, time=%s-%s, guests=%d",
		req.UserID, req.VenueID, req.EventDate, req.StartTime, req.EndTime, req.Guests)

	// 1. Валидация входных данных
	interval, err := validateRequest(req, uc.allowFullDayWrap)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что событие не в прошлом
	if err := validateNotInPast(interval, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: venue=%d date %s is in the past", req.VenueID, req.EventDate)
		return nil, err
	}

	// 3. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 4. Проверяем вместимость
	if !venue.CanHost(req.Guests) {
		uc.logger.Warn("CreateBooking: venue id=%d capacity=%d, requested guests=%d", venue.ID, venue.Capacity, req.Guests)
		return nil, ErrCapacityExceeded
	}

	// 5. Считаем стоимость
	rules, err := uc.ruleRepo.ListActiveByVenue(ctx, venue.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get pricing rules for venue id=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	breakdown := uc.calculator.CalculatePrice(ctx, venue, rules, pricing.PriceInput{
		EventDate:    req.EventDate,
		EventEndDate: req.EventEndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		DiscountCode: req.DiscountCode,
	})

	endDate, err := parseEndDate(req)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		VenueID:      venue.ID,
		UserID:       req.UserID,
		EventDate:    domain.DateOnly(interval.Start),
		EventEndDate: endDate,
		StartTime:    types.TimeString(req.StartTime),
		EndTime:      types.TimeString(req.EndTime),
		Guests:       req.Guests,
		Status:       domain.StatusPending,
		TotalPrice:   breakdown.FinalPrice,
		Currency:     breakdown.Currency,
		Notes:        trimmedOrNil(req.Notes),
	}
	if breakdown.DiscountApplied {
		booking.DiscountCode = breakdown.DiscountCode
	}

	// 6. Повторная проверка и вставка в сериализуемой транзакции
	firstDay, lastDay := interval.Days()
	from := firstDay.AddDate(0, 0, -1)

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования (блокируются FOR UPDATE) и блокировки площадки
		bookings, err := uc.bookingRepo.ListByVenue(txCtx, domain.BookingsFilter{
			VenueID:   venue.ID,
			StartDate: &from,
			EndDate:   &lastDay,
			Statuses:  domain.OccupyingStatuses,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings for venue id=%d: %v", venue.ID, err)
			return fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
		}

		blackouts, err := uc.blackoutRepo.ListByVenue(txCtx, venue.ID, &from, &lastDay)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list blackouts for venue id=%d: %v", venue.ID, err)
			return fmt.Errorf("%w: failed to list blackouts: %w", ErrInternal, err)
		}

		// 6.2. Проверяем пересечения
		conflict, err := domain.FindConflict(interval, bookings, blackouts)
		if err != nil {
			uc.logger.Error("CreateBooking: malformed occupancy data for venue id=%d: %v", venue.ID, err)
			return fmt.Errorf("%w: malformed occupancy data: %v", ErrInternal, err)
		}
		if conflict != nil {
			uc.logger.Warn("CreateBooking: venue id=%d slot %s-%s conflicts with %s",
				venue.ID, req.StartTime, req.EndTime, conflict.Type)
			return ErrSlotNotAvailable
		}

		// 6.3. Создаем бронирование
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: venue id=%d serialization conflict persisted, treating slot as taken: %v", venue.ID, err)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d for user=%d, venue=%d, total=%s %s",
		created.ID, created.UserID, created.VenueID, created.TotalPrice.StringFixed(domain.MoneyPlaces), created.Currency)

	return &Response{
		Booking:   created,
		Interval:  interval,
		Breakdown: breakdown,
		CreatedAt: created.CreatedAt,
	}, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
