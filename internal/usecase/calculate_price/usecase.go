package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBooking/internal/service/pricing"
)

// UseCase use case расчета стоимости аренды
type UseCase struct {
	venueRepo        VenueRepository
	ruleRepo         PricingRuleRepository
	calculator       PriceCalculator
	converter        CurrencyConverter
	allowFullDayWrap bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueRepo VenueRepository,
	ruleRepo PricingRuleRepository,
	calculator PriceCalculator,
	converter CurrencyConverter,
	allowFullDayWrap bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueRepo:        venueRepo,
		ruleRepo:         ruleRepo,
		calculator:       calculator,
		converter:        converter,
		allowFullDayWrap: allowFullDayWrap,
		logger:           logger,
	}
}

// Execute рассчитывает стоимость аренды и, если запрошено, пересчитывает итог в валюту отображения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: venue=%d, date=%s, time=%s-%s", req.VenueID, req.EventDate, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.allowFullDayWrap); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем площадку и правила параллельно
	var (
		venue *domain.Venue
		rules []*domain.PricingRule
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		venue, err = uc.venueRepo.GetByID(gctx, req.VenueID)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = uc.ruleRepo.ListActiveByVenue(gctx, req.VenueID)
		return err
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CalculatePrice: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CalculatePrice: failed to load venue id=%d or its rules: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to load venue data: %v", ErrInternal, err)
	}

	// 3. Считаем стоимость
	breakdown := uc.calculator.CalculatePrice(ctx, venue, rules, pricing.PriceInput{
		EventDate:    req.EventDate,
		EventEndDate: req.EventEndDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		DiscountCode: req.DiscountCode,
	})

	resp := &Response{VenueID: req.VenueID, Breakdown: breakdown}

	// 4. Пересчет в валюту отображения
	if req.DisplayCurrency != nil {
		target := strings.ToUpper(strings.TrimSpace(*req.DisplayCurrency))
		final := uc.converter.Convert(ctx, breakdown.FinalPrice, breakdown.Currency, target)
		subtotal := uc.converter.Convert(ctx, breakdown.Subtotal, breakdown.Currency, target)
		resp.Display = &DisplayPrice{
			Currency:   target,
			Subtotal:   subtotal.Converted,
			FinalPrice: final.Converted,
			RateFound:  final.RateFound,
		}
		if !final.RateFound {
			resp.Display.Currency = breakdown.Currency
		}
	}

	uc.logger.Info("CalculatePrice: venue=%d hours=%s subtotal=%s final=%s %s",
		req.VenueID, breakdown.Hours, breakdown.Subtotal, breakdown.FinalPrice, breakdown.Currency)

	return resp, nil
}
