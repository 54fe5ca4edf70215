package discount

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	discountRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/discount"
)

// Сообщения, которые видит пользователь
const (
	MsgInvalidCode      = "Invalid discount code"
	MsgExpiredCode      = "This discount code has expired."
	MsgValidationFailed = "Could not validate code"
)

// Исходы проверки для метрик
const (
	OutcomeApplied = "applied"
	OutcomeInvalid = "invalid"
	OutcomeExpired = "expired"
	OutcomeFailed  = "failed"
)

// RealTimeProvider возвращает текущее время системы
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Validator проверяет коды скидок
type Validator struct {
	repo         DiscountRepository
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewValidator создает валидатор кодов скидок
func NewValidator(repo DiscountRepository, timeProvider TimeProvider, metrics MetricsRecorder, logger Logger) *Validator {
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}
	return &Validator{
		repo:         repo,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Validate проверяет код и считает сумму скидки от subtotal
// Ошибки не возвращаются: любая проблема превращается в нулевую скидку с сообщением
func (v *Validator) Validate(ctx context.Context, code string, venueID int64, subtotal decimal.Decimal) *domain.DiscountResult {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > domain.MaxDiscountCodeLength {
		v.observe(OutcomeInvalid)
		return &domain.DiscountResult{Amount: decimal.Zero, Message: MsgInvalidCode}
	}

	discount, err := v.repo.FindActive(ctx, code, venueID)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			v.logger.Info("Validate: discount code %q not found for venue=%d", code, venueID)
			v.observe(OutcomeInvalid)
			return &domain.DiscountResult{Amount: decimal.Zero, Message: MsgInvalidCode}
		}
		v.logger.Error("Validate: failed to look up discount code %q for venue=%d: %v", code, venueID, err)
		v.observe(OutcomeFailed)
		return &domain.DiscountResult{Amount: decimal.Zero, Message: MsgValidationFailed}
	}

	if discount.IsExpired(v.timeProvider.Now()) {
		v.logger.Info("Validate: discount code %q for venue=%d expired at %s", code, venueID, discount.ExpiresAt.Format(time.RFC3339))
		v.observe(OutcomeExpired)
		return &domain.DiscountResult{Amount: decimal.Zero, Message: MsgExpiredCode, Code: discount}
	}

	if !discount.DiscountType.IsValid() {
		v.logger.Error("Validate: discount code %q has unknown type %q", code, discount.DiscountType)
		v.observe(OutcomeFailed)
		return &domain.DiscountResult{Amount: decimal.Zero, Message: MsgValidationFailed}
	}

	amount := discount.AmountFor(subtotal).Round(domain.MoneyPlaces)
	v.observe(OutcomeApplied)

	return &domain.DiscountResult{
		Applied: true,
		Amount:  amount,
		Message: appliedMessage(discount, amount),
		Code:    discount,
	}
}

func (v *Validator) observe(outcome string) {
	if v.metrics != nil {
		v.metrics.ObserveDiscountValidation(outcome)
	}
}

func appliedMessage(d *domain.DiscountCode, amount decimal.Decimal) string {
	if d.DiscountType == domain.ModifierPercentage {
		return fmt.Sprintf("Discount applied: %s%% off (-%s)", d.Value.String(), amount.StringFixed(domain.MoneyPlaces))
	}
	return fmt.Sprintf("Discount applied: -%s", amount.StringFixed(domain.MoneyPlaces))
}
