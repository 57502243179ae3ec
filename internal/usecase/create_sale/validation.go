package create_sale

import (
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// endDate < startDate — нарушение контракта вызывающей стороной,
// движок такие кандидаты не принимает.
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.PlatformID <= 0 {
		return fmt.Errorf("%w: platformID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown sale kind %q", ErrInvalidInput, req.Kind)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	if req.DiscountPercent < domain.MinDiscountPercent || req.DiscountPercent > domain.MaxDiscountPercent {
		return fmt.Errorf("%w: discountPercent must be between %.0f and %.0f",
			ErrInvalidInput, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// durationWarning возвращает рекомендательное предупреждение о превышении
// maxSaleDays площадки. Превышение не блокирует размещение.
func durationWarning(sale *domain.Sale, rule *domain.PlatformRule) *string {
	if !rule.ExceedsMaxDuration(sale) {
		return nil
	}
	warning := fmt.Sprintf("длительность распродажи %d дней превышает рекомендованный максимум площадки %q (%d дней)",
		sale.DurationDays(), rule.Name, rule.MaxSaleDays)
	return &warning
}
