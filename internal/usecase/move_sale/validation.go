package move_sale

import (
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/internal/planner"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SaleID <= 0 {
		return fmt.Errorf("%w: saleID must be positive", ErrInvalidInput)
	}

	if req.NewStart.IsZero() {
		return fmt.Errorf("%w: newStart is required", ErrInvalidInput)
	}

	if req.NewEnd.IsZero() {
		return fmt.Errorf("%w: newEnd is required", ErrInvalidInput)
	}

	if req.NewEnd.Before(req.NewStart) {
		return fmt.Errorf("%w: newEnd must not precede newStart", ErrInvalidInput)
	}

	return nil
}

// revalidatePlan перепроверяет итоговое размещение после применения плана:
// перемещенную распродажу против соседей без сдвинутых, каждую сдвинутую —
// против полного обновленного набора. План, который не проходит проверку,
// не применяется вовсе.
func revalidatePlan(
	moved *domain.Sale,
	siblings []*domain.Sale,
	shifts []planner.Shift,
	rule *domain.PlatformRule,
) error {
	shiftByID := make(map[int64]planner.Shift, len(shifts))
	for _, shift := range shifts {
		shiftByID[shift.SaleID] = shift
	}

	// Обновленный набор: перемещенная распродажа и соседи в новых позициях
	updated := make([]*domain.Sale, 0, len(siblings))
	remaining := make([]*domain.Sale, 0, len(siblings))

	for _, sibling := range siblings {
		if sibling.ID == moved.ID {
			updated = append(updated, moved)
			continue
		}
		if shift, ok := shiftByID[sibling.ID]; ok {
			updated = append(updated, sibling.WithDates(shift.NewStart, shift.NewEnd))
			continue
		}
		updated = append(updated, sibling)
		remaining = append(remaining, sibling)
	}

	// Перемещенная распродажа против несдвинутых соседей
	if result := planner.Validate(moved, remaining, rule, moved.ID); !result.Valid {
		return fmt.Errorf("%w: %s", ErrCascadeConflict, result.Reason)
	}

	// Каждая сдвинутая распродажа против полного обновленного набора
	for _, sale := range updated {
		if _, ok := shiftByID[sale.ID]; !ok {
			continue
		}
		if result := planner.Validate(sale, updated, rule, sale.ID); !result.Valid {
			return fmt.Errorf("%w: sale id=%d: %s", ErrCascadeConflict, sale.ID, result.Reason)
		}
	}

	return nil
}

// durationWarning возвращает рекомендательное предупреждение о превышении
// maxSaleDays площадки
func durationWarning(sale *domain.Sale, rule *domain.PlatformRule) *string {
	if !rule.ExceedsMaxDuration(sale) {
		return nil
	}
	warning := fmt.Sprintf("длительность распродажи %d дней превышает рекомендованный максимум площадки %q (%d дней)",
		sale.DurationDays(), rule.Name, rule.MaxSaleDays)
	return &warning
}
