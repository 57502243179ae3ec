package planner

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// Shift предлагаемый сдвиг соседней распродажи.
// Длительность всегда сохраняется: NewEnd - NewStart равна прежней длительности.
type Shift struct {
	SaleID   int64
	NewStart dateonly.Date
	NewEnd   dateonly.Date
}

// CascadeRequest вход планировщика каскада
type CascadeRequest struct {
	MovedSaleID   int64
	ProposedStart dateonly.Date
	ProposedEnd   dateonly.Date
	Rule          *domain.PlatformRule
	Siblings      []*domain.Sale

	// HorizonStart первый день видимого горизонта планирования.
	// Обратный сдвиг за эту границу делает каскад невыполнимым.
	HorizonStart dateonly.Date
}

// PlanCascade вычисляет минимальный упорядоченный набор сдвигов соседей,
// который сохраняет все cooldown-инварианты после перемещения распродажи
// на предлагаемую позицию.
//
// Прямой проход толкает вперед цепочку соседей, начинающихся после новой
// позиции: cooldown-рубеж продвигается и через несдвинутых соседей, потому
// что более поздний сосед может конфликтовать уже с их cooldown. Обратный
// проход одиночными сдвигами отодвигает назад соседей, чей cooldown
// дотягивается до новой даты начала; соседей, уже сдвинутых прямым
// проходом, он пропускает (прямой проход имеет приоритет).
//
// Сдвиг никогда не меняет вид и длительность распродажи, только позицию.
// Пересечение предлагаемой позиции с занятым интервалом соседа каскадом
// не разрешается и возвращает ErrDirectOverlap.
func PlanCascade(req CascadeRequest) ([]Shift, error) {
	moved := findSale(req.Siblings, req.MovedSaleID)
	if moved == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrMovedSaleNotFound, req.MovedSaleID)
	}

	proposed := domain.DateRange{Start: req.ProposedStart, End: req.ProposedEnd}

	lane := laneSiblings(req.Siblings, moved)

	// Двойное бронирование каскад не чинит
	for _, sibling := range lane {
		if proposed.Overlaps(sibling.Occupied()) {
			return nil, fmt.Errorf("%w: sale id=%d (%s — %s)",
				ErrDirectOverlap, sibling.ID, sibling.StartDate, sibling.EndDate)
		}
	}

	shifts := make([]Shift, 0)
	shifted := make(map[int64]bool)

	// Прямой проход: соседи, начинающиеся после предлагаемого конца,
	// в порядке возрастания даты начала
	forward := make([]*domain.Sale, 0, len(lane))
	for _, sibling := range lane {
		if sibling.StartDate.After(req.ProposedEnd) {
			forward = append(forward, sibling)
		}
	}
	sort.Slice(forward, func(i, j int) bool {
		if forward[i].StartDate.Equal(forward[j].StartDate) {
			return forward[i].ID < forward[j].ID
		}
		return forward[i].StartDate.Before(forward[j].StartDate)
	})

	frontier := cooldownEnd(req.Rule, moved.Kind, proposed)

	for _, sibling := range forward {
		if !sibling.StartDate.After(frontier) && !req.Rule.WaivesCooldownFor(sibling.Kind) {
			// Сосед внутри рубежа: сдвигаем вперед ровно настолько,
			// чтобы он начинался на следующий день после рубежа
			shiftDays := sibling.StartDate.DaysUntil(frontier) + 1
			newRange := sibling.Occupied().Shift(shiftDays)

			shifts = append(shifts, Shift{
				SaleID:   sibling.ID,
				NewStart: newRange.Start,
				NewEnd:   newRange.End,
			})
			shifted[sibling.ID] = true

			frontier = cooldownEnd(req.Rule, sibling.Kind, newRange)
			continue
		}

		// Сосед не сдвигается, но его собственный cooldown продвигает рубеж:
		// следующий сосед может конфликтовать уже с ним, а не с перемещаемой
		// распродажей
		frontier = dateonly.Max(frontier, cooldownEnd(req.Rule, sibling.Kind, sibling.Occupied()))
	}

	// Обратный проход: соседи, заканчивающиеся до предлагаемого начала.
	// Освобождение оценивается по виду более поздней распродажи — здесь это
	// перемещаемая, поэтому при освобожденном виде проход не нужен вовсе.
	if !req.Rule.WaivesCooldownFor(moved.Kind) {
		backward := make([]*domain.Sale, 0, len(lane))
		for _, sibling := range lane {
			if sibling.EndDate.Before(req.ProposedStart) && !shifted[sibling.ID] {
				backward = append(backward, sibling)
			}
		}
		sort.Slice(backward, func(i, j int) bool {
			if backward[i].EndDate.Equal(backward[j].EndDate) {
				return backward[i].ID < backward[j].ID
			}
			return backward[i].EndDate.After(backward[j].EndDate)
		})

		for _, sibling := range backward {
			window := req.Rule.CooldownWindow(sibling)
			if window == nil || window.End.Before(req.ProposedStart) {
				continue
			}

			// Минимальный сдвиг назад: cooldown соседа должен закончиться
			// за день до начала перемещаемой распродажи
			shiftDays := req.ProposedStart.DaysUntil(window.End) + 1
			newRange := sibling.Occupied().Shift(-shiftDays)

			if newRange.Start.Before(req.HorizonStart) {
				return nil, fmt.Errorf("%w: sale id=%d would start %s, horizon begins %s",
					ErrCascadeInfeasible, sibling.ID, newRange.Start, req.HorizonStart)
			}

			shifts = append(shifts, Shift{
				SaleID:   sibling.ID,
				NewStart: newRange.Start,
				NewEnd:   newRange.End,
			})
			shifted[sibling.ID] = true
		}
	}

	return shifts, nil
}

// cooldownEnd возвращает последний день, занятый распродажей вместе с её
// cooldown-окном. Для освобожденных видов это просто конец распродажи:
// они не создают собственного cooldown-рубежа.
func cooldownEnd(rule *domain.PlatformRule, kind domain.SaleKind, occupied domain.DateRange) dateonly.Date {
	if window := rule.CooldownWindowFor(kind, occupied); window != nil {
		return window.End
	}
	return occupied.End
}

// findSale ищет распродажу по ID
func findSale(sales []*domain.Sale, id int64) *domain.Sale {
	for _, sale := range sales {
		if sale.ID == id {
			return sale
		}
	}
	return nil
}

// laneSiblings отфильтровывает распродажи той же полосы, исключая перемещаемую
func laneSiblings(sales []*domain.Sale, moved *domain.Sale) []*domain.Sale {
	lane := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.ID == moved.ID {
			continue
		}
		if sale.SameLane(moved) {
			lane = append(lane, sale)
		}
	}
	return lane
}
