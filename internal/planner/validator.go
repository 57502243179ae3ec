// Package planner реализует движок планирования распродаж: проверку
// легальности размещения и расчет минимального каскадного сдвига соседей.
//
// Все функции пакета чистые: они не меняют входные значения и не имеют
// побочных эффектов, поэтому их можно безопасно вызывать спекулятивно
// (например, много раз в секунду во время перетаскивания в календаре)
// и параллельно для разных кандидатов.
package planner

import (
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
)

// Validate проверяет легальность размещения кандидата среди siblings.
//
// siblings может содержать распродажи любых товаров и площадок — проверка
// сама отфильтровывает полосу (product+platform) кандидата, поэтому её
// стоимость линейна по размеру полосы, а не всего набора. excludeID
// исключает перемещаемую распродажу, чтобы она не конфликтовала со своей
// прежней позицией (0 — ничего не исключать).
//
// Возвращается первое найденное нарушение: прямое пересечение занятых
// интервалов (всегда нелегально) или попадание в cooldown-окно соседа.
// Освобождение от cooldown оценивается по виду более поздней из двух
// распродаж — именно она вторгается в тихий период более ранней.
func Validate(candidate *domain.Sale, siblings []*domain.Sale, rule *domain.PlatformRule, excludeID int64) Result {
	occupied := candidate.Occupied()

	for _, sibling := range siblings {
		if sibling.ID == excludeID {
			continue
		}
		if !candidate.SameLane(sibling) {
			continue
		}

		// Двойное бронирование: пересечение занятых интервалов фатально
		// независимо от видов распродаж
		if occupied.Overlaps(sibling.Occupied()) {
			return invalid(ConflictOverlap, sibling.ID, fmt.Sprintf(
				"распродажа пересекается с распродажей id=%d (%s — %s)",
				sibling.ID, sibling.StartDate, sibling.EndDate,
			))
		}

		// Cooldown более ранней распродажи против занятого интервала более поздней
		earlier, later := orderByStart(candidate, sibling)

		window := rule.CooldownWindowFor(earlier.Kind, earlier.Occupied())
		if window == nil {
			continue
		}
		if !window.Overlaps(later.Occupied()) {
			continue
		}
		if rule.WaivesCooldownFor(later.Kind) {
			continue
		}

		if later == candidate {
			return invalid(ConflictCooldown, sibling.ID, fmt.Sprintf(
				"распродажа попадает в период охлаждения распродажи id=%d, который длится до %s",
				sibling.ID, window.End,
			))
		}
		return invalid(ConflictCooldown, sibling.ID, fmt.Sprintf(
			"период охлаждения распродажи длится до %s и пересекается с распродажей id=%d",
			window.End, sibling.ID,
		))
	}

	return valid()
}

// orderByStart возвращает пару (более ранняя, более поздняя) по дате начала
func orderByStart(a, b *domain.Sale) (earlier, later *domain.Sale) {
	if b.StartDate.Before(a.StartDate) {
		return b, a
	}
	return a, b
}
