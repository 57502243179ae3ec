package domain

import "github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"

// DateRange интервал календарных дат, обе границы включительно
type DateRange struct {
	Start dateonly.Date
	End   dateonly.Date
}

// Overlaps проверяет пересечение двух интервалов.
// Границы включительны: интервалы, где конец одного равен началу другого,
// пересекаются; касание "конец + 1 день = начало" пересечением не является.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.Start.After(other.End) && !other.Start.After(r.End)
}

// Contains проверяет, что дата попадает в интервал (границы включительно)
func (r DateRange) Contains(d dateonly.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days возвращает количество дней в интервале (включительно, минимум 1)
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

// Shift возвращает интервал, смещенный на days дней с сохранением длительности
func (r DateRange) Shift(days int) DateRange {
	return DateRange{
		Start: r.Start.AddDays(days),
		End:   r.End.AddDays(days),
	}
}
