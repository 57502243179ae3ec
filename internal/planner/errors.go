package planner

import "errors"

var (
	// ErrMovedSaleNotFound возвращается, когда перемещаемая распродажа отсутствует в siblings
	ErrMovedSaleNotFound = errors.New("planner: moved sale not found among siblings")

	// ErrDirectOverlap возвращается, когда предлагаемая позиция пересекается
	// с занятым интервалом соседа. Каскад разрешает только конфликты cooldown,
	// двойное бронирование он не чинит.
	ErrDirectOverlap = errors.New("planner: proposed position overlaps another sale")

	// ErrCascadeInfeasible возвращается, когда обратный сдвиг потребовал бы
	// начать распродажу раньше первого дня видимого горизонта планирования
	ErrCascadeInfeasible = errors.New("planner: cascade would shift a sale before the scheduling horizon")
)
