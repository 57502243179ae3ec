package move_sale

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("move_sale: invalid input data")

	// ErrSaleNotFound возвращается, когда перемещаемая распродажа не найдена
	ErrSaleNotFound = errors.New("move_sale: sale not found")

	// ErrPlatformNotFound возвращается, когда площадка отсутствует в справочнике правил
	ErrPlatformNotFound = errors.New("move_sale: platform not found")

	// ErrDirectOverlap возвращается, когда новая позиция пересекается с занятым
	// интервалом соседа. Каскад разрешает только конфликты cooldown.
	ErrDirectOverlap = errors.New("move_sale: proposed position overlaps another sale")

	// ErrCascadeInfeasible возвращается, когда каскад потребовал бы сдвинуть
	// распродажу раньше первого дня горизонта планирования
	ErrCascadeInfeasible = errors.New("move_sale: cascade is infeasible")

	// ErrCascadeConflict возвращается, когда после применения каскада итоговое
	// размещение все равно нарушает инварианты полосы
	ErrCascadeConflict = errors.New("move_sale: cascade does not resolve all conflicts")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_sale: internal error")
)
