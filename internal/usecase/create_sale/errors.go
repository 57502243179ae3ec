package create_sale

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_sale: invalid input data")

	// ErrPlatformNotFound возвращается, когда площадка отсутствует в справочнике правил
	ErrPlatformNotFound = errors.New("create_sale: platform not found")

	// ErrDirectOverlap возвращается, когда размещение пересекается с занятым
	// интервалом другой распродажи той же полосы
	ErrDirectOverlap = errors.New("create_sale: placement overlaps another sale")

	// ErrCooldownConflict возвращается, когда размещение нарушает период
	// охлаждения соседней распродажи
	ErrCooldownConflict = errors.New("create_sale: placement violates a cooldown")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_sale: internal error")
)
