package validate_placement

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("validate_placement: invalid input data")

	// ErrPlatformNotFound возвращается, когда площадка отсутствует в справочнике правил
	ErrPlatformNotFound = errors.New("validate_placement: platform not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_placement: internal error")
)
