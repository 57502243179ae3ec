package platforms

import "errors"

var (
	// ErrPlatformNotFound возвращается, когда площадка не найдена
	ErrPlatformNotFound = errors.New("platform not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
