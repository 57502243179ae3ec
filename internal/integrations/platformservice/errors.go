package platformservice

import "errors"

var (
	// ErrPlatformNotFound возвращается, когда площадка отсутствует в справочнике.
	// Отсутствующее правило никогда не подменяется дефолтным: неизвестный
	// cooldown нельзя безопасно считать нулевым.
	ErrPlatformNotFound = errors.New("platformservice client: platform not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("platformservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("platformservice client: invalid response")
)
