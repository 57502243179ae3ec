package sales

import "errors"

var (
	// ErrSaleNotFound возвращается, когда распродажа не найдена
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
