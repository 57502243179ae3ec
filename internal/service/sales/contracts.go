package sales

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
)

// SaleRepository интерфейс репозитория распродаж
type SaleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	GetByProductWithFilter(ctx context.Context, filter domain.ProductSalesFilter) ([]*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
