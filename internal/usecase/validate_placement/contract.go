package validate_placement

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
)

// SaleRepository интерфейс репозитория распродаж
type SaleRepository interface {
	GetByProductWithFilter(ctx context.Context, filter domain.ProductSalesFilter) ([]*domain.Sale, error)
}

// PlatformServiceClient интерфейс клиента сервиса площадок
type PlatformServiceClient interface {
	GetPlatformRule(ctx context.Context, platformID int64) (*domain.PlatformRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
