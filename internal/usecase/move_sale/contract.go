package move_sale

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// SaleRepository интерфейс репозитория распродаж
type SaleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Sale, error)
	GetByProductWithFilter(ctx context.Context, filter domain.ProductSalesFilter) ([]*domain.Sale, error)
	UpdateDates(ctx context.Context, id int64, start, end dateonly.Date) error
}

// PlatformServiceClient интерфейс клиента сервиса площадок
type PlatformServiceClient interface {
	GetPlatformRule(ctx context.Context, platformID int64) (*domain.PlatformRule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
