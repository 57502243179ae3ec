package get_sale

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales/models"
)

type SaleService interface {
	GetByID(ctx context.Context, id int64) (*models.SaleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
