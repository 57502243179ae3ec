package get_product_sales

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales/models"
)

type SaleService interface {
	GetProductSales(ctx context.Context, req *models.GetProductSalesRequest) (*models.SaleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
