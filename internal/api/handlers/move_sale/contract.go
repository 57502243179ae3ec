package move_sale

import (
	"context"

	moveSale "github.com/m04kA/SMC-SalePlannerService/internal/usecase/move_sale"
)

type MoveSaleUseCase interface {
	Execute(ctx context.Context, req *moveSale.Request) (*moveSale.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
