package validate_placement

import (
	"context"

	validatePlacement "github.com/m04kA/SMC-SalePlannerService/internal/usecase/validate_placement"
)

type ValidatePlacementUseCase interface {
	Execute(ctx context.Context, req *validatePlacement.Request) (*validatePlacement.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
