package get_platform_rules

import (
	"context"

	"github.com/m04kA/SMC-SalePlannerService/internal/service/platforms/models"
)

type PlatformService interface {
	GetRules(ctx context.Context, platformID int64) (*models.PlatformRuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
