package platforms

import (
	"context"
	"errors"
	"fmt"

	platformClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	"github.com/m04kA/SMC-SalePlannerService/internal/service/platforms/models"
)

// Service сервис для работы с правилами площадок.
// Правила живут во внешнем сервисе площадок; здесь они только
// проксируются наружу, чтобы UI планировщика мог подсветить
// cooldown-окна без обращения к чужому API.
type Service struct {
	platformClient PlatformServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(platformClient PlatformServiceClient, logger Logger) *Service {
	return &Service{
		platformClient: platformClient,
		logger:         logger,
	}
}

// GetRules получает правила площадки
func (s *Service) GetRules(ctx context.Context, platformID int64) (*models.PlatformRuleResponse, error) {
	s.logger.Info("GetRules: fetching rules for platform=%d", platformID)

	rule, err := s.platformClient.GetPlatformRule(ctx, platformID)
	if err != nil {
		if errors.Is(err, platformClient.ErrPlatformNotFound) {
			s.logger.Warn("GetRules: platform id=%d not found", platformID)
			return nil, ErrPlatformNotFound
		}
		s.logger.Error("GetRules: failed to get platform rule id=%d: %v", platformID, err)
		return nil, fmt.Errorf("%w: GetRules - failed to get platform rule: %v", ErrInternal, err)
	}

	s.logger.Info("GetRules: successfully fetched rules for platform=%d", platformID)
	return models.FromDomainPlatformRule(rule), nil
}
