package create_sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	platformClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	"github.com/m04kA/SMC-SalePlannerService/internal/planner"
	"github.com/m04kA/SMC-SalePlannerService/pkg/ptr"
)

// UseCase use case для размещения новой распродажи
type UseCase struct {
	saleRepo       SaleRepository
	platformClient PlatformServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	platformClient PlatformServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:       saleRepo,
		platformClient: platformClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case размещения распродажи.
// Выборка полосы и вставка идут в одной сериализуемой транзакции:
// параллельные правки одной полосы не могут дать противоречивый календарь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSale: product=%d, platform=%d, dates=%s..%s, kind=%s",
		req.ProductID, req.PlatformID, req.StartDate, req.EndDate, req.Kind)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSale: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем правила площадки
	rule, err := uc.platformClient.GetPlatformRule(ctx, req.PlatformID)
	if err != nil {
		if errors.Is(err, platformClient.ErrPlatformNotFound) {
			uc.logger.Warn("CreateSale: platform id=%d not found", req.PlatformID)
			return nil, ErrPlatformNotFound
		}
		uc.logger.Error("CreateSale: failed to get platform rule id=%d: %v", req.PlatformID, err)
		return nil, fmt.Errorf("%w: failed to get platform rule: %v", ErrInternal, err)
	}

	candidate := &domain.Sale{
		ProductID:       req.ProductID,
		PlatformID:      req.PlatformID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Kind:            req.Kind,
		Title:           req.Title,
		DiscountPercent: req.DiscountPercent,
		Notes:           req.Notes,
	}

	var created *domain.Sale

	// 3. Проверяем размещение и создаем распродажу в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Загружаем полосу product+platform с блокировкой (FOR UPDATE)
		siblings, err := uc.saleRepo.GetByProductWithFilter(txCtx, domain.ProductSalesFilter{
			ProductID:  req.ProductID,
			PlatformID: ptr.Ptr(req.PlatformID),
		})
		if err != nil {
			uc.logger.Error("CreateSale: failed to get lane sales: %v", err)
			return fmt.Errorf("%w: failed to get lane sales: %v", ErrInternal, err)
		}

		// 3.2. Проверяем легальность размещения
		result := planner.Validate(candidate, siblings, rule, 0)
		if !result.Valid {
			uc.logger.Warn("CreateSale: placement rejected (%s): %s", result.Conflict, result.Reason)
			if result.Conflict == planner.ConflictOverlap {
				return fmt.Errorf("%w: %s", ErrDirectOverlap, result.Reason)
			}
			return fmt.Errorf("%w: %s", ErrCooldownConflict, result.Reason)
		}

		// 3.3. Сохраняем распродажу
		created, err = uc.saleRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateSale: failed to create sale: %v", err)
			return fmt.Errorf("%w: failed to create sale: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Рекомендательное предупреждение о длительности (не блокирует)
	warning := durationWarning(created, rule)
	if warning != nil {
		uc.logger.Warn("CreateSale: sale id=%d: %s", created.ID, *warning)
	}

	uc.logger.Info("CreateSale: successfully created sale id=%d", created.ID)

	return &Response{
		ID:              created.ID,
		ProductID:       created.ProductID,
		PlatformID:      created.PlatformID,
		StartDate:       created.StartDate,
		EndDate:         created.EndDate,
		Kind:            created.Kind,
		Title:           created.Title,
		DiscountPercent: created.DiscountPercent,
		Notes:           created.Notes,
		Warning:         warning,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
