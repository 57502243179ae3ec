package validate_placement

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	platformClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	"github.com/m04kA/SMC-SalePlannerService/internal/planner"
	"github.com/m04kA/SMC-SalePlannerService/pkg/ptr"
)

// UseCase use case спекулятивной проверки размещения
type UseCase struct {
	saleRepo       SaleRepository
	platformClient PlatformServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	saleRepo SaleRepository,
	platformClient PlatformServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		saleRepo:       saleRepo,
		platformClient: platformClient,
		logger:         logger,
	}
}

// Execute проверяет легальность размещения, ничего не изменяя.
// Отказ по бизнес-правилам — это не ошибка, а обычный ответ с Valid=false
// и причиной; ошибки возвращаются только для некорректного входа,
// неизвестной площадки и внутренних сбоев.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidatePlacement: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем правила площадки
	rule, err := uc.platformClient.GetPlatformRule(ctx, req.PlatformID)
	if err != nil {
		if errors.Is(err, platformClient.ErrPlatformNotFound) {
			uc.logger.Warn("ValidatePlacement: platform id=%d not found", req.PlatformID)
			return nil, ErrPlatformNotFound
		}
		uc.logger.Error("ValidatePlacement: failed to get platform rule id=%d: %v", req.PlatformID, err)
		return nil, fmt.Errorf("%w: failed to get platform rule: %v", ErrInternal, err)
	}

	// 3. Загружаем полосу (без транзакции и блокировок: это предпросмотр)
	siblings, err := uc.saleRepo.GetByProductWithFilter(ctx, domain.ProductSalesFilter{
		ProductID:  req.ProductID,
		PlatformID: ptr.Ptr(req.PlatformID),
	})
	if err != nil {
		uc.logger.Error("ValidatePlacement: failed to get lane sales: %v", err)
		return nil, fmt.Errorf("%w: failed to get lane sales: %v", ErrInternal, err)
	}

	candidate := &domain.Sale{
		ProductID:  req.ProductID,
		PlatformID: req.PlatformID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Kind:       req.Kind,
	}

	var excludeID int64
	if req.ExcludeSaleID != nil {
		excludeID = *req.ExcludeSaleID
	}

	// 4. Проверяем размещение
	result := planner.Validate(candidate, siblings, rule, excludeID)

	var warning *string
	if rule.ExceedsMaxDuration(candidate) {
		w := fmt.Sprintf("длительность распродажи %d дней превышает рекомендованный максимум площадки %q (%d дней)",
			candidate.DurationDays(), rule.Name, rule.MaxSaleDays)
		warning = &w
	}

	return &Response{
		Valid:             result.Valid,
		Conflict:          string(result.Conflict),
		ConflictingSaleID: result.ConflictingSaleID,
		Reason:            result.Reason,
		Warning:           warning,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: productID must be positive", ErrInvalidInput)
	}

	if req.PlatformID <= 0 {
		return fmt.Errorf("%w: platformID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not precede startDate", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown sale kind %q", ErrInvalidInput, req.Kind)
	}

	return nil
}
