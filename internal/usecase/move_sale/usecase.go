package move_sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	saleRepo "github.com/m04kA/SMC-SalePlannerService/internal/infra/storage/sale"
	platformClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	"github.com/m04kA/SMC-SalePlannerService/internal/planner"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
	"github.com/m04kA/SMC-SalePlannerService/pkg/ptr"
)

// UseCase use case каскадобезопасного перемещения распродажи
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

// Execute выполняет перемещение распродажи с каскадным сдвигом соседей.
//
// План каскада, перепроверка и запись всех дат выполняются в одной
// сериализуемой транзакции с блокировкой полосы: либо применяются
// перемещение и все сдвиги целиком, либо ничего — наполовину примененный
// каскад вернул бы те самые конфликты, которые он должен разрешать.
// При DryRun транзакция не открывается и ничего не сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveSale: sale=%d, newDates=%s..%s, dryRun=%v",
		req.SaleID, req.NewStart, req.NewEnd, req.DryRun)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveSale: validation failed: %v", err)
		return nil, err
	}

	horizon := dateonly.Today()
	if req.HorizonStart != nil {
		horizon = *req.HorizonStart
	}

	// 2. Загружаем перемещаемую распродажу
	moved, err := uc.saleRepo.GetByID(ctx, req.SaleID)
	if err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			uc.logger.Warn("MoveSale: sale id=%d not found", req.SaleID)
			return nil, ErrSaleNotFound
		}
		uc.logger.Error("MoveSale: failed to get sale id=%d: %v", req.SaleID, err)
		return nil, fmt.Errorf("%w: failed to get sale: %v", ErrInternal, err)
	}

	// 3. Получаем правила площадки
	rule, err := uc.platformClient.GetPlatformRule(ctx, moved.PlatformID)
	if err != nil {
		if errors.Is(err, platformClient.ErrPlatformNotFound) {
			uc.logger.Warn("MoveSale: platform id=%d not found", moved.PlatformID)
			return nil, ErrPlatformNotFound
		}
		uc.logger.Error("MoveSale: failed to get platform rule id=%d: %v", moved.PlatformID, err)
		return nil, fmt.Errorf("%w: failed to get platform rule: %v", ErrInternal, err)
	}

	// 4. Предпросмотр: план без блокировок и записи
	if req.DryRun {
		siblings, err := uc.loadLane(ctx, moved)
		if err != nil {
			return nil, err
		}

		shifts, err := uc.plan(moved, req, rule, siblings, horizon)
		if err != nil {
			return nil, err
		}

		uc.logger.Info("MoveSale: dry run for sale id=%d planned %d shift(s)", moved.ID, len(shifts))
		return uc.buildResponse(moved, req, rule, siblings, shifts, false), nil
	}

	// 5. Применяем перемещение и каскад атомарно
	var (
		siblings []*domain.Sale
		shifts   []planner.Shift
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Загружаем полосу с блокировкой (FOR UPDATE)
		siblings, err = uc.loadLane(txCtx, moved)
		if err != nil {
			return err
		}

		// 5.2. Планируем каскад
		shifts, err = uc.plan(moved, req, rule, siblings, horizon)
		if err != nil {
			return err
		}

		// 5.3. Сохраняем перемещение и все сдвиги
		if err := uc.saleRepo.UpdateDates(txCtx, moved.ID, req.NewStart, req.NewEnd); err != nil {
			uc.logger.Error("MoveSale: failed to update sale id=%d: %v", moved.ID, err)
			return fmt.Errorf("%w: failed to update sale: %v", ErrInternal, err)
		}

		for _, shift := range shifts {
			if err := uc.saleRepo.UpdateDates(txCtx, shift.SaleID, shift.NewStart, shift.NewEnd); err != nil {
				uc.logger.Error("MoveSale: failed to apply shift to sale id=%d: %v", shift.SaleID, err)
				return fmt.Errorf("%w: failed to apply cascade shift: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("MoveSale: successfully moved sale id=%d with %d cascade shift(s)", moved.ID, len(shifts))

	return uc.buildResponse(moved, req, rule, siblings, shifts, true), nil
}

// loadLane загружает все распродажи полосы перемещаемой распродажи
func (uc *UseCase) loadLane(ctx context.Context, moved *domain.Sale) ([]*domain.Sale, error) {
	siblings, err := uc.saleRepo.GetByProductWithFilter(ctx, domain.ProductSalesFilter{
		ProductID:  moved.ProductID,
		PlatformID: ptr.Ptr(moved.PlatformID),
	})
	if err != nil {
		uc.logger.Error("MoveSale: failed to get lane sales: %v", err)
		return nil, fmt.Errorf("%w: failed to get lane sales: %v", ErrInternal, err)
	}
	return siblings, nil
}

// plan вычисляет каскад и перепроверяет итоговое размещение
func (uc *UseCase) plan(
	moved *domain.Sale,
	req *Request,
	rule *domain.PlatformRule,
	siblings []*domain.Sale,
	horizon dateonly.Date,
) ([]planner.Shift, error) {
	shifts, err := planner.PlanCascade(planner.CascadeRequest{
		MovedSaleID:   moved.ID,
		ProposedStart: req.NewStart,
		ProposedEnd:   req.NewEnd,
		Rule:          rule,
		Siblings:      siblings,
		HorizonStart:  horizon,
	})
	if err != nil {
		switch {
		case errors.Is(err, planner.ErrDirectOverlap):
			uc.logger.Warn("MoveSale: sale id=%d rejected: %v", moved.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrDirectOverlap, err)
		case errors.Is(err, planner.ErrCascadeInfeasible):
			uc.logger.Warn("MoveSale: sale id=%d rejected: %v", moved.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrCascadeInfeasible, err)
		default:
			uc.logger.Error("MoveSale: planner failed for sale id=%d: %v", moved.ID, err)
			return nil, fmt.Errorf("%w: planner failed: %v", ErrInternal, err)
		}
	}

	movedAt := moved.WithDates(req.NewStart, req.NewEnd)
	if err := revalidatePlan(movedAt, siblings, shifts, rule); err != nil {
		uc.logger.Warn("MoveSale: cascade revalidation failed for sale id=%d: %v", moved.ID, err)
		return nil, err
	}

	return shifts, nil
}

// buildResponse собирает ответ со списком сдвигов в порядке применения
func (uc *UseCase) buildResponse(
	moved *domain.Sale,
	req *Request,
	rule *domain.PlatformRule,
	siblings []*domain.Sale,
	shifts []planner.Shift,
	applied bool,
) *Response {
	saleByID := make(map[int64]*domain.Sale, len(siblings))
	for _, sibling := range siblings {
		saleByID[sibling.ID] = sibling
	}

	shiftResults := make([]SaleShift, 0, len(shifts))
	for _, shift := range shifts {
		original := saleByID[shift.SaleID]
		shiftResults = append(shiftResults, SaleShift{
			SaleID:   shift.SaleID,
			OldStart: original.StartDate,
			OldEnd:   original.EndDate,
			NewStart: shift.NewStart,
			NewEnd:   shift.NewEnd,
		})
	}

	movedAt := moved.WithDates(req.NewStart, req.NewEnd)

	return &Response{
		SaleID:   moved.ID,
		OldStart: moved.StartDate,
		OldEnd:   moved.EndDate,
		NewStart: req.NewStart,
		NewEnd:   req.NewEnd,
		Kind:     moved.Kind,
		Shifts:   shiftResults,
		Applied:  applied,
		Warning:  durationWarning(movedAt, rule),
	}
}
