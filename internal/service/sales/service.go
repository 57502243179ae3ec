package sales

import (
	"context"
	"errors"
	"fmt"

	saleRepo "github.com/m04kA/SMC-SalePlannerService/internal/infra/storage/sale"
	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales/models"
)

// Service сервис для чтения и удаления распродаж.
// Создание и перемещение идут через usecase-слой: там движок проверки
// и каскада, здесь только простые операции без бизнес-правил.
type Service struct {
	saleRepo SaleRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса распродаж
func NewService(saleRepo SaleRepository, logger Logger) *Service {
	return &Service{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// GetByID получает распродажу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SaleResponse, error) {
	s.logger.Info("GetByID: fetching sale id=%d", id)

	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			s.logger.Warn("GetByID: sale id=%d not found", id)
			return nil, ErrSaleNotFound
		}
		s.logger.Error("GetByID: repository error for sale id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched sale id=%d", id)
	return models.FromDomainSale(sale), nil
}

// GetProductSales получает распродажи товара с гибкой фильтрацией.
// Поддерживает фильтрацию по площадке и по календарному периоду;
// период отбирает распродажи, пересекающие [from, to] хотя бы одним днём.
func (s *Service) GetProductSales(ctx context.Context, req *models.GetProductSalesRequest) (*models.SaleListResponse, error) {
	logMsg := fmt.Sprintf("GetProductSales: fetching sales for product=%d", req.ProductID)
	if req.PlatformID != nil {
		logMsg += fmt.Sprintf(", platform=%d", *req.PlatformID)
	}
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", *req.From, *req.To)
	}
	s.logger.Info(logMsg)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProductSales: invalid filter for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	sales, err := s.saleRepo.GetByProductWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProductSales: repository error for product=%d: %v", req.ProductID, err)
		return nil, fmt.Errorf("%w: GetProductSales - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProductSales: successfully fetched %d sales for product=%d", len(sales), req.ProductID)
	return models.FromDomainSaleList(sales), nil
}

// Delete удаляет распродажу.
// Каскад соседей не пересчитывается: освобождение полосы никогда не
// создаёт новых конфликтов.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting sale id=%d", id)

	if err := s.saleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, saleRepo.ErrSaleNotFound) {
			s.logger.Warn("Delete: sale id=%d not found", id)
			return ErrSaleNotFound
		}
		s.logger.Error("Delete: repository error for sale id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted sale id=%d", id)
	return nil
}
