package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")
)

// Request модели

// GetProductSalesRequest запрос на получение распродаж товара
type GetProductSalesRequest struct {
	ProductID  int64   `json:"productId"`
	PlatformID *int64  `json:"platformId,omitempty"` // Фильтр по площадке (опционально)
	From       *string `json:"from,omitempty"`       // Начало периода, "2006-01-02" (опционально)
	To         *string `json:"to,omitempty"`         // Конец периода, "2006-01-02" (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetProductSalesRequest) ToDomainFilter() (domain.ProductSalesFilter, error) {
	filter := domain.ProductSalesFilter{
		ProductID:  r.ProductID,
		PlatformID: r.PlatformID,
	}

	if r.From != nil {
		from, err := dateonly.Parse(*r.From)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.From = &from
	}

	if r.To != nil {
		to, err := dateonly.Parse(*r.To)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.To = &to
	}

	return filter, nil
}

// Response модели

// SaleResponse ответ с данными распродажи
type SaleResponse struct {
	ID              int64  `json:"id"`
	ProductID       int64  `json:"productId"`
	PlatformID      int64  `json:"platformId"`
	StartDate       string `json:"startDate"` // "2024-01-01"
	EndDate         string `json:"endDate"`   // "2024-01-10"
	Kind            string `json:"kind"`
	Title           string `json:"title"`
	DiscountPercent float64 `json:"discountPercent"`

	Notes *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaleListResponse ответ со списком распродаж
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// Методы конвертации

// FromDomainSale конвертирует domain модель в DTO
func FromDomainSale(s *domain.Sale) *SaleResponse {
	if s == nil {
		return nil
	}

	return &SaleResponse{
		ID:              s.ID,
		ProductID:       s.ProductID,
		PlatformID:      s.PlatformID,
		StartDate:       s.StartDate.String(),
		EndDate:         s.EndDate.String(),
		Kind:            string(s.Kind),
		Title:           s.Title,
		DiscountPercent: s.DiscountPercent,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSaleList конвертирует список domain моделей в DTO
func FromDomainSaleList(sales []*domain.Sale) *SaleListResponse {
	if sales == nil {
		return &SaleListResponse{
			Sales: []SaleResponse{},
		}
	}

	resp := &SaleListResponse{
		Sales: make([]SaleResponse, len(sales)),
	}

	for i, sale := range sales {
		if saleResp := FromDomainSale(sale); saleResp != nil {
			resp.Sales[i] = *saleResp
		}
	}

	return resp
}
