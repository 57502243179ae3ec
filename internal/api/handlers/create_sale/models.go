package create_sale

import (
	"time"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	createSale "github.com/m04kA/SMC-SalePlannerService/internal/usecase/create_sale"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// CreateSaleRequest HTTP request model
type CreateSaleRequest struct {
	ProductID       int64   `json:"productId"`
	PlatformID      int64   `json:"platformId"`
	StartDate       string  `json:"startDate"` // "2024-01-01"
	EndDate         string  `json:"endDate"`   // "2024-01-10"
	Kind            string  `json:"kind"`
	Title           string  `json:"title"`
	DiscountPercent float64 `json:"discountPercent"`
	Notes           *string `json:"notes,omitempty"`
}

// SaleResponse HTTP response model
type SaleResponse struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	PlatformID      int64   `json:"platformId"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	Kind            string  `json:"kind"`
	Title           string  `json:"title"`
	DiscountPercent float64 `json:"discountPercent"`
	Notes           *string `json:"notes,omitempty"`
	Warning         *string `json:"warning,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSaleRequest) ToUseCaseRequest() (*createSale.Request, error) {
	startDate, err := dateonly.Parse(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := dateonly.Parse(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createSale.Request{
		ProductID:       r.ProductID,
		PlatformID:      r.PlatformID,
		StartDate:       startDate,
		EndDate:         endDate,
		Kind:            domain.SaleKind(r.Kind),
		Title:           r.Title,
		DiscountPercent: r.DiscountPercent,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSale.Response) *SaleResponse {
	return &SaleResponse{
		ID:              resp.ID,
		ProductID:       resp.ProductID,
		PlatformID:      resp.PlatformID,
		StartDate:       resp.StartDate.String(),
		EndDate:         resp.EndDate.String(),
		Kind:            string(resp.Kind),
		Title:           resp.Title,
		DiscountPercent: resp.DiscountPercent,
		Notes:           resp.Notes,
		Warning:         resp.Warning,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
