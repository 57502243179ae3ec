package validate_placement

import (
	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	validatePlacement "github.com/m04kA/SMC-SalePlannerService/internal/usecase/validate_placement"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// ValidatePlacementRequest HTTP request model
type ValidatePlacementRequest struct {
	ProductID  int64  `json:"productId"`
	PlatformID int64  `json:"platformId"`
	StartDate  string `json:"startDate"` // "2024-01-01"
	EndDate    string `json:"endDate"`   // "2024-01-10"
	Kind       string `json:"kind"`

	// ExcludeSaleID ID перемещаемой распродажи, исключаемой из проверки
	ExcludeSaleID *int64 `json:"excludeSaleId,omitempty"`
}

// ValidatePlacementResponse HTTP response model
type ValidatePlacementResponse struct {
	Valid             bool    `json:"valid"`
	Conflict          string  `json:"conflict,omitempty"`
	ConflictingSaleID int64   `json:"conflictingSaleId,omitempty"`
	Reason            string  `json:"reason,omitempty"`
	Warning           *string `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePlacementRequest) ToUseCaseRequest() (*validatePlacement.Request, error) {
	startDate, err := dateonly.Parse(r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := dateonly.Parse(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &validatePlacement.Request{
		ProductID:     r.ProductID,
		PlatformID:    r.PlatformID,
		StartDate:     startDate,
		EndDate:       endDate,
		Kind:          domain.SaleKind(r.Kind),
		ExcludeSaleID: r.ExcludeSaleID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePlacement.Response) *ValidatePlacementResponse {
	return &ValidatePlacementResponse{
		Valid:             resp.Valid,
		Conflict:          resp.Conflict,
		ConflictingSaleID: resp.ConflictingSaleID,
		Reason:            resp.Reason,
		Warning:           resp.Warning,
	}
}
