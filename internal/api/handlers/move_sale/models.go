package move_sale

import (
	moveSale "github.com/m04kA/SMC-SalePlannerService/internal/usecase/move_sale"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
)

// MoveSaleRequest HTTP request model
type MoveSaleRequest struct {
	NewStartDate string `json:"newStartDate"` // "2024-01-20"
	NewEndDate   string `json:"newEndDate"`   // "2024-01-29"

	// HorizonStart первый день горизонта планирования (опционально,
	// по умолчанию — сегодня)
	HorizonStart *string `json:"horizonStart,omitempty"`

	// DryRun рассчитать план каскада, ничего не сохраняя
	DryRun bool `json:"dryRun,omitempty"`
}

// SaleShiftResponse каскадный сдвиг соседней распродажи
type SaleShiftResponse struct {
	SaleID   int64  `json:"saleId"`
	OldStart string `json:"oldStart"`
	OldEnd   string `json:"oldEnd"`
	NewStart string `json:"newStart"`
	NewEnd   string `json:"newEnd"`
}

// MoveSaleResponse HTTP response model
type MoveSaleResponse struct {
	SaleID   int64  `json:"saleId"`
	OldStart string `json:"oldStart"`
	OldEnd   string `json:"oldEnd"`
	NewStart string `json:"newStart"`
	NewEnd   string `json:"newEnd"`
	Kind     string `json:"kind"`

	Shifts  []SaleShiftResponse `json:"shifts"`
	Applied bool                `json:"applied"`
	Warning *string             `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *MoveSaleRequest) ToUseCaseRequest(saleID int64) (*moveSale.Request, error) {
	newStart, err := dateonly.Parse(r.NewStartDate)
	if err != nil {
		return nil, err
	}

	newEnd, err := dateonly.Parse(r.NewEndDate)
	if err != nil {
		return nil, err
	}

	req := &moveSale.Request{
		SaleID:   saleID,
		NewStart: newStart,
		NewEnd:   newEnd,
		DryRun:   r.DryRun,
	}

	if r.HorizonStart != nil {
		horizon, err := dateonly.Parse(*r.HorizonStart)
		if err != nil {
			return nil, err
		}
		req.HorizonStart = &horizon
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveSale.Response) *MoveSaleResponse {
	shifts := make([]SaleShiftResponse, len(resp.Shifts))
	for i, shift := range resp.Shifts {
		shifts[i] = SaleShiftResponse{
			SaleID:   shift.SaleID,
			OldStart: shift.OldStart.String(),
			OldEnd:   shift.OldEnd.String(),
			NewStart: shift.NewStart.String(),
			NewEnd:   shift.NewEnd.String(),
		}
	}

	return &MoveSaleResponse{
		SaleID:   resp.SaleID,
		OldStart: resp.OldStart.String(),
		OldEnd:   resp.OldEnd.String(),
		NewStart: resp.NewStart.String(),
		NewEnd:   resp.NewEnd.String(),
		Kind:     string(resp.Kind),
		Shifts:   shifts,
		Applied:  resp.Applied,
		Warning:  resp.Warning,
	}
}
