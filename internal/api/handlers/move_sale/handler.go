package move_sale

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	moveSale "github.com/m04kA/SMC-SalePlannerService/internal/usecase/move_sale"
)

const (
	msgInvalidSaleID      = "некорректный ID распродажи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные перемещения"
	msgSaleNotFound       = "распродажа не найдена"
	msgPlatformNotFound   = "площадка не найдена"
	msgDirectOverlap      = "новая позиция пересекается с другой распродажей"
	msgCascadeInfeasible  = "каскад невозможен: сосед выходит за горизонт планирования"
	msgCascadeConflict    = "каскад не разрешает все конфликты полосы"
)

type Handler struct {
	useCase MoveSaleUseCase
	logger  Logger
}

func NewHandler(useCase MoveSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sales/{saleId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleIDStr := vars["saleId"]

	saleID, err := strconv.ParseInt(saleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /sales/{id}/move - Invalid sale ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSaleID)
		return
	}

	var req MoveSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales/{id}/move - Invalid request body: sale_id=%d, error=%v", saleID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(saleID)
	if err != nil {
		h.logger.Warn("POST /sales/{id}/move - Failed to parse request dates: sale_id=%d, error=%v", saleID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveSale.ErrInvalidInput):
			h.logger.Warn("POST /sales/{id}/move - Invalid input: sale_id=%d, error=%v", saleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, moveSale.ErrSaleNotFound):
			h.logger.Warn("POST /sales/{id}/move - Sale not found: sale_id=%d", saleID)
			handlers.RespondNotFound(w, msgSaleNotFound)

		case errors.Is(err, moveSale.ErrPlatformNotFound):
			h.logger.Warn("POST /sales/{id}/move - Platform not found: sale_id=%d", saleID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		case errors.Is(err, moveSale.ErrDirectOverlap):
			h.logger.Warn("POST /sales/{id}/move - Direct overlap: sale_id=%d", saleID)
			handlers.RespondError(w, http.StatusConflict, msgDirectOverlap)

		case errors.Is(err, moveSale.ErrCascadeInfeasible):
			h.logger.Warn("POST /sales/{id}/move - Cascade infeasible: sale_id=%d, error=%v", saleID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgCascadeInfeasible)

		case errors.Is(err, moveSale.ErrCascadeConflict):
			h.logger.Warn("POST /sales/{id}/move - Cascade conflict: sale_id=%d, error=%v", saleID, err)
			handlers.RespondError(w, http.StatusConflict, msgCascadeConflict)

		default:
			h.logger.Error("POST /sales/{id}/move - Failed to move sale: sale_id=%d, error=%v", saleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sales/{id}/move - Sale moved: sale_id=%d, shifts=%d, applied=%v",
		saleID, len(result.Shifts), result.Applied)
	handlers.RespondJSON(w, http.StatusOK, response)
}
