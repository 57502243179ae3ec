package validate_placement

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	validatePlacement "github.com/m04kA/SMC-SalePlannerService/internal/usecase/validate_placement"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные размещения"
	msgPlatformNotFound   = "площадка не найдена"
)

type Handler struct {
	useCase ValidatePlacementUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePlacementUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sales/validate
//
// Отказ по бизнес-правилам — это не HTTP-ошибка: ответ всегда 200
// с Valid=true/false, UI дергает эту ручку на каждое движение мыши.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePlacementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sales/validate - Failed to parse request dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validatePlacement.ErrInvalidInput):
			h.logger.Warn("POST /sales/validate - Invalid input: product_id=%d, platform_id=%d, error=%v",
				req.ProductID, req.PlatformID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, validatePlacement.ErrPlatformNotFound):
			h.logger.Warn("POST /sales/validate - Platform not found: platform_id=%d", req.PlatformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		default:
			h.logger.Error("POST /sales/validate - Failed to validate placement: product_id=%d, platform_id=%d, error=%v",
				req.ProductID, req.PlatformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sales/validate - Placement validated: product_id=%d, platform_id=%d, valid=%v",
		req.ProductID, req.PlatformID, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
