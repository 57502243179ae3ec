package create_sale

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	createSale "github.com/m04kA/SMC-SalePlannerService/internal/usecase/create_sale"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные распродажи"
	msgPlatformNotFound   = "площадка не найдена"
	msgDirectOverlap      = "размещение пересекается с другой распродажей"
	msgCooldownConflict   = "размещение нарушает период охлаждения"
)

type Handler struct {
	useCase CreateSaleUseCase
	logger  Logger
}

func NewHandler(useCase CreateSaleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sales
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sales - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /sales - Failed to parse request dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSale.ErrInvalidInput):
			h.logger.Warn("POST /sales - Invalid input: product_id=%d, platform_id=%d, error=%v",
				req.ProductID, req.PlatformID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createSale.ErrPlatformNotFound):
			h.logger.Warn("POST /sales - Platform not found: platform_id=%d", req.PlatformID)
			handlers.RespondNotFound(w, msgPlatformNotFound)

		case errors.Is(err, createSale.ErrDirectOverlap):
			h.logger.Warn("POST /sales - Direct overlap: product_id=%d, platform_id=%d", req.ProductID, req.PlatformID)
			handlers.RespondError(w, http.StatusConflict, msgDirectOverlap)

		case errors.Is(err, createSale.ErrCooldownConflict):
			h.logger.Warn("POST /sales - Cooldown conflict: product_id=%d, platform_id=%d", req.ProductID, req.PlatformID)
			handlers.RespondError(w, http.StatusConflict, msgCooldownConflict)

		default:
			h.logger.Error("POST /sales - Failed to create sale: product_id=%d, platform_id=%d, error=%v",
				req.ProductID, req.PlatformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sales - Sale created successfully: sale_id=%d, product_id=%d, platform_id=%d",
		result.ID, req.ProductID, req.PlatformID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
