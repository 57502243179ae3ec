package get_sale

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales"
)

const (
	msgInvalidSaleID = "некорректный ID распродажи"
	msgNotFound      = "распродажа не найдена"
)

type Handler struct {
	service SaleService
	logger  Logger
}

func NewHandler(service SaleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sales/{saleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleIDStr := vars["saleId"]

	saleID, err := strconv.ParseInt(saleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /sales/{id} - Invalid sale ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSaleID)
		return
	}

	sale, err := h.service.GetByID(r.Context(), saleID)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrSaleNotFound):
			h.logger.Warn("GET /sales/{id} - Sale not found: sale_id=%d", saleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /sales/{id} - Failed to get sale: sale_id=%d, error=%v", saleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sales/{id} - Sale retrieved successfully: sale_id=%d", saleID)
	handlers.RespondJSON(w, http.StatusOK, sale)
}
