package delete_sale

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

// Handle DELETE /api/v1/sales/{saleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	saleIDStr := vars["saleId"]

	saleID, err := strconv.ParseInt(saleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sales/{id} - Invalid sale ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSaleID)
		return
	}

	if err := h.service.Delete(r.Context(), saleID); err != nil {
		switch {
		case errors.Is(err, sales.ErrSaleNotFound):
			h.logger.Warn("DELETE /sales/{id} - Sale not found: sale_id=%d", saleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /sales/{id} - Failed to delete sale: sale_id=%d, error=%v", saleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sales/{id} - Sale deleted successfully: sale_id=%d", saleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
