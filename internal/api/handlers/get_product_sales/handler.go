package get_product_sales

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	"github.com/m04kA/SMC-SalePlannerService/internal/service/sales"
)

const (
	msgInvalidProductID = "некорректный ID товара"
	msgInvalidParams    = "некорректные параметры запроса"
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

// Handle GET /api/v1/products/{productId}/sales
// Query params: platformId, from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	productIDStr := vars["productId"]

	productID, err := strconv.ParseInt(productIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /products/{id}/sales - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	platformIDStr := r.URL.Query().Get("platformId")
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	serviceReq, err := ToServiceRequest(productID, platformIDStr, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /products/{id}/sales - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetProductSales(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrInvalidInput):
			h.logger.Warn("GET /products/{id}/sales - Invalid parameters: product_id=%d, error=%v", productID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /products/{id}/sales - Failed to get sales: product_id=%d, error=%v", productID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /products/{id}/sales - Sales retrieved successfully: product_id=%d, count=%d",
		productID, len(result.Sales))
	handlers.RespondJSON(w, http.StatusOK, result)
}
