package get_platform_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalePlannerService/internal/api/handlers"
	"github.com/m04kA/SMC-SalePlannerService/internal/service/platforms"
)

const (
	msgInvalidPlatformID = "некорректный ID площадки"
	msgNotFound          = "площадка не найдена"
)

type Handler struct {
	service PlatformService
	logger  Logger
}

func NewHandler(service PlatformService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/platforms/{platformId}/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	platformIDStr := vars["platformId"]

	platformID, err := strconv.ParseInt(platformIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /platforms/{id}/rules - Invalid platform ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPlatformID)
		return
	}

	rules, err := h.service.GetRules(r.Context(), platformID)
	if err != nil {
		switch {
		case errors.Is(err, platforms.ErrPlatformNotFound):
			h.logger.Warn("GET /platforms/{id}/rules - Platform not found: platform_id=%d", platformID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /platforms/{id}/rules - Failed to get rules: platform_id=%d, error=%v", platformID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /platforms/{id}/rules - Rules retrieved successfully: platform_id=%d", platformID)
	handlers.RespondJSON(w, http.StatusOK, rules)
}
