package list_facilities

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSM-FacilityService/internal/api/handlers"
)

const (
	msgInvalidSiteID = "некорректный ID площадки"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sites/{siteId}/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем siteId из URL
	vars := mux.Vars(r)
	siteIDStr := vars["siteId"]

	siteID, err := strconv.ParseInt(siteIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /sites/{siteId}/facilities - Invalid site ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSiteID)
		return
	}

	// Получаем объекты площадки
	result, err := h.service.ListBySite(r.Context(), siteID)
	if err != nil {
		h.logger.Error("GET /sites/{siteId}/facilities - Failed to get facilities: site_id=%d, error=%v", siteID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sites/{siteId}/facilities - Facilities retrieved successfully: site_id=%d, count=%d",
		siteID, len(result.Facilities))
	handlers.RespondJSON(w, http.StatusOK, result.Facilities)
}
