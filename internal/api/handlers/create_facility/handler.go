package create_facility

import (
	"errors"
	"net/http"

	"github.com/m04kA/RSM-FacilityService/internal/api/handlers"
	"github.com/m04kA/RSM-FacilityService/internal/api/middleware"
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные объекта"
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

// Handle POST /api/v1/facilities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /facilities - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateFacilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /facilities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем объект (сервис сам проверит права менеджера)
	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrAccessDenied):
			h.logger.Warn("POST /facilities - Access denied: site_id=%d, user_id=%d", req.SiteID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, facilities.ErrInvalidInput):
			h.logger.Warn("POST /facilities - Invalid input: site_id=%d, error=%v", req.SiteID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /facilities - Failed to create facility: site_id=%d, error=%v", req.SiteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /facilities - Facility created successfully: facility_id=%d, site_id=%d, user_id=%d",
		result.ID, req.SiteID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
