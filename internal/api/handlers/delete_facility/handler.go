package delete_facility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSM-FacilityService/internal/api/handlers"
	"github.com/m04kA/RSM-FacilityService/internal/api/middleware"
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "объект не найден"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/facilities/{facilityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /facilities/{id} - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /facilities/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем объект (сервис сам проверит права менеджера)
	err = h.service.Delete(r.Context(), facilityID, userID)
	if err != nil {
		switch {
		case errors.Is(err, facilities.ErrFacilityNotFound):
			h.logger.Warn("DELETE /facilities/{id} - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, facilities.ErrAccessDenied):
			h.logger.Warn("DELETE /facilities/{id} - Access denied: facility_id=%d, user_id=%d", facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /facilities/{id} - Failed to delete facility: facility_id=%d, error=%v", facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /facilities/{id} - Facility deleted successfully: facility_id=%d, user_id=%d",
		facilityID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
