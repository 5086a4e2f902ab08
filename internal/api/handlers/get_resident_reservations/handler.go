package get_resident_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSM-FacilityService/internal/api/handlers"
	"github.com/m04kA/RSM-FacilityService/internal/api/middleware"
	"github.com/m04kA/RSM-FacilityService/internal/service/reservations"
	"github.com/m04kA/RSM-FacilityService/internal/service/reservations/models"
)

const (
	msgInvalidResidentID = "некорректный ID жителя"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgInvalidStatus     = "некорректный статус бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/residents/{residentId}/reservations
// Query params: status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем residentId из URL
	vars := mux.Vars(r)
	residentIDStr := vars["residentId"]

	residentID, err := strconv.ParseInt(residentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /residents/{residentId}/reservations - Invalid resident ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResidentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /residents/{residentId}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Житель видит только собственную историю бронирований
	// Менеджеры смотрят бронирования через /facilities/{id}/reservations
	if residentID != userID {
		h.logger.Warn("GET /residents/{residentId}/reservations - Access denied: resident_id=%d, user_id=%d",
			residentID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	// Получаем status из query параметров (опционально)
	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetResidentReservationsRequest{
		ResidentID: residentID,
		Status:     statusPtr,
	}

	// Получаем бронирования жителя
	result, err := h.service.GetResidentReservations(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			h.logger.Warn("GET /residents/{residentId}/reservations - Invalid status: resident_id=%d, status=%s",
				residentID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}

		h.logger.Error("GET /residents/{residentId}/reservations - Failed to get reservations: resident_id=%d, error=%v",
			residentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /residents/{residentId}/reservations - Reservations retrieved successfully: resident_id=%d, count=%d",
		residentID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result.Reservations)
}
