package get_occupancy_report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/RSM-FacilityService/internal/api/handlers"
	"github.com/m04kA/RSM-FacilityService/internal/api/middleware"
	getOccupancyReport "github.com/m04kA/RSM-FacilityService/internal/usecase/get_occupancy_report"
)

const (
	msgInvalidFacilityID = "некорректный ID объекта"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgMissingDates      = "startDate и endDate обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange  = "некорректный период отчета"
	msgRangeTooLarge     = "период отчета слишком большой"
	msgFacilityNotFound  = "объект не найден"
	msgForbidden         = "доступ запрещен"
)

type Handler struct {
	useCase GetOccupancyReportUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityId}/occupancy-report
// Query params: startDate (required), endDate (required), обе в формате YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем facilityId из URL
	vars := mux.Vars(r)
	facilityIDStr := vars["facilityId"]

	facilityID, err := strconv.ParseInt(facilityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/occupancy-report - Invalid facility ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFacilityID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /facilities/{id}/occupancy-report - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем период из query параметров
	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /facilities/{id}/occupancy-report - Missing dates: facility_id=%d", facilityID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(facilityID, userID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /facilities/{id}/occupancy-report - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancyReport.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{id}/occupancy-report - Facility not found: facility_id=%d", facilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, getOccupancyReport.ErrAccessDenied):
			h.logger.Warn("GET /facilities/{id}/occupancy-report - Access denied: facility_id=%d, user_id=%d",
				facilityID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getOccupancyReport.ErrInvalidDateRange):
			h.logger.Warn("GET /facilities/{id}/occupancy-report - Invalid date range: facility_id=%d, period=%s..%s",
				facilityID, startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getOccupancyReport.ErrRangeTooLarge):
			h.logger.Warn("GET /facilities/{id}/occupancy-report - Range too large: facility_id=%d, period=%s..%s",
				facilityID, startDateStr, endDateStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getOccupancyReport.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{id}/occupancy-report - Invalid input: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /facilities/{id}/occupancy-report - Failed to build report: facility_id=%d, error=%v",
				facilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /facilities/{id}/occupancy-report - Report built successfully: facility_id=%d, days=%d",
		facilityID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
