package get_facility_reservations

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/internal/service/reservations/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	facilityID int64,
	userID int64,
	statusStr string,
	dateStr string,
	startDateStr string,
	endDateStr string,
	includeCancelledStr string,
) (*models.GetFacilityReservationsRequest, error) {
	req := &models.GetFacilityReservationsRequest{
		UserID:           userID,
		FacilityID:       facilityID,
		IncludeCancelled: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// date - сокращение для периода из одного дня
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	// Парсим период если указан явно
	if startDateStr != "" && endDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		if endDate.Before(startDate) {
			return nil, fmt.Errorf("endDate is before startDate")
		}
		req.StartDate = &startDate
		req.EndDate = &endDate
	}

	// Парсим includeCancelled если указан
	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
