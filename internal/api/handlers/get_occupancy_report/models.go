package get_occupancy_report

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	getOccupancyReport "github.com/m04kA/RSM-FacilityService/internal/usecase/get_occupancy_report"
)

// OccupancyReportResponse HTTP response model
type OccupancyReportResponse struct {
	FacilityID int64            `json:"facilityId"`
	StartDate  string           `json:"startDate"`
	EndDate    string           `json:"endDate"`
	Days       []DayUtilization `json:"days"`

	TotalReservations int     `json:"totalReservations"`
	AverageOccupancy  float64 `json:"averageOccupancy"`
	RealizedRevenue   float64 `json:"realizedRevenue"`
}

// DayUtilization занятость объекта за один календарный день
type DayUtilization struct {
	Date             string  `json:"date"`
	OccupancyRate    float64 `json:"occupancyRate"`
	ReservationCount int     `json:"reservationCount"`
	BookedPeople     int     `json:"bookedPeople"`
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(facilityID, userID int64, startDateStr, endDateStr string) (*getOccupancyReport.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getOccupancyReport.Request{
		UserID:     userID,
		FacilityID: facilityID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancyReport.Response) *OccupancyReportResponse {
	days := make([]DayUtilization, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = DayUtilization{
			Date:             day.Date.Format(domain.DateFormat),
			OccupancyRate:    day.OccupancyRate,
			ReservationCount: day.ReservationCount,
			BookedPeople:     day.BookedPeople,
		}
	}

	return &OccupancyReportResponse{
		FacilityID:        resp.FacilityID,
		StartDate:         resp.StartDate.Format(domain.DateFormat),
		EndDate:           resp.EndDate.Format(domain.DateFormat),
		Days:              days,
		TotalReservations: resp.TotalReservations,
		AverageOccupancy:  resp.AverageOccupancy,
		RealizedRevenue:   resp.RealizedRevenue,
	}
}
