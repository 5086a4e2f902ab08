package create_reservation

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	createReservation "github.com/m04kA/RSM-FacilityService/internal/usecase/create_reservation"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FacilityID     int64   `json:"facilityId"`
	Date           string  `json:"date"`     // "2026-08-27"
	TimeSlot       string  `json:"timeSlot"` // "10:00"
	NumberOfPeople int     `json:"numberOfPeople"`
	Notes          *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	FacilityID     int64   `json:"facilityId"`
	ResidentID     int64   `json:"residentId"`
	Date           string  `json:"date"`
	TimeSlot       string  `json:"timeSlot"`
	NumberOfPeople int     `json:"numberOfPeople"`
	Status         string  `json:"status"`
	TotalFee       float64 `json:"totalFee"`
	ResidentName   string  `json:"residentName,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// residentID берется из контекста аутентификации, а не из тела запроса
func (r *CreateReservationRequest) ToUseCaseRequest(residentID int64) (*createReservation.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время начала слота
	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		ResidentID:     residentID,
		FacilityID:     r.FacilityID,
		Date:           date,
		TimeSlot:       timeSlot,
		NumberOfPeople: r.NumberOfPeople,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		FacilityID:     resp.FacilityID,
		ResidentID:     resp.ResidentID,
		Date:           resp.Date.Format(domain.DateFormat),
		TimeSlot:       resp.TimeSlot.String(),
		NumberOfPeople: resp.NumberOfPeople,
		Status:         resp.Status,
		TotalFee:       resp.TotalFee,
		ResidentName:   resp.ResidentName,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
