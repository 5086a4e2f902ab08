package update_facility

import (
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities/models"
)

// UpdateFacilityRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateFacilityRequest struct {
	Name           *string  `json:"name,omitempty"`
	Rules          *string  `json:"rules,omitempty"`
	OpeningTime    *string  `json:"openingTime,omitempty"`
	ClosingTime    *string  `json:"closingTime,omitempty"`
	Capacity       *int     `json:"capacity,omitempty"`
	ReservationFee *float64 `json:"reservationFee,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берется из контекста аутентификации
func (r *UpdateFacilityRequest) ToServiceRequest(userID int64) *models.UpdateFacilityRequest {
	return &models.UpdateFacilityRequest{
		UserID:         userID,
		Name:           r.Name,
		Rules:          r.Rules,
		OpeningTime:    r.OpeningTime,
		ClosingTime:    r.ClosingTime,
		Capacity:       r.Capacity,
		ReservationFee: r.ReservationFee,
	}
}
