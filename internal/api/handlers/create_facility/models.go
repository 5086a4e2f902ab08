package create_facility

import (
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities/models"
)

// CreateFacilityRequest HTTP request model
type CreateFacilityRequest struct {
	SiteID         int64   `json:"siteId"`
	Name           string  `json:"name"`
	Rules          *string `json:"rules,omitempty"`
	OpeningTime    string  `json:"openingTime"` // "08:00"
	ClosingTime    string  `json:"closingTime"` // "22:00"
	Capacity       int     `json:"capacity"`
	ReservationFee float64 `json:"reservationFee"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
// userID берется из контекста аутентификации
func (r *CreateFacilityRequest) ToServiceRequest(userID int64) *models.CreateFacilityRequest {
	return &models.CreateFacilityRequest{
		UserID:         userID,
		SiteID:         r.SiteID,
		Name:           r.Name,
		Rules:          r.Rules,
		OpeningTime:    r.OpeningTime,
		ClosingTime:    r.ClosingTime,
		Capacity:       r.Capacity,
		ReservationFee: r.ReservationFee,
	}
}
