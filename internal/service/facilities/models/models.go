package models

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// Request модели

// CreateFacilityRequest запрос на создание объекта инфраструктуры
type CreateFacilityRequest struct {
	UserID         int64   `json:"userId"`
	SiteID         int64   `json:"siteId"`
	Name           string  `json:"name"`
	Rules          *string `json:"rules,omitempty"`
	OpeningTime    string  `json:"openingTime"` // "08:00"
	ClosingTime    string  `json:"closingTime"` // "22:00"
	Capacity       int     `json:"capacity"`
	ReservationFee float64 `json:"reservationFee"`
}

// ToDomainFacility конвертирует CreateFacilityRequest в domain модель
// Часы работы уже провалидированы сервисом
func (r *CreateFacilityRequest) ToDomainFacility() *domain.Facility {
	return &domain.Facility{
		SiteID:         r.SiteID,
		Name:           r.Name,
		Rules:          r.Rules,
		OpeningTime:    types.TimeString(r.OpeningTime),
		ClosingTime:    types.TimeString(r.ClosingTime),
		Capacity:       r.Capacity,
		ReservationFee: r.ReservationFee,
	}
}

// UpdateFacilityRequest запрос на обновление объекта
// Все поля опциональны - обновляются только переданные значения
type UpdateFacilityRequest struct {
	UserID         int64    `json:"userId"`
	Name           *string  `json:"name,omitempty"`
	Rules          *string  `json:"rules,omitempty"`
	OpeningTime    *string  `json:"openingTime,omitempty"`
	ClosingTime    *string  `json:"closingTime,omitempty"`
	Capacity       *int     `json:"capacity,omitempty"`
	ReservationFee *float64 `json:"reservationFee,omitempty"`
}

// ApplyToFacility применяет обновления к существующему объекту
// Обновляются только непустые (not nil) поля из request
func (r *UpdateFacilityRequest) ApplyToFacility(facility *domain.Facility) {
	if r.Name != nil {
		facility.Name = *r.Name
	}
	if r.Rules != nil {
		facility.Rules = r.Rules
	}
	if r.OpeningTime != nil {
		facility.OpeningTime = types.TimeString(*r.OpeningTime)
	}
	if r.ClosingTime != nil {
		facility.ClosingTime = types.TimeString(*r.ClosingTime)
	}
	if r.Capacity != nil {
		facility.Capacity = *r.Capacity
	}
	if r.ReservationFee != nil {
		facility.ReservationFee = *r.ReservationFee
	}
}

// Response модели

// FacilityResponse ответ с данными объекта инфраструктуры
type FacilityResponse struct {
	ID             int64   `json:"id"`
	SiteID         int64   `json:"siteId"`
	Name           string  `json:"name"`
	Rules          *string `json:"rules,omitempty"`
	OpeningTime    string  `json:"openingTime"` // "08:00"
	ClosingTime    string  `json:"closingTime"` // "22:00"
	Capacity       int     `json:"capacity"`
	ReservationFee float64 `json:"reservationFee"`

	// Производные данные
	SlotDurationMinutes int  `json:"slotDurationMinutes"`
	IsOpenNow           bool `json:"isOpenNow"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FacilityListResponse ответ со списком объектов
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
}

// Методы конвертации

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	if f == nil {
		return nil
	}

	return &FacilityResponse{
		ID:                  f.ID,
		SiteID:              f.SiteID,
		Name:                f.Name,
		Rules:               f.Rules,
		OpeningTime:         f.OpeningTime.String(),
		ClosingTime:         f.ClosingTime.String(),
		Capacity:            f.Capacity,
		ReservationFee:      f.ReservationFee,
		SlotDurationMinutes: domain.SlotDurationMinutes,
		IsOpenNow:           f.IsOpenAt(time.Now()),
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}
}

// FromDomainFacilityList конвертирует список domain моделей в DTO
func FromDomainFacilityList(facilities []*domain.Facility) *FacilityListResponse {
	if facilities == nil {
		return &FacilityListResponse{
			Facilities: []FacilityResponse{},
		}
	}

	resp := &FacilityListResponse{
		Facilities: make([]FacilityResponse, len(facilities)),
	}

	for i, facility := range facilities {
		if facilityResp := FromDomainFacility(facility); facilityResp != nil {
			resp.Facilities[i] = *facilityResp
		}
	}

	return resp
}
