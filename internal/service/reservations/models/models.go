package models

import (
	"errors"
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// CompleteReservationRequest запрос на завершение бронирования
type CompleteReservationRequest struct {
	UserID int64 `json:"userId"`
}

// GetResidentReservationsRequest запрос на получение бронирований жителя
type GetResidentReservationsRequest struct {
	ResidentID int64   `json:"residentId"`
	Status     *string `json:"status,omitempty"`
}

// GetFacilityReservationsRequest запрос на получение бронирований объекта
type GetFacilityReservationsRequest struct {
	UserID           int64      `json:"userId"`
	FacilityID       int64      `json:"facilityId"`
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetFacilityReservationsRequest) ToDomainFilter() (domain.FacilityReservationsFilter, error) {
	filter := domain.FacilityReservationsFilter{
		FacilityID:       r.FacilityID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             int64  `json:"id"`
	FacilityID     int64  `json:"facilityId"`
	ResidentID     int64  `json:"residentId"`
	Date           string `json:"date"`     // "2026-08-27"
	TimeSlot       string `json:"timeSlot"` // "10:00"
	NumberOfPeople int    `json:"numberOfPeople"`
	Status         string `json:"status"`

	// Денормализованные данные
	TotalFee     float64 `json:"totalFee"`
	ResidentName string  `json:"residentName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		FacilityID:         r.FacilityID,
		ResidentID:         r.ResidentID,
		Date:               r.Date.Format(domain.DateFormat),
		TimeSlot:           r.TimeSlot.String(),
		NumberOfPeople:     r.NumberOfPeople,
		Status:             string(r.Status),
		TotalFee:           r.TotalFee,
		ResidentName:       r.ResidentName,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations[i] = *reservationResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusBooked,
		domain.StatusCancelled,
		domain.StatusCompleted,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
