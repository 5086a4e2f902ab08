package domain

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation бронирование слота общественного объекта
// Переходы статусов: booked -> cancelled, booked -> completed; оба конечные.
// Отмена - soft delete: строка остается для истории и отчетности.
type Reservation struct {
	ID              int64
	FacilityID      int64
	ResidentID      int64
	Date            time.Time // Календарный день, время внутри значения игнорируется
	TimeSlot        types.TimeString
	NumberOfPeople  int
	Status          ReservationStatus
	TotalFee        float64

	// Денормализованные данные для истории
	ResidentName string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает место в слоте
// Завершенные бронирования остаются активными для подсчета прошедшей занятости
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusBooked
}

// IsCancelled возвращает true, если бронирование отменено
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// IsCompleted возвращает true, если бронирование завершено
func (r *Reservation) IsCompleted() bool {
	return r.Status == StatusCompleted
}

// FacilityReservationsFilter фильтр для получения бронирований объекта
type FacilityReservationsFilter struct {
	FacilityID       int64              // Обязательный параметр
	StartDate        *time.Time         // Начало периода (опционально)
	EndDate          *time.Time         // Конец периода (опционально)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
}
