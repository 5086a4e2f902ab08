package domain

// SlotDurationMinutes длительность бронируемого слота
// Сетка слотов фиксированная: слоты идут с шагом 30 минут от времени открытия
const SlotDurationMinutes = 30

// Business validation constants
const (
	MinCapacity           = 1
	MaxCapacity           = 500
	MinNumberOfPeople     = 1
	MaxNotesLength        = 500
	MaxCancellationReason = 500
	MaxFacilityNameLength = 200
	MaxRulesLength        = 2000

	// MaxReportRangeDays максимальная длина периода отчета занятости
	MaxReportRangeDays = 92
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих место в слоте
// Используется при подсчете доступных мест
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих место в слоте
var ActiveStatuses = []ReservationStatus{
	StatusBooked,
	StatusCompleted,
}
