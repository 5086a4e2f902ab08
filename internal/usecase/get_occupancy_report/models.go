package get_occupancy_report

import "time"

// Request модель запроса отчета занятости
type Request struct {
	UserID     int64     // ID пользователя, запрашивающего отчет
	FacilityID int64     // ID объекта
	StartDate  time.Time // Начало периода (включительно)
	EndDate    time.Time // Конец периода (включительно)
}

// Response модель ответа с отчетом занятости за период
type Response struct {
	FacilityID int64            // ID объекта
	StartDate  time.Time        // Начало периода
	EndDate    time.Time        // Конец периода
	Days       []DayUtilization // По одной записи на календарный день, по возрастанию даты

	// Итоги за период
	TotalReservations int     // Количество активных бронирований за период
	AverageOccupancy  float64 // Средняя занятость по дням периода (0-100)
	RealizedRevenue   float64 // Сумма TotalFee завершенных бронирований за период
}

// DayUtilization занятость объекта за один календарный день
type DayUtilization struct {
	Date             time.Time // Календарный день
	OccupancyRate    float64   // Занятость в процентах (0-100)
	ReservationCount int       // Количество активных бронирований
	BookedPeople     int       // Суммарный размер групп активных бронирований
}
