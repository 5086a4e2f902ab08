package get_occupancy_report

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
)

// buildReport агрегирует бронирования периода в посуточный отчет занятости
// Дни идут в хронологическом порядке, по одной записи на каждый день периода
// включительно. Занятость дня = суммарный размер групп активных бронирований
// к дневной вместимости объекта (capacity x количество слотов); при нулевой
// дневной вместимости занятость равна 0, а не ошибке деления.
func buildReport(facility *domain.Facility, reservations []*domain.Reservation, startDate, endDate time.Time) *Response {
	dayCapacity := facility.DayCapacity()

	// Группируем бронирования по календарным дням
	type dayTotals struct {
		people       int
		reservations int
	}
	perDay := make(map[time.Time]dayTotals)

	totalReservations := 0
	realizedRevenue := 0.0

	for _, res := range reservations {
		if res.IsCompleted() {
			realizedRevenue += res.TotalFee
		}
		if !res.IsActive() {
			continue
		}

		day := truncateToDay(res.Date)
		totals := perDay[day]
		totals.people += res.NumberOfPeople
		totals.reservations++
		perDay[day] = totals

		totalReservations++
	}

	days := make([]DayUtilization, 0)
	occupancySum := 0.0

	for day := truncateToDay(startDate); !day.After(truncateToDay(endDate)); day = day.AddDate(0, 0, 1) {
		totals := perDay[day]

		rate := 0.0
		if dayCapacity > 0 {
			rate = float64(totals.people) / float64(dayCapacity) * 100
		}

		days = append(days, DayUtilization{
			Date:             day,
			OccupancyRate:    rate,
			ReservationCount: totals.reservations,
			BookedPeople:     totals.people,
		})

		occupancySum += rate
	}

	averageOccupancy := 0.0
	if len(days) > 0 {
		averageOccupancy = occupancySum / float64(len(days))
	}

	return &Response{
		FacilityID:        facility.ID,
		StartDate:         startDate,
		EndDate:           endDate,
		Days:              days,
		TotalReservations: totalReservations,
		AverageOccupancy:  averageOccupancy,
		RealizedRevenue:   realizedRevenue,
	}
}

// truncateToDay обнуляет время внутри даты - сравниваем только календарные дни
// Нормализуем в UTC, чтобы дни из БД и из запроса совпадали как ключи map
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
