package get_occupancy_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
)

func reportFacility() *domain.Facility {
	// 4 слота x 2 человека = дневная вместимость 8
	return &domain.Facility{
		ID:          1,
		SiteID:      10,
		Name:        "Сауна",
		OpeningTime: "09:00",
		ClosingTime: "11:00",
		Capacity:    2,
	}
}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildReport_EmptyPeriod(t *testing.T) {
	resp := buildReport(reportFacility(), nil, day(1), day(3))

	require.Len(t, resp.Days, 3)
	for i, d := range resp.Days {
		assert.Equal(t, day(1+i), d.Date)
		assert.InDelta(t, 0.0, d.OccupancyRate, 0.001)
		assert.Equal(t, 0, d.ReservationCount)
	}

	assert.Equal(t, 0, resp.TotalReservations)
	assert.InDelta(t, 0.0, resp.AverageOccupancy, 0.001)
	assert.InDelta(t, 0.0, resp.RealizedRevenue, 0.001)
}

func TestBuildReport_SingleDay(t *testing.T) {
	reservations := []*domain.Reservation{
		{Date: day(1), TimeSlot: "10:00", NumberOfPeople: 1, Status: domain.StatusBooked},
	}

	resp := buildReport(reportFacility(), reservations, day(1), day(1))

	require.Len(t, resp.Days, 1)
	// 1 человек из дневной вместимости 8
	assert.InDelta(t, 12.5, resp.Days[0].OccupancyRate, 0.001)
	assert.Equal(t, 1, resp.Days[0].ReservationCount)
	assert.Equal(t, 1, resp.Days[0].BookedPeople)
	assert.Equal(t, 1, resp.TotalReservations)
}

func TestBuildReport_CancelledExcluded(t *testing.T) {
	reservations := []*domain.Reservation{
		{Date: day(1), TimeSlot: "09:00", NumberOfPeople: 2, Status: domain.StatusBooked},
		// Отмененные не участвуют ни в занятости, ни в выручке
		{Date: day(1), TimeSlot: "09:30", NumberOfPeople: 2, Status: domain.StatusCancelled, TotalFee: 500},
		// Завершенные занимают место и формируют выручку
		{Date: day(1), TimeSlot: "10:00", NumberOfPeople: 2, Status: domain.StatusCompleted, TotalFee: 300},
	}

	resp := buildReport(reportFacility(), reservations, day(1), day(1))

	require.Len(t, resp.Days, 1)
	assert.Equal(t, 4, resp.Days[0].BookedPeople)
	assert.Equal(t, 2, resp.Days[0].ReservationCount)
	assert.InDelta(t, 50.0, resp.Days[0].OccupancyRate, 0.001)

	assert.Equal(t, 2, resp.TotalReservations)
	assert.InDelta(t, 300.0, resp.RealizedRevenue, 0.001)
}

func TestBuildReport_AverageAcrossDays(t *testing.T) {
	reservations := []*domain.Reservation{
		// День 1: 4 человека из 8 = 50%
		{Date: day(1), TimeSlot: "09:00", NumberOfPeople: 4, Status: domain.StatusBooked},
		// День 2 пустой, день 3: 8 из 8 = 100%
		{Date: day(3), TimeSlot: "09:00", NumberOfPeople: 8, Status: domain.StatusBooked},
	}

	resp := buildReport(reportFacility(), reservations, day(1), day(3))

	require.Len(t, resp.Days, 3)
	assert.InDelta(t, 50.0, resp.Days[0].OccupancyRate, 0.001)
	assert.InDelta(t, 0.0, resp.Days[1].OccupancyRate, 0.001)
	assert.InDelta(t, 100.0, resp.Days[2].OccupancyRate, 0.001)
	assert.InDelta(t, 50.0, resp.AverageOccupancy, 0.001)
}

func TestBuildReport_ZeroDayCapacity(t *testing.T) {
	facility := reportFacility()
	facility.OpeningTime = "10:00"
	facility.ClosingTime = "10:00"

	reservations := []*domain.Reservation{
		{Date: day(1), TimeSlot: "10:00", NumberOfPeople: 2, Status: domain.StatusBooked},
	}

	// Пустая сетка - занятость 0, а не деление на ноль
	resp := buildReport(facility, reservations, day(1), day(1))

	require.Len(t, resp.Days, 1)
	assert.InDelta(t, 0.0, resp.Days[0].OccupancyRate, 0.001)
}

func TestBuildReport_TimezoneNormalization(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	// Дата из БД пришла с таймзоной - должна сгруппироваться с днем запроса
	reservations := []*domain.Reservation{
		{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, msk), TimeSlot: "09:00", NumberOfPeople: 2, Status: domain.StatusBooked},
	}

	resp := buildReport(reportFacility(), reservations, day(1), day(1))

	require.Len(t, resp.Days, 1)
	assert.Equal(t, 2, resp.Days[0].BookedPeople)
}

func TestValidateReportRequest(t *testing.T) {
	valid := &Request{
		UserID:     1,
		FacilityID: 1,
		StartDate:  day(1),
		EndDate:    day(7),
	}
	assert.NoError(t, validateRequest(valid))

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"non-positive facilityID", func(r *Request) { r.FacilityID = 0 }, ErrInvalidInput},
		{"zero start date", func(r *Request) { r.StartDate = time.Time{} }, ErrInvalidInput},
		{"zero end date", func(r *Request) { r.EndDate = time.Time{} }, ErrInvalidInput},
		{"end before start", func(r *Request) { r.EndDate = day(1); r.StartDate = day(7) }, ErrInvalidDateRange},
		{
			"range too large",
			func(r *Request) { r.EndDate = r.StartDate.AddDate(0, 0, domain.MaxReportRangeDays) },
			ErrRangeTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *valid
			tt.mutate(&req)
			assert.ErrorIs(t, validateRequest(&req), tt.wantErr)
		})
	}

	// Граница диапазона включительно
	edge := *valid
	edge.EndDate = edge.StartDate.AddDate(0, 0, domain.MaxReportRangeDays-1)
	assert.NoError(t, validateRequest(&edge))
}
