package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

func newTestFacility(opening, closing types.TimeString, capacity int) *Facility {
	return &Facility{
		ID:          1,
		SiteID:      10,
		Name:        "Бассейн",
		OpeningTime: opening,
		ClosingTime: closing,
		Capacity:    capacity,
	}
}

func TestFacility_IsOpenAt(t *testing.T) {
	f := newTestFacility("08:00", "22:00", 10)

	at := func(hour, min int) time.Time {
		return time.Date(2026, 8, 27, hour, min, 0, 0, time.UTC)
	}

	assert.True(t, f.IsOpenAt(at(12, 0)))
	// Границы включительно с обеих сторон
	assert.True(t, f.IsOpenAt(at(8, 0)))
	assert.True(t, f.IsOpenAt(at(22, 0)))

	assert.False(t, f.IsOpenAt(at(7, 59)))
	assert.False(t, f.IsOpenAt(at(22, 1)))
}

func TestFacility_SlotCount(t *testing.T) {
	tests := []struct {
		name    string
		opening types.TimeString
		closing types.TimeString
		want    int
	}{
		{"two hours", "09:00", "11:00", 4},
		{"full day", "08:00", "22:00", 28},
		{"zero window", "10:00", "10:00", 0},
		{"inverted hours", "22:00", "08:00", 0},
		// Неполный хвост отбрасывается - слот должен целиком помещаться до закрытия
		{"uneven closing", "09:00", "10:45", 3},
		{"less than one slot", "09:00", "09:20", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFacility(tt.opening, tt.closing, 10)
			assert.Equal(t, tt.want, f.SlotCount())
		})
	}
}

func TestFacility_DayCapacity(t *testing.T) {
	f := newTestFacility("09:00", "11:00", 2)
	// 4 слота x 2 человека
	assert.Equal(t, 8, f.DayCapacity())

	f = newTestFacility("10:00", "10:00", 5)
	assert.Equal(t, 0, f.DayCapacity())
}

func TestFacility_HasFee(t *testing.T) {
	f := newTestFacility("08:00", "22:00", 10)
	assert.False(t, f.HasFee())

	f.ReservationFee = 150
	assert.True(t, f.HasFee())
}

func TestReservation_StatusPredicates(t *testing.T) {
	booked := &Reservation{Status: StatusBooked}
	cancelled := &Reservation{Status: StatusCancelled}
	completed := &Reservation{Status: StatusCompleted}

	// Завершенные бронирования продолжают занимать место в прошедших слотах
	assert.True(t, booked.IsActive())
	assert.True(t, completed.IsActive())
	assert.False(t, cancelled.IsActive())

	assert.True(t, booked.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, completed.CanBeCancelled())

	assert.True(t, cancelled.IsCancelled())
	assert.True(t, completed.IsCompleted())
}

func TestAvailableSlot(t *testing.T) {
	slot := &AvailableSlot{
		StartTime:       "10:00",
		DurationMinutes: SlotDurationMinutes,
		AvailableSpots:  3,
		TotalSpots:      10,
	}

	assert.False(t, slot.IsFull())
	assert.False(t, slot.IsFullyAvailable())
	assert.True(t, slot.Fits(3))
	assert.False(t, slot.Fits(4))
	assert.False(t, slot.Fits(0))
	assert.InDelta(t, 70.0, slot.OccupancyRate(), 0.001)

	full := &AvailableSlot{StartTime: "11:00", AvailableSpots: 0, TotalSpots: 10}
	assert.True(t, full.IsFull())
	assert.InDelta(t, 100.0, full.OccupancyRate(), 0.001)

	empty := &AvailableSlot{StartTime: "12:00", AvailableSpots: 0, TotalSpots: 0}
	assert.InDelta(t, 0.0, empty.OccupancyRate(), 0.001)
}
