package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name    string
		opening types.TimeString
		closing types.TimeString
		want    []types.TimeString
	}{
		{
			name:    "two hour window",
			opening: "09:00",
			closing: "11:00",
			want:    []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:    "zero window produces empty grid",
			opening: "10:00",
			closing: "10:00",
			want:    []types.TimeString{},
		},
		{
			// Частичный хвост отбрасывается: слот 10:30 не помещается до 10:45
			name:    "uneven closing drops partial slot",
			opening: "09:00",
			closing: "10:45",
			want:    []types.TimeString{"09:00", "09:30", "10:00"},
		},
		{
			name:    "window shorter than slot",
			opening: "09:00",
			closing: "09:20",
			want:    []types.TimeString{},
		},
		{
			name:    "inverted hours produce empty grid",
			opening: "22:00",
			closing: "08:00",
			want:    []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateTimeSlots(tt.opening, tt.closing)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first, err := generateTimeSlots("08:00", "22:00")
	require.NoError(t, err)
	require.Len(t, first, 28)

	// Одинаковые входные данные дают одинаковую сетку
	second, err := generateTimeSlots("08:00", "22:00")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateTimeSlots_InvalidInput(t *testing.T) {
	_, err := generateTimeSlots("bad", "11:00")
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)

	_, err = generateTimeSlots("09:00", "11:0")
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestCountBookedPeople(t *testing.T) {
	reservations := []*domain.Reservation{
		{TimeSlot: "10:00", NumberOfPeople: 2, Status: domain.StatusBooked},
		{TimeSlot: "10:00", NumberOfPeople: 1, Status: domain.StatusCompleted},
		// Отмененные бронирования не занимают места
		{TimeSlot: "10:00", NumberOfPeople: 5, Status: domain.StatusCancelled},
		{TimeSlot: "10:30", NumberOfPeople: 3, Status: domain.StatusBooked},
	}

	assert.Equal(t, 3, countBookedPeople("10:00", reservations))
	assert.Equal(t, 3, countBookedPeople("10:30", reservations))
	assert.Equal(t, 0, countBookedPeople("11:00", reservations))
}

func TestCalculateAvailableSlots(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30", "10:00", "10:30"}

	reservations := []*domain.Reservation{
		// Слот 09:00 занят полностью
		{TimeSlot: "09:00", NumberOfPeople: 2, Status: domain.StatusBooked},
		// Слот 09:30 занят частично
		{TimeSlot: "09:30", NumberOfPeople: 1, Status: domain.StatusBooked},
		// Отмененное бронирование возвращает место в слоте
		{TimeSlot: "10:00", NumberOfPeople: 2, Status: domain.StatusCancelled},
	}

	slots := calculateAvailableSlots(grid, reservations, 2)

	// Полный слот 09:00 исключается из выдачи
	require.Len(t, slots, 3)

	assert.Equal(t, types.TimeString("09:30"), slots[0].StartTime)
	assert.Equal(t, 1, slots[0].AvailableSpots)
	assert.Equal(t, 2, slots[0].TotalSpots)
	assert.Equal(t, domain.SlotDurationMinutes, slots[0].DurationMinutes)

	assert.Equal(t, types.TimeString("10:00"), slots[1].StartTime)
	assert.Equal(t, 2, slots[1].AvailableSpots)

	assert.Equal(t, types.TimeString("10:30"), slots[2].StartTime)
	assert.Equal(t, 2, slots[2].AvailableSpots)
}

func TestCalculateAvailableSlots_EmptyRegistry(t *testing.T) {
	grid := []types.TimeString{"09:00", "09:30"}

	slots := calculateAvailableSlots(grid, nil, 4)

	require.Len(t, slots, 2)
	for _, slot := range slots {
		assert.Equal(t, 4, slot.AvailableSpots)
		assert.Equal(t, 4, slot.TotalSpots)
	}
}

func TestValidateRequest(t *testing.T) {
	err := validateRequest(&Request{FacilityID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = validateRequest(&Request{FacilityID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
