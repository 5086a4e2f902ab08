package get_available_slots

import (
	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// generateTimeSlots генерирует сетку слотов дня для рабочих часов объекта
// Слоты идут с шагом domain.SlotDurationMinutes от времени открытия; слот
// попадает в сетку, только если его полные 30 минут помещаются до закрытия.
// Частичного хвостового слота не бывает, поэтому количество слотов всегда
// равно floor((closing - opening) / 30).
// Чистая функция двух времен: при opening == closing сетка пустая.
func generateTimeSlots(openTime, closeTime types.TimeString) ([]types.TimeString, error) {
	if err := openTime.Validate(); err != nil {
		return nil, err
	}
	if err := closeTime.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		slotEnd, err := currentSlot.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, currentSlot)
		currentSlot = slotEnd
	}

	return slots, nil
}

// countBookedPeople суммирует размер групп активных бронирований на слот
// Слот сравнивается точно: бронирования выровнены по сетке, пересечений
// соседних слотов нет
func countBookedPeople(slot types.TimeString, reservations []*domain.Reservation) int {
	total := 0

	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if res.TimeSlot.Equal(slot) {
			total += res.NumberOfPeople
		}
	}

	return total
}

// calculateAvailableSlots вычисляет доступные слоты по сетке и реестру бронирований
// Полностью занятые слоты (booked >= capacity) исключаются из результата
func calculateAvailableSlots(
	grid []types.TimeString,
	reservations []*domain.Reservation,
	capacity int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0, len(grid))

	for _, slotStart := range grid {
		booked := countBookedPeople(slotStart, reservations)
		if booked >= capacity {
			continue
		}

		result = append(result, domain.AvailableSlot{
			StartTime:       slotStart,
			DurationMinutes: domain.SlotDurationMinutes,
			AvailableSpots:  capacity - booked,
			TotalSpots:      capacity,
		})
	}

	return result
}
