package create_reservation

import (
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResidentID <= 0 {
		return fmt.Errorf("%w: residentID must be positive", ErrInvalidInput)
	}

	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotOnGrid проверяет, что запрошенный слот лежит на сетке объекта
// Проверка идет против рабочих часов запрошенной даты, а не текущего момента:
// бронирование на вторник проверяется по расписанию вторника.
// Слот вне рабочих часов (или пустая сетка) - ErrFacilityClosed;
// слот внутри часов, но не кратный шагу сетки - ErrInvalidTimeSlot.
func validateSlotOnGrid(facility *domain.Facility, slot types.TimeString) error {
	grid, err := generateTimeSlots(facility.OpeningTime, facility.ClosingTime)
	if err != nil {
		return fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	if len(grid) == 0 {
		return ErrFacilityClosed
	}

	lastSlot := grid[len(grid)-1]
	if slot.IsBefore(grid[0]) || slot.IsAfter(lastSlot) {
		return ErrFacilityClosed
	}

	for _, gridSlot := range grid {
		if gridSlot.Equal(slot) {
			return nil
		}
	}

	return ErrInvalidTimeSlot
}

// generateTimeSlots генерирует сетку слотов дня для рабочих часов объекта
// Слот попадает в сетку, только если его полные 30 минут помещаются до закрытия
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
