package domain

import "github.com/m04kA/RSM-FacilityService/pkg/types"

// AvailableSlot временной слот, доступный для бронирования
// AvailableSpots измеряется в людях: вместимость объекта минус суммарный
// размер групп активных бронирований на этот слот
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
	AvailableSpots  int
	TotalSpots      int
}

// IsFull возвращает true, если в слоте не осталось мест
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// Fits возвращает true, если в слот помещается группа из people человек
func (s *AvailableSlot) Fits(people int) bool {
	return people > 0 && people <= s.AvailableSpots
}

// IsFullyAvailable возвращает true, если слот полностью свободен
func (s *AvailableSlot) IsFullyAvailable() bool {
	return s.AvailableSpots == s.TotalSpots
}

// OccupancyRate возвращает занятость слота в процентах (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalSpots == 0 {
		return 0
	}
	occupied := s.TotalSpots - s.AvailableSpots
	return float64(occupied) / float64(s.TotalSpots) * 100
}
