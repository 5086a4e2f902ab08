package get_available_slots

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FacilityID int64     // ID объекта
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
// Полностью занятые слоты в список не попадают
type Response struct {
	FacilityID int64                  // ID объекта
	Date       time.Time              // Дата, на которую запрашивались слоты
	Slots      []domain.AvailableSlot // Доступные слоты в порядке сетки
}
