package create_reservation

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ResidentID     int64            // ID жителя
	FacilityID     int64            // ID объекта
	Date           time.Time        // Дата бронирования (без времени)
	TimeSlot       types.TimeString // Время начала слота (например, "09:30")
	NumberOfPeople int              // Размер группы
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64            // ID созданного бронирования
	FacilityID     int64            // ID объекта
	ResidentID     int64            // ID жителя
	Date           time.Time        // Дата бронирования
	TimeSlot       types.TimeString // Время начала слота
	NumberOfPeople int              // Размер группы
	Status         string           // Статус бронирования
	TotalFee       float64          // Итоговая стоимость (fee объекта x размер группы)

	// Денормализованные данные
	ResidentName string  // Имя жителя (пустое при недоступности ResidentService)
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
