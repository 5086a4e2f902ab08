package domain

import (
	"time"

	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// Facility общественный объект жилого комплекса (бассейн, спортзал, лаунж и т.д.)
// Рабочие часы задаются в пределах одних суток, без перехода через полночь.
type Facility struct {
	ID             int64
	SiteID         int64 // ID жилого комплекса, которому принадлежит объект
	Name           string
	Rules          *string // Правила пользования (свободный текст)
	OpeningTime    types.TimeString
	ClosingTime    types.TimeString
	Capacity       int     // Максимальное число людей на один слот
	ReservationFee float64 // Стоимость бронирования на человека, может быть 0

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpenAt возвращает true, если время суток момента t попадает в рабочие часы
// Границы включительно с обеих сторон
func (f *Facility) IsOpenAt(t time.Time) bool {
	tod := types.NewTimeString(t)
	return !tod.IsBefore(f.OpeningTime) && !tod.IsAfter(f.ClosingTime)
}

// SlotCount возвращает количество бронируемых слотов в одном дне
// Равно floor((closing - opening) / SlotDurationMinutes); слот существует,
// только если его полные 30 минут помещаются до закрытия
func (f *Facility) SlotCount() int {
	minutes, err := f.OpeningTime.MinutesBetween(f.ClosingTime)
	if err != nil || minutes <= 0 {
		return 0
	}
	return minutes / SlotDurationMinutes
}

// DayCapacity возвращает суммарную вместимость объекта за день (человеко-слоты)
// Используется отчетом занятости как знаменатель
func (f *Facility) DayCapacity() int {
	return f.Capacity * f.SlotCount()
}

// HasFee возвращает true, если бронирование объекта платное
func (f *Facility) HasFee() bool {
	return f.ReservationFee > 0
}
