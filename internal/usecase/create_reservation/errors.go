package create_reservation

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("create_reservation: facility not found")

	// ErrResidentNotFound возвращается, когда житель не найден
	ErrResidentNotFound = errors.New("create_reservation: resident not found")

	// ErrFacilityClosed возвращается, когда запрошенный слот вне рабочих часов объекта
	// Объект с пустой сеткой (opening == closing) закрыт для любого слота
	ErrFacilityClosed = errors.New("create_reservation: facility is closed at this time")

	// ErrInvalidTimeSlot возвращается, когда время слота внутри рабочих часов,
	// но не выровнено по 30-минутной сетке
	ErrInvalidTimeSlot = errors.New("create_reservation: time slot is not on the grid")

	// ErrCapacityExceeded возвращается, когда группа не помещается в оставшиеся места слота
	ErrCapacityExceeded = errors.New("create_reservation: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
