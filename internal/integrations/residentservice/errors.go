package residentservice

import "errors"

var (
	// ErrResidentNotFound возвращается, когда житель не найден
	ErrResidentNotFound = errors.New("resident not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("residentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("residentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ResidentService недоступен: бронирование можно создать
	// без денормализованного имени жителя
	ErrServiceDegraded = errors.New("residentservice unavailable: graceful degradation applied")
)
