package get_occupancy_report

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("get_occupancy_report: facility not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("get_occupancy_report: access denied")

	// ErrInvalidDateRange возвращается при некорректном периоде отчета
	ErrInvalidDateRange = errors.New("get_occupancy_report: invalid date range")

	// ErrRangeTooLarge возвращается, когда период превышает MaxReportRangeDays
	ErrRangeTooLarge = errors.New("get_occupancy_report: date range too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_occupancy_report: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy_report: internal error")
)
