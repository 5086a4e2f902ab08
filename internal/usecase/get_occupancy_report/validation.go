package get_occupancy_report

import (
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	start := truncateToDay(req.StartDate)
	end := truncateToDay(req.EndDate)

	if end.Before(start) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidDateRange)
	}

	rangeDays := int(end.Sub(start).Hours()/24) + 1
	if rangeDays > domain.MaxReportRangeDays {
		return fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLarge, rangeDays, domain.MaxReportRangeDays)
	}

	return nil
}
