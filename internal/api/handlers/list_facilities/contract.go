package list_facilities

import (
	"context"

	"github.com/m04kA/RSM-FacilityService/internal/service/facilities/models"
)

type FacilityService interface {
	ListBySite(ctx context.Context, siteID int64) (*models.FacilityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
