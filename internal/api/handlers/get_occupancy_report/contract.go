package get_occupancy_report

import (
	"context"

	getOccupancyReport "github.com/m04kA/RSM-FacilityService/internal/usecase/get_occupancy_report"
)

type GetOccupancyReportUseCase interface {
	Execute(ctx context.Context, req *getOccupancyReport.Request) (*getOccupancyReport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
