package facilities

import (
	"context"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	"github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
)

// FacilityRepository интерфейс репозитория объектов
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) (*domain.Facility, error)
	GetByID(ctx context.Context, id int64) (*domain.Facility, error)
	GetBySiteID(ctx context.Context, siteID int64) ([]*domain.Facility, error)
	Update(ctx context.Context, id int64, facility *domain.Facility) (*domain.Facility, error)
	Delete(ctx context.Context, id int64) error
}

// ResidentServiceClient интерфейс клиента для ResidentService
type ResidentServiceClient interface {
	GetResident(ctx context.Context, residentID int64) (*residentservice.Resident, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
