package get_occupancy_report

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
)

// UseCase use case построения отчета занятости объекта за период
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	residentClient  ResidentServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	residentClient ResidentServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		residentClient:  residentClient,
		logger:          logger,
	}
}

// Execute выполняет use case построения отчета занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancyReport: facility=%d, period=%s..%s",
		req.FacilityID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancyReport: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetOccupancyReport: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetOccupancyReport: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Отчет доступен только менеджеру площадки объекта
	if err := uc.checkManagerAccess(ctx, facility.SiteID, req.UserID); err != nil {
		return nil, err
	}

	// 4. Забираем все бронирования периода, включая отмененные:
	// buildReport сам фильтрует активные и завершенные
	filter := domain.FacilityReservationsFilter{
		FacilityID:       req.FacilityID,
		StartDate:        &req.StartDate,
		EndDate:          &req.EndDate,
		IncludeCancelled: true,
	}

	reservations, err := uc.reservationRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetOccupancyReport: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Агрегируем посуточный отчет
	report := buildReport(facility, reservations, req.StartDate, req.EndDate)

	uc.logger.Info("GetOccupancyReport: facility=%d, %d days, avg occupancy %.1f%%",
		req.FacilityID, len(report.Days), report.AverageOccupancy)

	return report, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (uc *UseCase) checkManagerAccess(ctx context.Context, siteID int64, userID int64) error {
	resident, err := uc.residentClient.GetResident(ctx, userID)
	if err != nil {
		if errors.Is(err, residentClient.ErrResidentNotFound) {
			uc.logger.Warn("GetOccupancyReport: resident id=%d not found", userID)
			return ErrAccessDenied
		}
		uc.logger.Error("GetOccupancyReport: failed to get resident id=%d: %v", userID, err)
		return fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	if resident.IsManager() && resident.SiteID == siteID {
		return nil
	}

	uc.logger.Warn("GetOccupancyReport: user=%d is not a manager of site=%d", userID, siteID)
	return ErrAccessDenied
}
