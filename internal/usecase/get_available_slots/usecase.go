package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
)

// UseCase use case получения доступных слотов объекта на дату
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Генерируем сетку слотов по рабочим часам
	grid, err := generateTimeSlots(facility.OpeningTime, facility.ClosingTime)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// Пустая сетка (opening == closing) - валидный ответ без слотов
	if len(grid) == 0 {
		uc.logger.Info("GetAvailableSlots: facility id=%d has empty slot grid", req.FacilityID)
		return &Response{
			FacilityID: req.FacilityID,
			Date:       req.Date,
			Slots:      []domain.AvailableSlot{},
		}, nil
	}

	// 4. Получаем реестр активных бронирований на дату
	filter := domain.FacilityReservationsFilter{
		FacilityID: req.FacilityID,
		StartDate:  &req.Date,
		EndDate:    &req.Date,
	}

	reservations, err := uc.reservationRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Вычисляем оставшиеся места по каждому слоту
	slots := calculateAvailableSlots(grid, reservations, facility.Capacity)

	uc.logger.Info("GetAvailableSlots: facility=%d, date=%s, %d of %d slots available",
		req.FacilityID, req.Date.Format(domain.DateFormat), len(slots), len(grid))

	return &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
