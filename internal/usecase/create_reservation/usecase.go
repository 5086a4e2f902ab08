package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
)

// UseCase use case создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	residentClient  ResidentServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	residentClient ResidentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		residentClient:  residentClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой реестра дня (FOR UPDATE) - два конкурентных запроса на один
// слот не могут совместно превысить вместимость объекта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: resident=%d, facility=%d, date=%s, slot=%s, people=%d",
		req.ResidentID, req.FacilityID, req.Date.Format(domain.DateFormat), req.TimeSlot, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			uc.logger.Warn("CreateReservation: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateReservation: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Резолвим жителя для денормализации имени
	// При недоступности ResidentService бронирование создается без имени
	residentName := ""
	resident, err := uc.residentClient.GetResidentWithGracefulDegradation(ctx, req.ResidentID)
	switch {
	case err == nil:
		residentName = resident.Name
	case errors.Is(err, residentClient.ErrResidentNotFound):
		uc.logger.Warn("CreateReservation: resident id=%d not found", req.ResidentID)
		return nil, ErrResidentNotFound
	case errors.Is(err, residentClient.ErrServiceDegraded):
		uc.logger.Warn("CreateReservation: proceeding without resident name for resident_id=%d", req.ResidentID)
	default:
		uc.logger.Error("CreateReservation: failed to get resident id=%d: %v", req.ResidentID, err)
		return nil, fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	// 4. Проверяем, что запрошенный слот лежит на сетке запрошенной даты
	if err := validateSlotOnGrid(facility, req.TimeSlot); err != nil {
		uc.logger.Warn("CreateReservation: slot validation failed for facility=%d, slot=%s: %v",
			req.FacilityID, req.TimeSlot, err)
		return nil, err
	}

	var result *domain.Reservation

	// 5. Admission check + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Забираем реестр активных бронирований дня с блокировкой (FOR UPDATE)
		filter := domain.FacilityReservationsFilter{
			FacilityID: req.FacilityID,
			StartDate:  &req.Date,
			EndDate:    &req.Date,
		}

		reservations, err := uc.reservationRepo.GetByFacilityWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.2. Инвариант вместимости: сумма групп активных бронирований слота
		// вместе с новой группой не должна превышать capacity
		booked := countBookedPeople(req.TimeSlot, reservations)
		if booked+req.NumberOfPeople > facility.Capacity {
			uc.logger.Warn("CreateReservation: capacity exceeded for facility=%d, slot=%s: %d booked + %d requested > %d",
				req.FacilityID, req.TimeSlot, booked, req.NumberOfPeople, facility.Capacity)
			return ErrCapacityExceeded
		}

		uc.logger.Info("CreateReservation: slot available, %d/%d spots taken",
			booked, facility.Capacity)

		// 5.3. Создаем бронирование
		// Стоимость считается здесь, вне ядра доступности: fee за человека
		reservation := &domain.Reservation{
			FacilityID:     req.FacilityID,
			ResidentID:     req.ResidentID,
			Date:           req.Date,
			TimeSlot:       req.TimeSlot,
			NumberOfPeople: req.NumberOfPeople,
			Status:         domain.StatusBooked,
			TotalFee:       facility.ReservationFee * float64(req.NumberOfPeople),
			ResidentName:   residentName,
			Notes:          req.Notes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		FacilityID:     result.FacilityID,
		ResidentID:     result.ResidentID,
		Date:           result.Date,
		TimeSlot:       result.TimeSlot,
		NumberOfPeople: result.NumberOfPeople,
		Status:         string(result.Status),
		TotalFee:       result.TotalFee,
		ResidentName:   result.ResidentName,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
