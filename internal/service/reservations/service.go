package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/reservation"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	"github.com/m04kA/RSM-FacilityService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	residentClient  ResidentServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	residentClient ResidentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		residentClient:  residentClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - житель может видеть только своё бронирование
// или если он является менеджером площадки объекта
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetResidentReservations получает историю бронирований жителя
// Опционально фильтрует по статусу
func (s *Service) GetResidentReservations(ctx context.Context, req *models.GetResidentReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetResidentReservations: fetching reservations for resident=%d, status=%v", req.ResidentID, req.Status)

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetResidentReservations: invalid status=%s for resident=%d", *req.Status, req.ResidentID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByResidentID(ctx, req.ResidentID, domainStatus)
	if err != nil {
		s.logger.Error("GetResidentReservations: repository error for resident=%d: %v", req.ResidentID, err)
		return nil, fmt.Errorf("%w: GetResidentReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetResidentReservations: successfully fetched %d reservations for resident=%d", len(reservations), req.ResidentID)
	return models.FromDomainReservationList(reservations), nil
}

// GetFacilityReservations получает бронирования объекта с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований
// Доступно только менеджерам площадки
//
// Примеры использования:
// - Все активные бронирования: GetFacilityReservations(ctx, &GetFacilityReservationsRequest{FacilityID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только завершенные: указать Status = "completed"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetFacilityReservations(ctx context.Context, req *models.GetFacilityReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetFacilityReservations: fetching reservations for facility=%d, user=%d", req.FacilityID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Получаем объект - нужна площадка для проверки прав менеджера
	facility, err := s.facilityRepo.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacilityReservations: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacilityReservations: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityReservations - failed to get facility: %v", ErrInternal, err)
	}

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, facility.SiteID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityReservations: invalid filter for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	reservations, err := s.reservationRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityReservations: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityReservations: successfully fetched %d reservations for facility=%d", len(reservations), req.FacilityID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Житель может отменить только своё бронирование, менеджер площадки - любое
// Повторная отмена уже отменённого бронирования успешна и ничего не меняет
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа до проверки статуса - чужой статус не раскрываем
	if err := s.checkUserAccess(ctx, reservation, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
		return err
	}

	// Повторная отмена - no-op, возвращаем успех
	if reservation.IsCancelled() {
		s.logger.Info("Cancel: reservation id=%d already cancelled", reservationID)
		return nil
	}

	// Завершённое бронирование отменить нельзя
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование - место в слоте сразу возвращается в доступные
	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}

// Complete переводит бронирование в статус completed
// Доступно только менеджерам площадки
func (s *Service) Complete(ctx context.Context, reservationID int64, req *models.CompleteReservationRequest) error {
	s.logger.Info("Complete: completing reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Complete: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Complete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер площадки объекта)
	facility, err := s.facilityRepo.GetByID(ctx, reservation.FacilityID)
	if err != nil {
		s.logger.Error("Complete: failed to get facility id=%d: %v", reservation.FacilityID, err)
		return fmt.Errorf("%w: Complete - failed to get facility: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, facility.SiteID, req.UserID); err != nil {
		return err
	}

	// Повторное завершение - no-op, возвращаем успех
	if reservation.IsCompleted() {
		s.logger.Info("Complete: reservation id=%d already completed", reservationID)
		return nil
	}

	// Отменённое бронирование завершить нельзя
	if reservation.IsCancelled() {
		s.logger.Warn("Complete: reservation id=%d is cancelled and cannot be completed", reservationID)
		return ErrCannotComplete
	}

	// Обновляем статус
	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusCompleted); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Complete: reservation id=%d not found during update", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Complete: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed reservation id=%d", reservationID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Житель может видеть своё бронирование или если он менеджер площадки объекта
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if reservation.ResidentID == userID {
		return nil
	}

	// Менеджер площадки объекта тоже имеет доступ
	facility, err := s.facilityRepo.GetByID(ctx, reservation.FacilityID)
	if err != nil {
		s.logger.Error("checkUserAccess: failed to get facility id=%d: %v", reservation.FacilityID, err)
		return ErrAccessDenied
	}

	if err := s.checkManagerAccess(ctx, facility.SiteID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, siteID int64, userID int64) error {
	// Получаем жителя через ResidentService
	resident, err := s.residentClient.GetResident(ctx, userID)
	if err != nil {
		if errors.Is(err, residentClient.ErrResidentNotFound) {
			s.logger.Warn("checkManagerAccess: resident id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkManagerAccess: failed to get resident id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get resident: %v", ErrInternal, err)
	}

	// Менеджером считается житель с ролью manager на той же площадке
	if resident.IsManager() && resident.SiteID == siteID {
		s.logger.Info("checkManagerAccess: user=%d is manager of site=%d", userID, siteID)
		return nil
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of site=%d", userID, siteID)
	return ErrAccessDenied
}
