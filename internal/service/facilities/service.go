package facilities

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities/models"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// Service сервис для работы с объектами инфраструктуры
type Service struct {
	facilityRepo   FacilityRepository
	residentClient ResidentServiceClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(
	facilityRepo FacilityRepository,
	residentClient ResidentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		facilityRepo:   facilityRepo,
		residentClient: residentClient,
		logger:         logger,
	}
}

// Create создает новый объект инфраструктуры
// Доступно только менеджерам площадки
func (s *Service) Create(ctx context.Context, req *models.CreateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Create: creating facility %q for site=%d by user=%d", req.Name, req.SiteID, req.UserID)

	// 1. Валидируем входные данные
	if err := s.validateFacilityData(req.Name, req.Rules,
		types.TimeString(req.OpeningTime), types.TimeString(req.ClosingTime),
		req.Capacity, req.ReservationFee); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права доступа (только менеджер площадки)
	if err := s.checkManagerAccess(ctx, req.SiteID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Создаем объект
	created, err := s.facilityRepo.Create(ctx, req.ToDomainFacility())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created facility id=%d", created.ID)
	return models.FromDomainFacility(created), nil
}

// GetByID получает объект по ID
// Публичный метод - доступен всем
func (s *Service) GetByID(ctx context.Context, id int64) (*models.FacilityResponse, error) {
	s.logger.Info("GetByID: fetching facility id=%d", id)

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetByID: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetByID: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched facility id=%d", id)
	return models.FromDomainFacility(facility), nil
}

// ListBySite получает все объекты площадки
// Публичный метод - доступен всем
func (s *Service) ListBySite(ctx context.Context, siteID int64) (*models.FacilityListResponse, error) {
	s.logger.Info("ListBySite: fetching facilities for site=%d", siteID)

	facilities, err := s.facilityRepo.GetBySiteID(ctx, siteID)
	if err != nil {
		s.logger.Error("ListBySite: repository error for site=%d: %v", siteID, err)
		return nil, fmt.Errorf("%w: ListBySite - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBySite: successfully fetched %d facilities for site=%d", len(facilities), siteID)
	return models.FromDomainFacilityList(facilities), nil
}

// Update обновляет существующий объект
// Доступно только менеджерам площадки
// Поддерживает частичное обновление - обновляются только указанные поля
// Смена часов работы или вместимости не трогает уже созданные бронирования
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateFacilityRequest) (*models.FacilityResponse, error) {
	s.logger.Info("Update: updating facility id=%d by user=%d", id, req.UserID)

	// 1. Получаем существующий объект
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// 2. Применяем обновления к копии и валидируем результат
	tempFacility := *facility
	req.ApplyToFacility(&tempFacility)

	if err := s.validateFacilityData(tempFacility.Name, tempFacility.Rules,
		tempFacility.OpeningTime, tempFacility.ClosingTime,
		tempFacility.Capacity, tempFacility.ReservationFee); err != nil {
		s.logger.Warn("Update: validation failed for facility id=%d: %v", id, err)
		return nil, err
	}

	// 3. Проверяем права доступа (только менеджер площадки)
	if err := s.checkManagerAccess(ctx, facility.SiteID, req.UserID); err != nil {
		return nil, err
	}

	// 4. Применяем обновления к оригиналу и сохраняем
	req.ApplyToFacility(facility)

	updated, err := s.facilityRepo.Update(ctx, id, facility)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Update: facility id=%d not found during update", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Update: repository error for facility id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated facility id=%d", id)
	return models.FromDomainFacility(updated), nil
}

// Delete удаляет объект по ID
// Доступно только менеджерам площадки
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting facility id=%d by user=%d", id, userID)

	// 1. Получаем объект для проверки прав доступа
	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Delete: facility id=%d not found", id)
			return ErrFacilityNotFound
		}
		s.logger.Error("Delete: repository error for facility id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер площадки)
	if err := s.checkManagerAccess(ctx, facility.SiteID, userID); err != nil {
		return err
	}

	// 3. Удаляем объект
	if err := s.facilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("Delete: facility id=%d not found during deletion", id)
			return ErrFacilityNotFound
		}
		s.logger.Error("Delete: repository error for facility id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted facility id=%d", id)
	return nil
}

// Вспомогательные методы

// checkManagerAccess проверяет, что пользователь является менеджером площадки
func (s *Service) checkManagerAccess(ctx context.Context, siteID int64, userID int64) error {
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

// validateFacilityData валидирует параметры объекта
func (s *Service) validateFacilityData(name string, rules *string, openingTime, closingTime types.TimeString, capacity int, fee float64) error {
	// Проверяем название
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxFacilityNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxFacilityNameLength)
	}

	// Проверяем правила пользования
	if rules != nil && len(*rules) > domain.MaxRulesLength {
		return fmt.Errorf("%w: rules must be at most %d characters", ErrInvalidInput, domain.MaxRulesLength)
	}

	// Проверяем формат часов работы
	if err := openingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
	}
	if err := closingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
	}

	// Открытие не позже закрытия; равенство допустимо - объект без слотов
	if openingTime.IsAfter(closingTime) {
		return fmt.Errorf("%w: openingTime must not be after closingTime", ErrInvalidInput)
	}

	// Проверяем вместимость
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	// Проверяем стоимость
	if fee < 0 {
		return fmt.Errorf("%w: reservationFee must not be negative", ErrInvalidInput)
	}

	return nil
}
