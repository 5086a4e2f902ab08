package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	reservationRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/reservation"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	"github.com/m04kA/RSM-FacilityService/internal/service/reservations/models"
)

// Моки контрактов сервиса

type reservationRepoMock struct {
	byID          map[int64]*domain.Reservation
	cancelled     []int64
	updatedStatus map[int64]domain.ReservationStatus
}

func newReservationRepoMock(reservations ...*domain.Reservation) *reservationRepoMock {
	m := &reservationRepoMock{
		byID:          make(map[int64]*domain.Reservation),
		updatedStatus: make(map[int64]domain.ReservationStatus),
	}
	for _, r := range reservations {
		m.byID[r.ID] = r
	}
	return m
}

func (m *reservationRepoMock) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := m.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (m *reservationRepoMock) GetByResidentID(_ context.Context, residentID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range m.byID {
		if r.ResidentID != residentID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *reservationRepoMock) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityReservationsFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0)
	for _, r := range m.byID {
		if r.FacilityID != filter.FacilityID {
			continue
		}
		if !filter.IncludeCancelled && r.IsCancelled() {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *reservationRepoMock) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.updatedStatus[id] = status
	return nil
}

func (m *reservationRepoMock) Cancel(_ context.Context, id int64, _ string) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.cancelled = append(m.cancelled, id)
	return nil
}

type facilityRepoMock struct {
	facility *domain.Facility
}

func (m *facilityRepoMock) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	return m.facility, nil
}

type residentClientMock struct {
	residents map[int64]*residentClient.Resident
}

func (m *residentClientMock) GetResident(_ context.Context, residentID int64) (*residentClient.Resident, error) {
	r, ok := m.residents[residentID]
	if !ok {
		return nil, residentClient.ErrResidentNotFound
	}
	return r, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Тестовые данные: объект на площадке 10, владелец бронирования - житель 7,
// менеджер площадки - пользователь 50, посторонний житель - 99

const (
	ownerID    int64 = 7
	managerID  int64 = 50
	strangerID int64 = 99
)

func testService(resRepo *reservationRepoMock) *Service {
	facility := &domain.Facility{ID: 1, SiteID: 10, Name: "Спортзал", OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 10}
	client := &residentClientMock{residents: map[int64]*residentClient.Resident{
		ownerID:    {ID: ownerID, SiteID: 10, Name: "Иван", Role: "resident"},
		managerID:  {ID: managerID, SiteID: 10, Name: "Мария", Role: "manager"},
		strangerID: {ID: strangerID, SiteID: 10, Name: "Пётр", Role: "resident"},
	}}
	return NewService(resRepo, &facilityRepoMock{facility: facility}, client, nopLogger{})
}

func bookedReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:             id,
		FacilityID:     1,
		ResidentID:     ownerID,
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:       "10:00",
		NumberOfPeople: 2,
		Status:         domain.StatusBooked,
	}
}

func TestGetByID(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-09-01", resp.Date)

	// Менеджер площадки тоже имеет доступ
	_, err = svc.GetByID(context.Background(), 1, managerID)
	require.NoError(t, err)

	// Посторонний житель - нет
	_, err = svc.GetByID(context.Background(), 1, strangerID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 404, ownerID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: ownerID, CancellationReason: "планы изменились"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestCancel_AlreadyCancelledIsNoop(t *testing.T) {
	cancelled := bookedReservation(1)
	cancelled.Status = domain.StatusCancelled

	repo := newReservationRepoMock(cancelled)
	svc := testService(repo)

	// Повторная отмена успешна и не трогает репозиторий
	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: ownerID})
	require.NoError(t, err)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	completed := bookedReservation(1)
	completed.Status = domain.StatusCompleted

	repo := newReservationRepoMock(completed)
	svc := testService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: ownerID})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessCheckedBeforeStatus(t *testing.T) {
	completed := bookedReservation(1)
	completed.Status = domain.StatusCompleted

	repo := newReservationRepoMock(completed)
	svc := testService(repo)

	// Постороннему не раскрываем статус чужого бронирования
	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: strangerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ManagerCanCancelAny(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{UserID: managerID})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestComplete(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	err := svc.Complete(context.Background(), 1, &models.CompleteReservationRequest{UserID: managerID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus[1])
}

func TestComplete_OwnerIsNotEnough(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	// Завершение доступно только менеджеру площадки
	err := svc.Complete(context.Background(), 1, &models.CompleteReservationRequest{UserID: ownerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestComplete_AlreadyCompletedIsNoop(t *testing.T) {
	completed := bookedReservation(1)
	completed.Status = domain.StatusCompleted

	repo := newReservationRepoMock(completed)
	svc := testService(repo)

	err := svc.Complete(context.Background(), 1, &models.CompleteReservationRequest{UserID: managerID})
	require.NoError(t, err)
	assert.Empty(t, repo.updatedStatus)
}

func TestComplete_CancelledCannotBeCompleted(t *testing.T) {
	cancelled := bookedReservation(1)
	cancelled.Status = domain.StatusCancelled

	repo := newReservationRepoMock(cancelled)
	svc := testService(repo)

	err := svc.Complete(context.Background(), 1, &models.CompleteReservationRequest{UserID: managerID})
	assert.ErrorIs(t, err, ErrCannotComplete)
}

func TestGetResidentReservations(t *testing.T) {
	first := bookedReservation(1)
	second := bookedReservation(2)
	second.Status = domain.StatusCancelled

	repo := newReservationRepoMock(first, second)
	svc := testService(repo)

	resp, err := svc.GetResidentReservations(context.Background(), &models.GetResidentReservationsRequest{ResidentID: ownerID})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 2)

	// Фильтр по статусу
	status := "cancelled"
	resp, err = svc.GetResidentReservations(context.Background(), &models.GetResidentReservationsRequest{ResidentID: ownerID, Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)

	badStatus := "pending"
	_, err = svc.GetResidentReservations(context.Background(), &models.GetResidentReservationsRequest{ResidentID: ownerID, Status: &badStatus})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetFacilityReservations(t *testing.T) {
	repo := newReservationRepoMock(bookedReservation(1))
	svc := testService(repo)

	resp, err := svc.GetFacilityReservations(context.Background(), &models.GetFacilityReservationsRequest{FacilityID: 1, UserID: managerID})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	// Реестр объекта доступен только менеджеру площадки
	_, err = svc.GetFacilityReservations(context.Background(), &models.GetFacilityReservationsRequest{FacilityID: 1, UserID: ownerID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
