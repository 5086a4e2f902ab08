package get_occupancy_report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
)

// Моки контрактов use case

type reservationRepoMock struct {
	reservations []*domain.Reservation
	gotFilter    *domain.FacilityReservationsFilter
}

func (m *reservationRepoMock) GetByFacilityWithFilter(_ context.Context, filter domain.FacilityReservationsFilter) ([]*domain.Reservation, error) {
	m.gotFilter = &filter
	return m.reservations, nil
}

type facilityRepoMock struct {
	facility *domain.Facility
	err      error
}

func (m *facilityRepoMock) GetByID(_ context.Context, _ int64) (*domain.Facility, error) {
	if m.err != nil {
		return nil, m.err
	}
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

const (
	managerID  int64 = 50
	residentID int64 = 7
)

func newTestUseCase(resRepo *reservationRepoMock, facRepo *facilityRepoMock) *UseCase {
	client := &residentClientMock{residents: map[int64]*residentClient.Resident{
		managerID:  {ID: managerID, SiteID: 10, Name: "Мария", Role: "manager"},
		residentID: {ID: residentID, SiteID: 10, Name: "Иван", Role: "resident"},
	}}
	return NewUseCase(resRepo, facRepo, client, nopLogger{})
}

func TestExecute(t *testing.T) {
	resRepo := &reservationRepoMock{
		reservations: []*domain.Reservation{
			{Date: day(1), TimeSlot: "09:00", NumberOfPeople: 2, Status: domain.StatusBooked},
		},
	}
	facRepo := &facilityRepoMock{facility: reportFacility()}

	uc := newTestUseCase(resRepo, facRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:     managerID,
		FacilityID: 1,
		StartDate:  day(1),
		EndDate:    day(2),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.FacilityID)
	assert.Len(t, resp.Days, 2)
	assert.Equal(t, 1, resp.TotalReservations)

	// Отчет строится по всем бронированиям периода, включая отмененные
	require.NotNil(t, resRepo.gotFilter)
	assert.True(t, resRepo.gotFilter.IncludeCancelled)
}

func TestExecute_ManagerOnly(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: reportFacility()}

	uc := newTestUseCase(resRepo, facRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     residentID,
		FacilityID: 1,
		StartDate:  day(1),
		EndDate:    day(2),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	// До реестра бронирований дело не дошло
	assert.Nil(t, resRepo.gotFilter)
}

func TestExecute_UnknownUser(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: reportFacility()}

	uc := newTestUseCase(resRepo, facRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     404,
		FacilityID: 1,
		StartDate:  day(1),
		EndDate:    day(2),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{err: facilityRepo.ErrFacilityNotFound}

	uc := newTestUseCase(resRepo, facRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:     managerID,
		FacilityID: 404,
		StartDate:  day(1),
		EndDate:    day(2),
	})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}
