package create_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	"github.com/m04kA/RSM-FacilityService/pkg/types"
)

// Моки контрактов use case

type reservationRepoMock struct {
	reservations []*domain.Reservation
	created      *domain.Reservation
	createErr    error
}

func (m *reservationRepoMock) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *res
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *reservationRepoMock) GetByFacilityWithFilter(_ context.Context, _ domain.FacilityReservationsFilter) ([]*domain.Reservation, error) {
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
	resident *residentClient.Resident
	err      error
}

func (m *residentClientMock) GetResidentWithGracefulDegradation(_ context.Context, _ int64) (*residentClient.Resident, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.resident, nil
}

// txManagerMock выполняет функцию без реальной транзакции
type txManagerMock struct{}

func (m *txManagerMock) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:             1,
		SiteID:         10,
		Name:           "Теннисный корт",
		OpeningTime:    "09:00",
		ClosingTime:    "11:00",
		Capacity:       4,
		ReservationFee: 150,
	}
}

func testRequest() *Request {
	return &Request{
		ResidentID:     7,
		FacilityID:     1,
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:       "09:30",
		NumberOfPeople: 2,
	}
}

func newTestUseCase(resRepo *reservationRepoMock, facRepo *facilityRepoMock, client *residentClientMock) *UseCase {
	return NewUseCase(resRepo, facRepo, client, &txManagerMock{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7, SiteID: 10, Name: "Иван Петров", Role: "resident"}}

	uc := newTestUseCase(resRepo, facRepo, client)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	// Стоимость = fee за человека x размер группы
	assert.InDelta(t, 300.0, resp.TotalFee, 0.001)
	assert.Equal(t, "Иван Петров", resp.ResidentName)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	resRepo := &reservationRepoMock{
		reservations: []*domain.Reservation{
			{TimeSlot: "09:30", NumberOfPeople: 3, Status: domain.StatusBooked},
		},
	}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7, Name: "Иван"}}

	uc := newTestUseCase(resRepo, facRepo, client)

	// 3 занято + 2 запрошено > 4
	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, resRepo.created)
}

func TestExecute_CancelledReservationsFreeCapacity(t *testing.T) {
	resRepo := &reservationRepoMock{
		reservations: []*domain.Reservation{
			// Отмененное бронирование возвращает места в слот
			{TimeSlot: "09:30", NumberOfPeople: 4, Status: domain.StatusCancelled},
			{TimeSlot: "09:30", NumberOfPeople: 2, Status: domain.StatusBooked},
		},
	}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7, Name: "Иван"}}

	uc := newTestUseCase(resRepo, facRepo, client)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestExecute_ExactCapacityFit(t *testing.T) {
	resRepo := &reservationRepoMock{
		reservations: []*domain.Reservation{
			{TimeSlot: "09:30", NumberOfPeople: 2, Status: domain.StatusBooked},
		},
	}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7, Name: "Иван"}}

	uc := newTestUseCase(resRepo, facRepo, client)

	// 2 занято + 2 запрошено = 4: граница вместимости не считается превышением
	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{err: facilityRepo.ErrFacilityNotFound}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7}}

	uc := newTestUseCase(resRepo, facRepo, client)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_ResidentNotFound(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{err: residentClient.ErrResidentNotFound}

	uc := newTestUseCase(resRepo, facRepo, client)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrResidentNotFound)
}

func TestExecute_GracefulDegradation(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: testFacility()}
	// ResidentService недоступен - бронирование создается без имени
	client := &residentClientMock{err: residentClient.ErrServiceDegraded}

	uc := newTestUseCase(resRepo, facRepo, client)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "", resp.ResidentName)
}

func TestExecute_SlotOutsideWorkingHours(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7}}

	uc := newTestUseCase(resRepo, facRepo, client)

	req := testRequest()
	req.TimeSlot = "12:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrFacilityClosed)
}

func TestExecute_EmptyGridIsClosed(t *testing.T) {
	facility := testFacility()
	facility.OpeningTime = "10:00"
	facility.ClosingTime = "10:00"

	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: facility}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7}}

	uc := newTestUseCase(resRepo, facRepo, client)

	req := testRequest()
	req.TimeSlot = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrFacilityClosed)
}

func TestExecute_SlotOffGrid(t *testing.T) {
	resRepo := &reservationRepoMock{}
	facRepo := &facilityRepoMock{facility: testFacility()}
	client := &residentClientMock{resident: &residentClient.Resident{ID: 7}}

	uc := newTestUseCase(resRepo, facRepo, client)

	// 09:15 внутри рабочих часов, но не выровнен по сетке
	req := testRequest()
	req.TimeSlot = "09:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestValidateRequest(t *testing.T) {
	longNotes := strings.Repeat("а", domain.MaxNotesLength+1)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"non-positive residentID", func(r *Request) { r.ResidentID = 0 }},
		{"non-positive facilityID", func(r *Request) { r.FacilityID = -1 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time slot", func(r *Request) { r.TimeSlot = "" }},
		{"malformed time slot", func(r *Request) { r.TimeSlot = "9:30" }},
		{"zero people", func(r *Request) { r.NumberOfPeople = 0 }},
		{"notes too long", func(r *Request) { r.Notes = &longNotes }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	assert.NoError(t, validateRequest(testRequest()))
}

func TestValidateSlotOnGrid(t *testing.T) {
	facility := testFacility()

	assert.NoError(t, validateSlotOnGrid(facility, types.TimeString("09:00")))
	// Последний слот сетки: 10:30 помещается целиком до 11:00
	assert.NoError(t, validateSlotOnGrid(facility, types.TimeString("10:30")))

	assert.ErrorIs(t, validateSlotOnGrid(facility, types.TimeString("08:30")), ErrFacilityClosed)
	assert.ErrorIs(t, validateSlotOnGrid(facility, types.TimeString("11:00")), ErrFacilityClosed)
	assert.ErrorIs(t, validateSlotOnGrid(facility, types.TimeString("09:45")), ErrInvalidTimeSlot)
}
