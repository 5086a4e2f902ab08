package facilities

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSM-FacilityService/internal/domain"
	facilityRepo "github.com/m04kA/RSM-FacilityService/internal/infra/storage/facility"
	residentClient "github.com/m04kA/RSM-FacilityService/internal/integrations/residentservice"
	"github.com/m04kA/RSM-FacilityService/internal/service/facilities/models"
)

// Моки контрактов сервиса

type facilityRepoMock struct {
	byID    map[int64]*domain.Facility
	deleted []int64
}

func newFacilityRepoMock(facilities ...*domain.Facility) *facilityRepoMock {
	m := &facilityRepoMock{byID: make(map[int64]*domain.Facility)}
	for _, f := range facilities {
		m.byID[f.ID] = f
	}
	return m
}

func (m *facilityRepoMock) Create(_ context.Context, f *domain.Facility) (*domain.Facility, error) {
	created := *f
	created.ID = 100
	m.byID[created.ID] = &created
	return &created, nil
}

func (m *facilityRepoMock) GetByID(_ context.Context, id int64) (*domain.Facility, error) {
	f, ok := m.byID[id]
	if !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	return f, nil
}

func (m *facilityRepoMock) GetBySiteID(_ context.Context, siteID int64) ([]*domain.Facility, error) {
	result := make([]*domain.Facility, 0)
	for _, f := range m.byID {
		if f.SiteID == siteID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (m *facilityRepoMock) Update(_ context.Context, id int64, f *domain.Facility) (*domain.Facility, error) {
	if _, ok := m.byID[id]; !ok {
		return nil, facilityRepo.ErrFacilityNotFound
	}
	updated := *f
	updated.ID = id
	m.byID[id] = &updated
	return &updated, nil
}

func (m *facilityRepoMock) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return facilityRepo.ErrFacilityNotFound
	}
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
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

func testService(repo *facilityRepoMock) *Service {
	client := &residentClientMock{residents: map[int64]*residentClient.Resident{
		managerID:  {ID: managerID, SiteID: 10, Name: "Мария", Role: "manager"},
		residentID: {ID: residentID, SiteID: 10, Name: "Иван", Role: "resident"},
	}}
	return NewService(repo, client, nopLogger{})
}

func createRequest() *models.CreateFacilityRequest {
	return &models.CreateFacilityRequest{
		UserID:         managerID,
		SiteID:         10,
		Name:           "Бассейн",
		OpeningTime:    "08:00",
		ClosingTime:    "22:00",
		Capacity:       10,
		ReservationFee: 200,
	}
}

func TestCreate(t *testing.T) {
	repo := newFacilityRepoMock()
	svc := testService(repo)

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "Бассейн", resp.Name)
	assert.Equal(t, domain.SlotDurationMinutes, resp.SlotDurationMinutes)
}

func TestCreate_OnlyManager(t *testing.T) {
	repo := newFacilityRepoMock()
	svc := testService(repo)

	req := createRequest()
	req.UserID = residentID

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreate_ManagerOfAnotherSite(t *testing.T) {
	repo := newFacilityRepoMock()
	svc := testService(repo)

	// Менеджер управляет только своей площадкой
	req := createRequest()
	req.SiteID = 20

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestValidateFacilityData(t *testing.T) {
	svc := testService(newFacilityRepoMock())

	longName := strings.Repeat("а", domain.MaxFacilityNameLength+1)
	longRules := strings.Repeat("а", domain.MaxRulesLength+1)

	tests := []struct {
		name   string
		mutate func(*models.CreateFacilityRequest)
	}{
		{"empty name", func(r *models.CreateFacilityRequest) { r.Name = "" }},
		{"name too long", func(r *models.CreateFacilityRequest) { r.Name = longName }},
		{"rules too long", func(r *models.CreateFacilityRequest) { r.Rules = &longRules }},
		{"malformed opening time", func(r *models.CreateFacilityRequest) { r.OpeningTime = "8:00" }},
		{"malformed closing time", func(r *models.CreateFacilityRequest) { r.ClosingTime = "25:61" }},
		{"opening after closing", func(r *models.CreateFacilityRequest) { r.OpeningTime = "22:00"; r.ClosingTime = "08:00" }},
		{"zero capacity", func(r *models.CreateFacilityRequest) { r.Capacity = 0 }},
		{"capacity above limit", func(r *models.CreateFacilityRequest) { r.Capacity = domain.MaxCapacity + 1 }},
		{"negative fee", func(r *models.CreateFacilityRequest) { r.ReservationFee = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Равные часы работы допустимы - объект без единого слота
	req := createRequest()
	req.OpeningTime = "10:00"
	req.ClosingTime = "10:00"
	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestUpdate_PartialFields(t *testing.T) {
	existing := &domain.Facility{
		ID:          1,
		SiteID:      10,
		Name:        "Спортзал",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
		Capacity:    10,
	}
	repo := newFacilityRepoMock(existing)
	svc := testService(repo)

	newCapacity := 15
	resp, err := svc.Update(context.Background(), 1, &models.UpdateFacilityRequest{
		UserID:   managerID,
		Capacity: &newCapacity,
	})
	require.NoError(t, err)

	// Обновилось только переданное поле
	assert.Equal(t, 15, resp.Capacity)
	assert.Equal(t, "Спортзал", resp.Name)
	assert.Equal(t, "08:00", resp.OpeningTime)
}

func TestUpdate_InvalidResultRejected(t *testing.T) {
	existing := &domain.Facility{
		ID:          1,
		SiteID:      10,
		Name:        "Спортзал",
		OpeningTime: "08:00",
		ClosingTime: "22:00",
		Capacity:    10,
	}
	repo := newFacilityRepoMock(existing)
	svc := testService(repo)

	// Новое открытие позже существующего закрытия
	badOpening := "23:00"
	_, err := svc.Update(context.Background(), 1, &models.UpdateFacilityRequest{
		UserID:      managerID,
		OpeningTime: &badOpening,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Исходный объект не изменился
	assert.Equal(t, "08:00", existing.OpeningTime.String())
}

func TestUpdate_NotFound(t *testing.T) {
	svc := testService(newFacilityRepoMock())

	name := "Новое имя"
	_, err := svc.Update(context.Background(), 404, &models.UpdateFacilityRequest{UserID: managerID, Name: &name})
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestDelete(t *testing.T) {
	existing := &domain.Facility{ID: 1, SiteID: 10, Name: "Сауна", OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 5}
	repo := newFacilityRepoMock(existing)
	svc := testService(repo)

	err := svc.Delete(context.Background(), 1, residentID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), 1, managerID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)

	err = svc.Delete(context.Background(), 1, managerID)
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestGetByID_Public(t *testing.T) {
	existing := &domain.Facility{ID: 1, SiteID: 10, Name: "Сауна", OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 5}
	svc := testService(newFacilityRepoMock(existing))

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Сауна", resp.Name)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestListBySite(t *testing.T) {
	svc := testService(newFacilityRepoMock(
		&domain.Facility{ID: 1, SiteID: 10, Name: "Сауна", OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 5},
		&domain.Facility{ID: 2, SiteID: 20, Name: "Бассейн", OpeningTime: "08:00", ClosingTime: "22:00", Capacity: 5},
	))

	resp, err := svc.ListBySite(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, resp.Facilities, 1)
	assert.Equal(t, "Сауна", resp.Facilities[0].Name)

	resp, err = svc.ListBySite(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, resp.Facilities)
}
