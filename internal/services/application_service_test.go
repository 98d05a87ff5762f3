package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aplyease_backend/internal/models"
	"aplyease_backend/internal/repositories"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

// fakeClientRepo implements repositories.ClientRepository in memory.
type fakeClientRepo struct {
	accounts  map[string]*models.ClientAccount
	decrement int
	restored  int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{accounts: make(map[string]*models.ClientAccount)}
}

func (f *fakeClientRepo) Create(account *models.ClientAccount) error {
	if _, ok := f.accounts[account.UserID]; ok {
		return repositories.ErrAccountExists
	}
	f.accounts[account.UserID] = account
	return nil
}

func (f *fakeClientRepo) FindByUserID(userID string) (*models.ClientAccount, error) {
	account, ok := f.accounts[userID]
	if !ok {
		return nil, repositories.ErrClientNotFound
	}
	return account, nil
}

func (f *fakeClientRepo) FindAll() ([]models.ClientAccount, error) {
	var out []models.ClientAccount
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeClientRepo) UpdateBilling(userID string, paid, due int64) error {
	account, ok := f.accounts[userID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	account.AmountPaidCents = paid
	account.AmountDueCents = due
	return nil
}

func (f *fakeClientRepo) AddQuota(userID string, count int) error {
	account, ok := f.accounts[userID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	account.ApplicationsRemaining += count
	f.restored += count
	return nil
}

func (f *fakeClientRepo) DecrementQuota(userID string) error {
	account, ok := f.accounts[userID]
	if !ok {
		return repositories.ErrClientNotFound
	}
	if account.ApplicationsRemaining <= 0 {
		return repositories.ErrQuotaExhausted
	}
	account.ApplicationsRemaining--
	f.decrement++
	return nil
}

// fakeAppRepo implements repositories.ApplicationRepository in memory.
type fakeAppRepo struct {
	apps      map[string]*models.JobApplication
	createErr error
	failIDs   map[string]bool
	nextID    int
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{
		apps:    make(map[string]*models.JobApplication),
		failIDs: make(map[string]bool),
	}
}

func (f *fakeAppRepo) Create(app *models.JobApplication) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	app.ID = string(rune('a' + f.nextID))
	f.apps[app.ID] = app
	return nil
}

func (f *fakeAppRepo) FindByID(id string) (*models.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (f *fakeAppRepo) FindByClient(clientID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range f.apps {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindWithFilter(criteria repositories.ApplicationFilter) ([]models.JobApplication, int64, error) {
	var out []models.JobApplication
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAppRepo) Update(app *models.JobApplication) error {
	if _, ok := f.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	f.apps[app.ID] = app
	return nil
}

func (f *fakeAppRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	if f.failIDs[id] {
		return errors.New("simulated update failure")
	}
	app, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeAppRepo) Delete(id string) error {
	if _, ok := f.apps[id]; !ok {
		return repositories.ErrApplicationNotFound
	}
	delete(f.apps, id)
	return nil
}

func seedApp(repo *fakeAppRepo, id, clientID string, status models.ApplicationStatus) {
	repo.apps[id] = &models.JobApplication{
		BaseModel: models.BaseModel{ID: id},
		ClientID:  clientID,
		Status:    status,
	}
}

func TestLog_DecrementsQuota(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["client-1"] = &models.ClientAccount{UserID: "client-1", ApplicationsRemaining: 3}
	appRepo := newFakeAppRepo()
	svc := NewApplicationService(appRepo, clientRepo)

	app, err := svc.Log("emp-1", &dto.CreateApplicationRequest{
		ClientID: "client-1",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, clientRepo.accounts["client-1"].ApplicationsRemaining)
	assert.Equal(t, models.ApplicationStatusApplied, app.Status)
	assert.Equal(t, "emp-1", app.EmployeeID)
}

func TestLog_QuotaExhausted(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["client-1"] = &models.ClientAccount{UserID: "client-1", ApplicationsRemaining: 0}
	svc := NewApplicationService(newFakeAppRepo(), clientRepo)

	_, err := svc.Log("emp-1", &dto.CreateApplicationRequest{
		ClientID: "client-1",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeQuotaExhausted, appErr.Code)
}

func TestLog_UnknownClient(t *testing.T) {
	t.Parallel()

	svc := NewApplicationService(newFakeAppRepo(), newFakeClientRepo())

	_, err := svc.Log("emp-1", &dto.CreateApplicationRequest{
		ClientID: "missing",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestLog_RestoresQuotaOnCreateFailure(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["client-1"] = &models.ClientAccount{UserID: "client-1", ApplicationsRemaining: 3}
	appRepo := newFakeAppRepo()
	appRepo.createErr = errors.New("db write failed")
	svc := NewApplicationService(appRepo, clientRepo)

	_, err := svc.Log("emp-1", &dto.CreateApplicationRequest{
		ClientID: "client-1",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})

	require.Error(t, err)
	assert.Equal(t, 3, clientRepo.accounts["client-1"].ApplicationsRemaining, "consumed slot must be given back")
}

func TestLog_ParsesDateApplied(t *testing.T) {
	t.Parallel()

	clientRepo := newFakeClientRepo()
	clientRepo.accounts["client-1"] = &models.ClientAccount{UserID: "client-1", ApplicationsRemaining: 1}
	svc := NewApplicationService(newFakeAppRepo(), clientRepo)

	app, err := svc.Log("emp-1", &dto.CreateApplicationRequest{
		ClientID:    "client-1",
		JobTitle:    "Backend Engineer",
		Company:     "Acme",
		DateApplied: "2026-02-01",
	})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), app.DateApplied)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	svc := NewApplicationService(newFakeAppRepo(), newFakeClientRepo())

	_, err := svc.UpdateStatus("app-1", models.ApplicationStatus("ghosted"))

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestBulkUpdateStatus_AllSucceed(t *testing.T) {
	t.Parallel()

	appRepo := newFakeAppRepo()
	seedApp(appRepo, "a1", "client-1", models.ApplicationStatusApplied)
	seedApp(appRepo, "a2", "client-1", models.ApplicationStatusScreening)
	svc := NewApplicationService(appRepo, newFakeClientRepo())

	result := svc.BulkUpdateStatus(&dto.BulkStatusUpdateRequest{
		ApplicationIDs: []string{"a1", "a2"},
		Status:         string(models.ApplicationStatusRejected),
	})

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.FailedIDs)
	assert.Equal(t, models.ApplicationStatusRejected, appRepo.apps["a1"].Status)
	assert.Equal(t, models.ApplicationStatusRejected, appRepo.apps["a2"].Status)
}

func TestBulkUpdateStatus_PartialFailure(t *testing.T) {
	t.Parallel()

	appRepo := newFakeAppRepo()
	seedApp(appRepo, "a1", "client-1", models.ApplicationStatusApplied)
	seedApp(appRepo, "a2", "client-1", models.ApplicationStatusApplied)
	seedApp(appRepo, "a3", "client-1", models.ApplicationStatusApplied)
	appRepo.failIDs["a2"] = true
	svc := NewApplicationService(appRepo, newFakeClientRepo())

	result := svc.BulkUpdateStatus(&dto.BulkStatusUpdateRequest{
		ApplicationIDs: []string{"a1", "a2", "a3", "missing"},
		Status:         string(models.ApplicationStatusInterview),
	})

	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []string{"a2", "missing"}, result.FailedIDs)

	// A failing item never blocks the ones after it.
	assert.Equal(t, models.ApplicationStatusInterview, appRepo.apps["a1"].Status)
	assert.Equal(t, models.ApplicationStatusApplied, appRepo.apps["a2"].Status)
	assert.Equal(t, models.ApplicationStatusInterview, appRepo.apps["a3"].Status)
}
