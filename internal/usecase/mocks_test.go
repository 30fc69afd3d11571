package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/infra/queue"
)

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Create(ctx context.Context, v *entity.VisitRecord) (int, error) {
	args := m.Called(ctx, v)
	return args.Int(0), args.Error(1)
}

func (m *MockVisitRepository) ListAll(ctx context.Context) ([]entity.VisitRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VisitRecord), args.Error(1)
}

func (m *MockVisitRepository) ListByOwner(ctx context.Context, username string) ([]entity.VisitRecord, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VisitRecord), args.Error(1)
}

func (m *MockVisitRepository) MostRecentByStore(ctx context.Context, storeName string) (*entity.VisitRecord, error) {
	args := m.Called(ctx, storeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VisitRecord), args.Error(1)
}

func (m *MockVisitRepository) UpdateLeadStatus(ctx context.Context, id int, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVisitRepository) StoreNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockGeoProvider struct {
	mock.Mock
	name string
}

func (m *MockGeoProvider) Name() string {
	return m.name
}

func (m *MockGeoProvider) Locate(ctx context.Context) (entity.GeoFix, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.GeoFix), args.Error(1)
}

// fakeNormalizer avoids real image decoding in workflow tests.
type fakeNormalizer struct {
	err error
}

func (f *fakeNormalizer) Normalize(data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "data:image/jpeg;base64,dGVzdA==", nil
}

type MockReminderPublisher struct {
	mock.Mock
}

func (m *MockReminderPublisher) PublishReminder(ctx context.Context, payload queue.ReminderPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
