package services

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"wordwatch/models"
)

// MockWatchesService is a mock implementation of WatchesService
type MockWatchesService struct {
	mock.Mock
}

func (m *MockWatchesService) RegisterWords(
	ctx context.Context,
	serverID, userID string,
	words []string,
) ([]string, error) {
	args := m.Called(ctx, serverID, userID, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWatchesService) UnregisterWords(
	ctx context.Context,
	serverID, userID string,
	words []string,
) ([]string, error) {
	args := m.Called(ctx, serverID, userID, words)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockWatchesService) ScanMessage(
	ctx context.Context,
	serverID, authorID, messageText string,
) (map[string][]string, error) {
	args := m.Called(ctx, serverID, authorID, messageText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockWatchesService) ListWatchedWords(
	ctx context.Context,
	serverID, userID string,
) ([]string, error) {
	args := m.Called(ctx, serverID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockProfilesService is a mock implementation of ProfilesService
type MockProfilesService struct {
	mock.Mock
}

func (m *MockProfilesService) EnsureProfile(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfilesService) GetProfileByID(
	ctx context.Context,
	userID string,
) (mo.Option[*models.UserProfile], error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(mo.Option[*models.UserProfile]), args.Error(1)
}

// MockTransactionManager is a mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(
	ctx context.Context,
	fn func(context.Context) error,
) error {
	args := m.Called(ctx, fn)
	// Execute the function with the plain context so mocked flows still run
	if args.Error(0) == nil {
		return fn(ctx)
	}
	return args.Error(0)
}

func (m *MockTransactionManager) BeginTransaction(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *MockTransactionManager) CommitTransaction(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransactionManager) RollbackTransaction(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
