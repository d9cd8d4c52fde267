package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wordwatch/models"
)

// MockWatchUseCase is a mock implementation of WatchUseCaseInterface
type MockWatchUseCase struct {
	mock.Mock
}

func (m *MockWatchUseCase) AddWatches(
	ctx context.Context,
	event models.DiscordMessageEvent,
	wordsText string,
) error {
	args := m.Called(ctx, event, wordsText)
	return args.Error(0)
}

func (m *MockWatchUseCase) RemoveWatches(
	ctx context.Context,
	event models.DiscordMessageEvent,
	wordsText string,
) error {
	args := m.Called(ctx, event, wordsText)
	return args.Error(0)
}

func (m *MockWatchUseCase) ListWatches(ctx context.Context, event models.DiscordMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockWatchUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
