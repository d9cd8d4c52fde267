package discord

import (
	"github.com/stretchr/testify/mock"

	"wordwatch/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

func (m *MockDiscordClient) PostChannelMessage(channelID, content string) error {
	args := m.Called(channelID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) SendDirectMessage(userID, content string) error {
	args := m.Called(userID, content)
	return args.Error(0)
}

func (m *MockDiscordClient) SendDirectEmbed(userID string, params *clients.DiscordEmbedParams) error {
	args := m.Called(userID, params)
	return args.Error(0)
}
