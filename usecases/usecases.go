package usecases

import (
	"context"

	"wordwatch/models"
)

// WatchUseCaseInterface defines the operations the message boundary
// invokes: the three watch commands plus the scan-and-notify flow for
// everything else.
type WatchUseCaseInterface interface {
	AddWatches(ctx context.Context, event models.DiscordMessageEvent, wordsText string) error
	RemoveWatches(ctx context.Context, event models.DiscordMessageEvent, wordsText string) error
	ListWatches(ctx context.Context, event models.DiscordMessageEvent) error
	ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error
}
