package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"wordwatch/models"
	"wordwatch/usecases"
)

type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	watchUseCase     usecases.WatchUseCaseInterface
	commandPrefix    string
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	watchUseCase usecases.WatchUseCaseInterface,
	commandPrefix string,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		watchUseCase:     watchUseCase,
		commandPrefix:    commandPrefix,
	}

	session.AddHandler(handler.handleMessageCreatedEvent)

	// Message content requires the privileged intent on top of guild messages
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleMessageCreatedEvent routes incoming Discord messages: watch
// commands go to their operations, everything else goes through the scan
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// Watches are guild-scoped; direct messages carry no guild ID
	if m.GuildID == "" {
		return
	}

	ctx := context.Background()
	event := h.mapToDiscordMessageEvent(m)
	content := strings.TrimSpace(m.Content)

	addCommand := h.commandPrefix + "add"
	deleteCommand := h.commandPrefix + "delete"
	getCommand := h.commandPrefix + "get"

	var err error
	switch {
	case strings.HasPrefix(content, addCommand):
		wordsText := strings.TrimSpace(strings.TrimPrefix(content, addCommand))
		err = h.watchUseCase.AddWatches(ctx, event, wordsText)
	case strings.HasPrefix(content, deleteCommand):
		wordsText := strings.TrimSpace(strings.TrimPrefix(content, deleteCommand))
		err = h.watchUseCase.RemoveWatches(ctx, event, wordsText)
	case strings.HasPrefix(content, getCommand):
		err = h.watchUseCase.ListWatches(ctx, event)
	default:
		err = h.watchUseCase.ProcessMessageEvent(ctx, event)
	}
	if err != nil {
		log.Printf("❌ Failed to process Discord message from user %s in guild %s: %v",
			event.UserID, event.GuildID, err)
	}
}

func (h *DiscordEventsHandler) mapToDiscordMessageEvent(m *discordgo.MessageCreate) models.DiscordMessageEvent {
	event := models.DiscordMessageEvent{
		GuildID:       m.GuildID,
		ChannelID:     m.ChannelID,
		MessageID:     m.ID,
		UserID:        m.Author.ID,
		Username:      m.Author.Username,
		Discriminator: m.Author.Discriminator,
		AvatarURL:     m.Author.AvatarURL(""),
		Content:       m.Content,
	}
	if m.Member != nil {
		event.Nickname = m.Member.Nick
	}
	return event
}
