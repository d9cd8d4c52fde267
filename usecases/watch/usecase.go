package watch

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wordwatch/clients"
	"wordwatch/models"
	"wordwatch/services"
	"wordwatch/utils"
)

// embedColorRed matches the alert color of the notification embeds
const embedColorRed = 0xFF0000

// WatchUseCase handles the watch commands and the scan-and-notify flow
type WatchUseCase struct {
	discordClient   clients.DiscordClient
	watchesService  services.WatchesService
	profilesService services.ProfilesService
}

func NewWatchUseCase(
	discordClient clients.DiscordClient,
	watchesService services.WatchesService,
	profilesService services.ProfilesService,
) *WatchUseCase {
	return &WatchUseCase{
		discordClient:   discordClient,
		watchesService:  watchesService,
		profilesService: profilesService,
	}
}

// AddWatches registers the words in wordsText for the message author.
// The author's profile snapshot is captured before any word mutation so
// a notification can always render the watcher's first-seen identity.
func (u *WatchUseCase) AddWatches(
	ctx context.Context,
	event models.DiscordMessageEvent,
	wordsText string,
) error {
	log.Printf("📋 Starting to add watches for user %s in guild %s", event.UserID, event.GuildID)

	words := utils.NormalizeWords(wordsText)
	if len(words) == 0 {
		return u.discordClient.PostChannelMessage(event.ChannelID, "No valid words to monitor were provided")
	}

	if err := u.profilesService.EnsureProfile(ctx, profileFromEvent(event)); err != nil {
		return fmt.Errorf("failed to ensure profile before registration: %w", err)
	}

	added, err := u.watchesService.RegisterWords(ctx, event.GuildID, event.UserID, words)
	if err != nil {
		return fmt.Errorf("failed to register words: %w", err)
	}

	var reply string
	if len(added) == 0 {
		reply = "You are already monitoring all of those word(s)"
	} else {
		reply = "Now monitoring this chat for word(s): " + strings.Join(added, " ")
	}
	if err := u.discordClient.PostChannelMessage(event.ChannelID, reply); err != nil {
		return fmt.Errorf("failed to confirm registration: %w", err)
	}

	log.Printf("📋 Completed successfully - user %s now watches %d new word(s)", event.UserID, len(added))
	return nil
}

// RemoveWatches unregisters the words in wordsText for the message author
func (u *WatchUseCase) RemoveWatches(
	ctx context.Context,
	event models.DiscordMessageEvent,
	wordsText string,
) error {
	log.Printf("📋 Starting to remove watches for user %s in guild %s", event.UserID, event.GuildID)

	words := utils.NormalizeWords(wordsText)
	if len(words) == 0 {
		return u.discordClient.PostChannelMessage(event.ChannelID, "No valid words to delete were provided")
	}

	removed, err := u.watchesService.UnregisterWords(ctx, event.GuildID, event.UserID, words)
	if err != nil {
		return fmt.Errorf("failed to unregister words: %w", err)
	}

	var reply string
	if len(removed) == 0 {
		reply = "None of those word(s) were being monitored"
	} else {
		reply = "Successfully deleted the following word(s): " + strings.Join(removed, " ")
	}
	if err := u.discordClient.PostChannelMessage(event.ChannelID, reply); err != nil {
		return fmt.Errorf("failed to confirm removal: %w", err)
	}

	log.Printf("📋 Completed successfully - removed %d word(s) for user %s", len(removed), event.UserID)
	return nil
}

// ListWatches DMs the author the words they watch in this guild
func (u *WatchUseCase) ListWatches(ctx context.Context, event models.DiscordMessageEvent) error {
	log.Printf("📋 Starting to list watches for user %s in guild %s", event.UserID, event.GuildID)

	words, err := u.watchesService.ListWatchedWords(ctx, event.GuildID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to list watched words: %w", err)
	}

	var message string
	if len(words) == 0 {
		message = "You are not monitoring any words in this server"
	} else {
		message = "Your monitored words in this server are: " + strings.Join(words, " ")
	}
	if err := u.discordClient.SendDirectMessage(event.UserID, message); err != nil {
		return fmt.Errorf("failed to DM watched words: %w", err)
	}

	log.Printf("📋 Completed successfully - listed %d word(s) for user %s", len(words), event.UserID)
	return nil
}

// ProcessMessageEvent scans a regular message against the watch index
// and notifies every matched watcher except the author. A failed
// delivery to one recipient does not prevent delivery to the rest.
func (u *WatchUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	matches, err := u.watchesService.ScanMessage(ctx, event.GuildID, event.UserID, event.Content)
	if err != nil {
		return fmt.Errorf("failed to scan message: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}

	// The author profile renders identically for every recipient of this
	// message, so fetch the snapshot once
	authorProfile := u.resolveAuthorProfile(ctx, event)

	for recipientID, matchedWords := range matches {
		notification := &models.KeywordNotification{
			RecipientID:   recipientID,
			MatchedWords:  matchedWords,
			AuthorProfile: authorProfile,
			MessageText:   event.Content,
			ServerID:      event.GuildID,
			ChannelID:     event.ChannelID,
		}
		if err := u.dispatchNotification(notification); err != nil {
			log.Printf("❌ Failed to notify user %s: %v", recipientID, err)
			continue
		}
	}

	log.Printf("📋 Completed successfully - dispatched notifications for %d user(s)", len(matches))
	return nil
}

// resolveAuthorProfile prefers the stored snapshot and falls back to the
// live identity carried on the event when the author never registered
// anything themselves
func (u *WatchUseCase) resolveAuthorProfile(
	ctx context.Context,
	event models.DiscordMessageEvent,
) *models.UserProfile {
	maybeProfile, err := u.profilesService.GetProfileByID(ctx, event.UserID)
	if err != nil {
		log.Printf("⚠️ Failed to load author profile for user %s: %v", event.UserID, err)
	} else if maybeProfile.IsPresent() {
		return maybeProfile.MustGet()
	}

	return profileFromEvent(event)
}

func (u *WatchUseCase) dispatchNotification(notification *models.KeywordNotification) error {
	summary := fmt.Sprintf(
		"Message containing the following keyword(s) was detected: %s",
		strings.Join(notification.MatchedWords, " "),
	)
	if err := u.discordClient.SendDirectMessage(notification.RecipientID, summary); err != nil {
		return err
	}

	author := notification.AuthorProfile
	return u.discordClient.SendDirectEmbed(notification.RecipientID, &clients.DiscordEmbedParams{
		AuthorName:    author.DisplayName,
		FooterText:    notification.MessageText,
		FooterIconURL: author.AvatarURL,
		Color:         embedColorRed,
	})
}

// profileFromEvent builds the snapshot of the author as seen on this
// event. The guild nickname is folded into the display name the same
// way the notification embed renders it.
func profileFromEvent(event models.DiscordMessageEvent) *models.UserProfile {
	displayName := event.Username
	if event.Nickname != "" && event.Nickname != event.Username {
		displayName = fmt.Sprintf("%s (%s)", event.Nickname, event.Username)
	}

	return &models.UserProfile{
		ID:            event.UserID,
		DisplayName:   displayName,
		Discriminator: event.Discriminator,
		AvatarURL:     event.AvatarURL,
	}
}
