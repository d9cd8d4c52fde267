package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"wordwatch/clients"
)

// DiscordClient implements the clients.DiscordClient interface on top of
// a discordgo session. The session is shared with the gateway event
// handler and owned by the process bootstrap.
type DiscordClient struct {
	session *discordgo.Session
}

func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

// GetBotUser fetches the identity the bot is running as
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	user, err := c.session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot user: %w", err)
	}

	return &clients.DiscordBotUser{
		ID:       user.ID,
		Username: user.Username,
		Bot:      user.Bot,
	}, nil
}

// PostChannelMessage sends a plain message to a guild channel
func (c *DiscordClient) PostChannelMessage(channelID, content string) error {
	if _, err := c.session.ChannelMessageSend(channelID, content); err != nil {
		return fmt.Errorf("failed to send channel message: %w", err)
	}
	return nil
}

// SendDirectMessage opens (or reuses) the DM channel with the user and
// sends a plain message there
func (c *DiscordClient) SendDirectMessage(userID, content string) error {
	channel, err := c.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with user %s: %w", userID, err)
	}

	if _, err := c.session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send direct message to user %s: %w", userID, err)
	}
	return nil
}

// SendDirectEmbed sends the notification context embed to the user's DM
// channel: author line, message text in the footer next to the author's
// avatar, current timestamp
func (c *DiscordClient) SendDirectEmbed(userID string, params *clients.DiscordEmbedParams) error {
	channel, err := c.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with user %s: %w", userID, err)
	}

	embed := &discordgo.MessageEmbed{
		Color: params.Color,
		Author: &discordgo.MessageEmbedAuthor{
			Name: params.AuthorName,
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    params.FooterText,
			IconURL: params.FooterIconURL,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := c.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return fmt.Errorf("failed to send embed to user %s: %w", userID, err)
	}
	return nil
}
