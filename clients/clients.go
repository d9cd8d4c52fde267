package clients

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID       string
	Username string
	Bot      bool
}

// DiscordEmbedParams holds the fields of a notification context embed
type DiscordEmbedParams struct {
	AuthorName    string
	FooterText    string
	FooterIconURL string
	Color         int
}

// DiscordClient defines the interface for Discord API operations
type DiscordClient interface {
	// Bot operations
	GetBotUser() (*DiscordBotUser, error)

	// Message operations
	PostChannelMessage(channelID, content string) error
	SendDirectMessage(userID, content string) error
	SendDirectEmbed(userID string, params *DiscordEmbedParams) error
}
