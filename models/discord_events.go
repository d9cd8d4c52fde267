package models

type DiscordMessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	// Nickname is the author's guild-specific display name, empty when
	// they have not set one.
	Nickname      string
	Discriminator string
	AvatarURL     string
	Content       string
}
