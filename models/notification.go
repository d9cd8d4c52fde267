package models

// KeywordNotification is the payload handed to the dispatcher for one
// recipient of one triggering message. It is never persisted.
type KeywordNotification struct {
	RecipientID   string
	MatchedWords  []string
	AuthorProfile *UserProfile
	MessageText   string
	ServerID      string
	ChannelID     string
}
