package models

import (
	"time"
)

// UserProfile is the display metadata snapshot captured when a user
// registers their first watched word. It is never refreshed afterwards.
type UserProfile struct {
	ID            string    `db:"id"             json:"id"`
	DisplayName   string    `db:"display_name"   json:"display_name"`
	Discriminator string    `db:"discriminator"  json:"discriminator"`
	AvatarURL     string    `db:"avatar_url"     json:"avatar_url"`
	CreatedAt     time.Time `db:"created_at"     json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updated_at"`
}
