package models

import "time"

// Profile holds the user-editable display data for an identity. Its ID
// equals the owning identity's ID and it is only ever mutated by its owner.
type Profile struct {
	ID        string    `json:"id"`
	FullName  *string   `json:"full_name,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
