package models

import "time"

// Member roles within a group. Every group gets exactly one admin row at
// creation time; the default role for invited members is "member".
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Group is a set of users that share expenses.
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Members carries membership rows when the query joins them; for
	// per-user group listings it holds only the caller's own row.
	Members []*GroupMember `json:"members,omitempty"`
}

// GroupMember grants an identity a role within a group. The membership
// rows are the sole authorization gate for a group's expenses.
type GroupMember struct {
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// FullName is populated from the profile JOIN on member listings.
	FullName *string `json:"full_name,omitempty"`
}
