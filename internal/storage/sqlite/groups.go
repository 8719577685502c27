package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateGroup persists a new group row.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO groups (id, name, description, image_url, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		group.ID, group.Name, group.Description, group.ImageURL,
		group.CreatedAt.UnixNano(), group.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group row by ID.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// ListGroupsByUser retrieves every group the user holds a membership row
// for, each carrying that membership row.
func (s *SQLiteStore) ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.name, g.description, g.image_url, g.created_at, g.updated_at,
		       gm.user_id, gm.role, gm.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		member := &models.GroupMember{}
		var gCreated, gUpdated, mCreated int64
		if err := rows.Scan(
			&group.ID, &group.Name, &group.Description, &group.ImageURL, &gCreated, &gUpdated,
			&member.UserID, &member.Role, &mCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		group.CreatedAt = time.Unix(0, gCreated)
		group.UpdatedAt = time.Unix(0, gUpdated)
		member.GroupID = group.ID
		member.CreatedAt = time.Unix(0, mCreated)
		group.Members = []*models.GroupMember{member}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// AddGroupMember persists a membership row.
func (s *SQLiteStore) AddGroupMember(ctx context.Context, member *models.GroupMember) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO group_members (group_id, user_id, role, created_at) VALUES (?, ?, ?, ?)",
		member.GroupID, member.UserID, member.Role, member.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// GetGroupMember retrieves one membership row, or nil if none exists.
func (s *SQLiteStore) GetGroupMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	member := &models.GroupMember{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT group_id, user_id, role, created_at FROM group_members WHERE group_id = ? AND user_id = ?",
		groupID, userID,
	).Scan(&member.GroupID, &member.UserID, &member.Role, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	member.CreatedAt = time.Unix(0, createdAt)
	return member, nil
}

// ListGroupMembers retrieves a group's membership rows joined to each
// member's profile full name.
func (s *SQLiteStore) ListGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gm.group_id, gm.user_id, gm.role, gm.created_at, p.full_name
		FROM group_members gm
		LEFT JOIN profiles p ON gm.user_id = p.id
		WHERE gm.group_id = ?`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*models.GroupMember
	for rows.Next() {
		member := &models.GroupMember{}
		var createdAt int64
		if err := rows.Scan(&member.GroupID, &member.UserID, &member.Role, &createdAt, &member.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		member.CreatedAt = time.Unix(0, createdAt)
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
