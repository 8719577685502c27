package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateGroup inserts a new group into the database.
func (s *PostgresStore) CreateGroup(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (id, name, description, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		group.ID, group.Name, group.Description, group.ImageURL,
		group.CreatedAt, group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

// DeleteGroup removes a group from the database.
func (s *PostgresStore) DeleteGroup(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// ListGroupsByUser retrieves every group the user holds a membership row
// for, each carrying that membership row.
func (s *PostgresStore) ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error) {
	query := `
		SELECT g.id, g.name, g.description, g.image_url, g.created_at, g.updated_at,
		       gm.user_id, gm.role, gm.created_at
		FROM groups g
		JOIN group_members gm ON g.id = gm.group_id
		WHERE gm.user_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		group := &models.Group{}
		member := &models.GroupMember{}
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Description,
			&group.ImageURL,
			&group.CreatedAt,
			&group.UpdatedAt,
			&member.UserID,
			&member.Role,
			&member.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		member.GroupID = group.ID
		group.Members = []*models.GroupMember{member}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}
	return groups, nil
}

// AddGroupMember inserts a membership row.
func (s *PostgresStore) AddGroupMember(ctx context.Context, member *models.GroupMember) error {
	query := `
		INSERT INTO group_members (group_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		member.GroupID, member.UserID, member.Role, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}
	return nil
}

// GetGroupMember retrieves a specific membership row from a group.
func (s *PostgresStore) GetGroupMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error) {
	query := `
		SELECT group_id, user_id, role, created_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`
	member := &models.GroupMember{}
	err := s.db.QueryRowContext(ctx, query, groupID, userID).Scan(
		&member.GroupID,
		&member.UserID,
		&member.Role,
		&member.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListGroupMembers retrieves all members of a group joined to their
// profile full names.
func (s *PostgresStore) ListGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	query := `
		SELECT gm.group_id, gm.user_id, gm.role, gm.created_at, p.full_name
		FROM group_members gm
		LEFT JOIN profiles p ON gm.user_id = p.id
		WHERE gm.group_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*models.GroupMember
	for rows.Next() {
		member := &models.GroupMember{}
		if err := rows.Scan(
			&member.GroupID,
			&member.UserID,
			&member.Role,
			&member.CreatedAt,
			&member.FullName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}
