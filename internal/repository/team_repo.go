package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/pkg/database"
)

type TeamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, name string, createdBy int64) (*domain.Team, error) {
	conn := r.db.Conn(ctx)

	var team domain.Team
	err := conn.QueryRowContext(ctx, `
		INSERT INTO teams (name, created_by)
		VALUES ($1, $2)
		RETURNING id, name, created_by, created_at
	`, name, createdBy).Scan(&team.ID, &team.Name, &team.CreatedBy, &team.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert team: %w", err)
	}

	return &team, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	conn := r.db.Conn(ctx)

	var team domain.Team
	err := conn.QueryRowContext(ctx, `
		SELECT id, name, created_by, created_at
		FROM teams
		WHERE id = $1
	`, teamID).Scan(&team.ID, &team.Name, &team.CreatedBy, &team.CreatedAt)
	if err != nil {
		return nil, HandleNoRowsError(err)
	}

	return &team, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, teamIDs []int64) ([]domain.Team, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, `
		SELECT id, name, created_by, created_at
		FROM teams
		WHERE id = ANY($1)
	`, pq.Array(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedBy, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID int64) error {
	conn := r.db.Conn(ctx)

	_, err := conn.ExecContext(ctx, `
		INSERT INTO team_members (team_id, user_id)
		VALUES ($1, $2)
	`, teamID, userID)
	if err != nil {
		return HandleUniqueViolation(err)
	}

	return nil
}

// RemoveMember reports whether a membership row was actually deleted.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) (bool, error) {
	conn := r.db.Conn(ctx)

	result, err := conn.ExecContext(ctx, `
		DELETE FROM team_members
		WHERE team_id = $1 AND user_id = $2
	`, teamID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete membership: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *TeamRepository) IsMember(ctx context.Context, teamID, userID int64) (bool, error) {
	conn := r.db.Conn(ctx)

	var exists bool
	err := conn.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2
		)
	`, teamID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return exists, nil
}

// MembershipsIn returns the subset of teamIDs the user belongs to.
func (r *TeamRepository) MembershipsIn(ctx context.Context, userID int64, teamIDs []int64) ([]int64, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, `
		SELECT team_id
		FROM team_members
		WHERE user_id = $1 AND team_id = ANY($2)
	`, userID, pq.Array(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query memberships: %w", err)
	}
	defer rows.Close()

	var found []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		found = append(found, id)
	}

	return found, rows.Err()
}

func (r *TeamRepository) ListTeamIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	conn := r.db.Conn(ctx)

	rows, err := conn.QueryContext(ctx, `
		SELECT team_id FROM team_members WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user teams: %w", err)
	}
	defer rows.Close()

	var teamIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team id: %w", err)
		}
		teamIDs = append(teamIDs, id)
	}

	return teamIDs, rows.Err()
}

func (r *TeamRepository) ListMembers(ctx context.Context, teamID int64) ([]domain.UserSummary, error) {
	conn := r.db.Conn(ctx)

	rows, err := conn.QueryContext(ctx, `
		SELECT u.id, u.email, u.display_name
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	var members []domain.UserSummary
	for rows.Next() {
		var member domain.UserSummary
		if err := rows.Scan(&member.ID, &member.Email, &member.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

// ListMembersByTeams groups the member lists of several teams in one
// round-trip.
func (r *TeamRepository) ListMembersByTeams(ctx context.Context, teamIDs []int64) (map[int64][]domain.UserSummary, error) {
	membersByTeam := make(map[int64][]domain.UserSummary)
	if len(teamIDs) == 0 {
		return membersByTeam, nil
	}

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, `
		SELECT tm.team_id, u.id, u.email, u.display_name
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = ANY($1)
	`, pq.Array(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var teamID int64
		var member domain.UserSummary
		if err := rows.Scan(&teamID, &member.ID, &member.Email, &member.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		membersByTeam[teamID] = append(membersByTeam[teamID], member)
	}

	return membersByTeam, rows.Err()
}
