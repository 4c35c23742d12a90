package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/pkg/database"
)

type MatchRepository struct {
	db *database.DB
}

func NewMatchRepository(db *database.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, homeTeamID, awayTeamID int64, matchDate time.Time, place string, createdBy int64) (int64, error) {
	conn := r.db.Conn(ctx)

	var id int64
	err := conn.QueryRowContext(ctx, `
		INSERT INTO matches (home_team_id, away_team_id, match_date, place, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, homeTeamID, awayTeamID, matchDate, place, createdBy).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert match: %w", err)
	}

	return id, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (*domain.Match, error) {
	conn := r.db.Conn(ctx)

	var match domain.Match
	err := conn.QueryRowContext(ctx, `
		SELECT id, home_team_id, away_team_id, match_date, place,
		       created_by, created_at, home_score, away_score
		FROM matches
		WHERE id = $1
	`, matchID).Scan(
		&match.ID, &match.HomeTeamID, &match.AwayTeamID, &match.MatchDate, &match.Place,
		&match.CreatedBy, &match.CreatedAt, &match.HomeScore, &match.AwayScore,
	)
	if err != nil {
		return nil, HandleNoRowsError(err)
	}

	return &match, nil
}

func (r *MatchRepository) UpdateScore(ctx context.Context, matchID int64, homeScore, awayScore int) error {
	conn := r.db.Conn(ctx)

	result, err := conn.ExecContext(ctx, `
		UPDATE matches
		SET home_score = $1, away_score = $2
		WHERE id = $3
	`, homeScore, awayScore, matchID)
	if err != nil {
		return fmt.Errorf("failed to update score: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListViewsForTeams returns hydrated matches involving any of the given
// teams, joining the team table twice for the home and away names. An
// optional match id narrows the result to a single match.
func (r *MatchRepository) ListViewsForTeams(ctx context.Context, teamIDs []int64, matchIDs ...int64) ([]domain.MatchView, error) {
	if len(teamIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT m.id, m.match_date, m.place, m.created_by, m.created_at,
		       m.home_team_id, home_team.name,
		       m.away_team_id, away_team.name,
		       m.home_score, m.away_score
		FROM matches m
		JOIN teams home_team ON home_team.id = m.home_team_id
		JOIN teams away_team ON away_team.id = m.away_team_id
		WHERE (m.home_team_id = ANY($1) OR m.away_team_id = ANY($1))
	`

	args := []interface{}{pq.Array(teamIDs)}
	if len(matchIDs) > 0 {
		query += " AND m.id = ANY($2)"
		args = append(args, pq.Array(matchIDs))
	}

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var views []domain.MatchView
	for rows.Next() {
		var view domain.MatchView
		if err := rows.Scan(
			&view.ID, &view.Date, &view.Place, &view.CreatedBy, &view.CreatedAt,
			&view.HomeTeam.ID, &view.HomeTeam.Name,
			&view.AwayTeam.ID, &view.AwayTeam.Name,
			&view.Score.Home, &view.Score.Away,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		views = append(views, view)
	}

	return views, rows.Err()
}
