package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/internal/repository"
)

type MatchRepository interface {
	Create(ctx context.Context, homeTeamID, awayTeamID int64, matchDate time.Time, place string, createdBy int64) (int64, error)
	GetByID(ctx context.Context, matchID int64) (*domain.Match, error)
	UpdateScore(ctx context.Context, matchID int64, homeScore, awayScore int) error
	ListViewsForTeams(ctx context.Context, teamIDs []int64, matchIDs ...int64) ([]domain.MatchView, error)
}

type TeamRepository interface {
	GetByIDs(ctx context.Context, teamIDs []int64) ([]domain.Team, error)
	ListTeamIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	MembershipsIn(ctx context.Context, userID int64, teamIDs []int64) ([]int64, error)
}

type MatchService struct {
	matchRepo MatchRepository
	teamRepo  TeamRepository
	lg        *slog.Logger
}

func NewMatchService(matchRepo MatchRepository, teamRepo TeamRepository, lg *slog.Logger) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		lg:        lg,
	}
}

func (s *MatchService) CreateMatch(ctx context.Context, userID int64, req domain.CreateMatchRequest) (*domain.MatchView, error) {
	if req.HomeTeamID == req.AwayTeamID {
		return nil, domain.ErrSameTeam
	}

	teams, err := s.teamRepo.GetByIDs(ctx, []int64{req.HomeTeamID, req.AwayTeamID})
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	if len(teams) != 2 {
		return nil, domain.ErrTeamNotFound
	}

	if err := s.ensureParticipant(ctx, userID, []int64{req.HomeTeamID, req.AwayTeamID}); err != nil {
		return nil, err
	}

	matchDate, err := parseMatchDate(req.Date)
	if err != nil {
		return nil, domain.ErrInvalidMatchDate
	}

	place := strings.TrimSpace(req.Place)
	if place == "" {
		return nil, domain.ErrEmptyPlace
	}

	matchID, err := s.matchRepo.Create(ctx, req.HomeTeamID, req.AwayTeamID, matchDate, place, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.lg.Info("match created",
		slog.Int64("match_id", matchID),
		slog.Int64("home_team_id", req.HomeTeamID),
		slog.Int64("away_team_id", req.AwayTeamID),
		slog.Int64("creator_id", userID))
	return s.getView(ctx, matchID, userID)
}

func (s *MatchService) ListMatches(ctx context.Context, userID int64) ([]domain.MatchView, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	if len(teamIDs) == 0 {
		return []domain.MatchView{}, nil
	}

	views, err := s.matchRepo.ListViewsForTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	if views == nil {
		views = []domain.MatchView{}
	}

	return views, nil
}

func (s *MatchService) UpdateScore(ctx context.Context, matchID, userID int64, homeScore, awayScore int) (*domain.MatchView, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if err := s.ensureParticipant(ctx, userID, []int64{match.HomeTeamID, match.AwayTeamID}); err != nil {
		return nil, err
	}

	// last write wins, repeat updates overwrite both fields
	if err := s.matchRepo.UpdateScore(ctx, matchID, homeScore, awayScore); err != nil {
		return nil, fmt.Errorf("failed to update score: %w", err)
	}

	s.lg.Info("score updated",
		slog.Int64("match_id", matchID),
		slog.Int("home_score", homeScore),
		slog.Int("away_score", awayScore),
		slog.Int64("actor_id", userID))
	return s.getView(ctx, matchID, userID)
}

func (s *MatchService) getView(ctx context.Context, matchID, userID int64) (*domain.MatchView, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}

	views, err := s.matchRepo.ListViewsForTeams(ctx, teamIDs, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	if len(views) == 0 {
		return nil, domain.ErrMatchNotFound
	}

	return &views[0], nil
}

func (s *MatchService) ensureParticipant(ctx context.Context, userID int64, teamIDs []int64) error {
	memberships, err := s.teamRepo.MembershipsIn(ctx, userID, teamIDs)
	if err != nil {
		return fmt.Errorf("failed to check memberships: %w", err)
	}
	if len(memberships) == 0 {
		return domain.ErrNotParticipant
	}
	return nil
}

// parseMatchDate accepts RFC 3339 instants and plain calendar dates,
// the two forms the clients actually send.
func parseMatchDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
