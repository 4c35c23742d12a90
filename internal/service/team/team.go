package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/internal/repository"
	"github.com/Footy64/api/pkg/database"
)

type TeamRepository interface {
	Create(ctx context.Context, name string, createdBy int64) (*domain.Team, error)
	GetByID(ctx context.Context, teamID int64) (*domain.Team, error)
	GetByIDs(ctx context.Context, teamIDs []int64) ([]domain.Team, error)
	AddMember(ctx context.Context, teamID, userID int64) error
	RemoveMember(ctx context.Context, teamID, userID int64) (bool, error)
	IsMember(ctx context.Context, teamID, userID int64) (bool, error)
	ListTeamIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	ListMembers(ctx context.Context, teamID int64) ([]domain.UserSummary, error)
	ListMembersByTeams(ctx context.Context, teamIDs []int64) (map[int64][]domain.UserSummary, error)
}

type UserRepository interface {
	FilterExisting(ctx context.Context, userIDs []int64) ([]int64, error)
}

type TeamService struct {
	teamRepo  TeamRepository
	userRepo  UserRepository
	txManager database.TransactionManagerInterface
	lg        *slog.Logger
}

func NewTeamService(teamRepo TeamRepository,
	userRepo UserRepository,
	txManager database.TransactionManagerInterface,
	lg *slog.Logger) *TeamService {
	return &TeamService{
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		txManager: txManager,
		lg:        lg,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, creatorID int64, req domain.CreateTeamRequest) (*domain.TeamView, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrEmptyTeamName
	}

	memberIDs := normalizeMembers(req.MemberIDs, creatorID)
	if err := s.ensureUsersExist(ctx, memberIDs); err != nil {
		return nil, err
	}

	var teamID int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		team, err := s.teamRepo.Create(txCtx, name, creatorID)
		if err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		teamID = team.ID

		for _, userID := range memberIDs {
			if err := s.teamRepo.AddMember(txCtx, team.ID, userID); err != nil {
				return fmt.Errorf("failed to add team member %d: %w", userID, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.lg.Info("team created",
		slog.Int64("team_id", teamID),
		slog.Int64("creator_id", creatorID),
		slog.Int("members_count", len(memberIDs)))
	return s.hydrate(ctx, teamID)
}

func (s *TeamService) ListTeams(ctx context.Context, userID int64) ([]domain.TeamView, error) {
	teamIDs, err := s.teamRepo.ListTeamIDsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user teams: %w", err)
	}
	if len(teamIDs) == 0 {
		return []domain.TeamView{}, nil
	}

	teams, err := s.teamRepo.GetByIDs(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	membersByTeam, err := s.teamRepo.ListMembersByTeams(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	views := make([]domain.TeamView, 0, len(teams))
	for _, team := range teams {
		members := membersByTeam[team.ID]
		if members == nil {
			members = []domain.UserSummary{}
		}
		views = append(views, domain.TeamView{
			ID:        team.ID,
			Name:      team.Name,
			CreatedBy: team.CreatedBy,
			CreatedAt: team.CreatedAt,
			Members:   members,
		})
	}

	return views, nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID, actorID int64, newUserID int64) (*domain.TeamView, error) {
	if err := s.ensureTeamMember(ctx, teamID, actorID); err != nil {
		return nil, err
	}
	if err := s.ensureUsersExist(ctx, []int64{newUserID}); err != nil {
		return nil, err
	}

	alreadyMember, err := s.teamRepo.IsMember(ctx, teamID, newUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if alreadyMember {
		return nil, domain.ErrAlreadyMember
	}

	if err := s.teamRepo.AddMember(ctx, teamID, newUserID); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	s.lg.Info("team member added",
		slog.Int64("team_id", teamID),
		slog.Int64("user_id", newUserID),
		slog.Int64("actor_id", actorID))
	return s.hydrate(ctx, teamID)
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, actorID, memberID int64) (*domain.TeamView, error) {
	if err := s.ensureTeamMember(ctx, teamID, actorID); err != nil {
		return nil, err
	}

	removed, err := s.teamRepo.RemoveMember(ctx, teamID, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}
	if !removed {
		return nil, domain.ErrMemberNotInTeam
	}

	s.lg.Info("team member removed",
		slog.Int64("team_id", teamID),
		slog.Int64("user_id", memberID),
		slog.Int64("actor_id", actorID))
	return s.hydrate(ctx, teamID)
}

func (s *TeamService) hydrate(ctx context.Context, teamID int64) (*domain.TeamView, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, err := s.teamRepo.ListMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	if members == nil {
		members = []domain.UserSummary{}
	}

	return &domain.TeamView{
		ID:        team.ID,
		Name:      team.Name,
		CreatedBy: team.CreatedBy,
		CreatedAt: team.CreatedAt,
		Members:   members,
	}, nil
}

func (s *TeamService) ensureTeamMember(ctx context.Context, teamID, userID int64) error {
	isMember, err := s.teamRepo.IsMember(ctx, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return domain.ErrNotTeamMember
	}
	return nil
}

func (s *TeamService) ensureUsersExist(ctx context.Context, userIDs []int64) error {
	existing, err := s.userRepo.FilterExisting(ctx, userIDs)
	if err != nil {
		return fmt.Errorf("failed to check users: %w", err)
	}

	found := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []int64
	for _, id := range userIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingUsersError{IDs: missing}
	}

	return nil
}

// normalizeMembers unions the creator with the requested member ids and
// deduplicates, keeping the creator first.
func normalizeMembers(memberIDs []int64, creatorID int64) []int64 {
	seen := map[int64]struct{}{creatorID: {}}
	normalized := []int64{creatorID}
	for _, id := range memberIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		normalized = append(normalized, id)
	}
	return normalized
}
