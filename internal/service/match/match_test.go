package match

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/internal/repository"
)

type memStore struct {
	teams   map[int64]domain.Team
	members map[int64]map[int64]struct{}
	matches map[int64]domain.Match
	nextID  int64
}

func newMemStore() *memStore {
	return &memStore{
		teams:   map[int64]domain.Team{},
		members: map[int64]map[int64]struct{}{},
		matches: map[int64]domain.Match{},
	}
}

func (m *memStore) addTeam(id int64, name string, memberIDs ...int64) {
	m.teams[id] = domain.Team{ID: id, Name: name, CreatedBy: memberIDs[0], CreatedAt: time.Now().UTC()}
	m.members[id] = map[int64]struct{}{}
	for _, userID := range memberIDs {
		m.members[id][userID] = struct{}{}
	}
}

func (m *memStore) Create(ctx context.Context, homeTeamID, awayTeamID int64, matchDate time.Time, place string, createdBy int64) (int64, error) {
	m.nextID++
	m.matches[m.nextID] = domain.Match{
		ID:         m.nextID,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		MatchDate:  matchDate,
		Place:      place,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	}
	return m.nextID, nil
}

func (m *memStore) GetByID(ctx context.Context, matchID int64) (*domain.Match, error) {
	match, ok := m.matches[matchID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &match, nil
}

func (m *memStore) UpdateScore(ctx context.Context, matchID int64, homeScore, awayScore int) error {
	match, ok := m.matches[matchID]
	if !ok {
		return repository.ErrNotFound
	}
	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	m.matches[matchID] = match
	return nil
}

func (m *memStore) ListViewsForTeams(ctx context.Context, teamIDs []int64, matchIDs ...int64) ([]domain.MatchView, error) {
	teamSet := map[int64]struct{}{}
	for _, id := range teamIDs {
		teamSet[id] = struct{}{}
	}
	matchSet := map[int64]struct{}{}
	for _, id := range matchIDs {
		matchSet[id] = struct{}{}
	}

	var views []domain.MatchView
	for _, match := range m.matches {
		_, home := teamSet[match.HomeTeamID]
		_, away := teamSet[match.AwayTeamID]
		if !home && !away {
			continue
		}
		if len(matchSet) > 0 {
			if _, ok := matchSet[match.ID]; !ok {
				continue
			}
		}
		views = append(views, domain.MatchView{
			ID:        match.ID,
			Date:      match.MatchDate,
			Place:     match.Place,
			CreatedBy: match.CreatedBy,
			CreatedAt: match.CreatedAt,
			HomeTeam:  domain.TeamRef{ID: match.HomeTeamID, Name: m.teams[match.HomeTeamID].Name},
			AwayTeam:  domain.TeamRef{ID: match.AwayTeamID, Name: m.teams[match.AwayTeamID].Name},
			Score:     domain.Score{Home: match.HomeScore, Away: match.AwayScore},
		})
	}
	return views, nil
}

func (m *memStore) GetByIDs(ctx context.Context, teamIDs []int64) ([]domain.Team, error) {
	seen := map[int64]struct{}{}
	var teams []domain.Team
	for _, id := range teamIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if team, ok := m.teams[id]; ok {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (m *memStore) ListTeamIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for teamID, members := range m.members {
		if _, ok := members[userID]; ok {
			ids = append(ids, teamID)
		}
	}
	return ids, nil
}

func (m *memStore) MembershipsIn(ctx context.Context, userID int64, teamIDs []int64) ([]int64, error) {
	var found []int64
	for _, teamID := range teamIDs {
		if _, ok := m.members[teamID][userID]; ok {
			found = append(found, teamID)
		}
	}
	return found, nil
}

func newTestService(store *memStore) *MatchService {
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMatchService(store, store, lg)
}

func validRequest() domain.CreateMatchRequest {
	return domain.CreateMatchRequest{
		HomeTeamID: 1,
		AwayTeamID: 2,
		Date:       "2026-09-12T18:30:00Z",
		Place:      "City Park",
	}
}

func TestCreateMatchSameTeam(t *testing.T) {
	store := newMemStore()
	store.addTeam(5, "Reds", 1)
	svc := newTestService(store)

	req := validRequest()
	req.HomeTeamID = 5
	req.AwayTeamID = 5

	_, err := svc.CreateMatch(context.Background(), 1, req)
	if !errors.Is(err, domain.ErrSameTeam) {
		t.Fatalf("expected ErrSameTeam, got %v", err)
	}
}

func TestCreateMatchTeamMissing(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	svc := newTestService(store)

	_, err := svc.CreateMatch(context.Background(), 1, validRequest())
	if !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}
}

func TestCreateMatchNotParticipant(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 10)
	store.addTeam(2, "Blues", 11)
	svc := newTestService(store)

	_, err := svc.CreateMatch(context.Background(), 99, validRequest())
	if !errors.Is(err, domain.ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestCreateMatchBadDate(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	req := validRequest()
	req.Date = "next tuesday"

	_, err := svc.CreateMatch(context.Background(), 1, req)
	if !errors.Is(err, domain.ErrInvalidMatchDate) {
		t.Fatalf("expected ErrInvalidMatchDate, got %v", err)
	}
}

func TestCreateMatchEmptyPlace(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	req := validRequest()
	req.Place = "   "

	_, err := svc.CreateMatch(context.Background(), 1, req)
	if !errors.Is(err, domain.ErrEmptyPlace) {
		t.Fatalf("expected ErrEmptyPlace, got %v", err)
	}
}

func TestCreateMatchHydratesTeams(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	view, err := svc.CreateMatch(context.Background(), 1, validRequest())
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	if view.HomeTeam.Name != "Reds" || view.AwayTeam.Name != "Blues" {
		t.Errorf("team names = %q/%q, want Reds/Blues", view.HomeTeam.Name, view.AwayTeam.Name)
	}
	if view.Score.Home != nil || view.Score.Away != nil {
		t.Error("expected scores to be unset on a new match")
	}
	if view.Place != "City Park" {
		t.Errorf("place = %q, want City Park", view.Place)
	}
}

func TestCreateMatchAcceptsDateOnly(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	req := validRequest()
	req.Date = "2026-09-12"

	if _, err := svc.CreateMatch(context.Background(), 1, req); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
}

func TestListMatchesNoMemberships(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	views, err := svc.ListMatches(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if views == nil || len(views) != 0 {
		t.Fatalf("views = %v, want empty non-nil slice", views)
	}
}

func TestUpdateScoreMatchMissing(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.UpdateScore(context.Background(), 7, 1, 2, 1)
	if !errors.Is(err, domain.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestUpdateScoreForbidden(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	view, err := svc.CreateMatch(context.Background(), 1, validRequest())
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	_, err = svc.UpdateScore(context.Background(), view.ID, 99, 2, 1)
	if !errors.Is(err, domain.ErrNotParticipant) {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
}

func TestUpdateScoreOverwrites(t *testing.T) {
	store := newMemStore()
	store.addTeam(1, "Reds", 1)
	store.addTeam(2, "Blues", 2)
	svc := newTestService(store)

	created, err := svc.CreateMatch(context.Background(), 1, validRequest())
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	first, err := svc.UpdateScore(context.Background(), created.ID, 1, 2, 1)
	if err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	if first.Score.Home == nil || *first.Score.Home != 2 {
		t.Fatalf("home score = %v, want 2", first.Score.Home)
	}

	// repeat with the same values, last write wins
	second, err := svc.UpdateScore(context.Background(), created.ID, 1, 2, 1)
	if err != nil {
		t.Fatalf("UpdateScore: %v", err)
	}
	if *second.Score.Home != 2 || *second.Score.Away != 1 {
		t.Fatalf("score = %d:%d, want 2:1", *second.Score.Home, *second.Score.Away)
	}
}
