package user

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Footy64/api/internal/domain"
)

type recordingRepo struct {
	lastQuery string
	lastLimit int
	calls     int
	results   []domain.UserSummary
}

func (r *recordingRepo) Search(ctx context.Context, query string, limit int) ([]domain.UserSummary, error) {
	r.calls++
	r.lastQuery = query
	r.lastLimit = limit
	var matched []domain.UserSummary
	for _, user := range r.results {
		if strings.Contains(strings.ToLower(user.Email), strings.ToLower(query)) {
			matched = append(matched, user)
		}
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

func newTestService(repo *recordingRepo) *UserService {
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUserService(repo, lg)
}

func TestSearchTrimsQuery(t *testing.T) {
	repo := &recordingRepo{results: []domain.UserSummary{
		{ID: 1, Email: "john@x.com"},
		{ID: 2, Email: "mary@x.com"},
	}}
	svc := newTestService(repo)

	users, err := svc.Search(context.Background(), " jo ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if repo.lastQuery != "jo" {
		t.Errorf("query passed to repo = %q, want %q", repo.lastQuery, "jo")
	}
	if repo.lastLimit != SearchLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, SearchLimit)
	}
	if len(users) != 1 || users[0].ID != 1 {
		t.Errorf("users = %v, want john only", users)
	}
}

func TestSearchEmptyQuerySkipsRepo(t *testing.T) {
	repo := &recordingRepo{}
	svc := newTestService(repo)

	users, err := svc.Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if repo.calls != 0 {
		t.Error("expected the repository not to be queried")
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("users = %v, want empty non-nil slice", users)
	}
}

func TestSearchNoMatches(t *testing.T) {
	repo := &recordingRepo{}
	svc := newTestService(repo)

	users, err := svc.Search(context.Background(), "zz")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("users = %v, want empty non-nil slice", users)
	}
}
