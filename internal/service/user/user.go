package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Footy64/api/internal/domain"
)

// SearchLimit bounds the number of rows a directory search returns.
const SearchLimit = 8

type UserRepository interface {
	Search(ctx context.Context, query string, limit int) ([]domain.UserSummary, error)
}

type UserService struct {
	userRepo UserRepository
	lg       *slog.Logger
}

func NewUserService(userRepo UserRepository, lg *slog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		lg:       lg,
	}
}

// Search performs a case-insensitive substring match over display names
// and emails. A query that is empty after trimming short-circuits to an
// empty result instead of a match-everything scan.
func (s *UserService) Search(ctx context.Context, query string) ([]domain.UserSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.UserSummary{}, nil
	}

	users, err := s.userRepo.Search(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if users == nil {
		users = []domain.UserSummary{}
	}

	s.lg.Info("user search", slog.String("query", query), slog.Int("results", len(users)))
	return users, nil
}
