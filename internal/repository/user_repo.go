package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/Footy64/api/internal/domain"
	"github.com/Footy64/api/pkg/database"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, displayName *string) (*domain.User, error) {
	conn := r.db.Conn(ctx)

	var user domain.User
	err := conn.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, display_name, created_at
	`, email, passwordHash, displayName).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.CreatedAt,
	)
	if err != nil {
		return nil, HandleUniqueViolation(err)
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	conn := r.db.Conn(ctx)

	var user domain.User
	err := conn.QueryRowContext(ctx, `
		SELECT id, email, password_hash, display_name, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.CreatedAt)
	if err != nil {
		return nil, HandleNoRowsError(err)
	}

	return &user, nil
}

// FilterExisting returns the subset of ids that reference stored users.
func (r *UserRepository) FilterExisting(ctx context.Context, userIDs []int64) ([]int64, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, `
		SELECT id FROM users WHERE id = ANY($1)
	`, pq.Array(userIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query users by ids: %w", err)
	}
	defer rows.Close()

	var found []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		found = append(found, id)
	}

	return found, rows.Err()
}

func (r *UserRepository) Search(ctx context.Context, query string, limit int) ([]domain.UserSummary, error) {
	pattern := "%" + query + "%"

	conn := r.db.Conn(ctx)
	rows, err := conn.QueryContext(ctx, `
		SELECT id, email, display_name
		FROM users
		WHERE display_name ILIKE $1 OR email ILIKE $1
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserSummary
	for rows.Next() {
		var user domain.UserSummary
		if err := rows.Scan(&user.ID, &user.Email, &user.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
