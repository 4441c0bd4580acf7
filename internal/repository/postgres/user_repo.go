package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/24KD1A0503/jn/internal/credentials"
	"github.com/24KD1A0503/jn/internal/models"
)

// Querier is the subset of pgxpool.Pool the repo needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// UserRepo reads the users table once at startup. It never writes.
type UserRepo struct{ db Querier }

func NewUserRepo(db Querier) *UserRepo { return &UserRepo{db: db} }

var _ credentials.Source = (*UserRepo)(nil)

const listActiveUsers = `
	SELECT username, full_name, password_hash, role
	FROM users
	WHERE is_active = true
	ORDER BY username`

func (r *UserRepo) Seeds(ctx context.Context) ([]credentials.Seed, error) {
	rows, err := r.db.Query(ctx, listActiveUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []credentials.Seed
	for rows.Next() {
		var s credentials.Seed
		var role string
		if err := rows.Scan(&s.Username, &s.DisplayName, &s.PasswordHash, &role); err != nil {
			return nil, err
		}
		s.Role = models.Role(role)
		out = append(out, s)
	}
	return out, rows.Err()
}
