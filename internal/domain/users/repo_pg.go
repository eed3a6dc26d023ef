package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGRepository is the pgx-backed Repository.
type PGRepository struct {
	pool *pgxpool.Pool
}

func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

func (r *PGRepository) Upsert(ctx context.Context, u User) error {
	query := `INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`

	if _, err := r.pool.Exec(ctx, query, u.Username, u.PasswordHash, u.Role); err != nil {
		return fmt.Errorf("upsert user %s: %w", u.Username, err)
	}
	return nil
}
