package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/admin"
)

// postgresRepository implements admin.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) admin.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `
        SELECT id, email, password_hash, created_at, updated_at
        FROM admins
        WHERE email = $1
    `

	var a admin.Admin
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin by email: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
        INSERT INTO admins (email, password_hash)
        VALUES ($1, $2)
        ON CONFLICT (email) DO UPDATE SET
            password_hash = EXCLUDED.password_hash,
            updated_at = NOW()
        RETURNING id, created_at, updated_at
    `

	err := r.pool.QueryRow(ctx, query, a.Email, a.PasswordHash).Scan(
		&a.ID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}
