package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/author"
)

// postgresRepository implements author.Repository on pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func scanAuthor(row pgx.Row, a *author.Author) error {
	var dob *time.Time
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Bio,
		&dob,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	a.Dob = author.DateOf(dob)
	return nil
}

// Create inserts a new author with generated ID and timestamps
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, bio, dob)
        VALUES ($1, $2, $3)
        RETURNING id, name, bio, dob, created_at, updated_at
    `

	var created author.Author
	row := r.pool.QueryRow(ctx, query, a.Name, a.Bio, author.TimeOf(a.Dob))
	if err := scanAuthor(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves author by UUID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT id, name, bio, dob, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	var a author.Author
	if err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// GetAll retrieves a page of authors, newest first
func (r *postgresRepository) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
        SELECT id, name, bio, dob, created_at, updated_at
        FROM authors
        WHERE 1=1
    `)

	args := []interface{}{}
	argPos := 1

	// Case-insensitive substring match on name
	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1))
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	// Total match count (unpaginated) for the caller's page math
	countQuery := `SELECT COUNT(*) FROM authors WHERE 1=1`
	countArgs := []interface{}{}

	if filter.Search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+filter.Search+"%")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

// Update persists the full entity state
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET
            name = $1,
            bio = $2,
            dob = $3,
            updated_at = NOW()
        WHERE id = $4
        RETURNING id, name, bio, dob, created_at, updated_at
    `

	var updated author.Author
	row := r.pool.QueryRow(ctx, query, a.Name, a.Bio, author.TimeOf(a.Dob), a.ID)
	if err := scanAuthor(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return &updated, nil
}

// Delete removes the author only when no book references it.
// The guard and the delete are a single statement, so there is no window
// for a concurrent book insert between check and delete. The FK on
// books.author_id (RESTRICT) backs this up at the schema level.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM authors
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM books WHERE author_id = $1)
    `

	cmdTag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Zero rows: either the author is gone or books still reference it
		exists, err := r.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return author.ErrAuthorNotFound
		}
		return author.ErrAuthorHasBooks
	}

	return nil
}

// ExistsByID checks if author exists (lightweight query)
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
