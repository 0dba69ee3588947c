package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/author"
	"book-catalog-backend/internal/domains/book"
)

type postgresBookRepository struct {
	db *pgxpool.Pool
}

// NewPostgresBookRepository creates a PostgreSQL book repository
func NewPostgresBookRepository(db *pgxpool.Pool) book.Repository {
	return &postgresBookRepository{db: db}
}

func (r *postgresBookRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, description, image, published_year, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.Image, b.PublishedYear, b.AuthorID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23503: author_id references a missing author
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrAuthorNotResolvable
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
		SELECT b.id, b.title, b.description, b.image, b.published_year, b.author_id,
		       b.created_at, b.updated_at,
		       a.id, a.name, a.bio, a.dob
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE b.id = $1
	`

	var b book.Book
	var ref book.AuthorRef
	var dob *time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Description, &b.Image, &b.PublishedYear, &b.AuthorID,
		&b.CreatedAt, &b.UpdatedAt,
		&ref.ID, &ref.Name, &ref.Bio, &dob,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	ref.Dob = author.DateOf(dob)
	b.Author = &ref
	return &b, nil
}

func (r *postgresBookRepository) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	listQuery := `
		SELECT b.id, b.title, b.description, b.image, b.published_year, b.author_id,
		       b.created_at, b.updated_at,
		       a.id, a.name
		FROM books b
		JOIN authors a ON a.id = b.author_id
		WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%')
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, listQuery, filter.Search, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		var ref book.AuthorRef
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &b.Image, &b.PublishedYear, &b.AuthorID,
			&b.CreatedAt, &b.UpdatedAt,
			&ref.ID, &ref.Name,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Author = &ref
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate books: %w", err)
	}

	countQuery := `
		SELECT COUNT(*)
		FROM books b
		WHERE ($1 = '' OR b.title ILIKE '%' || $1 || '%')
	`

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresBookRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET title = $2, description = $3, image = $4, published_year = $5,
		    author_id = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Description, b.Image, b.PublishedYear, b.AuthorID,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return book.ErrAuthorNotResolvable
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresBookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresBookRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM books WHERE author_id = $1", authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count books by author: %w", err)
	}

	return count, nil
}
