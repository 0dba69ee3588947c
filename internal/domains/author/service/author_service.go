package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"book-catalog-backend/internal/domains/author"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// BookCounter reports how many books reference an author.
// Implemented by the book repository; declared here so the author
// domain does not import the book domain.
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}

// authorService implements author.Service
type authorService struct {
	repo  author.Repository
	books BookCounter
}

func NewAuthorService(repo author.Repository, books BookCounter) author.Service {
	return &authorService{repo: repo, books: books}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := &author.Author{
		Name: req.Name,
		Bio:  req.Bio,
		Dob:  req.Dob,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	return created, nil
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	return s.repo.GetAll(ctx, filter)
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req *author.UpdateAuthorRequest) (*author.Author, error) {
	// Load current state, then overwrite only the truthy fields
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(a)

	// Repo errors pass through untouched so the handler can map the
	// ErrAuthorNotFound a concurrent delete can race in here.
	return s.repo.Update(ctx, a)
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	// Fast path for the common "author still has books" case. The
	// repository delete re-checks atomically, so a book created between
	// this count and the delete still blocks the removal.
	count, err := s.books.CountByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("count books for author: %w", err)
	}
	if count > 0 {
		return author.ErrAuthorHasBooks
	}

	return s.repo.Delete(ctx, id)
}
