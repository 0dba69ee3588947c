package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"book-catalog-backend/internal/domains/author"
	"book-catalog-backend/internal/domains/book"
	"book-catalog-backend/internal/infrastructure/storage"
	"book-catalog-backend/pkg/logger"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// CoverStorage is the slice of object storage the book service needs.
// Implemented by infrastructure/storage.MinIOStorage.
type CoverStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// CoverProcessor validates and normalizes uploaded cover images.
// Implemented by infrastructure/storage.ImageProcessor.
type CoverProcessor interface {
	ValidateImage(data []byte) error
	ProcessCover(data []byte) (*storage.ProcessedCover, error)
}

type bookService struct {
	repo       book.Repository
	authorRepo author.Repository
	storage    CoverStorage
	processor  CoverProcessor
}

// NewBookService creates the book business logic layer
func NewBookService(repo book.Repository, authorRepo author.Repository, storage CoverStorage, processor CoverProcessor) book.Service {
	return &bookService{
		repo:       repo,
		authorRepo: authorRepo,
		storage:    storage,
		processor:  processor,
	}
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest, cover *book.CoverUpload) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, book.ErrAuthorNotResolvable
	}

	// Resolve the author before touching object storage so a bad authorId
	// never leaves orphaned cover objects behind.
	exists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrAuthorNotResolvable
	}

	b := &book.Book{
		ID:            uuid.New(), // assigned up front so cover keys can embed it
		Title:         req.Title,
		Description:   req.Description,
		PublishedYear: req.PublishedYear,
		AuthorID:      authorID,
	}

	if cover != nil {
		url, err := s.storeCover(ctx, b.ID, cover)
		if err != nil {
			return nil, err
		}
		b.Image = &url
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) GetAll(ctx context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
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

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.UpdateBookRequest, cover *book.CoverUpload) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != "" {
		b.Title = *req.Title
	}
	if req.Description != nil && *req.Description != "" {
		b.Description = req.Description
	}
	if req.PublishedYear != nil {
		b.PublishedYear = req.PublishedYear
	}
	if req.AuthorID != nil && *req.AuthorID != "" {
		authorID, err := uuid.Parse(*req.AuthorID)
		if err != nil {
			return nil, book.ErrAuthorNotResolvable
		}
		if authorID != b.AuthorID {
			exists, err := s.authorRepo.ExistsByID(ctx, authorID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, book.ErrAuthorNotResolvable
			}
			b.AuthorID = authorID
		}
	}

	// The cover follows the same truthy-overwrite rule as every other
	// field: a new upload wins, else a non-empty existingImage form value
	// is taken as the cover URL, else the stored cover is kept. It can
	// never be cleared through this endpoint.
	switch {
	case cover != nil:
		// Replaces the stored object in place, so the URL stays stable
		// across replacements.
		url, err := s.storeCover(ctx, b.ID, cover)
		if err != nil {
			return nil, err
		}
		b.Image = &url
	case req.ExistingImage != "":
		b.Image = &req.ExistingImage
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Cover cleanup is best-effort: the record is gone either way
	if err := s.storage.DeleteByPrefix(ctx, coverPrefix(id)); err != nil {
		logger.Error("failed to clean up cover objects for deleted book "+id.String(), err)
	}

	return nil
}

// storeCover validates, normalizes and uploads both cover variants,
// returning the public URL of the full-size cover.
func (s *bookService) storeCover(ctx context.Context, bookID uuid.UUID, cover *book.CoverUpload) (string, error) {
	if err := s.processor.ValidateImage(cover.Data); err != nil {
		return "", book.ErrInvalidImage
	}

	processed, err := s.processor.ProcessCover(cover.Data)
	if err != nil {
		return "", book.ErrInvalidImage
	}

	url, err := s.storage.Upload(ctx, coverPrefix(bookID)+"cover.jpg", processed.Cover, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to store cover: %w", err)
	}
	if _, err := s.storage.Upload(ctx, coverPrefix(bookID)+"thumb.jpg", processed.Thumbnail, "image/jpeg"); err != nil {
		return "", fmt.Errorf("failed to store thumbnail: %w", err)
	}

	return url, nil
}

func coverPrefix(bookID uuid.UUID) string {
	return "covers/" + bookID.String() + "/"
}
