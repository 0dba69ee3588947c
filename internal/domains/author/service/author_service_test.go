package service

import (
	"context"
	"strings"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/author"
)

// ────────────────────────────────────────
// stubs
// ────────────────────────────────────────

type stubAuthorRepo struct {
	authors    map[uuid.UUID]*author.Author
	lastFilter author.AuthorFilter
	deleted    []uuid.UUID
}

func newStubAuthorRepo() *stubAuthorRepo {
	return &stubAuthorRepo{authors: map[uuid.UUID]*author.Author{}}
}

func (r *stubAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.authors[a.ID] = a
	return a, nil
}

func (r *stubAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

// GetAll mirrors the SQL ILIKE '%search%' semantics
func (r *stubAuthorRepo) GetAll(_ context.Context, filter author.AuthorFilter) ([]author.Author, int64, error) {
	r.lastFilter = filter
	out := make([]author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		if filter.Search == "" || strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Search)) {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := r.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	a.UpdatedAt = time.Now()
	r.authors[a.ID] = a
	cp := *a
	return &cp, nil
}

func (r *stubAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(r.authors, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubAuthorRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.authors[id]
	return ok, nil
}

type stubBookCounter struct {
	counts map[uuid.UUID]int64
}

func (c *stubBookCounter) CountByAuthor(_ context.Context, authorID uuid.UUID) (int64, error) {
	return c.counts[authorID], nil
}

func strptr(s string) *string { return &s }

// ────────────────────────────────────────
// tests
// ────────────────────────────────────────

func TestCreateRequiresName(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo(), &stubBookCounter{})

	_, err := svc.Create(context.Background(), &author.CreateAuthorRequest{Name: ""})
	require.Error(t, err)

	var vErrs validation.Errors
	assert.ErrorAs(t, err, &vErrs)
}

func TestGetAllClampsPaging(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, &stubBookCounter{})

	_, _, err := svc.GetAll(context.Background(), author.AuthorFilter{Page: 0, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, DefaultLimit, repo.lastFilter.Limit)

	_, _, err = svc.GetAll(context.Background(), author.AuthorFilter{Page: 3, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastFilter.Page)
	assert.Equal(t, MaxLimit, repo.lastFilter.Limit)
}

func TestGetAllSearchIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, &stubBookCounter{})

	for _, name := range []string{"Jane Austen", "Emily Bronte"} {
		_, err := repo.Create(context.Background(), &author.Author{Name: name})
		require.NoError(t, err)
	}

	matches, total, err := svc.GetAll(context.Background(), author.AuthorFilter{Search: "austen"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, "Jane Austen", matches[0].Name)

	_, total, err = svc.GetAll(context.Background(), author.AuthorFilter{Search: "dickens"})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestUpdateOverwritesOnlyTruthyFields(t *testing.T) {
	repo := newStubAuthorRepo()
	svc := NewAuthorService(repo, &stubBookCounter{})

	created, err := repo.Create(context.Background(), &author.Author{
		Name: "Ursula K. Le Guin",
		Bio:  strptr("Wrote Earthsea."),
	})
	require.NoError(t, err)

	// Omitted name and empty bio both keep their stored values
	updated, err := svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		Bio: strptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ursula K. Le Guin", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Wrote Earthsea.", *updated.Bio)

	// A non-empty value overwrites
	updated, err = svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		Name: strptr("U. K. Le Guin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "U. K. Le Guin", updated.Name)
	assert.Equal(t, "Wrote Earthsea.", *updated.Bio)
}

func TestUpdateMissingAuthor(t *testing.T) {
	svc := NewAuthorService(newStubAuthorRepo(), &stubBookCounter{})

	_, err := svc.Update(context.Background(), uuid.New(), &author.UpdateAuthorRequest{
		Name: strptr("Anyone"),
	})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

// racedDeleteRepo simulates the author vanishing between the load and the
// save inside Update
type racedDeleteRepo struct {
	*stubAuthorRepo
}

func (r *racedDeleteRepo) Update(context.Context, *author.Author) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func TestUpdateSurfacesNotFoundFromSave(t *testing.T) {
	repo := newStubAuthorRepo()
	created, err := repo.Create(context.Background(), &author.Author{Name: "Vanishing"})
	require.NoError(t, err)

	svc := NewAuthorService(&racedDeleteRepo{repo}, &stubBookCounter{})

	_, err = svc.Update(context.Background(), created.ID, &author.UpdateAuthorRequest{
		Name: strptr("Renamed"),
	})
	// The sentinel must come back untouched so the handler maps it to 404
	// with its exact message
	assert.Equal(t, author.ErrAuthorNotFound, err)
}

func TestDeleteBlockedWhenBooksExist(t *testing.T) {
	repo := newStubAuthorRepo()
	created, err := repo.Create(context.Background(), &author.Author{Name: "Busy Author"})
	require.NoError(t, err)

	counter := &stubBookCounter{counts: map[uuid.UUID]int64{created.ID: 2}}
	svc := NewAuthorService(repo, counter)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, author.ErrAuthorHasBooks)
	assert.Empty(t, repo.deleted)
}

func TestDeleteRemovesUnreferencedAuthor(t *testing.T) {
	repo := newStubAuthorRepo()
	created, err := repo.Create(context.Background(), &author.Author{Name: "Idle Author"})
	require.NoError(t, err)

	svc := NewAuthorService(repo, &stubBookCounter{counts: map[uuid.UUID]int64{}})

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []uuid.UUID{created.ID}, repo.deleted)
}
