package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/book"
)

// stubService records what the handler passed down and returns canned data
type stubService struct {
	books      []book.Book
	total      int64
	detail     *book.Book
	createErr  error
	deleteErr  error
	lastReq    book.CreateBookRequest
	lastCover  *book.CoverUpload
	lastFilter book.BookFilter
}

func (s *stubService) Create(_ context.Context, req book.CreateBookRequest, cover *book.CoverUpload) (*book.Book, error) {
	s.lastReq = req
	s.lastCover = cover
	if s.createErr != nil {
		return nil, s.createErr
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &book.Book{ID: uuid.New(), Title: req.Title, AuthorID: uuid.MustParse(req.AuthorID)}, nil
}

func (s *stubService) GetByID(_ context.Context, _ uuid.UUID) (*book.Book, error) {
	if s.detail == nil {
		return nil, book.ErrBookNotFound
	}
	return s.detail, nil
}

func (s *stubService) GetAll(_ context.Context, filter book.BookFilter) ([]book.Book, int64, error) {
	s.lastFilter = filter
	return s.books, s.total, nil
}

func (s *stubService) Update(_ context.Context, id uuid.UUID, _ book.UpdateBookRequest, _ *book.CoverUpload) (*book.Book, error) {
	if s.detail == nil {
		return nil, book.ErrBookNotFound
	}
	return s.detail, nil
}

func (s *stubService) Delete(_ context.Context, _ uuid.UUID) error {
	return s.deleteErr
}

func newRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	r := gin.New()
	r.GET("/api/v1/books", h.GetAll)
	r.GET("/api/v1/books/:id", h.GetByID)
	r.POST("/api/v1/books", h.Create)
	r.PUT("/api/v1/books/:id", h.Update)
	r.DELETE("/api/v1/books/:id", h.Delete)
	return r
}

// multipartBody builds a form with the given fields plus an optional file
func multipartBody(t *testing.T, fields map[string]string, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		fw, err := w.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestGetAllListShape(t *testing.T) {
	authorID := uuid.New()
	svc := &stubService{
		books: []book.Book{
			{ID: uuid.New(), Title: "Dawn", AuthorID: authorID, Author: &book.AuthorRef{ID: authorID, Name: "Octavia Butler"}},
		},
		total: 11,
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books?page=1&limit=5&search=dawn", nil)
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dawn", svc.lastFilter.Search)

	var resp struct {
		Books       []book.Book `json:"books"`
		CurrentPage int         `json:"currentPage"`
		TotalPages  int         `json:"totalPages"`
		TotalBooks  int64       `json:"totalBooks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Books, 1)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 3, resp.TotalPages) // ceil(11/5)
	assert.Equal(t, int64(11), resp.TotalBooks)
	require.NotNil(t, resp.Books[0].Author)
	assert.Equal(t, "Octavia Butler", resp.Books[0].Author.Name)
}

func TestGetAllEmptyPageIsEmptyArray(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	newRouter(&stubService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"books":[]`)
}

func TestGetByIDEmbedsAuthorDetail(t *testing.T) {
	bio := "Wrote the Xenogenesis trilogy."
	authorID := uuid.New()
	svc := &stubService{detail: &book.Book{
		ID:       uuid.New(),
		Title:    "Adulthood Rites",
		AuthorID: authorID,
		Author:   &book.AuthorRef{ID: authorID, Name: "Octavia Butler", Bio: &bio},
	}}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+svc.detail.ID.String(), nil)
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Octavia Butler"`)
	assert.Contains(t, w.Body.String(), `"bio":"Wrote the Xenogenesis trilogy."`)
}

func TestGetByIDMalformedUUIDIsNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/not-a-uuid", nil)
	newRouter(&stubService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message": "Book not found"}`, w.Body.String())
}

func TestCreateMultipartWithCover(t *testing.T) {
	svc := &stubService{}
	authorID := uuid.NewString()
	body, contentType := multipartBody(t, map[string]string{
		"title":         "Parable of the Sower",
		"description":   "A journey north.",
		"publishedYear": "1993",
		"authorId":      authorID,
	}, "cover.jpg", []byte("jpeg-bytes"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", body)
	req.Header.Set("Content-Type", contentType)
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Parable of the Sower", svc.lastReq.Title)
	assert.Equal(t, authorID, svc.lastReq.AuthorID)
	require.NotNil(t, svc.lastReq.PublishedYear)
	assert.Equal(t, 1993, *svc.lastReq.PublishedYear)
	require.NotNil(t, svc.lastCover)
	assert.Equal(t, []byte("jpeg-bytes"), svc.lastCover.Data)
}

func TestCreateMultipartWithoutCover(t *testing.T) {
	svc := &stubService{}
	body, contentType := multipartBody(t, map[string]string{
		"title":    "No Cover",
		"authorId": uuid.NewString(),
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", body)
	req.Header.Set("Content-Type", contentType)
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, svc.lastCover)
}

func TestCreateMissingTitle(t *testing.T) {
	body, contentType := multipartBody(t, map[string]string{
		"authorId": uuid.NewString(),
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", body)
	req.Header.Set("Content-Type", contentType)
	newRouter(&stubService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "title")
}

func TestCreateUnresolvableAuthorIsBadRequest(t *testing.T) {
	svc := &stubService{createErr: book.ErrAuthorNotResolvable}
	body, contentType := multipartBody(t, map[string]string{
		"title":    "Orphan",
		"authorId": uuid.NewString(),
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", body)
	req.Header.Set("Content-Type", contentType)
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message": "Author not found for the given authorId"}`, w.Body.String())
}

func TestCreateBadPublishedYear(t *testing.T) {
	body, contentType := multipartBody(t, map[string]string{
		"title":         "Bad Year",
		"authorId":      uuid.NewString(),
		"publishedYear": "nineteen-ninety",
	}, "", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", body)
	req.Header.Set("Content-Type", contentType)
	newRouter(&stubService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message": "publishedYear must be a number"}`, w.Body.String())
}

func TestDeleteRemoved(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/books/"+uuid.NewString(), nil)
	newRouter(&stubService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Book removed"}`, w.Body.String())
}
