package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"book-catalog-backend/internal/domains/book"
	"book-catalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/v1/books?page=1&limit=10&search=
// Also serves GET /api/v1/books/public
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetAll(c *gin.Context) {
	filter := book.BookFilter{
		Page:   1,
		Limit:  10,
		Search: c.Query("search"),
	}

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filter.Page = p
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > 100 {
				l = 100
			}
			filter.Limit = l
		}
	}

	books, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	if books == nil {
		books = []book.Book{}
	}

	totalPages := (int(total) + filter.Limit - 1) / filter.Limit

	response.JSON(c, http.StatusOK, book.ListResponse{
		Books:       books,
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
		TotalBooks:  total,
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/books/:id
// Also serves GET /api/v1/books/public/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, book.ErrBookNotFound.Error())
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/books (multipart/form-data)
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	req := book.CreateBookRequest{
		Title:    c.PostForm("title"),
		AuthorID: c.PostForm("authorId"),
	}
	if v := c.PostForm("description"); v != "" {
		req.Description = &v
	}
	if v := c.PostForm("publishedYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "publishedYear must be a number")
			return
		}
		req.PublishedYear = &year
	}

	cover, err := readCover(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, book.ErrInvalidImage.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, cover)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, b)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/books/:id (multipart/form-data)
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, book.ErrBookNotFound.Error())
		return
	}

	var req book.UpdateBookRequest
	// Only non-empty form values participate in the update; empty strings
	// behave the same as absent fields.
	if v := c.PostForm("title"); v != "" {
		req.Title = &v
	}
	if v := c.PostForm("description"); v != "" {
		req.Description = &v
	}
	if v := c.PostForm("authorId"); v != "" {
		req.AuthorID = &v
	}
	if v := c.PostForm("publishedYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "publishedYear must be a number")
			return
		}
		req.PublishedYear = &year
	}
	req.ExistingImage = c.PostForm("existingImage")

	cover, err := readCover(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, book.ErrInvalidImage.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req, cover)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, book.ErrBookNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Book removed")
}

// writeError maps domain errors onto the wire contract
func (h *BookHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if status := book.ToHTTPStatus(err); status < http.StatusInternalServerError {
		response.Error(c, status, err.Error())
		return
	}
	response.ServerError(c, err)
}

// readCover pulls the optional "image" file out of the multipart form.
// Returns nil when no file was uploaded.
func readCover(c *gin.Context) (*book.CoverUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		// Non-multipart bodies also land here; treat them as "no file"
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return nil, err
	}

	return &book.CoverUpload{
		Data:        data,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
