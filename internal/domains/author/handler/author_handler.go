package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"book-catalog-backend/internal/domains/author"
	"book-catalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/v1/authors?page=1&limit=10&search=
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	filter := author.AuthorFilter{
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

	authors, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	if authors == nil {
		authors = []author.Author{}
	}

	totalPages := (int(total) + filter.Limit - 1) / filter.Limit

	response.JSON(c, http.StatusOK, author.ListResponse{
		Authors:      authors,
		CurrentPage:  filter.Page,
		TotalPages:   totalPages,
		TotalAuthors: total,
	})
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, author.ErrAuthorNotFound.Error())
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, a)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, author.ErrAuthorNotFound.Error())
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, author.ErrAuthorNotFound.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Author removed")
}

// writeError maps domain errors onto the wire contract
func (h *AuthorHandler) writeError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if status := author.ToHTTPStatus(err); status < http.StatusInternalServerError {
		response.Error(c, status, err.Error())
		return
	}
	response.ServerError(c, err)
}
