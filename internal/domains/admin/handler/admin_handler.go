package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/domains/admin"
	"book-catalog-backend/internal/shared/response"
)

type AdminHandler struct {
	service admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Login - POST /api/v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req admin.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		switch err {
		case admin.ErrInvalidCredentials, admin.ErrTooManyAttempts:
			response.Error(c, http.StatusUnauthorized, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
