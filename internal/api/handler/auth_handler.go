package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/internal/dto"
	"github.com/kirkclark82/UGCC-APP/internal/service"
	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

// AuthHandler registration and login endpoints
type AuthHandler struct {
	authSvc      service.AuthService
	exposeDetail bool
}

// NewAuthHandler creates an AuthHandler
func NewAuthHandler(authSvc service.AuthService, exposeDetail bool) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, exposeDetail: exposeDetail}
}

// Register creates an account
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	id, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, h.exposeDetail)
		return
	}

	response.Created(c, "Registration successful!", id)
}

// Login checks credentials and returns the stored profile
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	profile, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, h.exposeDetail)
		return
	}

	response.OKUser(c, "Login successful!", profile)
}
