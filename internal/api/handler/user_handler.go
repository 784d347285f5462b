package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/internal/dto"
	"github.com/kirkclark82/UGCC-APP/internal/service"
	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

// UserHandler account settings and registrations listing
type UserHandler struct {
	userSvc      service.UserService
	exposeDetail bool
}

// NewUserHandler creates a UserHandler
func NewUserHandler(userSvc service.UserService, exposeDetail bool) *UserHandler {
	return &UserHandler{userSvc: userSvc, exposeDetail: exposeDetail}
}

// Update overwrites the profile of one account
// PUT /api/user/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		// no record can carry such an id
		response.NotFound(c, service.MsgUserNotFound)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	if err := h.userSvc.UpdateProfile(c.Request.Context(), id, &req); err != nil {
		response.FromError(c, err, h.exposeDetail)
		return
	}

	response.OK(c, "Account information updated successfully!")
}

// List all registrations, newest first
// GET /api/registrations
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.userSvc.ListRegistrations(c.Request.Context())
	if err != nil {
		response.FromError(c, err, h.exposeDetail)
		return
	}

	response.OKData(c, list)
}
