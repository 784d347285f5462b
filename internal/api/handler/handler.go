package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/config"
	"github.com/kirkclark82/UGCC-APP/internal/service"
	"github.com/kirkclark82/UGCC-APP/internal/validation"
	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

// Handler aggregate of all handlers
type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Export *ExportHandler
	System *SystemHandler
}

// NewHandler creates the handler set. In development mode internal error
// causes are included in failure responses.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	expose := cfg.Server.IsDevelopment()
	return &Handler{
		Auth:   NewAuthHandler(svc.Auth, expose),
		User:   NewUserHandler(svc.User, expose),
		Export: NewExportHandler(svc.Export, expose),
		System: NewSystemHandler(),
	}
}

// bindFailed answers a request whose body could not be bound: 413 when the
// body hit the size cap, 400 otherwise.
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.TooLarge(c)
		return
	}
	response.BadRequest(c, validation.MsgInvalidInput)
}
