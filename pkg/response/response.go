package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "github.com/kirkclark82/UGCC-APP/pkg/errors"
)

// Response uniform JSON envelope. Payload fields are omitted when unset.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	UserID  int64       `json:"userId,omitempty"`
	User    interface{} `json:"user,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ── success ──

// OK 200 with a message
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

// OKUser 200 with a user payload
func OKUser(c *gin.Context, message string, user interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, User: user})
}

// OKData 200 with a data payload
func OKData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created 201 with the new record id
func Created(c *gin.Context, message string, userID int64) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, UserID: userID})
}

// ── failure ──

// Error generic failure
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Response{Success: false, Message: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooLarge 413
func TooLarge(c *gin.Context) {
	Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(kind pkgerrors.Kind) int {
	switch kind {
	case pkgerrors.KindValidation, pkgerrors.KindConflict:
		return http.StatusBadRequest
	case pkgerrors.KindNotFound:
		return http.StatusNotFound
	case pkgerrors.KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as a failure envelope. The cause of an internal error
// is only included when exposeDetail is set.
func FromError(c *gin.Context, err error, exposeDetail bool) {
	kind := pkgerrors.KindOf(err)
	resp := Response{Success: false, Message: pkgerrors.MessageOf(err)}
	if kind == pkgerrors.KindInternal {
		_ = c.Error(err)
		if exposeDetail {
			if cause := errors.Unwrap(err); cause != nil {
				resp.Error = cause.Error()
			} else {
				resp.Error = err.Error()
			}
		}
	}
	c.JSON(StatusOf(kind), resp)
}
