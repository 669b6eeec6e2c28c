package handler

import (
	"errors"
	"net/http"

	"cloudshop/internal/middleware"
	"cloudshop/internal/service"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func okData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func okMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func okMessageData(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Message: message})
}

// failFromService maps service-layer errors onto the taxonomy: validation
// → 400, bad credentials → 401, ownership → 403, missing entity → 404,
// anything else → 500 with a generic message (detail stays in the log).
func failFromService(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrSmsCodeInvalid),
		errors.Is(err, service.ErrCaptchaInvalid),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrPhoneTaken),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrMissingCustomer),
		errors.Is(err, service.ErrPasswordTooShort):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWrongPassword):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrAdminNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		fail(c, http.StatusInternalServerError, fallback)
	}
}

// getAuthUserID reads the authenticated user id set by the auth middleware
func getAuthUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
