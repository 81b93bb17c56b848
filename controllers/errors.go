package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/repositories"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

var (
	ErrInvalidID     = errors.New("invalid id")
	ErrInternal      = errors.New("internal server error")
	ErrOrderNotFound = errors.New("order not found")
	ErrItemNotFound  = errors.New("menu item not found")
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrOrderNotPending):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError writes err with its mapped status. Server-side failures
// are logged and replaced by a generic message.
func respondServiceError(c *gin.Context, err error, notFound error) {
	code := statusFor(err)
	switch {
	case code == http.StatusNotFound && notFound != nil:
		utils.RespondError(c, code, notFound)
	case code >= http.StatusInternalServerError:
		utils.ErrorLogger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		if errors.Is(err, services.ErrImageWrite) {
			utils.RespondError(c, code, services.ErrImageWrite)
			return
		}
		utils.RespondError(c, code, ErrInternal)
	default:
		utils.RespondError(c, code, err)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}
