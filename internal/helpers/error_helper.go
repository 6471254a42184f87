package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"expodir/internal/managers"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondManagerError translates manager-layer sentinels into their
// user-visible status codes; anything else is a storage failure.
func RespondManagerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, managers.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, managers.ErrValidation):
		RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, managers.ErrInvalidCredentials):
		RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
	default:
		RespondWithError(c, http.StatusInternalServerError, "Unexpected storage error.")
	}
}
