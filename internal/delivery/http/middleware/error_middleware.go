package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-internhub-backend/internal/delivery/http/response"
	"go-internhub-backend/pkg/apperror"
	"go-internhub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				logger.Log.Error("internal error",
					slog.String("path", c.FullPath()),
					slog.String("error", appErr.Error()))
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("unhandled error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
