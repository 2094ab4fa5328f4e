package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "ton-mini-app-backend/internal/common/errors"
	"ton-mini-app-backend/internal/common/logger"
)

const RequestIDKey = "request_id"

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"connection refused"`
	RequestID string `json:"request_id,omitempty"`
}

// RequestID middleware для добавления ID запроса
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Recovery turns a panic into a 500 failure response; the process keeps serving.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Str("request_id", getRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Success:   false,
			Error:     "internal server error",
			RequestID: getRequestID(c),
		})
	})
}

// ErrorResponder renders the last error a handler attached with c.Error.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, ok := apperrors.AsAppError(err)
		if !ok {
			appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Handler error occurred")
		}

		logError(c, appErr)

		c.JSON(appErr.HTTPStatus(), ErrorResponse{
			Success:   false,
			Error:     appErr.PublicMessage(),
			RequestID: getRequestID(c),
		})
	}
}

func logError(c *gin.Context, appErr *apperrors.AppError) {
	event := logger.Info()
	if appErr.IsInternal() {
		event = logger.Error()
	}

	event = event.
		Str("request_id", getRequestID(c)).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("error_code", string(appErr.Code)).
		Str("error_message", appErr.Message)
	if len(appErr.Details) > 0 {
		event = event.Interface("details", appErr.Details)
	}
	if appErr.Cause != nil {
		event = event.Err(appErr.Cause)
	}
	event.Msg("Request failed")
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}
