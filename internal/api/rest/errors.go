package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// successResponse wraps every successful response body
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorResponse is the body of every failed response
type errorResponse struct {
	Success          bool                   `json:"success"`
	Error            string                 `json:"error"`
	Code             apierrors.ErrorCode    `json:"code"`
	Details          string                 `json:"details,omitempty"`
	ValidationErrors []apierrors.FieldError `json:"validationErrors,omitempty"`
}

// statusByCode maps API error codes to HTTP statuses
var statusByCode = map[apierrors.ErrorCode]int{
	apierrors.ErrCodeBadRequest:       http.StatusBadRequest,
	apierrors.ErrCodeValidationFailed: http.StatusBadRequest,
	apierrors.ErrCodeNotFound:         http.StatusNotFound,
	apierrors.ErrCodeConflict:         http.StatusConflict,
	apierrors.ErrCodeTooManyRequests:  http.StatusTooManyRequests,
	apierrors.ErrCodeInternalError:    http.StatusInternalServerError,
	apierrors.ErrCodeDatabaseError:    http.StatusInternalServerError,
}

// StatusCode returns the HTTP status for an API error code
func StatusCode(code apierrors.ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondOK responds with a 200 envelope
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, successResponse{Success: true, Data: data})
}

// respondCreated responds with a 201 envelope
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, successResponse{Success: true, Data: data})
}

// RespondAPIError responds with the status and envelope of an API error
func RespondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	status := StatusCode(apiErr.Code)
	// Details of server errors stay in the logs
	details := apiErr.Details
	if status >= http.StatusInternalServerError {
		details = ""
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Success:          false,
		Error:            apiErr.Message,
		Code:             apiErr.Code,
		Details:          details,
		ValidationErrors: apiErr.ValidationErrors,
	})
}

// respondError responds with err, which is expected to be an *apierrors.APIError
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.NewInternalError(message, err.Error())
	}
	if StatusCode(apiErr.Code) >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
	}
	RespondAPIError(c, apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	RespondAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string) {
	RespondAPIError(c, apierrors.NewNotFoundError(message))
}
