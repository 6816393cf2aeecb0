package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/shared/errors"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse represents a paginated list response
type ListResponse struct {
	Items      interface{} `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// OKResponse sends a 200 response with data
func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	response := APIResponse{
		Success: true,
		Data:    data,
	}

	if len(message) > 0 {
		response.Message = message[0]
	} else {
		response.Message = "Resource created successfully"
	}

	c.JSON(http.StatusCreated, response)
}

// ErrorResponse sends an error response with custom status code
func ErrorResponse(c *gin.Context, statusCode int, message string, details ...string) {
	info := &ErrorInfo{
		Type:    string(errorTypeForStatus(statusCode)),
		Message: message,
	}
	if len(details) > 0 {
		info.Details = details[0]
	}

	c.JSON(statusCode, APIResponse{
		Success: false,
		Error:   info,
	})
}

// AppErrorResponse sends a response built from an AppError
func AppErrorResponse(c *gin.Context, err *errors.AppError) {
	c.JSON(err.Code, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Type:    string(err.Type),
			Message: err.Message,
			Details: err.Details,
		},
	})
}

// HandleError maps an arbitrary error to an HTTP response
func HandleError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		AppErrorResponse(c, appErr)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
}

func errorTypeForStatus(statusCode int) errors.ErrorType {
	switch statusCode {
	case http.StatusBadRequest:
		return errors.ErrorTypeBadRequest
	case http.StatusUnauthorized:
		return errors.ErrorTypeUnauthorized
	case http.StatusForbidden:
		return errors.ErrorTypeForbidden
	case http.StatusNotFound:
		return errors.ErrorTypeNotFound
	case http.StatusConflict:
		return errors.ErrorTypeConflict
	default:
		return errors.ErrorTypeInternal
	}
}
