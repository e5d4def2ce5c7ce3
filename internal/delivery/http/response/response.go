// Package response renders the JSON envelope shared by every endpoint:
//
//	{"success": true, "code": 200, "message": "...", "data": {...}}
//	{"success": false, "code": 404, "message": "...", "error": {"code": "LISTING_NOT_FOUND"}}
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code. Details are dropped for 5xx.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Page is the data of a paginated listing response.
type Page struct {
	Items  any   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// Success writes data under the given status. An empty message becomes the status text.
func Success(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: messageOr(message, status),
		Data:    data,
	})
}

// Error writes a failure envelope.
func Error(c echo.Context, status int, errorCode, message, details string) error {
	if status >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(status, Response{
		Code:    status,
		Message: messageOr(message, status),
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

const internalErrorMessage = "Internal server error, please try again later"

// InternalError hides whatever went wrong behind a fixed message.
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", internalErrorMessage, "")
}

func messageOr(message string, status int) string {
	if message != "" {
		return message
	}

	return http.StatusText(status)
}
