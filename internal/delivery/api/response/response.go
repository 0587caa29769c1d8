// Package response writes the JSON envelope shared by every API endpoint:
// {"data": ...} on success, {"error": {...}} on failure, both with a request id in meta.
package response

import (
	"net/http"

	deliverycontext "userhub/internal/delivery/context"
	domainerrors "userhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeHTTPError     = "HTTP_ERROR"
	codeInternalError = "INTERNAL_ERROR"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "VALIDATION_FAILED"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error envelope. Details are dropped for server errors and auth failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError renders a domain error with its own status, code and message.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// HTTPError renders an echo routing or framework error such as 404 or 405.
func HTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}

	return Error(c, httpErr.Code, codeHTTPError, message, nil)
}

func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, codeInternalError, "Internal server error, please try again later", nil)
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return false
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
