package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/services"
)

// HTTPError is the API error surface. Every handler failure renders as
// {"error": {"code", "message", "details?"}} with the carried status.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details map[string]interface{}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

type errorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		e := newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", validErr.Message)
		e.Details = map[string]interface{}{"field": validErr.Field}
		return e
	}
	if errors.Is(err, services.ErrAlreadyResolved) {
		return newHTTPError(http.StatusBadRequest, "ALREADY_RESOLVED", "DLQ entry is already resolved")
	}
	if errors.Is(err, services.ErrNotFound) {
		return newHTTPError(http.StatusNotFound, "NOT_FOUND", "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return newHTTPError(http.StatusConflict, "CONFLICT", "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return newHTTPError(http.StatusInternalServerError, "INTERNAL", "internal server error")
}

// wrap renders handler errors into the error envelope. Handlers return
// *HTTPError directly or any service error, which is mapped here.
func wrap(h echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		err := h(c)
		if err == nil {
			return nil
		}
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			httpErr = mapServiceError(err)
		}
		if httpErr.Status == http.StatusUnauthorized {
			c.Response().Header().Set("WWW-Authenticate", "Bearer")
		}
		return c.JSON(httpErr.Status, errorEnvelope{Error: errorBody{
			Code:    httpErr.Code,
			Message: httpErr.Message,
			Details: httpErr.Details,
		}})
	}
}
