package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// RequestInfo echoes back where the request came from. The client IP is
// omitted in production.
type RequestInfo struct {
	IP     string `json:"ip,omitempty"`
	Method string `json:"method"`
	URL    string `json:"url"`
}

// APIResponse is the envelope every endpoint responds with
type APIResponse struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"statusCode"`
	Request    RequestInfo         `json:"request"`
	Message    string              `json:"message"`
	Data       interface{}         `json:"data,omitempty"`
	Code       string              `json:"code,omitempty"`
	Errors     []domain.FieldError `json:"errors,omitempty"`
}

// Responder builds response envelopes. hideIP controls whether client IPs
// are echoed back (disabled in production).
type Responder struct {
	hideIP bool
}

// NewResponder creates a new Responder
func NewResponder(hideIP bool) *Responder {
	return &Responder{hideIP: hideIP}
}

func (r *Responder) requestInfo(c echo.Context) RequestInfo {
	info := RequestInfo{
		Method: c.Request().Method,
		URL:    c.Request().URL.RequestURI(),
	}
	if !r.hideIP {
		info.IP = c.RealIP()
	}
	return info
}

// OK sends a success envelope with the given status, message and payload
func (r *Responder) OK(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, APIResponse{
		Success:    true,
		StatusCode: status,
		Request:    r.requestInfo(c),
		Message:    message,
		Data:       data,
	})
}

// ErrorHandler returns a centralized echo HTTPErrorHandler that maps typed
// domain errors to status codes and renders the error envelope. Untyped
// errors become a generic 500 so internals never leak to callers.
func (r *Responder) ErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"
		code := "INTERNAL_ERROR"
		var fields []domain.FieldError

		switch e := err.(type) {
		case *domain.Error:
			status = statusForKind(e.Kind)
			code = e.Code
			fields = e.Fields
			if e.Kind == domain.KindDatabase || e.Kind == domain.KindInternal {
				// Cause stays in the logs
				log.Error().Err(e).Str("path", c.Request().URL.Path).Msg("Request failed")
				message = "Internal server error"
				if e.Kind == domain.KindDatabase {
					code = "DATABASE_ERROR"
				}
			} else {
				message = e.Message
			}
		case *echo.HTTPError:
			status = e.Code
			if m, ok := e.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
			code = "HTTP_ERROR"
		default:
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("Unhandled error")
		}

		resp := APIResponse{
			Success:    false,
			StatusCode: status,
			Request:    r.requestInfo(c),
			Message:    message,
			Code:       code,
			Errors:     fields,
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(status); err != nil {
				log.Error().Err(err).Msg("Failed to write error response")
			}
			return
		}
		if err := c.JSON(status, resp); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
	}
}

func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindBadRequest, domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
