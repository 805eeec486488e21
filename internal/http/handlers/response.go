// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints. Two
// shapes exist:
//
//   - The JSON ErrorResponse envelope, used for adapter-level failures such
//     as unknown routes, wrong methods and failed health checks.
//   - Plain-text bodies, used for every failure produced by the handler core
//     (services.HandlerError) and for malformed request bodies.
//
// Example handler-core failure:
//
//	HTTP/1.1 400 Bad Request
//	Content-Type: text/plain; charset=utf-8
//
//	invalid UUID length: 10
//
// Example envelope:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "route not found"
//	}
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-qa-backend/internal/http/middleware"
	"github.com/tbourn/go-qa-backend/internal/services"
)

const contentTypeText = "text/plain; charset=utf-8"

// ErrorResponse is the JSON error envelope for adapter-level failures.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"route not found"`
}

// fail aborts the request with a JSON envelope and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), used by the router for 404/405.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// emptyOK writes 200 with no body.
func emptyOK(c *gin.Context) {
	c.Status(http.StatusOK)
}

// text aborts the request with a plain-text body.
func text(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}
	c.Abort()
	c.Data(status, contentTypeText, []byte(msg))
}

// statusFor maps a handler-core error kind to its HTTP status.
func statusFor(k services.ErrorKind) int {
	if k == services.BadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// writeHandlerError writes err as plain text: BadRequest is 400 and anything
// else is 500. The body is the error's message.
func writeHandlerError(c *gin.Context, err error) {
	he := services.AsHandlerError(err)
	text(c, statusFor(he.Kind), he.Message)
}
