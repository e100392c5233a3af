package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/km-arc/jerkface/framework/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ── Response ─────────────────────────────────────────────────────────────────

// Response wraps http.ResponseWriter with JSON and text helpers.
type Response struct {
	w http.ResponseWriter
}

// NewResponse wraps a ResponseWriter.
func NewResponse(w http.ResponseWriter) *Response {
	return &Response{w: w}
}

// Raw returns the underlying ResponseWriter.
func (res *Response) Raw() http.ResponseWriter { return res.w }

// ── JSON responses ────────────────────────────────────────────────────────────

// JSON sends a JSON response.
//
//	res.JSON(http.StatusOK, map[string]any{"message": "ok"})
func (res *Response) JSON(status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(res.w, "response encoding failed", http.StatusInternalServerError)
		return
	}
	res.w.Header().Set("Content-Type", "application/json")
	res.w.WriteHeader(status)
	_, _ = res.w.Write(append(body, '\n'))
}

// Success sends 200 JSON: {"data": v}
func (res *Response) Success(v any) {
	res.JSON(http.StatusOK, envelope{"data": v})
}

// Error sends a JSON error response.
//
//	res.Error(http.StatusNotFound, "Resource not found")
func (res *Response) Error(status int, message string) {
	res.JSON(status, envelope{"message": message})
}

// NotFound sends 404.
func (res *Response) NotFound(message ...string) {
	res.Error(http.StatusNotFound, first(message, "Not found."))
}

// ServerError sends 500.
func (res *Response) ServerError(message ...string) {
	res.Error(http.StatusInternalServerError, first(message, "Server Error."))
}

// ValidationError sends 422 with the error bag.
//
//	res.ValidationError(validator.Errors())
func (res *Response) ValidationError(errors *validation.Errors) {
	res.JSON(http.StatusUnprocessableEntity, errors)
}

// ── Plain responses ──────────────────────────────────────────────────────────

// Text sends body with the given content type.
func (res *Response) Text(status int, contentType, body string) {
	res.w.Header().Set("Content-Type", contentType)
	res.w.WriteHeader(status)
	_, _ = res.w.Write([]byte(body))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type envelope map[string]any

func first(ss []string, fallback string) string {
	if len(ss) > 0 && ss[0] != "" {
		return ss[0]
	}
	return fallback
}
