package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/km-arc/jerkface/framework/validation"
)

// Request wraps *http.Request with input helpers.
type Request struct {
	raw *http.Request
}

// NewRequest wraps a standard *http.Request.
func NewRequest(r *http.Request) *Request {
	return &Request{raw: r}
}

// Raw returns the underlying *http.Request.
func (req *Request) Raw() *http.Request { return req.raw }

// Query returns a query-string value.
func (req *Request) Query(key string, fallback ...string) string {
	v := req.raw.URL.Query().Get(key)
	if v == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return v
}

// Queries returns the first value of every query parameter.
func (req *Request) Queries() map[string]string {
	out := make(map[string]string)
	for k, v := range req.raw.URL.Query() {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}

// Validate runs rules against the query string.
//
//	v := req.Validate(validation.Rules{"format": "nullable|in:text,dot"})
//	if v.Fails() { res.ValidationError(v.Errors()); return }
func (req *Request) Validate(rules validation.Rules) *validation.Validator {
	return validation.Make(req.Queries(), rules)
}

// RouteParam returns a URL route parameter (chi).
func (req *Request) RouteParam(key string) string {
	return chi.URLParam(req.raw, key)
}

// Header returns a request header value.
func (req *Request) Header(key string) string {
	return req.raw.Header.Get(key)
}

// Method returns the HTTP method.
func (req *Request) Method() string { return req.raw.Method }

// Path returns the URL path.
func (req *Request) Path() string { return req.raw.URL.Path }

// WantsJSON returns true when the Accept header asks for JSON.
func (req *Request) WantsJSON() bool {
	return strings.Contains(req.raw.Header.Get("Accept"), "application/json")
}
