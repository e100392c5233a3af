// Package inspect serves a read-only HTTP view of a container.
//
//	GET /bindings            every binding, sorted by name
//	GET /bindings/{name}     one binding
//	GET /extensions          the extension store, registration order
//	GET /graph?format=text   text (default), dot or json
//	GET /metrics             Prometheus metrics, when a collector is given
package inspect

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/jerkface/framework/container"
	gohttp "github.com/km-arc/jerkface/framework/http"
	"github.com/km-arc/jerkface/framework/metrics"
	"github.com/km-arc/jerkface/framework/routing"
	"github.com/km-arc/jerkface/framework/validation"
)

var graphRules = validation.Rules{"format": "nullable|in:text,dot,json"}

type options struct {
	logger  *zap.Logger
	metrics *metrics.Collector
}

// Option configures the inspection router.
type Option func(*options)

// WithLogger enables request logging.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics mounts the collector's handler on /metrics.
func WithMetrics(m *metrics.Collector) Option {
	return func(o *options) { o.metrics = m }
}

type handler struct {
	c *container.Container
}

// New returns the inspection router for c.
func New(c *container.Container, opts ...Option) *routing.Router {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	h := &handler{c: c}
	r := routing.New(o.logger)

	r.Get("/bindings", h.bindings)
	r.Get("/bindings/{name}", h.binding)
	r.Get("/extensions", h.extensions)
	r.Get("/graph", h.graph)

	if o.metrics != nil {
		r.Handle("/metrics", o.metrics.Handler())
	}

	return r
}

func (h *handler) bindings(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(h.c.Graph().Bindings)
}

func (h *handler) binding(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	name := gohttp.NewRequest(r).RouteParam("name")

	info, ok := h.c.Inspect(name)
	if !ok {
		res.NotFound(fmt.Sprintf("no binding named %q", name))
		return
	}
	res.Success(info)
}

func (h *handler) extensions(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(h.c.Extensions())
}

func (h *handler) graph(w http.ResponseWriter, r *http.Request) {
	req, res := gohttp.NewRequest(r), gohttp.NewResponse(w)

	v := req.Validate(graphRules)
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	switch req.Query("format", "text") {
	case "dot":
		res.Text(http.StatusOK, "text/vnd.graphviz; charset=utf-8", h.c.SprintGraphDOT())
	case "json":
		res.Success(h.c.Graph())
	default:
		res.Text(http.StatusOK, "text/plain; charset=utf-8", h.c.SprintGraph())
	}
}
