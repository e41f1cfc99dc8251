// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	moovhttp "github.com/moov-io/base/http"
	"github.com/moov-io/base/idempotent"
	"github.com/moov-io/base/idempotent/lru"
	"github.com/moov-io/base/log"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	IdempotentRecorder = lru.New()

	// Prometheus Metrics
	Histogram = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Name: "http_response_duration_seconds",
		Help: "Histogram representing the http response durations",
	}, []string{"route"})
)

// Responder wraps a single HTTP exchange with a trace span, request
// scoped logging, idempotency checks and response timing.
type Responder struct {
	XRequestID string

	logger log.Logger

	name    string
	request *http.Request
	span    opentracing.Span
	started time.Time

	writer   http.ResponseWriter
	replayed bool
	finished bool
}

func NewResponder(logger log.Logger, w http.ResponseWriter, r *http.Request) *Responder {
	resp := &Responder{
		XRequestID: moovhttp.GetRequestID(r),
		name:       Name(r),
		request:    r,
		started:    time.Now(),
		writer:     w,
	}
	resp.logger = logger.With(log.Fields{
		"route":     log.String(resp.name),
		"requestID": log.String(resp.XRequestID),
	})
	resp.span = resp.Span()

	if _, seen := idempotent.FromRequest(r, IdempotentRecorder); seen {
		resp.replayed = true
		resp.finish()
		idempotent.SeenBefore(w)
	}
	return resp
}

// Replayed reports if the request carried an idempotency key that was
// already processed. A response has been written when Replayed is true.
func (r *Responder) Replayed() bool {
	return r != nil && r.replayed
}

// Logger returns a logger carrying the route and request ID.
func (r *Responder) Logger() log.Logger {
	return r.logger
}

func (r *Responder) Respond(fn func(http.ResponseWriter)) {
	if r == nil || r.replayed {
		return
	}
	r.finish()
	r.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	fn(r.writer)
}

// JSON writes v with the given status code.
func (r *Responder) JSON(status int, v interface{}) {
	r.Respond(func(w http.ResponseWriter) {
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(v); err != nil {
			r.logger.LogErrorf("problem encoding response: %v", err)
		}
	})
}

// Problem responds with a 400 Bad Request describing err.
func (r *Responder) Problem(err error) {
	if r == nil || r.replayed {
		return
	}
	ext.Error.Set(r.span, true)
	r.span.LogKV("error", err.Error())
	r.finish()
	r.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	moovhttp.Problem(r.writer, err)
}

// NotFound responds with a 404 describing err.
func (r *Responder) NotFound(err error) {
	if r == nil || r.replayed {
		return
	}
	r.finish()
	r.writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	r.writer.WriteHeader(http.StatusNotFound)
	json.NewEncoder(r.writer).Encode(map[string]string{
		"error": err.Error(),
	})
}

func (r *Responder) finish() {
	if r.finished {
		return
	}
	r.finished = true
	r.span.Finish()
	Histogram.With("route", r.name).Observe(time.Since(r.started).Seconds())
}

// Name returns the metric and span name for a request, such as "post-boletos".
func Name(r *http.Request) string {
	return fmt.Sprintf("%s-%s", strings.ToLower(r.Method), CleanPath(r.URL.Path))
}

var bankCodeRegex = regexp.MustCompile(`^[0-9]{3}$`)

// CleanPath takes a URL path and formats it for Prometheus metrics
//
// This method replaces /'s with -'s and strips out three digit bank codes
// from URL path slugs so every bank shares one series.
func CleanPath(path string) string {
	parts := strings.Split(path, "/")
	var out []string
	for i := range parts {
		if parts[i] == "" || bankCodeRegex.MatchString(parts[i]) {
			continue
		}
		out = append(out, parts[i])
	}
	return strings.Join(out, "-")
}
