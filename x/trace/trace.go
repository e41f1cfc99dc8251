// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package trace

import (
	"io"

	"github.com/moov-io/boleto"
	"github.com/moov-io/boleto/pkg/config"

	"github.com/moov-io/base/log"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/opentracing/opentracing-go"
	jaegermetrics "github.com/uber/jaeger-lib/metrics/prometheus"

	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// VersionTag carries the running boleto version on every tracer.
const VersionTag = "boleto.version"

var (
	// wrappedPrometheusRegisterer is a singleton so we only register opentracing metrics once
	wrappedPrometheusRegisterer = jaegermetrics.New(jaegermetrics.WithRegisterer(prometheus.DefaultRegisterer))
)

// New replaces the global opentracing.Tracer with a Jaeger tracer for cfg.
//
// A SampleRate of 1.0 records every span, lower rates record about that
// share of spans.
func New(logger log.Logger, cfg config.Tracing) (opentracing.Tracer, io.Closer, error) {
	sampler := &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeProbabilistic,
		Param: cfg.SampleRate,
	}
	if cfg.SampleRate >= 1.0 {
		sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1.0,
		}
	}
	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.Service(),
		Disabled:    !cfg.Enabled,
		Sampler:     sampler,
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: cfg.LogSpans,
		},
		Tags: []opentracing.Tag{
			{Key: VersionTag, Value: boleto.Version},
		},
	}
	logger = logger.With(log.Fields{
		"service": log.String(cfg.Service()),
	})
	tracer, closer, err := jcfg.NewTracer(
		jaegercfg.Logger(&jaegerLogger{inner: logger}),
		jaegercfg.Metrics(wrappedPrometheusRegisterer),
	)
	if err != nil {
		return nil, nil, err
	}
	opentracing.SetGlobalTracer(tracer)
	return tracer, closer, nil
}

func GlobalTracer() opentracing.Tracer {
	return opentracing.GlobalTracer()
}

var _ jaeger.Logger = (*jaegerLogger)(nil)

// adapter for jaeger.Logger
type jaegerLogger struct {
	inner log.Logger
}

func (l *jaegerLogger) Error(msg string) {
	l.inner.LogErrorf("%s", msg)
}

func (l *jaegerLogger) Infof(msg string, args ...interface{}) {
	l.inner.Logf(msg, args...)
}
