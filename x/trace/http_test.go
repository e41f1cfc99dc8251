// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package trace

import (
	"net/http"
	"testing"

	"github.com/moov-io/boleto/pkg/config"

	"github.com/moov-io/base/log"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/require"
	"github.com/uber/jaeger-client-go"
)

func TestFromRequest(t *testing.T) {
	_, closer, err := New(log.NewNopLogger(), config.Tracing{Enabled: true, ServiceName: "http-test", SampleRate: 1.0})
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	req, _ := http.NewRequest("POST", "/boletos", nil)

	// no incoming trace header, so a new trace is started
	span := FromRequest("post-boletos", req)
	require.NotNil(t, span)
	defer span.Finish()

	require.Empty(t, req.Header.Get(jaeger.TraceContextHeaderName))
}

func TestFromRequest__Propagated(t *testing.T) {
	tracer, closer, err := New(log.NewNopLogger(), config.Tracing{Enabled: true, ServiceName: "http-test", SampleRate: 1.0})
	require.NoError(t, err)
	t.Cleanup(func() { closer.Close() })

	parent := tracer.StartSpan("client")
	defer parent.Finish()

	req, _ := http.NewRequest("POST", "/boletos", nil)
	err = tracer.Inject(parent.Context(), opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
	require.NoError(t, err)
	require.NotEmpty(t, req.Header.Get(jaeger.TraceContextHeaderName))

	span := FromRequest("post-boletos", req)
	defer span.Finish()

	parentCtx, ok := parent.Context().(jaeger.SpanContext)
	require.True(t, ok)
	childCtx, ok := span.Context().(jaeger.SpanContext)
	require.True(t, ok)
	require.Equal(t, parentCtx.TraceID(), childCtx.TraceID())
}
