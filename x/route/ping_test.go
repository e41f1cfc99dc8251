// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/moov-io/base/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPingRoute(t *testing.T) {
	router := mux.NewRouter()
	PingRoute(log.NewNopLogger(), router)

	req := httptest.NewRequest("GET", "/ping", nil)
	require.Equal(t, "get-ping", Name(req))

	before := routeObservations(t, "get-ping")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	w.Flush()

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	require.Equal(t, "PONG", w.Body.String())

	require.Equal(t, before+1, routeObservations(t, "get-ping"))
}

// routeObservations returns how many responses Histogram timed for a route.
func routeObservations(t *testing.T, name string) uint64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != "http_response_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "route" && label.GetValue() == name {
					return m.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	return 0
}
