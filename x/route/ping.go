// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/moov-io/base/log"
)

// PingRoute answers liveness checks with PONG. Each answer is timed under
// the "get-ping" route like any other boleto endpoint.
func PingRoute(logger log.Logger, r *mux.Router) {
	r.Methods("GET").Path("/ping").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(logger, w, r)
		responder.Respond(func(w http.ResponseWriter) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("PONG")); err != nil {
				responder.Logger().LogErrorf("ping: %v", err)
			}
		})
	})
}
