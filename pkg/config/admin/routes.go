// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/config"

	"github.com/moov-io/base/admin"
	moovhttp "github.com/moov-io/base/http"
)

// RegisterRoutes adds the boleto handlers to an admin server:
//
//   GET /config                   the running Config, unless disabled
//   GET /due-date-factor?date=... the barcode factor printed for a due date
func RegisterRoutes(svc *admin.Server, cfg *config.Config) {
	svc.AddHandler("/due-date-factor", dueDateFactor(cfg.Barcode))

	if cfg.Admin.DisableConfigEndpoint {
		return
	}
	svc.AddHandler("/config", marshalConfig(cfg))
}

func marshalConfig(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(cfg)
	}
}

type factorResponse struct {
	Date     string `json:"date"`
	Factor   int    `json:"factor"`
	Rollover bool   `json:"rollover"`
}

func dueDateFactor(cfg config.Barcode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		value := r.URL.Query().Get("date")
		if value == "" {
			moovhttp.Problem(w, errors.New("missing date"))
			return
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			moovhttp.Problem(w, err)
			return
		}
		factor, err := boleto.DueDateFactor(date, cfg.DueDateRollover)
		if err != nil {
			moovhttp.Problem(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(factorResponse{
			Date:     date.Format("2006-01-02"),
			Factor:   factor,
			Rollover: cfg.DueDateRollover,
		})
	}
}
