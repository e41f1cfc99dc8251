// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/model"
	"github.com/moov-io/boleto/x/route"

	"github.com/gorilla/mux"
	"github.com/moov-io/base/log"
)

type Router struct {
	CreateBoleto http.HandlerFunc
	ValidateCode http.HandlerFunc
	ListBanks    http.HandlerFunc
}

func NewRouter(logger log.Logger, svc *Service) *Router {
	return &Router{
		CreateBoleto: createBoleto(logger, svc),
		ValidateCode: validateCode(logger, svc),
		ListBanks:    listBanks(logger, svc),
	}
}

func (router *Router) RegisterRoutes(r *mux.Router) {
	r.Methods("POST").Path("/boletos").HandlerFunc(router.CreateBoleto)
	r.Methods("POST").Path(fmt.Sprintf("/banks/{%s}/boletos", route.BankCodeVar)).HandlerFunc(router.CreateBoleto)
	r.Methods("POST").Path("/barcodes/validate").HandlerFunc(router.ValidateCode)
	r.Methods("GET").Path("/banks").HandlerFunc(router.ListBanks)
}

func createBoleto(logger log.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)
		if responder.Replayed() {
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if errors.Is(err, model.ErrAmountOverflow) {
				err = fmt.Errorf("%w: %v", boleto.ErrAmountOutOfRange, err)
			}
			responder.Problem(fmt.Errorf("problem reading request: %w", err))
			return
		}
		if code := route.ReadBankCode(r); code != "" {
			if req.BankCode != "" && req.BankCode != code {
				responder.Problem(fmt.Errorf("%w: bankCode %q does not match path %q", boleto.ErrUnsupportedBank, req.BankCode, code))
				return
			}
			req.BankCode = code
		}

		out, err := svc.Create(r.Context(), req)
		if err != nil {
			responder.Logger().Logf("rejected boleto: %v", err)
			if errors.Is(err, boleto.ErrUnsupportedBank) {
				responder.NotFound(err)
			} else {
				responder.Problem(err)
			}
			return
		}
		responder.JSON(http.StatusOK, out)
	}
}

func validateCode(logger log.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)
		if responder.Replayed() {
			return
		}

		var req ValidateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			responder.Problem(fmt.Errorf("problem reading request: %v", err))
			return
		}
		out, err := svc.Validate(req)
		if err != nil {
			responder.Problem(err)
			return
		}
		responder.JSON(http.StatusOK, out)
	}
}

type banksResponse struct {
	BankCodes []string `json:"bankCodes"`
}

func listBanks(logger log.Logger, svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := route.NewResponder(logger, w, r)
		if responder.Replayed() {
			return
		}
		responder.JSON(http.StatusOK, banksResponse{BankCodes: svc.Banks()})
	}
}
