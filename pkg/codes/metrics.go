// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"errors"

	"github.com/moov-io/boleto/pkg/boleto"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	boletosGenerated = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "boletos_generated",
		Help: "Counter of boletos whose codes were generated",
	}, []string{"bank"})

	boletoFailures = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "boleto_generation_errors",
		Help: "Counter of boletos rejected during code generation",
	}, []string{"bank", "reason"})

	barcodesValidated = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "barcodes_validated",
		Help: "Counter of barcodes and digitable lines checked",
	}, []string{"valid"})
)

var failureReasons = []struct {
	err    error
	reason string
}{
	{boleto.ErrMissingRequiredField, "missing_field"},
	{boleto.ErrInvalidNumericInput, "invalid_numeric"},
	{boleto.ErrNumericOverflow, "numeric_overflow"},
	{boleto.ErrInvalidIdentifierLength, "identifier_length"},
	{boleto.ErrUnsupportedFieldCombination, "field_combination"},
	{boleto.ErrDueDateOutOfRange, "due_date"},
	{boleto.ErrAmountOutOfRange, "amount"},
	{boleto.ErrUnsupportedBank, "bank"},
	{boleto.ErrUnsupportedWallet, "wallet"},
	{boleto.ErrFreeFieldWidth, "free_field"},
}

// reason maps err onto a bounded label value.
func reason(err error) string {
	for _, r := range failureReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}
