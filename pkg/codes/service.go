// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/model"
	"github.com/moov-io/boleto/x/mask"

	"github.com/moov-io/base/log"
)

var (
	// ErrEmptyValidateRequest is returned when neither a barcode nor a digitable line was given.
	ErrEmptyValidateRequest = errors.New("missing barcode or digitableLine")

	// ErrAmbiguousValidateRequest is returned when both a barcode and a digitable line were given.
	ErrAmbiguousValidateRequest = errors.New("only one of barcode or digitableLine can be given")
)

// Service generates and verifies boleto codes for the banks in its registry.
type Service struct {
	logger    log.Logger
	registry  *boleto.Registry
	publisher Publisher
	rollover  bool
}

// NewService returns a Service. publisher may be nil to disable events.
func NewService(logger log.Logger, registry *boleto.Registry, publisher Publisher, rollover bool) *Service {
	return &Service{
		logger:    logger,
		registry:  registry,
		publisher: publisher,
		rollover:  rollover,
	}
}

// Banks returns the enabled bank codes in ascending order.
func (svc *Service) Banks() []string {
	return svc.registry.BankCodes()
}

// Create computes the codes for req and publishes them when a Publisher is set.
// Publishing failures are logged and do not fail the call.
func (svc *Service) Create(ctx context.Context, req CreateRequest) (*Boleto, error) {
	if req.BankCode == "" {
		err := &boleto.MissingFieldsError{Fields: []string{"bankCode"}}
		boletoFailures.With("bank", "unknown", "reason", reason(err)).Add(1)
		return nil, err
	}
	strategy, err := svc.registry.Lookup(req.BankCode)
	if err != nil {
		boletoFailures.With("bank", "unknown", "reason", reason(err)).Add(1)
		return nil, err
	}
	bank := strategy.BankCode()

	var codes *boleto.Codes
	doc, err := req.Document()
	if err == nil {
		codes, err = boleto.Generate(doc, strategy, boleto.WithFactorRollover(svc.rollover))
	}
	if err != nil {
		boletoFailures.With("bank", bank, "reason", reason(err)).Add(1)
		return nil, err
	}
	boletosGenerated.With("bank", bank).Add(1)

	out := &Boleto{
		BankCode:       bank,
		DocumentNumber: req.DocumentNumber,
		DueDate:        doc.DueDate.Format(DateFormat),
		Amount:         doc.Amount,
		Codes:          *codes,
	}

	logger := svc.logger.With(log.Fields{
		"bank":     log.String(bank),
		"account":  log.String(mask.Account(req.Account)),
		"document": log.String(req.DocumentNumber),
	})
	logger.Logf("generated boleto %s", codes.OurNumber)

	if svc.publisher != nil {
		if err := svc.publisher.Publish(ctx, out); err != nil {
			logger.LogErrorf("problem publishing boleto %s: %v", codes.OurNumber, err)
		}
	}
	return out, nil
}

// Validate verifies every check digit of a barcode or digitable line and decodes its fields.
func (svc *Service) Validate(req ValidateRequest) (*Decoded, error) {
	barcode, line := strings.TrimSpace(req.Barcode), strings.TrimSpace(req.DigitableLine)

	var parsed *boleto.Barcode
	var err error
	switch {
	case barcode == "" && line == "":
		return nil, ErrEmptyValidateRequest
	case barcode != "" && line != "":
		return nil, ErrAmbiguousValidateRequest
	case barcode != "":
		parsed, err = boleto.ParseBarcode(barcode)
	default:
		parsed, err = boleto.ParseDigitableLine(line)
	}
	if err != nil {
		barcodesValidated.With("valid", "false").Add(1)
		return nil, err
	}
	barcodesValidated.With("valid", "true").Add(1)
	return svc.decode(parsed)
}

func (svc *Service) decode(b *boleto.Barcode) (*Decoded, error) {
	code := b.String()
	line, err := boleto.FormatDigitableLine(code)
	if err != nil {
		return nil, err
	}
	out := &Decoded{
		Barcode:       code,
		DigitableLine: line,
		BankCode:      b.BankCode,
		CurrencyCode:  b.CurrencyCode,
		CheckDigit:    b.CheckDigit,
		DueDateFactor: b.DueDateFactor,
		Cents:         b.Cents,
		FreeField:     b.FreeField,
	}
	if due := boleto.DueDateFromFactor(b.DueDateFactor, svc.rollover); !due.IsZero() {
		out.DueDate = due.Format(DateFormat)
	}
	if b.CurrencyCode == boleto.CurrencyReal {
		amt, err := model.NewAmountFromCents(model.DefaultSymbol, b.Cents)
		if err != nil {
			return nil, fmt.Errorf("amount: %v", err)
		}
		out.Amount = amt
	}
	return out, nil
}
