// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"errors"
	"fmt"
)

type options struct {
	rollover bool
}

// Option changes how Generate assembles the barcode.
type Option func(*options)

// WithFactorRollover enables the second due date factor cycle which started
// on 2025-02-22.
func WithFactorRollover(enabled bool) Option {
	return func(o *options) {
		o.rollover = enabled
	}
}

// Generate validates doc with s and computes every code printed on the slip.
//
// The codes are cached on doc after the first successful call and returned
// unchanged by later calls. A failed call leaves doc untouched.
func Generate(doc *Document, s Strategy, opts ...Option) (*Codes, error) {
	if doc == nil {
		return nil, errors.New("nil Document")
	}
	if s == nil {
		return nil, fmt.Errorf("%w: nil Strategy", ErrUnsupportedBank)
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	if doc.codes != nil {
		codes := *doc.codes
		return &codes, nil
	}

	var o options
	for i := range opts {
		opts[i](&o)
	}

	codes, err := generate(doc, s, o)
	if err != nil {
		return nil, err
	}
	doc.codes = codes

	out := *codes
	return &out, nil
}

func generate(doc *Document, s Strategy, o options) (*Codes, error) {
	if doc.BankCode != "" && doc.BankCode != s.BankCode() {
		return nil, fmt.Errorf("%w: document for bank %q given to bank %s", ErrUnsupportedBank, doc.BankCode, s.BankCode())
	}
	if err := s.Validate(doc); err != nil {
		return nil, err
	}
	if err := doc.Amount.Validate(); err != nil {
		return nil, fmt.Errorf("amount: %w: %v", ErrInvalidNumericInput, err)
	}

	ownNumber, err := s.OwnNumber(doc)
	if err != nil {
		return nil, fmt.Errorf("own number: %w", err)
	}
	dv, err := s.OwnNumberCheckDigit(ownNumber)
	if err != nil {
		return nil, fmt.Errorf("own number check digit: %w", err)
	}
	ourNumber, err := s.OurNumber(doc)
	if err != nil {
		return nil, fmt.Errorf("our number: %w", err)
	}

	freeField, err := s.FreeField(doc)
	if err != nil {
		return nil, fmt.Errorf("free field: %w", err)
	}
	if len(freeField) != FreeFieldWidth || !isDigits(freeField) {
		return nil, fmt.Errorf("%w: bank %s produced %q", ErrFreeFieldWidth, s.BankCode(), freeField)
	}

	barcode, err := AssembleBarcode(BarcodeInput{
		BankCode:     s.BankCode(),
		CurrencyCode: doc.CurrencyCode(),
		DueDate:      doc.DueDate,
		Cents:        doc.Amount.Cents(),
		FreeField:    freeField,
		Rollover:     o.rollover,
	})
	if err != nil {
		return nil, err
	}
	line, err := FormatDigitableLine(barcode)
	if err != nil {
		return nil, err
	}

	return &Codes{
		OurNumber:           ourNumber,
		OurNumberCheckDigit: dv,
		FreeField:           freeField,
		Barcode:             barcode,
		DigitableLine:       line,
	}, nil
}
