// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	BarcodeWidth   = 44
	FreeFieldWidth = 25

	bankCodeWidth = 3
	factorWidth   = 4
	amountWidth   = 10

	// CurrencyReal is the barcode currency code for BRL. Every other
	// currency uses CurrencyOther.
	CurrencyReal  = "9"
	CurrencyOther = "0"
)

// BarcodeInput holds everything AssembleBarcode needs.
type BarcodeInput struct {
	BankCode     string
	CurrencyCode string
	DueDate      time.Time
	Cents        int64
	FreeField    string

	// Rollover enables the second due date factor cycle, see DueDateFactor.
	Rollover bool
}

// AssembleBarcode composes the 44 digit barcode:
// bank(3) + currency(1) + check digit(1) + due date factor(4) + amount(10) + free field(25)
func AssembleBarcode(in BarcodeInput) (string, error) {
	bank, err := PadNumeric(in.BankCode, bankCodeWidth)
	if err != nil {
		return "", fmt.Errorf("bank code: %w", err)
	}
	if len(in.CurrencyCode) != 1 || !isDigits(in.CurrencyCode) {
		return "", fmt.Errorf("currency code: %w: %q", ErrInvalidNumericInput, in.CurrencyCode)
	}
	if len(in.FreeField) != FreeFieldWidth || !isDigits(in.FreeField) {
		return "", fmt.Errorf("%w: %q is not %d digits", ErrFreeFieldWidth, in.FreeField, FreeFieldWidth)
	}

	factor, err := DueDateFactor(in.DueDate, in.Rollover)
	if err != nil {
		return "", err
	}
	if in.Cents < 0 {
		return "", fmt.Errorf("%w: negative amount %d", ErrAmountOutOfRange, in.Cents)
	}
	amount, err := PadInt(in.Cents, amountWidth)
	if err != nil {
		return "", fmt.Errorf("%w: %d cents exceeds %d digits", ErrAmountOutOfRange, in.Cents, amountWidth)
	}
	f, _ := PadInt(int64(factor), factorWidth)

	head := bank + in.CurrencyCode
	tail := f + amount + in.FreeField

	dv, err := BarcodeCheckDigit(head + tail)
	if err != nil {
		return "", err
	}
	return head + dv + tail, nil
}

// Barcode is a decoded 44 digit barcode.
type Barcode struct {
	BankCode      string `json:"bankCode"`
	CurrencyCode  string `json:"currencyCode"`
	CheckDigit    string `json:"checkDigit"`
	DueDateFactor int    `json:"dueDateFactor"`
	Cents         int64  `json:"cents"`
	FreeField     string `json:"freeField"`
}

// ParseBarcode decodes a barcode and verifies its check digit.
func ParseBarcode(code string) (*Barcode, error) {
	code = strings.TrimSpace(code)
	if len(code) != BarcodeWidth || !isDigits(code) {
		return nil, fmt.Errorf("%w: expected %d digits, got %q", ErrInvalidBarcode, BarcodeWidth, code)
	}
	dv, err := BarcodeCheckDigit(code[:4] + code[5:])
	if err != nil {
		return nil, err
	}
	if dv != code[4:5] {
		return nil, fmt.Errorf("%w: check digit %s, expected %s", ErrInvalidBarcode, code[4:5], dv)
	}

	factor, _ := strconv.Atoi(code[5:9])
	cents, _ := strconv.ParseInt(code[9:19], 10, 64)
	return &Barcode{
		BankCode:      code[0:3],
		CurrencyCode:  code[3:4],
		CheckDigit:    dv,
		DueDateFactor: factor,
		Cents:         cents,
		FreeField:     code[19:],
	}, nil
}

// String returns the 44 digit barcode.
func (b *Barcode) String() string {
	if b == nil {
		return ""
	}
	factor, _ := PadInt(int64(b.DueDateFactor), factorWidth)
	amount, _ := PadInt(b.Cents, amountWidth)
	return b.BankCode + b.CurrencyCode + b.CheckDigit + factor + amount + b.FreeField
}
