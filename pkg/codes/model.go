// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"fmt"
	"strings"
	"time"

	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/model"
)

// DateFormat is how due dates are read and written over HTTP.
const DateFormat = "2006-01-02"

// CreateRequest describes a payment slip to generate codes for.
type CreateRequest struct {
	BankCode          string       `json:"bankCode"`
	Agency            string       `json:"agency"`
	Account           string       `json:"account"`
	AccountCheckDigit string       `json:"accountCheckDigit"`
	Wallet            string       `json:"wallet"`
	WalletVariation   string       `json:"walletVariation"`
	DocumentNumber    string       `json:"documentNumber"`
	Covenant          string       `json:"covenant"`
	DueDate           string       `json:"dueDate"`
	Amount            model.Amount `json:"amount"`
}

// Document converts the request into a boleto.Document.
func (req CreateRequest) Document() (*boleto.Document, error) {
	if strings.TrimSpace(req.DueDate) == "" {
		return nil, &boleto.MissingFieldsError{Fields: []string{"dueDate"}}
	}
	due, err := time.Parse(DateFormat, strings.TrimSpace(req.DueDate))
	if err != nil {
		return nil, fmt.Errorf("%w: dueDate %q is not YYYY-MM-DD", boleto.ErrInvalidNumericInput, req.DueDate)
	}
	return &boleto.Document{
		BankCode:          req.BankCode,
		Agency:            req.Agency,
		Account:           req.Account,
		AccountCheckDigit: req.AccountCheckDigit,
		Wallet:            req.Wallet,
		WalletVariation:   req.WalletVariation,
		DocumentNumber:    req.DocumentNumber,
		Covenant:          req.Covenant,
		DueDate:           due,
		Amount:            req.Amount,
	}, nil
}

// Boleto is a generated slip: the request's identifying fields plus
// every derived code.
type Boleto struct {
	BankCode       string       `json:"bankCode"`
	DocumentNumber string       `json:"documentNumber"`
	DueDate        string       `json:"dueDate"`
	Amount         model.Amount `json:"amount"`

	boleto.Codes
}

// ValidateRequest carries exactly one of a barcode or a digitable line.
type ValidateRequest struct {
	Barcode       string `json:"barcode,omitempty"`
	DigitableLine string `json:"digitableLine,omitempty"`
}

// Decoded is a verified barcode broken into its fields.
type Decoded struct {
	Barcode       string `json:"barcode"`
	DigitableLine string `json:"digitableLine"`

	BankCode      string `json:"bankCode"`
	CurrencyCode  string `json:"currencyCode"`
	CheckDigit    string `json:"checkDigit"`
	DueDateFactor int    `json:"dueDateFactor"`
	Cents         int64  `json:"cents"`
	FreeField     string `json:"freeField"`

	// DueDate is empty for factor zero, which means the slip has no due date.
	DueDate string `json:"dueDate,omitempty"`

	// Amount is only set for slips in reais.
	Amount *model.Amount `json:"amount,omitempty"`
}
