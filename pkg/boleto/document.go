// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"sync"
	"time"

	"github.com/moov-io/boleto/pkg/model"
)

// Document holds the caller supplied fields of one payment slip.
//
// The derived codes are computed by Generate once and cached on the
// Document. A Document must not be copied after it is passed to Generate.
type Document struct {
	BankCode          string
	Agency            string
	Account           string
	AccountCheckDigit string

	// Wallet is the bank's "carteira" and WalletVariation its modifier.
	Wallet          string
	WalletVariation string

	DocumentNumber string

	// Covenant is the bank agreement number ("convênio"). Its digit count
	// selects the free field layout for banks which use one.
	Covenant string

	DueDate time.Time
	Amount  model.Amount

	mu    sync.Mutex
	codes *Codes
}

// Codes are the derived outputs of a Document.
type Codes struct {
	OurNumber           string `json:"ourNumber"`
	OurNumberCheckDigit string `json:"ourNumberCheckDigit"`
	FreeField           string `json:"freeField"`
	Barcode             string `json:"barcode"`
	DigitableLine       string `json:"digitableLine"`
}

// Value returns the raw value of a caller supplied field.
func (doc *Document) Value(f Field) string {
	if doc == nil {
		return ""
	}
	switch f {
	case FieldAgency:
		return doc.Agency
	case FieldAccount:
		return doc.Account
	case FieldAccountCheckDigit:
		return doc.AccountCheckDigit
	case FieldWallet:
		return doc.Wallet
	case FieldWalletVariation:
		return doc.WalletVariation
	case FieldDocumentNumber:
		return doc.DocumentNumber
	case FieldCovenant:
		return doc.Covenant
	}
	return ""
}

// Codes returns the cached codes once Generate has succeeded.
func (doc *Document) Codes() (Codes, bool) {
	doc.mu.Lock()
	defer doc.mu.Unlock()

	if doc.codes == nil {
		return Codes{}, false
	}
	return *doc.codes, true
}

// CurrencyCode returns the barcode currency code for the Document's amount.
func (doc *Document) CurrencyCode() string {
	if doc.Amount.IsReal() {
		return CurrencyReal
	}
	return CurrencyOther
}
