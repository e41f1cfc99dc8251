// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package bancoob implements boleto codes for Bancoob (Sicoob), bank 756.
package bancoob

import (
	"fmt"

	"github.com/moov-io/boleto/pkg/boleto"
)

const BankCode = "756"

var (
	// Wallets accepted by Bancoob.
	Wallets = []string{"1", "3"}

	weights = boleto.WeightCycle("3197")

	// Bancoob never accepts document numbers over 10 digits: there are
	// no extended layouts for its wallets.
	layouts = boleto.MustCovenantLayouts(boleto.CovenantLayouts{
		StandardWidth: 10,
		ByLength: map[int]boleto.Layout{
			// Covenant (4) + Document number (7) + Agency (4) + Account (8) + Wallet (2)
			4: {
				{Field: boleto.FieldCovenant, Width: 4},
				{Field: boleto.FieldDocumentNumber, Width: 7},
				{Field: boleto.FieldAgency, Width: 4},
				{Field: boleto.FieldAccount, Width: 8},
				{Field: boleto.FieldWallet, Width: 2},
			},
			// Covenant (6) + Document number (5) + Agency (4) + Account (8) + Wallet (2)
			6: {
				{Field: boleto.FieldCovenant, Width: 6},
				{Field: boleto.FieldDocumentNumber, Width: 5},
				{Field: boleto.FieldAgency, Width: 4},
				{Field: boleto.FieldAccount, Width: 8},
				{Field: boleto.FieldWallet, Width: 2},
			},
			// Zeros (6) + Covenant (7) + Document number (10) + Wallet (2)
			7: {
				{Field: boleto.FieldZeros, Width: 6},
				{Field: boleto.FieldCovenant, Width: 7},
				{Field: boleto.FieldDocumentNumber, Width: 10},
				{Field: boleto.FieldWallet, Width: 2},
			},
		},
	})
)

type Bancoob struct{}

func New() *Bancoob {
	return &Bancoob{}
}

func (*Bancoob) BankCode() string {
	return BankCode
}

func (*Bancoob) Validate(doc *boleto.Document) error {
	err := boleto.RequireFields(doc,
		boleto.FieldDocumentNumber,
		boleto.FieldCovenant,
		boleto.FieldWallet,
	)
	if err != nil {
		return err
	}
	if err := boleto.RequireWallet(doc, Wallets); err != nil {
		return err
	}
	return boleto.RequireNumeric(doc,
		boleto.FieldAgency,
		boleto.FieldAccount,
		boleto.FieldAccountCheckDigit,
		boleto.FieldWalletVariation,
		boleto.FieldDocumentNumber,
		boleto.FieldCovenant,
	)
}

// ownNumberWidth is the least width of the document number inside an own
// number. Longer numbers keep every digit, up to the layout's standard width.
const ownNumberWidth = 7

// OwnNumber is Agency (4) + Account with its check digit (10) + Document number (7 to 10).
func (*Bancoob) OwnNumber(doc *boleto.Document) (string, error) {
	agency, err := boleto.PadNumeric(doc.Agency, 4)
	if err != nil {
		return "", fmt.Errorf("agency: %w", err)
	}
	account, err := boleto.PadNumeric(doc.Account+doc.AccountCheckDigit, 10)
	if err != nil {
		return "", fmt.Errorf("account: %w", err)
	}
	width := ownNumberWidth
	if n := len(doc.DocumentNumber); n > width {
		width = n
		if width > layouts.StandardWidth {
			width = layouts.StandardWidth
		}
	}
	number, err := boleto.PadNumeric(doc.DocumentNumber, width)
	if err != nil {
		return "", fmt.Errorf("document number: %w", err)
	}
	return agency + account + number, nil
}

func (*Bancoob) OwnNumberCheckDigit(ownNumber string) (string, error) {
	return weights.CheckDigit(ownNumber)
}

// OurNumber is the document number followed by the own number check digit.
func (b *Bancoob) OurNumber(doc *boleto.Document) (string, error) {
	own, err := b.OwnNumber(doc)
	if err != nil {
		return "", err
	}
	dv, err := b.OwnNumberCheckDigit(own)
	if err != nil {
		return "", err
	}
	return doc.DocumentNumber + "-" + dv, nil
}

func (*Bancoob) FreeField(doc *boleto.Document) (string, error) {
	return layouts.FreeField(doc)
}
