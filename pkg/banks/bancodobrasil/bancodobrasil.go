// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package bancodobrasil implements boleto codes for Banco do Brasil, bank 001.
//
// The own number is prefixed by the covenant ("convênio"): 4 and 6 digit
// covenants produce an 11 digit own number with a check digit, 7 digit
// covenants and the 17 digit extended own number carry no check digit.
package bancodobrasil

import (
	"fmt"
	"strconv"

	"github.com/moov-io/boleto/pkg/boleto"
)

const BankCode = "001"

var (
	// Wallets accepted by Banco do Brasil.
	Wallets = []string{"11", "12", "15", "16", "17", "18", "31", "51"}

	// own number check digit weights, applied right to left
	weights = []int{9, 8, 7, 6, 5, 4, 3, 2}

	layouts = boleto.MustCovenantLayouts(boleto.CovenantLayouts{
		StandardWidth: 10,
		ByLength: map[int]boleto.Layout{
			// Own number (11) + Agency (4) + Account (8) + Wallet (2)
			4: {
				{Field: boleto.FieldCovenant, Width: 4},
				{Field: boleto.FieldDocumentNumber, Width: 7},
				{Field: boleto.FieldAgency, Width: 4},
				{Field: boleto.FieldAccount, Width: 8},
				{Field: boleto.FieldWallet, Width: 2},
			},
			6: {
				{Field: boleto.FieldCovenant, Width: 6},
				{Field: boleto.FieldDocumentNumber, Width: 5},
				{Field: boleto.FieldAgency, Width: 4},
				{Field: boleto.FieldAccount, Width: 8},
				{Field: boleto.FieldWallet, Width: 2},
			},
			// Zeros (6) + Own number (17) + Wallet (2)
			7: {
				{Field: boleto.FieldZeros, Width: 6},
				{Field: boleto.FieldCovenant, Width: 7},
				{Field: boleto.FieldDocumentNumber, Width: 10},
				{Field: boleto.FieldWallet, Width: 2},
			},
		},
		Extended: []boleto.ExtendedLayout{
			// Unregistered collection with a 6 digit covenant, wallets 16 and 18
			// variation 017: Covenant (6) + Own number (17) + Service "21" (2)
			{
				CovenantLength: 6,
				Wallets:        []string{"16", "18"},
				Variation:      "017",
				Layout: boleto.Layout{
					{Field: boleto.FieldCovenant, Width: 6},
					{Field: boleto.FieldDocumentNumber, Width: 17},
					{Field: boleto.FieldLiteral, Width: 2, Literal: "21"},
				},
			},
		},
	})
)

type BancoDoBrasil struct{}

func New() *BancoDoBrasil {
	return &BancoDoBrasil{}
}

func (*BancoDoBrasil) BankCode() string {
	return BankCode
}

func (*BancoDoBrasil) Validate(doc *boleto.Document) error {
	err := boleto.RequireFields(doc,
		boleto.FieldAgency,
		boleto.FieldAccount,
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
		boleto.FieldWalletVariation,
		boleto.FieldDocumentNumber,
		boleto.FieldCovenant,
	)
}

func (*BancoDoBrasil) OwnNumber(doc *boleto.Document) (string, error) {
	ext, err := layouts.Extension(doc)
	if err != nil {
		return "", err
	}
	if ext != nil {
		return boleto.PadNumeric(doc.DocumentNumber, 17)
	}

	var width int
	switch len(doc.Covenant) {
	case 4:
		width = 7
	case 6:
		width = 5
	case 7:
		width = 10
	default:
		return "", fmt.Errorf("%w: covenant %q has %d digits", boleto.ErrInvalidIdentifierLength, doc.Covenant, len(doc.Covenant))
	}
	number, err := boleto.PadNumeric(doc.DocumentNumber, width)
	if err != nil {
		return "", fmt.Errorf("document number: %w", err)
	}
	return doc.Covenant + number, nil
}

// OwnNumberCheckDigit is modulo 11 with weights 9 to 2 from the right,
// where the remainder itself is the check digit and remainder 10 is "X".
// 17 digit own numbers have no check digit.
func (*BancoDoBrasil) OwnNumberCheckDigit(ownNumber string) (string, error) {
	if len(ownNumber) == 17 {
		return "", nil
	}
	sum := 0
	for i, w := len(ownNumber)-1, 0; i >= 0; i, w = i-1, w+1 {
		c := ownNumber[i]
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: %q", boleto.ErrInvalidNumericInput, ownNumber)
		}
		sum += int(c-'0') * weights[w%len(weights)]
	}
	if r := sum % 11; r != 10 {
		return strconv.Itoa(r), nil
	}
	return "X", nil
}

func (b *BancoDoBrasil) OurNumber(doc *boleto.Document) (string, error) {
	own, err := b.OwnNumber(doc)
	if err != nil {
		return "", err
	}
	dv, err := b.OwnNumberCheckDigit(own)
	if err != nil {
		return "", err
	}
	if dv == "" {
		return own, nil
	}
	return own + "-" + dv, nil
}

func (*BancoDoBrasil) FreeField(doc *boleto.Document) (string, error) {
	return layouts.FreeField(doc)
}
