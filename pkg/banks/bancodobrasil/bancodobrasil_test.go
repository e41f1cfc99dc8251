// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package bancodobrasil

import (
	"errors"
	"testing"
	"time"

	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/model"

	"github.com/stretchr/testify/require"
)

func document(t *testing.T) *boleto.Document {
	t.Helper()

	amt, err := model.ParseAmount("BRL 1234.56")
	require.NoError(t, err)

	return &boleto.Document{
		BankCode:       BankCode,
		Agency:         "4321",
		Account:        "12345",
		Wallet:         "18",
		DocumentNumber: "42",
		Covenant:       "123456",
		DueDate:        time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		Amount:         *amt,
	}
}

func TestBancoDoBrasil__OwnNumberCheckDigit(t *testing.T) {
	b := New()
	cases := map[string]string{
		"12340000001": "1",
		"12340000002": "X",
		"12345600042": "4",
	}
	for own, want := range cases {
		dv, err := b.OwnNumberCheckDigit(own)
		require.NoError(t, err)
		require.Equal(t, want, dv, own)
	}

	// 17 digit own numbers have none
	dv, err := b.OwnNumberCheckDigit("12345670000000042")
	require.NoError(t, err)
	require.Equal(t, "", dv)

	_, err = b.OwnNumberCheckDigit("1234a")
	require.True(t, errors.Is(err, boleto.ErrInvalidNumericInput))
}

func TestBancoDoBrasil__OurNumber(t *testing.T) {
	b := New()

	cases := []struct {
		covenant  string
		number    string
		ourNumber string
	}{
		{"1234", "1", "12340000001-1"},
		{"1234", "2", "12340000002-X"},
		{"123456", "42", "12345600042-4"},
		{"1234567", "12345", "12345670000012345"},
	}
	for _, tc := range cases {
		doc := document(t)
		doc.Covenant = tc.covenant
		doc.DocumentNumber = tc.number

		our, err := b.OurNumber(doc)
		require.NoError(t, err, tc.covenant)
		require.Equal(t, tc.ourNumber, our, tc.covenant)
	}

	doc := document(t)
	doc.Covenant = "12345"
	_, err := b.OurNumber(doc)
	require.True(t, errors.Is(err, boleto.ErrInvalidIdentifierLength))
}

func TestBancoDoBrasil__Validate(t *testing.T) {
	b := New()
	require.NoError(t, b.Validate(document(t)))

	err := b.Validate(&boleto.Document{})
	var missing *boleto.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, []string{"agency", "account", "documentNumber", "covenant", "wallet"}, missing.Fields)

	doc := document(t)
	doc.Wallet = "1"
	require.True(t, errors.Is(b.Validate(doc), boleto.ErrUnsupportedWallet))
}

func TestBancoDoBrasil__Generate(t *testing.T) {
	codes, err := boleto.Generate(document(t), New())
	require.NoError(t, err)

	require.Equal(t, "12345600042-4", codes.OurNumber)
	require.Equal(t, "4", codes.OurNumberCheckDigit)
	require.Equal(t, "1234560004243210001234518", codes.FreeField)
	require.Equal(t, "00191971200001234561234560004243210001234518", codes.Barcode)
	require.Equal(t, "00191.23454 60004.243212 00012.345187 1 97120000123456", codes.DigitableLine)
}

func TestBancoDoBrasil__GenerateCovenant4(t *testing.T) {
	doc := document(t)
	doc.Agency = "1234"
	doc.Account = "12345678"
	doc.Covenant = "1234"
	doc.DocumentNumber = "1"

	codes, err := boleto.Generate(doc, New())
	require.NoError(t, err)
	require.Equal(t, "12340000001-1", codes.OurNumber)
	require.Equal(t, "1234000000112341234567818", codes.FreeField)
	require.Equal(t, "00191971200001234561234000000112341234567818", codes.Barcode)
	require.Equal(t, "00191.23405 00000.112342 12345.678184 1 97120000123456", codes.DigitableLine)
}

func TestBancoDoBrasil__GenerateCovenant7(t *testing.T) {
	amt, _ := model.ParseAmount("50.00")

	doc := document(t)
	doc.Wallet = "17"
	doc.Covenant = "1234567"
	doc.DocumentNumber = "12345"
	doc.Amount = *amt

	codes, err := boleto.Generate(doc, New())
	require.NoError(t, err)
	require.Equal(t, "12345670000012345", codes.OurNumber)
	require.Equal(t, "", codes.OurNumberCheckDigit)
	require.Equal(t, "0000001234567000001234517", codes.FreeField)
	require.Equal(t, "00195971200000050000000001234567000001234517", codes.Barcode)
	require.Equal(t, "00190.00009 01234.567004 00012.345179 5 97120000005000", codes.DigitableLine)
}

func TestBancoDoBrasil__GenerateExtended(t *testing.T) {
	amt, _ := model.ParseAmount("50.00")

	doc := document(t)
	doc.Wallet = "18"
	doc.WalletVariation = "17"
	doc.DocumentNumber = "12345678901"
	doc.Amount = *amt

	codes, err := boleto.Generate(doc, New())
	require.NoError(t, err)
	require.Equal(t, "00000012345678901", codes.OurNumber)
	require.Equal(t, "1234560000001234567890121", codes.FreeField)
	require.Equal(t, "00197971200000050001234560000001234567890121", codes.Barcode)
	require.Equal(t, "00191.23454 60000.001234 45678.901211 7 97120000005000", codes.DigitableLine)
}

func TestBancoDoBrasil__GenerateExtendedUnsupported(t *testing.T) {
	doc := document(t)
	doc.Wallet = "17"
	doc.WalletVariation = "17"
	doc.DocumentNumber = "12345678901"

	codes, err := boleto.Generate(doc, New())
	require.Nil(t, codes)
	require.True(t, errors.Is(err, boleto.ErrUnsupportedFieldCombination), "got %v", err)
}
