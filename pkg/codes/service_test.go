// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package codes

import (
	"context"
	"errors"
	"testing"

	"github.com/moov-io/boleto/pkg/banks"
	"github.com/moov-io/boleto/pkg/boleto"
	"github.com/moov-io/boleto/pkg/model"

	"github.com/moov-io/base/log"
	"github.com/stretchr/testify/require"
)

const (
	bancoobBarcode       = "75696100000000100000000001234567000123456701"
	bancoobDigitableLine = "75690.00008 01234.567004 01234.567012 6 10000000010000"
)

type mockPublisher struct {
	published []*Boleto
	err       error
}

func (pub *mockPublisher) Publish(ctx context.Context, b *Boleto) error {
	if pub.err != nil {
		return pub.err
	}
	pub.published = append(pub.published, b)
	return nil
}

func (pub *mockPublisher) Shutdown(ctx context.Context) error {
	return nil
}

func bancoobRequest(t *testing.T) CreateRequest {
	t.Helper()

	amt, err := model.ParseAmount("BRL 100.00")
	require.NoError(t, err)

	return CreateRequest{
		BankCode:          "756",
		Agency:            "1234",
		Account:           "123456789",
		AccountCheckDigit: "0",
		Wallet:            "1",
		DocumentNumber:    "1234567",
		Covenant:          "1234567",
		DueDate:           "2000-07-03",
		Amount:            *amt,
	}
}

func testService(t *testing.T, pub Publisher) *Service {
	t.Helper()

	reg, err := banks.NewRegistry()
	require.NoError(t, err)
	return NewService(log.NewNopLogger(), reg, pub, false)
}

func TestService__Create(t *testing.T) {
	pub := &mockPublisher{}
	svc := testService(t, pub)

	out, err := svc.Create(context.Background(), bancoobRequest(t))
	require.NoError(t, err)

	require.Equal(t, "756", out.BankCode)
	require.Equal(t, "1234567", out.DocumentNumber)
	require.Equal(t, "2000-07-03", out.DueDate)
	require.Equal(t, int64(10000), out.Amount.Cents())
	require.Equal(t, "1234567-9", out.OurNumber)
	require.Equal(t, "9", out.OurNumberCheckDigit)
	require.Equal(t, bancoobBarcode, out.Barcode)
	require.Equal(t, bancoobDigitableLine, out.DigitableLine)

	require.Len(t, pub.published, 1)
	require.Equal(t, out, pub.published[0])
}

func TestService__CreatePublishError(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker down")}
	svc := testService(t, pub)

	out, err := svc.Create(context.Background(), bancoobRequest(t))
	require.NoError(t, err)
	require.Equal(t, bancoobBarcode, out.Barcode)
}

func TestService__CreateErrors(t *testing.T) {
	svc := testService(t, nil)
	ctx := context.Background()

	req := bancoobRequest(t)
	req.BankCode = "999"
	_, err := svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrUnsupportedBank))

	req = bancoobRequest(t)
	req.DueDate = ""
	_, err = svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrMissingRequiredField))

	req = bancoobRequest(t)
	req.DueDate = "03/07/2000"
	_, err = svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrInvalidNumericInput))

	req = bancoobRequest(t)
	req.DueDate = "1990-01-01"
	_, err = svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrDueDateOutOfRange))

	req = bancoobRequest(t)
	req.Wallet = "2"
	_, err = svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrUnsupportedWallet))

	req = bancoobRequest(t)
	req.Covenant = ""
	_, err = svc.Create(ctx, req)
	require.True(t, errors.Is(err, boleto.ErrMissingRequiredField))
}

func TestService__Banks(t *testing.T) {
	svc := testService(t, nil)
	require.Equal(t, []string{"001", "756"}, svc.Banks())
}

func TestService__Validate(t *testing.T) {
	svc := testService(t, nil)

	out, err := svc.Validate(ValidateRequest{Barcode: bancoobBarcode})
	require.NoError(t, err)
	require.Equal(t, bancoobBarcode, out.Barcode)
	require.Equal(t, bancoobDigitableLine, out.DigitableLine)
	require.Equal(t, "756", out.BankCode)
	require.Equal(t, "9", out.CurrencyCode)
	require.Equal(t, "6", out.CheckDigit)
	require.Equal(t, 1000, out.DueDateFactor)
	require.Equal(t, "2000-07-03", out.DueDate)
	require.Equal(t, int64(10000), out.Cents)
	require.NotNil(t, out.Amount)
	require.Equal(t, "BRL 100.00", out.Amount.String())
	require.Equal(t, "0000001234567000123456701", out.FreeField)

	fromLine, err := svc.Validate(ValidateRequest{DigitableLine: bancoobDigitableLine})
	require.NoError(t, err)
	require.Equal(t, out, fromLine)
}

func TestService__ValidateErrors(t *testing.T) {
	svc := testService(t, nil)

	_, err := svc.Validate(ValidateRequest{})
	require.Equal(t, ErrEmptyValidateRequest, err)

	_, err = svc.Validate(ValidateRequest{Barcode: bancoobBarcode, DigitableLine: bancoobDigitableLine})
	require.Equal(t, ErrAmbiguousValidateRequest, err)

	// wrong barcode check digit
	bad := bancoobBarcode[:4] + "7" + bancoobBarcode[5:]
	_, err = svc.Validate(ValidateRequest{Barcode: bad})
	require.True(t, errors.Is(err, boleto.ErrInvalidBarcode))

	// wrong first field check digit
	_, err = svc.Validate(ValidateRequest{DigitableLine: "75690.00009 01234.567004 01234.567012 6 10000000010000"})
	require.True(t, errors.Is(err, boleto.ErrInvalidBarcode))
}

func TestReason(t *testing.T) {
	require.Equal(t, "missing_field", reason(&boleto.MissingFieldsError{Fields: []string{"wallet"}}))
	require.Equal(t, "due_date", reason(boleto.ErrDueDateOutOfRange))
	require.Equal(t, "other", reason(errors.New("boom")))
}

func TestService__CreateMissingBank(t *testing.T) {
	svc := testService(t, nil)

	req := bancoobRequest(t)
	req.BankCode = ""
	_, err := svc.Create(context.Background(), req)
	require.True(t, errors.Is(err, boleto.ErrMissingRequiredField))
	require.Contains(t, err.Error(), "bankCode")
}
