// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRequiredField        = errors.New("missing required field")
	ErrInvalidNumericInput         = errors.New("invalid numeric input")
	ErrNumericOverflow             = errors.New("numeric overflow")
	ErrInvalidIdentifierLength     = errors.New("invalid identifier length")
	ErrUnsupportedFieldCombination = errors.New("unsupported field combination")
	ErrDueDateOutOfRange           = errors.New("due date out of range")
	ErrAmountOutOfRange            = errors.New("amount out of range")
	ErrUnsupportedBank             = errors.New("unsupported bank")
	ErrUnsupportedWallet           = errors.New("unsupported wallet")

	// ErrFreeFieldWidth is returned when a Strategy breaks the 25 digit free field contract.
	ErrFreeFieldWidth = errors.New("free field width")

	ErrInvalidBarcode = errors.New("invalid barcode")
)

// MissingFieldsError lists every mandatory field absent from a Document.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingRequiredField, strings.Join(e.Fields, ", "))
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingRequiredField
}
