// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"strings"
)

// DigitableLineDigits is the digit count of a digitable line once separators
// are removed: the 44 barcode digits plus one check digit for each of the
// first three fields.
const DigitableLineDigits = BarcodeWidth + 3

// FormatDigitableLine rearranges a barcode into its five printed fields:
//
//   AAAAA.AAAAA BBBBB.BBBBBB CCCCC.CCCCCC D EEEEEEEEEEEEEE
//
// Field 1 is the bank, currency and the first 5 free field digits, fields 2
// and 3 carry the remaining 20 free field digits, field 4 is the barcode
// check digit and field 5 is the due date factor and amount. Fields 1 to 3
// end with a Modulo10 check digit.
func FormatDigitableLine(barcode string) (string, error) {
	if len(barcode) != BarcodeWidth || !isDigits(barcode) {
		return "", fmt.Errorf("%w: expected %d digits, got %q", ErrInvalidBarcode, BarcodeWidth, barcode)
	}
	free := barcode[19:]
	fields := []string{barcode[0:4] + free[0:5], free[5:15], free[15:25]}
	for i := range fields {
		dv, err := Modulo10(fields[i])
		if err != nil {
			return "", err
		}
		fields[i] += dv
	}

	var buf strings.Builder
	for i := range fields {
		buf.WriteString(fields[i][:5])
		buf.WriteByte('.')
		buf.WriteString(fields[i][5:])
		buf.WriteByte(' ')
	}
	buf.WriteString(barcode[4:5])
	buf.WriteByte(' ')
	buf.WriteString(barcode[5:19])
	return buf.String(), nil
}

// Digits strips every non-digit character, leaving the interchange form of
// a digitable line.
func Digits(line string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, line)
}

// ParseDigitableLine verifies every check digit of a digitable line and
// returns the barcode it was built from. Separators are ignored.
func ParseDigitableLine(line string) (*Barcode, error) {
	d := Digits(line)
	if len(d) != DigitableLineDigits {
		return nil, fmt.Errorf("%w: digitable line has %d digits, expected %d", ErrInvalidBarcode, len(d), DigitableLineDigits)
	}
	fields := []string{d[0:10], d[10:21], d[21:32]}
	for i := range fields {
		body, dv := fields[i][:len(fields[i])-1], fields[i][len(fields[i])-1:]
		want, _ := Modulo10(body)
		if want != dv {
			return nil, fmt.Errorf("%w: field %d check digit %s, expected %s", ErrInvalidBarcode, i+1, dv, want)
		}
		fields[i] = body
	}
	barcode := fields[0][0:4] + d[32:33] + d[33:47] + fields[0][4:] + fields[1] + fields[2]
	return ParseBarcode(barcode)
}
