// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"strconv"
)

// WeightCycle is a repeating sequence of digit weights applied left to right
// over an own number, e.g. "3197".
type WeightCycle string

// Sum returns the weighted sum of digits. Zero digits are skipped.
func (w WeightCycle) Sum(digits string) (int, error) {
	if len(w) == 0 || !isDigits(string(w)) {
		return 0, fmt.Errorf("%w: weight cycle %q", ErrInvalidNumericInput, string(w))
	}
	if !isDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, digits)
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if d == 0 {
			continue
		}
		sum += d * int(w[i%len(w)]-'0')
	}
	return sum, nil
}

// CheckDigit computes the own number check digit: remainders 0 and 1 map
// to 0, any other remainder r maps to 11 - r.
func (w WeightCycle) CheckDigit(digits string) (string, error) {
	sum, err := w.Sum(digits)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(ownNumberDigit(sum % 11)), nil
}

func ownNumberDigit(remainder int) int {
	if remainder == 0 || remainder == 1 {
		return 0
	}
	return 11 - remainder
}

// barcodeWeights run right to left over the 43 digits around the check digit.
var barcodeWeights = [...]int{2, 3, 4, 5, 6, 7, 8, 9}

func barcodeRemainder(digits string) int {
	sum := 0
	for i, w := len(digits)-1, 0; i >= 0; i, w = i-1, w+1 {
		sum += int(digits[i]-'0') * barcodeWeights[w%len(barcodeWeights)]
	}
	return sum % 11
}

// BarcodeCheckDigit computes the general check digit of a barcode from the
// 43 digits which surround it. Remainders 0, 1 and 10 map to 1, any other
// remainder r maps to 11 - r.
func BarcodeCheckDigit(digits string) (string, error) {
	if len(digits) != BarcodeWidth-1 || !isDigits(digits) {
		return "", fmt.Errorf("%w: check digit input %q", ErrInvalidBarcode, digits)
	}
	return strconv.Itoa(barcodeDigit(barcodeRemainder(digits))), nil
}

func barcodeDigit(remainder int) int {
	switch remainder {
	case 0, 1, 10:
		return 1
	}
	return 11 - remainder
}

// Modulo10 computes a digitable line field check digit. Weights alternate
// 2 and 1 starting from the rightmost digit and products of two digits are
// reduced by summing them.
func Modulo10(digits string) (string, error) {
	if !isDigits(digits) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumericInput, digits)
	}
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		sum += p/10 + p%10
		weight = 3 - weight
	}
	return strconv.Itoa((10 - sum%10) % 10), nil
}
