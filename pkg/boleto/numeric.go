// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"strconv"
	"strings"
)

// PadNumeric left-pads value with zeros to exactly width characters.
//
// Values with non-digit characters return ErrInvalidNumericInput and values
// longer than width return ErrNumericOverflow. Nothing is ever truncated.
func PadNumeric(value string, width int) (string, error) {
	if !isDigits(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumericInput, value)
	}
	if n := len(value); n > width {
		return "", fmt.Errorf("%w: %q has %d digits, limit is %d", ErrNumericOverflow, value, n, width)
	}
	return strings.Repeat("0", width-len(value)) + value, nil
}

// PadInt is PadNumeric for integers.
func PadInt(n int64, width int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative value %d", ErrInvalidNumericInput, n)
	}
	return PadNumeric(strconv.FormatInt(n, 10), width)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
