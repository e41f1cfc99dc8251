// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/currency"
)

// DefaultSymbol is used when an Amount is read without a currency.
const DefaultSymbol = "BRL"

// ErrAmountOverflow is returned when a value has more cents than an int64 holds.
var ErrAmountOverflow = errors.New("amount overflows cents")

// maxWhole leaves room for the cents, including a rounded up 1.00.
const maxWhole = (math.MaxInt64 - 100) / 100

// Amount represents units of a particular currency.
//
// The zero value is BRL 0.00.
type Amount struct {
	number int64
	symbol string // ISO 4217, i.e. BRL, USD
}

// Cents returns the currency amount as an integer.
// Example: "BRL 1.11" returns 111
func (a *Amount) Cents() int64 {
	if a == nil {
		return 0
	}
	return a.number
}

// Symbol returns the ISO 4217 currency of the Amount.
func (a *Amount) Symbol() string {
	if a == nil || a.symbol == "" {
		return DefaultSymbol
	}
	return a.symbol
}

// IsReal returns true for amounts in Brazilian reais.
func (a *Amount) IsReal() bool {
	return a.Symbol() == DefaultSymbol
}

func (a *Amount) Validate() error {
	if a == nil {
		return errors.New("nil Amount")
	}
	if a.number < 0 {
		return fmt.Errorf("negative Amount: %d", a.number)
	}
	_, err := currency.ParseISO(a.Symbol())
	return err
}

func (a Amount) Equal(other Amount) bool {
	return a.String() == other.String()
}

// NewAmountFromCents returns an Amount object after validating the ISO 4217 currency symbol.
func NewAmountFromCents(symbol string, cents int64) (*Amount, error) {
	return NewAmount(symbol, formattedNumber(cents))
}

// NewAmount returns an Amount object after validating the ISO 4217 currency symbol.
func NewAmount(symbol string, number string) (*Amount, error) {
	var amt Amount
	if err := amt.FromString(fmt.Sprintf("%s %s", symbol, number)); err != nil {
		return nil, err
	}
	return &amt, nil
}

// String returns an amount formatted with the currency.
// Examples:
//   BRL 12.53
//   USD 4.02
func (a *Amount) String() string {
	if a == nil {
		return "BRL 0.00"
	}
	return fmt.Sprintf("%s %s", a.Symbol(), formattedNumber(a.number))
}

func formattedNumber(number int64) string {
	if number <= 0 {
		return "0.00"
	}
	str := fmt.Sprintf("%03d", number)
	return str[:len(str)-2] + "." + str[len(str)-2:]
}

// ParseAmount reads an amount with an optional currency symbol.
// Examples:
//   BRL 12.53
//   12.53
//   12,53
func ParseAmount(in string) (*Amount, error) {
	var amt Amount
	if len(strings.Fields(in)) == 1 {
		in = DefaultSymbol + " " + in
	}
	if err := amt.FromString(in); err != nil {
		return nil, err
	}
	return &amt, nil
}

// FromString attempts to parse str as a valid currency symbol and
// the quantity. A comma is accepted as the decimal separator.
// Examples:
//   BRL 12.53
//   BRL 12,53
func (a *Amount) FromString(str string) error {
	if a == nil {
		return errors.New("nil Amount")
	}

	parts := strings.Fields(str)
	if len(parts) != 2 {
		return fmt.Errorf("invalid Amount format: %q", str)
	}

	sym, err := currency.ParseISO(parts[0])
	if err != nil {
		return err
	}

	value := parts[1]
	if strings.HasPrefix(value, "-") {
		return fmt.Errorf("unable to read %s", value)
	}
	if !strings.Contains(value, ".") {
		value = strings.Replace(value, ",", ".", 1)
	}

	var number int64
	idx := strings.Index(value, ".")
	if idx == -1 {
		// No decimal (i.e. "12") so just convert to int
		number, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return rangeError(value, err)
		}
	} else {
		// Has decimal, convert to 2 decimals then to int
		whole, err := strconv.ParseInt(value[:idx], 10, 64)
		if err != nil {
			return rangeError(value, err)
		}
		if whole > maxWhole {
			return fmt.Errorf("%w: %s", ErrAmountOverflow, value)
		}
		frac := value[idx+1:]
		if frac != "" && strings.Trim(frac, "0123456789") != "" {
			return fmt.Errorf("unable to read %s", value)
		}
		var dec int64
		if utf8.RuneCountInString(frac) > 2 { // more than 2 decimal values
			dec, _ = strconv.ParseInt(frac[:3], 10, 64)
			if dec%10 >= 5 { // do we need to round?
				dec = (dec / 10) + 1 // round cents up R$0.01
			} else {
				dec = dec / 10
			}
		} else {
			dec, _ = strconv.ParseInt((frac + "00")[:2], 10, 64)
		}
		number = (whole * 100) + dec
	}
	if number < 0 {
		return fmt.Errorf("unable to read %s", value)
	}

	a.number = number
	a.symbol = sym.String()
	return nil
}

func rangeError(value string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %s", ErrAmountOverflow, value)
	}
	return err
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	amt, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = *amt
	return nil
}
