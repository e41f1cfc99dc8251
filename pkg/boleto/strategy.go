// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy computes the bank specific parts of a boleto.
//
// Implementations must be deterministic and free of hidden state: the same
// Document always produces the same outputs.
type Strategy interface {
	// BankCode is the 3 digit code of the issuing bank.
	BankCode() string

	// Validate reports every missing mandatory field at once with a
	// *MissingFieldsError before checking field contents.
	Validate(doc *Document) error

	// OwnNumber returns the raw own number digits.
	OwnNumber(doc *Document) (string, error)

	// OwnNumberCheckDigit computes the check digit of raw own number digits.
	// Banks without an own number check digit return an empty string.
	OwnNumberCheckDigit(ownNumber string) (string, error)

	// OurNumber returns the printed "nosso número", check digit included.
	OurNumber(doc *Document) (string, error)

	// FreeField returns the 25 digits at barcode positions 20 to 44.
	FreeField(doc *Document) (string, error)
}

// RequireFields returns a *MissingFieldsError naming every empty field.
func RequireFields(doc *Document, fields ...Field) error {
	var missing []string
	for _, f := range fields {
		if doc.Value(f) == "" {
			missing = append(missing, f.String())
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// RequireNumeric returns ErrInvalidNumericInput for the first field
// holding a non-digit character.
func RequireNumeric(doc *Document, fields ...Field) error {
	for _, f := range fields {
		if v := doc.Value(f); !isDigits(v) {
			return fmt.Errorf("%s: %w: %q", f, ErrInvalidNumericInput, v)
		}
	}
	return nil
}

// RequireWallet returns ErrUnsupportedWallet unless doc.Wallet is one of wallets.
func RequireWallet(doc *Document, wallets []string) error {
	for i := range wallets {
		if doc.Wallet == wallets[i] {
			return nil
		}
	}
	return fmt.Errorf("%w: %q, expected one of %v", ErrUnsupportedWallet, doc.Wallet, wallets)
}

// Registry holds one Strategy per bank code.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
	}
}

// Register adds s under its bank code. Registering a bank twice is an error.
func (r *Registry) Register(s Strategy) error {
	if s == nil {
		return fmt.Errorf("%w: nil Strategy", ErrUnsupportedBank)
	}
	code := s.BankCode()
	if len(code) != bankCodeWidth || !isDigits(code) {
		return fmt.Errorf("%w: invalid bank code %q", ErrUnsupportedBank, code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[code]; exists {
		return fmt.Errorf("bank %s is already registered", code)
	}
	r.strategies[code] = s
	return nil
}

// Lookup returns the Strategy for bankCode or ErrUnsupportedBank.
func (r *Registry) Lookup(bankCode string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.strategies[bankCode]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBank, bankCode)
}

// BankCodes returns every registered bank code in ascending order.
func (r *Registry) BankCodes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.strategies))
	for code := range r.strategies {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
