// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package boleto

import (
	"fmt"
)

// Field names a caller supplied Document value.
type Field int

const (
	FieldAgency Field = iota + 1
	FieldAccount
	FieldAccountCheckDigit
	FieldWallet
	FieldWalletVariation
	FieldDocumentNumber
	FieldCovenant

	// FieldZeros and FieldLiteral only appear in a Layout.
	FieldZeros
	FieldLiteral
)

var fieldNames = map[Field]string{
	FieldAgency:            "agency",
	FieldAccount:           "account",
	FieldAccountCheckDigit: "accountCheckDigit",
	FieldWallet:            "wallet",
	FieldWalletVariation:   "walletVariation",
	FieldDocumentNumber:    "documentNumber",
	FieldCovenant:          "covenant",
	FieldZeros:             "zeros",
	FieldLiteral:           "literal",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Segment is one fixed width piece of a Layout.
type Segment struct {
	Field Field
	Width int

	// Literal is emitted verbatim for FieldLiteral segments.
	Literal string
}

// Layout is an ordered list of zero padded segments.
type Layout []Segment

// Width returns the total number of digits the Layout produces.
func (l Layout) Width() int {
	total := 0
	for i := range l {
		total += l[i].Width
	}
	return total
}

// Compose reads each segment from doc and zero pads it to its width.
func (l Layout) Compose(doc *Document) (string, error) {
	out := make([]byte, 0, l.Width())
	for _, seg := range l {
		var value string
		switch seg.Field {
		case FieldZeros:
		case FieldLiteral:
			value = seg.Literal
		default:
			value = doc.Value(seg.Field)
		}
		v, err := PadNumeric(value, seg.Width)
		if err != nil {
			return "", fmt.Errorf("%s: %w", seg.Field, err)
		}
		out = append(out, v...)
	}
	return string(out), nil
}

func (l Layout) validate() error {
	for _, seg := range l {
		if seg.Width <= 0 {
			return fmt.Errorf("%s segment has width %d", seg.Field, seg.Width)
		}
		if seg.Field == FieldLiteral && (len(seg.Literal) != seg.Width || !isDigits(seg.Literal)) {
			return fmt.Errorf("literal %q does not fill width %d", seg.Literal, seg.Width)
		}
	}
	if w := l.Width(); w != FreeFieldWidth {
		return fmt.Errorf("%w: layout produces %d digits", ErrFreeFieldWidth, w)
	}
	return nil
}

// ExtendedLayout allows a document number longer than the standard width
// for one covenant length, a set of wallets and a wallet variation.
type ExtendedLayout struct {
	CovenantLength int
	Wallets        []string
	Variation      string // zero padded to 3 digits
	Layout         Layout
}

func (ext ExtendedLayout) matches(doc *Document) (bool, error) {
	if len(doc.Covenant) != ext.CovenantLength {
		return false, nil
	}
	variation, err := PadNumeric(doc.WalletVariation, 3)
	if err != nil {
		return false, fmt.Errorf("%s: %w", FieldWalletVariation, err)
	}
	if variation != ext.Variation {
		return false, nil
	}
	for i := range ext.Wallets {
		if doc.Wallet == ext.Wallets[i] {
			return true, nil
		}
	}
	return false, nil
}

// CovenantLayouts is the free field table used by banks which key their
// layout on the digit count of the covenant ("convênio").
type CovenantLayouts struct {
	// StandardWidth is the longest document number the ByLength layouts accept.
	StandardWidth int

	ByLength map[int]Layout
	Extended []ExtendedLayout
}

// MustCovenantLayouts panics unless every layout in c produces exactly
// FreeFieldWidth digits.
func MustCovenantLayouts(c CovenantLayouts) CovenantLayouts {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("boleto: %v", err))
	}
	return c
}

// Validate checks every layout in c.
func (c CovenantLayouts) Validate() error {
	if c.StandardWidth <= 0 {
		return fmt.Errorf("invalid standard width %d", c.StandardWidth)
	}
	if len(c.ByLength) == 0 {
		return fmt.Errorf("no covenant layouts")
	}
	for length, layout := range c.ByLength {
		if err := layout.validate(); err != nil {
			return fmt.Errorf("covenant length %d: %w", length, err)
		}
	}
	for i := range c.Extended {
		if err := c.Extended[i].Layout.validate(); err != nil {
			return fmt.Errorf("extended layout %d: %w", i, err)
		}
	}
	return nil
}

// Extension reports if doc carries a document number wider than
// StandardWidth and returns the layout it is allowed to use.
// ErrUnsupportedFieldCombination is returned when no extended layout matches.
func (c CovenantLayouts) Extension(doc *Document) (*ExtendedLayout, error) {
	if len(doc.DocumentNumber) <= c.StandardWidth {
		return nil, nil
	}
	for i := range c.Extended {
		ok, err := c.Extended[i].matches(doc)
		if err != nil {
			return nil, err
		}
		if ok {
			return &c.Extended[i], nil
		}
	}
	return nil, fmt.Errorf("%w: document number with %d digits, covenant with %d digits, wallet %q and variation %q",
		ErrUnsupportedFieldCombination, len(doc.DocumentNumber), len(doc.Covenant), doc.Wallet, doc.WalletVariation)
}

// Layout returns the free field layout for doc.
func (c CovenantLayouts) Layout(doc *Document) (Layout, error) {
	ext, err := c.Extension(doc)
	if err != nil {
		return nil, err
	}
	if ext != nil {
		return ext.Layout, nil
	}
	layout, ok := c.ByLength[len(doc.Covenant)]
	if !ok {
		return nil, fmt.Errorf("%w: covenant %q has %d digits, expected one of %v",
			ErrInvalidIdentifierLength, doc.Covenant, len(doc.Covenant), c.lengths())
	}
	return layout, nil
}

// FreeField composes the 25 digit free field for doc.
func (c CovenantLayouts) FreeField(doc *Document) (string, error) {
	layout, err := c.Layout(doc)
	if err != nil {
		return "", err
	}
	return layout.Compose(doc)
}

func (c CovenantLayouts) lengths() []int {
	var out []int
	for n := 1; n <= 17; n++ {
		if _, ok := c.ByLength[n]; ok {
			out = append(out, n)
		}
	}
	return out
}
