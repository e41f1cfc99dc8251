// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package boleto generates the numeric codes printed on a Brazilian bank
// payment slip: the bank's own number ("nosso número"), the 25 digit free
// field ("campo livre"), the 44 digit barcode and the digitable line.
//
// Bank specific rules live behind the Strategy interface. The barcode and
// digitable line assembly is shared by every bank and follows the FEBRABAN
// interbank layout:
//
//   bank(3) currency(1) check digit(1) due date factor(4) amount(10) free field(25)
//
// Nothing in this package performs I/O.
package boleto
