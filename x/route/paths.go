// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// BankCodeVar is the path variable routes use to select an issuing bank.
const BankCodeVar = "bankCode"

// ReadBankCode returns the {bankCode} path variable, or an empty string
// when the matched route has none.
func ReadBankCode(r *http.Request) string {
	return mux.Vars(r)[BankCodeVar]
}
