// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package mask

import (
	"strings"
	"unicode/utf8"
)

// Account hides all but the last two characters of an account number,
// turning '12345678' into '******78'.
func Account(s string) string {
	n := utf8.RuneCountInString(s)
	if n < 3 {
		return "**" // too short, we can't mask anything
	}
	runes := []rune(s)
	return strings.Repeat("*", n-2) + string(runes[n-2:])
}
