// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package banks collects every boleto.Strategy shipped with this module.
package banks

import (
	"fmt"

	"github.com/moov-io/boleto/pkg/banks/bancodobrasil"
	"github.com/moov-io/boleto/pkg/banks/bancoob"
	"github.com/moov-io/boleto/pkg/boleto"
)

// All returns a new instance of every supported bank.
func All() []boleto.Strategy {
	return []boleto.Strategy{
		bancodobrasil.New(),
		bancoob.New(),
	}
}

// NewRegistry registers the given bank codes, or every supported bank
// when enabled is empty.
func NewRegistry(enabled ...string) (*boleto.Registry, error) {
	all := make(map[string]boleto.Strategy)
	for _, s := range All() {
		all[s.BankCode()] = s
	}

	reg := boleto.NewRegistry()
	if len(enabled) == 0 {
		for _, s := range all {
			if err := reg.Register(s); err != nil {
				return nil, err
			}
		}
		return reg, nil
	}
	for _, code := range enabled {
		s, ok := all[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", boleto.ErrUnsupportedBank, code)
		}
		if err := reg.Register(s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
