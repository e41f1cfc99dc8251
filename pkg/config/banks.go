// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/moov-io/base"
)

// Banks selects which issuing bank strategies are served. An empty
// Enabled list serves every bank the binary knows about.
type Banks struct {
	Enabled []string
}

func (cfg Banks) Validate() error {
	var el base.ErrorList
	seen := make(map[string]bool)
	for _, code := range cfg.Enabled {
		if len(code) != 3 || !digitsOnly(code) {
			el.Add(fmt.Errorf("invalid bank code %q", code))
			continue
		}
		if seen[code] {
			el.Add(fmt.Errorf("duplicate bank code %s", code))
		}
		seen[code] = true
	}
	return el.Err()
}

// Barcode holds switches applied to every generated barcode.
type Barcode struct {
	// DueDateRollover restarts the due date factor at 1000 on 2025-02-22
	// instead of letting it overflow four digits.
	DueDateRollover bool
}

// DefaultServiceName is reported to Jaeger when Tracing.ServiceName is empty.
const DefaultServiceName = "boleto"

type Tracing struct {
	Enabled     bool
	ServiceName string
	SampleRate  float64
	LogSpans    bool
}

// Service returns the name spans are reported under.
func (cfg Tracing) Service() string {
	if cfg.ServiceName == "" {
		return DefaultServiceName
	}
	return cfg.ServiceName
}

func (cfg Tracing) Validate() error {
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return fmt.Errorf("sample rate %v outside of [0, 1]", cfg.SampleRate)
	}
	return nil
}

func digitsOnly(s string) bool {
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
