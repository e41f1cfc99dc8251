// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/moov-io/base/http/bind"
	"github.com/moov-io/base/log"

	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	Http  HTTP
	Admin Admin

	Banks   Banks
	Barcode Barcode
	Events  *Events
	Tracing Tracing
}

type Logging struct {
	Format string
}

type HTTP struct {
	BindAddress string
}

type Admin struct {
	BindAddress           string
	DisableConfigEndpoint bool
}

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		Admin: Admin{
			BindAddress: bind.Admin("boleto"),
		},
		Http: HTTP{
			BindAddress: bind.HTTP("boleto"),
		},
	}
}

func FromFile(path string) (*Config, error) {
	cfg := Empty()
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}

	cfg = setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setupLogger(cfg *Config) *Config {
	cfg.Logger = NewLogger(cfg.Logging.Format)
	return cfg
}

// NewLogger returns a JSON logger for format "json" and a logfmt logger otherwise.
func NewLogger(format string) log.Logger {
	if strings.EqualFold(format, "json") {
		return log.NewJSONLogger()
	}
	return log.NewDefaultLogger()
}

// Validate checks a Config fields and performs various confirmations
// their values conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}

	if err := cfg.Banks.Validate(); err != nil {
		return fmt.Errorf("banks: %v", err)
	}
	if err := cfg.Events.Validate(); err != nil {
		return fmt.Errorf("events: %v", err)
	}
	if err := cfg.Tracing.Validate(); err != nil {
		return fmt.Errorf("tracing: %v", err)
	}
	return nil
}
