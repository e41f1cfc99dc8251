// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/moov-io/base/admin"
	"github.com/moov-io/base/log"
	"github.com/moov-io/boleto"
	"github.com/moov-io/boleto/pkg/banks"
	"github.com/moov-io/boleto/pkg/codes"
	"github.com/moov-io/boleto/pkg/config"
	configadmin "github.com/moov-io/boleto/pkg/config/admin"
	"github.com/moov-io/boleto/pkg/stream"
	"github.com/moov-io/boleto/x/route"
	"github.com/moov-io/boleto/x/trace"

	"github.com/gorilla/mux"
)

var (
	flagConfigFile = flag.String("config", "", "Filepath for config file to load")
	flagLogFormat  = flag.String("log.format", "", "Format for log lines (Options: json, plain)")
)

func main() {
	flag.Parse()

	path := *flagConfigFile
	if v := os.Getenv("CONFIG_FILE"); v != "" {
		path = v
	}
	cfg := readConfig(path)
	cfg.Logger.Logf("Starting boleto server version %s", boleto.Version)

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	// Listen for application termination.
	errs := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errs <- fmt.Errorf("%s", <-c)
	}()

	// Spin up admin HTTP server
	adminServer := admin.NewServer(cfg.Admin.BindAddress)
	adminServer.AddVersionHandler(boleto.Version) // Setup 'GET /version'
	configadmin.RegisterRoutes(adminServer, cfg)
	go func() {
		cfg.Logger.Logf("admin listening on %s", adminServer.BindAddr())
		if err := adminServer.Listen(); err != nil {
			err = fmt.Errorf("problem starting admin http: %v", err)
			cfg.Logger.LogError(err)
			errs <- err
		}
	}()
	defer adminServer.Shutdown()

	closeTracer := setupTracing(cfg)
	defer closeTracer()

	registry, err := banks.NewRegistry(cfg.Banks.Enabled...)
	if err != nil {
		panic(fmt.Sprintf("problem enabling banks: %v", err))
	}
	cfg.Logger.Logf("enabled banks: %v", registry.BankCodes())

	publisher, err := setupPublisher(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("problem opening events topic: %v", err))
	}
	if publisher != nil {
		defer publisher.Shutdown(context.Background())
	}

	svc := codes.NewService(cfg.Logger, registry, publisher, cfg.Barcode.DueDateRollover)

	// Create HTTP handler
	handler := mux.NewRouter()
	route.PingRoute(cfg.Logger, handler)
	codes.NewRouter(cfg.Logger, svc).RegisterRoutes(handler)

	// Create main HTTP server
	serve := &http.Server{
		Addr:    cfg.Http.BindAddress,
		Handler: handler,
		TLSConfig: &tls.Config{
			InsecureSkipVerify:       false,
			PreferServerCipherSuites: true,
			MinVersion:               tls.VersionTLS12,
		},
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	shutdownServer := func() {
		if err := serve.Shutdown(context.TODO()); err != nil {
			cfg.Logger.LogErrorf("shutdown: %v", err)
		}
	}
	defer shutdownServer()

	// Start main HTTP server
	go func() {
		if certFile, keyFile := os.Getenv("HTTPS_CERT_FILE"), os.Getenv("HTTPS_KEY_FILE"); certFile != "" && keyFile != "" {
			cfg.Logger.Logf("binding to %s for secure HTTP server", serve.Addr)
			if err := serve.ListenAndServeTLS(certFile, keyFile); err != nil {
				cfg.Logger.LogError(err)
			}
		} else {
			cfg.Logger.Logf("binding to %s for HTTP server", serve.Addr)
			if err := serve.ListenAndServe(); err != nil {
				cfg.Logger.LogError(err)
			}
		}
	}()

	if err := <-errs; err != nil {
		cfg.Logger.Logf("exit: %v", err)
	}
}

func readConfig(path string) *config.Config {
	cfg, err := config.FromFile(path)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if *flagLogFormat != "" {
		cfg.Logging.Format = *flagLogFormat
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("HTTP_BIND_ADDRESS"); v != "" {
		cfg.Http.BindAddress = v
	}
	if v := os.Getenv("HTTP_ADMIN_BIND_ADDRESS"); v != "" {
		cfg.Admin.BindAddress = v
	}
	if v, err := strconv.ParseBool(os.Getenv("DUE_DATE_ROLLOVER")); err == nil {
		cfg.Barcode.DueDateRollover = v
	}
	cfg.Logger = config.NewLogger(cfg.Logging.Format)
	return cfg
}

func setupTracing(cfg *config.Config) func() {
	if !cfg.Tracing.Enabled {
		return func() {}
	}
	_, closer, err := trace.New(cfg.Logger, cfg.Tracing)
	if err != nil {
		cfg.Logger.LogErrorf("problem starting tracer: %v", err)
		return func() {}
	}
	return closeWith(cfg.Logger, closer)
}

func closeWith(logger log.Logger, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.LogErrorf("problem closing tracer: %v", err)
		}
	}
}

// setupPublisher opens the events topic, returning a nil Publisher when events are not configured.
func setupPublisher(ctx context.Context, cfg *config.Config) (codes.Publisher, error) {
	if cfg.Events == nil {
		return nil, nil
	}
	topic, err := stream.OpenTopic(ctx, cfg.Events)
	if err != nil {
		return nil, err
	}
	return codes.NewStreamPublisher(topic), nil
}
