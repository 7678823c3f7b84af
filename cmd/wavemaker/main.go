// SPDX-License-Identifier: EPL-2.0

// Command wavemaker reads, writes and analyses PCM audio files.
//
//	wavemaker read -p tone.wav -t 50
//	wavemaker write-sine -o tone.wav -f 220 -a 0.2 -d 5
//	wavemaker analyze -timeout 30s tone.wav voice.aiff
//	wavemaker info -p tone.wav
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/wavemaker/internal/config"
	"github.com/ik5/wavemaker/internal/otel"
)

const (
	serviceName    = "wavemaker"
	serviceVersion = "1.0.0"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load(".env")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	otelShutdown, err := otel.Setup(ctx, otel.Config{
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		OTLPToken:      cfg.OTLPToken,
	})
	if err != nil {
		slog.Error("setting up otel", "error", err)
		return 1
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			slog.Error("shutting down otel", "error", err)
		}
	}()

	otel.SetupLogger(serviceName, cfg.LogLevel, cfg.LogFormat)

	a, err := newApp(cfg, os.Stdout)
	if err != nil {
		slog.Error("creating instruments", "error", err)
		return 1
	}

	err = a.run(ctx, os.Args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		return 2
	default:
		slog.Error("command failed", "error", err)
		return 1
	}
}
