// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/ik5/wavemaker/audio"
	"github.com/ik5/wavemaker/formats/aiff"
	"github.com/ik5/wavemaker/formats/wav"
	"github.com/ik5/wavemaker/internal/config"
	"github.com/ik5/wavemaker/internal/otel"
)

var errUsage = errors.New("usage")

const usage = `usage: wavemaker <command> [flags]

commands:
  read        -p PATH [-t MS]               print samples up to MS milliseconds
  write-sine  -o PATH -f HZ [-a] [-d] [-r] [-c]
                                            write a sine tone
  analyze     [-workers N] [-max-lag N] [-rate HZ] [-timeout D] PATH...
                                            estimate the pitch of .wav/.aif/.aiff files
  info        -p PATH                       print the WAV header
`

type app struct {
	cfg      *config.Config
	out      io.Writer
	registry *audio.Registry
	metrics  *otel.AnalysisMetrics
}

func newApp(cfg *config.Config, out io.Writer) (*app, error) {
	metrics, err := otel.NewAnalysisMetrics()
	if err != nil {
		return nil, err
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return &app{cfg: cfg, out: out, registry: reg, metrics: metrics}, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	var cmd func(context.Context, []string) error
	switch args[0] {
	case "read":
		cmd = a.read
	case "write-sine":
		cmd = a.writeSine
	case "analyze":
		cmd = a.analyze
	case "info":
		cmd = a.info
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	ctx, span := otel.Tracer().Start(ctx, args[0])
	defer span.End()
	span.SetAttributes(attribute.StringSlice("args", args[1:]))

	if err := cmd(ctx, args[1:]); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func formatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
