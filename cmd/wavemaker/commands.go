// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/wavemaker"
	"github.com/ik5/wavemaker/formats/wav"
	"github.com/ik5/wavemaker/internal/otel"
	"github.com/ik5/wavemaker/pcm"
	"github.com/ik5/wavemaker/pitch"
	"github.com/ik5/wavemaker/synth"
)

// lowestPitchHz bounds the default AMDF lag range to one period of this
// frequency.
const lowestPitchHz = 20

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", errUsage, fs.Name(), err)
	}
	return nil
}

func (a *app) read(ctx context.Context, args []string) error {
	fs := newFlagSet("read")
	path := fs.String("p", "", "path to the WAV file")
	ms := fs.Uint("t", 1000, "read samples up to this many milliseconds")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: read: -p is required", errUsage)
	}

	w, err := wav.ReadFile(*path)
	if err != nil {
		return err
	}
	logHeader(ctx, *path, w)

	samples, err := w.SamplesUntil(time.Duration(*ms) * time.Millisecond)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "read samples", "path", *path, "ms", *ms, "count", len(samples))

	for _, s := range samples {
		if _, err := fmt.Fprintln(a.out, s); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}

func (a *app) writeSine(ctx context.Context, args []string) error {
	fs := newFlagSet("write-sine")
	path := fs.String("o", "", "output WAV path")
	freq := fs.Float64("f", 0, "frequency in Hz")
	amplitude := fs.Float64("a", a.cfg.Amplitude, "amplitude in [0, 1]")
	seconds := fs.Int("d", a.cfg.Duration, "duration in whole seconds")
	rate := fs.Int("r", a.cfg.SampleRate, "sample rate in Hz")
	channels := fs.Int("c", a.cfg.Channels, "channel count")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: write-sine: -o is required", errUsage)
	}
	if *seconds <= 0 || *rate <= 0 || *channels <= 0 ||
		int64(*rate) > math.MaxUint32 || *channels > math.MaxUint16 || int64(*seconds) > math.MaxUint32 {
		return fmt.Errorf("%w: write-sine: -d, -r and -c must be positive", errUsage)
	}

	cfg, err := wav.NewAudioConfig(pcm.SampleSize, uint16(*channels), uint32(*rate), uint32(*seconds))
	if err != nil {
		return err
	}

	samples, err := synth.Sine(cfg, *freq, *amplitude)
	if err != nil {
		return err
	}

	if err := wav.WriteFile(*path, cfg, samples); err != nil {
		return err
	}

	slog.InfoContext(ctx, "wrote sine",
		"path", *path,
		"frequency_hz", *freq,
		"amplitude", *amplitude,
		"sample_rate", cfg.SampleRate,
		"channels", cfg.Channels,
		"duration", cfg.Duration,
	)

	return nil
}

func (a *app) info(ctx context.Context, args []string) error {
	fs := newFlagSet("info")
	path := fs.String("p", "", "path to the WAV file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("%w: info: -p is required", errUsage)
	}

	w, err := wav.ReadFile(*path)
	if err != nil {
		return err
	}
	logHeader(ctx, *path, w)

	h := w.Header
	cfg := w.Config()
	_, err = fmt.Fprintf(a.out,
		"riff:        %s size=%d format=%s\n"+
			"fmt:         %s size=%d audio_format=%d\n"+
			"channels:    %d\n"+
			"sample_rate: %d\n"+
			"byte_rate:   %d\n"+
			"block_align: %d\n"+
			"bits:        %d\n"+
			"data:        %s size=%d\n"+
			"samples:     %d\n"+
			"duration:    %s\n",
		h.Riff.ID, h.Riff.ChunkSize, h.Riff.Format,
		h.Format.ID, h.Format.Size, h.Format.AudioFormat,
		h.Format.Channels,
		h.Format.SampleRate,
		h.Format.ByteRate,
		h.Format.BlockAlign,
		h.Format.BitsPerSample,
		h.Data.ID, h.Data.Size,
		cfg.SampleCount,
		cfg.Duration,
	)
	if err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

func logHeader(ctx context.Context, path string, w *wav.WaveFile) {
	cfg := w.Config()
	slog.InfoContext(ctx, "wav header",
		"path", path,
		"channels", cfg.Channels,
		"sample_rate", cfg.SampleRate,
		"bits_per_sample", cfg.BitsPerSample,
		"samples", cfg.SampleCount,
		"duration", cfg.Duration,
	)
}

type analysisResult struct {
	path     string
	analysis wavemaker.Analysis
	noPitch  bool
}

func (a *app) analyze(ctx context.Context, args []string) error {
	fs := newFlagSet("analyze")
	workers := fs.Int("workers", a.cfg.Workers, "AMDF workers per file")
	maxLag := fs.Int("max-lag", 0, "largest AMDF lag; 0 covers periods down to 20 Hz")
	rate := fs.Int("rate", 0, "resample to this rate before analysis; 0 keeps the file rate")
	timeout := fs.Duration("timeout", 0, "abort the analysis after this long; 0 disables")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return fmt.Errorf("%w: analyze: no input files", errUsage)
	}
	if *rate < 0 || *maxLag < 0 {
		return fmt.Errorf("%w: analyze: -rate and -max-lag must not be negative", errUsage)
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	results := make([]analysisResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		g.Go(func() error {
			res, err := a.analyzeFile(gctx, path, *rate, *maxLag, *workers)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		var err error
		if r.noPitch {
			_, err = fmt.Fprintf(a.out, "%s\tno discernible pitch\n", r.path)
		} else {
			_, err = fmt.Fprintf(a.out, "%s\t%.2f Hz\tperiod=%d\trate=%d\n",
				r.path, r.analysis.FrequencyHz, r.analysis.Period, r.analysis.SampleRate)
		}
		if err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	return nil
}

func (a *app) analyzeFile(ctx context.Context, path string, rate, maxLag, workers int) (res analysisResult, err error) {
	res.path = path

	ctx, span := otel.Tracer().Start(ctx, "analyze.file")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("path", path))

	dec, ok := a.registry.ForPath(path)
	if !ok {
		return res, fmt.Errorf("no decoder for %q, known formats %v", path, a.registry.Formats())
	}
	format := formatOf(path)

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return res, err
	}
	defer src.Close()

	if maxLag == 0 {
		effective := rate
		if effective == 0 {
			effective = src.SampleRate()
		}
		maxLag = max(1, effective/lowestPitchHz)
	}

	slog.DebugContext(ctx, "analysing",
		"path", path,
		"format", format,
		"sample_rate", src.SampleRate(),
		"channels", src.Channels(),
		"max_lag", maxLag,
	)

	res.analysis, err = wavemaker.AnalyzeSource(ctx, src, rate,
		pitch.WithWorkers(workers),
		pitch.WithMaxLag(maxLag),
	)
	if errors.Is(err, pitch.ErrNoPeriodFound) {
		res.noPitch = true
		a.metrics.RecordNoPitch(ctx, format)
		slog.InfoContext(ctx, "no discernible pitch", "path", path, "samples", res.analysis.Samples)
		return res, nil
	}
	if err != nil {
		return res, err
	}

	a.metrics.RecordFrequency(ctx, format, res.analysis.FrequencyHz)
	span.SetAttributes(
		attribute.Float64("frequency_hz", res.analysis.FrequencyHz),
		attribute.Int("period", res.analysis.Period),
	)
	slog.InfoContext(ctx, "pitch estimated",
		"path", path,
		"frequency_hz", res.analysis.FrequencyHz,
		"period", res.analysis.Period,
		"sample_rate", res.analysis.SampleRate,
	)

	return res, nil
}
