// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"
)

// ReadFile reads and decodes the WAV file at path.
func ReadFile(path string) (*WaveFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	w, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return w, nil
}

// WriteFile encodes samples with cfg and writes them to path, replacing
// any existing file.
func WriteFile(path string, cfg AudioConfig, samples []int16) error {
	w := NewWaveFile(cfg)
	if err := w.SetSamples(samples); err != nil {
		return err
	}

	b, err := w.Bytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
