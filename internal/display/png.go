package display

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSink writes every frame to the same PNG file, for headless hosts and
// for previewing layouts without a panel.
type PNGSink struct {
	Path string
}

var _ Sink = (*PNGSink)(nil)

func (s *PNGSink) Push(frame *Buffer) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

func (s *PNGSink) Close() error {
	return nil
}
