package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	broadvoice "github.com/signalwire/freeswitch-sub037"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-out", outPath, "-duration", "0.01", "-freq", "220", "-rate", "16000"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	fi, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	if fi.Size() <= 44 {
		t.Fatalf("unexpected small wav file size: %d", fi.Size())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	buf, err := broadvoice.ReadWAV(f)
	if err != nil {
		t.Fatalf("generated file is not a valid wav: %v", err)
	}

	if buf.Format.SampleRate != 16000 {
		t.Fatalf("sample rate=%d, want 16000", buf.Format.SampleRate)
	}

	if buf.Format.NumChannels != 1 {
		t.Fatalf("channels=%d, want 1", buf.Format.NumChannels)
	}

	// 0.01 sec * 16000 Hz = 160 samples
	if len(buf.Data) != 160 {
		t.Fatalf("expected 160 samples, got %d", len(buf.Data))
	}
}

func TestRunAmplitude(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "quiet.wav")

	err := run([]string{"-out", outPath, "-duration", "0.05", "-amp", "0.25"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	buf, err := broadvoice.ReadWAV(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	peak := 0
	for _, v := range buf.Data {
		peak = max(peak, v, -v)
	}

	if peak < 8000 || peak > 8192 {
		t.Fatalf("peak=%d, want about 8192", peak)
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-duration", "not-a-number"})
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunUnsupportedRate(t *testing.T) {
	err := run([]string{"-out", filepath.Join(t.TempDir(), "x.wav"), "-rate", "44100"})
	if !errors.Is(err, broadvoice.ErrSampleRate) {
		t.Fatalf("err=%v, want ErrSampleRate", err)
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-out", "/nonexistent/dir/file.wav", "-duration", "0.001"})
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}
