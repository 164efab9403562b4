// This tool encodes WAV files to raw BroadVoice bitstreams and decodes them
// back, optionally simulating frame loss to exercise concealment.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/sirupsen/logrus"

	broadvoice "github.com/signalwire/freeswitch-sub037"
)

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("bvcodec failed")
	}
}

type options struct {
	mode    string
	variant broadvoice.Variant
	in      string
	out     string
	format  string
	loss    float64
	seed    int64
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("bvcodec", flag.ContinueOnError)

	mode := flagSet.String("mode", "roundtrip", "encode, decode or roundtrip")
	variant := flagSet.String("variant", "bv16", "codec variant, bv16 or bv32")
	in := flagSet.String("in", "", "input file: WAV for encode/roundtrip, bitstream for decode")
	out := flagSet.String("out", "", "output file")
	format := flagSet.String("format", "", "decoded output format, wav or aiff (default from -out extension)")
	loss := flagSet.Float64("loss", 0, "percentage of frames dropped before decoding")
	seed := flagSet.Int64("seed", 1, "seed of the frame loss pattern")
	verbose := flagSet.Bool("v", false, "log codec diagnostics")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	opts := options{mode: *mode, in: *in, out: *out, format: *format, loss: *loss, seed: *seed}

	opts.variant, err = broadvoice.ParseVariant(*variant)
	if err != nil {
		return err
	}

	if opts.in == "" || opts.out == "" {
		return fmt.Errorf("%w: -in and -out are required", errUsage)
	}

	if opts.loss < 0 || opts.loss > 100 {
		return fmt.Errorf("%w: -loss %f out of range [0, 100]", errUsage, opts.loss)
	}

	if opts.format == "" {
		opts.format = "wav"
		if ext := strings.ToLower(filepath.Ext(opts.out)); ext == ".aif" || ext == ".aiff" {
			opts.format = "aiff"
		}
	}

	if opts.format != "wav" && opts.format != "aiff" {
		return fmt.Errorf("%w: unknown format %q", errUsage, opts.format)
	}

	counter := broadvoice.DiagnosticCounter{}
	diag := broadvoice.MultiDiagnostics(broadvoice.LogrusDiagnostics(logger), counter.Handle)

	entry := logger.WithFields(logrus.Fields{"mode": opts.mode, "variant": opts.variant.String()})

	var size int

	switch opts.mode {
	case "encode":
		size, err = encodeFile(opts, diag)
	case "decode":
		size, err = decodeFile(opts, diag)
	case "roundtrip":
		size, err = roundTripFile(opts, diag)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, opts.mode)
	}

	if err != nil {
		return err
	}

	fields := logrus.Fields{}
	for kind, n := range counter {
		fields[kind.String()] = n
	}

	fields["duration"] = opts.variant.Duration(size).String()

	entry.WithFields(fields).Infof("wrote %s", opts.out)

	return nil
}

func readInput(path string, v broadvoice.Variant) (*audio.IntBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer file.Close()

	buf, err := broadvoice.ReadWAV(file)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	if buf.Format.SampleRate != v.SampleRate() {
		return nil, fmt.Errorf("%w: %s is %d Hz, %s needs %d Hz", broadvoice.ErrSampleRate, path, buf.Format.SampleRate, v, v.SampleRate())
	}

	return buf, nil
}

func encode(buf *audio.IntBuffer, v broadvoice.Variant, diag broadvoice.DiagnosticHandler) ([]byte, error) {
	enc, err := broadvoice.NewEncoder(v)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	enc.Diagnostics = diag

	return enc.EncodeBuffer(buf)
}

// decode decodes packed frame by frame, dropping frames with probability
// loss percent and concealing them instead.
func decode(packed []byte, opts options, diag broadvoice.DiagnosticHandler) (*audio.IntBuffer, error) {
	v := opts.variant

	dec, err := broadvoice.NewDecoder(v)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	dec.Diagnostics = diag

	if opts.loss == 0 {
		return dec.DecodeBuffer(packed)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	frames := len(packed) / v.FrameBytes()
	pcm := make([]int16, frames*v.FrameSize())

	for i := range frames {
		dst := pcm[i*v.FrameSize() : (i+1)*v.FrameSize()]
		if rng.Float64()*100 < opts.loss {
			_, err = dec.FillIn(dst)
		} else {
			_, err = dec.Decode(dst, packed[i*v.FrameBytes():(i+1)*v.FrameBytes()])
		}

		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: v.SampleRate()},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}

func writeOutput(path, format string, buf *audio.IntBuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	if format == "aiff" {
		return broadvoice.WriteAIFF(file, buf)
	}

	return broadvoice.WriteWAV(file, buf)
}

// encodeFile, decodeFile and roundTripFile return the bitstream size in
// bytes.
func encodeFile(opts options, diag broadvoice.DiagnosticHandler) (int, error) {
	buf, err := readInput(opts.in, opts.variant)
	if err != nil {
		return 0, err
	}

	packed, err := encode(buf, opts.variant, diag)
	if err != nil {
		return 0, err
	}

	return len(packed), os.WriteFile(opts.out, packed, 0o644)
}

func decodeFile(opts options, diag broadvoice.DiagnosticHandler) (int, error) {
	packed, err := os.ReadFile(opts.in)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", opts.in, err)
	}

	if len(packed)%opts.variant.FrameBytes() != 0 {
		return 0, fmt.Errorf("%w: %d bytes is not a whole number of %s frames", broadvoice.ErrFrameSize, len(packed), opts.variant)
	}

	buf, err := decode(packed, opts, diag)
	if err != nil {
		return 0, err
	}

	return len(packed), writeOutput(opts.out, opts.format, buf)
}

func roundTripFile(opts options, diag broadvoice.DiagnosticHandler) (int, error) {
	in, err := readInput(opts.in, opts.variant)
	if err != nil {
		return 0, err
	}

	packed, err := encode(in, opts.variant, diag)
	if err != nil {
		return 0, err
	}

	buf, err := decode(packed, opts, diag)
	if err != nil {
		return 0, err
	}

	return len(packed), writeOutput(opts.out, opts.format, buf)
}
