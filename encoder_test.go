package broadvoice

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

// tone returns n samples of a two-component test signal at the variant's
// sample rate.
func tone(v Variant, n int) []int16 {
	rate := float64(v.SampleRate())
	pcm := make([]int16, n)
	for i := range pcm {
		x := float64(i) / rate
		pcm[i] = int16(6000*math.Sin(2*math.Pi*200*x) + 2000*math.Sin(2*math.Pi*700*x+1))
	}

	return pcm
}

func encodeAll(t *testing.T, enc *Encoder, pcm []int16) []byte {
	t.Helper()

	v := enc.Variant()
	frames := len(pcm) / v.FrameSize()
	out := make([]byte, frames*v.FrameBytes())

	for i := range frames {
		n, err := enc.Encode(out[i*v.FrameBytes():], pcm[i*v.FrameSize():(i+1)*v.FrameSize()])
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}

		if n != v.FrameBytes() {
			t.Fatalf("frame %d: wrote %d bytes, want %d", i, n, v.FrameBytes())
		}
	}

	return out
}

func TestNewEncoderUnknownVariant(t *testing.T) {
	_, err := NewEncoder(Variant(7))
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err=%v, want ErrUnknownVariant", err)
	}
}

func TestEncodeFrameSize(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			enc, err := NewEncoder(v)
			if err != nil {
				t.Fatal(err)
			}

			dst := make([]byte, v.FrameBytes())

			if _, err := enc.Encode(dst, make([]int16, v.FrameSize()-1)); !errors.Is(err, ErrFrameSize) {
				t.Fatalf("short frame: err=%v, want ErrFrameSize", err)
			}

			if _, err := enc.Encode(dst[:v.FrameBytes()-1], make([]int16, v.FrameSize())); !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("short dst: err=%v, want ErrShortBuffer", err)
			}

			n, err := enc.Encode(dst, make([]int16, v.FrameSize()))
			if err != nil || n != v.FrameBytes() {
				t.Fatalf("Encode=(%d, %v), want (%d, nil)", n, err, v.FrameBytes())
			}
		})
	}
}

func TestEncoderClose(t *testing.T) {
	enc, err := NewEncoder(BV16)
	if err != nil {
		t.Fatal(err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := enc.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("second Close: err=%v, want ErrClosed", err)
	}

	_, err = enc.Encode(make([]byte, 10), make([]int16, 40))
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("Encode after Close: err=%v, want ErrClosed", err)
	}
}

func TestEncoderDeterminism(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			pcm := tone(v, 60*v.FrameSize())

			a, _ := NewEncoder(v)
			b, _ := NewEncoder(v)

			outA := encodeAll(t, a, pcm)
			outB := encodeAll(t, b, pcm)
			if !bytes.Equal(outA, outB) {
				t.Fatal("identical encoders produced different bitstreams")
			}

			// Reset restores the initial state
			a.Reset()
			if again := encodeAll(t, a, pcm); !bytes.Equal(again, outA) {
				t.Fatal("bitstream after Reset differs")
			}
		})
	}
}

func TestEncodePitchLagInRange(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()
			enc, _ := NewEncoder(v)
			packed := encodeAll(t, enc, tone(v, 50*v.FrameSize()))

			for i := 0; i < len(packed); i += p.frameBytes {
				var f frameIndices
				unpackFrame(p, packed[i:], &f)

				lag := f.pitchLag + p.minPitch
				if lag < p.minPitch || lag > p.maxPitch {
					t.Fatalf("frame %d: lag %d outside [%d, %d]", i/p.frameBytes, lag, p.minPitch, p.maxPitch)
				}
			}
		})
	}
}

func TestEncodeSilenceNarrowband(t *testing.T) {
	p, _ := BV16.params()

	enc, _ := NewEncoder(BV16)
	counter := DiagnosticCounter{}
	enc.Diagnostics = counter.Handle

	dec, _ := NewDecoder(BV16)
	dec.Diagnostics = counter.Handle

	silence := make([]int16, p.frameSize)
	packed := make([]byte, p.frameBytes)
	out := make([]int16, p.frameSize)
	level := dec.gain.level.level

	for frame := range 40 {
		if _, err := enc.Encode(packed, silence); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}

		var f frameIndices
		unpackFrame(p, packed, &f)
		if f.gain[0] != p.gainOrder[0] {
			t.Fatalf("frame %d: gain index %d, want the lowest entry %d", frame, f.gain[0], p.gainOrder[0])
		}

		if _, err := dec.Decode(out, packed); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}

		for i, s := range out {
			if s > 256 || s < -256 {
				t.Fatalf("frame %d sample %d: %d is not near silence", frame, i, s)
			}
		}

		if l := dec.gain.level.level; l > level {
			t.Fatalf("frame %d: level rose from %f to %f", frame, level, l)
		} else {
			level = l
		}
	}

	if counter[DiagGainLimit] != 0 {
		t.Fatalf("%d gain limit hits on silence", counter[DiagGainLimit])
	}

	if counter[DiagLevinsonFallback] != 40 {
		t.Fatalf("%d Levinson fallbacks, want one per silent frame", counter[DiagLevinsonFallback])
	}
}
