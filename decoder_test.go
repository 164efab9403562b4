package broadvoice

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
)

func decodeAll(t *testing.T, dec *Decoder, packed []byte) []int16 {
	t.Helper()

	v := dec.Variant()
	out := make([]int16, len(packed)/v.FrameBytes()*v.FrameSize())

	n, err := dec.Decode(out, packed)
	if err != nil {
		t.Fatal(err)
	}

	if n != len(out) {
		t.Fatalf("decoded %d samples, want %d", n, len(out))
	}

	return out
}

func rms(x []int16) float64 {
	var e float64
	for _, v := range x {
		e += float64(v) * float64(v)
	}

	return math.Sqrt(e / float64(len(x)))
}

func maxDelta(x []int16) int {
	d := 0
	for i := 1; i < len(x); i++ {
		d = max(d, abs(int(x[i])-int(x[i-1])))
	}

	return d
}

func TestNewDecoderUnknownVariant(t *testing.T) {
	_, err := NewDecoder(0)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("err=%v, want ErrUnknownVariant", err)
	}
}

func TestDecodeFrameCount(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			dec, _ := NewDecoder(v)

			// three frames plus a partial one
			packed := make([]byte, 3*v.FrameBytes()+v.FrameBytes()/2)
			dst := make([]int16, 4*v.FrameSize())

			n, err := dec.Decode(dst, packed)
			if err != nil {
				t.Fatal(err)
			}

			if n != 3*v.FrameSize() {
				t.Fatalf("Decode=%d samples, want %d", n, 3*v.FrameSize())
			}

			if _, err := dec.Decode(dst[:2*v.FrameSize()], packed); !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("short dst: err=%v, want ErrShortBuffer", err)
			}

			n, err = dec.FillIn(dst)
			if err != nil || n != v.FrameSize() {
				t.Fatalf("FillIn=(%d, %v), want (%d, nil)", n, err, v.FrameSize())
			}

			if _, err := dec.FillIn(dst[:v.FrameSize()-1]); !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("short FillIn dst: err=%v, want ErrShortBuffer", err)
			}
		})
	}
}

func TestDecoderClose(t *testing.T) {
	dec, _ := NewDecoder(BV32)

	if err := dec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := dec.Decode(make([]int16, 80), make([]byte, 20)); !errors.Is(err, ErrClosed) {
		t.Fatalf("Decode after Close: err=%v, want ErrClosed", err)
	}

	if _, err := dec.FillIn(make([]int16, 80)); !errors.Is(err, ErrClosed) {
		t.Fatalf("FillIn after Close: err=%v, want ErrClosed", err)
	}

	if err := dec.Close(); !errors.Is(err, ErrClosed) {
		t.Fatalf("second Close: err=%v, want ErrClosed", err)
	}
}

func TestDecodeArbitraryBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			dec, _ := NewDecoder(v)
			packed := make([]byte, 200*v.FrameBytes())
			rng.Read(packed)

			// every index combination decodes without panicking
			out := decodeAll(t, dec, packed)
			if len(out) != 200*v.FrameSize() {
				t.Fatalf("decoded %d samples", len(out))
			}
		})
	}
}

func TestRoundTripLevel(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			pcm := tone(v, 100*v.FrameSize())

			enc, _ := NewEncoder(v)
			dec, _ := NewDecoder(v)
			out := decodeAll(t, dec, encodeAll(t, enc, pcm))

			// skip the start-up frames
			skip := 25 * v.FrameSize()
			in, got := rms(pcm[skip:]), rms(out[skip:])
			if got < 0.05*in || got > 20*in {
				t.Fatalf("decoded rms %f, input rms %f", got, in)
			}
		})
	}
}

func TestDecoderDeterminism(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			enc, _ := NewEncoder(v)
			packed := encodeAll(t, enc, tone(v, 40*v.FrameSize()))

			a, _ := NewDecoder(v)
			b, _ := NewDecoder(v)
			outA := decodeAll(t, a, packed)
			outB := decodeAll(t, b, packed)

			if !slices.Equal(outA, outB) {
				t.Fatal("identical decoders produced different PCM")
			}

			a.Reset()
			if again := decodeAll(t, a, packed); !slices.Equal(again, outA) {
				t.Fatal("PCM after Reset differs")
			}
		})
	}
}

func TestConcealmentContinuity(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			fs, fb := v.FrameSize(), v.FrameBytes()

			enc, _ := NewEncoder(v)
			packed := encodeAll(t, enc, tone(v, 60*fs))

			clean, _ := NewDecoder(v)
			ref := decodeAll(t, clean, packed)
			bound := max(4*maxDelta(ref), 4096)

			lossy, _ := NewDecoder(v)
			counter := DiagnosticCounter{}
			lossy.Diagnostics = counter.Handle

			out := make([]int16, 60*fs)
			for i := range 60 {
				dst := out[i*fs : (i+1)*fs]

				var err error
				if i >= 30 && i < 33 {
					_, err = lossy.FillIn(dst)
				} else {
					_, err = lossy.Decode(dst, packed[i*fb:(i+1)*fb])
				}

				if err != nil {
					t.Fatalf("frame %d: %v", i, err)
				}
			}

			if counter[DiagFrameErased] != 3 {
				t.Fatalf("%d erased frame events, want 3", counter[DiagFrameErased])
			}

			// from the last good frame before the loss through recovery
			if d := maxDelta(out[29*fs : 45*fs]); d > bound {
				t.Fatalf("max sample delta %d around the erasure exceeds %d", d, bound)
			}
		})
	}
}

func TestConcealmentFadesOut(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			fs := v.FrameSize()
			rng := rand.New(rand.NewSource(21))

			pcm := make([]int16, 40*fs)
			for i := range pcm {
				pcm[i] = int16(rng.NormFloat64() * 3000)
			}

			enc, _ := NewEncoder(v)
			dec, _ := NewDecoder(v)
			decodeAll(t, dec, encodeAll(t, enc, pcm))

			frame := make([]int16, fs)
			var first, last float64
			for i := range plcHoldFrames + plcDecayFrames + 20 {
				if _, err := dec.FillIn(frame); err != nil {
					t.Fatal(err)
				}

				switch i {
				case 0:
					first = rms(frame)
				case plcHoldFrames + plcDecayFrames + 19:
					last = rms(frame)
				}
			}

			if first == 0 {
				t.Fatal("first concealed frame is silent")
			}

			if last > 0.1*first {
				t.Fatalf("concealment did not fade: first rms %f, last rms %f", first, last)
			}
		})
	}
}

func TestConcealerAttenuation(t *testing.T) {
	p, _ := BV16.params()
	c := newConcealer(p)

	tests := []struct {
		erasures int
		want     float64
	}{
		{1, 1},
		{plcHoldFrames, 1},
		{plcHoldFrames + plcDecayFrames/2, 0.5},
		{plcHoldFrames + plcDecayFrames, 0},
		{plcHoldFrames + 2*plcDecayFrames, 0},
	}

	for _, tt := range tests {
		c.erasures = tt.erasures
		if got := c.attenuation(); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("attenuation(%d)=%f, want %f", tt.erasures, got, tt.want)
		}
	}
}

func TestConcealerRandomSequence(t *testing.T) {
	p, _ := BV16.params()
	a := newConcealer(p)
	b := newConcealer(p)

	for range 1000 {
		x := a.random()
		if x < -1 || x >= 1 {
			t.Fatalf("random value %f outside [-1, 1)", x)
		}

		if y := b.random(); x != y {
			t.Fatal("generators with the same seed diverged")
		}
	}
}

func TestDecodedLSPInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()
			dec, _ := NewDecoder(v)

			packed := make([]byte, p.frameBytes)
			out := make([]int16, p.frameSize)

			for frame := range 2000 {
				rng.Read(packed)
				if _, err := dec.Decode(out, packed); err != nil {
					t.Fatal(err)
				}

				lsp := dec.lastLSP
				if lsp[0] < lspMin-1e-12 || lsp[lpcOrder-1] > lspMax+1e-12 {
					t.Fatalf("frame %d: LSP %v outside [%g, %g]", frame, lsp, lspMin, lspMax)
				}

				for i := 1; i < lpcOrder; i++ {
					if lsp[i]-lsp[i-1] < p.lspMinSpacing-1e-12 {
						t.Fatalf("frame %d: LSP %d and %d closer than %g: %v", frame, i-1, i, p.lspMinSpacing, lsp)
					}
				}
			}
		})
	}
}
