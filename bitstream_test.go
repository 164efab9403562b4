package broadvoice

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestFrameBits(t *testing.T) {
	tests := []struct {
		v     Variant
		bits  int
		bytes int
	}{
		{BV16, 80, 10},
		{BV32, 160, 20},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			p, err := tt.v.params()
			if err != nil {
				t.Fatal(err)
			}

			if got := p.frameBits(); got != tt.bits {
				t.Fatalf("frameBits=%d, want %d", got, tt.bits)
			}

			if got := tt.v.FrameBytes(); got != tt.bytes {
				t.Fatalf("FrameBytes=%d, want %d", got, tt.bytes)
			}
		})
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()

			for range 200 {
				var in, out frameIndices

				for _, fld := range p.layout {
					*in.slot(fld) = rng.Intn(1 << fld.bits)
				}

				buf := make([]byte, p.frameBytes)
				packFrame(p, &in, buf)
				unpackFrame(p, buf, &out)

				if in != out {
					t.Fatalf("round trip mismatch:\n in=%+v\nout=%+v", in, out)
				}
			}
		})
	}
}

func TestPackUnpackDoNotAllocate(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()

			var in, out frameIndices
			in.excitation[3] = 5
			buf := make([]byte, p.frameBytes)

			allocs := testing.AllocsPerRun(100, func() {
				packFrame(p, &in, buf)
				unpackFrame(p, buf, &out)
			})

			if allocs != 0 {
				t.Fatalf("pack/unpack allocated %.1f times per frame", allocs)
			}
		})
	}
}

func TestPackLayoutMSBFirst(t *testing.T) {
	p, _ := BV16.params()

	var f frameIndices
	f.lsp[0] = 0x7f // first 7 bits set

	buf := make([]byte, p.frameBytes)
	packFrame(p, &f, buf)

	want := make([]byte, p.frameBytes)
	want[0] = 0xfe
	if !bytes.Equal(buf, want) {
		t.Fatalf("packed=%x, want %x", buf, want)
	}

	// last excitation vector occupies the final 5 bits
	f = frameIndices{}
	f.excitation[p.vectorsPerSubframe()-1] = 0x1f
	packFrame(p, &f, buf)

	want[0] = 0
	want[p.frameBytes-1] = 0x1f
	if !bytes.Equal(buf, want) {
		t.Fatalf("packed=%x, want %x", buf, want)
	}
}

func TestBitWriterPadsFinalByte(t *testing.T) {
	buf := []byte{0xff, 0xff}

	var w bitWriter
	w.init(buf)
	w.put(0x5, 3)
	w.flush()

	if buf[0] != 0xa0 {
		t.Fatalf("first byte=%#x, want 0xa0", buf[0])
	}

	var r bitReader
	r.init(buf[:1])
	if got := r.get(3); got != 5 {
		t.Fatalf("get=%d, want 5", got)
	}

	if got := r.get(8); got != 0 {
		t.Fatalf("reading past the end=%d, want 0", got)
	}
}
