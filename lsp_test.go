package broadvoice

import (
	"math"
	"math/rand"
	"testing"
)

func TestLSPRoundTrip(t *testing.T) {
	lsp := []float64{0.06, 0.13, 0.22, 0.3, 0.41, 0.52, 0.66, 0.8}

	var a [lpcOrder + 1]float64
	lspToLPC(lsp, a[:])

	var got, prev [lpcOrder]float64
	if !lpcToLSP(a[:], got[:], prev[:]) {
		t.Fatal("root search failed")
	}

	for i := range lsp {
		if math.Abs(got[i]-lsp[i]) > 2e-3 {
			t.Fatalf("lsp[%d]=%f, want %f", i, got[i], lsp[i])
		}
	}
}

func TestLPCToLSPFlatSpectrum(t *testing.T) {
	a := [lpcOrder + 1]float64{1}

	var got, prev [lpcOrder]float64
	if !lpcToLSP(a[:], got[:], prev[:]) {
		t.Fatal("root search failed")
	}

	var want [lpcOrder]float64
	defaultLSP(want[:])
	for i := range want {
		if math.Abs(got[i]-want[i]) > 2e-3 {
			t.Fatalf("lsp[%d]=%f, want %f", i, got[i], want[i])
		}
	}
}

func TestLPCToLSPFallback(t *testing.T) {
	// a predictor with roots outside the unit circle has no interlaced LSPs
	a := [lpcOrder + 1]float64{1, 0, 0, 0, 0, 0, 0, 0, 4}
	prev := [lpcOrder]float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}

	var got [lpcOrder]float64
	if lpcToLSP(a[:], got[:], prev[:]) {
		t.Skip("root search found all roots")
	}

	if got != prev {
		t.Fatalf("lsp=%v, want previous %v", got, prev)
	}
}

func TestStabilizeLSP(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, spacing := range []float64{bv16Params.lspMinSpacing, bv32Params.lspMinSpacing} {
		for range 500 {
			lsp := make([]float64, lpcOrder)
			for i := range lsp {
				lsp[i] = rng.Float64()*1.2 - 0.1
			}

			stabilizeLSP(lsp, spacing)

			if lsp[0] < lspMin-1e-12 || lsp[lpcOrder-1] > lspMax+1e-12 {
				t.Fatalf("lsp out of range: %v", lsp)
			}

			for i := 1; i < lpcOrder; i++ {
				if lsp[i]-lsp[i-1] < spacing-1e-12 {
					t.Fatalf("spacing %f violated at %d: %v", spacing, i, lsp)
				}
			}
		}
	}
}

func TestStabilityCheck(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want bool
	}{
		{"ordered", []float64{0.1, 0.2, 0.3}, true},
		{"equal", []float64{0.1, 0.1, 0.3}, true},
		{"negative", []float64{-0.01, 0.2, 0.3}, false},
		{"reversed", []float64{0.1, 0.3, 0.2}, false},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stabilityCheck(tt.x); got != tt.want {
				t.Fatalf("stabilityCheck(%v)=%t, want %t", tt.x, got, tt.want)
			}
		})
	}
}

func TestLSPQuantizerSync(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()
			rng := rand.New(rand.NewSource(3))

			var enc, dec lspPredictor
			enc.reset(p)
			dec.reset(p)

			var prev [lpcOrder]float64
			defaultLSP(prev[:])

			for frame := range 100 {
				var lsp [lpcOrder]float64
				for i := range lsp {
					lsp[i] = (float64(i) + 0.5 + 0.4*(rng.Float64()-0.5)) / lpcOrder
				}

				var lspq, got [lpcOrder]float64
				var idx [3]int
				fallback := enc.quantizeLSP(lsp[:], lspq[:], idx[:])

				for i := 1; i < lpcOrder; i++ {
					if lspq[i]-lspq[i-1] < p.lspMinSpacing-1e-12 {
						t.Fatalf("frame %d: quantized LSP not stable: %v", frame, lspq)
					}
				}

				ok := dec.decodeLSP(idx[:], prev[:], got[:])
				if fallback {
					// the decoder may legitimately diverge here
					dec.mem = enc.mem
					prev = lspq
					continue
				}

				if !ok {
					t.Fatalf("frame %d: decoder rejected a stable vector", frame)
				}

				if got != lspq {
					t.Fatalf("frame %d: decoder=%v, encoder=%v", frame, got, lspq)
				}

				if enc.mem != dec.mem {
					t.Fatalf("frame %d: predictor memories diverged", frame)
				}

				prev = got
			}
		})
	}
}

// poisonLSPMemory drives the MA estimate far below zero so that no second
// stage candidate passes the ordering check.
func poisonLSPMemory(lp *lspPredictor) {
	for k := range lp.mem {
		for i := range lp.mem[k] {
			lp.mem[k][i] = -10
		}
	}
}

func TestLSPQuantizerFallbackIndex(t *testing.T) {
	tests := []struct {
		v    Variant
		want int
	}{
		{BV16, 1},
		{BV32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			p, _ := tt.v.params()

			var lp lspPredictor
			lp.reset(p)
			poisonLSPMemory(&lp)

			var lsp, lspq [lpcOrder]float64
			defaultLSP(lsp[:])

			var idx [3]int
			if !lp.quantizeLSP(lsp[:], lspq[:], idx[:]) {
				t.Fatal("expected the stage-2 search to fall back")
			}

			if idx[1] != tt.want {
				t.Fatalf("stage-2 index=%d, want %d", idx[1], tt.want)
			}

			// the encoder output stays usable
			for i := 1; i < lpcOrder; i++ {
				if lspq[i]-lspq[i-1] < p.lspMinSpacing-1e-12 {
					t.Fatalf("quantized LSP not stable: %v", lspq)
				}
			}
		})
	}
}

func TestEncoderReportsLSPQuantizerFallback(t *testing.T) {
	tests := []struct {
		v    Variant
		want int
	}{
		{BV16, 1},
		{BV32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			p, _ := tt.v.params()

			enc, _ := NewEncoder(tt.v)
			counter := DiagnosticCounter{}
			enc.Diagnostics = counter.Handle
			poisonLSPMemory(&enc.lsp)

			packed := make([]byte, p.frameBytes)
			if _, err := enc.Encode(packed, tone(tt.v, p.frameSize)); err != nil {
				t.Fatal(err)
			}

			if counter[DiagLSPQuantizerFallback] != 1 {
				t.Fatalf("%d lsp_quantizer_fallback events, want 1", counter[DiagLSPQuantizerFallback])
			}

			var f frameIndices
			unpackFrame(p, packed, &f)
			if f.lsp[1] != tt.want {
				t.Fatalf("sent stage-2 index %d, want %d", f.lsp[1], tt.want)
			}
		})
	}
}

func TestDecoderRejectsUnorderedLSP(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()

			dec, _ := NewDecoder(v)
			counter := DiagnosticCounter{}
			dec.Diagnostics = counter.Handle
			poisonLSPMemory(&dec.lsp)

			before := dec.lsp
			var est [lpcOrder]float64
			before.estimate(est[:])

			prev := dec.lastLSP

			if _, err := dec.Decode(make([]int16, p.frameSize), make([]byte, p.frameBytes)); err != nil {
				t.Fatal(err)
			}

			if counter[DiagLSPStabilityFallback] != 1 {
				t.Fatalf("%d lsp_stability_fallback events, want 1", counter[DiagLSPStabilityFallback])
			}

			if dec.lastLSP != prev {
				t.Fatalf("decoder used %v, want the previous LSP %v", dec.lastLSP, prev)
			}

			// the predictor advances with the error of the substituted vector
			for i := range lpcOrder {
				if want := prev[i] - est[i]; dec.lsp.mem[0][i] != want {
					t.Fatalf("mem[0][%d]=%f, want %f", i, dec.lsp.mem[0][i], want)
				}
			}
		})
	}
}
