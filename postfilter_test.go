package broadvoice

import (
	"math"
	"math/rand"
	"testing"
)

// periodicSignal returns n samples of white noise repeating every period
// samples.
func periodicSignal(rng *rand.Rand, period, n int) []float64 {
	cycle := make([]float64, period)
	for i := range cycle {
		cycle[i] = 1000 * rng.NormFloat64()
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = cycle[i%period]
	}

	return x
}

// runPostfilter feeds x frame by frame with decoded lag pp and returns the
// filtered output.
func runPostfilter(pf *postfilter, x []float64, pp int) []float64 {
	F := pf.p.frameSize
	out := make([]float64, len(x))
	for i := 0; i+F <= len(x); i += F {
		pf.apply(x[i:i+F], out[i:i+F], pp)
	}

	return out
}

func TestPostfilterLagSearch(t *testing.T) {
	p, _ := BV16.params()

	tests := []struct {
		name    string
		pp      int
		enabled bool
	}{
		{"exact lag", 50, true},
		{"lag 4 below", 46, true},
		{"lag 3 above", 53, true},
		{"lag outside the window", 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := newPostfilter(p)
			x := periodicSignal(rand.New(rand.NewSource(1)), 50, 20*p.frameSize)
			runPostfilter(pf, x, tt.pp)

			if !tt.enabled {
				if pf.prevTap != 0 {
					t.Fatalf("filter enabled with tap %f at lag %d", pf.prevTap, pf.prevLag)
				}

				return
			}

			if pf.prevLag != 50 {
				t.Fatalf("lag=%d, want 50", pf.prevLag)
			}

			if math.Abs(pf.prevTap-pfStrength) > 1e-9 {
				t.Fatalf("tap=%f, want %f", pf.prevTap, pfStrength)
			}
		})
	}
}

func TestPostfilterGate(t *testing.T) {
	p, _ := BV16.params()
	F := p.frameSize

	tests := []struct {
		name     string
		ma       float64
		periodic bool
		enabled  bool
	}{
		{"periodic but smoothed tap low", 0, true, false},
		{"smoothed tap high but frame aperiodic", 0.9, false, false},
		{"both above threshold", 0.9, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(2))
			pf := newPostfilter(p)

			// prime the history with the periodic signal
			x := periodicSignal(rng, 50, 11*F)
			runPostfilter(pf, x[:10*F], 50)

			frame := x[10*F:]
			if !tt.periodic {
				frame = make([]float64, F)
				for i := range frame {
					frame[i] = 1000 * rng.NormFloat64()
				}
			}

			pf.ma = tt.ma
			pf.apply(frame, make([]float64, F), 50)

			if enabled := pf.prevTap > 0; enabled != tt.enabled {
				t.Fatalf("enabled=%t (tap %f, smoothed %f), want %t", enabled, pf.prevTap, pf.ma, tt.enabled)
			}
		})
	}
}

func TestPostfilterPreservesPeriodicSignal(t *testing.T) {
	p, _ := BV16.params()
	F := p.frameSize

	pf := newPostfilter(p)
	x := periodicSignal(rand.New(rand.NewSource(3)), 50, 20*F)
	out := runPostfilter(pf, x, 50)

	if pf.prevTap == 0 {
		t.Fatal("filter not enabled on a periodic signal")
	}

	// x + tap*x scaled back to the input energy is x itself
	for n := 15 * F; n < len(x); n++ {
		if math.Abs(out[n]-x[n]) > 1e-6*1000 {
			t.Fatalf("sample %d: %f, want %f", n, out[n], x[n])
		}
	}
}

func TestPostfilterCrossFade(t *testing.T) {
	p, _ := BV16.params()
	F := p.frameSize
	rng := rand.New(rand.NewSource(4))

	sig := make([]float64, 11*F)
	for i := range sig {
		sig[i] = 1000 * rng.NormFloat64()
	}

	pf := newPostfilter(p)
	runPostfilter(pf, sig[:10*F], 50)

	// pretend the previous frame was filtered at lag 50
	pf.ma = 0
	pf.prevTap = pfStrength
	pf.prevLag = 50
	pf.prevGain = 1

	x := sig[10*F:]
	out := make([]float64, F)
	pf.apply(x, out, 50)

	if pf.prevTap != 0 {
		t.Fatalf("filter enabled on noise with tap %f", pf.prevTap)
	}

	for n := range F {
		want := x[n]
		if n < pfFade {
			w := float64(n+1) / float64(pfFade+1)
			old := x[n] + pfStrength*sig[10*F+n-50]
			want = (1-w)*old + w*x[n]
		}

		if math.Abs(out[n]-want) > 1e-9 {
			t.Fatalf("sample %d: %f, want %f", n, out[n], want)
		}
	}
}
