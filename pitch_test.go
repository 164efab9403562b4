package broadvoice

import (
	"math"
	"math/rand"
	"testing"
)

func periodic(n, period int) float64 {
	ph := 2 * math.Pi * float64(n) / float64(period)
	return 1000*math.Sin(ph) + 500*math.Sin(2*ph+0.3)
}

func TestCoarsePitchPeriodicSignal(t *testing.T) {
	p, _ := BV16.params()
	pa := newPitchAnalyzer(p)

	const period = 40

	xw := make([]float64, p.frameSize)

	var lag int
	for frame := range 12 {
		for n := range xw {
			xw[n] = periodic(frame*p.frameSize+n, period)
		}
		lag = pa.coarse(xw)
	}

	if abs(lag-period) > 2 {
		t.Fatalf("coarse lag=%d, want %d±2", lag, period)
	}
}

func TestCoarsePitchBounds(t *testing.T) {
	for _, v := range []Variant{BV16, BV32} {
		t.Run(v.String(), func(t *testing.T) {
			p, _ := v.params()
			pa := newPitchAnalyzer(p)
			rng := rand.New(rand.NewSource(5))
			xw := make([]float64, p.frameSize)

			for range 200 {
				for n := range xw {
					xw[n] = rng.NormFloat64() * 3000
				}

				lag := pa.coarse(xw)
				if lag < p.minPitch || lag > p.maxPitch {
					t.Fatalf("lag %d outside [%d, %d]", lag, p.minPitch, p.maxPitch)
				}
			}
		})
	}
}

func TestRefinePitch(t *testing.T) {
	p, _ := BV16.params()
	hist := make([]float64, p.ltHistory()+p.frameSize)

	const period = 40
	for n := range hist {
		hist[n] = periodic(n, period)
	}

	for _, cpp := range []int{38, 40, 42} {
		lag, ratio := refinePitch(p, hist, cpp)
		if lag != period {
			t.Fatalf("refinePitch(%d)=%d, want %d", cpp, lag, period)
		}

		if ratio < 0.99 || ratio > 1 {
			t.Fatalf("ratio=%f, want about 1", ratio)
		}
	}
}

func TestRefinePitchSilence(t *testing.T) {
	p, _ := BV32.params()
	hist := make([]float64, p.ltHistory()+p.frameSize)

	lag, ratio := refinePitch(p, hist, 1000)
	if lag < p.minPitch || lag > p.maxPitch {
		t.Fatalf("lag %d outside [%d, %d]", lag, p.minPitch, p.maxPitch)
	}

	if ratio != 0 {
		t.Fatalf("ratio=%f, want 0", ratio)
	}
}

func TestQuantizePitchTaps(t *testing.T) {
	p, _ := BV16.params()
	hist := make([]float64, p.ltHistory()+p.frameSize)

	const period = 40
	for n := range hist {
		hist[n] = periodic(n, period)
	}

	idx, taps := quantizePitchTaps(p, hist, period)
	if idx < 0 || idx >= 1<<p.pitchTapBits {
		t.Fatalf("index %d does not fit %d bits", idx, p.pitchTapBits)
	}

	if taps != pitchTaps(p, idx) {
		t.Fatalf("taps=%v, want codebook entry %v", taps, pitchTaps(p, idx))
	}

	// a perfectly periodic signal is predicted mostly by the centre tap
	if taps[1] < taps[0] || taps[1] < taps[2] {
		t.Fatalf("centre tap not dominant: %v", taps)
	}
}

// setPeaks loads the correlation state with isolated decimated peaks of the
// given normalized strength on a flat energy, so interpolation keeps every
// peak at k*decimation.
func setPeaks(pa *pitchAnalyzer, strength map[int]float64) []int {
	clear(pa.cor)
	for k := range pa.energy {
		pa.energy[k] = 1
	}

	var peaks []int
	for k := pa.p.minLagD; k <= pa.p.maxLagD; k++ {
		if r, ok := strength[k]; ok {
			pa.cor[k] = math.Sqrt(r)
			peaks = append(peaks, k)
		}
	}

	return peaks
}

func TestChoosePeak(t *testing.T) {
	tests := []struct {
		name    string
		peaks   map[int]float64 // decimated lag -> cor^2/energy
		lastLag int
		want    int
	}{
		{"global best", map[int]float64{10: 0.5, 20: 1}, 130, 80},
		{"harmonic candidate", map[int]float64{10: 0.8, 20: 1}, 130, 40},
		{"harmonic with a missing multiple", map[int]float64{10: 0.8, 15: 0.3, 25: 1}, 10, 100},
		{"weak harmonic far from previous lag", map[int]float64{10: 0.6, 20: 1}, 130, 80},
		{"weak harmonic near previous lag", map[int]float64{10: 0.6, 20: 1}, 40, 40},
		{"previous lag above best, weak", map[int]float64{10: 1, 30: 0.5}, 120, 40},
		{"previous lag above best, strong", map[int]float64{10: 1, 30: 0.8}, 120, 120},
		{"previous lag below best", map[int]float64{10: 0.5, 30: 1}, 40, 40},
		{"previous lag below best, too weak", map[int]float64{10: 0.4, 30: 1}, 40, 120},
		{"sub-multiple of best", map[int]float64{10: 0.85, 30: 1}, 10, 40},
		{"weak sub-multiple of best", map[int]float64{10: 0.75, 30: 1}, 10, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := BV16.params()
			pa := newPitchAnalyzer(p)
			pa.lastLag = tt.lastLag

			if got := pa.choosePeak(setPeaks(pa, tt.peaks)); got != tt.want {
				t.Fatalf("choosePeak=%d, want %d", got, tt.want)
			}
		})
	}
}
