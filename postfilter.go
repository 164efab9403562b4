package broadvoice

import "math"

const (
	pfSearch    = 4    // lags searched either side of the decoded lag
	pfSmooth    = 0.75 // weight of the previous smoothed tap
	pfSmoothTh  = 0.55 // smoothed tap needed to enable the filter
	pfInstantTh = 0.8  // instantaneous tap needed to enable the filter
	pfStrength  = 0.5
	pfFade      = 20 // cross-fade length in samples
)

// postfilter is the adaptive long-term postfilter. Its history holds the
// unfiltered decoded speech.
type postfilter struct {
	p    *codecParams
	hist []float64

	ma       float64
	prevGain float64
	prevTap  float64
	prevLag  int
}

func newPostfilter(p *codecParams) *postfilter {
	pf := &postfilter{
		p:    p,
		hist: make([]float64, p.maxPitch+1+p.frameSize),
	}
	pf.reset()

	return pf
}

func (pf *postfilter) reset() {
	clear(pf.hist)
	pf.ma = 0
	pf.prevGain = 1
	pf.prevTap = 0
	pf.prevLag = pf.p.minPitch
}

// apply filters one frame of decoded speech sq into out, using the decoded
// pitch lag pp as the search centre.
func (pf *postfilter) apply(sq, out []float64, pp int) {
	p := pf.p
	H := p.maxPitch + 1
	F := p.frameSize
	copy(pf.hist[H:], sq)

	x := pf.hist[H : H+F]
	lo := max(p.minPitch, pp-pfSearch)
	hi := min(p.maxPitch, pp+pfSearch)

	var e float64
	for n := range F {
		v := pf.hist[H-lo+n]
		e += v * v
	}

	lag := pp
	bestCor, bestEnergy := 0.0, 0.0
	found := false

	for k := lo; k <= hi; k++ {
		if k > lo {
			in := pf.hist[H-k]
			drop := pf.hist[H+F-k]
			e = max(0, e+in*in-drop*drop)
		}

		var c float64
		for n := range F {
			c += x[n] * pf.hist[H-k+n]
		}

		if c <= 0 || e <= 0 {
			continue
		}
		if !found || c*c*bestEnergy > bestCor*bestCor*e {
			lag, bestCor, bestEnergy = k, c, e
			found = true
		}
	}

	var tap float64
	if found {
		tap = min(1, bestCor/bestEnergy)
	}

	pf.ma = pfSmooth*pf.ma + (1-pfSmooth)*tap
	if pf.ma > pfSmoothTh && tap > pfInstantTh {
		tap *= pfStrength
	} else {
		tap = 0
	}

	// energy preserving gain
	var e0, e1 float64
	for n := range F {
		v := x[n] + tap*pf.hist[H-lag+n]
		e0 += x[n] * x[n]
		e1 += v * v
	}
	gain := 1.0
	if e1 > 0 {
		gain = math.Sqrt(e0 / e1)
	}

	for n := range F {
		cur := gain * (x[n] + tap*pf.hist[H-lag+n])
		if n < pfFade {
			w := float64(n+1) / float64(pfFade+1)
			old := pf.prevGain * (x[n] + pf.prevTap*pf.hist[H-pf.prevLag+n])
			cur = (1-w)*old + w*cur
		}
		out[n] = cur
	}

	pf.prevGain = gain
	pf.prevTap = tap
	pf.prevLag = lag

	shiftHistory(pf.hist, F)
}
