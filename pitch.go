package broadvoice

const (
	maxPeaks = 7

	// Thresholds of the coarse pitch decision, as fractions of the best
	// normalized correlation.
	pitchHarmonicNear  = 0.5  // harmonic candidate close to the previous lag
	pitchHarmonicFar   = 0.7  // harmonic candidate elsewhere
	pitchPrevAbove     = 0.43 // near previous lag, global best at a larger lag
	pitchPrevBelow     = 0.78 // near previous lag, global best at a smaller lag
	pitchSubMultiple   = 0.8
	pitchPrevDeviation = 0.25
)

// Required strength of the peak at the m-th multiple (m = 2, 3, ...) of a
// harmonic candidate.
var pitchMultipleThreshold = [...]float64{0.6, 0.55, 0.5, 0.45, 0.4, 0.35}

// pitchAnalyzer carries the coarse pitch search state between frames.
type pitchAnalyzer struct {
	p *codecParams

	decimPole []float64 // low-pass all-pole memory
	decimZero []float64 // low-pass all-zero memory (all-pole outputs)
	xwd       []float64 // decimated weighted speech history
	filtered  []float64 // scratch, one frame
	lastLag   int

	cor    []float64
	energy []float64
}

func newPitchAnalyzer(p *codecParams) *pitchAnalyzer {
	pa := &pitchAnalyzer{
		p:         p,
		decimPole: make([]float64, len(p.decimDen)-1),
		decimZero: make([]float64, len(p.decimNum)-1),
		xwd:       make([]float64, p.pitchWinD+p.maxLagD+1),
		filtered:  make([]float64, p.frameSize),
		cor:       make([]float64, p.maxLagD+2),
		energy:    make([]float64, p.maxLagD+2),
	}
	pa.reset()

	return pa
}

func (pa *pitchAnalyzer) reset() {
	clear(pa.decimPole)
	clear(pa.decimZero)
	clear(pa.xwd)
	pa.lastLag = pa.p.minPitch
}

// decimate low-pass filters one frame of weighted speech and appends every
// decimation-th output sample to the decimated history.
func (pa *pitchAnalyzer) decimate(xw []float64) {
	p := pa.p
	y := pa.filtered

	allPoleFilter(p.decimDen, xw, y, pa.decimPole, true)

	n := p.frameSize / p.decimation
	copy(pa.xwd, pa.xwd[n:])
	out := pa.xwd[len(pa.xwd)-n:]

	order := len(p.decimNum) - 1
	zm := len(pa.decimZero)

	for i := range n {
		j := (i+1)*p.decimation - 1

		var acc float64
		for k := 0; k <= order; k++ {
			if t := j - k; t >= 0 {
				acc += p.decimNum[k] * y[t]
			} else {
				acc += p.decimNum[k] * pa.decimZero[zm+t]
			}
		}
		out[i] = acc
	}

	advanceMemory(pa.decimZero, y)
}

// coarse returns the open loop pitch estimate in full-rate samples,
// clamped to [minPitch, maxPitch].
func (pa *pitchAnalyzer) coarse(xw []float64) int {
	p := pa.p
	pa.decimate(xw)

	x := pa.xwd
	L := len(x)
	win := p.pitchWinD
	lo := p.minLagD - 1
	hi := p.maxLagD + 1

	// energy of the lagged window, updated by sliding
	var e float64
	for n := range win {
		v := x[L-win-lo+n]
		e += v * v
	}

	for k := lo; k <= hi; k++ {
		if k > lo {
			in := x[L-win-k]
			out := x[L-k]
			e += in*in - out*out
			if e < 0 {
				e = 0
			}
		}
		pa.energy[k] = e

		var c float64
		for n := range win {
			c += x[L-win+n] * x[L-win-k+n]
		}
		pa.cor[k] = c
	}

	var (
		peaks [maxPeaks]int
		np    int
	)

	for k := p.minLagD; k <= p.maxLagD && np < maxPeaks; k++ {
		if pa.cor[k] <= 0 {
			continue
		}

		c2 := pa.cor[k] * pa.cor[k]
		if c2*pa.energy[k-1] > signedSquare(pa.cor[k-1])*pa.energy[k] &&
			c2*pa.energy[k+1] > signedSquare(pa.cor[k+1])*pa.energy[k] {
			peaks[np] = k
			np++
		}
	}

	var lag int

	switch np {
	case 0:
		lag = p.minLagD * p.decimation
	case 1:
		lag = peaks[0] * p.decimation
	default:
		lag = pa.choosePeak(peaks[:np])
	}

	lag = max(p.minPitch, min(p.maxPitch, lag))
	pa.lastLag = lag

	return lag
}

func signedSquare(v float64) float64 {
	if v < 0 {
		return -v * v
	}

	return v * v
}

// pitchCandidate is an interpolated correlation peak.
type pitchCandidate struct {
	lag    int
	cor    float64
	energy float64
}

// ratio returns cor^2/energy, or 0 for an empty window.
func (c pitchCandidate) ratio() float64 {
	if c.energy <= 0 || c.cor <= 0 {
		return 0
	}

	return c.cor * c.cor / c.energy
}

// interpolate refines the decimated peak k to full-rate resolution by
// fitting a parabola to the correlation and a line to the energy on the
// side of the larger neighbour.
func (pa *pitchAnalyzer) interpolate(k int) pitchCandidate {
	decim := pa.p.decimation
	c0 := pa.cor[k]
	b := 0.5 * (pa.cor[k+1] - pa.cor[k-1])
	a := 0.5*(pa.cor[k+1]+pa.cor[k-1]) - c0

	best := pitchCandidate{lag: k * decim, cor: c0, energy: pa.energy[k]}

	side := 1
	if b < 0 {
		side = -1
	}

	for j := 1; j <= decim/2; j++ {
		t := float64(side*j) / float64(decim)
		ci := (a*t+b)*t + c0
		ei := pa.energy[k] + float64(j)/float64(decim)*(pa.energy[k+side]-pa.energy[k])

		cand := pitchCandidate{lag: k*decim + side*j, cor: ci, energy: ei}
		if ci > 0 && ci*ci*best.energy > best.cor*best.cor*ei {
			best = cand
		}
	}

	return best
}

// choosePeak applies the multi-peak decision: harmonic candidates first,
// then peaks near the previous lag, then sub-multiples of the global best,
// and finally the global best itself.
func (pa *pitchAnalyzer) choosePeak(peaks []int) int {
	decim := pa.p.decimation

	var cands [maxPeaks]pitchCandidate
	for i, k := range peaks {
		cands[i] = pa.interpolate(k)
	}
	c := cands[:len(peaks)]

	im := 0
	for i := range c {
		if c[i].ratio() > c[im].ratio() {
			im = i
		}
	}
	gmax := c[im].ratio()
	if gmax <= 0 {
		return c[im].lag
	}

	prev := pa.lastLag
	dev := max(decim, int(pitchPrevDeviation*float64(prev)))
	nearPrev := func(lag int) bool {
		return abs(lag-prev) <= dev
	}

	largest := c[len(c)-1].lag

	// harmonic candidates: every multiple up to the largest peak must have
	// a qualifying peak of its own
	for i := range c {
		if 2*c[i].lag > largest {
			break
		}

		th := pitchHarmonicFar
		if nearPrev(c[i].lag) {
			th = pitchHarmonicNear
		}
		if c[i].ratio() < th*gmax {
			continue
		}

		ok := true
		for m := 2; m*c[i].lag <= largest+decim; m++ {
			mth := pitchMultipleThreshold[min(m-2, len(pitchMultipleThreshold)-1)]
			found := false
			for j := i + 1; j < len(c); j++ {
				if abs(c[j].lag-m*c[i].lag) <= decim && c[j].ratio() >= mth*gmax {
					found = true
					break
				}
			}
			if !found {
				ok = false
				break
			}
		}

		if ok {
			return c[i].lag
		}
	}

	// peaks near the previous lag
	near := -1
	for i := range c {
		if i == im || !nearPrev(c[i].lag) {
			continue
		}

		th := pitchPrevBelow
		if c[im].lag > c[i].lag {
			th = pitchPrevAbove
		}
		if c[i].ratio() < th*gmax {
			continue
		}
		if near < 0 || c[i].ratio() > c[near].ratio() {
			near = i
		}
	}
	if near >= 0 && !nearPrev(c[im].lag) {
		return c[near].lag
	}

	// sub-multiples of the global best, smallest lag first
	minLag := pa.p.minLagD * decim
	for m := c[im].lag / minLag; m >= 2; m-- {
		target := c[im].lag / m
		for j := 0; j < im; j++ {
			if abs(c[j].lag-target) <= decim/2 && c[j].ratio() >= pitchSubMultiple*gmax {
				return c[j].lag
			}
		}
	}

	return c[im].lag
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// refinePitch searches full-rate lags around the coarse estimate cpp over
// the last frameSize samples of hist. It returns the lag and the single tap
// correlation to energy ratio clamped to [0, 1].
func refinePitch(p *codecParams, hist []float64, cpp int) (int, float64) {
	cpp = max(p.minPitch, min(p.maxPitch, cpp))
	lb := max(p.minPitch, cpp-(p.decimation-1))
	ub := min(p.maxPitch, cpp+(p.decimation-1))

	L := len(hist)
	win := p.frameSize
	x := hist[L-win:]

	var e float64
	for n := range win {
		v := hist[L-win-lb+n]
		e += v * v
	}

	bestLag := lb
	bestCor, bestEnergy := 0.0, 0.0
	found := false

	for k := lb; k <= ub; k++ {
		if k > lb {
			in := hist[L-win-k]
			out := hist[L-k]
			e += in*in - out*out
			if e < 0 {
				e = 0
			}
		}

		var c float64
		for n := range win {
			c += x[n] * hist[L-win-k+n]
		}

		if c <= 0 || e <= 0 {
			continue
		}

		if !found || c*c*bestEnergy > bestCor*bestCor*e {
			bestLag, bestCor, bestEnergy = k, c, e
			found = true
		}
	}

	if !found {
		return max(lb, min(ub, cpp)), 0
	}

	return bestLag, min(1, bestCor/bestEnergy)
}

// quantizePitchTaps picks the three-tap predictor for lag pp, covering lags
// pp-1, pp and pp+1, by maximizing the codebook inner product with the
// correlation terms of the last frameSize samples of hist.
func quantizePitchTaps(p *codecParams, hist []float64, pp int) (int, [3]float64) {
	L := len(hist)
	win := p.frameSize
	x := hist[L-win:]

	var r [9]float64
	for n := range win {
		x0 := hist[L-win+n-pp+1]
		x1 := hist[L-win+n-pp]
		x2 := hist[L-win+n-pp-1]

		r[0] += x[n] * x0
		r[1] += x[n] * x1
		r[2] += x[n] * x2
		r[3] += x0 * x0
		r[4] += x1 * x1
		r[5] += x2 * x2
		r[6] += x0 * x1
		r[7] += x1 * x2
		r[8] += x0 * x2
	}

	cb := p.pitchTapCB
	bestIdx := 0
	best := 0.0

	for j := 0; j*9 < len(cb); j++ {
		var s float64
		for i, v := range r {
			s += v * cb[j*9+i]
		}
		if j == 0 || s > best {
			best, bestIdx = s, j
		}
	}

	return bestIdx, pitchTaps(p, bestIdx)
}

// pitchTaps decodes a pitch tap codebook index.
func pitchTaps(p *codecParams, idx int) [3]float64 {
	row := p.pitchTapCB[idx*9 : idx*9+3]
	return [3]float64{0.5 * row[0], 0.5 * row[1], 0.5 * row[2]}
}
