package broadvoice

import "math"

const (
	levelMaxAlpha      = 4095.0 / 4096.0
	levelMinAlphaSlow  = 4095.0 / 4096.0
	levelMinAlphaFast  = 255.0 / 256.0
	levelMeanBeta      = 1023.0 / 1024.0
	levelAverageAlpha  = 511.0 / 512.0
	levelThresholdFrac = 0.2

	// BV32: consecutive limit hits after which the limit is suspended, and
	// for how many subframes.
	gainTrappedHits   = 50
	gainConvergeTimer = 100
)

// levelEstimator tracks the long-term signal level in the log2 domain.
type levelEstimator struct {
	level    float64
	max      float64
	min      float64
	mean     float64
	x1       float64
	minAlpha float64
}

func (l *levelEstimator) reset() {
	*l = levelEstimator{
		level:    13.5,
		max:      -100,
		min:      100,
		mean:     8,
		x1:       13.5,
		minAlpha: levelMinAlphaSlow,
	}
}

// update feeds one quantized log-gain. settled is false while the decoder
// is recovering from erasures or gain clipping; limited is set when the
// gain-change limit was just hit. The adaptive threshold is returned.
func (l *levelEstimator) update(lg float64, settled, limited bool) float64 {
	if lg > l.max {
		l.max = lg
	} else {
		l.max = l.mean + levelMaxAlpha*(l.max-l.mean)
	}

	if limited {
		l.minAlpha = levelMinAlphaFast
	}

	if lg < l.min && settled {
		l.min = lg
		l.minAlpha = levelMinAlphaSlow
	} else {
		l.min = l.mean + l.minAlpha*(l.min-l.mean)
	}

	l.mean = levelMeanBeta*l.mean + (1-levelMeanBeta)*0.5*(l.max+l.min)

	th := l.mean + levelThresholdFrac*(l.max-l.mean)
	if lg > th {
		l.x1 = levelAverageAlpha*l.x1 + (1-levelAverageAlpha)*lg
		l.level = levelAverageAlpha*l.level + (1-levelAverageAlpha)*l.x1
	}

	return th
}

// gainState is the log-gain predictor, clipping and level tracking shared
// by the encoder and the decoder so that both evolve identically on a clean
// channel.
type gainState struct {
	p     *codecParams
	mem   []float64 // quantized prediction errors, newest first
	prev  [2]float64
	level levelEstimator

	sinceLimit   int // gains since the limit was last hit
	sinceErasure int // good frames since the last erasure
	limitHits    int // consecutive limit hits
	convergence  int // remaining gains with the limit suspended

	threshold float64
}

func newGainState(p *codecParams) *gainState {
	g := &gainState{p: p, mem: make([]float64, p.gainOrderLen())}
	g.reset()

	return g
}

func (g *gainState) reset() {
	lowest := g.p.gainCB[g.p.gainOrder[0]]
	for i := range g.mem {
		g.mem[i] = lowest
	}

	g.prev = [2]float64{minLogGain, minLogGain}
	g.level.reset()
	g.sinceLimit = g.settleCount()
	g.sinceErasure = g.settleCount()
	g.limitHits = 0
	g.convergence = 0
	g.threshold = 0
}

func (g *gainState) settleCount() int {
	return g.p.gainOrderLen() + 1
}

// predict returns the MA estimate of the next log-gain.
func (g *gainState) predict() float64 {
	elg := g.p.gainMean
	for i, c := range g.p.gainPredictor {
		elg += c * g.mem[i]
	}

	return elg
}

// reconstruct maps a codebook index to a log-gain, moving up to the next
// higher entry when that lands closer to the correction threshold.
func (g *gainState) reconstruct(idx int, elg float64) float64 {
	lgq := g.p.gainCB[idx] + elg
	if lgq < g.p.gainThreshold {
		alt := g.p.gainNextHigher[idx] + elg
		if math.Abs(alt-g.p.gainThreshold) < math.Abs(lgq-g.p.gainThreshold) {
			lgq = alt
		}
	}

	return lgq
}

// limit returns the largest log-gain allowed for the current gain.
func (g *gainState) limit() float64 {
	n := int((g.prev[0] - g.level.level - gainLevelLow) * 0.5)
	k := int((g.prev[0] - g.prev[1] - gainDeltaLow) * 0.5)
	n = max(0, min(gainLimitRows-1, n))
	k = max(0, min(gainLimitCols-1, k))

	return g.prev[0] + g.p.gainLimit[n*gainLimitCols+k]
}

func (g *gainState) limitActive() bool {
	return g.convergence == 0
}

// enforce substitutes the previous gain when lgq exceeds lim. It reports
// whether the limit was hit.
func (g *gainState) enforce(lgq, lim float64) (float64, bool) {
	if !g.limitActive() {
		g.convergence--
		g.limitHits = 0
		g.bumpSinceLimit()

		return lgq, false
	}

	if lgq <= lim {
		g.limitHits = 0
		g.bumpSinceLimit()

		return lgq, false
	}

	g.sinceLimit = 0
	g.limitHits++
	if g.p.gainConvergence && g.limitHits > gainTrappedHits {
		g.convergence = gainConvergeTimer
		g.limitHits = 0
	}

	return g.prev[0], true
}

// levelThreshold returns the adaptive threshold the level estimator used
// for the most recent gain.
func (g *gainState) levelThreshold() float64 {
	return g.threshold
}

func (g *gainState) bumpSinceLimit() {
	if g.sinceLimit < g.settleCount() {
		g.sinceLimit++
	}
}

func (g *gainState) commit(lgq, elg float64, limited bool) {
	pushFront(g.mem, lgq-elg)
	g.prev[1] = g.prev[0]
	g.prev[0] = lgq

	settled := g.sinceErasure >= g.settleCount() && g.sinceLimit >= g.settleCount()
	g.threshold = g.level.update(lgq, settled, limited)
}

// quantize codes the target log-gain lg. It returns the codebook index, the
// linear gain and whether the gain had to be clipped.
func (g *gainState) quantize(lg float64) (int, float64, bool) {
	p := g.p
	elg := g.predict()
	target := lg - elg

	pos := 0
	best := math.Inf(1)
	for i, idx := range p.gainOrder {
		if d := math.Abs(p.gainCB[idx] - target); d < best {
			best, pos = d, i
		}
	}

	lgq := g.reconstruct(p.gainOrder[pos], elg)

	if g.limitActive() {
		lim := g.limit()
		for lgq > lim && pos > 0 {
			pos--
			lgq = g.reconstruct(p.gainOrder[pos], elg)
		}
	}

	lgq, limited := g.enforce(lgq, g.limit())
	g.commit(lgq, elg, limited)

	return p.gainOrder[pos], logGainToLinear(lgq), limited
}

// decode returns the linear gain for a received index and whether the
// gain-change limit replaced it with the previous gain.
func (g *gainState) decode(idx int) (float64, bool) {
	elg := g.predict()
	lgq := g.reconstruct(idx, elg)

	lgq, limited := g.enforce(lgq, g.limit())
	g.commit(lgq, elg, limited)

	return logGainToLinear(lgq), limited
}

// conceal advances the predictor during an erased frame from the energy of
// the concealment excitation over n samples.
func (g *gainState) conceal(energy float64, n int) {
	lg := minLogGain
	if n > 0 && energy > 0 {
		lg = max(minLogGain, math.Log2(energy/float64(n)))
	}

	elg := g.predict()
	pushFront(g.mem, lg-elg)
	g.prev[1] = g.prev[0]
	g.prev[0] = lg
	g.sinceErasure = 0
}

// goodFrame counts a correctly received frame after an erasure.
func (g *gainState) goodFrame() {
	if g.sinceErasure < g.settleCount() {
		g.sinceErasure++
	}
}

// logGain returns log2 of the mean energy of x, floored at minLogGain.
func logGain(x []float64) float64 {
	var e float64
	for _, v := range x {
		e += v * v
	}

	if len(x) == 0 || e <= 0 {
		return minLogGain
	}

	return max(minLogGain, math.Log2(e/float64(len(x))))
}

func logGainToLinear(lg float64) float64 {
	return math.Exp2(0.5 * lg)
}
