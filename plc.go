package broadvoice

import "math"

const (
	plcScaleBase   = 1.9
	plcScaleSlope  = 2.0
	plcScaleMin    = 0.1
	plcScaleMax    = 0.9
	plcHoldFrames  = 8  // erased frames synthesized at full level
	plcDecayFrames = 50 // frames of linear decay after the hold
	plcSeed        = 11111
)

// concealer keeps what the decoder knows about the last good frame and
// synthesizes excitation for erased ones.
type concealer struct {
	p *codecParams

	lag         int
	taps        [3]float64
	energy      float64 // codevector energy of the last good frame
	periodicity float64
	erasures    int
	seed        uint32

	noise []float64
}

func newConcealer(p *codecParams) *concealer {
	c := &concealer{p: p, noise: make([]float64, p.frameSize)}
	c.reset()

	return c
}

func (c *concealer) reset() {
	c.lag = c.p.minPitch
	c.taps = [3]float64{}
	c.energy = 0
	c.periodicity = 0
	c.erasures = 0
	c.seed = plcSeed
}

// observe records the parameters of a correctly decoded frame.
func (c *concealer) observe(lag int, taps [3]float64, energy float64) {
	c.lag = lag
	c.taps = taps
	c.energy = energy
	c.erasures = 0

	sum := max(0, min(1, taps[0]+taps[1]+taps[2]))
	c.periodicity = 0.5*c.periodicity + 0.5*sum
}

// random returns the next value of the linear congruential generator in
// [-1, 1).
func (c *concealer) random() float64 {
	c.seed = 1664525*c.seed + 1013904223
	return float64(int32(c.seed)) / (1 << 31)
}

// attenuation returns the level applied to the current erased frame.
func (c *concealer) attenuation() float64 {
	if c.erasures <= plcHoldFrames {
		return 1
	}

	return max(0, 1-float64(c.erasures-plcHoldFrames)/plcDecayFrames)
}

// excite synthesizes one frame of long-term synthesis output into dq
// (history at offset ltHistory). It returns the energy of the injected
// noise per subframe in sub.
func (c *concealer) excite(dq []float64, sub []float64) {
	p := c.p
	H := p.ltHistory()
	c.erasures++

	var noiseEnergy float64
	for n := range c.noise {
		v := c.random()
		c.noise[n] = v
		noiseEnergy += v * v
	}

	scale := max(plcScaleMin, min(plcScaleMax, plcScaleBase-plcScaleSlope*c.periodicity))
	if noiseEnergy > 0 {
		scale *= math.Sqrt(c.energy / noiseEnergy)
	} else {
		scale = 0
	}

	att := c.attenuation()
	scale *= att
	taps := c.taps
	for i := range taps {
		taps[i] *= att
	}

	pp := c.lag
	for sf := range p.subframes {
		var e float64
		for n := range p.subframeSize {
			i := sf*p.subframeSize + n
			t := H + i
			uq := scale * c.noise[i]
			dq[t] = uq + taps[0]*dq[t-pp+1] + taps[1]*dq[t-pp] + taps[2]*dq[t-pp-1]
			e += uq * uq
		}
		sub[sf] = e
	}
}
