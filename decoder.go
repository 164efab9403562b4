package broadvoice

import (
	"fmt"
	"math"
)

// Decoder reconstructs PCM from the frames of one stream.
type Decoder struct {
	// Diagnostics optionally receives recovery events.
	Diagnostics DiagnosticHandler

	p      *codecParams
	closed bool
	frame  uint64

	lsp     lspPredictor
	lastLSP [lpcOrder]float64
	aq      [lpcOrder + 1]float64
	stsym   [lpcOrder]float64 // short-term synthesis memory

	dq   []float64 // long-term synthesis output, ltHistory ahead of the frame
	gain *gainState
	pf   *postfilter
	plc  *concealer

	sq  []float64
	out []float64
}

// NewDecoder creates a decoder for the given variant.
func NewDecoder(v Variant) (*Decoder, error) {
	p, err := v.params()
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		p:    p,
		dq:   make([]float64, p.ltHistory()+p.frameSize),
		gain: newGainState(p),
		plc:  newConcealer(p),
		sq:   make([]float64, p.frameSize),
		out:  make([]float64, p.frameSize),
	}
	if p.postfilter {
		d.pf = newPostfilter(p)
	}
	d.Reset()

	return d, nil
}

// Variant returns the codec variant of the decoder.
func (d *Decoder) Variant() Variant {
	return d.p.variant
}

// Reset returns the decoder to its initial state.
func (d *Decoder) Reset() {
	d.closed = false
	d.frame = 0

	d.lsp.reset(d.p)
	defaultLSP(d.lastLSP[:])
	lspToLPC(d.lastLSP[:], d.aq[:])
	d.stsym = [lpcOrder]float64{}

	clear(d.dq)
	d.gain.reset()
	d.plc.reset()
	if d.pf != nil {
		d.pf.reset()
	}
}

// Close releases the decoder. Further calls fail with ErrClosed.
func (d *Decoder) Close() error {
	if d.closed {
		return ErrClosed
	}

	d.closed = true

	return nil
}

// Decode decodes every complete frame in packed into dst and returns the
// number of samples written. Trailing bytes that do not form a full frame
// are ignored.
func (d *Decoder) Decode(dst []int16, packed []byte) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}

	p := d.p
	frames := len(packed) / p.frameBytes
	if need := frames * p.frameSize; len(dst) < need {
		return 0, fmt.Errorf("%w: got %d samples, want %d", ErrShortBuffer, len(dst), need)
	}

	var f frameIndices
	for i := range frames {
		unpackFrame(p, packed[i*p.frameBytes:(i+1)*p.frameBytes], &f)
		d.decodeFrame(&f, dst[i*p.frameSize:(i+1)*p.frameSize])
		d.frame++
	}

	return frames * p.frameSize, nil
}

// FillIn conceals one lost frame and writes exactly FrameSize samples to
// dst.
func (d *Decoder) FillIn(dst []int16) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}

	p := d.p
	if len(dst) < p.frameSize {
		return 0, fmt.Errorf("%w: got %d samples, want %d", ErrShortBuffer, len(dst), p.frameSize)
	}

	d.diag(DiagFrameErased, fmt.Sprintf("concealing erasure %d", d.plc.erasures+1))

	var sub [2]float64
	d.plc.excite(d.dq, sub[:p.subframes])

	d.lsp.conceal(d.lastLSP[:])
	for sf := range p.subframes {
		d.gain.conceal(sub[sf], p.subframeSize)
	}

	d.synthesize(dst[:p.frameSize], d.plc.lag)
	d.frame++

	return p.frameSize, nil
}

func (d *Decoder) diag(kind DiagnosticKind, detail string) {
	emit(d.Diagnostics, Diagnostic{Kind: kind, Variant: d.p.variant, Frame: d.frame, Detail: detail})
}

func (d *Decoder) decodeFrame(f *frameIndices, dst []int16) {
	p := d.p

	d.gain.goodFrame()

	var lspq [lpcOrder]float64
	if !d.lsp.decodeLSP(f.lsp[:], d.lastLSP[:], lspq[:]) {
		d.diag(DiagLSPStabilityFallback, "decoded LSP out of order, reusing previous LSP")
	}
	d.lastLSP = lspq
	lspToLPC(lspq[:], d.aq[:])

	pp := f.pitchLag + p.minPitch
	taps := pitchTaps(p, f.pitchTap)
	vps := p.vectorsPerSubframe()

	var energy float64
	for sf := range p.subframes {
		g, limited := d.gain.decode(f.gain[sf])
		if limited {
			d.diag(DiagGainLimit, fmt.Sprintf("log-gain above the gain-change limit, reusing previous gain, level threshold %.2f", d.gain.levelThreshold()))
		}

		energy += decodeExcitation(p, d.dq, sf*p.subframeSize, f.excitation[sf*vps:(sf+1)*vps], g, taps, pp)
	}

	d.plc.observe(pp, taps, energy)
	d.synthesize(dst, pp)
}

// synthesize runs the short-term synthesis filter and the postfilter over
// the frame held in dq, then advances the long-term history.
func (d *Decoder) synthesize(dst []int16, pp int) {
	p := d.p
	H := p.ltHistory()

	allPoleFilter(d.aq[:], d.dq[H:], d.sq, d.stsym[:], true)
	shiftHistory(d.dq, p.frameSize)

	out := d.sq
	if d.pf != nil {
		d.pf.apply(d.sq, d.out, pp)
		out = d.out
	}

	for i, v := range out {
		dst[i] = toPCM16(v)
	}
}

// toPCM16 rounds v and saturates it to the int16 range.
func toPCM16(v float64) int16 {
	v = math.Round(v)
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}

	return int16(v)
}
