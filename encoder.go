package broadvoice

import "fmt"

// Encoder compresses PCM frames of one stream.
type Encoder struct {
	// Diagnostics optionally receives recovery events.
	Diagnostics DiagnosticHandler

	p      *codecParams
	closed bool
	frame  uint64

	hpfZero [2]float64
	hpfPole [2]float64
	speech  []float64 // high-passed input, one LPC window
	scratch []float64

	prevA   [lpcOrder + 1]float64
	prevLSP [lpcOrder]float64
	lsp     lspPredictor

	resMem  [lpcOrder]float64 // prediction error filter memory
	wMem    [lpcOrder]float64 // weighting filter memory
	resHist []float64         // open loop residual, ltHistory ahead of the frame
	xw      []float64
	ltr     []float64

	pitch *pitchAnalyzer
	gain  *gainState
	nf    *noiseFeedback
}

// NewEncoder creates an encoder for the given variant.
func NewEncoder(v Variant) (*Encoder, error) {
	p, err := v.params()
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		p:       p,
		speech:  make([]float64, len(p.lpcWindow)),
		scratch: make([]float64, len(p.lpcWindow)),
		resHist: make([]float64, p.ltHistory()+p.frameSize),
		xw:      make([]float64, p.frameSize),
		ltr:     make([]float64, p.subframeSize),
		pitch:   newPitchAnalyzer(p),
		gain:    newGainState(p),
		nf:      newNoiseFeedback(p),
	}
	e.Reset()

	return e, nil
}

// Variant returns the codec variant of the encoder.
func (e *Encoder) Variant() Variant {
	return e.p.variant
}

// Reset returns the encoder to its initial state.
func (e *Encoder) Reset() {
	p := e.p

	e.closed = false
	e.frame = 0
	e.hpfZero = [2]float64{}
	e.hpfPole = [2]float64{}
	clear(e.speech)

	e.prevA = [lpcOrder + 1]float64{1}
	defaultLSP(e.prevLSP[:])
	e.lsp.reset(p)

	e.resMem = [lpcOrder]float64{}
	e.wMem = [lpcOrder]float64{}
	clear(e.resHist)

	e.pitch.reset()
	e.gain.reset()
	e.nf.reset()
}

// Close releases the encoder. Further calls fail with ErrClosed.
func (e *Encoder) Close() error {
	if e.closed {
		return ErrClosed
	}

	e.closed = true

	return nil
}

// Encode compresses exactly one frame of pcm into dst and returns the
// number of bytes written, which is always FrameBytes.
func (e *Encoder) Encode(dst []byte, pcm []int16) (int, error) {
	if e.closed {
		return 0, ErrClosed
	}

	p := e.p
	if len(pcm) != p.frameSize {
		return 0, fmt.Errorf("%w: got %d samples, want %d", ErrFrameSize, len(pcm), p.frameSize)
	}

	if len(dst) < p.frameBytes {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrShortBuffer, len(dst), p.frameBytes)
	}

	var f frameIndices
	e.encodeFrame(pcm, &f)
	packFrame(p, &f, dst)
	e.frame++

	return p.frameBytes, nil
}

func (e *Encoder) diag(kind DiagnosticKind, detail string) {
	emit(e.Diagnostics, Diagnostic{Kind: kind, Variant: e.p.variant, Frame: e.frame, Detail: detail})
}

func (e *Encoder) encodeFrame(pcm []int16, f *frameIndices) {
	p := e.p
	F := p.frameSize
	H := p.ltHistory()

	// pre-filter into the tail of the analysis window
	copy(e.speech, e.speech[F:])
	sx := e.speech[len(e.speech)-F:]
	in := e.scratch[:F]
	for i, v := range pcm {
		in[i] = float64(v)
	}
	allZeroFilter(p.hpfNum, in, sx, e.hpfZero[:], true)
	allPoleFilter(p.hpfDen, sx, sx, e.hpfPole[:], true)

	// LPC analysis
	var r [lpcOrder + 1]float64
	autocorrelate(p.lpcWindow, e.speech, e.scratch, r[:])
	applyLagWindow(r[:], p.lagWindow)

	var a [lpcOrder + 1]float64
	if !levinsonDurbin(r[:], a[:], e.prevA[:]) {
		e.diag(DiagLevinsonFallback, "ill-conditioned autocorrelation, reusing previous LPC")
	}
	e.prevA = a

	var lsp [lpcOrder]float64
	if !lpcToLSP(a[:], lsp[:], e.prevLSP[:]) {
		e.diag(DiagLSPRootFallback, "LSP root search incomplete, reusing previous LSP")
	}
	e.prevLSP = lsp

	var lspq [lpcOrder]float64
	if e.lsp.quantizeLSP(lsp[:], lspq[:], f.lsp[:]) {
		e.diag(DiagLSPQuantizerFallback, fmt.Sprintf("no stable second stage LSP candidate, sent index %d", p.lspFallbackIndex))
	}

	var aq [lpcOrder + 1]float64
	lspToLPC(lspq[:], aq[:])

	// short-term residual and weighted speech
	copy(e.resHist, e.resHist[F:])
	d := e.resHist[H:]
	allZeroFilter(aq[:], sx, d, e.resMem[:], true)

	var aw [lpcOrder + 1]float64
	bandwidthExpand(aw[:], aq[:], weightGamma)
	allPoleFilter(aw[:], d, e.xw, e.wMem[:], true)

	// pitch
	cpp := e.pitch.coarse(e.xw)
	pp, ratio := refinePitch(p, e.resHist, cpp)
	f.pitchLag = pp - p.minPitch

	var taps [3]float64
	f.pitchTap, taps = quantizePitchTaps(p, e.resHist, pp)
	beta := ltnfScale * max(0, min(1, ratio))

	// gain and excitation per subframe
	e.nf.setFilter(aq[:])
	vps := p.vectorsPerSubframe()

	for sf := range p.subframes {
		off := sf * p.subframeSize
		for n := range p.subframeSize {
			t := H + off + n
			e.ltr[n] = e.resHist[t] - taps[0]*e.resHist[t-pp+1] - taps[1]*e.resHist[t-pp] - taps[2]*e.resHist[t-pp-1]
		}

		idx, g, limited := e.gain.quantize(logGain(e.ltr))
		if limited {
			e.diag(DiagGainLimit, fmt.Sprintf("log-gain above the gain-change limit, level threshold %.2f", e.gain.levelThreshold()))
		}
		f.gain[sf] = idx

		e.nf.quantize(f.excitation[sf*vps:(sf+1)*vps], d, off, g, taps, pp, beta)
	}

	e.nf.endFrame()
}

// defaultLSP fills lsp with the evenly spaced LSPs of a flat spectrum.
func defaultLSP(lsp []float64) {
	for i := range lsp {
		lsp[i] = float64(i+1) / float64(len(lsp)+1)
	}
}
