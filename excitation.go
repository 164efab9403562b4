package broadvoice

import "math"

// noiseFeedback holds the memories of the excitation quantizer. The short
// term buffers keep lpcOrder samples of history ahead of one frame, the long
// term buffers keep ltHistory samples.
type noiseFeedback struct {
	p *codecParams

	qs  []float64 // short-term noise feedback input (zero section)
	y   []float64 // short-term noise feedback output (pole section)
	dq  []float64 // long-term synthesis output
	elt []float64 // long-term noise feedback input

	zsr    []float64 // zero-state responses, one row per shape
	zsrEn  []float64
	cor    []float64
	fz, fp [lpcOrder + 1]float64
}

func newNoiseFeedback(p *codecParams) *noiseFeedback {
	return &noiseFeedback{
		p:     p,
		qs:    make([]float64, lpcOrder+p.frameSize),
		y:     make([]float64, lpcOrder+p.frameSize),
		dq:    make([]float64, p.ltHistory()+p.frameSize),
		elt:   make([]float64, p.ltHistory()+p.frameSize),
		zsr:   make([]float64, p.excitationShapes*vecDim),
		zsrEn: make([]float64, p.excitationShapes),
		cor:   make([]float64, p.excitationShapes),
	}
}

func (nf *noiseFeedback) reset() {
	clear(nf.qs)
	clear(nf.y)
	clear(nf.dq)
	clear(nf.elt)
}

// setFilter derives the noise feedback sections from the quantized LPC.
// 1 - Fs(z) = A(z/stnfZeroGamma) / A(z/stnfPoleGamma).
func (nf *noiseFeedback) setFilter(aq []float64) {
	bandwidthExpand(nf.fz[:], aq, stnfZeroGamma)
	bandwidthExpand(nf.fp[:], aq, stnfPoleGamma)
}

// prepare computes the zero-state response of every gain-scaled shape
// through 1 - Fs(z).
func (nf *noiseFeedback) prepare(gain float64) {
	cb := nf.p.excitationCB

	for j := range nf.p.excitationShapes {
		cv := cb[j*vecDim : (j+1)*vecDim]
		out := nf.zsr[j*vecDim : (j+1)*vecDim]

		var en float64
		for n := range vecDim {
			acc := 0.0
			for i := 0; i <= n && i <= lpcOrder; i++ {
				acc += nf.fz[i] * gain * cv[n-i]
			}
			for i := 1; i <= n && i <= lpcOrder; i++ {
				acc -= nf.fp[i] * out[n-i]
			}
			out[n] = acc
			en += acc * acc
		}
		nf.zsrEn[j] = en
	}
}

// feedback returns the short-term noise feedback output for frame sample t
// given the qs and y buffers (history at offset lpcOrder).
func (nf *noiseFeedback) feedback(qs, y []float64, t int) float64 {
	var acc float64
	for i := 1; i <= lpcOrder; i++ {
		acc += (nf.fp[i]-nf.fz[i])*qs[lpcOrder+t-i] - nf.fp[i]*y[lpcOrder+t-i]
	}

	return acc
}

// quantize codes one subframe of the short-term residual d, starting at
// frame sample off, into idx (one entry per vector). The sign of the chosen
// shape is carried in the top index bit.
func (nf *noiseFeedback) quantize(idx []int, d []float64, off int, gain float64, taps [3]float64, pp int, beta float64) {
	p := nf.p
	H := p.ltHistory()
	shapes := p.excitationShapes
	cb := p.excitationCB

	nf.prepare(gain)

	var (
		ltp, ltnf, zir [vecDim]float64
		qsTmp, yTmp    [lpcOrder + vecDim]float64
	)

	for v := range p.vectorsPerSubframe() {
		t0 := off + v*vecDim

		for n := range vecDim {
			t := H + t0 + n
			ltp[n] = taps[0]*nf.dq[t-pp+1] + taps[1]*nf.dq[t-pp] + taps[2]*nf.dq[t-pp-1]
			ltnf[n] = beta * nf.elt[t-pp]
		}

		// zero-input response: run the loop with a zero codevector on copies
		// of the short-term memories
		copy(qsTmp[:lpcOrder], nf.qs[t0:t0+lpcOrder])
		copy(yTmp[:lpcOrder], nf.y[t0:t0+lpcOrder])
		for n := range vecDim {
			fb := nf.feedback(qsTmp[:], yTmp[:], n)
			zir[n] = d[t0+n] - fb - ltp[n] - ltnf[n]
			qsTmp[lpcOrder+n] = d[t0+n] - ltp[n]
			yTmp[lpcOrder+n] = fb
		}

		best := math.Inf(1)
		bestIdx := 0

		// positive sign
		for j := range shapes {
			zs := nf.zsr[j*vecDim : (j+1)*vecDim]
			var c float64
			for n := range vecDim {
				c += zir[n] * zs[n]
			}
			nf.cor[j] = c
			if e := nf.zsrEn[j] - 2*c; e < best {
				best, bestIdx = e, j
			}
		}

		// negative sign
		for j := range shapes {
			if e := nf.zsrEn[j] + 2*nf.cor[j]; e < best {
				best, bestIdx = e, j+shapes
			}
		}

		idx[v] = bestIdx

		sign := 1.0
		shape := bestIdx
		if shape >= shapes {
			sign = -1
			shape -= shapes
		}
		cv := cb[shape*vecDim : (shape+1)*vecDim]

		for n := range vecDim {
			t := t0 + n
			uq := sign * gain * cv[n]
			fb := nf.feedback(nf.qs, nf.y, t)
			u := d[t] - fb - ltp[n] - ltnf[n]

			nf.y[lpcOrder+t] = fb
			nf.dq[H+t] = uq + ltp[n]
			nf.elt[H+t] = u - uq
			nf.qs[lpcOrder+t] = d[t] - nf.dq[H+t]
		}
	}
}

// endFrame carries the filter memories into the next frame.
func (nf *noiseFeedback) endFrame() {
	shiftHistory(nf.qs, nf.p.frameSize)
	shiftHistory(nf.y, nf.p.frameSize)
	shiftHistory(nf.dq, nf.p.frameSize)
	shiftHistory(nf.elt, nf.p.frameSize)
}

// shiftHistory drops the oldest n samples of buf and zeroes its tail.
func shiftHistory(buf []float64, n int) {
	copy(buf, buf[n:])
	clear(buf[len(buf)-n:])
}

// decodeExcitation rebuilds one subframe of the long-term synthesis output
// into dq (history at offset ltHistory) from the excitation indices and
// returns the energy of the scaled codevectors.
func decodeExcitation(p *codecParams, dq []float64, off int, idx []int, gain float64, taps [3]float64, pp int) float64 {
	H := p.ltHistory()
	shapes := p.excitationShapes
	cb := p.excitationCB

	var energy float64

	for v := range p.vectorsPerSubframe() {
		sign := 1.0
		shape := idx[v]
		if shape >= shapes {
			sign = -1
			shape -= shapes
		}
		cv := cb[shape*vecDim : (shape+1)*vecDim]

		for n := range vecDim {
			t := H + off + v*vecDim + n
			uq := sign * gain * cv[n]
			dq[t] = uq + taps[0]*dq[t-pp+1] + taps[1]*dq[t-pp] + taps[2]*dq[t-pp-1]
			energy += uq * uq
		}
	}

	return energy
}
