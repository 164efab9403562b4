package broadvoice

import "math"

// lspPredictor is the MA predictor memory of the spectral quantizer.
// mem[0] is the most recent quantized prediction error vector.
type lspPredictor struct {
	p   *codecParams
	mem [lspPredOrder][lpcOrder]float64
}

func (lp *lspPredictor) reset(p *codecParams) {
	lp.p = p
	lp.mem = [lspPredOrder][lpcOrder]float64{}
}

// estimate writes mean + MA prediction to dst.
func (lp *lspPredictor) estimate(dst []float64) {
	for i := range lpcOrder {
		acc := lp.p.lspMean[i]
		for k := range lspPredOrder {
			acc += lp.p.lspPredictor[i*lspPredOrder+k] * lp.mem[k][i]
		}
		dst[i] = acc
	}
}

func (lp *lspPredictor) push(e []float64) {
	var v [lpcOrder]float64
	copy(v[:], e)
	pushFront(lp.mem[:], v)
}

// lspWeights derives weighted-MSE weights from the spacing of the target LSPs.
func lspWeights(lsp, w []float64) {
	w[0] = 1 / (lsp[1] - lsp[0])
	for i := 1; i < lpcOrder-1; i++ {
		w[i] = 1 / min(lsp[i]-lsp[i-1], lsp[i+1]-lsp[i])
	}
	w[lpcOrder-1] = 1 / (lsp[lpcOrder-1] - lsp[lpcOrder-2])

	for i := range w[:lpcOrder] {
		if math.IsInf(w[i], 0) || w[i] <= 0 || math.IsNaN(w[i]) {
			w[i] = 1 / lspMin
		}
	}
}

// vqMSE returns the index of the codevector of cb nearest to x.
func vqMSE(x, cb []float64) int {
	dim := len(x)
	best, bestIdx := math.Inf(1), 0

	for j := 0; j*dim < len(cb); j++ {
		cv := cb[j*dim : (j+1)*dim]

		var d float64
		for i, v := range x {
			e := v - cv[i]
			d += e * e
		}

		if d < best {
			best, bestIdx = d, j
		}
	}

	return bestIdx
}

// vqWMSE is vqMSE with per-dimension weights.
func vqWMSE(x, w, cb []float64) int {
	dim := len(x)
	best, bestIdx := math.Inf(1), 0

	for j := 0; j*dim < len(cb); j++ {
		cv := cb[j*dim : (j+1)*dim]

		var d float64
		for i, v := range x {
			e := v - cv[i]
			d += w[i] * e * e
		}

		if d < best {
			best, bestIdx = d, j
		}
	}

	return bestIdx
}

// vqWMSEStable searches like vqWMSE but only accepts candidates for which
// est + (stage1 + codevector) keeps its first lspCheckDim entries ordered
// and non-negative, summed in the same order as the decoder. It returns -1
// when no candidate qualifies.
func vqWMSEStable(x, w, est, stage1, cb []float64) int {
	dim := len(x)
	best, bestIdx := math.Inf(1), -1

	var trial [lspCheckDim]float64

	for j := 0; j*dim < len(cb); j++ {
		cv := cb[j*dim : (j+1)*dim]

		for i := range lspCheckDim {
			trial[i] = est[i] + (stage1[i] + cv[i])
		}
		if !stabilityCheck(trial[:]) {
			continue
		}

		var d float64
		for i, v := range x {
			e := v - cv[i]
			d += w[i] * e * e
		}

		if d < best {
			best, bestIdx = d, j
		}
	}

	return bestIdx
}

// quantizeLSP quantizes lsp into lspq and idx. The predictor memory is
// advanced with the codebook error before stabilization. It reports
// whether the stage-2 search fell back to the fixed default index.
func (lp *lspPredictor) quantizeLSP(lsp, lspq []float64, idx []int) bool {
	p := lp.p

	var est, target, w, q, rest [lpcOrder]float64

	lp.estimate(est[:])
	lspWeights(lsp, w[:])

	for i := range lpcOrder {
		target[i] = lsp[i] - est[i]
	}

	idx[0] = vqMSE(target[:], p.lspStage1)
	stage1 := p.lspStage1[idx[0]*lpcOrder : (idx[0]+1)*lpcOrder]

	for i := range lpcOrder {
		rest[i] = target[i] - stage1[i]
	}

	fallback := false

	if p.lspSplit {
		low := vqWMSEStable(rest[:lspCheckDim], w[:lspCheckDim], est[:], stage1, p.lspStage2Low)
		if low < 0 {
			low = p.lspFallbackIndex
			fallback = true
		}
		high := vqWMSE(rest[lspCheckDim:], w[lspCheckDim:], p.lspStage2High)

		idx[1], idx[2] = low, high

		lowCV := p.lspStage2Low[low*lspCheckDim : (low+1)*lspCheckDim]
		highCV := p.lspStage2High[high*(lpcOrder-lspCheckDim) : (high+1)*(lpcOrder-lspCheckDim)]
		for i := range lspCheckDim {
			q[i] = stage1[i] + lowCV[i]
		}
		for i := lspCheckDim; i < lpcOrder; i++ {
			q[i] = stage1[i] + highCV[i-lspCheckDim]
		}
	} else {
		second := vqWMSEStable(rest[:], w[:], est[:], stage1, p.lspStage2)
		if second < 0 {
			second = p.lspFallbackIndex
			fallback = true
		}

		idx[1] = second

		cv := p.lspStage2[second*lpcOrder : (second+1)*lpcOrder]
		for i := range lpcOrder {
			q[i] = stage1[i] + cv[i]
		}
	}

	for i := range lpcOrder {
		lspq[i] = est[i] + q[i]
	}

	lp.push(q[:])
	stabilizeLSP(lspq[:lpcOrder], p.lspMinSpacing)

	return fallback
}

// decodeLSP rebuilds the quantized LSP vector from idx. If the result fails
// the ordering check, prev is used instead and false is returned. The
// predictor memory is advanced with the error of the accepted vector.
func (lp *lspPredictor) decodeLSP(idx []int, prev, lspq []float64) bool {
	p := lp.p

	var est, q [lpcOrder]float64

	lp.estimate(est[:])

	stage1 := p.lspStage1[idx[0]*lpcOrder : (idx[0]+1)*lpcOrder]

	if p.lspSplit {
		lowCV := p.lspStage2Low[idx[1]*lspCheckDim : (idx[1]+1)*lspCheckDim]
		highCV := p.lspStage2High[idx[2]*(lpcOrder-lspCheckDim) : (idx[2]+1)*(lpcOrder-lspCheckDim)]
		for i := range lspCheckDim {
			q[i] = stage1[i] + lowCV[i]
		}
		for i := lspCheckDim; i < lpcOrder; i++ {
			q[i] = stage1[i] + highCV[i-lspCheckDim]
		}
	} else {
		cv := p.lspStage2[idx[1]*lpcOrder : (idx[1]+1)*lpcOrder]
		for i := range lpcOrder {
			q[i] = stage1[i] + cv[i]
		}
	}

	for i := range lpcOrder {
		lspq[i] = est[i] + q[i]
	}

	ok := stabilityCheck(lspq[:lspCheckDim])
	if !ok {
		copy(lspq[:lpcOrder], prev)
		for i := range lpcOrder {
			q[i] = lspq[i] - est[i]
		}
	}

	lp.push(q[:])
	stabilizeLSP(lspq[:lpcOrder], p.lspMinSpacing)

	return ok
}

// conceal advances the predictor during an erased frame as if last had
// been decoded again.
func (lp *lspPredictor) conceal(last []float64) {
	var est, q [lpcOrder]float64

	lp.estimate(est[:])
	for i := range lpcOrder {
		q[i] = last[i] - est[i]
	}

	lp.push(q[:])
}
