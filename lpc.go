package broadvoice

// autocorrelate computes r[0..len(r)-1] of x weighted by window.
// scratch must be at least len(x) long.
func autocorrelate(window, x, scratch, r []float64) {
	n := len(x)
	w := scratch[:n]

	for i := range n {
		w[i] = window[i] * x[i]
	}

	for lag := range r {
		var sum float64
		for i := lag; i < n; i++ {
			sum += w[i] * w[i-lag]
		}
		r[lag] = sum
	}
}

// applyLagWindow scales r by the lag window. lagWindow[0] carries the
// white noise correction applied to r[0].
func applyLagWindow(r, lagWindow []float64) {
	for i := range r {
		r[i] *= lagWindow[i]
	}
}

// levinsonDurbin solves for the predictor a[0..order] (a[0] = 1) from the
// autocorrelation r. When the recursion breaks down a is set to prev and
// false is returned.
func levinsonDurbin(r, a, prev []float64) bool {
	order := len(a) - 1

	var tmp [lpcOrder + 1]float64

	if r[0] <= 0 {
		copy(a, prev)
		return false
	}

	a[0] = 1
	for i := 1; i <= order; i++ {
		a[i] = 0
	}

	alpha := r[0]
	for m := 1; m <= order; m++ {
		acc := r[m]
		for i := 1; i < m; i++ {
			acc += a[i] * r[m-i]
		}

		rc := -acc / alpha

		for i := 1; i < m; i++ {
			tmp[i] = a[i] + rc*a[m-i]
		}
		for i := 1; i < m; i++ {
			a[i] = tmp[i]
		}
		a[m] = rc

		alpha *= 1 - rc*rc
		if alpha <= 0 || rc >= 1 || rc <= -1 {
			copy(a, prev)
			return false
		}
	}

	return true
}

// bandwidthExpand writes a[i]*gamma^i to dst.
func bandwidthExpand(dst, a []float64, gamma float64) {
	g := 1.0
	for i := range a {
		dst[i] = a[i] * g
		g *= gamma
	}
}

// allPoleFilter computes y[n] = x[n] - sum a[i]*y[n-i]. mem holds the past
// outputs in time order, mem[len(mem)-1] being y[-1]. x and y may alias.
// The memory is only advanced when update is set.
func allPoleFilter(a, x, y, mem []float64, update bool) {
	order := len(a) - 1
	m := len(mem)

	for n := range x {
		acc := x[n]
		for i := 1; i <= order; i++ {
			if k := n - i; k >= 0 {
				acc -= a[i] * y[k]
			} else {
				acc -= a[i] * mem[m+k]
			}
		}
		y[n] = acc
	}

	if update {
		advanceMemory(mem, y)
	}
}

// allZeroFilter computes y[n] = sum a[i]*x[n-i] with a[0] applied to the
// current sample. mem holds the past inputs in time order. x and y must
// not alias.
func allZeroFilter(a, x, y, mem []float64, update bool) {
	order := len(a) - 1
	m := len(mem)

	for n := range x {
		acc := a[0] * x[n]
		for i := 1; i <= order; i++ {
			if k := n - i; k >= 0 {
				acc += a[i] * x[k]
			} else {
				acc += a[i] * mem[m+k]
			}
		}
		y[n] = acc
	}

	if update {
		advanceMemory(mem, x)
	}
}

// advanceMemory appends samples to the time-ordered delay line mem, keeping
// only its last len(mem) entries.
func advanceMemory(mem, samples []float64) {
	m := len(mem)
	if len(samples) >= m {
		copy(mem, samples[len(samples)-m:])
		return
	}

	copy(mem, mem[len(samples):])
	copy(mem[m-len(samples):], samples)
}

// pushFront shifts hist one slot towards older entries and stores v as the
// newest, hist[0]. Every MA predictor memory is updated through it.
func pushFront[T any](hist []T, v T) {
	copy(hist[1:], hist[:len(hist)-1])
	hist[0] = v
}
