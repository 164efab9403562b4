package broadvoice

import "math"

// chebyshevSeries turns the symmetric half polynomial f[0..m] (f[0] = 1) of
// degree 2m into Chebyshev coefficients c[0..m], so that
// z^m F(z) on the unit circle equals sum c[k] T_k(cos w).
func chebyshevSeries(f, c []float64) {
	m := len(c) - 1
	c[0] = f[m]
	for k := 1; k <= m; k++ {
		c[k] = 2 * f[m-k]
	}
}

// chebyshevEval evaluates sum c[k] T_k(x) with the Clenshaw recurrence.
func chebyshevEval(c []float64, x float64) float64 {
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b0 := 2*x*b1 - b2 + c[k]
		b2 = b1
		b1 = b0
	}

	return x*b1 - b2 + c[0]
}

// lpcToLSP converts a[0..lpcOrder] into normalized line spectral
// frequencies (1.0 = Nyquist). If fewer than lpcOrder roots are found, lsp
// is set to prev and false is returned.
func lpcToLSP(a, lsp, prev []float64) bool {
	const half = lpcOrder / 2

	var (
		fp, fq [half + 1]float64
		cp, cq [half + 1]float64
	)

	// Sum and difference polynomials with the trivial roots at z = -1 and
	// z = +1 divided out.
	fp[0] = 1
	fq[0] = 1
	for i := 1; i <= half; i++ {
		fp[i] = a[i] + a[lpcOrder+1-i] - fp[i-1]
		fq[i] = a[i] - a[lpcOrder+1-i] + fq[i-1]
	}

	chebyshevSeries(fp[:], cp[:])
	chebyshevSeries(fq[:], cq[:])

	coef := cp[:]
	found := 0
	xlow := lspGrid[0]
	ylow := chebyshevEval(coef, xlow)

	for j := 1; found < lpcOrder && j < len(lspGrid); j++ {
		xhigh, yhigh := xlow, ylow
		xlow = lspGrid[j]
		ylow = chebyshevEval(coef, xlow)

		if ylow*yhigh > 0 {
			continue
		}

		for range lspBisects {
			xmid := 0.5 * (xlow + xhigh)
			ymid := chebyshevEval(coef, xmid)
			if ylow*ymid <= 0 {
				xhigh, yhigh = xmid, ymid
			} else {
				xlow, ylow = xmid, ymid
			}
		}

		x := xlow
		if yhigh != ylow {
			x = xlow - ylow*(xhigh-xlow)/(yhigh-ylow)
		}

		lsp[found] = math.Acos(max(-1, min(1, x))) / math.Pi
		found++

		// Roots of the two polynomials interlace; continue from this root
		// on the other one, rescanning the current grid interval.
		if found%2 == 1 {
			coef = cq[:]
		} else {
			coef = cp[:]
		}
		xlow = x
		ylow = chebyshevEval(coef, xlow)
		j--
	}

	if found < lpcOrder {
		copy(lsp, prev[:lpcOrder])
		return false
	}

	return true
}

// lspToLPC rebuilds a[0..lpcOrder] from normalized LSPs.
func lspToLPC(lsp, a []float64) {
	var fp, fq [lpcOrder + 1]float64

	fp[0] = 1
	fq[0] = 1

	for i := range lpcOrder / 2 {
		c1 := -2 * math.Cos(math.Pi*lsp[2*i])
		c2 := -2 * math.Cos(math.Pi*lsp[2*i+1])

		for k := 2*i + 2; k >= 2; k-- {
			fp[k] += c1*fp[k-1] + fp[k-2]
			fq[k] += c2*fq[k-1] + fq[k-2]
		}
		fp[1] += c1 * fp[0]
		fq[1] += c2 * fq[0]
	}

	// A(z) = (P(z)(1 + 1/z) + Q(z)(1 - 1/z)) / 2
	a[0] = 1
	for i := 1; i <= lpcOrder; i++ {
		a[i] = 0.5 * (fp[i] + fp[i-1] + fq[i] - fq[i-1])
	}
}

// stabilizeLSP sorts lsp into increasing order and enforces the range
// [lspMin, lspMax] with at least minSpacing between neighbours.
func stabilizeLSP(lsp []float64, minSpacing float64) {
	n := len(lsp)

	for swapped := true; swapped; {
		swapped = false
		for i := 0; i < n-1; i++ {
			if lsp[i+1] < lsp[i] {
				lsp[i], lsp[i+1] = lsp[i+1], lsp[i]
				swapped = true
			}
		}
	}

	// upper bound that still leaves room for the remaining entries
	maxFirst := lspMax - float64(n-1)*minSpacing

	if lsp[0] < lspMin {
		lsp[0] = lspMin
	} else if lsp[0] > maxFirst {
		lsp[0] = maxFirst
	}

	for i := 0; i < n-1; i++ {
		lo := lsp[i] + minSpacing
		hi := lspMax - float64(n-2-i)*minSpacing
		if lsp[i+1] < lo {
			lsp[i+1] = lo
		} else if lsp[i+1] > hi {
			lsp[i+1] = hi
		}
	}
}

// stabilityCheck reports whether x is non-negative and non-decreasing.
func stabilityCheck(x []float64) bool {
	if len(x) == 0 {
		return true
	}

	if x[0] < 0 {
		return false
	}

	for i := 1; i < len(x); i++ {
		if x[i] < x[i-1] {
			return false
		}
	}

	return true
}
