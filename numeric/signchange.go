package numeric

import "math"

// SignChanges scans f over xs and returns a refined root location for every
// consecutive pair of samples with opposite sign. NaN samples break the
// pairing.
func SignChanges(f Fn, xs []float64) []float64 {
	var roots []float64
	prevX, prevV := math.NaN(), math.NaN()
	for _, x := range xs {
		v := f(x)
		if math.IsNaN(v) {
			prevX, prevV = math.NaN(), math.NaN()
			continue
		}
		switch {
		case v == 0:
			roots = append(roots, x)
		case !math.IsNaN(prevV) && prevV*v < 0:
			roots = append(roots, refineRoot(f, prevX, x))
		}
		prevX, prevV = x, v
	}
	return roots
}

func refineRoot(f Fn, a, b float64) float64 {
	fa := f(a)
	for i := 0; i < 80 && b-a > 1e-12*(1+math.Abs(a)); i++ {
		mid := 0.5 * (a + b)
		fm := f(mid)
		if math.IsNaN(fm) {
			break
		}
		if fm == 0 {
			return mid
		}
		if fa*fm < 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}
	return 0.5 * (a + b)
}

// CriticalPoints locates stationary points of f in [lo, hi] as the sign
// changes of the derivative df over a dense uniform scan.
func CriticalPoints(df Fn, lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 10000
	}
	return SignChanges(df, Linspace(lo, hi, n))
}
