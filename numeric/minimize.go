package numeric

import (
	"math"
	"math/rand"
)

// golden is 2 - phi, the fallback step ratio of Brent's method.
const golden = 0.3819660112501051

// DefaultSeed feeds randomized routines when the caller passes seed 0.
const DefaultSeed = 42

// BrentMinimize finds a local minimum of f inside [a, b] by Brent's method:
// parabolic interpolation steps guarded by golden-section fallbacks.
// Returns the minimizer and its value; NaN samples abort a step but not the
// search.
func BrentMinimize(f Fn, a, b, tol float64, maxIter int) (xmin, fmin float64) {
	if tol <= 0 {
		tol = 1e-10
	}
	if maxIter <= 0 {
		maxIter = 200
	}
	x := a + golden*(b-a)
	w, v := x, x
	fx := f(x)
	fw, fv := fx, fx

	var d, e float64
	for i := 0; i < maxIter; i++ {
		m := 0.5 * (a + b)
		tol1 := tol*math.Abs(x) + 1e-15
		tol2 := 2 * tol1
		if math.Abs(x-m) <= tol2-0.5*(b-a) {
			break
		}

		useGolden := true
		if math.Abs(e) > tol1 {
			// Fit a parabola through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			if math.Abs(p) < math.Abs(0.5*q*e) && p > q*(a-x) && p < q*(b-x) {
				d, e = p/q, d
				u := x + d
				if u-a < tol2 || b-u < tol2 {
					d = math.Copysign(tol1, m-x)
				}
				useGolden = false
			}
		}
		if useGolden {
			if x < m {
				e = b - x
			} else {
				e = a - x
			}
			d = golden * e
		}

		u := x + d
		if math.Abs(d) < tol1 {
			u = x + math.Copysign(tol1, d)
		}
		fu := f(u)
		if math.IsNaN(fu) {
			break
		}

		if fu <= fx {
			if u < x {
				b = x
			} else {
				a = x
			}
			v, fv = w, fw
			w, fw = x, fx
			x, fx = u, fu
		} else {
			if u < x {
				a = u
			} else {
				b = u
			}
			if fu <= fw || w == x {
				v, fv = w, fw
				w, fw = u, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}
	return x, fx
}

// DifferentialEvolution runs a one-dimensional rand/1/bin search for the
// global minimum of f over [lo, hi]. NaN samples score as +inf so invalid
// regions never win. Seed 0 selects DefaultSeed for reproducible runs.
func DifferentialEvolution(f Fn, lo, hi float64, seed int64, maxIter int) (xmin, fmin float64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	if maxIter <= 0 {
		maxIter = 500
	}
	const (
		popSize   = 15
		mutation  = 0.8
		crossRate = 0.9
	)
	rng := rand.New(rand.NewSource(seed))

	score := func(x float64) float64 {
		v := f(x)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return v
	}
	clamp := func(x float64) float64 { return math.Max(lo, math.Min(hi, x)) }

	pop := make([]float64, popSize)
	cost := make([]float64, popSize)
	for i := range pop {
		pop[i] = lo + rng.Float64()*(hi-lo)
		cost[i] = score(pop[i])
	}

	for iter := 0; iter < maxIter; iter++ {
		improved := false
		for i := range pop {
			a, b, c := rng.Intn(popSize), rng.Intn(popSize), rng.Intn(popSize)
			trial := pop[i]
			if rng.Float64() < crossRate {
				trial = clamp(pop[a] + mutation*(pop[b]-pop[c]))
			}
			if tc := score(trial); tc < cost[i] {
				pop[i], cost[i] = trial, tc
				improved = true
			}
		}
		if !improved && iter > 50 {
			break
		}
	}

	best := 0
	for i := 1; i < popSize; i++ {
		if cost[i] < cost[best] {
			best = i
		}
	}
	if math.IsInf(cost[best], 1) {
		return math.NaN(), math.NaN()
	}
	return pop[best], cost[best]
}
