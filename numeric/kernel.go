package numeric

import (
	"math"

	"github.com/funcspan/funcspan/interval"
)

// Kernel abstracts the two hot operations of the numerical strategy so an
// accelerated implementation can replace the portable one.
type Kernel interface {
	// Grid builds the sampling plan for a continuous domain, densified
	// around the fast-changing regions of f.
	Grid(dom interval.Set, f Fn) []float64
	// Minimize searches [lo, hi] for the global minimum of f. seed feeds the
	// randomized stage; 0 means the fixed default.
	Minimize(f Fn, lo, hi float64, seed int64) (xmin, fmin float64)
}

// PureKernel is the portable Kernel: DomainGrid for sampling, differential
// evolution polished by a Brent pass for minimization.
type PureKernel struct{}

func (PureKernel) Grid(dom interval.Set, f Fn) []float64 { return DomainGrid(dom, f) }

func (PureKernel) Minimize(f Fn, lo, hi float64, seed int64) (float64, float64) {
	x, fx := DifferentialEvolution(f, lo, hi, seed, 0)
	if math.IsNaN(x) {
		return x, fx
	}
	// Polish inside a small bracket around the candidate.
	span := (hi - lo) / 100
	bx, bfx := BrentMinimize(f, math.Max(lo, x-span), math.Min(hi, x+span), 0, 0)
	if !math.IsNaN(bfx) && bfx < fx {
		return bx, bfx
	}
	return x, fx
}
