package numeric

import "math"

// Fn is a real function of one real variable. NaN marks points outside the
// function's real domain.
type Fn func(x float64) float64

// ImagTol is the largest imaginary component a sample may carry and still
// count as real.
const ImagTol = 1e-10

// Wrap adapts a complex-plane evaluator to Fn, discarding samples whose
// imaginary part exceeds ImagTol.
func Wrap(f func(complex128) complex128) Fn {
	return func(x float64) float64 {
		z := f(complex(x, 0))
		if math.Abs(imag(z)) > ImagTol {
			return math.NaN()
		}
		return real(z)
	}
}

// FiniteSamples applies f over xs and returns the inputs and outputs at
// which f is finite and real.
func FiniteSamples(f Fn, xs []float64) (in, out []float64) {
	for _, x := range xs {
		v := f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		in = append(in, x)
		out = append(out, v)
	}
	return in, out
}
