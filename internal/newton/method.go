package newton

import "math"

// Method describes one root finding recurrence.
type Method struct {
	Name string

	// Power raises a guess to the power whose root is sought.
	Power func(guess float64) float64

	// Improve returns the next guess for the root of x.
	Improve func(guess, x float64) float64
}

// SquareRoot improves a guess y for √x as (y + x/y) / 2.
var SquareRoot = Method{
	Name:    "square root",
	Power:   func(y float64) float64 { return y * y },
	Improve: improveSquare,
}

// CubeRoot improves a guess y for ∛x as (x/y² + 2y) / 3.
var CubeRoot = Method{
	Name:    "cube root",
	Power:   func(y float64) float64 { return math.Pow(y, 3) },
	Improve: improveCube,
}

func improveSquare(y, x float64) float64 { return 0.5 * (y + x/y) }

func improveCube(y, x float64) float64 { return (x/math.Pow(y, 2) + 2*y) / 3 }

// Approximation is the result of an Approximate call.
type Approximation struct {
	Value      float64
	Iterations uint64

	// Converged is false when the loop stopped on a floating point fixed
	// point (or a NaN) rather than on the threshold.
	Converged bool
}

// Approximate runs method from guess until |Power(value) - x| <= threshold,
// or until an improvement step no longer changes the guess.
// Unlike ApproximateRootIter and ApproximateCubeRoot it leaves the global
// Iterations counter alone.
func Approximate(guess, x, threshold float64, method Method) (res Approximation) {
	approx := guess
	for math.Abs(method.Power(approx)-x) > threshold {
		prior := approx
		approx = method.Improve(approx, x)
		res.Iterations++
		if prior == approx {
			break
		}
	}
	res.Value = approx
	res.Converged = math.Abs(method.Power(approx)-x) <= threshold
	return res
}
