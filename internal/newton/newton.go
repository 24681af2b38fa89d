// Package newton approximates square and cube roots by Newton's method, in
// the shapes given by SICP section 1.1.7 and exercise 1.8.
//
// To approximate the root of x, take a guess y and keep improving it until
// it is good enough. For square roots the improvement averages y with x/y
// (Heron of Alexandria's method); for cube roots it is (x/y² + 2y) / 3.
package newton

import "math"

// Number is any type that Square can multiply.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Square returns x * x.
func Square[T Number](x T) T { return x * x }

// RecursiveThreshold is the fixed tolerance used by ApproximateRoot.
const RecursiveThreshold = 0.001

// ApproximateRoot refines guess towards the square root of x by recursing
// until |guess² - x| < RecursiveThreshold. It does not count iterations.
func ApproximateRoot(guess, x float64) float64 {
	if goodEnough(math.Abs(Square(guess)-x), RecursiveThreshold) {
		return guess
	}
	return ApproximateRoot(improveSquare(guess, x), x)
}

func goodEnough(err, threshold float64) bool { return err < threshold }

// ApproximateRootIter refines guess towards the square root of x in a loop,
// stopping once |approx² - x| <= threshold. Every improvement step is added
// to Iterations.
//
// If an improvement leaves the guess unchanged the loop ends early, since a
// threshold below the precision the recurrence can reach is never met.
func ApproximateRootIter(guess, x, threshold float64) float64 {
	res := Approximate(guess, x, threshold, SquareRoot)
	Iterations.Add(res.Iterations)
	return res.Value
}

// ApproximateCubeRoot is like ApproximateRootIter, but for cube roots.
func ApproximateCubeRoot(guess, x, threshold float64) float64 {
	res := Approximate(guess, x, threshold, CubeRoot)
	Iterations.Add(res.Iterations)
	return res.Value
}
