// Package ackermann implements the growth function A of SICP exercise 1.10.
//
// This is not the canonical Ackermann function; its case ladder is:
//
//	A(x, 0) = 0
//	A(0, y) = 2y
//	A(x, 1) = 2
//	A(x, y) = A(x-1, A(x, y-1))
//
// So A(0, n) = 2n, A(1, n) = 2ⁿ, and A(2, n) is a tower of n twos.
package ackermann

import "context"

// A evaluates the growth function by plain recursion; both depth and call
// count explode for x >= 3, y >= 4.
func A(x, y float64) float64 {
	if y == 0 {
		return 0
	}
	if x == 0 {
		return 2 * y
	}
	if y == 1 {
		return 2
	}
	return A(x-1, A(x, y-1))
}

// checkEvery is how many steps Eval takes between context checks.
const checkEvery = 1 << 16

// Eval computes the same values as A, but keeps its pending outer
// applications on an explicit stack rather than the goroutine stack, and
// gives up with ctx.Err() once ctx is done.
func Eval(ctx context.Context, x, y float64) (float64, error) {
	// outer holds the x-1 of every A(x-1, ·) still waiting on its argument
	var outer []float64
	for step := 1; ; step++ {
		if step%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		switch {
		case y == 0:
		case x == 0:
			y *= 2
		case y == 1:
			y = 2
		default:
			outer = append(outer, x-1)
			y--
			continue
		}

		i := len(outer) - 1
		if i < 0 {
			return y, nil
		}
		x = outer[i]
		outer = outer[:i]
	}
}
