// Package factorial computes n! by the two process shapes of SICP 1.2.1.
//
// Neither shape checks for overflow: results wrap per uint64 arithmetic
// once n exceeds 20.
package factorial

// Recursive computes n! as n * Recursive(n-1), bottoming out at 1.
//
// This is a linear recursive process: the number of calls grows linearly
// with n, building a chain of deferred multiplications that only begins to
// shrink after the base case is reached.
//
// n must be at least 1; Recursive(0) wraps around to the top of the uint64
// range and recurses until the stack is exhausted.
func Recursive(n uint64) uint64 {
	if n == 1 {
		return 1
	}
	return n * Recursive(n-1)
}

// Iterative computes n! by running an index from 2 to n into an accumulated
// product.
//
// This is a linear iterative process: its whole state is summarized by the
// two variables it, result, and a fixed rule for how they advance.
func Iterative(n uint64) uint64 {
	it := uint64(2)
	result := uint64(1)
	for it <= n {
		result *= it
		it++
	}
	return result
}
