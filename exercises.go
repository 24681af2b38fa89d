package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jcorbin/gosicp/internal/ackermann"
	"github.com/jcorbin/gosicp/internal/factorial"
	"github.com/jcorbin/gosicp/internal/newton"
)

type exercise struct {
	name    string
	usage   string
	short   string
	maxArgs int
	run     func(ctx context.Context, r *Runner, args []string) error
}

// exercises is the dispatch table of demonstrations, in book order.
var exercises = []exercise{
	{
		name:  "square",
		short: "square 10, then square that (1.1.4)",
		run:   runSquare,
	},
	{
		name:    "sqrt",
		usage:   "[x [threshold]]",
		short:   "square roots by Newton's method, recursive then iterative (1.1.7)",
		maxArgs: 2,
		run:     runSqrt,
	},
	{
		name:    "cube-root",
		usage:   "[x [threshold]]",
		short:   "cube roots by Newton's method (exercise 1.8)",
		maxArgs: 2,
		run:     runCubeRoot,
	},
	{
		name:    "factorial",
		usage:   "[n]",
		short:   "n! as a linear recursive then a linear iterative process (1.2.1)",
		maxArgs: 1,
		run:     runFactorial,
	},
	{
		name:    "ackermann",
		usage:   "[x y]",
		short:   "Ackermann's function A (exercise 1.10)",
		maxArgs: 2,
		run:     runAckermann,
	},
}

// The numeric core checks nothing, so the demos keep their inputs where
// the recursive shapes are known to bottom out well within the stack.
const (
	maxRootRadicand = 1e10
	maxFactorialN   = 1e6
)

var (
	errZeroFactorial  = errors.New("factorial is only defined here for n >= 1")
	errLargeFactorial = fmt.Errorf("factorial is only computed here for n <= %d", uint64(maxFactorialN))
	errRootDomain     = fmt.Errorf("square roots are only approximated here for 0 < x <= %g", maxRootRadicand)
	errNegThreshold   = errors.New("threshold must not be negative")
)

func runSquare(_ context.Context, r *Runner, _ []string) error {
	r.println(newton.Square(10))
	r.println(newton.Square(newton.Square(10)))
	return nil
}

func runSqrt(_ context.Context, r *Runner, args []string) error {
	xs, err := parseFloats(args, 2, 0)
	if err != nil {
		return err
	}
	x, threshold := xs[0], xs[1]
	// also rejects NaN; the recursive shape never terminates there
	if !(x > 0 && x <= maxRootRadicand) {
		return errRootDomain
	}
	if threshold < 0 {
		return errNegThreshold
	}
	r.println(newton.ApproximateRoot(1, x))
	r.println(newton.ApproximateRootIter(1, x, threshold),
		" calculated in ", newton.Iterations.Load(), " iterations ")
	return nil
}

func runCubeRoot(_ context.Context, r *Runner, args []string) error {
	xs, err := parseFloats(args, 2, 0)
	if err != nil {
		return err
	}
	x, threshold := xs[0], xs[1]
	r.println(newton.ApproximateCubeRoot(1, x, threshold),
		" calculated in ", newton.Iterations.Load(), " iterations")
	return nil
}

func runFactorial(_ context.Context, r *Runner, args []string) error {
	n := uint64(5)
	if len(args) > 0 {
		var err error
		if n, err = strconv.ParseUint(args[0], 10, 64); err != nil {
			return fmt.Errorf("invalid n: %w", err)
		}
	}
	switch {
	case n == 0:
		return errZeroFactorial
	case n > maxFactorialN:
		return errLargeFactorial
	}
	r.println(factorial.Recursive(n))
	r.println(factorial.Iterative(n))
	return nil
}

func runAckermann(ctx context.Context, r *Runner, args []string) error {
	pairs := [][2]float64{{1, 10}, {2, 4}, {3, 3}}
	if len(args) > 0 {
		if len(args) != 2 {
			return errors.New("need both x and y")
		}
		xy, err := parseFloats(args)
		if err != nil {
			return err
		}
		pairs = [][2]float64{{xy[0], xy[1]}}
	}
	for _, xy := range pairs {
		v, err := ackermann.Eval(ctx, xy[0], xy[1])
		if err != nil {
			return fmt.Errorf("A(%v, %v): %w", xy[0], xy[1], err)
		}
		r.println(v)
	}
	return nil
}

// parseFloats parses args, filling in any trailing defaults.
func parseFloats(args []string, defaults ...float64) ([]float64, error) {
	vals := make([]float64, 0, len(defaults))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %w", err)
		}
		vals = append(vals, v)
	}
	if len(vals) < len(defaults) {
		vals = append(vals, defaults[len(vals):]...)
	}
	return vals, nil
}
