package newton_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/gosicp/internal/newton"
)

func Test_Square(t *testing.T) {
	assert.Equal(t, 100, newton.Square(10))
	assert.Equal(t, 10000, newton.Square(newton.Square(10)))
	assert.Equal(t, uint64(1<<32), newton.Square(uint64(1<<16)))
	for _, x := range []float64{0, 0.5, 1, 1.5, 3, 1e3, 12345.678} {
		assert.Equal(t, x*x, newton.Square(x), "square(%v)", x)
	}
}

func Test_ApproximateRoot(t *testing.T) {
	v := newton.ApproximateRoot(1, 2)
	assert.InDelta(t, 1.41421, v, 1e-4)
	assert.Less(t, math.Abs(v*v-2), newton.RecursiveThreshold)

	assert.Equal(t, 3.0, newton.ApproximateRoot(3, 9), "a good enough guess is returned as is")
}

func Test_ApproximateRootIter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		var (
			x         = 1e-3 + rng.Float64()*1e6
			guess     = 1e-3 + rng.Float64()*1e3
			threshold = math.Pow(10, -float64(rng.Intn(7)))
		)
		v := newton.ApproximateRootIter(guess, x, threshold)
		if !assert.LessOrEqual(t, math.Abs(v*v-x), threshold,
			"root(%v, %v, %v) = %v", guess, x, threshold, v) {
			return
		}
	}
}

func Test_ApproximateRootIter_zeroThreshold(t *testing.T) {
	v := newton.ApproximateRootIter(1, 2, 0)
	assert.InDelta(t, math.Sqrt2, v, 1e-15, "must stop at the fixed point")
}

func Test_ApproximateCubeRoot(t *testing.T) {
	assert.InDelta(t, 2.0, newton.ApproximateCubeRoot(1, 8, 0.001), 1e-4)
	assert.InDelta(t, math.Cbrt(2), newton.ApproximateCubeRoot(1, 2, 1e-12), 1e-12)
	assert.InDelta(t, 10.0, newton.ApproximateCubeRoot(3, 1000, 1e-9), 1e-9)
}

func Test_idempotent(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    func() float64
	}{
		{"root", func() float64 { return newton.ApproximateRoot(1, 7) }},
		{"root iter", func() float64 { return newton.ApproximateRootIter(1, 7, 1e-9) }},
		{"cube root", func() float64 { return newton.ApproximateCubeRoot(1, 7, 1e-9) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.f(), tc.f())
		})
	}
}

func Test_Iterations(t *testing.T) {
	newton.Iterations.Reset()

	newton.ApproximateRoot(1, 2)
	require.Equal(t, uint64(0), newton.Iterations.Load(), "recursive root does not count")

	// 1 -> 1.5 -> 1.41667 -> 1.414215686 is within 0.001
	newton.ApproximateRootIter(1, 2, 0.001)
	require.Equal(t, uint64(3), newton.Iterations.Load())

	newton.ApproximateRootIter(1, 2, 0.001)
	require.Equal(t, uint64(6), newton.Iterations.Load(), "counts accumulate across calls")

	newton.ApproximateCubeRoot(2, 8, 0)
	require.Equal(t, uint64(6), newton.Iterations.Load(), "an exact guess takes no steps")

	assert.Equal(t, uint64(6), newton.Iterations.Reset())
	assert.Equal(t, uint64(0), newton.Iterations.Load())
}

func Test_Approximate(t *testing.T) {
	newton.Iterations.Reset()
	defer newton.Iterations.Reset()

	res := newton.Approximate(1, 2, 0.001, newton.SquareRoot)
	assert.Equal(t, newton.Approximation{
		Value:      newton.ApproximateRootIter(1, 2, 0.001),
		Iterations: 3,
		Converged:  true,
	}, res)
	assert.Equal(t, uint64(3), newton.Iterations.Load(), "only the Iter call counts")

	res = newton.Approximate(1, 2, 1e-300, newton.SquareRoot)
	assert.False(t, res.Converged, "threshold below precision cannot converge")
	assert.InDelta(t, math.Sqrt2, res.Value, 1e-15)

	res = newton.Approximate(4, 64, 0, newton.CubeRoot)
	assert.Equal(t, newton.Approximation{Value: 4, Converged: true}, res)
}
