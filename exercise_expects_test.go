package main

import "time"

// @generated from runner_test.go

//go:generate go run scripts/gen_expects.go -- runner_test.go exercise_expects_test.go

func withExerciseTarget(name string) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.withTarget(name)
	}
}

func withExerciseArgs(args ...string) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.withArgs(args...)
	}
}

func withExerciseOptions(opts ...RunnerOption) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.withOptions(opts...)
	}
}

func withExerciseTimeout(timeout time.Duration) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.withTimeout(timeout)
	}
}

func expectExerciseOutput(output string) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.expectOutput(output)
	}
}

func expectExerciseOutputMatching(pattern string) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.expectOutputMatching(pattern)
	}
}

func expectExerciseError(err error) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.expectError(err)
	}
}

func expectExerciseErrorString(s string) func(exerciseTestCase) exerciseTestCase {
	return func(tc exerciseTestCase) exerciseTestCase {
		return tc.expectErrorString(s)
	}
}
