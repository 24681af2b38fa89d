package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/gosicp/internal/flushio"
	"github.com/jcorbin/gosicp/internal/panicerr"
)

// Runner runs exercises from a dispatch table, printing their results.
type Runner struct {
	logging
	out   flushio.WriteFlusher
	table []exercise
}

// New creates a Runner over the standard exercise table, writing to nowhere
// unless given WithOutput.
func New(opts ...RunnerOption) *Runner {
	var r Runner
	r.apply(opts...)
	return &r
}

// Run runs the named exercises in order with their default arguments, or
// every exercise in table order if no names are given. It stops at the
// first error, or once ctx is done.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		for _, ex := range r.table {
			names = append(names, ex.name)
		}
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.RunExercise(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// RunExercise runs a single named exercise with the given arguments.
// Panics within the exercise are returned as errors.
func (r *Runner) RunExercise(ctx context.Context, name string, args ...string) error {
	ex, found := r.lookup(name)
	if !found {
		return fmt.Errorf("unknown exercise %q", name)
	}
	if len(args) > ex.maxArgs {
		return fmt.Errorf("%v: too many arguments, usage: %v %v", name, name, ex.usage)
	}

	r.logf(">", "%v %v", name, strings.Join(args, " "))
	err := panicerr.Recover(name, func() error {
		return ex.run(ctx, r, args)
	})
	if ferr := r.out.Flush(); err == nil {
		err = ferr
	}
	var he haltError
	if errors.As(err, &he) {
		err = he.error
	}
	if err != nil {
		r.logf("!", "%v: %v", name, err)
		return fmt.Errorf("%v: %w", name, err)
	}
	return nil
}

func (r *Runner) lookup(name string) (exercise, bool) {
	for _, ex := range r.table {
		if ex.name == name {
			return ex, true
		}
	}
	return exercise{}, false
}

func (r *Runner) println(args ...interface{}) {
	if err := flushio.Println(r.out, args...); err != nil {
		r.halt(err)
	}
}

func (r *Runner) halt(err error) {
	r.logf("#", "halt error: %v", err)
	panic(haltError{err})
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// RunnerOption customizes a Runner created by New.
type RunnerOption interface{ apply(r *Runner) }

// WithOutput sets where exercise results are printed.
func WithOutput(w io.Writer) RunnerOption { return outputOption{w} }

// WithTee additionally copies printed results into w.
func WithTee(w io.Writer) RunnerOption { return teeOption{w} }

// WithLogf enables trace logging through a printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) RunnerOption { return withLogfn(logfn) }

func withExercises(exs ...exercise) RunnerOption { return tableOption(exs) }

var defaults = []RunnerOption{
	outputOption{io.Discard},
	tableOption(exercises),
}

func (r *Runner) apply(opts ...RunnerOption) {
	for _, opt := range defaults {
		opt.apply(r)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type tableOption []exercise

func (logfn withLogfn) apply(r *Runner) { r.logfn = logfn }

func (o outputOption) apply(r *Runner) {
	if r.out != nil {
		r.out.Flush()
	}
	r.out = flushio.Buffer(o.Writer)
}

func (o teeOption) apply(r *Runner) {
	r.out = flushio.Tee(r.out, flushio.Buffer(o.Writer))
}

func (t tableOption) apply(r *Runner) { r.table = t }

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
