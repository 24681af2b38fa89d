// Package flushio buffers exercise output and prints it.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer whose writes may be held until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// Discard drops all writes.
var Discard WriteFlusher = unbuffered{io.Discard}

// Buffer prepares w for printing: writers with a Flush of their own are
// used as they are, a nil or discarding writer becomes Discard, in memory
// buffers are written directly, and anything else gets a bufio.Writer.
func Buffer(w io.Writer) WriteFlusher {
	switch w := w.(type) {
	case nil:
		return Discard
	case WriteFlusher:
		return w
	case interface {
		io.Writer
		Len() int
		Reset()
	}:
		return unbuffered{w}
	}
	if w == io.Discard {
		return Discard
	}
	return bufio.NewWriter(w)
}

type unbuffered struct{ io.Writer }

func (unbuffered) Flush() error { return nil }

// Tee returns a WriteFlusher that writes into each of wfs in turn, failing
// on the first short or failed write; Flush flushes them all, returning the
// first error. Nested tees are flattened and nils skipped.
func Tee(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	for _, wf := range wfs {
		switch wf := wf.(type) {
		case nil:
		case tee:
			all = append(all, wf...)
		default:
			all = append(all, wf)
		}
	}
	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) Write(p []byte) (int, error) {
	for _, wf := range t {
		if n, err := wf.Write(p); err != nil {
			return n, err
		} else if n < len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

func (t tee) Flush() error {
	var first error
	for _, wf := range t {
		if err := wf.Flush(); first == nil {
			first = err
		}
	}
	return first
}
