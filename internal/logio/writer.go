// Package logio bridges printed output into structured logs.
package logio

import (
	"bytes"
	"sync"

	"go.uber.org/zap"
)

// Writer implements an io.Writer that logs every completed line written to
// it as a debug entry, with the line under the given Key.
type Writer struct {
	Log *zap.Logger
	Key string // defaults to "line"

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then logs any completed lines; it never fails.
// Safe to call from multiple goroutines.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Flush logs any partial final line left in the buffer.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Flush.
func (lw *Writer) Close() error {
	return lw.Flush()
}

func (lw *Writer) flushLines(all bool) {
	key := lw.Key
	if key == "" {
		key = "line"
	}
	for lw.buf.Len() > 0 {
		var line []byte
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			line = lw.buf.Next(i)
			lw.buf.Next(1)
		} else if all {
			line = lw.buf.Next(lw.buf.Len())
		} else {
			break
		}
		if lw.Log != nil {
			lw.Log.Debug("output", zap.ByteString(key, line))
		}
	}
}
