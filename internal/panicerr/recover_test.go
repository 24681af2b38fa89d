package panicerr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jcorbin/gosicp/internal/panicerr"
)

func Test_Recover(t *testing.T) {
	defer goleak.VerifyNone(t)

	for _, tc := range []struct {
		name    string
		fun     func() error
		err     string
		wraps   string
		isExit  bool
		isPanic bool
	}{
		{
			name: "normal",
			fun:  func() error { return nil },
		},
		{
			name: "normal err",
			fun:  func() error { return errors.New("bang") },
			err:  "bang",
		},
		{
			name:    "",
			fun:     func() error { panic(errors.New("shrug")) },
			err:     "panicked: shrug",
			wraps:   "shrug",
			isPanic: true,
		},
		{
			name:    "panic err",
			fun:     func() error { panic(errors.New("bang")) },
			err:     "panic err panicked: bang",
			wraps:   "bang",
			isPanic: true,
		},
		{
			name:    "panic string",
			fun:     func() error { panic("hello") },
			err:     "panic string panicked: hello",
			isPanic: true,
		},
		{
			name:    "index panic",
			fun:     func() error { _ = ([]int)(nil)[1]; return nil },
			err:     "index panic panicked: runtime error: index out of range [1] with length 0",
			isPanic: true,
		},
		{
			name:   "",
			fun:    func() error { runtime.Goexit(); return nil },
			err:    "runtime.Goexit called",
			isExit: true,
		},
		{
			name:   "exit",
			fun:    func() error { runtime.Goexit(); return nil },
			err:    "exit called runtime.Goexit",
			isExit: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := panicerr.Recover(tc.name, tc.fun)
			if tc.err == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.err)
			if tc.wraps != "" {
				assert.EqualError(t, errors.Unwrap(err), tc.wraps, "expected panic(error) value")
			}

			var x panicerr.Exit
			assert.Equal(t, tc.isExit, errors.As(err, &x))

			var p panicerr.Panic
			if assert.Equal(t, tc.isPanic, errors.As(err, &p)) && tc.isPanic {
				assert.Equal(t, tc.name, p.Name)
				assert.NotEmpty(t, p.Stack, "expected a stack trace")
			}
		})
	}
}

func Test_Recover_wrapped(t *testing.T) {
	err := fmt.Errorf("running: %w", panicerr.Recover("inner", func() error {
		panic("nope")
	}))
	var p panicerr.Panic
	require.True(t, errors.As(err, &p), "must find the panic through wrapping")
	assert.Equal(t, "nope", p.Value)
	assert.True(t,
		strings.HasSuffix(fmt.Sprintf("%+v", p), string(p.Stack)),
		"expected verbose format to end with a stack trace")
}
