// Package panicerr runs a function on its own goroutine so that a panic or
// runtime.Goexit inside it comes back as an ordinary error.
package panicerr

import (
	"fmt"
	"runtime/debug"
)

// Recover calls f on a fresh goroutine and waits for it. A panic in f is
// returned as a Panic, and f calling runtime.Goexit as an Exit; otherwise
// f's own error is returned.
func Recover(name string, f func() error) error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		finished := false
		defer func() {
			if finished {
				return
			}
			if v := recover(); v != nil {
				done <- Panic{Name: name, Value: v, Stack: debug.Stack()}
			} else {
				done <- Exit{Name: name}
			}
		}()
		err := f()
		finished = true
		done <- err
	}()
	return <-done
}

// Exit reports that the goroutine running Name ended through runtime.Goexit.
type Exit struct{ Name string }

func (x Exit) Error() string {
	if x.Name == "" {
		return "runtime.Goexit called"
	}
	return x.Name + " called runtime.Goexit"
}

// Panic carries a value recovered from the goroutine running Name, along
// with the stack at the time of recovery.
type Panic struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (p Panic) Error() string { return fmt.Sprint(p) }

// Format prints the stack too under %+v.
func (p Panic) Format(f fmt.State, c rune) {
	if p.Name != "" {
		fmt.Fprintf(f, "%v ", p.Name)
	}
	fmt.Fprintf(f, "panicked: %v", p.Value)
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", p.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (p Panic) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}
