// gen_expects generates functional wrappers around test case builder
// methods, so that a case may be written as tc.apply(expectThing(...)).
//
// Usage: go run scripts/gen_expects.go [flags] -- [IN_FILE [OUT_FILE]]
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	recvType = flag.String("type", "exerciseTestCase", "test case builder type")
	infix    = flag.String("infix", "Exercise", "inserted into generated function names")
	timeout  = flag.Duration("timeout", 5*time.Second, "time limit")
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

func main() {
	flag.Parse()
	in, out, err := openArgs(flag.Args())
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := generate(ctx, in, out); err != nil {
		log.Fatalln(err)
	}
}

func openArgs(args []string) (in namedReader, out io.WriteCloser, err error) {
	in, out = os.Stdin, os.Stdout
	if len(args) > 0 {
		if in, err = os.Open(args[0]); err != nil {
			return nil, nil, err
		}
	}
	if len(args) > 1 {
		if out, err = os.Create(args[1]); err != nil {
			in.Close()
			return nil, nil, err
		}
	}
	return in, out, nil
}

// generate pipes the wrappers for in through goimports into out.
func generate(ctx context.Context, in namedReader, out io.WriteCloser) error {
	eg, ctx := errgroup.WithContext(ctx)

	goimports := exec.CommandContext(ctx, "goimports")
	goimports.Stdout = out
	goimports.Stderr = os.Stderr
	pipe, err := goimports.StdinPipe()
	if err != nil {
		return err
	}

	eg.Go(func() error {
		defer out.Close()
		if err := goimports.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() (rerr error) {
		defer func() {
			if cerr := in.Close(); rerr == nil {
				rerr = cerr
			}
			if cerr := pipe.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		return writeWrappers(ctx, in, pipe)
	})

	return eg.Wait()
}

func writeWrappers(ctx context.Context, in namedReader, out io.Writer) error {
	method := regexp.MustCompile(`func \(\w+ ` + regexp.QuoteMeta(*recvType) +
		`\) (expect|with)(\w+?)\((.+?)\) ` + regexp.QuoteMeta(*recvType))
	wrapper := fmt.Sprintf("func(%[1]s) %[1]s", *recvType)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "package main\n\n// @generated from %v\n\n", in.Name())
	if args := flag.Args(); len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_expects.go -- %v\n\n", strings.Join(args, " "))
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if match := method.FindStringSubmatch(sc.Text()); len(match) > 0 {
			base, what, params := match[1], match[2], match[3]
			fmt.Fprintf(&buf, "func %v%v%v(%v) %v {\n", base, *infix, what, params, wrapper)
			fmt.Fprintf(&buf, "\treturn func(tc %v) %v {\n", *recvType, *recvType)
			fmt.Fprintf(&buf, "\t\treturn tc.%v%v(%v)\n", base, what, callArgs(params))
			buf.WriteString("\t}\n}\n\n")
		}
		if buf.Len() > 0 {
			if _, err := buf.WriteTo(out); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return sc.Err()
}

// callArgs turns a parameter list like "a int, b ...string" into "a, b...".
func callArgs(params string) string {
	var names []string
	for _, part := range strings.Split(params, ",") {
		fields := strings.Fields(part)
		name := fields[0]
		if len(fields) > 1 && strings.HasPrefix(fields[1], "...") {
			name += "..."
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
