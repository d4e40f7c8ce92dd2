package sandbox

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.starlark.net/lib/math"
	startime "go.starlark.net/lib/time"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// ErrTimeout indicates the snippet exceeded its execution deadline.
var ErrTimeout = errors.New("execution timed out")

// DefaultTimeout bounds snippet execution time.
const DefaultTimeout = 10 * time.Second

// Runner executes untrusted code snippets in a Starlark interpreter.
// The interpreter has no filesystem, network, or process access; only
// the predeclared math, time, and rand modules are visible.
type Runner struct {
	timeout time.Duration
}

// New creates a Runner with the given execution timeout.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// fileOptions permits the Python-like constructs snippets commonly use.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Run executes the snippet and returns everything it printed.
// Output produced before a fault is returned alongside the error.
func (r *Runner) Run(ctx context.Context, source string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var output strings.Builder
	thread := &starlark.Thread{
		Name: "snippet",
		Print: func(_ *starlark.Thread, msg string) {
			output.WriteString(msg)
			output.WriteByte('\n')
		},
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel("deadline exceeded")
		case <-done:
		}
	}()

	_, err := starlark.ExecFileOptions(fileOptions, thread, "snippet.star", source, predeclared())
	if err != nil {
		if ctx.Err() != nil {
			return output.String(), fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
		}
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return output.String(), fmt.Errorf("execution failed: %s", evalErr.Backtrace())
		}
		return output.String(), fmt.Errorf("execution failed: %w", err)
	}

	return output.String(), nil
}

func predeclared() starlark.StringDict {
	return starlark.StringDict{
		"math": math.Module,
		"time": startime.Module,
		"rand": randModule,
		"sum":  starlark.NewBuiltin("sum", sumBuiltin),
	}
}

// randModule exposes a minimal random number surface.
var randModule = &starlarkstruct.Module{
	Name: "rand",
	Members: starlark.StringDict{
		"random":  starlark.NewBuiltin("rand.random", randRandom),
		"randint": starlark.NewBuiltin("rand.randint", randRandint),
	},
}

func randRandom(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.Float(rand.Float64()), nil
}

func randRandint(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var lo, hi int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "a", &lo, "b", &hi); err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("%s: empty range [%d, %d]", b.Name(), lo, hi)
	}
	return starlark.MakeInt(lo + rand.Intn(hi-lo+1)), nil
}

// sumBuiltin adds the numbers of an iterable, with an optional start
// value. The interpreter core does not ship one.
func sumBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var iterable starlark.Iterable
	var start starlark.Value = starlark.MakeInt(0)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "iterable", &iterable, "start?", &start); err != nil {
		return nil, err
	}

	total := start
	iter := iterable.Iterate()
	defer iter.Done()

	var x starlark.Value
	for iter.Next(&x) {
		next, err := starlark.Binary(syntax.PLUS, total, x)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		total = next
	}
	return total, nil
}
