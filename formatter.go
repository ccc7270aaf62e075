// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package layoutfmt

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"strings"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/layoutfmt/layout"
)

// Formatter renders batches of definitions, each into its own text.
//
// Every definition is laid out in a pass of its own, with a fresh
// [layout.Arena], so definitions may be formatted in parallel.
type Formatter struct {
	// The maximum parallelism to use when formatting. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int

	// Options for rendering each definition.
	Options layout.Options

	// Where to log progress. If nil, nothing is logged.
	Logger *slog.Logger
}

// Result is the output of formatting a single definition.
type Result struct {
	// The rendered text, normalized as by [layout.Buf.Finish].
	Text string

	// The display width of the widest line of Text.
	Width int

	// The number of lines in Text.
	Lines int
}

// ErrPanic is returned by [Formatter.Format] when laying out or rendering a
// definition panics. Malformed trees panic, so this usually indicates a bug
// in whatever built the tree.
type ErrPanic struct {
	Index int    // The index of the definition that panicked.
	Panic any    // The recovered value.
	Stack []byte // The stack of the panicking goroutine.
}

// Error implements [error].
func (e *ErrPanic) Error() string {
	return fmt.Sprintf("layoutfmt: panic while formatting definition %d: %v", e.Index, e.Panic)
}

// Unwrap returns the recovered value if it is an error.
func (e *ErrPanic) Unwrap() error {
	err, _ := e.Panic.(error)
	return err
}

// Format lays out and renders each of defs. The results are in the same order
// as defs.
//
// If formatting any definition fails, the error for the earliest such
// definition is returned.
func (f *Formatter) Format(ctx context.Context, defs ...layout.Nodify) ([]Result, error) {
	if len(defs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := f.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		f:      f,
		s:      semaphore.NewWeighted(int64(par)),
		logger: f.logger(),
	}
	e.logger.DebugContext(ctx, "formatting", "defs", len(defs), "parallelism", par)

	results := make([]*result, len(defs))
	for i, def := range defs {
		results[i] = e.format(ctx, i, def)
	}

	out := make([]Result, len(defs))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.res
	}

	return out, nil
}

func (f *Formatter) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return f.Logger
}

type result struct {
	ready chan struct{}
	res   Result
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	f      *Formatter
	s      *semaphore.Weighted
	logger *slog.Logger
}

func (e *executor) format(ctx context.Context, i int, def layout.Nodify) *result {
	r := &result{
		ready: make(chan struct{}),
	}
	go func() {
		e.doFormat(ctx, i, def, r)
	}()
	return r
}

func (e *executor) doFormat(ctx context.Context, i int, def layout.Nodify, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)
	if err := ctx.Err(); err != nil {
		r.fail(err)
		return
	}

	defer func() {
		if panicked := recover(); panicked != nil {
			e.logger.ErrorContext(ctx, "panic while formatting", "index", i, "panic", panicked)
			r.fail(&ErrPanic{Index: i, Panic: panicked, Stack: debug.Stack()})
		}
	}()

	// Arenas belong to the goroutine that created them, so each definition
	// gets its own.
	arena := layout.NewArena()
	info := def.ToNode(arena)

	buf := layout.NewBuf(e.f.Options)
	info.Format(buf, layout.NotNeeded, layout.NewlinesYes, 0)
	text := buf.Finish()

	res := Result{
		Text:  text,
		Width: layout.MaxLineWidth(text),
		Lines: strings.Count(text, "\n"),
	}
	e.logger.DebugContext(ctx, "formatted",
		"index", i,
		"lines", res.Lines,
		"width", res.Width,
		"allocs", arena.Len(),
	)
	r.complete(res)
}
