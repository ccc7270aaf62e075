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

package layoutfmt_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/layoutfmt"
	"github.com/bufbuild/layoutfmt/annotation"
	"github.com/bufbuild/layoutfmt/layout"
)

var record = annotation.Record{Fields: []annotation.Field{
	{Name: "x", Type: annotation.Spaced{
		Type:  annotation.Var("a"),
		After: []layout.Trivia{layout.LineComment(" first")},
	}},
	{Name: "y", Type: annotation.Var("b")},
}}

func panics(v any) layout.Nodify {
	return layout.NodifyFunc(func(*layout.Arena) layout.NodeInfo {
		panic(v)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	f := layoutfmt.Formatter{}
	results, err := f.Format(context.Background(),
		annotation.Function{
			Args:   []annotation.Type{annotation.Var("a"), annotation.Var("b")},
			Result: annotation.Var("c"),
		},
		record,
	)
	require.NoError(t, err)
	assert.Equal(t, []layoutfmt.Result{
		{Text: "a, b -> c\n", Width: 9, Lines: 1},
		{Text: "{\n    x : a, # first\n    y : b,\n}\n", Width: 18, Lines: 4},
	}, results)

	f.Options.IndentWidth = 2
	results, err = f.Format(context.Background(), record)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "{\n  x : a, # first\n  y : b,\n}\n", results[0].Text)

	results, err = f.Format(context.Background())
	require.NoError(t, err)
	assert.Nil(t, results)
}

func TestOrder(t *testing.T) {
	t.Parallel()

	var defs []layout.Nodify
	for i := range 100 {
		defs = append(defs, annotation.Apply{
			Name: "List",
			Args: []annotation.Type{annotation.Var(fmt.Sprint("v", i))},
		})
	}

	for _, par := range []int{0, 1, 3, 200} {
		f := layoutfmt.Formatter{MaxParallelism: par}
		results, err := f.Format(context.Background(), defs...)
		require.NoError(t, err)
		require.Len(t, results, len(defs))
		for i, r := range results {
			assert.Equal(t, fmt.Sprintf("List v%d\n", i), r.Text, "parallelism %d", par)
		}
	}
}

func TestPanic(t *testing.T) {
	t.Parallel()

	f := layoutfmt.Formatter{MaxParallelism: 4}
	ok := annotation.Var("a")

	_, err := f.Format(context.Background(), ok, panics("aaa!"), ok, panics("bbb!"))
	var panicked *layoutfmt.ErrPanic
	require.ErrorAs(t, err, &panicked)
	assert.Equal(t, 1, panicked.Index)
	assert.Equal(t, "aaa!", panicked.Panic)
	assert.NotEmpty(t, panicked.Stack)
	assert.Equal(t, "layoutfmt: panic while formatting definition 1: aaa!", err.Error())

	_, err = f.Format(context.Background(), panics(io.EOF))
	require.ErrorIs(t, err, io.EOF)

	// A malformed tree is reported rather than crashing the batch.
	bad := layout.NodifyFunc(func(*layout.Arena) layout.NodeInfo {
		return layout.Info(layout.Literal("a\nb"))
	})
	_, err = f.Format(context.Background(), ok, bad)
	require.ErrorAs(t, err, &panicked)
	assert.Equal(t, 1, panicked.Index)
	assert.Equal(t, `layoutfmt/layout: multiline literal: "a\nb"`, panicked.Panic)
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := layoutfmt.Formatter{MaxParallelism: 1}
	_, err := f.Format(ctx, annotation.Var("a"), annotation.Var("b"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	f := layoutfmt.Formatter{
		Logger: slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	_, err := f.Format(context.Background(), record)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "msg=formatting defs=1")
	assert.Contains(t, out.String(), "msg=formatted index=0 lines=4 width=18")

	out.Reset()
	_, err = f.Format(context.Background(), panics(errors.New("oops")))
	require.Error(t, err)
	assert.Contains(t, out.String(), `msg="panic while formatting" index=0 panic=oops`)
}
