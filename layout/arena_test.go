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

package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inGoroutine runs f on a fresh goroutine and returns whatever it panicked
// with, if anything.
func inGoroutine(f func()) (recovered any) {
	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		f()
	}()
	return <-done
}

func TestArenaOwnership(t *testing.T) {
	t.Parallel()

	a := NewArena()
	a.Trivia(Newline)

	r := inGoroutine(func() { a.Trivia(Newline) })
	require.NotNil(t, r)
	assert.Contains(t, fmt.Sprint(r), "layoutfmt/layout: arena owned by goroutine")

	// A zero arena belongs to whoever uses it first.
	var b Arena
	require.Nil(t, inGoroutine(func() { b.Sequence(Literal("a"), false) }))
	r = inGoroutine(func() {
		NewSequenceBuilder(&b, Literal("a"), 1, false)
	})
	assert.NotNil(t, r)
	assert.Panics(t, func() { b.Delimited(Round, false, EmptySp()) })
}

func TestArenaLen(t *testing.T) {
	t.Parallel()

	var a Arena
	assert.Equal(t, 0, a.Len())

	a.Sequence(Literal("a"), false,
		Spaced{Sp: SpaceSp(), Node: Literal("b")},
		Spaced{Sp: SpaceSp(), Node: Literal("c")},
	)
	assert.Equal(t, 3, a.Len())

	a.Trivia()
	assert.Equal(t, 3, a.Len())
	a.Trivia(Newline, LineComment("x"))
	assert.Equal(t, 5, a.Len())
}

func TestArenaCopies(t *testing.T) {
	t.Parallel()

	a := NewArena()
	run := []Trivia{LineComment("a")}
	copied := a.Trivia(run...)
	run[0] = LineComment("b")
	assert.Equal(t, LineComment("a"), copied[0])

	items := []Item{{Node: Literal("y")}}
	seq := a.Commas(CommaSequence{First: Literal("x"), Rest: items})
	items[0].Node = Literal("z")
	assert.Equal(t, Literal("y"), seq.Rest[0].Node)
}

func TestSpaceSeq3(t *testing.T) {
	t.Parallel()

	a := NewArena()
	seq := a.SpaceSeq3(Literal("when"), nil, Literal("x"), nil, Literal("is"))
	assert.False(t, seq.IsMultiline())
	assert.Equal(t, "when x is", Render(seq, Options{}))

	seq = a.SpaceSeq3(Literal("when"), a.Trivia(LineComment("c")), Literal("x"), nil, Literal("is"))
	assert.True(t, seq.IsMultiline())
	assert.Equal(t, "when # c\n    x is", Render(seq, Options{}))
}
