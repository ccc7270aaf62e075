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

	"github.com/petermattis/goid"

	"github.com/bufbuild/layoutfmt/internal/arena"
)

// Arena allocates every composite node, slice and trivia run for one
// formatting pass. Nothing allocated from it moves or is freed until the
// whole arena is dropped.
//
// An Arena belongs to the goroutine that first allocates from it. Using it
// from any other goroutine panics; give each concurrent pass its own.
//
// A zero Arena is empty and ready to use.
type Arena struct {
	owner int64

	sequences arena.Arena[Sequence]
	delimited arena.Arena[DelimitedSequence]
	commas    arena.Arena[CommaSequence]

	spaced         arena.Slab[Spaced]
	delimitedItems arena.Slab[DelimitedItem]
	items          arena.Slab[Item]
	trivia         arena.Slab[Trivia]
}

// NewArena returns a new arena owned by the calling goroutine.
func NewArena() *Arena {
	return &Arena{owner: goid.Get()}
}

// Sequence allocates a [Sequence].
func (a *Arena) Sequence(first Node, extraIndentForRest bool, rest ...Spaced) *Sequence {
	a.check()
	return a.sequences.Alloc(Sequence{
		First:              first,
		ExtraIndentForRest: extraIndentForRest,
		Rest:               a.spaced.Copy(rest...),
	})
}

// SpaceSeq3 allocates the sequence a b c, where each gap is either a single
// space or the given comments, and b and c are indented one level deeper than
// a if they land on their own lines.
func (a *Arena) SpaceSeq3(first Node, bComments []Trivia, b Node, cComments []Trivia, c Node) *Sequence {
	return a.Sequence(first, true,
		Spaced{Sp: SpWithSpace(bComments), Node: b},
		Spaced{Sp: SpWithSpace(cComments), Node: c},
	)
}

// Delimited allocates a [DelimitedSequence].
func (a *Arena) Delimited(braces Braces, indentItems bool, after Sp, items ...DelimitedItem) *DelimitedSequence {
	a.check()
	return a.delimited.Alloc(DelimitedSequence{
		Braces:      braces,
		IndentItems: indentItems,
		Items:       a.delimitedItems.Copy(items...),
		After:       after,
	})
}

// Commas allocates a copy of a [CommaSequence], including its items.
func (a *Arena) Commas(seq CommaSequence) *CommaSequence {
	a.check()
	seq.Rest = a.items.Copy(seq.Rest...)
	return a.commas.Alloc(seq)
}

// Trivia allocates a copy of a run of trivia.
func (a *Arena) Trivia(run ...Trivia) []Trivia {
	a.check()
	return a.trivia.Copy(run...)
}

// Len returns the number of values allocated so far, counting each element
// of a slice separately.
func (a *Arena) Len() int {
	return a.sequences.Len() + a.delimited.Len() + a.commas.Len() +
		a.spaced.Len() + a.delimitedItems.Len() + a.items.Len() + a.trivia.Len()
}

// allocSpaced allocates room for n spaced nodes.
func (a *Arena) allocSpaced(n int) []Spaced {
	a.check()
	return a.spaced.Alloc(n)
}

// check claims this arena for the calling goroutine if it is unowned, and
// panics if some other goroutine owns it.
func (a *Arena) check() {
	id := goid.Get()
	switch a.owner {
	case 0:
		a.owner = id
	case id:
	default:
		panic(fmt.Sprintf(
			"layoutfmt/layout: arena owned by goroutine %d used from goroutine %d",
			a.owner, id))
	}
}
