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

// SequenceBuilder assembles a [Sequence] of unknown length, such as a chain
// of binary operators, one spaced node at a time.
type SequenceBuilder struct {
	arena *Arena
	first Node
	extra bool
	rest  []Spaced
}

// NewSequenceBuilder starts a sequence with the given first node. capacity
// is a hint for how many nodes will be pushed after it.
func NewSequenceBuilder(a *Arena, first Node, capacity int, extraIndentForRest bool) *SequenceBuilder {
	return &SequenceBuilder{
		arena: a,
		first: first,
		extra: extraIndentForRest,
		rest:  a.allocSpaced(max(capacity, 0))[:0],
	}
}

// Push appends a node, preceded by the given spacing.
func (b *SequenceBuilder) Push(sp Sp, n Node) {
	if b.arena == nil {
		panic("layoutfmt/layout: SequenceBuilder.Push called after Build")
	}

	if len(b.rest) == cap(b.rest) {
		// The old region is abandoned rather than reused, so nothing that
		// may already point into it can observe the growth.
		grown := b.arena.allocSpaced(max(2*cap(b.rest), 4))
		b.rest = grown[:copy(grown, b.rest)]
	}
	b.rest = append(b.rest, Spaced{Sp: sp, Node: n})
}

// Len returns the number of nodes pushed after the first.
func (b *SequenceBuilder) Len() int {
	return len(b.rest)
}

// Build freezes the builder into a [Sequence]. The builder may not be used
// afterwards.
func (b *SequenceBuilder) Build() *Sequence {
	if b.arena == nil {
		panic("layoutfmt/layout: SequenceBuilder.Build called twice")
	}

	a := b.arena
	a.check()
	seq := a.sequences.Alloc(Sequence{
		First:              b.first,
		ExtraIndentForRest: b.extra,
		Rest:               b.rest[:len(b.rest):len(b.rest)],
	})
	*b = SequenceBuilder{}
	return seq
}
