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

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/layoutfmt/layout"
)

func TestIsMultiline(t *testing.T) {
	t.Parallel()

	a := layout.NewArena()
	comment := a.Trivia(layout.LineComment("c"))

	tests := []struct {
		name string
		node layout.Node
		want bool
	}{
		{"literal", lit("x"), false},

		{"seq", a.Sequence(lit("x"), true, layout.Spaced{Sp: layout.SpaceSp(), Node: lit("y")}), false},
		{"seq-newline", a.Sequence(lit("x"), false, layout.Spaced{Sp: layout.SpForceNewline(nil), Node: lit("y")}), true},
		{"seq-comment", a.Sequence(lit("x"), false, layout.Spaced{Sp: layout.SpFrom(comment), Node: lit("y")}), true},

		{"delim", a.Delimited(layout.Round, true, layout.SpaceSp(), layout.DelimitedItem{Space: true, Node: lit("x")}), false},
		{"delim-after", a.Delimited(layout.Round, true, layout.SpForceNewline(nil), layout.DelimitedItem{Node: lit("x")}), true},
		{"delim-newline", a.Delimited(layout.Round, true, layout.EmptySp(), layout.DelimitedItem{Newline: true, Node: lit("x")}), true},
		{"delim-before", a.Delimited(layout.Round, true, layout.EmptySp(), layout.DelimitedItem{Before: comment, Node: lit("x")}), true},

		{"commas", a.Commas(layout.CommaSequence{First: lit("x"), Rest: []layout.Item{{CommaBefore: true, Space: true, Node: lit("y")}}}), false},
		{"commas-newline", a.Commas(layout.CommaSequence{First: lit("x"), Rest: []layout.Item{{Newline: true, Node: lit("y")}}}), true},
		{"commas-before", a.Commas(layout.CommaSequence{First: lit("x"), Rest: []layout.Item{{Before: a.Trivia(layout.Newline), Node: lit("y")}}}), true},

		{"annotation", layout.AnnotationNode{Ann: &delegate{}}, false},
		{"pattern", layout.PatternNode{Pat: &delegate{multiline: true}}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.IsMultiline(), tt.name)
	}
}

// TestMultilinePropagates checks that a comment anywhere in a tree makes
// every one of its ancestors multiline.
func TestMultilinePropagates(t *testing.T) {
	t.Parallel()

	// Each entry wraps a child in one more layer of tree.
	wrappers := []func(a *layout.Arena, child layout.Node) layout.Node{
		func(a *layout.Arena, child layout.Node) layout.Node {
			return a.Sequence(lit("f"), true, layout.Spaced{Sp: layout.SpaceSp(), Node: child})
		},
		func(a *layout.Arena, child layout.Node) layout.Node {
			return a.Sequence(child, false)
		},
		func(a *layout.Arena, child layout.Node) layout.Node {
			return a.Delimited(layout.Square, true, layout.EmptySp(),
				layout.DelimitedItem{Node: lit("a"), CommaAfter: true},
				layout.DelimitedItem{Space: true, Node: child},
			)
		},
		func(a *layout.Arena, child layout.Node) layout.Node {
			return a.Commas(layout.CommaSequence{
				First: lit("x"),
				Rest:  []layout.Item{{CommaBefore: true, Space: true, Node: child}},
			})
		},
		func(a *layout.Arena, child layout.Node) layout.Node {
			return a.Commas(layout.CommaSequence{First: child})
		},
	}

	build := func(leaf layout.Node) []layout.Node {
		a := layout.NewArena()
		chain := []layout.Node{leaf}
		for _, wrap := range wrappers {
			chain = append(chain, wrap(a, chain[len(chain)-1]))
		}
		return chain
	}

	for _, n := range build(lit("leaf")) {
		assert.False(t, n.IsMultiline(), "%s", layout.Dump(n))
	}

	a := layout.NewArena()
	leaf := a.Sequence(lit("leaf"), false, layout.Spaced{
		Sp:   layout.SpWithSpace(a.Trivia(layout.LineComment(" note"))),
		Node: lit("tail"),
	})
	for _, n := range build(leaf) {
		assert.True(t, n.IsMultiline(), "%s", layout.Dump(n))
	}
}
