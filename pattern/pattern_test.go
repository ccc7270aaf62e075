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

package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/layoutfmt/layout"
	"github.com/bufbuild/layoutfmt/pattern"
)

type (
	Ident = pattern.Identifier
	Tag   = pattern.Tag
	P     = pattern.Pattern
)

func render(p P, parens layout.Parens) string {
	buf := layout.NewBuf(layout.Options{})
	p.Format(buf, parens, layout.NewlinesYes, 0)
	return buf.Text()
}

func TestFormat(t *testing.T) {
	t.Parallel()

	comment := func(text string) []layout.Trivia {
		return []layout.Trivia{layout.LineComment(text)}
	}

	tests := []struct {
		name   string
		pat    P
		parens layout.Parens
		want   string
	}{
		{name: "ident", pat: Ident("x"), want: "x"},
		{name: "underscore", pat: pattern.Underscore(""), want: "_"},
		{name: "underscore-named", pat: pattern.Underscore("ignored"), want: "_ignored"},

		{name: "tag", pat: Tag{Name: "None"}, parens: layout.InApply, want: "None"},
		{name: "tag-args", pat: Tag{Name: "Pair", Args: []P{Ident("a"), Ident("b")}}, want: "Pair a b"},
		{name: "tag-nested", pat: Tag{Name: "Ok", Args: []P{Tag{Name: "Just", Args: []P{Ident("x")}}}}, want: "Ok (Just x)"},
		{name: "tag-in-apply", pat: Tag{Name: "Ok", Args: []P{Ident("x")}}, parens: layout.InApply, want: "(Ok x)"},
		{name: "tag-in-collection", pat: Tag{Name: "Ok", Args: []P{Ident("x")}}, parens: layout.InCollection, want: "Ok x"},

		{name: "list", pat: pattern.List{Elems: []P{Ident("a"), pattern.Underscore("")}}, want: "[a, _]"},
		{name: "list-empty", pat: pattern.List{}, want: "[]"},
		{name: "list-tags", pat: pattern.List{Elems: []P{Tag{Name: "Ok", Args: []P{Ident("x")}}}}, want: "[Ok x]"},

		{name: "record", pat: pattern.Record{Fields: []pattern.Field{
			{Name: "x"},
			{Name: "y", Pattern: Ident("z")},
		}}, want: "{ x, y: z }"},
		{name: "record-empty", pat: pattern.Record{}, want: "{}"},

		{name: "as", pat: pattern.As{Pattern: Tag{Name: "Ok", Args: []P{Ident("x")}}, Name: "r"}, want: "Ok x as r"},
		{name: "as-in-apply", pat: pattern.As{Pattern: Ident("x"), Name: "r"}, parens: layout.InApply, want: "(x as r)"},
		{name: "as-in-tag", pat: Tag{Name: "Foo", Args: []P{pattern.As{Pattern: Ident("x"), Name: "r"}}}, want: "Foo (x as r)"},
		{name: "as-nested", pat: pattern.As{Pattern: pattern.As{Pattern: Ident("x"), Name: "a"}, Name: "b"}, want: "(x as a) as b"},

		{name: "spaced-after", pat: Tag{Name: "Foo", Args: []P{
			pattern.Spaced{Pattern: Ident("x"), After: comment(" c")},
		}}, want: "Foo x # c"},
		{name: "spaced-before", pat: pattern.List{Elems: []P{
			Ident("a"),
			pattern.Spaced{Before: comment(" c"), Pattern: Ident("b")},
		}}, want: "[a, # c\nb]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(tt.pat, tt.parens))
		})
	}
}

func TestMultiline(t *testing.T) {
	t.Parallel()

	spaced := pattern.Spaced{Pattern: Ident("x"), After: []layout.Trivia{layout.LineComment("c")}}
	assert.False(t, Tag{Name: "Ok", Args: []P{Ident("x")}}.IsMultiline())
	assert.True(t, spaced.IsMultiline())
	assert.True(t, Tag{Name: "Ok", Args: []P{spaced}}.IsMultiline())
	assert.True(t, pattern.List{Elems: []P{Ident("a"), spaced}}.IsMultiline())
	assert.True(t, pattern.Record{Fields: []pattern.Field{{Name: "y", Pattern: spaced}}}.IsMultiline())
	assert.False(t, pattern.Record{Fields: []pattern.Field{{Name: "y"}}}.IsMultiline())
	assert.True(t, pattern.As{Pattern: spaced, Name: "r"}.IsMultiline())

	assert.Equal(t, layout.Term, spaced.Prec())
	assert.Equal(t, layout.AsType, pattern.As{Pattern: Ident("x"), Name: "r"}.Prec())
}

func TestNode(t *testing.T) {
	t.Parallel()

	a := layout.NewArena()
	pat := pattern.Node(Tag{Name: "Ok", Args: []P{Ident("x")}})
	seq := a.Sequence(layout.Literal("when"), false,
		layout.Spaced{Sp: layout.SpaceSp(), Node: pat},
		layout.Spaced{Sp: layout.SpaceSp(), Node: layout.Literal("->")},
	)
	assert.False(t, seq.IsMultiline())
	assert.Equal(t, "when Ok x ->", layout.Render(seq, layout.Options{}))

	// The context a tree is rendered in reaches the embedded pattern.
	buf := layout.NewBuf(layout.Options{})
	seq.Format(buf, layout.InApply, layout.NewlinesYes, 0)
	assert.Equal(t, "when (Ok x) ->", buf.Text())

	commented := pattern.Node(pattern.Spaced{Before: []layout.Trivia{layout.LineComment(" c")}, Pattern: Ident("x")})
	assert.True(t, a.Sequence(layout.Literal("when"), false, layout.Spaced{Node: commented}).IsMultiline())
}
