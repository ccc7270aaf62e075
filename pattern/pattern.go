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

// Package pattern formats destructuring patterns.
//
// Unlike type annotations, patterns do not build layout trees: each one
// writes itself straight into a [layout.Buf], and is embedded into trees
// with [Node].
package pattern

import "github.com/bufbuild/layoutfmt/layout"

// Pattern is a pattern that can format itself.
type Pattern interface {
	layout.Formattable

	// Prec returns how loosely this pattern binds.
	Prec() layout.Prec
}

// Node wraps p for embedding in a layout tree.
func Node(p Pattern) layout.PatternNode {
	return layout.PatternNode{Pat: p}
}

// Identifier binds a name.
type Identifier string

// Underscore ignores a value. The name is optional.
type Underscore string

// Tag matches a tag and its payload, as in Ok x.
type Tag struct {
	Name string
	Args []Pattern
}

// List matches a list, as in [a, b].
type List struct {
	Elems []Pattern
}

// Record destructures a record, as in { x, y: z }.
type Record struct {
	Fields []Field
}

// Field is a field of a [Record].
type Field struct {
	Name    string
	Pattern Pattern // Optional; binds Name itself if nil.
}

// As names the value matched by a pattern, as in Ok x as result.
type As struct {
	Pattern Pattern
	Name    string
}

// Spaced is a pattern with comments before or after it.
type Spaced struct {
	Before  []layout.Trivia
	Pattern Pattern
	After   []layout.Trivia
}

// Prec implements [Pattern].
func (Identifier) Prec() layout.Prec { return layout.Term }

// Prec implements [Pattern].
func (Underscore) Prec() layout.Prec { return layout.Term }

// Prec implements [Pattern].
func (p Tag) Prec() layout.Prec {
	if len(p.Args) == 0 {
		return layout.Term
	}
	return layout.Apply
}

// Prec implements [Pattern].
func (List) Prec() layout.Prec { return layout.Term }

// Prec implements [Pattern].
func (Record) Prec() layout.Prec { return layout.Term }

// Prec implements [Pattern].
func (As) Prec() layout.Prec { return layout.AsType }

// Prec implements [Pattern].
func (p Spaced) Prec() layout.Prec { return p.Pattern.Prec() }

// IsMultiline implements [layout.Formattable].
func (Identifier) IsMultiline() bool { return false }

// IsMultiline implements [layout.Formattable].
func (Underscore) IsMultiline() bool { return false }

// IsMultiline implements [layout.Formattable].
func (p Tag) IsMultiline() bool { return anyMultiline(p.Args) }

// IsMultiline implements [layout.Formattable].
func (p List) IsMultiline() bool { return anyMultiline(p.Elems) }

// IsMultiline implements [layout.Formattable].
func (p Record) IsMultiline() bool {
	for _, f := range p.Fields {
		if f.Pattern != nil && f.Pattern.IsMultiline() {
			return true
		}
	}
	return false
}

// IsMultiline implements [layout.Formattable].
func (p As) IsMultiline() bool { return p.Pattern.IsMultiline() }

// IsMultiline implements [layout.Formattable].
func (p Spaced) IsMultiline() bool {
	return len(p.Before) > 0 || len(p.After) > 0 || p.Pattern.IsMultiline()
}

// Format implements [layout.Formattable].
func (p Identifier) Format(buf *layout.Buf, _ layout.Parens, _ layout.Newlines, indent uint16) {
	buf.Indent(indent)
	buf.PushStr(string(p))
}

// Format implements [layout.Formattable].
func (p Underscore) Format(buf *layout.Buf, _ layout.Parens, _ layout.Newlines, indent uint16) {
	buf.Indent(indent)
	buf.Push('_')
	buf.PushStr(string(p))
}

// Format implements [layout.Formattable].
func (p Tag) Format(buf *layout.Buf, parens layout.Parens, newlines layout.Newlines, indent uint16) {
	wrap(buf, p, parens, indent, func() {
		buf.PushStr(p.Name)
		for i, arg := range p.Args {
			context := layout.InApply
			if i == len(p.Args)-1 {
				context = layout.InApplyLastArg
			}
			buf.EnsureEndsWithWhitespace()
			arg.Format(buf, context, newlines, indent)
		}
	})
}

// Format implements [layout.Formattable].
func (p List) Format(buf *layout.Buf, _ layout.Parens, newlines layout.Newlines, indent uint16) {
	buf.Indent(indent)
	buf.Push('[')
	for i, elem := range p.Elems {
		if i > 0 {
			buf.Indent(indent)
			buf.Push(',')
			buf.EnsureEndsWithWhitespace()
		}
		elem.Format(buf, layout.InCollection, newlines, indent)
	}
	buf.Indent(indent)
	buf.Push(']')
}

// Format implements [layout.Formattable].
func (p Record) Format(buf *layout.Buf, _ layout.Parens, newlines layout.Newlines, indent uint16) {
	buf.Indent(indent)
	buf.Push('{')
	for i, f := range p.Fields {
		if i > 0 {
			buf.Indent(indent)
			buf.Push(',')
		}
		buf.EnsureEndsWithWhitespace()
		buf.Indent(indent)
		buf.PushStr(f.Name)
		if f.Pattern != nil {
			buf.Push(':')
			buf.EnsureEndsWithWhitespace()
			f.Pattern.Format(buf, layout.InCollection, newlines, indent)
		}
	}
	if len(p.Fields) > 0 {
		buf.EnsureEndsWithWhitespace()
	}
	buf.Indent(indent)
	buf.Push('}')
}

// Format implements [layout.Formattable].
func (p As) Format(buf *layout.Buf, parens layout.Parens, newlines layout.Newlines, indent uint16) {
	wrap(buf, p, parens, indent, func() {
		p.Pattern.Format(buf, layout.InAsPattern, newlines, indent)
		buf.EnsureEndsWithWhitespace()
		buf.Indent(indent)
		buf.PushStr("as")
		buf.Spaces(1)
		buf.PushStr(p.Name)
	})
}

// Format implements [layout.Formattable].
func (p Spaced) Format(buf *layout.Buf, parens layout.Parens, newlines layout.Newlines, indent uint16) {
	layout.FormatSpaces(buf, p.Before, indent)
	p.Pattern.Format(buf, parens, newlines, indent)
	layout.FormatSpaces(buf, p.After, indent)
}

// wrap writes body, wrapped in parentheses if p binds too loosely for the
// context given by parens.
func wrap(buf *layout.Buf, p Pattern, parens layout.Parens, indent uint16, body func()) {
	buf.Indent(indent)
	if p.Prec() < layout.PrecOf(parens) {
		body()
		return
	}

	buf.Push('(')
	body()
	buf.Indent(indent)
	buf.Push(')')
}

func anyMultiline(ps []Pattern) bool {
	for _, p := range ps {
		if p.IsMultiline() {
			return true
		}
	}
	return false
}
