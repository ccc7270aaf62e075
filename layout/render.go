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
	"strconv"
	"strings"
)

// Render renders a tree at the top level and returns the resulting text.
func Render(n Node, options Options) string {
	buf := NewBuf(options)
	format(buf, n, NotNeeded, NewlinesYes, 0)
	return buf.Text()
}

// Format implements [Formattable].
func (l Literal) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, l, parens, newlines, indent)
}

// Format implements [Formattable].
func (s *Sequence) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, s, parens, newlines, indent)
}

// Format implements [Formattable].
func (d *DelimitedSequence) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, d, parens, newlines, indent)
}

// Format implements [Formattable].
func (c *CommaSequence) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, c, parens, newlines, indent)
}

// Format implements [Formattable].
func (n AnnotationNode) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, n, parens, newlines, indent)
}

// Format implements [Formattable].
func (n PatternNode) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	format(buf, n, parens, newlines, indent)
}

// format is the rendering engine's main dispatch.
//
// parens and newlines are passed down to every child unchanged; only
// delegates act on them.
func format(buf *Buf, n Node, parens Parens, newlines Newlines, indent uint16) {
	switch n := n.(type) {
	case nil:
		panic("layoutfmt/layout: rendered a nil node")

	case Literal:
		if strings.ContainsRune(string(n), '\n') {
			panic("layoutfmt/layout: multiline literal: " + strconv.Quote(string(n)))
		}
		buf.Indent(indent)
		buf.PushStr(string(n))

	case *Sequence:
		if n == nil {
			panic("layoutfmt/layout: rendered a nil *Sequence")
		}
		formatSequence(buf, n, parens, newlines, indent)

	case *DelimitedSequence:
		if n == nil {
			panic("layoutfmt/layout: rendered a nil *DelimitedSequence")
		}
		formatDelimited(buf, n, parens, newlines, indent)

	case *CommaSequence:
		if n == nil {
			panic("layoutfmt/layout: rendered a nil *CommaSequence")
		}
		formatCommas(buf, n, parens, newlines, indent)

	case AnnotationNode:
		delegate(n.Ann, "annotation").Format(buf, parens, newlines, indent)

	case PatternNode:
		delegate(n.Pat, "pattern").Format(buf, parens, newlines, indent)

	default:
		sorry(fmt.Sprintf("rendering %T", n))
	}
}

func formatSequence(buf *Buf, s *Sequence, parens Parens, newlines Newlines, indent uint16) {
	buf.Indent(indent)
	// If this sequence starts partway through a line, the rest is indented
	// relative to wherever that line started, not to indent.
	lineIndent := buf.CurLineIndent()
	format(buf, s.First, parens, newlines, indent)

	next := indent
	if s.ExtraIndentForRest {
		next = lineIndent + buf.IndentWidth()
	}
	for _, r := range s.Rest {
		r.Sp.Format(buf, next)
		format(buf, r.Node, parens, newlines, next)
	}
}

func formatDelimited(buf *Buf, d *DelimitedSequence, parens Parens, newlines Newlines, indent uint16) {
	buf.Indent(indent)
	buf.Push(d.Braces.Start())

	inner := indent
	if d.IndentItems {
		inner += buf.IndentWidth()
	}

	for _, item := range d.Items {
		FormatSpaces(buf, item.Before, inner)
		if item.Newline {
			buf.EnsureEndsWithNewline()
		} else if item.Space {
			buf.EnsureEndsWithWhitespace()
		}
		format(buf, item.Node, parens, newlines, inner)
		if item.CommaAfter {
			buf.Push(',')
		}
	}
	d.After.Format(buf, inner)

	buf.Indent(indent)
	buf.Push(d.Braces.End())
}

func formatCommas(buf *Buf, c *CommaSequence, parens Parens, newlines Newlines, indent uint16) {
	buf.Indent(indent)

	inner := indent
	if c.IndentRest {
		inner += buf.IndentWidth()
	}

	format(buf, c.First, parens, newlines, indent)
	for _, item := range c.Rest {
		if item.CommaBefore {
			buf.Push(',')
		}

		switch {
		case c.AllowBlankLines:
			// Blank-line-preserving comments sit flush with the sequence
			// itself, not with its items.
			FormatSpaces(buf, item.Before, indent)
		case c.AllowNewlines:
			FormatSpacesNoBlankLines(buf, item.Before, inner)
		default:
			FormatCommentsOnly(buf, item.Before, NewlineAtBottom, inner)
		}

		if item.Newline {
			buf.EnsureEndsWithNewline()
		} else if item.Space {
			buf.EnsureEndsWithWhitespace()
		}
		format(buf, item.Node, parens, newlines, inner)
	}
}

func sorry(what string) {
	panic("layoutfmt/layout: not yet implemented: " + what)
}
