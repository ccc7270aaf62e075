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
	"strings"
)

// Dump renders a tree as pseudo-HTML, showing its structure rather than its
// text. Intended for debugging.
//
//	<seq>
//	    "a"
//	    <sp space>
//	    "b"
//	</seq>
func Dump(n Node) string {
	d := dumper{}
	d.node(n)
	return d.out.String()
}

type dumper struct {
	out   strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...any) {
	for range d.depth {
		d.out.WriteString("    ")
	}
	fmt.Fprintf(&d.out, format, args...)
	d.out.WriteByte('\n')
}

func (d *dumper) open(format string, args ...any) {
	d.line(format, args...)
	d.depth++
}

func (d *dumper) close(tag string) {
	d.depth--
	d.line("</%s>", tag)
}

func (d *dumper) node(n Node) {
	switch n := n.(type) {
	case nil:
		d.line("<nil>")

	case Literal:
		d.line("%q", string(n))

	case *Sequence:
		attrs := ""
		if n.ExtraIndentForRest {
			attrs = " indent"
		}
		d.open("<seq%s>", attrs)
		d.node(n.First)
		for _, r := range n.Rest {
			d.sp(r.Sp)
			d.node(r.Node)
		}
		d.close("seq")

	case *DelimitedSequence:
		attrs := ""
		if n.IndentItems {
			attrs = " indent"
		}
		d.open("<delim %q%s>", string(n.Braces.Start())+string(n.Braces.End()), attrs)
		for _, item := range n.Items {
			d.trivia(item.Before)
			switch {
			case item.Newline:
				d.line("<br>")
			case item.Space:
				d.line("<sp>")
			}
			d.node(item.Node)
			if item.CommaAfter {
				d.line("<comma>")
			}
		}
		d.sp(n.After)
		d.close("delim")

	case *CommaSequence:
		var attrs string
		if n.AllowBlankLines {
			attrs += " blank-lines"
		}
		if n.AllowNewlines {
			attrs += " newlines"
		}
		if n.IndentRest {
			attrs += " indent"
		}
		d.open("<commas%s>", attrs)
		d.node(n.First)
		for _, item := range n.Rest {
			if item.CommaBefore {
				d.line("<comma>")
			}
			d.trivia(item.Before)
			switch {
			case item.Newline:
				d.line("<br>")
			case item.Space:
				d.line("<sp>")
			}
			d.node(item.Node)
		}
		d.close("commas")

	case AnnotationNode:
		d.line("<annotation %T>", n.Ann)

	case PatternNode:
		d.line("<pattern %T>", n.Pat)

	default:
		d.line("<unknown %T>", n)
	}
}

func (d *dumper) sp(sp Sp) {
	switch {
	case len(sp.Comments) > 0:
		d.trivia(sp.Comments)
	case sp.ForceNewline:
		d.line("<sp newline>")
	case sp.DefaultSpace:
		d.line("<sp space>")
	}
}

func (d *dumper) trivia(run []Trivia) {
	if len(run) == 0 {
		return
	}
	parts := make([]string, len(run))
	for i, t := range run {
		parts[i] = t.String()
	}
	d.line("<trivia %q>", parts)
}
