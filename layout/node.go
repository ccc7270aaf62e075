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

// Node is a node in a layout tree.
//
// The set of nodes is closed: it is exactly [Literal], [*Sequence],
// [*DelimitedSequence], [*CommaSequence], [AnnotationNode] and
// [PatternNode]. The last two hand rendering off to an external
// [Formattable].
type Node interface {
	Formattable

	isNode()
}

// Literal is opaque text, rendered verbatim. It must not contain line breaks.
type Literal string

// Sequence is a node followed by a run of spaced nodes, rendered left to
// right.
type Sequence struct {
	First Node

	// If set, Rest is rendered one indentation level deeper than the line
	// First starts on.
	ExtraIndentForRest bool
	Rest               []Spaced
}

// Spaced is a node together with the spacing that precedes it.
type Spaced struct {
	Sp   Sp
	Node Node
}

// DelimitedSequence is a run of items wrapped in brackets.
type DelimitedSequence struct {
	Braces      Braces
	IndentItems bool
	Items       []DelimitedItem

	// Rendered just before the closing bracket, so that trailing comments
	// stay inside the brackets.
	After Sp
}

// DelimitedItem is one item of a [DelimitedSequence].
type DelimitedItem struct {
	Before  []Trivia
	Newline bool // Start this item on a new line.
	Space   bool // Separate this item with a space; ignored if Newline is set.
	Node    Node

	CommaAfter bool
}

// CommaSequence is a node followed by a run of comma-separated items, as in
// an argument list.
//
// AllowBlankLines and AllowNewlines control how much of the line structure
// in each item's leading trivia survives: blank lines and newlines, just
// newlines, or nothing but the comments themselves.
type CommaSequence struct {
	AllowBlankLines bool
	AllowNewlines   bool
	IndentRest      bool

	First Node
	Rest  []Item
}

// Item is one item of a [CommaSequence] after the first.
type Item struct {
	CommaBefore bool
	Before      []Trivia
	Newline     bool // Start this item on a new line.
	Space       bool // Separate this item with a space; ignored if Newline is set.
	Node        Node
}

// AnnotationNode embeds a type annotation rendered by its own [Formattable].
type AnnotationNode struct {
	Ann Formattable
}

// PatternNode embeds a pattern rendered by its own [Formattable].
type PatternNode struct {
	Pat Formattable
}

// IsMultiline implements [Formattable].
func (Literal) IsMultiline() bool {
	return false
}

// IsMultiline implements [Formattable].
func (s *Sequence) IsMultiline() bool {
	if s.First.IsMultiline() {
		return true
	}
	for _, r := range s.Rest {
		if r.Sp.IsMultiline() || r.Node.IsMultiline() {
			return true
		}
	}
	return false
}

// IsMultiline implements [Formattable].
func (d *DelimitedSequence) IsMultiline() bool {
	if d.After.IsMultiline() {
		return true
	}
	for _, item := range d.Items {
		if item.IsMultiline() {
			return true
		}
	}
	return false
}

// IsMultiline returns whether this item forces its sequence onto multiple
// lines.
func (item DelimitedItem) IsMultiline() bool {
	return item.Newline || len(item.Before) > 0 || item.Node.IsMultiline()
}

// IsMultiline implements [Formattable].
func (c *CommaSequence) IsMultiline() bool {
	if c.First.IsMultiline() {
		return true
	}
	for _, item := range c.Rest {
		if item.IsMultiline() {
			return true
		}
	}
	return false
}

// IsMultiline returns whether this item forces its sequence onto multiple
// lines.
func (item Item) IsMultiline() bool {
	return item.Newline || len(item.Before) > 0 || item.Node.IsMultiline()
}

// IsMultiline implements [Formattable].
func (n AnnotationNode) IsMultiline() bool {
	return delegate(n.Ann, "annotation").IsMultiline()
}

// IsMultiline implements [Formattable].
func (n PatternNode) IsMultiline() bool {
	return delegate(n.Pat, "pattern").IsMultiline()
}

func (Literal) isNode()            {}
func (*Sequence) isNode()          {}
func (*DelimitedSequence) isNode() {}
func (*CommaSequence) isNode()     {}
func (AnnotationNode) isNode()     {}
func (PatternNode) isNode()        {}

// delegate checks that an embedded renderer is present.
func delegate(f Formattable, what string) Formattable {
	if f == nil {
		panic("layoutfmt/layout: " + what + " node has no renderer")
	}
	return f
}
