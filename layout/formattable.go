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

const (
	NewlinesNo  Newlines = iota // Keep the node on as few lines as possible.
	NewlinesYes                 // Line breaks may be introduced.
)

// Newlines is a hint passed down to renderers about whether they may
// introduce line breaks of their own.
type Newlines byte

// Formattable is anything that can render itself into a [Buf].
//
// Every [Node] is Formattable. Delegates embedded in a tree through
// [AnnotationNode] and [PatternNode] are also Formattable.
type Formattable interface {
	// IsMultiline returns whether rendering this may produce a line break.
	//
	// This must be monotone: if any part of the value is multiline, so is
	// the whole.
	IsMultiline() bool

	// Format writes this value into buf, starting lines at indent.
	Format(buf *Buf, parens Parens, newlines Newlines, indent uint16)
}

// Nodify is anything that can be converted into a layout tree.
type Nodify interface {
	// ToNode builds a tree for this value, allocating from a.
	ToNode(a *Arena) NodeInfo
}

// NodifyFunc adapts a function into a [Nodify].
type NodifyFunc func(a *Arena) NodeInfo

// ToNode implements [Nodify].
func (f NodifyFunc) ToNode(a *Arena) NodeInfo {
	return f(a)
}
