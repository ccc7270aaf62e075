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

// NodeInfo is a [Node] together with the comments around it and how tightly
// it binds.
//
// This is the currency of tree construction: a parent looks at its
// children's NodeInfos to decide where they need parentheses and line
// breaks, and then embeds their nodes.
type NodeInfo struct {
	Before []Trivia
	Node   Node
	After  []Trivia

	NeedsIndent bool
	Prec        Prec
}

// Info returns a NodeInfo for a node with no comments that binds as tightly
// as possible.
func Info(n Node) NodeInfo {
	return NodeInfo{
		Node:        n,
		NeedsIndent: true,
		Prec:        Term,
	}
}

// IsMultiline returns whether rendering this, comments included, may produce
// a line break.
func (n NodeInfo) IsMultiline() bool {
	return len(n.Before) > 0 || len(n.After) > 0 || n.Node.IsMultiline()
}

// Format renders the leading comments, the node, and then the trailing
// comments.
func (n NodeInfo) Format(buf *Buf, parens Parens, newlines Newlines, indent uint16) {
	FormatSpaces(buf, n.Before, indent)
	format(buf, n.Node, parens, newlines, indent)
	FormatSpaces(buf, n.After, indent)
}

// AddParens wraps n in parentheses, allocated from a, if it binds too loosely
// to appear in the given context.
//
// n is returned unchanged if its precedence is strictly below
// PrecOf(parens). Otherwise, the result is a round [DelimitedSequence]
// around n with precedence [Term]. n's leading comments are moved in front of
// the opening parenthesis; its trailing comments stay after the closing one.
func (n NodeInfo) AddParens(a *Arena, parens Parens) NodeInfo {
	checkPrec(n.Prec)
	if n.Prec < PrecOf(parens) {
		return n
	}
	return parensAround(a, n, true)
}

// AddTyExtParens wraps n in parentheses for use as the extension of a
// record or tag union type, where it directly abuts the closing bracket.
//
// Anything other than a comment-free [Term] is wrapped. Unlike
// [NodeInfo.AddParens], leading comments stay inside the parentheses.
func (n NodeInfo) AddTyExtParens(a *Arena) NodeInfo {
	checkPrec(n.Prec)
	if n.Prec <= Term && len(n.Before) == 0 {
		return n
	}
	return parensAround(a, n, false)
}

// parensAround wraps n in round brackets. If hoistBefore is set, n's leading
// comments are placed before the brackets rather than inside them.
func parensAround(a *Arena, n NodeInfo, hoistBefore bool) NodeInfo {
	item := DelimitedItem{Node: n.Node}
	out := NodeInfo{After: n.After, NeedsIndent: true, Prec: Term}
	if hoistBefore {
		out.Before = n.Before
	} else {
		item.Before = n.Before
	}

	out.Node = a.Delimited(Round, true, EmptySp(), item)
	return out
}
