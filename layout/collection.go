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

// Collection builds a comma-separated, bracketed collection of items, with
// after as the comments between the last item and the closing bracket.
//
// If nothing in the collection is multiline, it is laid out on one line:
//
//	(a, b)
//	[A, B]
//	{ x : a, y : b }
//
// Otherwise, every item goes on its own line with a trailing comma, and the
// closing bracket goes on a line of its own. Comments trailing an item are
// kept on that item's line, after its comma.
func (a *Arena) Collection(braces Braces, items []NodeInfo, after []Trivia) *DelimitedSequence {
	a.check()
	multiline := len(after) > 0
	for _, item := range items {
		multiline = multiline || item.IsMultiline()
	}

	out := a.delimitedItems.Alloc(len(items))
	if !multiline {
		for i, item := range items {
			out[i] = DelimitedItem{
				Node:       item.Node,
				Space:      i > 0 || braces == Curly,
				CommaAfter: i < len(items)-1,
			}
		}

		sp := EmptySp()
		if braces == Curly && len(items) > 0 {
			sp = SpaceSp()
		}
		return a.delimited.Alloc(DelimitedSequence{
			Braces:      braces,
			IndentItems: true,
			Items:       out,
			After:       sp,
		})
	}

	var carry []Trivia
	for i, item := range items {
		out[i] = DelimitedItem{
			Before:     a.Concat(carry, item.Before),
			Newline:    true,
			Node:       item.Node,
			CommaAfter: true,
		}
		carry = item.After
	}

	return a.delimited.Alloc(DelimitedSequence{
		Braces:      braces,
		IndentItems: true,
		Items:       out,
		After:       SpForceNewline(a.Concat(carry, after)),
	})
}

// Concat joins two runs of trivia. It only allocates if both are non-empty.
func (a *Arena) Concat(x, y []Trivia) []Trivia {
	switch {
	case len(x) == 0:
		return y
	case len(y) == 0:
		return x
	}
	a.check()
	out := a.trivia.Alloc(len(x) + len(y))
	copy(out[copy(out, x):], y)
	return out
}
