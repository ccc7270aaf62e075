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

// Sp is a spacing directive: what goes between two adjacent nodes.
//
// If Comments is non-empty, they are replayed and the other two fields are
// ignored. Otherwise ForceNewline ensures a line break, and failing that
// DefaultSpace ensures a space. The zero Sp renders as nothing at all.
type Sp struct {
	DefaultSpace bool // Use a space if there are no comments.
	ForceNewline bool // Use a line break if there are no comments.
	Comments     []Trivia
}

// EmptySp returns a directive that renders as nothing.
func EmptySp() Sp {
	return Sp{}
}

// SpaceSp returns a directive that renders as a single space.
func SpaceSp() Sp {
	return Sp{DefaultSpace: true}
}

// SpWithSpace returns a directive that replays comments, or renders as a
// single space if there are none.
func SpWithSpace(comments []Trivia) Sp {
	return Sp{DefaultSpace: true, Comments: comments}
}

// SpMaybeWithSpace is like [SpWithSpace], but the space is optional.
func SpMaybeWithSpace(space bool, comments []Trivia) Sp {
	return Sp{DefaultSpace: space, Comments: comments}
}

// SpForceNewline returns a directive that replays comments, or renders as a
// line break if there are none.
func SpForceNewline(comments []Trivia) Sp {
	return Sp{ForceNewline: true, Comments: comments}
}

// SpFrom returns a directive that replays comments and otherwise renders as
// nothing.
func SpFrom(comments []Trivia) Sp {
	return Sp{Comments: comments}
}

// IsMultiline returns whether this directive can put a line break into the
// output.
func (sp Sp) IsMultiline() bool {
	return sp.ForceNewline || len(sp.Comments) > 0
}

// Format writes this directive to buf, placing any comments at indent.
func (sp Sp) Format(buf *Buf, indent uint16) {
	switch {
	case len(sp.Comments) > 0:
		FormatSpaces(buf, sp.Comments, indent)
	case sp.ForceNewline:
		buf.EnsureEndsWithNewline()
	case sp.DefaultSpace:
		buf.EnsureEndsWithWhitespace()
	}
}
