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

const (
	KindNewline    TriviaKind = iota // A line break outside of a comment.
	KindComment                      // A line comment, starting with #.
	KindDocComment                   // A doc comment, starting with ##.
)

// TriviaKind is a kind of [Trivia].
type TriviaKind byte

// String implements [fmt.Stringer].
func (k TriviaKind) String() string {
	switch k {
	case KindNewline:
		return "Newline"
	case KindComment:
		return "Comment"
	case KindDocComment:
		return "DocComment"
	default:
		return fmt.Sprintf("TriviaKind(%d)", int(k))
	}
}

// Trivia is a single comment or blank-line token from the original source.
//
// A run of trivia sits between two pieces of code. Comments consume the line
// break that ends them, so a [Newline] in a run is always an extra line
// break: the run for
//
//	x # trailing
//
//	# detached
//	y
//
// is LineComment(" trailing"), Newline, LineComment(" detached").
type Trivia struct {
	Kind TriviaKind

	// The comment text, without the leading # or ##. Empty for newlines.
	Text string
}

// Newline is a line break.
var Newline = Trivia{Kind: KindNewline}

// LineComment returns a line comment with the given body.
func LineComment(text string) Trivia {
	return Trivia{Kind: KindComment, Text: text}
}

// DocComment returns a doc comment with the given body.
func DocComment(text string) Trivia {
	return Trivia{Kind: KindDocComment, Text: text}
}

// IsComment returns whether this is a comment rather than a newline.
func (t Trivia) IsComment() bool {
	return t.Kind == KindComment || t.Kind == KindDocComment
}

// String implements [fmt.Stringer].
func (t Trivia) String() string {
	switch t.Kind {
	case KindNewline:
		return "nl"
	case KindComment:
		return "#" + t.Text
	case KindDocComment:
		return "##" + t.Text
	default:
		return t.Kind.String()
	}
}

// HasComments returns whether a run of trivia contains any comments.
func HasComments(run []Trivia) bool {
	for _, t := range run {
		if t.IsComment() {
			return true
		}
	}
	return false
}

// formatTrivia writes a single comment, separating it from the preceding
// text with a space if needed.
func formatTrivia(buf *Buf, t Trivia) {
	// The # must always follow a space or a newline, unless it's the very
	// beginning of the output.
	if !buf.IsEmpty() && !buf.EndsWithSpace() && !buf.EndsWithNewline() {
		buf.Spaces(1)
	}

	text := strings.TrimRight(t.Text, " \t")
	switch t.Kind {
	case KindComment:
		buf.Push('#')
	case KindDocComment:
		buf.PushStr("##")
	default:
		panic(fmt.Sprintf("layoutfmt/layout: cannot format %v as a comment", t.Kind))
	}
	if text != "" && !strings.HasPrefix(text, " ") {
		buf.Spaces(1)
	}
	buf.PushStr(text)
}
