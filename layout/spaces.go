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
	NewlineAtNone NewlineAt = iota
	NewlineAtTop
	NewlineAtBottom
	NewlineAtBoth
)

// NewlineAt says where [FormatCommentsOnly] should put line breaks around the
// comments it writes.
type NewlineAt byte

// FormatSpaces replays a run of trivia, preserving at most one blank line in
// a row.
//
// Comments are written at indent if they start a line, and as trailing
// comments otherwise.
func FormatSpaces(buf *Buf, run []Trivia, indent uint16) {
	formatSpacesMax(buf, run, 2, indent)
}

// FormatSpacesNoBlankLines is like [FormatSpaces], but collapses blank lines
// into a single line break.
func FormatSpacesNoBlankLines(buf *Buf, run []Trivia, indent uint16) {
	formatSpacesMax(buf, run, 1, indent)
}

// formatSpacesMax replays trivia, writing no more than maxNewlines line
// breaks in a row. Two line breaks in a row render as one blank line.
func formatSpacesMax(buf *Buf, run []Trivia, maxNewlines int, indent uint16) {
	var newlines int
	for _, t := range run {
		if t.Kind == KindNewline {
			if newlines < maxNewlines {
				buf.Newline()
				newlines++
			}
			continue
		}

		buf.Indent(indent)
		formatTrivia(buf, t)
		buf.Newline()
		// The comment's own line break counts towards the limit.
		newlines = 1
	}
}

// FormatCommentsOnly replays only the comments in a run of trivia, one per
// line, dropping newlines and blank lines entirely.
//
// at controls whether a line break is also written before the first comment,
// after the last comment, or both. Nothing is written if the run contains no
// comments.
func FormatCommentsOnly(buf *Buf, run []Trivia, at NewlineAt, indent uint16) {
	var seen bool
	for _, t := range run {
		if !t.IsComment() {
			continue
		}

		if seen || at == NewlineAtTop || at == NewlineAtBoth {
			buf.Newline()
		}
		buf.Indent(indent)
		formatTrivia(buf, t)
		seen = true
	}

	if seen && (at == NewlineAtBottom || at == NewlineAtBoth) {
		buf.Newline()
	}
}
