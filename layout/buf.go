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
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Buf is the append-only output buffer that nodes render into.
//
// Whitespace is buffered rather than written eagerly: spaces and newlines are
// only flushed when the next piece of text is pushed. This is what makes
// operations like [Buf.EnsureEndsWithNewline] idempotent, and it means a
// rendering never leaves trailing whitespace behind.
//
// Every line must have its indentation resolved with [Buf.Indent] before
// text is pushed onto it.
//
// A zero Buf is empty, uses default [Options], and is ready to use.
type Buf struct {
	options Options
	text    strings.Builder

	// Buffered spaces and newlines, flushed by the next push.
	spaces, newlines int

	// Whether Indent has been called since the last newline.
	midLine    bool
	lineIndent uint16
}

// NewBuf returns a new, empty buffer with the given options.
func NewBuf(options Options) *Buf {
	return &Buf{options: options.WithDefaults()}
}

// IndentWidth returns the width of one indentation level for this buffer.
func (b *Buf) IndentWidth() uint16 {
	return b.options.WithDefaults().IndentWidth
}

// CurLineIndent returns the indentation that the current line was started
// with.
func (b *Buf) CurLineIndent() uint16 {
	return b.lineIndent
}

// Indent moves to the given column, if nothing has been written on the
// current line yet. Otherwise, it does nothing.
func (b *Buf) Indent(indent uint16) {
	if !b.midLine {
		b.lineIndent = indent
		b.spaces = int(indent)
	}
	b.midLine = true
}

// Push appends a single character.
func (b *Buf) Push(ch rune) {
	b.checkMidLine()
	if ch == '\n' {
		panic("layoutfmt/layout: pushed a newline with Buf.Push; use Buf.Newline")
	}
	b.flush()
	b.text.WriteRune(ch)
}

// PushStr appends a run of text, which must not contain newlines or end in
// spaces.
func (b *Buf) PushStr(s string) {
	if strings.HasSuffix(s, " ") {
		panic("layoutfmt/layout: pushed text with trailing spaces: " + strconv.Quote(s))
	}
	b.PushStrAllowSpaces(s)
}

// PushStrAllowSpaces is like [Buf.PushStr], but permits trailing spaces.
func (b *Buf) PushStrAllowSpaces(s string) {
	b.checkMidLine()
	if strings.ContainsRune(s, '\n') {
		panic("layoutfmt/layout: pushed multiline text: " + strconv.Quote(s))
	}
	if s != "" {
		b.flush()
	}
	b.text.WriteString(s)
}

// Spaces buffers n spaces.
func (b *Buf) Spaces(n int) {
	b.spaces += n
}

// Newline buffers a line break. Any buffered spaces are discarded.
func (b *Buf) Newline() {
	b.spaces = 0
	b.newlines++
	b.midLine = false
}

// EnsureEndsWithNewline buffers a line break unless one is already buffered
// or nothing has been written yet.
func (b *Buf) EnsureEndsWithNewline() {
	if b.text.Len() > 0 && b.newlines == 0 {
		b.Newline()
	}
}

// EnsureEndsWithBlankLine is like [Buf.EnsureEndsWithNewline], but ensures
// that an entire blank line separates what comes next.
func (b *Buf) EnsureEndsWithBlankLine() {
	if b.text.Len() > 0 && b.newlines < 2 {
		b.spaces = 0
		b.newlines = 2
		b.midLine = false
	}
}

// EnsureEndsWithWhitespace buffers a single space unless some whitespace is
// already buffered or nothing has been written yet.
func (b *Buf) EnsureEndsWithWhitespace() {
	if b.text.Len() > 0 && b.newlines == 0 && b.spaces == 0 {
		b.spaces = 1
	}
}

// EndsWithSpace returns whether the output currently ends in a space.
func (b *Buf) EndsWithSpace() bool {
	return b.spaces > 0 || strings.HasSuffix(b.text.String(), " ")
}

// EndsWithNewline returns whether the output currently ends in a line break.
func (b *Buf) EndsWithNewline() bool {
	return b.newlines > 0 || strings.HasSuffix(b.text.String(), "\n")
}

// IsEmpty returns whether nothing has been written yet.
func (b *Buf) IsEmpty() bool {
	return b.spaces == 0 && b.text.Len() == 0
}

// Column returns the display column the next character would be written at,
// counting buffered whitespace.
func (b *Buf) Column() int {
	if b.newlines > 0 {
		return b.spaces
	}
	text := b.text.String()
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	return uniseg.StringWidth(text) + b.spaces
}

// Text returns everything written so far. Buffered whitespace that has not
// been flushed by a subsequent push is not included.
func (b *Buf) Text() string {
	return b.text.String()
}

// Finish returns the output normalized as the contents of a whole file:
// no trailing whitespace on any line, and exactly one final newline. Empty
// output stays empty.
func (b *Buf) Finish() string {
	lines := strings.Split(b.text.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if text == "" {
		return ""
	}
	return text + "\n"
}

func (b *Buf) checkMidLine() {
	if !b.midLine {
		panic("layoutfmt/layout: pushed text at the start of a line without calling Buf.Indent")
	}
}

// flush writes out any buffered whitespace.
func (b *Buf) flush() {
	for range b.newlines {
		b.text.WriteByte('\n')
	}
	b.newlines = 0
	for range b.spaces {
		b.text.WriteByte(' ')
	}
	b.spaces = 0
}

// MaxLineWidth returns the display width of the widest line in text.
func MaxLineWidth(text string) int {
	var width int
	for line := range strings.SplitSeq(text, "\n") {
		width = max(width, uniseg.StringWidth(line))
	}
	return width
}
