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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufIndent(t *testing.T) {
	t.Parallel()

	var buf Buf
	buf.Indent(4)
	buf.PushStr("a")
	buf.Indent(8) // Already mid-line.
	buf.PushStr("b")
	assert.Equal(t, "    ab", buf.Text())
	assert.Equal(t, uint16(4), buf.CurLineIndent())

	buf.Newline()
	buf.Indent(2)
	buf.Push('c')
	assert.Equal(t, "    ab\n  c", buf.Text())
	assert.Equal(t, uint16(2), buf.CurLineIndent())
}

func TestBufWhitespace(t *testing.T) {
	t.Parallel()

	var buf Buf
	buf.EnsureEndsWithNewline()
	buf.EnsureEndsWithWhitespace()
	buf.EnsureEndsWithBlankLine()
	assert.True(t, buf.IsEmpty())

	buf.Indent(0)
	buf.PushStr("a")
	buf.Spaces(3)
	buf.Newline()
	assert.Equal(t, "a", buf.Text(), "whitespace is buffered")
	assert.True(t, buf.EndsWithNewline())

	buf.Indent(0)
	buf.PushStr("b")
	buf.EnsureEndsWithNewline()
	buf.EnsureEndsWithNewline()
	buf.Indent(0)
	buf.PushStr("c")
	buf.EnsureEndsWithBlankLine()
	buf.EnsureEndsWithNewline()
	buf.Indent(0)
	buf.PushStr("d")
	buf.EnsureEndsWithWhitespace()
	buf.EnsureEndsWithWhitespace()
	buf.PushStr("e")
	buf.Spaces(2)
	buf.EnsureEndsWithWhitespace()
	buf.PushStr("f")

	assert.Equal(t, "a\nb\nc\n\nd e  f", buf.Text())
}

func TestBufPanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t,
		"layoutfmt/layout: pushed text at the start of a line without calling Buf.Indent",
		func() { new(Buf).PushStr("x") },
	)
	assert.PanicsWithValue(t,
		"layoutfmt/layout: pushed text at the start of a line without calling Buf.Indent",
		func() {
			var buf Buf
			buf.Indent(0)
			buf.PushStr("x")
			buf.Newline()
			buf.Push('y')
		},
	)
	assert.PanicsWithValue(t,
		`layoutfmt/layout: pushed text with trailing spaces: "x "`,
		func() {
			var buf Buf
			buf.Indent(0)
			buf.PushStr("x ")
		},
	)
	assert.PanicsWithValue(t,
		`layoutfmt/layout: pushed multiline text: "x\ny"`,
		func() {
			var buf Buf
			buf.Indent(0)
			buf.PushStr("x\ny")
		},
	)

	var buf Buf
	buf.Indent(0)
	buf.PushStrAllowSpaces("x ")
	buf.PushStr("y")
	assert.Equal(t, "x y", buf.Text())
}

func TestBufColumn(t *testing.T) {
	t.Parallel()

	buf := NewBuf(Options{IndentWidth: 2})
	assert.Equal(t, uint16(2), buf.IndentWidth())
	assert.Equal(t, 0, buf.Column())

	buf.Indent(0)
	buf.PushStr("ab")
	buf.Spaces(1)
	assert.Equal(t, 3, buf.Column())

	buf.Newline()
	buf.Indent(4)
	assert.Equal(t, 4, buf.Column())
	buf.PushStr("世界")
	assert.Equal(t, 8, buf.Column())
}

func TestBufFinish(t *testing.T) {
	t.Parallel()

	var buf Buf
	assert.Equal(t, "", buf.Finish())

	buf.Indent(0)
	buf.PushStrAllowSpaces("a   ")
	buf.Newline()
	buf.Newline()
	buf.Indent(4)
	buf.PushStr("b")
	buf.Newline()
	buf.Newline()
	assert.Equal(t, "a\n\n    b\n", buf.Finish())
}

func TestMaxLineWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, MaxLineWidth(""))
	assert.Equal(t, 3, MaxLineWidth("abc\nde"))
	assert.Equal(t, 5, MaxLineWidth("ab\n世界x"))
}
