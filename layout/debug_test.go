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

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/layoutfmt/layout"
)

func TestDump(t *testing.T) {
	t.Parallel()

	a := layout.NewArena()
	seq := a.Sequence(lit("a"), false, layout.Spaced{Sp: layout.SpaceSp(), Node: lit("b")})
	assert.Equal(t, `<seq>
    "a"
    <sp space>
    "b"
</seq>
`, layout.Dump(seq))

	delim := a.Delimited(layout.Round, true, layout.SpForceNewline(nil),
		layout.DelimitedItem{Node: lit("x"), CommaAfter: true},
		layout.DelimitedItem{Before: a.Trivia(layout.LineComment(" c"), layout.Newline), Newline: true, Node: lit("y")},
	)
	commas := a.Commas(layout.CommaSequence{
		AllowNewlines: true,
		IndentRest:    true,
		First:         delim,
		Rest:          []layout.Item{{CommaBefore: true, Space: true, Node: layout.AnnotationNode{Ann: &delegate{}}}},
	})
	assert.Equal(t, `<commas newlines indent>
    <delim "()" indent>
        "x"
        <comma>
        <trivia ["# c" "nl"]>
        <br>
        "y"
        <sp newline>
    </delim>
    <comma>
    <sp>
    <annotation *layout_test.delegate>
</commas>
`, layout.Dump(commas))
}
