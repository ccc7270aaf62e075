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

// Package layout is the layout engine of a source code formatter.
//
// A caller describes the shape of some code as a tree of [Node]s: literal
// text runs, space-separated [Sequence]s, bracketed [DelimitedSequence]s,
// comma-joined [CommaSequence]s, and opaque delegates that render
// themselves. Gaps between nodes carry an [Sp], which says whether they hold
// nothing, a space, a forced line break, or a run of comments and blank
// lines ([Trivia]) to replay verbatim.
//
// Before embedding a child into a parent, callers wrap it in a [NodeInfo]
// carrying its precedence class ([Prec]), and ask [NodeInfo.AddParens] to
// parenthesize it if the surrounding context ([Parens]) binds tighter than
// the child does.
//
// The finished tree is rendered into a [Buf] with [Node.Format], or with
// [Render] for the common case. Rendering cannot fail on a well-formed tree;
// malformed trees panic.
//
// All of the composite nodes of one formatting pass are allocated from a
// single [Arena] and released together.
package layout
