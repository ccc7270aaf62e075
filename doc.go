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

// Package layoutfmt provides the entry point for formatting many definitions
// at once. "Formatting" in this case just means turning a value that knows
// how to describe its own shape into text; this package does no parsing.
//
// The sub-packages do the actual work:
//  1. Describe the shape of code as a layout tree.
//     Also see: layout.Node, layout.NodeInfo
//  2. Choose parentheses from the precedence of each part.
//     Also see: layout.NodeInfo.AddParens
//  3. Render the tree, replaying comments and blank lines.
//     Also see: layout.Render
//
// Packages annotation and pattern build on layout to format type annotations
// and destructuring patterns.
//
// A [Formatter] takes a batch of [layout.Nodify] values and renders each in
// a pass of its own. It is capable of taking advantage of multiple CPU
// cores, so a batch of thousands of definitions can be formatted very
// quickly.
package layoutfmt
