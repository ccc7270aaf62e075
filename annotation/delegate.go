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

package annotation

import "github.com/bufbuild/layoutfmt/layout"

// Delegate wraps t for embedding in a layout tree.
//
// The tree for t is built from a right away. When rendered, it is
// parenthesized according to the context it is rendered in.
func Delegate(a *layout.Arena, t Type) layout.AnnotationNode {
	return layout.AnnotationNode{Ann: &delegate{arena: a, info: t.ToNode(a)}}
}

type delegate struct {
	arena *layout.Arena
	info  layout.NodeInfo
}

func (d *delegate) IsMultiline() bool {
	return d.info.IsMultiline()
}

func (d *delegate) Format(buf *layout.Buf, parens layout.Parens, newlines layout.Newlines, indent uint16) {
	info := d.info
	if parens != layout.NotNeeded {
		info = info.AddParens(d.arena, parens)
	}
	// The context has been dealt with; nested delegates start afresh.
	info.Format(buf, layout.NotNeeded, newlines, indent)
}
