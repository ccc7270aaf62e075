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

// DefaultIndentWidth is the width of one indentation level, in columns.
const DefaultIndentWidth = 4

// Options controls rendering.
type Options struct {
	// IndentWidth is the number of columns each indentation level adds.
	// Defaults to [DefaultIndentWidth] if zero.
	IndentWidth uint16
}

// WithDefaults replaces any unset (read: zero value) fields of an Options
// which specify a default value with that default value.
func (o Options) WithDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = DefaultIndentWidth
	}
	return o
}
