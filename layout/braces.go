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

import "fmt"

const (
	Round  Braces = iota // ( )
	Square               // [ ]
	Curly                // { }
)

// Braces is a kind of bracket pair that a [DelimitedSequence] is wrapped in.
type Braces byte

// ParseBraces parses a [Braces] from its name, as returned by
// [Braces.String].
func ParseBraces(s string) (Braces, bool) {
	switch s {
	case "Round":
		return Round, true
	case "Square":
		return Square, true
	case "Curly":
		return Curly, true
	default:
		return 0, false
	}
}

// Start returns the opening bracket.
func (b Braces) Start() rune {
	switch b {
	case Round:
		return '('
	case Square:
		return '['
	case Curly:
		return '{'
	default:
		panic(fmt.Sprintf("layoutfmt/layout: invalid Braces: %d", int(b)))
	}
}

// End returns the closing bracket.
func (b Braces) End() rune {
	switch b {
	case Round:
		return ')'
	case Square:
		return ']'
	case Curly:
		return '}'
	default:
		panic(fmt.Sprintf("layoutfmt/layout: invalid Braces: %d", int(b)))
	}
}

// String implements [fmt.Stringer].
func (b Braces) String() string {
	switch b {
	case Round:
		return "Round"
	case Square:
		return "Square"
	case Curly:
		return "Curly"
	default:
		return fmt.Sprintf("Braces(%d)", int(b))
	}
}
