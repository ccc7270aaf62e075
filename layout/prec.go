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
	Term         Prec = iota // An atom, or something already bracketed.
	Apply                    // Juxtaposition, as in f x.
	AsType                   // An alias binding, as in T as Name.
	FunctionType             // An arrow, as in a -> b.
	Outer                    // Anything else; never needs brackets.

	precCount
)

// Prec is how loosely a node binds. Greater is looser.
//
// Prec values are totally ordered, so they can be compared with < directly.
type Prec byte

// String implements [fmt.Stringer].
func (p Prec) String() string {
	switch p {
	case Term:
		return "Term"
	case Apply:
		return "Apply"
	case AsType:
		return "AsType"
	case FunctionType:
		return "FunctionType"
	case Outer:
		return "Outer"
	default:
		return fmt.Sprintf("Prec(%d)", int(p))
	}
}

const (
	NotNeeded        Parens = iota // Top level; nothing constrains the node.
	InClosurePattern               // An argument pattern of a closure.
	InApply                        // An argument of a juxtaposition.
	InApplyLastArg                 // The final argument of a juxtaposition.
	InCollection                   // An element of a list, tuple, or record.
	InFunctionType                 // An argument or result of an arrow.
	InOperator                     // An operand of a binary operator.
	InAsPattern                    // The left side of an alias binding.

	parensCount
)

// Parens describes the syntactic position a node is rendered in, which
// determines whether it needs to be wrapped in parentheses.
type Parens byte

// precOf is the precedence threshold of each [Parens]: a node whose [Prec] is
// at least this needs parentheses.
var precOf = [...]Prec{
	NotNeeded:        Outer,
	InClosurePattern: Outer,
	InApply:          Apply,
	InApplyLastArg:   Apply,
	InCollection:     FunctionType,
	InFunctionType:   FunctionType,
	InOperator:       FunctionType,
	InAsPattern:      AsType,
}

// PrecOf returns the precedence threshold of a context: a node needs
// parentheses in it when the node's precedence is not strictly below the
// threshold.
//
// Panics if parens is not one of the constants in this package.
func PrecOf(parens Parens) Prec {
	if parens >= parensCount {
		panic(fmt.Sprintf("layoutfmt/layout: invalid Parens: %d", int(parens)))
	}
	return precOf[parens]
}

// ParseParens parses a [Parens] from its name, as returned by
// [Parens.String].
func ParseParens(s string) (Parens, bool) {
	for p := range parensCount {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// String implements [fmt.Stringer].
func (p Parens) String() string {
	switch p {
	case NotNeeded:
		return "NotNeeded"
	case InClosurePattern:
		return "InClosurePattern"
	case InApply:
		return "InApply"
	case InApplyLastArg:
		return "InApplyLastArg"
	case InCollection:
		return "InCollection"
	case InFunctionType:
		return "InFunctionType"
	case InOperator:
		return "InOperator"
	case InAsPattern:
		return "InAsPattern"
	default:
		return fmt.Sprintf("Parens(%d)", int(p))
	}
}

func checkPrec(p Prec) {
	if p >= precCount {
		panic(fmt.Sprintf("layoutfmt/layout: invalid Prec: %d", int(p)))
	}
}
