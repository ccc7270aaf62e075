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

// Package annotation lays out type annotations.
//
// Every [Type] converts itself into a layout tree with [Type.ToNode],
// choosing where parentheses are needed from the precedence of its parts. A
// Type can also be embedded into a larger tree with [Delegate].
package annotation

import (
	"fmt"

	"github.com/bufbuild/layoutfmt/layout"
)

// Type is a type annotation.
type Type interface {
	layout.Nodify

	isType()
}

// Var is a type variable or a type name with no arguments.
type Var string

// Inferred is the _ type, which asks for the type to be inferred.
type Inferred struct{}

// Wildcard is the * type.
type Wildcard struct{}

// Apply is a type constructor applied to arguments, such as List a.
type Apply struct {
	Module string // Optional.
	Name   string
	Args   []Type
}

const (
	Pure      Arrow = iota // ->
	Effectful              // =>
)

// Arrow is the arrow of a [Function] type.
type Arrow byte

// Function is a function type, such as a, b -> c.
type Function struct {
	Args   []Type
	Arrow  Arrow
	Result Type
}

// As binds a type to an alias, such as List a as Foo.
type As struct {
	Type Type
	Name string
	Vars []string
}

// Record is a record type, such as { x : a, y ? b }.
type Record struct {
	Fields []Field
	Ext    Type // Optional.
}

// Field is a field of a [Record].
type Field struct {
	Name     string
	Optional bool // Separate the name and type with ? rather than :.
	Type     Type
}

// TagUnion is a tag union type, such as [Ok a, Err e].
type TagUnion struct {
	Tags []Tag
	Ext  Type // Optional.
}

// Tag is a tag of a [TagUnion].
type Tag struct {
	Name string
	Args []Type
}

// Tuple is a tuple type, such as (a, b).
type Tuple struct {
	Elems []Type
	Ext   Type // Optional.
}

// Spaced is a type with comments before or after it.
type Spaced struct {
	Before []layout.Trivia
	Type   Type
	After  []layout.Trivia
}

// String implements [fmt.Stringer].
func (a Arrow) String() string {
	switch a {
	case Pure:
		return "->"
	case Effectful:
		return "=>"
	default:
		return fmt.Sprintf("Arrow(%d)", int(a))
	}
}

// ToNode implements [layout.Nodify].
func (t Var) ToNode(*layout.Arena) layout.NodeInfo {
	return layout.Info(layout.Literal(t))
}

// ToNode implements [layout.Nodify].
func (Inferred) ToNode(*layout.Arena) layout.NodeInfo {
	return layout.Info(layout.Literal("_"))
}

// ToNode implements [layout.Nodify].
func (Wildcard) ToNode(*layout.Arena) layout.NodeInfo {
	return layout.Info(layout.Literal("*"))
}

// ToNode implements [layout.Nodify].
func (t Apply) ToNode(a *layout.Arena) layout.NodeInfo {
	name := t.Name
	if t.Module != "" {
		name = t.Module + "." + t.Name
	}
	return applied(a, name, t.Args)
}

// ToNode implements [layout.Nodify].
func (t Function) ToNode(a *layout.Arena) layout.NodeInfo {
	if len(t.Args) == 0 {
		panic("layoutfmt/annotation: function type with no arguments")
	}

	first := t.Args[0].ToNode(a).AddParens(a, layout.InFunctionType)
	rest := make([]layout.Item, 0, len(t.Args)-1)
	carry := first.After
	for _, arg := range t.Args[1:] {
		info := arg.ToNode(a).AddParens(a, layout.InFunctionType)
		rest = append(rest, layout.Item{
			CommaBefore: true,
			Before:      a.Concat(carry, info.Before),
			Space:       true,
			Node:        info.Node,
		})
		carry = info.After
	}
	args := a.Commas(layout.CommaSequence{
		AllowNewlines: true,
		First:         first.Node,
		Rest:          rest,
	})

	// Arrows associate to the right, so the result never needs parentheses.
	result := t.Result.ToNode(a)
	return layout.NodeInfo{
		Before: first.Before,
		Node: a.Sequence(args, true,
			layout.Spaced{Sp: layout.SpWithSpace(carry), Node: layout.Literal(t.Arrow.String())},
			layout.Spaced{Sp: layout.SpWithSpace(result.Before), Node: result.Node},
		),
		After:       result.After,
		NeedsIndent: true,
		Prec:        layout.FunctionType,
	}
}

// ToNode implements [layout.Nodify].
func (t As) ToNode(a *layout.Arena) layout.NodeInfo {
	inner := t.Type.ToNode(a).AddParens(a, layout.InAsPattern)

	b := layout.NewSequenceBuilder(a, inner.Node, 2+len(t.Vars), true)
	b.Push(layout.SpWithSpace(inner.After), layout.Literal("as"))
	b.Push(layout.SpaceSp(), layout.Literal(t.Name))
	for _, v := range t.Vars {
		b.Push(layout.SpaceSp(), layout.Literal(v))
	}

	return layout.NodeInfo{
		Before:      inner.Before,
		Node:        b.Build(),
		NeedsIndent: true,
		Prec:        layout.AsType,
	}
}

// ToNode implements [layout.Nodify].
func (t Record) ToNode(a *layout.Arena) layout.NodeInfo {
	items := make([]layout.NodeInfo, len(t.Fields))
	for i, f := range t.Fields {
		sep := ":"
		if f.Optional {
			sep = "?"
		}

		ty := f.Type.ToNode(a)
		items[i] = layout.NodeInfo{
			Node: a.Sequence(layout.Literal(f.Name), true,
				layout.Spaced{Sp: layout.SpaceSp(), Node: layout.Literal(sep)},
				layout.Spaced{Sp: layout.SpWithSpace(ty.Before), Node: ty.Node},
			),
			After:       ty.After,
			NeedsIndent: true,
			Prec:        layout.Term,
		}
	}
	return withExt(a, a.Collection(layout.Curly, items, nil), t.Ext)
}

// ToNode implements [layout.Nodify].
func (t TagUnion) ToNode(a *layout.Arena) layout.NodeInfo {
	items := make([]layout.NodeInfo, len(t.Tags))
	for i, tag := range t.Tags {
		items[i] = applied(a, tag.Name, tag.Args)
	}
	return withExt(a, a.Collection(layout.Square, items, nil), t.Ext)
}

// ToNode implements [layout.Nodify].
func (t Tuple) ToNode(a *layout.Arena) layout.NodeInfo {
	items := make([]layout.NodeInfo, len(t.Elems))
	for i, elem := range t.Elems {
		items[i] = elem.ToNode(a).AddParens(a, layout.InCollection)
	}
	return withExt(a, a.Collection(layout.Round, items, nil), t.Ext)
}

// ToNode implements [layout.Nodify].
func (t Spaced) ToNode(a *layout.Arena) layout.NodeInfo {
	info := t.Type.ToNode(a)
	info.Before = a.Concat(a.Trivia(t.Before...), info.Before)
	info.After = a.Concat(info.After, a.Trivia(t.After...))
	return info
}

func (Var) isType()      {}
func (Inferred) isType() {}
func (Wildcard) isType() {}
func (Apply) isType()    {}
func (Function) isType() {}
func (As) isType()       {}
func (Record) isType()   {}
func (TagUnion) isType() {}
func (Tuple) isType()    {}
func (Spaced) isType()   {}

// applied lays out a name followed by arguments, as in a type application or
// a tag.
func applied(a *layout.Arena, name string, args []Type) layout.NodeInfo {
	if len(args) == 0 {
		return layout.Info(layout.Literal(name))
	}

	b := layout.NewSequenceBuilder(a, layout.Literal(name), len(args), true)
	var carry []layout.Trivia
	for i, arg := range args {
		parens := layout.InApply
		if i == len(args)-1 {
			parens = layout.InApplyLastArg
		}

		info := arg.ToNode(a).AddParens(a, parens)
		b.Push(layout.SpWithSpace(a.Concat(carry, info.Before)), info.Node)
		carry = info.After
	}

	return layout.NodeInfo{
		Node:        b.Build(),
		After:       carry,
		NeedsIndent: true,
		Prec:        layout.Apply,
	}
}

// withExt attaches an optional extension to a record, tag union or tuple.
func withExt(a *layout.Arena, collection layout.Node, ext Type) layout.NodeInfo {
	if ext == nil {
		return layout.Info(collection)
	}

	info := ext.ToNode(a).AddTyExtParens(a)
	return layout.NodeInfo{
		Node:        a.Sequence(collection, false, layout.Spaced{Sp: layout.EmptySp(), Node: info.Node}),
		After:       info.After,
		NeedsIndent: true,
		Prec:        layout.Term,
	}
}
