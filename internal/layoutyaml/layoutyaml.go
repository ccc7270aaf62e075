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

// Package layoutyaml decodes layout trees written out as YAML, for use in
// golden tests.
//
// A document looks like this:
//
//	indent: 2            # optional; Options.IndentWidth
//	info:                # optional; wraps node in a NodeInfo
//	  before: ["# lead"]
//	  after: ["# trail"]
//	  prec: FunctionType
//	node:
//	  seq:
//	    first: a
//	    rest:
//	      - {sp: space, node: b}
//
// A node is either a plain string, which is a literal, or a mapping with
// exactly one of these keys:
//
//   - lit: a literal.
//   - seq: a Sequence, with first, indent and rest (a list of sp and node).
//   - delim: a DelimitedSequence, with braces, indent, items (each with
//     before, newline, space, node and comma) and after.
//   - commas: a CommaSequence, with blank_lines, newlines, indent, first and
//     rest (each with comma, before, newline, space and node).
//   - paren: a node with a precedence, parenthesized for a context, with
//     prec, in and node. If ty_ext is set, the node is parenthesized as a
//     type extension instead.
//
// A spacing directive is one of empty, space or newline, or a mapping with
// space, newline and comments. Trivia are written as nl for a newline,
// #text for a comment and ##text for a doc comment.
package layoutyaml

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/layoutfmt/layout"
)

// Tree is a decoded layout tree.
type Tree struct {
	Options layout.Options
	Info    layout.NodeInfo
}

// Render renders the tree, comments included, as the contents of a file.
func (t *Tree) Render() string {
	buf := layout.NewBuf(t.Options)
	t.Info.Format(buf, layout.NotNeeded, layout.NewlinesYes, 0)
	return buf.Finish()
}

// Parse decodes a tree, allocating its nodes from a.
func Parse(a *layout.Arena, text string) (*Tree, error) {
	var doc document
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("layoutyaml: %w", err)
	}
	if doc.Node == nil {
		return nil, errors.New("layoutyaml: missing node")
	}

	b := builder{arena: a}
	node := b.node(doc.Node)
	if b.err != nil {
		return nil, b.err
	}

	tree := &Tree{
		Options: layout.Options{IndentWidth: doc.Indent},
		Info:    layout.Info(node),
	}
	if doc.Info != nil {
		tree.Info.Before = a.Trivia(unwrapTrivia(doc.Info.Before)...)
		tree.Info.After = a.Trivia(unwrapTrivia(doc.Info.After)...)
		tree.Info.Prec = doc.Info.Prec.prec
	}
	return tree, nil
}

type document struct {
	Indent uint16   `yaml:"indent"`
	Info   *infoDoc `yaml:"info"`
	Node   *nodeDoc `yaml:"node"`
}

type infoDoc struct {
	Before []triviaField `yaml:"before"`
	After  []triviaField `yaml:"after"`
	Prec   prec          `yaml:"prec"`
}

// nodeDoc is a node as written in a document. Exactly one field is set.
type nodeDoc struct {
	Lit    *string    `yaml:"lit"`
	Seq    *seqDoc    `yaml:"seq"`
	Delim  *delimDoc  `yaml:"delim"`
	Commas *commasDoc `yaml:"commas"`
	Paren  *parenDoc  `yaml:"paren"`

	line int
}

type seqDoc struct {
	First  *nodeDoc    `yaml:"first"`
	Indent bool        `yaml:"indent"`
	Rest   []spacedDoc `yaml:"rest"`
}

type spacedDoc struct {
	Sp   sp       `yaml:"sp"`
	Node *nodeDoc `yaml:"node"`
}

type delimDoc struct {
	Braces braces    `yaml:"braces"`
	Indent bool      `yaml:"indent"`
	Items  []itemDoc `yaml:"items"`
	After  sp        `yaml:"after"`
}

type commasDoc struct {
	BlankLines bool      `yaml:"blank_lines"`
	Newlines   bool      `yaml:"newlines"`
	Indent     bool      `yaml:"indent"`
	First      *nodeDoc  `yaml:"first"`
	Rest       []itemDoc `yaml:"rest"`
}

// itemDoc is an item of either a delim or a commas node. comma means a
// trailing comma for the former and a leading comma for the latter.
type itemDoc struct {
	Before  []triviaField `yaml:"before"`
	Newline bool          `yaml:"newline"`
	Space   bool          `yaml:"space"`
	Node    *nodeDoc      `yaml:"node"`
	Comma   bool          `yaml:"comma"`
}

type parenDoc struct {
	Prec  prec     `yaml:"prec"`
	In    parens   `yaml:"in"`
	TyExt bool     `yaml:"ty_ext"`
	Node  *nodeDoc `yaml:"node"`
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (n *nodeDoc) UnmarshalYAML(value *yaml.Node) error {
	n.line = value.Line
	if value.Kind == yaml.ScalarNode {
		n.Lit = &value.Value
		return nil
	}
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: a node must be a string or a mapping with exactly one key", value.Line)
	}

	type plain nodeDoc
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	if n.Lit == nil && n.Seq == nil && n.Delim == nil && n.Commas == nil && n.Paren == nil {
		return fmt.Errorf("line %d: unknown node kind %q", value.Line, value.Content[0].Value)
	}
	return nil
}

// sp is a [layout.Sp] that can be decoded from a string or a mapping.
type sp struct{ sp layout.Sp }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (s *sp) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		switch value.Value {
		case "empty":
			s.sp = layout.EmptySp()
		case "space":
			s.sp = layout.SpaceSp()
		case "newline":
			s.sp = layout.SpForceNewline(nil)
		default:
			return fmt.Errorf("line %d: unknown spacing %q", value.Line, value.Value)
		}
		return nil
	}

	var doc struct {
		Space    bool          `yaml:"space"`
		Newline  bool          `yaml:"newline"`
		Comments []triviaField `yaml:"comments"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}
	s.sp = layout.Sp{
		DefaultSpace: doc.Space,
		ForceNewline: doc.Newline,
		Comments:     unwrapTrivia(doc.Comments),
	}
	return nil
}

// triviaField decodes a single trivia token.
type triviaField struct{ t layout.Trivia }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (t *triviaField) UnmarshalYAML(value *yaml.Node) error {
	tok, err := ParseTrivia(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	t.t = tok
	return nil
}

func unwrapTrivia(run []triviaField) []layout.Trivia {
	if len(run) == 0 {
		return nil
	}
	out := make([]layout.Trivia, len(run))
	for i, t := range run {
		out[i] = t.t
	}
	return out
}

// ParseTrivia parses a trivia token in the form printed by
// [layout.Trivia.String].
func ParseTrivia(s string) (layout.Trivia, error) {
	switch {
	case s == "nl":
		return layout.Newline, nil
	case strings.HasPrefix(s, "##"):
		return layout.DocComment(s[2:]), nil
	case strings.HasPrefix(s, "#"):
		return layout.LineComment(s[1:]), nil
	default:
		return layout.Trivia{}, fmt.Errorf("invalid trivia %q", s)
	}
}

type braces struct{ b layout.Braces }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (b *braces) UnmarshalYAML(value *yaml.Node) error {
	v, ok := layout.ParseBraces(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown braces %q", value.Line, value.Value)
	}
	b.b = v
	return nil
}

type prec struct{ prec layout.Prec }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *prec) UnmarshalYAML(value *yaml.Node) error {
	for v := range layout.Outer + 1 {
		if v.String() == value.Value {
			p.prec = v
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown precedence %q", value.Line, value.Value)
}

type parens struct{ parens layout.Parens }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (p *parens) UnmarshalYAML(value *yaml.Node) error {
	v, ok := layout.ParseParens(value.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown context %q", value.Line, value.Value)
	}
	p.parens = v
	return nil
}

// builder converts decoded documents into nodes, recording the first error
// it encounters.
type builder struct {
	arena *layout.Arena
	err   error
}

func (b *builder) fail(line int, format string, args ...any) layout.Node {
	if b.err == nil {
		b.err = fmt.Errorf("layoutyaml: line %d: %s", line, fmt.Sprintf(format, args...))
	}
	return layout.Literal("")
}

func (b *builder) node(n *nodeDoc) layout.Node {
	switch {
	case n == nil:
		return b.fail(0, "missing node")

	case n.Lit != nil:
		return layout.Literal(*n.Lit)

	case n.Seq != nil:
		if n.Seq.First == nil {
			return b.fail(n.line, "seq without first")
		}
		rest := make([]layout.Spaced, len(n.Seq.Rest))
		for i, r := range n.Seq.Rest {
			rest[i] = layout.Spaced{Sp: r.Sp.sp, Node: b.node(r.Node)}
		}
		return b.arena.Sequence(b.node(n.Seq.First), n.Seq.Indent, rest...)

	case n.Delim != nil:
		items := make([]layout.DelimitedItem, len(n.Delim.Items))
		for i, item := range n.Delim.Items {
			items[i] = layout.DelimitedItem{
				Before:     b.arena.Trivia(unwrapTrivia(item.Before)...),
				Newline:    item.Newline,
				Space:      item.Space,
				Node:       b.node(item.Node),
				CommaAfter: item.Comma,
			}
		}
		return b.arena.Delimited(n.Delim.Braces.b, n.Delim.Indent, n.Delim.After.sp, items...)

	case n.Commas != nil:
		if n.Commas.First == nil {
			return b.fail(n.line, "commas without first")
		}
		rest := make([]layout.Item, len(n.Commas.Rest))
		for i, item := range n.Commas.Rest {
			rest[i] = layout.Item{
				CommaBefore: item.Comma,
				Before:      b.arena.Trivia(unwrapTrivia(item.Before)...),
				Newline:     item.Newline,
				Space:       item.Space,
				Node:        b.node(item.Node),
			}
		}
		return b.arena.Commas(layout.CommaSequence{
			AllowBlankLines: n.Commas.BlankLines,
			AllowNewlines:   n.Commas.Newlines,
			IndentRest:      n.Commas.Indent,
			First:           b.node(n.Commas.First),
			Rest:            rest,
		})

	case n.Paren != nil:
		info := layout.Info(b.node(n.Paren.Node))
		info.Prec = n.Paren.Prec.prec
		if n.Paren.TyExt {
			return info.AddTyExtParens(b.arena).Node
		}
		return info.AddParens(b.arena, n.Paren.In.parens).Node

	default:
		return b.fail(n.line, "empty node")
	}
}
