// Package astgen reads the EBNF description of the JavaScript syntax tree
// and generates the typed node layer of package ast from it.
//
// The grammar uses a handful of conventions on top of plain EBNF:
//
//	JsAnyStatement = JsBlockStatement | JsIfStatement .   union
//	JsElseClause = "else" JsElseClause_alternate .          node
//	JsElseClause_alternate = JsAnyStatement .               field alias
//	JsBlockStatement_statements = { JsAnyStatement } .      LIST child
//	JsParameters_items = [ X { "," X } [ "," ] ] .          separated LIST
//	JsUnknownStatement = { SyntaxElement } .                recovery node
//
// Quoted tokens are punctuation or keyword text ("(", "if") or the name of a
// token kind ("IDENT").
package astgen

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dhamidi/jscst/syntax"
	"golang.org/x/exp/ebnf"
)

// Start is the production every other production must be reachable from.
const Start = "JsRoot"

// SyntaxElement stands for any token or node inside a recovery node.
const SyntaxElement = "SyntaxElement"

type FieldKind int

const (
	TokenField FieldKind = iota
	NodeField
	ListField
	SeparatedListField
)

// Field is one accessor of a node.
type Field struct {
	Name     string // Go method name
	Label    string // snake_case name used in MissingError
	Kind     FieldKind
	Optional bool

	// Type is the node or union of node fields and list elements.
	Type string

	// Tokens are the accepted kinds of a token field. TokenSet names the
	// package variable holding them when there is more than one.
	Tokens   []syntax.Kind
	TokenSet string

	// After and AfterSet give the required token a node field follows,
	// and Nth counts the earlier fields of the same type since then.
	// Until and UntilSet give the required token that ends the search.
	After    []syntax.Kind
	AfterSet string
	Until    []syntax.Kind
	UntilSet string
	Nth      int

	// Slot is the index among the LIST children of the node.
	Slot int
}

// Decl is a *Node or a *Union.
type Decl interface {
	DeclName() string
}

type Node struct {
	Name    string
	Kind    syntax.Kind
	Fields  []*Field
	Unknown bool

	// Unions lists every union the node belongs to, directly or through
	// nested unions, in declaration order.
	Unions []string
}

func (n *Node) DeclName() string { return n.Name }

type Union struct {
	Name     string
	Variants []string

	// Parents are the unions listing this union as a variant.
	Parents []string

	// Concrete lists the node kinds the union accepts, in declaration
	// order.
	Concrete []string
}

func (u *Union) DeclName() string { return u.Name }

// Grammar is the typed node model derived from an EBNF file.
type Grammar struct {
	Decls []Decl

	nodes  map[string]*Node
	unions map[string]*Union
}

func (g *Grammar) Node(name string) *Node {
	return g.nodes[name]
}

func (g *Grammar) Union(name string) *Union {
	return g.unions[name]
}

// Nodes returns the nodes in declaration order.
func (g *Grammar) Nodes() []*Node {
	var out []*Node
	for _, d := range g.Decls {
		if n, ok := d.(*Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// Unions returns the unions in declaration order.
func (g *Grammar) Unions() []*Union {
	var out []*Union
	for _, d := range g.Decls {
		if u, ok := d.(*Union); ok {
			out = append(out, u)
		}
	}
	return out
}

// Parse reads and verifies the grammar without building the model.
func Parse(filename string, r io.Reader) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, err
	}
	return g, nil
}

// Load parses an EBNF file and builds the node model from it.
func Load(filename string, r io.Reader) (*Grammar, error) {
	g, err := Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return Build(g)
}

type builder struct {
	src ebnf.Grammar
	out *Grammar
}

// Build derives the node model from a verified grammar.
func Build(src ebnf.Grammar) (*Grammar, error) {
	b := &builder{
		src: src,
		out: &Grammar{nodes: map[string]*Node{}, unions: map[string]*Union{}},
	}

	prods := make([]*ebnf.Production, 0, len(src))
	for _, p := range src {
		prods = append(prods, p)
	}
	slices.SortFunc(prods, func(a, b *ebnf.Production) int {
		return a.Pos().Offset - b.Pos().Offset
	})

	for _, p := range prods {
		name := p.Name.String
		if name == SyntaxElement || isAlias(name) {
			continue
		}
		if variants, ok := unionVariants(p.Expr); ok {
			u := &Union{Name: name, Variants: variants}
			b.out.unions[name] = u
			b.out.Decls = append(b.out.Decls, u)
			continue
		}
		kind, ok := syntax.KindFromName(screaming(name))
		if !ok || !kind.IsNode() {
			return nil, fmt.Errorf("%s: no syntax kind %s", p.Pos(), screaming(name))
		}
		n := &Node{Name: name, Kind: kind}
		b.out.nodes[name] = n
		b.out.Decls = append(b.out.Decls, n)
	}

	var errs []error
	for _, p := range prods {
		n := b.out.nodes[p.Name.String]
		if n == nil {
			continue
		}
		if err := b.fields(n, p.Expr); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Pos(), err))
		}
	}
	for _, u := range b.out.Unions() {
		for _, v := range u.Variants {
			if b.out.nodes[v] == nil && b.out.unions[v] == nil {
				errs = append(errs, fmt.Errorf("union %s: %s is neither a node nor a union", u.Name, v))
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b.closeUnions()
	return b.out, nil
}

func isAlias(name string) bool {
	return strings.Contains(name, "_")
}

// unionVariants reports whether expr only alternates production names.
func unionVariants(expr ebnf.Expression) ([]string, bool) {
	alt, ok := expr.(ebnf.Alternative)
	if !ok {
		return nil, false
	}
	var names []string
	for _, x := range alt {
		n, ok := x.(*ebnf.Name)
		if !ok || isAlias(n.String) {
			return nil, false
		}
		names = append(names, n.String)
	}
	return names, true
}

func (b *builder) fields(n *Node, expr ebnf.Expression) error {
	if rep, ok := expr.(*ebnf.Repetition); ok {
		if name, ok := rep.Body.(*ebnf.Name); ok && name.String == SyntaxElement {
			n.Unknown = true
			return nil
		}
	}

	var terms []ebnf.Expression
	switch x := expr.(type) {
	case nil:
	case ebnf.Sequence:
		terms = x
	default:
		terms = []ebnf.Expression{x}
	}

	slot := 0
	for _, t := range terms {
		f, err := b.field(n.Name, t, false)
		if err != nil {
			return err
		}
		if f.Kind == ListField || f.Kind == SeparatedListField {
			f.Slot = slot
			slot++
		}
		n.Fields = append(n.Fields, f)
	}

	for i, f := range n.Fields {
		if f.Kind != NodeField {
			continue
		}
		start := 0
		for j := i - 1; j >= 0; j-- {
			a := n.Fields[j]
			if a.Kind == TokenField && !a.Optional {
				f.After, f.AfterSet = a.Tokens, a.TokenSet
				start = j + 1
				break
			}
		}
		for _, prev := range n.Fields[start:i] {
			if prev.Kind == NodeField && prev.Type == f.Type {
				f.Nth++
			}
		}
		for _, next := range n.Fields[i+1:] {
			if next.Kind == TokenField && !next.Optional {
				f.Until, f.UntilSet = next.Tokens, next.TokenSet
				break
			}
		}
	}
	return nil
}

func (b *builder) field(owner string, expr ebnf.Expression, optional bool) (*Field, error) {
	switch x := expr.(type) {
	case *ebnf.Option:
		f, err := b.field(owner, x.Body, true)
		if err != nil {
			return nil, err
		}
		if f.Kind == ListField || f.Kind == SeparatedListField {
			return nil, fmt.Errorf("%s: optional lists are always present, drop the brackets", owner)
		}
		return f, nil
	case *ebnf.Token:
		k, err := tokenKind(x.String)
		if err != nil {
			return nil, err
		}
		label := tokenLabel(k)
		return &Field{Name: camel(label), Label: label, Kind: TokenField, Optional: optional, Tokens: []syntax.Kind{k}}, nil
	case *ebnf.Name:
		if label, ok := strings.CutPrefix(x.String, owner+"_"); ok {
			p := b.src[x.String]
			if p == nil {
				return nil, fmt.Errorf("undefined field %s", x.String)
			}
			return b.alias(owner, label, p.Expr, optional)
		}
		if isAlias(x.String) {
			return nil, fmt.Errorf("%s refers to the field %s of another node", owner, x.String)
		}
		label := nodeLabel(x.String)
		return &Field{Name: camel(label), Label: label, Kind: NodeField, Optional: optional, Type: x.String}, nil
	}
	return nil, fmt.Errorf("%s: unsupported field expression %T", owner, expr)
}

func (b *builder) alias(owner, label string, expr ebnf.Expression, optional bool) (*Field, error) {
	switch x := expr.(type) {
	case *ebnf.Token:
		k, err := tokenKind(x.String)
		if err != nil {
			return nil, err
		}
		return &Field{Name: camel(label) + "Token", Label: label + "_token", Kind: TokenField, Optional: optional, Tokens: []syntax.Kind{k}}, nil
	case ebnf.Alternative:
		f := &Field{
			Name:     camel(label) + "Token",
			Label:    label + "_token",
			Kind:     TokenField,
			Optional: optional,
			TokenSet: lowerFirst(owner) + camel(label),
		}
		for _, alt := range x {
			t, ok := alt.(*ebnf.Token)
			if !ok {
				return nil, fmt.Errorf("%s_%s: only tokens can be alternated in a field", owner, label)
			}
			k, err := tokenKind(t.String)
			if err != nil {
				return nil, err
			}
			f.Tokens = append(f.Tokens, k)
		}
		return f, nil
	case *ebnf.Name:
		return &Field{Name: camel(label), Label: label, Kind: NodeField, Optional: optional, Type: x.String}, nil
	case *ebnf.Repetition:
		elem, ok := x.Body.(*ebnf.Name)
		if !ok {
			return nil, fmt.Errorf("%s_%s: a list repeats a single node", owner, label)
		}
		return &Field{Name: camel(label), Label: label, Kind: ListField, Type: elem.String}, nil
	case *ebnf.Option, ebnf.Sequence:
		elem, ok := separatedElement(x)
		if !ok {
			return nil, fmt.Errorf("%s_%s: expected X { \",\" X } [ \",\" ]", owner, label)
		}
		return &Field{Name: camel(label), Label: label, Kind: SeparatedListField, Type: elem}, nil
	}
	return nil, fmt.Errorf("%s_%s: unsupported field body %T", owner, label, expr)
}

// separatedElement matches [ X { "," X } [ "," ] ] and X { "," X }.
func separatedElement(expr ebnf.Expression) (string, bool) {
	if opt, ok := expr.(*ebnf.Option); ok {
		expr = opt.Body
	}
	seq, ok := expr.(ebnf.Sequence)
	if !ok || len(seq) < 2 || len(seq) > 3 {
		return "", false
	}
	first, ok := seq[0].(*ebnf.Name)
	if !ok {
		return "", false
	}
	rep, ok := seq[1].(*ebnf.Repetition)
	if !ok {
		return "", false
	}
	body, ok := rep.Body.(ebnf.Sequence)
	if !ok || len(body) != 2 {
		return "", false
	}
	sep, ok := body[0].(*ebnf.Token)
	if !ok || sep.String != "," {
		return "", false
	}
	if again, ok := body[1].(*ebnf.Name); !ok || again.String != first.String {
		return "", false
	}
	if len(seq) == 3 {
		trailing, ok := seq[2].(*ebnf.Option)
		if !ok {
			return "", false
		}
		if t, ok := trailing.Body.(*ebnf.Token); !ok || t.String != "," {
			return "", false
		}
	}
	return first.String, true
}

// tokenKind resolves a quoted token by its text first and by its kind name
// second.
func tokenKind(s string) (syntax.Kind, error) {
	if k, ok := syntax.FromText(s); ok {
		return k, nil
	}
	if k, ok := syntax.KindFromName(s); ok && k.IsToken() {
		return k, nil
	}
	return 0, fmt.Errorf("unknown token %q", s)
}

func (b *builder) closeUnions() {
	unions := b.out.Unions()
	for _, u := range unions {
		for _, v := range u.Variants {
			if child := b.out.unions[v]; child != nil {
				child.Parents = append(child.Parents, u.Name)
			}
		}
	}
	for _, u := range unions {
		seen := map[string]bool{}
		b.collect(u, seen)
		for _, n := range b.out.Nodes() {
			if seen[n.Name] {
				u.Concrete = append(u.Concrete, n.Name)
				n.Unions = append(n.Unions, u.Name)
			}
		}
	}
}

func (b *builder) collect(u *Union, seen map[string]bool) {
	for _, v := range u.Variants {
		if child := b.out.unions[v]; child != nil {
			b.collect(child, seen)
			continue
		}
		seen[v] = true
	}
}
