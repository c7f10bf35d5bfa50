package astgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/dhamidi/jscst/syntax"
)

// Header marks the generated file.
const Header = "// Code generated by jsgen. DO NOT EDIT."

// Options configure the generated file.
type Options struct {
	Package string
}

type generator struct {
	buf bytes.Buffer
	g   *Grammar
}

func (w *generator) printf(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
}

// Generate writes the typed node layer for g, formatted with gofmt.
func Generate(out io.Writer, g *Grammar, opts Options) error {
	if opts.Package == "" {
		opts.Package = "ast"
	}
	w := &generator{g: g}
	w.file(opts)

	src, err := format.Source(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated code: %w", err)
	}
	_, err = out.Write(src)
	return err
}

func (w *generator) file(opts Options) {
	w.printf("%s\n\npackage %s\n\n", Header, opts.Package)
	w.printf("import \"github.com/dhamidi/jscst/syntax\"\n")

	for _, n := range w.g.Nodes() {
		for _, f := range n.Fields {
			if f.TokenSet != "" {
				w.printf("\nvar %s = %s\n", f.TokenSet, kindSlice(f.Tokens))
			}
		}
	}

	for _, d := range w.g.Decls {
		switch d := d.(type) {
		case *Union:
			w.union(d)
		case *Node:
			w.node(d)
		}
	}

	w.castAny()
}

func kindSlice(kinds []syntax.Kind) string {
	return "[]syntax.Kind{" + kindList(kinds) + "}"
}

// anchorKinds renders the token kinds bounding a node field.
func anchorKinds(kinds []syntax.Kind, set string) string {
	switch {
	case set != "":
		return set
	case len(kinds) > 0:
		return kindSlice(kinds)
	}
	return "nil"
}

func kindList(kinds []syntax.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = "syntax." + kindConst(k)
	}
	return strings.Join(parts, ", ")
}

func nodeKinds(names []string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = "syntax.Kind" + name
	}
	return strings.Join(parts, ", ")
}

func (w *generator) union(u *Union) {
	w.printf("\n// %s is a union of %s.\n", u.Name, strings.Join(u.Variants, ", "))
	w.printf("type %s interface {\n", u.Name)
	if len(u.Parents) == 0 {
		w.printf("\tNode\n")
	}
	for _, p := range u.Parents {
		w.printf("\t%s\n", p)
	}
	w.printf("\tis%s()\n}\n", u.Name)

	w.printf("\nfunc CanCast%s(kind syntax.Kind) bool {\n", u.Name)
	w.printf("\tswitch kind {\n\tcase %s:\n\t\treturn true\n\t}\n\treturn false\n}\n", nodeKinds(u.Concrete))

	w.printf("\nfunc Cast%s(n *syntax.Node) (%s, bool) {\n", u.Name, u.Name)
	w.printf("\tif n == nil {\n\t\treturn nil, false\n\t}\n")
	w.printf("\tswitch n.Kind() {\n")
	for _, c := range u.Concrete {
		w.printf("\tcase syntax.Kind%s:\n\t\treturn %s{node: n}, true\n", c, c)
	}
	w.printf("\t}\n\treturn nil, false\n}\n")
}

func (w *generator) node(n *Node) {
	w.printf("\n// %s is a %s node.\n", n.Name, n.Kind)
	w.printf("type %s struct {\n\tnode *syntax.Node\n}\n", n.Name)

	w.printf("\nfunc CanCast%s(kind syntax.Kind) bool {\n\treturn kind == syntax.Kind%s\n}\n", n.Name, n.Name)

	w.printf("\nfunc Cast%s(n *syntax.Node) (%s, bool) {\n", n.Name, n.Name)
	w.printf("\tif n == nil || !CanCast%s(n.Kind()) {\n\t\treturn %s{}, false\n\t}\n", n.Name, n.Name)
	w.printf("\treturn %s{node: n}, true\n}\n", n.Name)

	w.printf("\nfunc (n %s) Syntax() *syntax.Node {\n\treturn n.node\n}\n", n.Name)
	w.printf("\nfunc (n %s) String() string {\n\treturn n.node.Text()\n}\n", n.Name)

	if n.Unknown {
		w.printf("\n// Items returns the skipped tokens and nodes.\n")
		w.printf("func (n %s) Items() []syntax.Element {\n\treturn n.node.ChildrenWithTokens()\n}\n", n.Name)
	}

	for _, f := range n.Fields {
		w.field(n, f)
	}

	if len(n.Unions) > 0 {
		w.printf("\n")
		for _, u := range n.Unions {
			w.printf("func (%s) is%s() {}\n", n.Name, u)
		}
	}
}

func (w *generator) field(n *Node, f *Field) {
	switch f.Kind {
	case TokenField:
		kinds := kindList(f.Tokens)
		if f.TokenSet != "" {
			kinds = f.TokenSet + "..."
		}
		if f.Optional {
			w.printf("\nfunc (n %s) %s() *syntax.Token {\n\treturn childToken(n.node, %s)\n}\n", n.Name, f.Name, kinds)
			return
		}
		w.printf("\nfunc (n %s) %s() (*syntax.Token, error) {\n\treturn requiredToken(n.node, %q, %s)\n}\n", n.Name, f.Name, f.Label, kinds)
	case NodeField:
		after := anchorKinds(f.After, f.AfterSet)
		until := anchorKinds(f.Until, f.UntilSet)
		if f.Optional {
			w.printf("\nfunc (n %s) %s() (%s, bool) {\n\treturn childNode(n.node, %s, %s, %d, Cast%s)\n}\n", n.Name, f.Name, f.Type, after, until, f.Nth, f.Type)
			return
		}
		w.printf("\nfunc (n %s) %s() (%s, error) {\n\treturn requiredNode(n.node, %q, %s, %s, %d, Cast%s)\n}\n", n.Name, f.Name, f.Type, f.Label, after, until, f.Nth, f.Type)
	case ListField:
		w.printf("\nfunc (n %s) %s() NodeList[%s] {\n\treturn newNodeList(listChild(n.node, %d), Cast%s)\n}\n", n.Name, f.Name, f.Type, f.Slot, f.Type)
	case SeparatedListField:
		w.printf("\nfunc (n %s) %s() SeparatedList[%s] {\n\treturn newSeparatedList(listChild(n.node, %d), Cast%s)\n}\n", n.Name, f.Name, f.Type, f.Slot, f.Type)
	}
}

func (w *generator) castAny() {
	w.printf("\n// CastAnyNode wraps n in the typed node for its kind. LIST nodes have no\n// typed node of their own.\n")
	w.printf("func CastAnyNode(n *syntax.Node) (Node, bool) {\n")
	w.printf("\tif n == nil {\n\t\treturn nil, false\n\t}\n")
	w.printf("\tswitch n.Kind() {\n")
	for _, node := range w.g.Nodes() {
		w.printf("\tcase syntax.Kind%s:\n\t\treturn %s{node: n}, true\n", node.Name, node.Name)
	}
	w.printf("\t}\n\treturn nil, false\n}\n")
}
