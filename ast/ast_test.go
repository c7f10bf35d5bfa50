package ast_test

import (
	"errors"
	"testing"

	"github.com/dhamidi/jscst/ast"
	"github.com/dhamidi/jscst/parser"
	"github.com/dhamidi/jscst/syntax"
)

func parseRoot(t *testing.T, src string) ast.JsRoot {
	t.Helper()
	res := parser.ParseBytes([]byte(src))
	root := res.Tree()
	if root.Syntax() == nil {
		t.Fatalf("no JS_ROOT for %q", src)
	}
	return root
}

func firstStatement(t *testing.T, src string) ast.JsAnyStatement {
	t.Helper()
	stmts := parseRoot(t, src).Statements()
	if stmts.Len() == 0 {
		t.Fatalf("no statements in %q", src)
	}
	return stmts.At(0)
}

func firstExpression(t *testing.T, src string) ast.JsAnyExpression {
	t.Helper()
	stmt, ok := firstStatement(t, src).(ast.JsExpressionStatement)
	if !ok {
		t.Fatalf("first statement of %q is not an expression statement", src)
	}
	expr, err := stmt.Expression()
	if err != nil {
		t.Fatalf("expression of %q: %v", src, err)
	}
	return expr
}

func trimmed(n ast.Node) string {
	return n.Syntax().TextTrimmed()
}

func TestCastAnyNodeCoversEveryNode(t *testing.T) {
	sources := []string{
		`"use strict"; var a = 1, [b, ...c] = d, {e, f: g = 2, ...h} = i;`,
		"label: while (x) { if (a) break label; else continue; }",
		"do x++; while (y)\nreturn;",
		"function f(a, b = 1, ...c) { return a ? b : c; }",
		"const g = (x, y) => x + y, h = z => { throw z; };",
		"a.b = c; a[b] += c; ({ a, b: [c] } = d); [x, , ...y] = z;",
		"new Foo(1, ...rest)?.bar?.[baz]?.(qux);",
		"`a${b}c${d}e`; tag`x`; /re/g.test(s); typeof x === 'y';",
		"(a +) = b; debugger; ;",
	}
	for _, src := range sources {
		res := parser.ParseBytes([]byte(src))
		for n := range res.Syntax().Descendants() {
			if n.Kind() == syntax.KindList {
				if _, ok := ast.CastAnyNode(n); ok {
					t.Errorf("%q: LIST cast to a typed node", src)
				}
				continue
			}
			typed, ok := ast.CastAnyNode(n)
			if !ok {
				t.Errorf("%q: no typed node for %s", src, n.Kind())
				continue
			}
			if typed.Syntax() != n {
				t.Errorf("%q: typed %s wraps another node", src, n.Kind())
			}
			if typed.String() != n.Text() {
				t.Errorf("%q: String() = %q, want %q", src, typed.String(), n.Text())
			}
		}
	}
}

func TestUnionCastAgreesWithCanCast(t *testing.T) {
	unions := []struct {
		name    string
		canCast func(syntax.Kind) bool
		cast    func(*syntax.Node) bool
	}{
		{"JsAnyStatement", ast.CanCastJsAnyStatement, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyStatement(n); return ok }},
		{"JsAnyExpression", ast.CanCastJsAnyExpression, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyExpression(n); return ok }},
		{"JsAnyLiteralExpression", ast.CanCastJsAnyLiteralExpression, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyLiteralExpression(n); return ok }},
		{"JsAnyAssignmentPattern", ast.CanCastJsAnyAssignmentPattern, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyAssignmentPattern(n); return ok }},
		{"JsAnyAssignment", ast.CanCastJsAnyAssignment, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyAssignment(n); return ok }},
		{"JsAnyBindingPattern", ast.CanCastJsAnyBindingPattern, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyBindingPattern(n); return ok }},
		{"JsAnyBinding", ast.CanCastJsAnyBinding, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyBinding(n); return ok }},
		{"JsAnyParameter", ast.CanCastJsAnyParameter, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyParameter(n); return ok }},
		{"JsAnyObjectMember", ast.CanCastJsAnyObjectMember, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyObjectMember(n); return ok }},
		{"JsAnyArrayElement", ast.CanCastJsAnyArrayElement, func(n *syntax.Node) bool { _, ok := ast.CastJsAnyArrayElement(n); return ok }},
	}

	res := parser.ParseBytes([]byte("var [a = 1, ...b] = c; x = { y, z: 'w', ...v }; f(...[1, , 2]); (p) => q;"))
	for n := range res.Syntax().Descendants() {
		for _, u := range unions {
			if got, want := u.cast(n), u.canCast(n.Kind()); got != want {
				t.Errorf("%s: Cast(%s) = %v, CanCast = %v", u.name, n.Kind(), got, want)
			}
		}
	}
}

func TestNestedUnions(t *testing.T) {
	// A leading string statement would be a directive.
	stmts := parseRoot(t, "x;\n\"text\";").Statements()
	if stmts.Len() != 2 {
		t.Fatalf("got %d statements, want 2", stmts.Len())
	}
	stmt, ok := stmts.At(1).(ast.JsExpressionStatement)
	if !ok {
		t.Fatalf("second statement is %T", stmts.At(1))
	}
	expr, err := stmt.Expression()
	if err != nil {
		t.Fatal(err)
	}

	lit, ok := expr.(ast.JsAnyLiteralExpression)
	if !ok {
		t.Fatalf("string literal is not a JsAnyLiteralExpression: %T", expr)
	}
	str, ok := lit.(ast.JsStringLiteralExpression)
	if !ok {
		t.Fatalf("got %T, want JsStringLiteralExpression", lit)
	}
	tok, err := str.ValueToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok.TextTrimmed() != `"text"` {
		t.Errorf("value = %q", tok.TextTrimmed())
	}

	// A literal is also an array element and a call argument.
	if !ast.CanCastJsAnyArrayElement(syntax.KindJsStringLiteralExpression) {
		t.Error("string literal is not an array element")
	}
	if !ast.CanCastJsAnyCallArgument(syntax.KindJsStringLiteralExpression) {
		t.Error("string literal is not a call argument")
	}
	if ast.CanCastJsAnyLiteralExpression(syntax.KindJsIdentifierExpression) {
		t.Error("identifier expression is a literal")
	}
}

func TestIfStatementFields(t *testing.T) {
	stmt, ok := firstStatement(t, "if (a) b; else c;").(ast.JsIfStatement)
	if !ok {
		t.Fatal("not an if statement")
	}
	test, err := stmt.Test()
	if err != nil {
		t.Fatal(err)
	}
	if got := trimmed(test); got != "a" {
		t.Errorf("test = %q, want a", got)
	}
	cons, err := stmt.Consequent()
	if err != nil {
		t.Fatal(err)
	}
	if got := trimmed(cons); got != "b;" {
		t.Errorf("consequent = %q, want b;", got)
	}
	elseClause, ok := stmt.ElseClause()
	if !ok {
		t.Fatal("no else clause")
	}
	alt, err := elseClause.Alternate()
	if err != nil {
		t.Fatal(err)
	}
	if got := trimmed(alt); got != "c;" {
		t.Errorf("alternate = %q, want c;", got)
	}
}

func TestMissingRequiredField(t *testing.T) {
	stmt, ok := firstStatement(t, "if () b;").(ast.JsIfStatement)
	if !ok {
		t.Fatal("not an if statement")
	}
	_, err := stmt.Test()
	if !errors.Is(err, ast.ErrMissing) {
		t.Fatalf("Test() error = %v, want ErrMissing", err)
	}
	var missing *ast.MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("error %T is not a *MissingError", err)
	}
	if missing.Field != "test" || missing.Kind != syntax.KindJsIfStatement {
		t.Errorf("missing = %+v", missing)
	}
	if _, err := stmt.Consequent(); err != nil {
		t.Errorf("Consequent() = %v", err)
	}
	if _, ok := stmt.ElseClause(); ok {
		t.Error("unexpected else clause")
	}
}

func TestMissingFieldStopsAtNextToken(t *testing.T) {
	cond, ok := firstExpression(t, "a ? : c;").(ast.JsConditionalExpression)
	if !ok {
		t.Fatal("not a conditional expression")
	}
	if _, err := cond.Consequent(); !errors.Is(err, ast.ErrMissing) {
		t.Fatalf("Consequent() error = %v, want ErrMissing", err)
	}
	alt, err := cond.Alternate()
	if err != nil || trimmed(alt) != "c" {
		t.Errorf("Alternate() = %v, %v", alt, err)
	}
}

func TestSameTypedFields(t *testing.T) {
	tests := []struct {
		src   string
		parts func(ast.JsAnyExpression) (ast.Node, ast.Node, error)
		left  string
		right string
	}{
		{
			src: "a + b * c;",
			parts: func(e ast.JsAnyExpression) (ast.Node, ast.Node, error) {
				bin := e.(ast.JsBinaryExpression)
				l, err := bin.Left()
				if err != nil {
					return nil, nil, err
				}
				r, err := bin.Right()
				return l, r, err
			},
			left:  "a",
			right: "b * c",
		},
		{
			src: "x ? y : z;",
			parts: func(e ast.JsAnyExpression) (ast.Node, ast.Node, error) {
				cond := e.(ast.JsConditionalExpression)
				c, err := cond.Consequent()
				if err != nil {
					return nil, nil, err
				}
				a, err := cond.Alternate()
				return c, a, err
			},
			left:  "y",
			right: "z",
		},
		{
			src: "a, b;",
			parts: func(e ast.JsAnyExpression) (ast.Node, ast.Node, error) {
				seq := e.(ast.JsSequenceExpression)
				l, err := seq.Left()
				if err != nil {
					return nil, nil, err
				}
				r, err := seq.Right()
				return l, r, err
			},
			left:  "a",
			right: "b",
		},
		{
			src: "o[k];",
			parts: func(e ast.JsAnyExpression) (ast.Node, ast.Node, error) {
				m := e.(ast.JsComputedMemberExpression)
				o, err := m.Object()
				if err != nil {
					return nil, nil, err
				}
				k, err := m.Member()
				return o, k, err
			},
			left:  "o",
			right: "k",
		},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			l, r, err := tt.parts(firstExpression(t, tt.src))
			if err != nil {
				t.Fatal(err)
			}
			if got := trimmed(l); got != tt.left {
				t.Errorf("left = %q, want %q", got, tt.left)
			}
			if got := trimmed(r); got != tt.right {
				t.Errorf("right = %q, want %q", got, tt.right)
			}
		})
	}
}

func TestAssignmentExpressionFields(t *testing.T) {
	assign, ok := firstExpression(t, "a.b = c;").(ast.JsAssignmentExpression)
	if !ok {
		t.Fatal("not an assignment")
	}
	left, err := assign.Left()
	if err != nil {
		t.Fatal(err)
	}
	member, ok := left.(ast.JsStaticMemberAssignment)
	if !ok {
		t.Fatalf("left is %T, want JsStaticMemberAssignment", left)
	}
	name, err := member.Member()
	if err != nil {
		t.Fatal(err)
	}
	if got := trimmed(name); got != "b" {
		t.Errorf("member = %q", got)
	}
	op, err := assign.OperatorToken()
	if err != nil {
		t.Fatal(err)
	}
	if op.Kind() != syntax.TokenEq {
		t.Errorf("operator = %s", op.Kind())
	}
}

func TestSeparatedList(t *testing.T) {
	call, ok := firstExpression(t, "f(a, , b);").(ast.JsCallExpression)
	if !ok {
		t.Fatal("not a call")
	}
	args, err := call.Arguments()
	if err != nil {
		t.Fatal(err)
	}
	elems := args.Args().Elements()
	if len(elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(elems))
	}
	if elems[0].Err != nil || trimmed(elems[0].Node) != "a" {
		t.Errorf("element 0 = %+v", elems[0])
	}
	if !errors.Is(elems[1].Err, ast.ErrMissing) {
		t.Errorf("element 1 error = %v, want ErrMissing", elems[1].Err)
	}
	if elems[1].Separator == nil {
		t.Error("element 1 has no separator")
	}
	if elems[2].Separator != nil {
		t.Error("last element has a separator")
	}
	if args.Args().TrailingSeparator() != nil {
		t.Error("unexpected trailing separator")
	}
	if got := len(args.Args().Separators()); got != 2 {
		t.Errorf("got %d separators, want 2", got)
	}
}

func TestTrailingSeparatorAndHoles(t *testing.T) {
	arr, ok := firstExpression(t, "[a, , b,];").(ast.JsArrayExpression)
	if !ok {
		t.Fatal("not an array")
	}
	elems := arr.Elements()
	if elems.Len() != 3 {
		t.Fatalf("got %d elements, want 3", elems.Len())
	}
	var kinds []syntax.Kind
	for el, err := range elems.All() {
		if err != nil {
			t.Fatal(err)
		}
		kinds = append(kinds, el.Syntax().Kind())
	}
	want := []syntax.Kind{syntax.KindJsIdentifierExpression, syntax.KindJsArrayHole, syntax.KindJsIdentifierExpression}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("element %d = %s, want %s", i, kinds[i], want[i])
		}
	}
	if elems.TrailingSeparator() == nil {
		t.Error("no trailing separator")
	}
}

func TestRootListsAndEOF(t *testing.T) {
	root := parseRoot(t, "'use strict';\n'second'\nfoo();\n")
	if got := root.Directives().Len(); got != 2 {
		t.Errorf("got %d directives, want 2", got)
	}
	if got := root.Statements().Len(); got != 1 {
		t.Errorf("got %d statements, want 1", got)
	}
	if _, err := root.EofToken(); err != nil {
		t.Error(err)
	}

	var n int
	for range root.Statements().All() {
		n++
	}
	if n != 1 {
		t.Errorf("All yielded %d statements", n)
	}
}

func TestEmptyListIsNotNil(t *testing.T) {
	root := parseRoot(t, "")
	if root.Statements().Syntax() == nil {
		t.Error("statement LIST not emitted for empty source")
	}
	if root.Statements().Len() != 0 {
		t.Error("empty source has statements")
	}
}

func TestUnknownItems(t *testing.T) {
	res := parser.ParseBytes([]byte("(a +) = b;"))
	var found bool
	for n := range res.Syntax().Descendants() {
		if n.Kind() != syntax.KindJsUnknownAssignment {
			continue
		}
		u, ok := ast.CastJsUnknownAssignment(n)
		if !ok {
			t.Fatal("cast failed")
		}
		if len(u.Items()) == 0 {
			t.Error("unknown assignment has no items")
		}
		found = true
	}
	if !found {
		t.Fatal("no JS_UNKNOWN_ASSIGNMENT in tree")
	}
}

func TestListAtPanicsOutOfRange(t *testing.T) {
	root := parseRoot(t, "a;")
	defer func() {
		if recover() == nil {
			t.Error("At(5) did not panic")
		}
	}()
	root.Statements().At(5)
}

func TestFunctionBodySlots(t *testing.T) {
	tests := []struct {
		src        string
		directives int
		statements int
	}{
		{"function f() {}", 0, 0},
		{"function f() { 'use strict'; }", 1, 0},
		{"function f() { a(); 'not a directive'; }", 0, 2},
		{"function f() { 'a'; 'b'; let x; x; }", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			fn, ok := firstStatement(t, tt.src).(ast.JsFunctionDeclaration)
			if !ok {
				t.Fatalf("not a function declaration")
			}
			body, err := fn.Body()
			if err != nil {
				t.Fatal(err)
			}
			if got := body.Directives().Len(); got != tt.directives {
				t.Errorf("got %d directives, want %d", got, tt.directives)
			}
			if got := body.Statements().Len(); got != tt.statements {
				t.Errorf("got %d statements, want %d", got, tt.statements)
			}
			for d := range body.Directives().All() {
				if d.Syntax().Kind() != syntax.KindJsDirective {
					t.Errorf("directive slot holds %s", d.Syntax().Kind())
				}
			}
			for s := range body.Statements().All() {
				if s.Syntax().Kind() == syntax.KindJsDirective {
					t.Error("statement slot holds a directive")
				}
			}
		})
	}
}
