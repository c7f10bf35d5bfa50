package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/dhamidi/jscst/syntax"
)

// dumpTree renders nodes one per line. A node whose children are all tokens
// is printed on one line with the trimmed token texts; EOF is left out.
func dumpTree(n *syntax.Node) string {
	var sb strings.Builder
	var walk func(n *syntax.Node, depth int)
	walk = func(n *syntax.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		children := n.ChildrenWithTokens()
		if len(n.Children()) == 0 {
			sb.WriteString(indent + n.Kind().String())
			for _, c := range children {
				if t := c.Token(); t.Kind() != syntax.TokenEOF {
					fmt.Fprintf(&sb, " %q", t.TextTrimmed())
				}
			}
			sb.WriteString("\n")
			return
		}
		sb.WriteString(indent + n.Kind().String() + "\n")
		for _, c := range children {
			if c.Node() != nil {
				walk(c.Node(), depth+1)
				continue
			}
			if t := c.Token(); t.Kind() != syntax.TokenEOF {
				fmt.Fprintf(&sb, "%s  %q\n", indent, t.TextTrimmed())
			}
		}
	}
	walk(n, 0)
	return sb.String()
}

func diffTrees(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	t.Errorf("tree mismatch:\n%s", diff)
}

func messages(res *Result) []string {
	var out []string
	for _, d := range res.Diagnostics() {
		out = append(out, d.Message)
	}
	return out
}

func TestParseTrees(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "static member assignment",
			src:  "a.b = c;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_STATIC_MEMBER_ASSIGNMENT
          JS_IDENTIFIER_EXPRESSION
            JS_REFERENCE_IDENTIFIER "a"
          "."
          JS_NAME "b"
        "="
        JS_IDENTIFIER_EXPRESSION
          JS_REFERENCE_IDENTIFIER "c"
      ";"
`,
		},
		{
			name: "optional chain is not assignable",
			src:  "a?.b = c;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_UNKNOWN_ASSIGNMENT
          JS_IDENTIFIER_EXPRESSION
            JS_REFERENCE_IDENTIFIER "a"
          "?."
          JS_NAME "b"
        "="
        JS_IDENTIFIER_EXPRESSION
          JS_REFERENCE_IDENTIFIER "c"
      ";"
`,
		},
		{
			name: "invalid target inside parentheses",
			src:  "(a +) = b;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_PARENTHESIZED_ASSIGNMENT
          "("
          JS_UNKNOWN_ASSIGNMENT
            JS_IDENTIFIER_EXPRESSION
              JS_REFERENCE_IDENTIFIER "a"
            "+"
          ")"
        "="
        JS_IDENTIFIER_EXPRESSION
          JS_REFERENCE_IDENTIFIER "b"
      ";"
`,
		},
		{
			name: "binary expression is wrapped",
			src:  "a + 1 = 2",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_UNKNOWN_ASSIGNMENT "a" "+" "1"
        "="
        JS_NUMBER_LITERAL_EXPRESSION "2"
`,
		},
		{
			name: "array destructuring",
			src:  "[a, ...b] = c;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_ARRAY_ASSIGNMENT_PATTERN
          "["
          LIST
            JS_IDENTIFIER_ASSIGNMENT "a"
            ","
            JS_ARRAY_ASSIGNMENT_PATTERN_REST_ELEMENT
              "..."
              JS_IDENTIFIER_ASSIGNMENT "b"
          "]"
        "="
        JS_IDENTIFIER_EXPRESSION
          JS_REFERENCE_IDENTIFIER "c"
      ";"
`,
		},
		{
			name: "object destructuring",
			src:  "({a, b: c = 1, ...d} = e);",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_PARENTHESIZED_EXPRESSION
        "("
        JS_ASSIGNMENT_EXPRESSION
          JS_OBJECT_ASSIGNMENT_PATTERN
            "{"
            LIST
              JS_OBJECT_ASSIGNMENT_PATTERN_SHORTHAND_PROPERTY
                JS_IDENTIFIER_ASSIGNMENT "a"
              ","
              JS_OBJECT_ASSIGNMENT_PATTERN_PROPERTY
                JS_LITERAL_MEMBER_NAME "b"
                ":"
                JS_IDENTIFIER_ASSIGNMENT "c"
                JS_INITIALIZER_CLAUSE
                  "="
                  JS_NUMBER_LITERAL_EXPRESSION "1"
              ","
              JS_OBJECT_ASSIGNMENT_PATTERN_REST
                "..."
                JS_IDENTIFIER_ASSIGNMENT "d"
            "}"
          "="
          JS_IDENTIFIER_EXPRESSION
            JS_REFERENCE_IDENTIFIER "e"
        ")"
      ";"
`,
		},
		{
			name: "identifier arrow",
			src:  "x => x * 2;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ARROW_FUNCTION_EXPRESSION
        JS_IDENTIFIER_BINDING "x"
        "=>"
        JS_BINARY_EXPRESSION
          JS_IDENTIFIER_EXPRESSION
            JS_REFERENCE_IDENTIFIER "x"
          "*"
          JS_NUMBER_LITERAL_EXPRESSION "2"
      ";"
`,
		},
		{
			name: "parenthesized arrow",
			src:  "(a, b) => {};",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ARROW_FUNCTION_EXPRESSION
        JS_PARAMETERS
          "("
          LIST
            JS_IDENTIFIER_BINDING "a"
            ","
            JS_IDENTIFIER_BINDING "b"
          ")"
        "=>"
        JS_FUNCTION_BODY
          "{"
          LIST
          LIST
          "}"
      ";"
`,
		},
		{
			name: "update expressions",
			src:  "++a;\nb--;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_PRE_UPDATE_EXPRESSION
        "++"
        JS_IDENTIFIER_ASSIGNMENT "a"
      ";"
    JS_EXPRESSION_STATEMENT
      JS_POST_UPDATE_EXPRESSION
        JS_IDENTIFIER_ASSIGNMENT "b"
        "--"
      ";"
`,
		},
		{
			name: "variable declaration",
			src:  "let [x = 1, y] = z, w;",
			want: `JS_ROOT
  LIST
  LIST
    JS_VARIABLE_STATEMENT
      JS_VARIABLE_DECLARATION
        "let"
        LIST
          JS_VARIABLE_DECLARATOR
            JS_ARRAY_BINDING_PATTERN
              "["
              LIST
                JS_BINDING_PATTERN_WITH_DEFAULT
                  JS_IDENTIFIER_BINDING "x"
                  "="
                  JS_NUMBER_LITERAL_EXPRESSION "1"
                ","
                JS_IDENTIFIER_BINDING "y"
              "]"
            JS_INITIALIZER_CLAUSE
              "="
              JS_IDENTIFIER_EXPRESSION
                JS_REFERENCE_IDENTIFIER "z"
          ","
          JS_VARIABLE_DECLARATOR
            JS_IDENTIFIER_BINDING "w"
      ";"
`,
		},
		{
			name: "directives and labels",
			src:  "'use strict'\nouter: while (a) break outer;",
			want: `JS_ROOT
  LIST
    JS_DIRECTIVE "'use strict'"
  LIST
    JS_LABELED_STATEMENT
      "outer"
      ":"
      JS_WHILE_STATEMENT
        "while"
        "("
        JS_IDENTIFIER_EXPRESSION
          JS_REFERENCE_IDENTIFIER "a"
        ")"
        JS_BREAK_STATEMENT "break" "outer" ";"
`,
		},
		{
			name: "member keywords and calls",
			src:  "new a.b(c)?.if[0]`t`;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_TEMPLATE
        JS_COMPUTED_MEMBER_EXPRESSION
          JS_STATIC_MEMBER_EXPRESSION
            JS_NEW_EXPRESSION
              "new"
              JS_STATIC_MEMBER_EXPRESSION
                JS_IDENTIFIER_EXPRESSION
                  JS_REFERENCE_IDENTIFIER "a"
                "."
                JS_NAME "b"
              JS_CALL_ARGUMENTS
                "("
                LIST
                  JS_IDENTIFIER_EXPRESSION
                    JS_REFERENCE_IDENTIFIER "c"
                ")"
            "?."
            JS_NAME "if"
          "["
          JS_NUMBER_LITERAL_EXPRESSION "0"
          "]"
        LIST
          JS_TEMPLATE_CHUNK_ELEMENT "` + "`t`" + `"
      ";"
`,
		},
		{
			name: "template substitutions",
			src:  "`a${b}c`",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_TEMPLATE
        LIST
          JS_TEMPLATE_CHUNK_ELEMENT "` + "`a${" + `"
          JS_TEMPLATE_ELEMENT
            JS_IDENTIFIER_EXPRESSION
              JS_REFERENCE_IDENTIFIER "b"
          JS_TEMPLATE_CHUNK_ELEMENT "` + "}c`" + `"
`,
		},
		{
			name: "regex literal",
			src:  "x = /a+b/g;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_ASSIGNMENT_EXPRESSION
        JS_IDENTIFIER_ASSIGNMENT "x"
        "="
        JS_REGEX_LITERAL_EXPRESSION "/a+b/g"
      ";"
`,
		},
		{
			name: "unknown statement recovery",
			src:  "a; ) b;",
			want: `JS_ROOT
  LIST
  LIST
    JS_EXPRESSION_STATEMENT
      JS_IDENTIFIER_EXPRESSION
        JS_REFERENCE_IDENTIFIER "a"
      ";"
    JS_UNKNOWN_STATEMENT ")"
    JS_EXPRESSION_STATEMENT
      JS_IDENTIFIER_EXPRESSION
        JS_REFERENCE_IDENTIFIER "b"
      ";"
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseBytes([]byte(tt.src))
			diffTrees(t, tt.want, dumpTree(res.Syntax()))
		})
	}
}

// parenthesize renders binary and logical expressions with explicit
// grouping.
func parenthesize(n *syntax.Node) string {
	switch n.Kind() {
	case syntax.KindJsBinaryExpression, syntax.KindJsLogicalExpression:
		var parts []string
		for _, c := range n.ChildrenWithTokens() {
			if c.Node() != nil {
				parts = append(parts, parenthesize(c.Node()))
			} else {
				parts = append(parts, c.Token().TextTrimmed())
			}
		}
		return "(" + strings.Join(parts, " ") + ")"
	case syntax.KindJsUnaryExpression:
		return "(" + n.TextTrimmed() + ")"
	}
	return n.TextTrimmed()
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a ** b ** c", "(a ** (b ** c))"},
		{"a % b * c", "((a % b) * c)"},
		{"a || b && c", "(a || (b && c))"},
		{"a ?? b || c", "((a ?? b) || c)"},
		{"a == b < c", "(a == (b < c))"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a << b + c", "(a << (b + c))"},
		{"a in b instanceof c", "((a in b) instanceof c)"},
		{"-a * b", "((-a) * b)"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := ParseExpression([]byte(tt.src))
			if res.HasErrors() {
				t.Fatalf("unexpected errors: %v", messages(res))
			}
			stmt := res.Syntax().Children()[1].Children()[0]
			if got := parenthesize(stmt.Children()[0]); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLogicalExpressionKind(t *testing.T) {
	res := ParseExpression([]byte("a && b"))
	expr := res.Syntax().Children()[1].Children()[0].Children()[0]
	if expr.Kind() != syntax.KindJsLogicalExpression {
		t.Errorf("got %s, want JS_LOGICAL_EXPRESSION", expr.Kind())
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"a.b = c;", nil},
		{"a?.b = c;", []string{"Invalid assignment to `a?.b`"}},
		{"a?.b.c = 1;", []string{"Invalid assignment to `a?.b.c`"}},
		{"x[a?.b] = 1;", nil},
		{"a?.[0] += 1;", []string{"Invalid assignment to `a?.[0]`"}},
		{"(a +) = b;", []string{
			"expected an expression but instead found `)`",
			"Invalid assignment to `a +`",
		}},
		{"a + 1 = 2;", []string{"Invalid assignment to `a + 1`"}},
		{"[a] += 1;", []string{"Invalid assignment to `[a]`"}},
		{"f() = 1;", []string{"Invalid assignment to `f()`"}},
		{"++f();", []string{"Invalid assignment to `f()`"}},
		{"[...a, b] = c;", []string{"rest element must be the last element"}},
		{"[...a = 1] = c;", []string{"rest elements may not have default values"}},
		{"({...{a}} = c);", []string{"object and array assignment targets are not allowed in rest patterns"}},
		{"({...a, b} = c);", []string{"rest property must be the last property"}},
		{"let {...[a]} = c;", []string{"object rest patterns must bind to an identifier, other patterns are not allowed"}},
		{"function f(...a, b) {}", []string{"rest parameter must be the last parameter"}},
		{"const a;", []string{"Const var declarations must have an initialized value"}},
		{"return 1;", []string{"Illegal return statement outside of a function"}},
		{"function f() { return 1; }", nil},
		{"() => { return; };", nil},
		{"a: a: ;", []string{"Duplicate statement labels are not allowed"}},
		{"a: { break a; }", nil},
		{"break a;", []string{"Use of undefined statement label `a`"}},
		{"a: function f() { break a; }", []string{"Use of undefined statement label `a`"}},
		{"throw\nnew Error();", []string{"Linebreaks between a throw statement and the error to be thrown are not allowed"}},
		{"({a = 1});", []string{"Did you mean to use a `:`? An `=` can only follow a property name when the containing object literal is part of a destructuring pattern"}},
		{"({a = 1} = b);", nil},
		{"a b", []string{"expected a semicolon or an implicit semicolon after a statement but instead found `b`"}},
		{"a\nb", nil},
		{"(a = (b) => b) => a;", nil},
		{"(a, [b], {c} = {}) => 1;", nil},
		{"(a = /)/) => a;", nil},
		{"(a = `${(b)}`) => a;", nil},
		{"`${(/x/)}`;", nil},
		{"`${(a, /x/)}`;", nil},
		{"`a${`b${(c, /[}]/g)}`}d` + (e, /f/);", nil},
		{"if (a", []string{"expected `)` but instead the file ends", "expected a statement but instead the file ends"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := ParseBytes([]byte(tt.src))
			got := messages(res)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("diagnostics:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestNestedParenthesesParseInLinearPasses(t *testing.T) {
	for _, inner := range []string{"x", "x / y"} {
		const depth = 200
		src := strings.Repeat("(a = ", depth) + inner + strings.Repeat(")", depth) + ";"
		done := make(chan *Result, 1)
		go func() { done <- ParseBytes([]byte(src)) }()
		select {
		case res := <-done:
			if got := messages(res); len(got) != 0 {
				t.Errorf("%q: unexpected diagnostics %q", inner, got)
			}
			if res.Syntax().Text() != src {
				t.Errorf("%q: tree text differs from source", inner)
			}
		case <-time.After(10 * time.Second):
			t.Fatalf("%q: parsing %d nested parentheses did not finish", inner, depth)
		}
	}
}

var corpus = []string{
	"",
	"   \n\t// only a comment\n",
	"/* leading */ a /* inner */ + b // trailing\n;",
	"'use strict';\nfunction f(a, [b, c] = [], {d, e: {f}} = {}, ...g) {\n  return a + b;\n}\n",
	"label: do { if (x) continue label; else break; } while (y--)\n",
	"const fn = async => async; let { a = 1, ...rest } = obj; var [ , , x] = y;",
	"x = a ? b : c ? d : e; y ||= z; w ??= v; u **= 2;",
	"new new Foo()(); a?.b?.(c)?.[d]; `x${`y${z}`}w`;",
	"x = /[/]+/gi.source; y = a / b / c;",
	"((a)) = 1; (a.b) = 2; [a.b, c[d]] = e;",
	"{ ; ; } debugger\nthrow err",
	"(a +) = b; a?.b = c; ++(a + b); [...a, b] = c;",
	"function (",
	"if (a) { b",
	"@@@ ) ] } ,",
	"x = { get: 1, set, [k]: v, 'str': 1, 42: 2, ...s, };",
	"\uFEFFa = 'héllo wörld'; b = \"😀\";",
	"a\r\nb\rc d",
	"`unterminated ${",
	"let = 1; let\nx = 2; var let = 3;",
}

func TestLossless(t *testing.T) {
	for _, src := range corpus {
		t.Run(fmt.Sprintf("%.20q", src), func(t *testing.T) {
			res := ParseBytes([]byte(src))
			root := res.Syntax()
			if root.Kind() != syntax.KindJsRoot {
				t.Fatalf("root kind = %s", root.Kind())
			}
			if got := root.Text(); got != src {
				t.Errorf("tree text differs from source:\n got %q\nwant %q", got, src)
			}
			if root.TextRange() != syntax.NewRange(0, len(src)) {
				t.Errorf("root range = %s", root.TextRange())
			}
			for _, d := range res.Diagnostics() {
				if d.Range.Start < 0 || d.Range.End > len(src) || d.Range.Start > d.Range.End {
					t.Errorf("diagnostic out of bounds: %s", d)
				}
			}
		})
	}
}

func TestTrailingTriviaStopsAtNewline(t *testing.T) {
	res := ParseBytes([]byte("a // c\n/* d */ b"))
	var toks []*syntax.Token
	for tok := range res.Syntax().DescendantTokens() {
		toks = append(toks, tok)
	}
	a := toks[0]
	if got := a.TextTrimmed(); got != "a" {
		t.Fatalf("first token = %q", got)
	}
	if n := len(a.TrailingTrivia()); n != 2 {
		t.Errorf("a has %d trailing trivia, want whitespace and comment", n)
	}
	b := toks[1]
	if !b.HasNewlineBefore() {
		t.Error("b has no newline in its leading trivia")
	}
	if got := len(b.LeadingTrivia()); got != 3 {
		t.Errorf("b has %d leading trivia, want newline, comment and whitespace", got)
	}
}

func TestParseExpressionRoot(t *testing.T) {
	res := ParseExpression([]byte("a + b extra"))
	stmts := res.Syntax().Children()[1]
	kinds := []syntax.Kind{}
	for _, c := range stmts.Children() {
		kinds = append(kinds, c.Kind())
	}
	want := []syntax.Kind{syntax.KindJsExpressionStatement, syntax.KindJsUnknownStatement}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Errorf("statements = %v, want %v", kinds, want)
	}
	if !res.HasErrors() {
		t.Error("trailing tokens were not reported")
	}
	if res.Syntax().Text() != "a + b extra" {
		t.Error("expression parse is not lossless")
	}
}

func TestParseReader(t *testing.T) {
	res, err := Parse(strings.NewReader("a;"), WithFile("main.js"))
	if err != nil {
		t.Fatal(err)
	}
	if res.File() != "main.js" {
		t.Errorf("file = %q", res.File())
	}
	if string(res.Source()) != "a;" {
		t.Errorf("source = %q", res.Source())
	}
	if res.Tree().Syntax() == nil {
		t.Error("no typed root")
	}
}
