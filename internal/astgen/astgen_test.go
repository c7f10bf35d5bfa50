package astgen

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jscst/syntax"
)

const miniGrammar = `
JsRoot = JsRoot_directives JsRoot_statements JsRoot_eof .
JsRoot_directives = { JsDirective } .
JsRoot_statements = { JsAnyStatement } .
JsRoot_eof = "EOF" .

JsDirective = JsDirective_value [ ";" ] .
JsDirective_value = "JS_STRING_LITERAL" .

JsAnyStatement = JsIfStatement | JsExpressionStatement | JsUnknownStatement .

JsIfStatement = "if" "(" JsIfStatement_test ")" JsIfStatement_consequent [ JsElseClause ] .
JsIfStatement_test = JsAnyExpression .
JsIfStatement_consequent = JsAnyStatement .

JsElseClause = "else" JsElseClause_alternate .
JsElseClause_alternate = JsAnyStatement .

JsExpressionStatement = JsAnyExpression [ ";" ] .

JsAnyExpression = JsAnyLiteralExpression | JsBinaryExpression | JsCallExpression .
JsAnyLiteralExpression = JsStringLiteralExpression | JsNullLiteralExpression .

JsStringLiteralExpression = JsStringLiteralExpression_value .
JsStringLiteralExpression_value = "JS_STRING_LITERAL" .

JsNullLiteralExpression = JsNullLiteralExpression_value .
JsNullLiteralExpression_value = "null" .

JsBinaryExpression = JsBinaryExpression_left JsBinaryExpression_operator JsBinaryExpression_right .
JsBinaryExpression_left = JsAnyExpression .
JsBinaryExpression_operator = "+" | "-" .
JsBinaryExpression_right = JsAnyExpression .

JsCallExpression = JsAnyExpression JsCallArguments .

JsCallArguments = "(" JsCallArguments_args ")" .
JsCallArguments_args = [ JsAnyExpression { "," JsAnyExpression } [ "," ] ] .

JsUnknownStatement = { SyntaxElement } .
SyntaxElement = .
`

func loadMini(t *testing.T) *Grammar {
	t.Helper()
	g, err := Load("mini.ebnf", strings.NewReader(miniGrammar))
	require.NoError(t, err)
	return g
}

func fieldNamed(t *testing.T, n *Node, name string) *Field {
	t.Helper()
	for _, f := range n.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("%s has no field %s", n.Name, name)
	return nil
}

func TestLoadClassifiesProductions(t *testing.T) {
	g := loadMini(t)

	var names []string
	for _, d := range g.Decls {
		names = append(names, d.DeclName())
	}
	assert.Equal(t, []string{
		"JsRoot", "JsDirective", "JsAnyStatement", "JsIfStatement", "JsElseClause",
		"JsExpressionStatement", "JsAnyExpression", "JsAnyLiteralExpression",
		"JsStringLiteralExpression", "JsNullLiteralExpression", "JsBinaryExpression",
		"JsCallExpression", "JsCallArguments", "JsUnknownStatement",
	}, names)

	require.NotNil(t, g.Union("JsAnyStatement"))
	require.NotNil(t, g.Node("JsIfStatement"))
	assert.Nil(t, g.Node("JsIfStatement_test"))
	assert.Equal(t, syntax.KindJsIfStatement, g.Node("JsIfStatement").Kind)
	assert.True(t, g.Node("JsUnknownStatement").Unknown)
}

func TestFieldsFollowSequence(t *testing.T) {
	n := loadMini(t).Node("JsIfStatement")

	var names []string
	for _, f := range n.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"IfToken", "LParenToken", "Test", "RParenToken", "Consequent", "ElseClause"}, names)

	test := fieldNamed(t, n, "Test")
	assert.Equal(t, NodeField, test.Kind)
	assert.Equal(t, "JsAnyExpression", test.Type)
	assert.Equal(t, []syntax.Kind{syntax.TokenLParen}, test.After)
	assert.Equal(t, []syntax.Kind{syntax.TokenRParen}, test.Until)
	assert.Equal(t, 0, test.Nth)

	assert.Nil(t, fieldNamed(t, n, "Consequent").Until)

	els := fieldNamed(t, n, "ElseClause")
	assert.True(t, els.Optional)
	assert.Equal(t, []syntax.Kind{syntax.TokenRParen}, els.After)
	assert.Equal(t, "else_clause", els.Label)
}

func TestTokenSetsAndAnchors(t *testing.T) {
	n := loadMini(t).Node("JsBinaryExpression")

	op := fieldNamed(t, n, "OperatorToken")
	assert.Equal(t, TokenField, op.Kind)
	assert.Equal(t, "jsBinaryExpressionOperator", op.TokenSet)
	assert.Equal(t, []syntax.Kind{syntax.TokenPlus, syntax.TokenMinus}, op.Tokens)
	assert.Equal(t, "operator_token", op.Label)

	left := fieldNamed(t, n, "Left")
	assert.Nil(t, left.After)
	assert.Equal(t, "jsBinaryExpressionOperator", left.UntilSet)
	assert.Equal(t, 0, left.Nth)

	right := fieldNamed(t, n, "Right")
	assert.Equal(t, "jsBinaryExpressionOperator", right.AfterSet)
	assert.Equal(t, 0, right.Nth)
}

func TestNthCountsSameTypedFieldsWithoutAnchor(t *testing.T) {
	const src = `
JsRoot = JsRoot_eof JsSequenceExpression .
JsRoot_eof = "EOF" .
JsSequenceExpression = JsSequenceExpression_left JsSequenceExpression_right .
JsSequenceExpression_left = JsThisExpression .
JsSequenceExpression_right = JsThisExpression .
JsThisExpression = "this" .
`
	g, err := Load("seq.ebnf", strings.NewReader(src))
	require.NoError(t, err)
	n := g.Node("JsSequenceExpression")
	assert.Equal(t, 0, fieldNamed(t, n, "Left").Nth)
	assert.Equal(t, 1, fieldNamed(t, n, "Right").Nth)
}

func TestListsGetSlots(t *testing.T) {
	g := loadMini(t)

	root := g.Node("JsRoot")
	assert.Equal(t, ListField, fieldNamed(t, root, "Directives").Kind)
	assert.Equal(t, 0, fieldNamed(t, root, "Directives").Slot)
	assert.Equal(t, 1, fieldNamed(t, root, "Statements").Slot)
	assert.Equal(t, []syntax.Kind{syntax.TokenEOF}, fieldNamed(t, root, "EofToken").Tokens)

	args := fieldNamed(t, g.Node("JsCallArguments"), "Args")
	assert.Equal(t, SeparatedListField, args.Kind)
	assert.Equal(t, "JsAnyExpression", args.Type)
}

func TestUnionClosure(t *testing.T) {
	g := loadMini(t)

	expr := g.Union("JsAnyExpression")
	assert.Equal(t, []string{"JsStringLiteralExpression", "JsNullLiteralExpression", "JsBinaryExpression", "JsCallExpression"}, expr.Concrete)
	assert.Empty(t, expr.Parents)

	lit := g.Union("JsAnyLiteralExpression")
	assert.Equal(t, []string{"JsAnyExpression"}, lit.Parents)
	assert.Equal(t, []string{"JsAnyExpression", "JsAnyLiteralExpression"}, g.Node("JsNullLiteralExpression").Unions)
	assert.Equal(t, []string{"JsAnyExpression"}, g.Node("JsCallExpression").Unions)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown token",
			src:  "JsRoot = \"EOF\" \"@@\" .",
			want: `unknown token "@@"`,
		},
		{
			name: "no syntax kind",
			src:  "JsRoot = \"EOF\" JsFrobnicate .\nJsFrobnicate = \"this\" .",
			want: "no syntax kind JS_FROBNICATE",
		},
		{
			name: "undefined production",
			src:  "JsRoot = JsMissing .",
			want: "JsMissing",
		},
		{
			name: "malformed separated list",
			src:  "JsRoot = \"EOF\" JsCallArguments .\nJsCallArguments = JsCallArguments_args .\nJsCallArguments_args = [ JsThisExpression JsThisExpression ] .\nJsThisExpression = \"this\" .",
			want: "expected X",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load("bad.ebnf", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateMini(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, loadMini(t), Options{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, Header+"\n"))
	assert.Contains(t, out, "var jsBinaryExpressionOperator = []syntax.Kind{syntax.TokenPlus, syntax.TokenMinus}\n")
	assert.Contains(t, out, "type JsAnyLiteralExpression interface {\n\tJsAnyExpression\n\tisJsAnyLiteralExpression()\n}\n")
	assert.Contains(t, out, `return requiredNode(n.node, "test", []syntax.Kind{syntax.TokenLParen}, []syntax.Kind{syntax.TokenRParen}, 0, CastJsAnyExpression)`)
	assert.Contains(t, out, "return requiredNode(n.node, \"right\", jsBinaryExpressionOperator, nil, 0, CastJsAnyExpression)")
	assert.Contains(t, out, "return requiredNode(n.node, \"left\", nil, jsBinaryExpressionOperator, 0, CastJsAnyExpression)")
	assert.Contains(t, out, "return childNode(n.node, []syntax.Kind{syntax.TokenRParen}, nil, 0, CastJsElseClause)")
	assert.Contains(t, out, "return childToken(n.node, syntax.TokenSemicolon)")
	assert.Contains(t, out, "return newSeparatedList(listChild(n.node, 0), CastJsAnyExpression)")
	assert.Contains(t, out, "func (JsNullLiteralExpression) isJsAnyLiteralExpression() {}")
	assert.Contains(t, out, "func (n JsUnknownStatement) Items() []syntax.Element {")
}

func TestGeneratedNodesAreUpToDate(t *testing.T) {
	f, err := os.Open("../../ast/js.ebnf")
	require.NoError(t, err)
	defer f.Close()

	g, err := Load("js.ebnf", f)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, g, Options{}))

	want, err := os.ReadFile("../../ast/nodes.gen.go")
	require.NoError(t, err)
	assert.Equal(t, string(want), buf.String(), "ast/nodes.gen.go is stale, run go generate ./ast")
}

func TestNames(t *testing.T) {
	assert.Equal(t, "LParenToken", camel("l_paren_token"))
	assert.Equal(t, "Dot3Token", camel("dot3_token"))
	assert.Equal(t, "else_clause", snake("ElseClause"))
	assert.Equal(t, "JS_IF_STATEMENT", screaming("JsIfStatement"))
	assert.Equal(t, "expression", nodeLabel("JsAnyExpression"))
	assert.Equal(t, "initializer_clause", nodeLabel("JsInitializerClause"))
	assert.Equal(t, "TokenEOF", kindConst(syntax.TokenEOF))
	assert.Equal(t, "TokenUShrEq", kindConst(syntax.TokenUShrEq))
	assert.Equal(t, "TokenInstanceof", kindConst(syntax.TokenInstanceof))
	assert.Equal(t, "TokenJsStringLiteral", kindConst(syntax.TokenJsStringLiteral))
	assert.Equal(t, "KindJsIfStatement", kindConst(syntax.KindJsIfStatement))
	assert.Equal(t, "if_token", tokenLabel(syntax.TokenIf))
}
