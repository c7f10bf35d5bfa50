package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAstCheck(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runAst(&buf, astOptions{grammar: "../../ast/js.ebnf", check: true}))
	assert.Regexp(t, `^\.\./\.\./ast/js\.ebnf: \d+ nodes, \d+ unions\n$`, buf.String())
}

func TestAstCheckReportsEveryProblem(t *testing.T) {
	grammar := filepath.Join(t.TempDir(), "bad.ebnf")
	src := "JsRoot = \"EOF\" \"@@\" JsThisExpression .\n" +
		"JsThisExpression = \"##\" .\n"
	require.NoError(t, os.WriteFile(grammar, []byte(src), 0o644))

	var buf bytes.Buffer
	err := runAst(&buf, astOptions{grammar: grammar, check: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load grammar")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `unknown token "@@"`)
	assert.Contains(t, lines[1], `unknown token "##"`)
}

func TestAstGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nodes.gen.go")
	var buf bytes.Buffer
	require.NoError(t, runAst(&buf, astOptions{grammar: "../../ast/js.ebnf", output: out, pkg: "ast"}))
	assert.Empty(t, buf.String())

	want, err := os.ReadFile("../../ast/nodes.gen.go")
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestErrorLines(t *testing.T) {
	joined := errors.Join(errors.New("a"), errors.Join(errors.New("b"), errors.New("c")))
	assert.Equal(t, []string{"a", "b", "c"}, errorLines(joined))
	assert.Equal(t, []string{"x: y"}, errorLines(errors.New("x: y")))

	listed := errorList{errors.New("first"), errors.New("second")}
	assert.Equal(t, []string{"first", "second"}, errorLines(listed))
}

type errorList []error

func (l errorList) Error() string {
	parts := make([]string, len(l))
	for i, e := range l {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}
