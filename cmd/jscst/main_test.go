package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/jscst/parser"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestWriteTree(t *testing.T) {
	res := parser.ParseBytes([]byte("x;"))

	var buf bytes.Buffer
	require.NoError(t, writeTree(&buf, res, "tree", false))
	assert.True(t, strings.HasPrefix(buf.String(), "JS_ROOT@0..2\n"), buf.String())

	buf.Reset()
	require.NoError(t, writeTree(&buf, res, "json", false))
	var tree struct {
		Kind  string `json:"kind"`
		Range [2]int `json:"range"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &tree))
	assert.Equal(t, "JS_ROOT", tree.Kind)
	assert.Equal(t, [2]int{0, 2}, tree.Range)

	buf.Reset()
	require.NoError(t, writeTree(&buf, res, "json", true))
	assert.Contains(t, buf.String(), "JS_ROOT")
	assert.Contains(t, buf.String(), "\n  ")

	assert.EqualError(t, writeTree(&buf, res, "yaml", false), "unknown format: yaml")
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")
	require.NoError(t, os.WriteFile(good, []byte("let a = 1;\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("let b = ;\na?.b = c;\n"), 0o644))

	var buf bytes.Buffer
	summary, err := checkFiles(context.Background(), &buf, []string{good, bad}, 2)
	require.NoError(t, err)
	assert.Equal(t, checkSummary{Files: 2, FilesWithErrors: 1, Errors: 2}, summary)
	assert.Equal(t, "checked 2 files: 2 errors, 0 warnings", summary.String())

	out := buf.String()
	assert.Contains(t, out, bad+":1:")
	assert.Contains(t, out, "Invalid assignment to `a?.b`")
	assert.NotContains(t, out, good)
}

func TestCheckFilesMissing(t *testing.T) {
	var buf bytes.Buffer
	_, err := checkFiles(context.Background(), &buf, []string{filepath.Join(t.TempDir(), "nope.js")}, 0)
	assert.ErrorContains(t, err, "nope.js")
}

func TestReplSession(t *testing.T) {
	var buf bytes.Buffer
	s := &replSession{format: "tree"}

	s.input(&buf, "function f() {")
	assert.Empty(t, buf.String())
	assert.NotZero(t, s.pending.Len())

	s.input(&buf, "}")
	assert.Zero(t, s.pending.Len())
	assert.Contains(t, buf.String(), "JS_FUNCTION_DECLARATION")

	buf.Reset()
	assert.False(t, s.command(&buf, ":expr"))
	assert.True(t, s.expression)
	s.input(&buf, "a + b")
	assert.Contains(t, buf.String(), "JS_BINARY_EXPRESSION")

	buf.Reset()
	s.input(&buf, "(a")
	assert.Empty(t, buf.String())
	s.input(&buf, "")
	assert.Contains(t, buf.String(), "but instead the file ends")

	assert.True(t, s.command(&buf, ":q"))
}

// diagnosticRejecter fails every write of a rendered diagnostic.
type diagnosticRejecter struct {
	bytes.Buffer
}

func (w *diagnosticRejecter) Write(p []byte) (int, error) {
	if bytes.HasPrefix(p, []byte("error[")) {
		return 0, errors.New("diagnostics rejected")
	}
	return w.Buffer.Write(p)
}

func TestReplReportsRenderErrors(t *testing.T) {
	var w diagnosticRejecter
	s := &replSession{format: "tree"}
	s.input(&w, "let x = ;")
	assert.Contains(t, w.String(), "JS_VARIABLE_STATEMENT")
	assert.True(t, strings.HasSuffix(w.String(), "diagnostics rejected\n"), w.String())
}
