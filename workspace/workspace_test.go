package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/jscst/syntax"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestUpdateAndRemove(t *testing.T) {
	w := New("/src")
	f := w.UpdateFile("/src/b.js", 3, []byte("let x = ;"))
	w.UpdateFile("/src/a.js", 1, []byte("let y = 1;"))

	assert.Equal(t, int32(3), f.Version)
	assert.True(t, f.Result.HasErrors())
	assert.Same(t, f, w.GetFile("/src/b.js"))
	assert.Equal(t, []string{"/src/a.js", "/src/b.js"}, w.Paths())

	w.RemoveFile("/src/b.js")
	assert.Nil(t, w.GetFile("/src/b.js"))
	assert.Equal(t, []string{"/src/a.js"}, w.Paths())
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.js"), "import_();")
	writeFile(t, filepath.Join(dir, "lib", "util.mjs"), "export_();")
	writeFile(t, filepath.Join(dir, "README.md"), "# readme")
	writeFile(t, filepath.Join(dir, "node_modules", "dep", "index.js"), "dep();")
	writeFile(t, filepath.Join(dir, ".git", "hook.js"), "hook();")

	w := New(dir)
	require.NoError(t, w.ScanAll())
	assert.Equal(t, []string{
		filepath.Join(dir, "lib", "util.mjs"),
		filepath.Join(dir, "main.js"),
	}, w.Paths())
}

func TestScanFileMissing(t *testing.T) {
	w := New(t.TempDir())
	assert.Error(t, w.ScanFile(filepath.Join(w.RootDir(), "nope.js")))
}

func TestIsSource(t *testing.T) {
	assert.True(t, IsSource("a/b.js"))
	assert.True(t, IsSource("b.cjs"))
	assert.False(t, IsSource("b.ts"))
	assert.False(t, IsSource("js"))
}

func TestSymbols(t *testing.T) {
	src := "function f() {\n  let a = 1;\n}\nconst [x, y] = z;\n{ var v; }\nlbl: function g() {}\n"
	w := New(".")
	f := w.UpdateFile("s.js", 0, []byte(src))
	require.False(t, f.Result.HasErrors(), f.Result.Diagnostics())

	syms := Symbols(f.Result.Tree())
	var names []string
	for _, s := range syms {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"f", "x", "y", "v", "g"}, names)

	fn := syms[0]
	assert.Equal(t, SymbolFunction, fn.Kind)
	assert.Equal(t, syntax.NewRange(9, 10), fn.NameRange)
	assert.Equal(t, syntax.NewRange(0, 29), fn.Range)
	require.Len(t, fn.Children, 1)
	assert.Equal(t, "a", fn.Children[0].Name)
	assert.Equal(t, SymbolVariable, fn.Children[0].Kind)

	assert.Equal(t, SymbolConstant, syms[1].Kind)
	assert.Equal(t, SymbolConstant, syms[2].Kind)
	assert.Equal(t, syms[1].Range, syms[2].Range)
	assert.Equal(t, SymbolVariable, syms[3].Kind)
}

func TestWatcherScan(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.js")
	b := filepath.Join(dir, "b.js")
	writeFile(t, a, "a();")

	w := New(dir)
	var reported [][]Change
	fw := NewFileWatcher(w, []string{dir}, time.Second, func(c []Change) {
		reported = append(reported, c)
	})

	assert.Equal(t, []Change{{Path: a}}, fw.Scan())
	assert.NotNil(t, w.GetFile(a))

	assert.Empty(t, fw.Scan())

	writeFile(t, b, "b(;")
	writeFile(t, a, "a(1);")
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(a, later, later))

	changes := fw.Scan()
	assert.ElementsMatch(t, []Change{{Path: a}, {Path: b}}, changes)
	assert.Equal(t, "a(1);", w.GetFile(a).Result.Syntax().Text())
	assert.True(t, w.GetFile(b).Result.HasErrors())

	require.NoError(t, os.Remove(b))
	assert.Equal(t, []Change{{Path: b, Removed: true}}, fw.Scan())
	assert.Nil(t, w.GetFile(b))

	assert.Len(t, reported, 3)
}

func TestWatcherSingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.js")
	writeFile(t, a, "a();")
	writeFile(t, filepath.Join(dir, "other.js"), "b();")

	w := New(dir)
	fw := NewFileWatcher(w, []string{a}, time.Second, nil)
	assert.Equal(t, []Change{{Path: a}}, fw.Scan())
	assert.Equal(t, []string{a}, w.Paths())
}

func notifications(t *testing.T) (*glsp.Context, *[]protocol.PublishDiagnosticsParams) {
	t.Helper()
	var sent []protocol.PublishDiagnosticsParams
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, method)
			sent = append(sent, params.(protocol.PublishDiagnosticsParams))
		},
	}
	return ctx, &sent
}

func TestLSPPublishesDiagnostics(t *testing.T) {
	ls := NewLSPServer("test")
	ctx, sent := notifications(t)
	uri := "file:///proj/main.js"

	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "javascript", Version: 1, Text: "let x;\na?.b = c;\n"},
	}))
	require.Len(t, *sent, 1)
	params := (*sent)[0]
	assert.Equal(t, uri, params.URI)
	require.NotNil(t, params.Version)
	assert.Equal(t, protocol.UInteger(1), *params.Version)
	require.Len(t, params.Diagnostics, 1)
	d := params.Diagnostics[0]
	assert.Equal(t, "Invalid assignment to `a?.b`", d.Message)
	assert.Equal(t, protocol.DiagnosticSeverityError, *d.Severity)
	assert.Equal(t, "JS0003", d.Code.Value)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 0},
		End:   protocol.Position{Line: 1, Character: 4},
	}, d.Range)

	require.NoError(t, ls.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "a.b = c;"}},
	}))
	require.Len(t, *sent, 2)
	assert.Empty(t, (*sent)[1].Diagnostics)
	assert.Equal(t, int32(2), ls.workspace.GetFile("/proj/main.js").Version)

	require.NoError(t, ls.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	}))
	require.Len(t, *sent, 3)
	assert.Empty(t, (*sent)[2].Diagnostics)
	assert.Nil(t, ls.workspace.GetFile("/proj/main.js"))
}

func TestLSPDocumentSymbols(t *testing.T) {
	ls := NewLSPServer("test")
	ctx, _ := notifications(t)
	uri := "file:///proj/sym.js"
	require.NoError(t, ls.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "const a = 1;\nfunction f() {}\n"},
	}))

	result, err := ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})
	require.NoError(t, err)
	symbols := result.([]protocol.DocumentSymbol)
	require.Len(t, symbols, 2)
	assert.Equal(t, "a", symbols[0].Name)
	assert.Equal(t, protocol.SymbolKindConstant, symbols[0].Kind)
	assert.Equal(t, "f", symbols[1].Name)
	assert.Equal(t, protocol.SymbolKindFunction, symbols[1].Kind)
	assert.Equal(t, protocol.Position{Line: 1, Character: 9}, symbols[1].SelectionRange.Start)
	assert.Empty(t, symbols[1].Children)

	result, err = ls.textDocumentDocumentSymbol(ctx, &protocol.DocumentSymbolParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///proj/unknown.js"},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/me/my%20app/x.js")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/my app/x.js", path)

	path, err = uriToPath("/plain/path.js")
	require.NoError(t, err)
	assert.Equal(t, "/plain/path.js", path)
}

func TestSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.js"), "")
	writeFile(t, filepath.Join(dir, "b.txt"), "")
	writeFile(t, filepath.Join(dir, "sub", "c.cjs"), "")
	writeFile(t, filepath.Join(dir, "node_modules", "d.js"), "")

	paths, err := SourceFiles(dir, filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.js"),
		filepath.Join(dir, "sub", "c.cjs"),
		filepath.Join(dir, "b.txt"),
	}, paths)

	_, err = SourceFiles(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
