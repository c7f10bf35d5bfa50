package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/dhamidi/jscst/syntax"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestRender(t *testing.T) {
	src := []byte("let x;\na?.b = c;\n")
	d := Errorf(CodeInvalidAssignment, syntax.NewRange(7, 11), "Invalid assignment to `%s`", "a?.b").
		WithLabel("This expression cannot be assigned to")

	var buf bytes.Buffer
	if err := Render(&buf, "main.js", src, d); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"error[JS0003]: Invalid assignment to `a?.b`",
		" --> main.js:2:1",
		"  |",
		"2 | a?.b = c;",
		"  | ^^^^ This expression cannot be assigned to",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmptyRangeAndHint(t *testing.T) {
	src := []byte("a b")
	d := Warningf(CodeExpected, syntax.EmptyAt(2), "expected a semicolon").WithHint("add a `;`")

	var buf bytes.Buffer
	if err := Render(&buf, "x.js", src, d); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"warning[JS0001]: expected a semicolon",
		" --> x.js:1:3",
		"  |",
		"1 | a b",
		"  |   ^",
		"  = hint: add a `;`",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderMultiline(t *testing.T) {
	src := []byte("foo(\n)")
	d := Errorf(CodeUnexpected, syntax.NewRange(0, 6), "bad call")

	var buf bytes.Buffer
	if err := RenderAll(&buf, "m.js", src, []Diagnostic{d, d}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "error[JS0002]: bad call"); n != 2 {
		t.Errorf("rendered %d diagnostics", n)
	}
	if !strings.Contains(out, "1 | foo(\n  | ^^^^\n\n") {
		t.Errorf("a multi-line range is not underlined to the end of its first line:\n%s", out)
	}
}

func TestDiagnostic(t *testing.T) {
	d := Errorf(CodeUndefinedLabel, syntax.NewRange(1, 2), "Use of undefined statement label `%s`", "x").WithHint("define it")
	if got := d.String(); got != "[JS0004] error at 1..2: Use of undefined statement label `x` (hint: define it)" {
		t.Errorf("String() = %q", got)
	}
	if !HasErrors([]Diagnostic{Warningf(CodeExpected, syntax.EmptyAt(0), "w"), d}) {
		t.Error("HasErrors misses an error")
	}
	if HasErrors([]Diagnostic{Warningf(CodeExpected, syntax.EmptyAt(0), "w")}) {
		t.Error("HasErrors counts a warning")
	}
	if Severity(7).String() != "unknown" {
		t.Error("unknown severity")
	}
}
