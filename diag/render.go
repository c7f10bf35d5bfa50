package diag

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/dhamidi/jscst/syntax"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	gutterStyle  = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.Bold)
)

func (s Severity) style() *color.Color {
	if s == Warning {
		return warningStyle
	}
	return errorStyle
}

// Render writes d with a source excerpt:
//
//	error[JS0003]: Invalid assignment to `a?.b`
//	 --> main.js:1:1
//	  |
//	1 | a?.b = c;
//	  | ^^^^ This expression cannot be assigned to
func Render(w io.Writer, file string, src []byte, d Diagnostic) error {
	li := syntax.NewLineIndex(src)
	start := li.Position(d.Range.Start)
	end := li.Position(d.Range.End)

	sev := d.Severity.style()
	lineNo := strconv.Itoa(start.Line)
	pad := strings.Repeat(" ", len(lineNo))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %s\n", sev.Sprintf("%s[%s]", d.Severity, d.Code), messageStyle.Sprint(d.Message))
	fmt.Fprintf(&buf, "%s%s %s:%d:%d\n", pad, gutterStyle.Sprint("-->"), file, start.Line, start.Column)
	fmt.Fprintf(&buf, "%s %s\n", pad, gutterStyle.Sprint("|"))

	line := sourceLine(src, li, start.Line)
	fmt.Fprintf(&buf, "%s %s %s\n", gutterStyle.Sprint(lineNo), gutterStyle.Sprint("|"), line)

	width := 1
	if end.Line == start.Line && end.Column > start.Column {
		width = end.Column - start.Column
	} else if end.Line != start.Line {
		width = max(1, utf8.RuneCountInString(line)-start.Column+1)
	}
	marker := strings.Repeat(" ", start.Column-1) + strings.Repeat("^", width)
	if d.Label != "" {
		marker += " " + d.Label
	}
	fmt.Fprintf(&buf, "%s %s %s\n", pad, gutterStyle.Sprint("|"), sev.Sprint(marker))
	if d.Hint != "" {
		fmt.Fprintf(&buf, "%s %s hint: %s\n", pad, gutterStyle.Sprint("="), d.Hint)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// RenderAll renders every diagnostic followed by a blank line.
func RenderAll(w io.Writer, file string, src []byte, diags []Diagnostic) error {
	for _, d := range diags {
		if err := Render(w, file, src, d); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func sourceLine(src []byte, li *syntax.LineIndex, line int) string {
	start := li.Offset(syntax.LineCol{Line: line - 1})
	end := start
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}
	return strings.ReplaceAll(string(src[start:end]), "\t", " ")
}
