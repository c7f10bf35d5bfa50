package parser

import (
	"slices"
	"testing"

	"github.com/dhamidi/jscst/syntax"
)

func rawKinds(src string) []syntax.Kind {
	var kinds []syntax.Kind
	for _, tok := range NewTokenSource([]byte(src)).Raw() {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		src  string
		want []syntax.Kind
	}{
		{"a + 1", []syntax.Kind{
			syntax.TokenIdent, syntax.TokenWhitespace, syntax.TokenPlus,
			syntax.TokenWhitespace, syntax.TokenJsNumberLiteral, syntax.TokenEOF,
		}},
		{"x // c\n/* m */y", []syntax.Kind{
			syntax.TokenIdent, syntax.TokenWhitespace, syntax.TokenComment,
			syntax.TokenNewline, syntax.TokenComment, syntax.TokenIdent, syntax.TokenEOF,
		}},
		{"`a${b}c`", []syntax.Kind{
			syntax.TokenTemplateHead, syntax.TokenIdent, syntax.TokenTemplateTail, syntax.TokenEOF,
		}},
		{"`plain`", []syntax.Kind{syntax.TokenTemplate, syntax.TokenEOF}},
		{"let async of", []syntax.Kind{
			syntax.TokenIdent, syntax.TokenWhitespace, syntax.TokenIdent,
			syntax.TokenWhitespace, syntax.TokenIdent, syntax.TokenEOF,
		}},
		{"if instanceof", []syntax.Kind{
			syntax.TokenIf, syntax.TokenWhitespace, syntax.TokenInstanceof, syntax.TokenEOF,
		}},
		{"'s' \"d\"", []syntax.Kind{
			syntax.TokenJsStringLiteral, syntax.TokenWhitespace, syntax.TokenJsStringLiteral, syntax.TokenEOF,
		}},
		{"a?.b ?? c", []syntax.Kind{
			syntax.TokenIdent, syntax.TokenQuestionDot, syntax.TokenIdent, syntax.TokenWhitespace,
			syntax.TokenQuestion2, syntax.TokenWhitespace, syntax.TokenIdent, syntax.TokenEOF,
		}},
		{">>>=", []syntax.Kind{syntax.TokenUShrEq, syntax.TokenEOF}},
		{"\x01", []syntax.Kind{syntax.TokenError, syntax.TokenEOF}},
		{"", []syntax.Kind{syntax.TokenEOF}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := rawKinds(tt.src); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexerCoversEveryByte(t *testing.T) {
	for _, src := range append(corpus, "\x01\x02 a \xff b", "a b") {
		raw := NewTokenSource([]byte(src)).Raw()
		at := 0
		for _, tok := range raw {
			if tok.Range.Start != at {
				t.Fatalf("%q: token %s starts at %d, want %d", src, tok.Kind, tok.Range.Start, at)
			}
			at = tok.Range.End
		}
		if at != len(src) {
			t.Errorf("%q: tokens end at %d, want %d", src, at, len(src))
		}
		if last := raw[len(raw)-1]; last.Kind != syntax.TokenEOF || !last.Range.IsEmpty() {
			t.Errorf("%q: last token is %s at %s", src, last.Kind, last.Range)
		}
	}
}

func TestTokenSourceSkipsTrivia(t *testing.T) {
	ts := NewTokenSource([]byte("a /* x */ b\n c"))
	if ts.Cur().Kind != syntax.TokenIdent || ts.Nth(1).Range != syntax.NewRange(10, 11) {
		t.Fatalf("lookahead: %v %v", ts.Cur(), ts.Nth(1))
	}
	if ts.Nth(1).AfterNewline {
		t.Error("b is not after a newline")
	}
	if !ts.Nth(2).AfterNewline {
		t.Error("c is after a newline")
	}
	if ts.Nth(10).Kind != syntax.TokenEOF {
		t.Error("lookahead past the end is not EOF")
	}

	ts.Bump()
	ts.Bump()
	if ts.Pos() != 2 || ts.Text(ts.Cur().Range) != "c" {
		t.Errorf("after two bumps at %d %q", ts.Pos(), ts.Text(ts.Cur().Range))
	}
	ts.Rewind(1)
	if ts.Text(ts.Cur().Range) != "b" {
		t.Errorf("rewind: at %q", ts.Text(ts.Cur().Range))
	}

	ts.Bump()
	ts.Bump()
	ts.Bump()
	ts.Bump()
	if ts.Cur().Kind != syntax.TokenEOF || ts.Pos() != 3 {
		t.Errorf("EOF was consumed: pos %d", ts.Pos())
	}
}

func TestTokenSourceRewindForwardsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	NewTokenSource([]byte("a b")).Rewind(1)
}

func TestReLexRegex(t *testing.T) {
	t.Run("live", func(t *testing.T) {
		ts := NewTokenSource([]byte("/ab+c/g.x"))
		if ts.Cur().Kind != syntax.TokenSlash {
			t.Fatalf("first token is %s", ts.Cur().Kind)
		}
		if !ts.ReLexRegex() {
			t.Fatal("regex was not recognized")
		}
		if got := ts.Cur(); got.Kind != syntax.TokenJsRegexLiteral || ts.Text(got.Range) != "/ab+c/g" {
			t.Fatalf("got %s %q", got.Kind, ts.Text(got.Range))
		}
		ts.Bump()
		if ts.Cur().Kind != syntax.TokenDot || ts.Text(ts.Nth(1).Range) != "x" {
			t.Errorf("after regex: %s %s", ts.Cur().Kind, ts.Nth(1).Kind)
		}
	})

	t.Run("after lookahead", func(t *testing.T) {
		ts := NewTokenSource([]byte("/a/ + b"))
		ts.Nth(3)
		if !ts.ReLexRegex() {
			t.Fatal("regex was not recognized")
		}
		if ts.Text(ts.Cur().Range) != "/a/" {
			t.Fatalf("got %q", ts.Text(ts.Cur().Range))
		}
		if ts.Nth(1).Kind != syntax.TokenPlus || ts.Text(ts.Nth(2).Range) != "b" {
			t.Errorf("lookahead after regex: %v %v", ts.Nth(1), ts.Nth(2))
		}
	})

	t.Run("inside a template after lookahead", func(t *testing.T) {
		ts := NewTokenSource([]byte("`${(/x/)}` + y"))
		for ts.Cur().Kind != syntax.TokenSlash {
			ts.Bump()
		}
		ts.Nth(4)
		if !ts.ReLexRegex() {
			t.Fatal("regex was not recognized")
		}
		var kinds []syntax.Kind
		for ts.Cur().Kind != syntax.TokenEOF {
			kinds = append(kinds, ts.Cur().Kind)
			ts.Bump()
		}
		want := []syntax.Kind{syntax.TokenJsRegexLiteral, syntax.TokenRParen, syntax.TokenTemplateTail, syntax.TokenPlus, syntax.TokenIdent}
		if !slices.Equal(kinds, want) {
			t.Errorf("got %v, want %v", kinds, want)
		}
	})

	t.Run("not at slash", func(t *testing.T) {
		ts := NewTokenSource([]byte("a"))
		if ts.ReLexRegex() {
			t.Error("identifier relexed as regex")
		}
	})
}
