package syntax

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
)

// buildSample builds the tree of "  a + // c\n b":
//
//	JS_ROOT
//	  JS_BINARY_EXPRESSION
//	    IDENT "a"
//	    PLUS "+"
//	    IDENT "b"
//	  EOF
func buildSample() *Node {
	b := NewTreeBuilder()
	b.StartNode(KindJsRoot)
	b.StartNode(KindJsBinaryExpression)
	b.Token(TokenIdent, "  a ", []TriviaPiece{{TokenWhitespace, 2}}, []TriviaPiece{{TokenWhitespace, 1}})
	b.Token(TokenPlus, "+ // c", nil, []TriviaPiece{{TokenWhitespace, 1}, {TokenComment, 4}})
	b.Token(TokenIdent, "\n b", []TriviaPiece{{TokenNewline, 1}, {TokenWhitespace, 1}}, nil)
	b.FinishNode()
	b.Token(TokenEOF, "", nil, nil)
	b.FinishNode()
	return NewRoot(b.Finish())
}

func TestTextAndRanges(t *testing.T) {
	root := buildSample()
	const src = "  a + // c\n b"

	if got := root.Text(); got != src {
		t.Fatalf("Text() = %q", got)
	}
	if got := root.TextRange(); got != NewRange(0, len(src)) {
		t.Errorf("TextRange() = %s", got)
	}

	bin := root.FirstChild()
	if bin.Kind() != KindJsBinaryExpression || bin.Parent() != root || bin.Index() != 0 {
		t.Fatalf("first child %s index %d", bin.Kind(), bin.Index())
	}
	if got := bin.TextTrimmed(); got != "a + // c\n b" {
		t.Errorf("TextTrimmed() = %q", got)
	}
	if got := bin.TextTrimmedRange(); got != NewRange(2, len(src)) {
		t.Errorf("TextTrimmedRange() = %s", got)
	}

	kids := bin.ChildrenWithTokens()
	if len(kids) != 3 {
		t.Fatalf("%d children", len(kids))
	}
	plus := kids[1].Token()
	if plus.TextTrimmed() != "+" || plus.TextTrimmedRange() != NewRange(4, 5) || plus.TextRange() != NewRange(4, 10) {
		t.Errorf("plus: %q %s %s", plus.TextTrimmed(), plus.TextTrimmedRange(), plus.TextRange())
	}
	if kids[2].TextRange() != NewRange(10, 13) || kids[2].IsNode() {
		t.Errorf("b: %s", kids[2].TextRange())
	}
}

func TestTrivia(t *testing.T) {
	root := buildSample()
	var toks []*Token
	for tok := range root.DescendantTokens() {
		toks = append(toks, tok)
	}
	if len(toks) != 4 || toks[3].Kind() != TokenEOF {
		t.Fatalf("%d tokens", len(toks))
	}

	trailing := toks[1].TrailingTrivia()
	if len(trailing) != 2 || trailing[1].Kind != TokenComment || trailing[1].Text != "// c" || trailing[1].Range != NewRange(6, 10) {
		t.Errorf("trailing trivia of +: %+v", trailing)
	}

	leading := toks[2].LeadingTrivia()
	if len(leading) != 2 || leading[0].Text != "\n" || leading[1].Range != NewRange(11, 12) {
		t.Errorf("leading trivia of b: %+v", leading)
	}
	if !toks[2].HasNewlineBefore() || toks[1].HasNewlineBefore() {
		t.Error("HasNewlineBefore")
	}
}

func TestNavigation(t *testing.T) {
	root := buildSample()

	var kinds []Kind
	for n := range root.Descendants() {
		kinds = append(kinds, n.Kind())
	}
	if !slices.Equal(kinds, []Kind{KindJsRoot, KindJsBinaryExpression}) {
		t.Errorf("Descendants() = %v", kinds)
	}

	bin := root.Children()[0]
	if first, last := bin.FirstToken(), bin.LastToken(); first.TextTrimmed() != "a" || last.TextTrimmed() != "b" {
		t.Errorf("first %q last %q", first.TextTrimmed(), last.TextTrimmed())
	}
	if root.LastToken().Kind() != TokenEOF {
		t.Error("root does not end with EOF")
	}

	var ancestors []Kind
	for a := range bin.Ancestors() {
		ancestors = append(ancestors, a.Kind())
	}
	if !slices.Equal(ancestors, []Kind{KindJsRoot}) {
		t.Errorf("Ancestors() = %v", ancestors)
	}

	if got := root.CoveringNode(NewRange(4, 5)); !got.Equal(bin) {
		t.Errorf("CoveringNode() = %s", got.Kind())
	}
	if !root.Equal(NewRoot(root.Green())) {
		t.Error("views of the same green root differ")
	}
}

func TestDump(t *testing.T) {
	want := strings.Join([]string{
		`JS_ROOT@0..13`,
		`  JS_BINARY_EXPRESSION@0..13`,
		`    IDENT@0..4 "a" [WHITESPACE("  ")] [WHITESPACE(" ")]`,
		`    PLUS@4..10 "+" [] [WHITESPACE(" "), COMMENT("// c")]`,
		`    IDENT@10..13 "b" [NEWLINE("\n"), WHITESPACE(" ")] []`,
		`  EOF@13..13 "" [] []`,
		``,
	}, "\n")
	if got := buildSample().String(); got != want {
		t.Errorf("dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(buildSample())
	if err != nil {
		t.Fatal(err)
	}
	var tree struct {
		Kind     string
		Range    [2]int
		Children []struct {
			Kind     string
			Children []struct {
				Kind     string
				Text     string
				Range    [2]int
				Trailing []struct{ Kind, Text string }
			}
		}
	}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatal(err)
	}
	if tree.Kind != "JS_ROOT" || tree.Range != [2]int{0, 13} || len(tree.Children) != 2 {
		t.Fatalf("root: %s", data)
	}
	plus := tree.Children[0].Children[1]
	if plus.Kind != "PLUS" || plus.Text != "+" || plus.Range != [2]int{4, 5} || len(plus.Trailing) != 2 {
		t.Errorf("plus: %+v", plus)
	}
}

func TestBuilderPanics(t *testing.T) {
	tests := map[string]func(b *TreeBuilder){
		"token kind node":  func(b *TreeBuilder) { b.StartNode(TokenIdent) },
		"unbalanced":       func(b *TreeBuilder) { b.FinishNode() },
		"unfinished":       func(b *TreeBuilder) { b.StartNode(KindJsRoot); b.Finish() },
		"two roots":        func(b *TreeBuilder) { b.StartNode(KindList); b.FinishNode(); b.StartNode(KindList); b.FinishNode(); b.Finish() },
		"token at the top": func(b *TreeBuilder) { b.Token(TokenEOF, "", nil, nil); b.Finish() },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			fn(NewTreeBuilder())
		})
	}
}

func TestKinds(t *testing.T) {
	if k, ok := FromText("instanceof"); !ok || k != TokenInstanceof {
		t.Errorf("FromText(instanceof) = %s", k)
	}
	if k, ok := KindFromName("JS_IF_STATEMENT"); !ok || k != KindJsIfStatement {
		t.Errorf("KindFromName = %s", k)
	}
	if !TokenLet.IsContextualKeyword() || TokenIf.IsContextualKeyword() || !TokenIf.IsKeyword() {
		t.Error("keyword classification")
	}
	if !KindJsUnknownBinding.IsUnknown() || KindJsIfStatement.IsUnknown() {
		t.Error("unknown classification")
	}
	if !TokenComment.IsTrivia() || TokenIdent.IsTrivia() {
		t.Error("trivia classification")
	}
	if !KindList.IsNode() || TokenIdent.IsNode() {
		t.Error("node classification")
	}
	if got := TokenLParen.Describe(); got != "`(`" {
		t.Errorf("Describe(L_PAREN) = %s", got)
	}
	if got := TokenEOF.Describe(); got != "the end of the file" {
		t.Errorf("Describe(EOF) = %s", got)
	}
	if len(Kinds()) != int(kindCount) {
		t.Error("Kinds() is incomplete")
	}
}

func TestTextRange(t *testing.T) {
	r := NewRange(2, 5)
	if r.Len() != 3 || r.IsEmpty() || !r.Contains(2) || r.Contains(5) {
		t.Errorf("range %s", r)
	}
	if !r.ContainsRange(NewRange(3, 5)) || r.ContainsRange(NewRange(1, 3)) {
		t.Error("ContainsRange")
	}
	if got := r.Cover(NewRange(7, 8)); got != NewRange(2, 8) {
		t.Errorf("Cover() = %s", got)
	}
	if !EmptyAt(4).IsEmpty() {
		t.Error("EmptyAt is not empty")
	}
}

func TestLineIndex(t *testing.T) {
	src := []byte("ab\r\nc😀d\re\n")
	li := NewLineIndex(src)
	if li.LineCount() != 4 {
		t.Fatalf("LineCount() = %d", li.LineCount())
	}

	tests := []struct {
		offset int
		pos    Position
		lc     LineCol
	}{
		{0, Position{1, 1}, LineCol{0, 0}},
		{2, Position{1, 3}, LineCol{0, 2}},
		{4, Position{2, 1}, LineCol{1, 0}},
		{5, Position{2, 2}, LineCol{1, 1}},
		{9, Position{2, 3}, LineCol{1, 3}},
		{11, Position{3, 1}, LineCol{2, 0}},
		{13, Position{4, 1}, LineCol{3, 0}},
		{99, Position{4, 1}, LineCol{3, 0}},
	}
	for _, tt := range tests {
		if got := li.Position(tt.offset); got != tt.pos {
			t.Errorf("Position(%d) = %+v, want %+v", tt.offset, got, tt.pos)
		}
		if got := li.LineCol(tt.offset); got != tt.lc {
			t.Errorf("LineCol(%d) = %+v, want %+v", tt.offset, got, tt.lc)
		}
	}

	if got := li.Offset(LineCol{1, 3}); got != 9 {
		t.Errorf("Offset(1:3) = %d", got)
	}
	if got := li.Offset(LineCol{0, 50}); got != 2 {
		t.Errorf("Offset past the end of the line = %d", got)
	}
	if got := li.Offset(LineCol{9, 0}); got != len(src) {
		t.Errorf("Offset past the last line = %d", got)
	}
}
