package parser

import (
	"fmt"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// losslessTreeSink builds the green tree from processed events, attaching the
// trivia between tokens so that the tree text equals the source.
type losslessTreeSink struct {
	src         []byte
	raw         []Token
	pos         int
	builder     *syntax.TreeBuilder
	diagnostics []diag.Diagnostic
}

func newLosslessTreeSink(src []byte, raw []Token) *losslessTreeSink {
	return &losslessTreeSink{src: src, raw: raw, builder: syntax.NewTreeBuilder()}
}

func (s *losslessTreeSink) startNode(kind syntax.Kind) {
	s.builder.StartNode(kind)
}

func (s *losslessTreeSink) finishNode() {
	s.builder.FinishNode()
}

func (s *losslessTreeSink) error(d diag.Diagnostic) {
	s.diagnostics = append(s.diagnostics, d)
}

// token emits the next raw token as kind. Leading trivia is everything since
// the previous token; trailing trivia runs up to the next line break.
func (s *losslessTreeSink) token(kind syntax.Kind, r syntax.TextRange) {
	start := s.pos
	var leading []syntax.TriviaPiece
	for s.pos < len(s.raw) && s.raw[s.pos].Kind.IsTrivia() {
		leading = append(leading, piece(s.raw[s.pos]))
		s.pos++
	}
	if s.pos >= len(s.raw) {
		panic("parser: token event past the end of the token stream")
	}
	tok := s.raw[s.pos]
	if tok.Range != r {
		panic(fmt.Sprintf("parser: token event %s at %s does not match lexed token at %s", kind, r, tok.Range))
	}
	s.pos++

	var trailing []syntax.TriviaPiece
	if tok.Kind != syntax.TokenEOF {
		for s.pos < len(s.raw) {
			k := s.raw[s.pos].Kind
			if k != syntax.TokenWhitespace && k != syntax.TokenComment {
				break
			}
			trailing = append(trailing, piece(s.raw[s.pos]))
			s.pos++
		}
	}

	end := tok.Range.End
	if s.pos > 0 {
		end = s.raw[s.pos-1].Range.End
	}
	text := string(s.src[s.raw[start].Range.Start:end])
	s.builder.Token(kind, text, leading, trailing)
}

func piece(t Token) syntax.TriviaPiece {
	return syntax.TriviaPiece{Kind: t.Kind, Len: t.Range.Len()}
}

func (s *losslessTreeSink) finish() (*syntax.Node, []diag.Diagnostic) {
	if s.pos != len(s.raw) {
		panic(fmt.Sprintf("parser: %d tokens were not consumed by the parse", len(s.raw)-s.pos))
	}
	return syntax.NewRoot(s.builder.Finish()), s.diagnostics
}
