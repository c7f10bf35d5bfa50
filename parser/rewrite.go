package parser

import (
	"fmt"
	"slices"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// RewriteParseEvents receives the events of an already parsed subtree while
// they are replayed, and may emit different nodes for them. A visitor that
// opens a marker in StartNode must close it in the matching FinishNode.
type RewriteParseEvents interface {
	StartNode(kind syntax.Kind, p *Parser)
	FinishNode(p *Parser)
	// Token must consume exactly one token, usually with p.BumpRemap(kind).
	Token(kind syntax.Kind, p *Parser)
}

// BumpRemap consumes the current token as kind. It is the building block
// for RewriteParseEvents implementations.
func (p *Parser) BumpRemap(kind syntax.Kind) {
	p.bumpRemap(kind)
}

// rewriteEvents replays every event emitted since cp through v. The parser
// rewinds to cp first, so the visitor's output replaces the original events
// and the token cursor ends where it was.
func rewriteEvents(p *Parser, v RewriteParseEvents, cp Checkpoint) {
	end := p.tokens.Pos()
	events := slices.Clone(p.events[cp.eventLen:])
	p.Rewind(cp)
	process(&rewriteSink{p: p, v: v}, events)
	if p.tokens.Pos() != end {
		panic(fmt.Sprintf("parser: rewrite consumed %d tokens, the original parse %d", p.tokens.Pos()-cp.tokenPos, end-cp.tokenPos))
	}
}

type rewriteSink struct {
	p *Parser
	v RewriteParseEvents
}

func (s *rewriteSink) startNode(kind syntax.Kind) {
	s.v.StartNode(kind, s.p)
}

func (s *rewriteSink) finishNode() {
	s.v.FinishNode(s.p)
}

func (s *rewriteSink) token(kind syntax.Kind, _ syntax.TextRange) {
	s.v.Token(kind, s.p)
}

func (s *rewriteSink) error(d diag.Diagnostic) {
	s.p.error(d)
}
