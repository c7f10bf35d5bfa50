package parser

import "github.com/dhamidi/jscst/diag"

// ParsedSyntax is the result of a rule that may not apply at the current
// token: either a completed node, or absent when the rule did not start.
type ParsedSyntax struct {
	node CompletedMarker
	ok   bool
}

func Present(cm CompletedMarker) ParsedSyntax {
	return ParsedSyntax{node: cm, ok: true}
}

func Absent() ParsedSyntax {
	return ParsedSyntax{}
}

func (ps ParsedSyntax) IsPresent() bool {
	return ps.ok
}

func (ps ParsedSyntax) IsAbsent() bool {
	return !ps.ok
}

// Unwrap returns the completed node; it panics when absent.
func (ps ParsedSyntax) Unwrap() CompletedMarker {
	if !ps.ok {
		panic("parser: Unwrap on absent syntax")
	}
	return ps.node
}

func (ps ParsedSyntax) Get() (CompletedMarker, bool) {
	return ps.node, ps.ok
}

// OrMissing leaves an absent child as a hole in its parent.
func (ps ParsedSyntax) OrMissing() (CompletedMarker, bool) {
	return ps.node, ps.ok
}

// OrMissingWithError is OrMissing that also records the diagnostic built by
// errFn when the node is absent.
func (ps ParsedSyntax) OrMissingWithError(p *Parser, errFn func(p *Parser) diag.Diagnostic) (CompletedMarker, bool) {
	if !ps.ok {
		p.error(errFn(p))
	}
	return ps.node, ps.ok
}

// Map rewrites a present node with fn.
func (ps ParsedSyntax) Map(fn func(CompletedMarker) CompletedMarker) ParsedSyntax {
	if !ps.ok {
		return ps
	}
	return Present(fn(ps.node))
}
