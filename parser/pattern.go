package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// patternParser supplies what differs between destructuring assignments and
// destructuring bindings: the node kinds and the rules for the targets.
type patternParser interface {
	unknownKind() syntax.Kind
	arrayKind() syntax.Kind
	arrayRestKind() syntax.Kind
	withDefaultKind() syntax.Kind
	objectKind() syntax.Kind
	propertyKind() syntax.Kind
	shorthandKind() syntax.Kind
	objectRestKind() syntax.Kind

	expectedPattern(p *Parser) diag.Diagnostic
	// parsePattern parses a nested target, pattern or not.
	parsePattern(p *Parser) ParsedSyntax
	// parseShorthand parses the target of a shorthand property.
	parseShorthand(p *Parser) ParsedSyntax
	// parseObjectRestTarget parses and validates the target after `...` in
	// an object pattern.
	parseObjectRestTarget(p *Parser)
}

func parseArrayPattern(p *Parser, pp patternParser) ParsedSyntax {
	if !p.at(syntax.TokenLBrack) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenLBrack)
	parseSeparatedList(p, syntax.TokenRBrack,
		func(p *Parser) ParsedSyntax { return parseArrayPatternElement(p, pp) },
		pp.unknownKind(),
		func(p *Parser) diag.Diagnostic {
			return expectedAny(p, "an assignment target, a rest element, or a comma")
		})
	p.expect(syntax.TokenRBrack)
	return Present(m.Complete(p, pp.arrayKind()))
}

func parseArrayPatternElement(p *Parser, pp patternParser) ParsedSyntax {
	switch {
	case p.at(syntax.TokenComma):
		return Present(p.Start().Complete(p, syntax.KindJsArrayHole))
	case p.at(syntax.TokenDot3):
		m := p.Start()
		p.bump(syntax.TokenDot3)
		pp.parsePattern(p).OrMissingWithError(p, pp.expectedPattern)
		parseRestDefault(p, pp, "rest elements")
		rest := m.Complete(p, pp.arrayRestKind())
		if p.at(syntax.TokenComma) {
			p.error(invalidPattern(rest.Range(p), "rest element must be the last element").
				WithHint("remove the elements after the rest element"))
		}
		return Present(rest)
	}
	return parsePatternWithDefault(p, pp)
}

// parseRestDefault reports `...x = value` and keeps the initializer in an
// unknown node.
func parseRestDefault(p *Parser, pp patternParser, what string) {
	if !p.at(syntax.TokenEq) {
		return
	}
	m := p.Start()
	p.bump(syntax.TokenEq)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	cm := m.Complete(p, pp.unknownKind())
	p.error(invalidPattern(cm.Range(p), "%s may not have default values", what))
}

// parsePatternWithDefault parses a target optionally followed by
// `= default`.
func parsePatternWithDefault(p *Parser, pp patternParser) ParsedSyntax {
	pattern, ok := pp.parsePattern(p).Get()
	if !ok {
		return Absent()
	}
	if !p.at(syntax.TokenEq) {
		return Present(pattern)
	}
	m := pattern.Precede(p)
	p.bump(syntax.TokenEq)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, pp.withDefaultKind()))
}

func parseObjectPattern(p *Parser, pp patternParser) ParsedSyntax {
	if !p.at(syntax.TokenLCurly) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenLCurly)
	parseSeparatedList(p, syntax.TokenRCurly,
		func(p *Parser) ParsedSyntax { return parseObjectPatternMember(p, pp) },
		pp.unknownKind(),
		func(p *Parser) diag.Diagnostic {
			return expectedAny(p, "a property pattern or a rest property")
		})
	p.expect(syntax.TokenRCurly)
	return Present(m.Complete(p, pp.objectKind()))
}

func parseObjectPatternMember(p *Parser, pp patternParser) ParsedSyntax {
	if p.at(syntax.TokenDot3) {
		m := p.Start()
		p.bump(syntax.TokenDot3)
		pp.parseObjectRestTarget(p)
		parseRestDefault(p, pp, "rest properties")
		rest := m.Complete(p, pp.objectRestKind())
		if p.at(syntax.TokenComma) {
			p.error(invalidPattern(rest.Range(p), "rest property must be the last property").
				WithHint("remove the properties after the rest property"))
		}
		return Present(rest)
	}

	if !atName(p) && !p.at(syntax.TokenLBrack) && !p.at(syntax.TokenColon) && !p.at(syntax.TokenEq) {
		return Absent()
	}

	m := p.Start()
	kind := pp.shorthandKind()
	if p.at(syntax.TokenLBrack) || p.at(syntax.TokenColon) || p.nthAt(1, syntax.TokenColon) {
		parseObjectMemberName(p)
		p.expect(syntax.TokenColon)
		pp.parsePattern(p).OrMissingWithError(p, pp.expectedPattern)
		kind = pp.propertyKind()
	} else {
		pp.parseShorthand(p).OrMissingWithError(p, expectedIdentifier)
	}
	parseInitializerClause(p)
	return Present(m.Complete(p, kind))
}
