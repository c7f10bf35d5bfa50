package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

func parseFunctionDeclaration(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenFunction)
	parseIdentifierBinding(p).OrMissingWithError(p, expectedIdentifier)
	parseFunctionRest(p)
	return Present(m.Complete(p, syntax.KindJsFunctionDeclaration))
}

func parseFunctionExpression(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenFunction)
	parseIdentifierBinding(p)
	parseFunctionRest(p)
	return Present(m.Complete(p, syntax.KindJsFunctionExpression))
}

// parseFunctionRest parses the parameters and body shared by declarations
// and expressions.
func parseFunctionRest(p *Parser) {
	if p.at(syntax.TokenLParen) {
		parseParameters(p)
	} else {
		p.error(expectedToken(p, syntax.TokenLParen))
	}
	parseFunctionBody(p).OrMissingWithError(p, func(p *Parser) diag.Diagnostic {
		return expectedToken(p, syntax.TokenLCurly)
	})
}

func parseParameters(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump(syntax.TokenLParen)
	parseSeparatedList(p, syntax.TokenRParen, parseParameter, syntax.KindJsUnknownBinding, expectedParameter)
	p.expect(syntax.TokenRParen)
	return m.Complete(p, syntax.KindJsParameters)
}

func parseParameter(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenDot3) {
		return parsePatternWithDefault(p, bindingPatterns{})
	}
	m := p.Start()
	p.bump(syntax.TokenDot3)
	parseBindingPattern(p).OrMissingWithError(p, expectedBinding)
	parseRestDefault(p, bindingPatterns{}, "rest parameters")
	rest := m.Complete(p, syntax.KindJsRestParameter)
	if p.at(syntax.TokenComma) {
		p.error(invalidPattern(rest.Range(p), "rest parameter must be the last parameter").
			WithHint("remove the parameters after the rest parameter"))
	}
	return Present(rest)
}

// parseFunctionBody parses `{ directives statements }` in a fresh function
// context: returns are allowed and outer labels are not visible.
func parseFunctionBody(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenLCurly) {
		return Absent()
	}
	saved := p.state
	p.state = State{inFunction: true}

	m := p.Start()
	p.bump(syntax.TokenLCurly)
	parseDirectives(p)
	parseStatementList(p, syntax.TokenRCurly)
	p.expect(syntax.TokenRCurly)
	cm := m.Complete(p, syntax.KindJsFunctionBody)

	p.state = saved
	return Present(cm)
}

// tryParseParenthesizedArrow speculatively parses `( params ) =>`. When the
// parenthesized part does not parse cleanly as parameters, or no arrow
// follows, the parser rewinds and reports absent.
func tryParseParenthesizedArrow(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenLParen) || p.notArrow[p.TokenPos()] || !mayBeArrowParameters(p) {
		return Absent()
	}
	cp := p.Checkpoint()
	m := p.Start()
	parseParameters(p)
	if p.hasErrorsSince(cp) || !p.at(syntax.TokenFatArrow) || p.hasNewlineBefore() {
		p.Rewind(cp)
		p.notArrow[cp.tokenPos] = true
		return Absent()
	}
	p.bump(syntax.TokenFatArrow)
	parseArrowBody(p)
	return Present(m.Complete(p, syntax.KindJsArrowFunctionExpression))
}

// mayBeArrowParameters scans from the current `(` to its matching `)` and
// reports whether `=>` follows on the same line. Parameter defaults nest
// parentheses, so speculating on every `(` would parse nested defaults an
// exponential number of times. A slash makes the scan unreliable, since it
// may start a regular expression that hides a bracket, so the answer is
// then yes and the speculative parse decides.
func mayBeArrowParameters(p *Parser) bool {
	depth := 0
	for n := 0; ; n++ {
		switch p.nthKind(n) {
		case syntax.TokenLParen, syntax.TokenLBrack, syntax.TokenLCurly, syntax.TokenTemplateHead:
			depth++
		case syntax.TokenRParen, syntax.TokenRBrack, syntax.TokenRCurly, syntax.TokenTemplateTail:
			depth--
			if depth == 0 {
				next := p.nth(n + 1)
				return p.nthKind(n) == syntax.TokenRParen && next.Kind == syntax.TokenFatArrow && !next.AfterNewline
			}
		case syntax.TokenSlash, syntax.TokenSlashEq:
			return true
		case syntax.TokenEOF:
			return false
		}
	}
}

// parseArrowFromIdentifier completes `x => body` after x has been parsed as
// an identifier expression since cp.
func parseArrowFromIdentifier(p *Parser, target CompletedMarker, cp Checkpoint) CompletedMarker {
	binding := expressionToBinding(p, target, cp)
	m := binding.Precede(p)
	p.bump(syntax.TokenFatArrow)
	parseArrowBody(p)
	return m.Complete(p, syntax.KindJsArrowFunctionExpression)
}

func parseArrowBody(p *Parser) {
	if p.at(syntax.TokenLCurly) {
		parseFunctionBody(p)
		return
	}
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
}
