package parser

import (
	"slices"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

func parseRoot(p *Parser) {
	m := p.Start()
	parseDirectives(p)
	parseStatementList(p, syntax.TokenEOF)
	p.bump(syntax.TokenEOF)
	m.Complete(p, syntax.KindJsRoot)
}

func parseExpressionRoot(p *Parser) {
	m := p.Start()
	p.Start().Complete(p, syntax.KindList)

	list := p.Start()
	stmt := p.Start()
	parseExpression(p).OrMissingWithError(p, expectedExpression)
	stmt.Complete(p, syntax.KindJsExpressionStatement)
	for !p.at(syntax.TokenEOF) {
		p.errRecover(syntax.KindJsUnknownStatement, unexpected(p, "after the expression"))
	}
	list.Complete(p, syntax.KindList)

	p.bump(syntax.TokenEOF)
	m.Complete(p, syntax.KindJsRoot)
}

// parseDirectives parses the prologue of a script or function body: string
// literal statements such as "use strict".
func parseDirectives(p *Parser) {
	list := p.Start()
	for p.at(syntax.TokenJsStringLiteral) && endsDirective(p.nth(1)) {
		m := p.Start()
		p.bumpAny()
		p.eat(syntax.TokenSemicolon)
		m.Complete(p, syntax.KindJsDirective)
	}
	list.Complete(p, syntax.KindList)
}

func endsDirective(next Token) bool {
	switch next.Kind {
	case syntax.TokenSemicolon, syntax.TokenRCurly, syntax.TokenEOF:
		return true
	}
	return next.AfterNewline
}

// parseStatementList parses statements until end or the end of the file.
// Anything that does not start a statement is wrapped in an unknown
// statement, one token at a time.
func parseStatementList(p *Parser, end syntax.Kind) {
	list := p.Start()
	for !p.at(end) && !p.at(syntax.TokenEOF) {
		progressed := p.mustProgress()
		if parseStatement(p).IsAbsent() || !progressed() {
			p.errRecover(syntax.KindJsUnknownStatement, expectedStatement(p))
		}
	}
	list.Complete(p, syntax.KindList)
}

func parseStatement(p *Parser) ParsedSyntax {
	switch p.curKind() {
	case syntax.TokenLCurly:
		return parseBlockStatement(p)
	case syntax.TokenSemicolon:
		m := p.Start()
		p.bump(syntax.TokenSemicolon)
		return Present(m.Complete(p, syntax.KindJsEmptyStatement))
	case syntax.TokenIf:
		return parseIfStatement(p)
	case syntax.TokenWhile:
		return parseWhileStatement(p)
	case syntax.TokenDo:
		return parseDoWhileStatement(p)
	case syntax.TokenReturn:
		return parseReturnStatement(p)
	case syntax.TokenBreak:
		return parseJumpStatement(p, syntax.TokenBreak, syntax.KindJsBreakStatement)
	case syntax.TokenContinue:
		return parseJumpStatement(p, syntax.TokenContinue, syntax.KindJsContinueStatement)
	case syntax.TokenThrow:
		return parseThrowStatement(p)
	case syntax.TokenDebugger:
		m := p.Start()
		p.bump(syntax.TokenDebugger)
		parseSemicolon(p)
		return Present(m.Complete(p, syntax.KindJsDebuggerStatement))
	case syntax.TokenVar, syntax.TokenConst:
		return parseVariableStatement(p)
	case syntax.TokenFunction:
		return parseFunctionDeclaration(p)
	case syntax.TokenIdent:
		if isAtLetDeclaration(p) {
			return parseVariableStatement(p)
		}
		if p.nthAt(1, syntax.TokenColon) {
			return parseLabeledStatement(p)
		}
	}
	return parseExpressionStatement(p)
}

// parseSubStatement parses the body of a compound statement, recovering in
// place when no statement starts here.
func parseSubStatement(p *Parser) {
	if parseStatement(p).IsPresent() {
		return
	}
	if p.at(syntax.TokenRCurly) || p.at(syntax.TokenEOF) {
		p.error(expectedStatement(p))
		return
	}
	p.errRecover(syntax.KindJsUnknownStatement, expectedStatement(p))
}

func parseBlockStatement(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenLCurly) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenLCurly)
	parseStatementList(p, syntax.TokenRCurly)
	p.expect(syntax.TokenRCurly)
	return Present(m.Complete(p, syntax.KindJsBlockStatement))
}

func parseExpressionStatement(p *Parser) ParsedSyntax {
	expr, ok := parseExpression(p).Get()
	if !ok {
		return Absent()
	}
	m := expr.Precede(p)
	parseSemicolon(p)
	return Present(m.Complete(p, syntax.KindJsExpressionStatement))
}

// parseParenthesizedTest parses `( expression )` for if, while and do.
func parseParenthesizedTest(p *Parser) {
	p.expect(syntax.TokenLParen)
	parseExpression(p).OrMissingWithError(p, expectedExpression)
	p.expect(syntax.TokenRParen)
}

func parseIfStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenIf)
	parseParenthesizedTest(p)
	parseSubStatement(p)
	if p.at(syntax.TokenElse) {
		e := p.Start()
		p.bump(syntax.TokenElse)
		parseSubStatement(p)
		e.Complete(p, syntax.KindJsElseClause)
	}
	return Present(m.Complete(p, syntax.KindJsIfStatement))
}

func parseWhileStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenWhile)
	parseParenthesizedTest(p)
	parseSubStatement(p)
	return Present(m.Complete(p, syntax.KindJsWhileStatement))
}

func parseDoWhileStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenDo)
	parseSubStatement(p)
	p.expect(syntax.TokenWhile)
	parseParenthesizedTest(p)
	p.eat(syntax.TokenSemicolon)
	return Present(m.Complete(p, syntax.KindJsDoWhileStatement))
}

func parseReturnStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	start := p.curRange()
	p.bump(syntax.TokenReturn)
	if !p.at(syntax.TokenSemicolon) && !p.at(syntax.TokenRCurly) && !p.at(syntax.TokenEOF) && !p.hasNewlineBefore() {
		parseExpression(p).OrMissingWithError(p, expectedExpression)
	}
	parseSemicolon(p)
	cm := m.Complete(p, syntax.KindJsReturnStatement)
	if !p.state.inFunction {
		p.error(diag.Errorf(diag.CodeUnexpected, start, "Illegal return statement outside of a function"))
	}
	return Present(cm)
}

// parseJumpStatement parses break and continue with an optional label.
func parseJumpStatement(p *Parser, keyword, kind syntax.Kind) ParsedSyntax {
	m := p.Start()
	p.bump(keyword)
	if p.at(syntax.TokenIdent) && !p.hasNewlineBefore() {
		name, r := p.curText(), p.curRange()
		p.bump(syntax.TokenIdent)
		checkLabelUse(p, name, r)
	}
	parseSemicolon(p)
	return Present(m.Complete(p, kind))
}

func parseLabeledStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	name, r := p.curText(), p.curRange()
	p.bump(syntax.TokenIdent)
	p.bump(syntax.TokenColon)
	if slices.Contains(p.state.labels, name) {
		p.error(diag.Errorf(diag.CodeUnexpected, r, "Duplicate statement labels are not allowed").
			WithLabel("`" + name + "` is already defined by an enclosing statement"))
	}
	saved := p.state.labels
	p.state.labels = append(saved[:len(saved):len(saved)], name)
	parseSubStatement(p)
	p.state.labels = saved
	return Present(m.Complete(p, syntax.KindJsLabeledStatement))
}

func parseThrowStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenThrow)
	if p.hasNewlineBefore() {
		p.error(diag.Errorf(diag.CodeUnexpected, p.curRange(),
			"Linebreaks between a throw statement and the error to be thrown are not allowed"))
	}
	parseExpression(p).OrMissingWithError(p, expectedExpression)
	parseSemicolon(p)
	return Present(m.Complete(p, syntax.KindJsThrowStatement))
}

// isAtLetDeclaration distinguishes `let x` from `let` used as an identifier.
func isAtLetDeclaration(p *Parser) bool {
	if !p.atContextual("let") {
		return false
	}
	switch p.nthKind(1) {
	case syntax.TokenIdent, syntax.TokenLBrack, syntax.TokenLCurly:
		return true
	}
	return false
}

func parseVariableStatement(p *Parser) ParsedSyntax {
	m := p.Start()
	parseVariableDeclaration(p)
	parseSemicolon(p)
	return Present(m.Complete(p, syntax.KindJsVariableStatement))
}

func parseVariableDeclaration(p *Parser) CompletedMarker {
	m := p.Start()
	isConst := p.at(syntax.TokenConst)
	switch {
	case p.at(syntax.TokenVar), isConst:
		p.bumpAny()
	default:
		expectKeyword(p, "let", syntax.TokenLet)
	}

	list := p.Start()
	for {
		parseVariableDeclarator(p, isConst)
		if !p.eat(syntax.TokenComma) {
			break
		}
	}
	list.Complete(p, syntax.KindList)
	return m.Complete(p, syntax.KindJsVariableDeclaration)
}

func parseVariableDeclarator(p *Parser, isConst bool) {
	m := p.Start()
	parseBindingPattern(p).OrMissingWithError(p, expectedBinding)
	hasInit := parseInitializerClause(p).IsPresent()
	cm := m.Complete(p, syntax.KindJsVariableDeclarator)
	if isConst && !hasInit {
		p.error(diag.Errorf(diag.CodeExpected, cm.Range(p), "Const var declarations must have an initialized value").
			WithLabel("this variable needs to be initialized"))
	}
}

// parseInitializerClause parses `= expression`.
func parseInitializerClause(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenEq) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenEq)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, syntax.KindJsInitializerClause))
}
