package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// parseExpression parses a comma separated sequence of assignment
// expressions.
func parseExpression(p *Parser) ParsedSyntax {
	lhs, ok := parseAssignmentExpression(p).Get()
	if !ok {
		return Absent()
	}
	for p.at(syntax.TokenComma) {
		m := lhs.Precede(p)
		p.bump(syntax.TokenComma)
		parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
		lhs = m.Complete(p, syntax.KindJsSequenceExpression)
	}
	return Present(lhs)
}

// parseAssignmentExpression parses an assignment, an arrow function or a
// conditional expression. The left side of an assignment is parsed as an
// expression first and reinterpreted once the operator shows up.
func parseAssignmentExpression(p *Parser) ParsedSyntax {
	if arrow := tryParseParenthesizedArrow(p); arrow.IsPresent() {
		return arrow
	}

	cp := p.Checkpoint()
	target, ok := parseConditionalExpression(p).Get()
	if !ok {
		return Absent()
	}

	if target.Kind() == syntax.KindJsIdentifierExpression && p.at(syntax.TokenFatArrow) && !p.hasNewlineBefore() {
		return Present(parseArrowFromIdentifier(p, target, cp))
	}

	if !p.atSet(assignOps) {
		return Present(target)
	}

	var left CompletedMarker
	if p.at(syntax.TokenEq) {
		left = expressionToAssignmentPattern(p, target, cp)
	} else {
		left = expressionToAssignment(p, target, cp)
	}
	m := left.Precede(p)
	p.bumpAny()
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, syntax.KindJsAssignmentExpression))
}

func parseConditionalExpression(p *Parser) ParsedSyntax {
	test, ok := parseBinaryExpression(p, 0).Get()
	if !ok {
		return Absent()
	}
	if !p.at(syntax.TokenQuestion) {
		return Present(test)
	}
	m := test.Precede(p)
	p.bump(syntax.TokenQuestion)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	p.expect(syntax.TokenColon)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, syntax.KindJsConditionalExpression))
}

// parseBinaryExpression parses binary and logical operators whose
// precedence is above minPrec by precedence climbing. `**` is right
// associative, everything else left associative.
func parseBinaryExpression(p *Parser, minPrec int) ParsedSyntax {
	lhs, ok := parseUnaryExpression(p).Get()
	if !ok {
		return Absent()
	}
	for {
		op := p.curKind()
		prec, ok := binaryPrecedence(op)
		if !ok || prec <= minPrec {
			return Present(lhs)
		}
		m := lhs.Precede(p)
		p.bumpAny()
		next := prec
		if op == syntax.TokenStar2 {
			next = prec - 1
		}
		parseBinaryExpression(p, next).OrMissingWithError(p, expectedExpression)
		kind := syntax.KindJsBinaryExpression
		if isLogicalOperator(op) {
			kind = syntax.KindJsLogicalExpression
		}
		lhs = m.Complete(p, kind)
	}
}

func parseUnaryExpression(p *Parser) ParsedSyntax {
	switch {
	case p.atSet(unaryOps):
		m := p.Start()
		p.bumpAny()
		parseUnaryExpression(p).OrMissingWithError(p, expectedExpression)
		return Present(m.Complete(p, syntax.KindJsUnaryExpression))
	case p.atSet(updateOps):
		m := p.Start()
		p.bumpAny()
		cp := p.Checkpoint()
		if operand, ok := parseUnaryExpression(p).Get(); ok {
			expressionToAssignment(p, operand, cp)
		} else {
			p.error(expectedAssignmentTarget(p))
		}
		return Present(m.Complete(p, syntax.KindJsPreUpdateExpression))
	}
	return parsePostfixExpression(p)
}

func parsePostfixExpression(p *Parser) ParsedSyntax {
	cp := p.Checkpoint()
	lhs, ok := parseLeftHandSideExpression(p).Get()
	if !ok {
		return Absent()
	}
	if !p.atSet(updateOps) || p.hasNewlineBefore() {
		return Present(lhs)
	}
	operand := expressionToAssignment(p, lhs, cp)
	m := operand.Precede(p)
	p.bumpAny()
	return Present(m.Complete(p, syntax.KindJsPostUpdateExpression))
}

func parseLeftHandSideExpression(p *Parser) ParsedSyntax {
	if p.at(syntax.TokenNew) {
		return Present(parseSuffixes(p, parseNewExpression(p), true))
	}
	primary, ok := parsePrimaryExpression(p).Get()
	if !ok {
		return Absent()
	}
	return Present(parseSuffixes(p, primary, true))
}

// parseNewExpression parses `new callee(args)`. The callee takes member
// accesses but no calls; the first argument list belongs to the `new`.
func parseNewExpression(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump(syntax.TokenNew)
	if p.at(syntax.TokenNew) {
		parseNewExpression(p)
	} else if callee, ok := parsePrimaryExpression(p).Get(); ok {
		parseSuffixes(p, callee, false)
	} else {
		p.error(expectedExpression(p))
	}
	if p.at(syntax.TokenLParen) {
		parseCallArguments(p)
	}
	return m.Complete(p, syntax.KindJsNewExpression)
}

// parseSuffixes parses member accesses, calls, optional chains and tagged
// templates following lhs.
func parseSuffixes(p *Parser, lhs CompletedMarker, allowCall bool) CompletedMarker {
	for {
		switch {
		case p.at(syntax.TokenDot):
			m := lhs.Precede(p)
			p.bump(syntax.TokenDot)
			parseName(p).OrMissingWithError(p, expectedMemberName)
			lhs = m.Complete(p, syntax.KindJsStaticMemberExpression)
		case p.at(syntax.TokenQuestionDot) && allowCall:
			m := lhs.Precede(p)
			p.bump(syntax.TokenQuestionDot)
			switch {
			case p.at(syntax.TokenLBrack):
				parseComputedMember(p)
				lhs = m.Complete(p, syntax.KindJsComputedMemberExpression)
			case p.at(syntax.TokenLParen):
				parseCallArguments(p)
				lhs = m.Complete(p, syntax.KindJsCallExpression)
			default:
				parseName(p).OrMissingWithError(p, expectedMemberName)
				lhs = m.Complete(p, syntax.KindJsStaticMemberExpression)
			}
		case p.at(syntax.TokenLBrack):
			m := lhs.Precede(p)
			parseComputedMember(p)
			lhs = m.Complete(p, syntax.KindJsComputedMemberExpression)
		case p.at(syntax.TokenLParen) && allowCall:
			m := lhs.Precede(p)
			parseCallArguments(p)
			lhs = m.Complete(p, syntax.KindJsCallExpression)
		case p.at(syntax.TokenTemplate), p.at(syntax.TokenTemplateHead):
			m := lhs.Precede(p)
			parseTemplateElements(p)
			lhs = m.Complete(p, syntax.KindJsTemplate)
		default:
			return lhs
		}
	}
}

func parseComputedMember(p *Parser) {
	p.bump(syntax.TokenLBrack)
	parseExpression(p).OrMissingWithError(p, expectedExpression)
	p.expect(syntax.TokenRBrack)
}

// parseName parses a member name after `.`. Keywords are valid names and
// are recorded as identifiers.
func parseName(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenIdent) && !p.curKind().IsKeyword() {
		return Absent()
	}
	m := p.Start()
	p.bumpRemap(syntax.TokenIdent)
	return Present(m.Complete(p, syntax.KindJsName))
}

func parseCallArguments(p *Parser) CompletedMarker {
	m := p.Start()
	p.bump(syntax.TokenLParen)
	parseSeparatedList(p, syntax.TokenRParen, parseCallArgument, syntax.KindJsUnknownExpression, expectedExpression)
	p.expect(syntax.TokenRParen)
	return m.Complete(p, syntax.KindJsCallArguments)
}

func parseCallArgument(p *Parser) ParsedSyntax {
	if p.at(syntax.TokenDot3) {
		return parseSpread(p)
	}
	return parseAssignmentExpression(p)
}

func parseSpread(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenDot3)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, syntax.KindJsSpread))
}

func parsePrimaryExpression(p *Parser) ParsedSyntax {
	switch p.curKind() {
	case syntax.TokenThis:
		return parseSingleTokenExpression(p, syntax.KindJsThisExpression)
	case syntax.TokenTrue, syntax.TokenFalse:
		return parseSingleTokenExpression(p, syntax.KindJsBooleanLiteralExpression)
	case syntax.TokenNull:
		return parseSingleTokenExpression(p, syntax.KindJsNullLiteralExpression)
	case syntax.TokenJsStringLiteral:
		return parseSingleTokenExpression(p, syntax.KindJsStringLiteralExpression)
	case syntax.TokenJsNumberLiteral:
		return parseSingleTokenExpression(p, syntax.KindJsNumberLiteralExpression)
	case syntax.TokenSlash, syntax.TokenSlashEq:
		if !p.tokens.ReLexRegex() {
			return Absent()
		}
		return parseSingleTokenExpression(p, syntax.KindJsRegexLiteralExpression)
	case syntax.TokenJsRegexLiteral:
		return parseSingleTokenExpression(p, syntax.KindJsRegexLiteralExpression)
	case syntax.TokenTemplate, syntax.TokenTemplateHead:
		m := p.Start()
		parseTemplateElements(p)
		return Present(m.Complete(p, syntax.KindJsTemplate))
	case syntax.TokenLBrack:
		return parseArrayExpression(p)
	case syntax.TokenLCurly:
		return parseObjectExpression(p)
	case syntax.TokenLParen:
		return parseParenthesizedExpression(p)
	case syntax.TokenFunction:
		return parseFunctionExpression(p)
	case syntax.TokenIdent:
		return parseIdentifierExpression(p)
	}
	return Absent()
}

func parseSingleTokenExpression(p *Parser, kind syntax.Kind) ParsedSyntax {
	m := p.Start()
	p.bumpAny()
	return Present(m.Complete(p, kind))
}

func parseIdentifierExpression(p *Parser) ParsedSyntax {
	ref, ok := parseReferenceIdentifier(p).Get()
	if !ok {
		return Absent()
	}
	m := ref.Precede(p)
	return Present(m.Complete(p, syntax.KindJsIdentifierExpression))
}

func parseReferenceIdentifier(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenIdent) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenIdent)
	return Present(m.Complete(p, syntax.KindJsReferenceIdentifier))
}

// parseTemplateElements parses the chunks and substitutions of a template
// literal into a list.
func parseTemplateElements(p *Parser) {
	list := p.Start()
	if p.at(syntax.TokenTemplate) {
		parseTemplateChunk(p)
		list.Complete(p, syntax.KindList)
		return
	}
	parseTemplateChunk(p)
	for {
		e := p.Start()
		parseExpression(p).OrMissingWithError(p, expectedExpression)
		e.Complete(p, syntax.KindJsTemplateElement)
		if p.at(syntax.TokenTemplateMiddle) {
			parseTemplateChunk(p)
			continue
		}
		if p.at(syntax.TokenTemplateTail) {
			parseTemplateChunk(p)
			break
		}
		p.error(expectedAny(p, "the rest of the template"))
		break
	}
	list.Complete(p, syntax.KindList)
}

func parseTemplateChunk(p *Parser) {
	m := p.Start()
	p.bumpAny()
	m.Complete(p, syntax.KindJsTemplateChunkElement)
}

func parseArrayExpression(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenLBrack)
	parseSeparatedList(p, syntax.TokenRBrack, parseArrayElement, syntax.KindJsUnknownExpression, expectedExpression)
	p.expect(syntax.TokenRBrack)
	return Present(m.Complete(p, syntax.KindJsArrayExpression))
}

func parseArrayElement(p *Parser) ParsedSyntax {
	switch {
	case p.at(syntax.TokenComma):
		return Present(p.Start().Complete(p, syntax.KindJsArrayHole))
	case p.at(syntax.TokenDot3):
		return parseSpread(p)
	}
	return parseAssignmentExpression(p)
}

func parseObjectExpression(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenLCurly)
	parseSeparatedList(p, syntax.TokenRCurly, parseObjectMember, syntax.KindJsUnknownMember, expectedObjectMember)
	p.expect(syntax.TokenRCurly)
	return Present(m.Complete(p, syntax.KindJsObjectExpression))
}

func parseObjectMember(p *Parser) ParsedSyntax {
	if p.at(syntax.TokenDot3) {
		return parseSpread(p)
	}
	if p.at(syntax.TokenIdent) {
		switch p.nthKind(1) {
		case syntax.TokenComma, syntax.TokenRCurly, syntax.TokenEOF:
			m := p.Start()
			parseReferenceIdentifier(p)
			return Present(m.Complete(p, syntax.KindJsShorthandPropertyObjectMember))
		case syntax.TokenEq:
			return parseCoverInitializedName(p)
		}
	}
	if !atName(p) && !p.at(syntax.TokenLBrack) {
		return Absent()
	}
	m := p.Start()
	parseObjectMemberName(p)
	p.expect(syntax.TokenColon)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	return Present(m.Complete(p, syntax.KindJsPropertyObjectMember))
}

// parseCoverInitializedName parses `{ a = 1 }`, which is only valid once the
// object is reinterpreted as an assignment pattern.
func parseCoverInitializedName(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenIdent)
	p.bump(syntax.TokenEq)
	parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
	cm := m.Complete(p, syntax.KindJsUnknownMember)
	p.error(diag.Errorf(diag.CodeUnexpected, cm.Range(p), "Did you mean to use a `:`? An `=` can only follow a property name when the containing object literal is part of a destructuring pattern"))
	return Present(cm)
}

// parseObjectMemberName parses a literal or computed property name.
func parseObjectMemberName(p *Parser) ParsedSyntax {
	switch {
	case p.at(syntax.TokenLBrack):
		m := p.Start()
		p.bump(syntax.TokenLBrack)
		parseAssignmentExpression(p).OrMissingWithError(p, expectedExpression)
		p.expect(syntax.TokenRBrack)
		return Present(m.Complete(p, syntax.KindJsComputedMemberName))
	case atName(p):
		m := p.Start()
		if p.curKind().IsKeyword() {
			p.bumpRemap(syntax.TokenIdent)
		} else {
			p.bumpAny()
		}
		return Present(m.Complete(p, syntax.KindJsLiteralMemberName))
	}
	p.error(expectedMemberName(p))
	return Absent()
}

func parseParenthesizedExpression(p *Parser) ParsedSyntax {
	m := p.Start()
	p.bump(syntax.TokenLParen)
	parseExpression(p).OrMissingWithError(p, expectedExpression)
	p.expect(syntax.TokenRParen)
	return Present(m.Complete(p, syntax.KindJsParenthesizedExpression))
}

// parseSeparatedList parses comma separated elements up to end into a LIST.
// An element that cannot start is reported with errFn; the offending token
// is wrapped in a node of recoverKind unless it is a comma. Elements that
// consume nothing are only accepted before a comma, so the loop always
// advances.
func parseSeparatedList(p *Parser, end syntax.Kind, element func(*Parser) ParsedSyntax, recoverKind syntax.Kind, errFn func(*Parser) diag.Diagnostic) {
	list := p.Start()
	for !p.at(end) && !p.at(syntax.TokenEOF) {
		progressed := p.mustProgress()
		present := element(p).IsPresent()
		switch {
		case present && progressed():
		case p.at(syntax.TokenComma):
			if !present {
				p.error(errFn(p))
			}
		default:
			p.errRecover(recoverKind, errFn(p))
		}
		if p.at(end) {
			break
		}
		p.expect(syntax.TokenComma)
	}
	list.Complete(p, syntax.KindList)
}
