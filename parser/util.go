package parser

import (
	"slices"

	"github.com/dhamidi/jscst/syntax"
)

// checkLabelUse reports a break or continue label that no enclosing labeled
// statement defines. Labels do not cross function boundaries.
func checkLabelUse(p *Parser, name string, r syntax.TextRange) {
	if !slices.Contains(p.state.labels, name) {
		p.error(undefinedLabel(name, r))
	}
}

// binaryPrecedence returns the binding power of a binary or logical
// operator; higher binds tighter.
func binaryPrecedence(kind syntax.Kind) (int, bool) {
	switch kind {
	case syntax.TokenPipe2, syntax.TokenQuestion2:
		return 1, true
	case syntax.TokenAmp2:
		return 2, true
	case syntax.TokenPipe:
		return 3, true
	case syntax.TokenCaret:
		return 4, true
	case syntax.TokenAmp:
		return 5, true
	case syntax.TokenEq2, syntax.TokenNeq, syntax.TokenEq3, syntax.TokenNeq2:
		return 6, true
	case syntax.TokenLAngle, syntax.TokenRAngle, syntax.TokenLtEq, syntax.TokenGtEq,
		syntax.TokenIn, syntax.TokenInstanceof:
		return 7, true
	case syntax.TokenShl, syntax.TokenShr, syntax.TokenUShr:
		return 8, true
	case syntax.TokenPlus, syntax.TokenMinus:
		return 9, true
	case syntax.TokenStar, syntax.TokenSlash, syntax.TokenPercent:
		return 10, true
	case syntax.TokenStar2:
		return 11, true
	}
	return 0, false
}

func isLogicalOperator(kind syntax.Kind) bool {
	return kind == syntax.TokenPipe2 || kind == syntax.TokenAmp2 || kind == syntax.TokenQuestion2
}

// expectKeyword consumes an identifier spelled like a contextual keyword and
// records it as kind.
func expectKeyword(p *Parser, keyword string, kind syntax.Kind) bool {
	if p.atContextual(keyword) {
		p.bumpRemap(kind)
		return true
	}
	p.error(expectedAny(p, "`"+keyword+"`"))
	return false
}

// atName reports a token usable as a property name: identifiers, keywords,
// strings and numbers.
func atName(p *Parser) bool {
	k := p.curKind()
	return k == syntax.TokenIdent || k.IsKeyword() || k == syntax.TokenJsStringLiteral || k == syntax.TokenJsNumberLiteral
}

// parseSemicolon accepts an explicit `;`, or an implicit one before `}`, the
// end of the file or a line break.
func parseSemicolon(p *Parser) {
	if p.eat(syntax.TokenSemicolon) {
		return
	}
	if p.at(syntax.TokenRCurly) || p.at(syntax.TokenEOF) || p.hasNewlineBefore() {
		return
	}
	p.error(expectedAny(p, "a semicolon or an implicit semicolon after a statement").
		WithHint("add a `;` or a line break before this token"))
}
