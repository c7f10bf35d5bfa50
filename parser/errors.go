package parser

import (
	"fmt"

	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// expectedToken reports a missing token at the current position.
func expectedToken(p *Parser, kind syntax.Kind) diag.Diagnostic {
	return expectedAny(p, kind.Describe())
}

// expectedAny reports that something described by what was expected.
func expectedAny(p *Parser, what string) diag.Diagnostic {
	if p.at(syntax.TokenEOF) {
		return diag.Errorf(diag.CodeExpected, p.curRange(), "expected %s but instead the file ends", what).
			WithLabel("the file ends here")
	}
	return diag.Errorf(diag.CodeExpected, p.curRange(), "expected %s but instead found `%s`", what, p.curText()).
		WithLabel("unexpected")
}

func expectedExpression(p *Parser) diag.Diagnostic {
	return expectedAny(p, "an expression")
}

func expectedStatement(p *Parser) diag.Diagnostic {
	return expectedAny(p, "a statement")
}

func expectedIdentifier(p *Parser) diag.Diagnostic {
	return expectedAny(p, "an identifier")
}

func expectedBinding(p *Parser) diag.Diagnostic {
	return expectedAny(p, "an identifier, an array pattern, or an object pattern")
}

func expectedAssignmentTarget(p *Parser) diag.Diagnostic {
	return expectedAny(p, "an identifier, a member expression, an array pattern, or an object pattern")
}

func expectedParameter(p *Parser) diag.Diagnostic {
	return expectedAny(p, "a parameter")
}

func expectedObjectMember(p *Parser) diag.Diagnostic {
	return expectedAny(p, "a property, a shorthand property, or a spread")
}

func expectedMemberName(p *Parser) diag.Diagnostic {
	return expectedAny(p, "a property name")
}

func invalidAssignment(text string, r syntax.TextRange) diag.Diagnostic {
	return diag.Errorf(diag.CodeInvalidAssignment, r, "Invalid assignment to `%s`", text).
		WithLabel("This expression cannot be assigned to")
}

func undefinedLabel(name string, r syntax.TextRange) diag.Diagnostic {
	return diag.Errorf(diag.CodeUndefinedLabel, r, "Use of undefined statement label `%s`", name).
		WithLabel("This label is used, but it is never defined")
}

func invalidPattern(r syntax.TextRange, format string, args ...any) diag.Diagnostic {
	return diag.Errorf(diag.CodeInvalidPattern, r, format, args...)
}

func unexpected(p *Parser, context string) diag.Diagnostic {
	msg := fmt.Sprintf("unexpected `%s`", p.curText())
	if context != "" {
		msg += " " + context
	}
	return diag.Errorf(diag.CodeUnexpected, p.curRange(), "%s", msg)
}
