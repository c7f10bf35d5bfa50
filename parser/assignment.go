package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// expressionToAssignmentPattern reinterprets target, parsed as an expression
// since cp, as the left side of `=`. Array and object literals are parsed
// again as destructuring patterns. Anything that is neither becomes a
// JS_UNKNOWN_ASSIGNMENT covering the tokens of target.
func expressionToAssignmentPattern(p *Parser, target CompletedMarker, cp Checkpoint) CompletedMarker {
	if assignment, ok := tryExpressionToAssignment(p, target, cp); ok {
		return assignment
	}

	expressionEnd := p.TokenPos()
	p.Rewind(cp)

	if pattern, ok := parseAssignmentPattern(p).Get(); ok {
		return pattern
	}
	return wrapExpressionInInvalidAssignment(p, expressionEnd)
}

// parseAssignmentPattern parses an array pattern, an object pattern, or a
// simple assignment target.
func parseAssignmentPattern(p *Parser) ParsedSyntax {
	switch p.curKind() {
	case syntax.TokenLBrack:
		return parseArrayPattern(p, assignmentPatterns{})
	case syntax.TokenLCurly:
		return parseObjectPattern(p, assignmentPatterns{})
	}
	return parseAssignment(p)
}

// expressionToAssignment reinterprets target as the operand of a compound
// assignment or an update expression. Patterns are not allowed here.
func expressionToAssignment(p *Parser, target CompletedMarker, cp Checkpoint) CompletedMarker {
	if assignment, ok := tryExpressionToAssignment(p, target, cp); ok {
		return assignment
	}
	expressionEnd := p.TokenPos()
	p.Rewind(cp)
	return wrapExpressionInInvalidAssignment(p, expressionEnd)
}

// parseAssignment parses a conditional expression and converts it to an
// assignment target.
func parseAssignment(p *Parser) ParsedSyntax {
	cp := p.Checkpoint()
	expr, ok := parseConditionalExpression(p).Get()
	if !ok {
		p.Rewind(cp)
		return Absent()
	}
	return Present(expressionToAssignment(p, expr, cp))
}

func tryExpressionToAssignment(p *Parser, target CompletedMarker, cp Checkpoint) (CompletedMarker, bool) {
	switch target.Kind() {
	case syntax.KindJsParenthesizedExpression,
		syntax.KindJsStaticMemberExpression,
		syntax.KindJsComputedMemberExpression,
		syntax.KindJsIdentifierExpression:
	default:
		return CompletedMarker{}, false
	}

	v := &reparseAssignment{inside: true, memberRoot: -1}
	rewriteEvents(p, v, cp)
	return v.result, true
}

// wrapExpressionInInvalidAssignment consumes every token up to
// expressionEnd into a single JS_UNKNOWN_ASSIGNMENT. The original
// expression structure is discarded along with its errors.
func wrapExpressionInInvalidAssignment(p *Parser, expressionEnd int) CompletedMarker {
	m := p.Start()
	for p.TokenPos() < expressionEnd {
		p.bumpAny()
	}
	cm := m.Complete(p, syntax.KindJsUnknownAssignment)
	p.error(invalidAssignment(cm.Text(p), cm.Range(p)))
	return cm
}

type reparseFrame struct {
	kind   syntax.Kind
	marker *Marker // nil drops the node from the rewritten tree
	// chain is set on member and call expressions in object position below
	// the member assignment, where `?.` makes the assignment invalid.
	chain    bool
	sawChild bool
}

// reparseAssignment rewrites an expression to an assignment target:
//
//   - parenthesized expressions become parenthesized assignments
//   - static and computed member expressions become member assignments,
//     unless an optional chain `?.` appears on their object chain
//   - identifier expressions become identifier assignments, dropping the
//     reference identifier
//   - anything else becomes an unknown assignment with an error
//
// Only the outermost member access is converted; its object stays an
// expression.
type reparseAssignment struct {
	parents    []reparseFrame
	result     CompletedMarker
	inside     bool
	memberRoot int
}

func (v *reparseAssignment) StartNode(kind syntax.Kind, p *Parser) {
	chain := false
	if n := len(v.parents); n > 0 {
		parent := &v.parents[n-1]
		chain = parent.chain && !parent.sawChild && isChainKind(kind)
		parent.sawChild = true
	}

	if !v.inside {
		v.parents = append(v.parents, reparseFrame{kind: kind, marker: p.Start(), chain: chain})
		return
	}

	mapped := syntax.KindJsUnknownAssignment
	switch kind {
	case syntax.KindJsParenthesizedExpression:
		mapped = syntax.KindJsParenthesizedAssignment
	case syntax.KindJsStaticMemberExpression:
		v.inside = false
		v.memberRoot = len(v.parents)
		chain = true
		mapped = syntax.KindJsStaticMemberAssignment
	case syntax.KindJsComputedMemberExpression:
		v.inside = false
		v.memberRoot = len(v.parents)
		chain = true
		mapped = syntax.KindJsComputedMemberAssignment
	case syntax.KindJsIdentifierExpression:
		mapped = syntax.KindJsIdentifierAssignment
	case syntax.KindJsReferenceIdentifier:
		v.parents = append(v.parents, reparseFrame{kind: kind})
		return
	default:
		v.inside = false
	}
	v.parents = append(v.parents, reparseFrame{kind: mapped, marker: p.Start(), chain: chain})
}

func isChainKind(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindJsStaticMemberExpression, syntax.KindJsComputedMemberExpression, syntax.KindJsCallExpression:
		return true
	}
	return false
}

func (v *reparseAssignment) FinishNode(p *Parser) {
	n := len(v.parents) - 1
	frame := v.parents[n]
	v.parents = v.parents[:n]
	if frame.marker == nil {
		return
	}
	cm := frame.marker.Complete(p, frame.kind)
	if frame.kind == syntax.KindJsUnknownAssignment {
		p.error(invalidAssignment(cm.Text(p), cm.Range(p)))
	}
	v.result = cm
}

func (v *reparseAssignment) Token(kind syntax.Kind, p *Parser) {
	if n := len(v.parents); n > 0 {
		parent := &v.parents[n-1]
		if kind == syntax.TokenQuestionDot && parent.chain && v.memberRoot >= 0 {
			v.parents[v.memberRoot].kind = syntax.KindJsUnknownAssignment
		}
		parent.sawChild = true
	}
	p.BumpRemap(kind)
}

// checkObjectRestTarget validates the target of `...` in an object
// assignment pattern: nested patterns are not allowed there.
func checkObjectRestTarget(p *Parser, target CompletedMarker) {
	switch target.Kind() {
	case syntax.KindJsObjectAssignmentPattern, syntax.KindJsArrayAssignmentPattern:
		target.ChangeKind(p, syntax.KindJsUnknownAssignment)
		p.error(invalidPattern(target.Range(p), "object and array assignment targets are not allowed in rest patterns"))
	}
}

// assignmentPatterns parses destructuring assignment targets.
type assignmentPatterns struct{}

func (assignmentPatterns) unknownKind() syntax.Kind { return syntax.KindJsUnknownAssignment }
func (assignmentPatterns) arrayKind() syntax.Kind { return syntax.KindJsArrayAssignmentPattern }
func (assignmentPatterns) arrayRestKind() syntax.Kind { return syntax.KindJsArrayAssignmentPatternRestElement }
func (assignmentPatterns) withDefaultKind() syntax.Kind { return syntax.KindJsAssignmentWithDefault }
func (assignmentPatterns) objectKind() syntax.Kind { return syntax.KindJsObjectAssignmentPattern }
func (assignmentPatterns) propertyKind() syntax.Kind { return syntax.KindJsObjectAssignmentPatternProperty }
func (assignmentPatterns) shorthandKind() syntax.Kind { return syntax.KindJsObjectAssignmentPatternShorthandProperty }
func (assignmentPatterns) objectRestKind() syntax.Kind { return syntax.KindJsObjectAssignmentPatternRest }

func (assignmentPatterns) expectedPattern(p *Parser) diag.Diagnostic {
	return expectedAssignmentTarget(p)
}

func (assignmentPatterns) parsePattern(p *Parser) ParsedSyntax {
	return parseAssignmentPattern(p)
}

func (assignmentPatterns) parseShorthand(p *Parser) ParsedSyntax {
	return parseAssignment(p)
}

func (assignmentPatterns) parseObjectRestTarget(p *Parser) {
	if target, ok := parseAssignmentPattern(p).OrMissingWithError(p, expectedAssignmentTarget); ok {
		checkObjectRestTarget(p, target)
	}
}
