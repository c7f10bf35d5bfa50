package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

// parseBindingPattern parses an identifier, array or object binding.
func parseBindingPattern(p *Parser) ParsedSyntax {
	switch p.curKind() {
	case syntax.TokenLBrack:
		return parseArrayPattern(p, bindingPatterns{})
	case syntax.TokenLCurly:
		return parseObjectPattern(p, bindingPatterns{})
	}
	return parseIdentifierBinding(p)
}

func parseIdentifierBinding(p *Parser) ParsedSyntax {
	if !p.at(syntax.TokenIdent) {
		return Absent()
	}
	m := p.Start()
	p.bump(syntax.TokenIdent)
	return Present(m.Complete(p, syntax.KindJsIdentifierBinding))
}

// expressionToBinding reinterprets the expression parsed since cp as a
// binding, e.g. the parameter of `x => x`.
func expressionToBinding(p *Parser, target CompletedMarker, cp Checkpoint) CompletedMarker {
	v := &reparseBinding{}
	rewriteEvents(p, v, cp)
	return v.result
}

type bindingFrame struct {
	kind   syntax.Kind
	marker *Marker
}

// reparseBinding turns identifier expressions into identifier bindings,
// dropping the reference identifier. Any other node becomes an unknown
// binding.
type reparseBinding struct {
	parents []bindingFrame
	result  CompletedMarker
	unknown bool
}

func (v *reparseBinding) StartNode(kind syntax.Kind, p *Parser) {
	switch {
	case v.unknown:
		v.parents = append(v.parents, bindingFrame{kind: kind, marker: p.Start()})
	case kind == syntax.KindJsIdentifierExpression:
		v.parents = append(v.parents, bindingFrame{kind: syntax.KindJsIdentifierBinding, marker: p.Start()})
	case kind == syntax.KindJsReferenceIdentifier:
		v.parents = append(v.parents, bindingFrame{kind: kind})
	default:
		v.unknown = true
		v.parents = append(v.parents, bindingFrame{kind: syntax.KindJsUnknownBinding, marker: p.Start()})
	}
}

func (v *reparseBinding) FinishNode(p *Parser) {
	n := len(v.parents) - 1
	frame := v.parents[n]
	v.parents = v.parents[:n]
	if frame.marker == nil {
		return
	}
	cm := frame.marker.Complete(p, frame.kind)
	if frame.kind == syntax.KindJsUnknownBinding {
		p.error(diag.Errorf(diag.CodeInvalidPattern, cm.Range(p), "Invalid binding `%s`", cm.Text(p)).
			WithLabel("only identifiers and patterns can be bound"))
	}
	v.result = cm
}

func (v *reparseBinding) Token(kind syntax.Kind, p *Parser) {
	p.BumpRemap(kind)
}

// bindingPatterns parses destructuring bindings in declarations and
// parameters.
type bindingPatterns struct{}

func (bindingPatterns) unknownKind() syntax.Kind { return syntax.KindJsUnknownBinding }
func (bindingPatterns) arrayKind() syntax.Kind { return syntax.KindJsArrayBindingPattern }
func (bindingPatterns) arrayRestKind() syntax.Kind { return syntax.KindJsArrayBindingPatternRestElement }
func (bindingPatterns) withDefaultKind() syntax.Kind { return syntax.KindJsBindingPatternWithDefault }
func (bindingPatterns) objectKind() syntax.Kind { return syntax.KindJsObjectBindingPattern }
func (bindingPatterns) propertyKind() syntax.Kind { return syntax.KindJsObjectBindingPatternProperty }
func (bindingPatterns) shorthandKind() syntax.Kind { return syntax.KindJsObjectBindingPatternShorthandProperty }
func (bindingPatterns) objectRestKind() syntax.Kind { return syntax.KindJsObjectBindingPatternRest }

func (bindingPatterns) expectedPattern(p *Parser) diag.Diagnostic {
	return expectedBinding(p)
}

func (bindingPatterns) parsePattern(p *Parser) ParsedSyntax {
	return parseBindingPattern(p)
}

func (bindingPatterns) parseShorthand(p *Parser) ParsedSyntax {
	return parseIdentifierBinding(p)
}

// parseObjectRestTarget only accepts an identifier: `{ ...{ a } }` is not a
// valid binding.
func (bindingPatterns) parseObjectRestTarget(p *Parser) {
	if p.at(syntax.TokenLBrack) || p.at(syntax.TokenLCurly) {
		target := parseBindingPattern(p).Unwrap()
		target.ChangeKind(p, syntax.KindJsUnknownBinding)
		p.error(invalidPattern(target.Range(p), "object rest patterns must bind to an identifier, other patterns are not allowed"))
		return
	}
	parseIdentifierBinding(p).OrMissingWithError(p, expectedIdentifier)
}
