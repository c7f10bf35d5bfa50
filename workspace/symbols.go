package workspace

import (
	"github.com/dhamidi/jscst/ast"
	"github.com/dhamidi/jscst/syntax"
)

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolVariable
	SymbolConstant
)

// Symbol is a declaration shown in an editor outline. Range covers the
// whole declaration, NameRange only the declared name.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Range     syntax.TextRange
	NameRange syntax.TextRange
	Children  []Symbol
}

// Symbols lists the function and variable declarations of a file. Functions
// hold the declarations of their body as children; blocks and labeled
// statements are transparent.
func Symbols(root ast.JsRoot) []Symbol {
	return statementSymbols(root.Statements())
}

func statementSymbols(stmts ast.NodeList[ast.JsAnyStatement]) []Symbol {
	var out []Symbol
	for stmt := range stmts.All() {
		out = append(out, stmtSymbols(stmt)...)
	}
	return out
}

func stmtSymbols(stmt ast.JsAnyStatement) []Symbol {
	switch s := stmt.(type) {
	case ast.JsFunctionDeclaration:
		return functionSymbol(s)
	case ast.JsVariableStatement:
		decl, err := s.VariableDeclaration()
		if err != nil {
			return nil
		}
		return declarationSymbols(decl)
	case ast.JsBlockStatement:
		return statementSymbols(s.Statements())
	case ast.JsLabeledStatement:
		if body, err := s.Body(); err == nil {
			return stmtSymbols(body)
		}
	}
	return nil
}

func functionSymbol(fn ast.JsFunctionDeclaration) []Symbol {
	id, err := fn.Id()
	if err != nil {
		return nil
	}
	binding, ok := id.(ast.JsIdentifierBinding)
	if !ok {
		return nil
	}
	name, err := binding.NameToken()
	if err != nil {
		return nil
	}
	sym := Symbol{
		Name:      name.TextTrimmed(),
		Kind:      SymbolFunction,
		Range:     fn.Syntax().TextTrimmedRange(),
		NameRange: name.TextTrimmedRange(),
	}
	if body, err := fn.Body(); err == nil {
		sym.Children = statementSymbols(body.Statements())
	}
	return []Symbol{sym}
}

// declarationSymbols yields one symbol per bound name, so `let [a, b] = c`
// declares both a and b.
func declarationSymbols(decl ast.JsVariableDeclaration) []Symbol {
	kind := SymbolVariable
	if tok, err := decl.KindToken(); err == nil && tok.Kind() == syntax.TokenConst {
		kind = SymbolConstant
	}
	var out []Symbol
	for declarator, err := range decl.Declarators().All() {
		if err != nil {
			continue
		}
		id, err := declarator.Id()
		if err != nil {
			continue
		}
		for n := range id.Syntax().Descendants() {
			binding, ok := ast.CastJsIdentifierBinding(n)
			if !ok {
				continue
			}
			name, err := binding.NameToken()
			if err != nil {
				continue
			}
			out = append(out, Symbol{
				Name:      name.TextTrimmed(),
				Kind:      kind,
				Range:     declarator.Syntax().TextTrimmedRange(),
				NameRange: name.TextTrimmedRange(),
			})
		}
	}
	return out
}
