// Package ast is a typed view over the lossless syntax tree.
//
// Every node kind has a struct wrapping a *syntax.Node, and every group of
// kinds that can appear in the same place has a union interface:
//
//	stmt, ok := ast.CastJsAnyStatement(n)
//	switch s := stmt.(type) {
//	case ast.JsIfStatement:
//	    test, err := s.Test()
//	    ...
//	}
//
// The tree of a file with syntax errors can lack required children, so
// accessors for required fields return an error wrapping ErrMissing, and
// accessors for optional fields return a bool. Lists are always present.
//
// The node types are generated from js.ebnf.
package ast

//go:generate go run ../cmd/jsgen ast -g js.ebnf -o nodes.gen.go
