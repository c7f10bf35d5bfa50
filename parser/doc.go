// Package parser provides an error-tolerant, lossless parser for JavaScript.
//
// # Overview
//
// The parser turns source text into a concrete syntax tree that keeps every
// byte of the input: whitespace, comments and malformed tokens included. It
// never gives up on bad input. Syntax errors become diagnostics, and the
// tokens that could not be parsed end up in JS_UNKNOWN_* nodes.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Source    │────▶│ TokenSource │────▶│   Grammar   │────▶│   Events    │
//	│  (bytes)    │     │  (lexer)    │     │   rules     │     │  (flat log) │
//	└─────────────┘     └─────────────┘     └─────────────┘     └─────────────┘
//	                                                                   │
//	                                                                   ▼
//	                                        ┌─────────────┐     ┌─────────────┐
//	                                        │  ast.JsRoot │◀────│ syntax.Node │
//	                                        │  (typed)    │     │  (lossless) │
//	                                        └─────────────┘     └─────────────┘
//
// Grammar rules do not build nodes directly. They append Start, Token,
// Finish and Error events to a buffer through markers:
//
//	m := p.Start()
//	p.bump(syntax.TokenIf)
//	...
//	m.Complete(p, syntax.KindJsIfStatement)
//
// A completed node can be wrapped after the fact with Precede, which is how
// binary expressions and member accesses are built left to right:
//
//	lhs := parseUnaryExpression(p).Unwrap()
//	m := lhs.Precede(p)
//	p.bumpAny() // the operator
//	...
//	m.Complete(p, syntax.KindJsBinaryExpression)
//
// When parsing finishes the events are replayed into a syntax.TreeBuilder
// together with the raw token stream, which supplies the trivia.
//
// # Backtracking
//
// Checkpoint and Rewind let a rule try one interpretation and fall back to
// another. Rewinding truncates the event buffer and moves the token cursor
// back, so discarded attempts leave no trace, diagnostics included.
//
// # Reinterpreting Expressions
//
// The left side of an assignment cannot be told apart from an expression
// until the operator shows up. The parser parses an expression, then
// replays its events through a RewriteParseEvents visitor that maps
// expression kinds to assignment kinds:
//
//	a.b = c     JS_STATIC_MEMBER_EXPRESSION  →  JS_STATIC_MEMBER_ASSIGNMENT
//	a?.b = c    JS_STATIC_MEMBER_EXPRESSION  →  JS_UNKNOWN_ASSIGNMENT (error)
//	[a, b] = c  parsed again as JS_ARRAY_ASSIGNMENT_PATTERN
//
// The same mechanism turns the identifier in `x => x` into a binding.
//
// # Grammar
//
// The grammar covers statements (blocks, if, while, do-while, return,
// break, continue, labels, throw, debugger, var/let/const, function
// declarations), expressions down to literals, templates, arrays, objects,
// member access, calls with optional chaining, arrow functions and function
// expressions, and destructuring patterns for assignments and bindings.
//
// # Usage
//
//	res, err := parser.Parse(r, parser.WithFile("main.js"))
//	if err != nil {
//	    return err
//	}
//	for _, d := range res.Diagnostics() {
//	    fmt.Println(d)
//	}
//	root := res.Tree()
package parser
