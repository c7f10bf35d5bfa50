package parser

import (
	"fmt"
	"io"

	"github.com/dhamidi/jscst/ast"
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

type Option func(*Parser)

// WithFile records the file name used by diagnostics renderers.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// State is the ambient parsing context saved by checkpoints.
type State struct {
	inFunction bool
	// labels defined by enclosing labeled statements
	labels []string
}

// Checkpoint is a snapshot of the parser that Rewind can return to.
type Checkpoint struct {
	eventLen int
	tokenPos int
	errors   int
	open     int
	state    State
}

type Parser struct {
	file      string
	tokens    *TokenSource
	events    []event
	state     State
	markerSeq uint32
	open      int
	errors    int
	// token positions of `(` that failed to parse as arrow parameters
	notArrow  map[int]bool
}

func newParser(src []byte, opts ...Option) *Parser {
	p := &Parser{
		tokens:   NewTokenSource(src),
		notArrow: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is a finished parse: the lossless tree and its diagnostics.
type Result struct {
	file        string
	src         []byte
	root        *syntax.Node
	diagnostics []diag.Diagnostic
}

func (r *Result) File() string {
	return r.file
}

func (r *Result) Source() []byte {
	return r.src
}

// Syntax returns the untyped root node.
func (r *Result) Syntax() *syntax.Node {
	return r.root
}

// Tree returns the typed root of a module or script parse.
func (r *Result) Tree() ast.JsRoot {
	root, _ := ast.CastJsRoot(r.root)
	return root
}

func (r *Result) Diagnostics() []diag.Diagnostic {
	return r.diagnostics
}

func (r *Result) HasErrors() bool {
	return diag.HasErrors(r.diagnostics)
}

// Parse parses a JavaScript script. It never fails on malformed source;
// errors come back as diagnostics next to a tree that still covers every
// byte of the input.
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return ParseBytes(src, opts...), nil
}

func ParseBytes(src []byte, opts ...Option) *Result {
	p := newParser(src, opts...)
	parseRoot(p)
	return p.finish()
}

// ParseExpression parses src as a single expression wrapped in a root whose
// statement list holds one expression statement.
func ParseExpression(src []byte, opts ...Option) *Result {
	p := newParser(src, opts...)
	parseExpressionRoot(p)
	return p.finish()
}

func (p *Parser) finish() *Result {
	if p.open != 0 {
		panic(fmt.Sprintf("parser: %d markers were neither completed nor abandoned", p.open))
	}
	sink := newLosslessTreeSink(p.tokens.Source(), p.tokens.Raw())
	process(sink, p.events)
	p.events = nil
	root, diags := sink.finish()
	return &Result{file: p.file, src: p.tokens.Source(), root: root, diagnostics: diags}
}

// Checkpoint records the event buffer length, token cursor and state.
func (p *Parser) Checkpoint() Checkpoint {
	st := p.state
	st.labels = p.state.labels[:len(p.state.labels):len(p.state.labels)]
	return Checkpoint{
		eventLen: len(p.events),
		tokenPos: p.tokens.Pos(),
		errors:   p.errors,
		open:     p.open,
		state:    st,
	}
}

// Rewind discards everything emitted since cp. Markers opened after cp
// become invalid.
func (p *Parser) Rewind(cp Checkpoint) {
	if cp.eventLen > len(p.events) || cp.tokenPos > p.tokens.Pos() {
		panic("parser: rewind to a checkpoint newer than the parser state")
	}
	p.events = p.events[:cp.eventLen]
	p.tokens.Rewind(cp.tokenPos)
	p.errors = cp.errors
	p.open = cp.open
	p.state = cp.state
}

// TokenPos returns the number of tokens consumed so far.
func (p *Parser) TokenPos() int {
	return p.tokens.Pos()
}

// hasErrorsSince reports whether an error was recorded after cp.
func (p *Parser) hasErrorsSince(cp Checkpoint) bool {
	return p.errors > cp.errors
}

func (p *Parser) cur() Token {
	return p.tokens.Cur()
}

func (p *Parser) nth(n int) Token {
	return p.tokens.Nth(n)
}

func (p *Parser) curKind() syntax.Kind {
	return p.tokens.Cur().Kind
}

func (p *Parser) nthKind(n int) syntax.Kind {
	return p.tokens.Nth(n).Kind
}

func (p *Parser) curRange() syntax.TextRange {
	return p.tokens.Cur().Range
}

func (p *Parser) curText() string {
	return p.tokens.Text(p.curRange())
}

func (p *Parser) at(kind syntax.Kind) bool {
	return p.curKind() == kind
}

func (p *Parser) nthAt(n int, kind syntax.Kind) bool {
	return p.nthKind(n) == kind
}

func (p *Parser) atSet(set TokenSet) bool {
	return set.Contains(p.curKind())
}

// atContextual reports an identifier spelled text, such as `let`.
func (p *Parser) atContextual(text string) bool {
	return p.at(syntax.TokenIdent) && p.curText() == text
}

func (p *Parser) hasNewlineBefore() bool {
	return p.cur().AfterNewline
}

// bump consumes the current token, which must be of kind.
func (p *Parser) bump(kind syntax.Kind) {
	if !p.at(kind) {
		panic(fmt.Sprintf("parser: bump %s at %s", kind, p.curKind()))
	}
	p.bumpAny()
}

// bumpAny consumes the current token with its own kind.
func (p *Parser) bumpAny() {
	p.bumpRemap(p.curKind())
}

// bumpRemap consumes the current token but records it as kind, e.g. an
// identifier used as the `let` keyword.
func (p *Parser) bumpRemap(kind syntax.Kind) {
	tok := p.cur()
	if tok.Kind == syntax.TokenEOF && kind != syntax.TokenEOF {
		panic("parser: bump past the end of the file")
	}
	p.events = append(p.events, event{kind: eventToken, nodeKind: kind, rng: tok.Range})
	p.tokens.Bump()
}

// eat consumes the current token if it is of kind.
func (p *Parser) eat(kind syntax.Kind) bool {
	if !p.at(kind) {
		return false
	}
	p.bumpAny()
	return true
}

// expect consumes a token of kind or records an error.
func (p *Parser) expect(kind syntax.Kind) bool {
	if p.eat(kind) {
		return true
	}
	p.error(expectedToken(p, kind))
	return false
}

// error records a diagnostic as an event so that a rewind discards it.
func (p *Parser) error(d diag.Diagnostic) {
	p.errors++
	p.events = append(p.events, event{kind: eventError, diag: d})
}

// errRecover records d and wraps the current token in a node of kind.
func (p *Parser) errRecover(kind syntax.Kind, d diag.Diagnostic) CompletedMarker {
	p.error(d)
	m := p.Start()
	if !p.at(syntax.TokenEOF) {
		p.bumpAny()
	}
	return m.Complete(p, kind)
}

// mustProgress returns a function reporting whether any token was consumed
// since the call. Loops use it to stop when a rule made no progress.
func (p *Parser) mustProgress() func() bool {
	saved := p.tokens.Pos()
	return func() bool {
		return p.tokens.Pos() != saved
	}
}
