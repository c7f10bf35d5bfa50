package parser

import "github.com/dhamidi/jscst/syntax"

// TokenSource pulls tokens from the lexer on demand and hands the parser the
// non-trivia ones. Trivia stays in the raw stream for the tree sink.
type TokenSource struct {
	src    []byte
	lx     *lexer
	raw    []Token
	tokens []int // indices into raw of non-trivia tokens
	cur    int
	eof    bool

	sawNewline bool
}

func NewTokenSource(src []byte) *TokenSource {
	return &TokenSource{src: src, lx: newLexer(src)}
}

func (ts *TokenSource) Source() []byte {
	return ts.src
}

func (ts *TokenSource) Text(r syntax.TextRange) string {
	return string(ts.src[r.Start:r.End])
}

func (ts *TokenSource) fill(n int) {
	for len(ts.tokens) <= n && !ts.eof {
		tok := ts.lx.next()
		if tok.Kind.IsTrivia() {
			if tok.Kind == syntax.TokenNewline || tok.Kind == syntax.TokenMultilineComment {
				ts.sawNewline = true
			}
			ts.raw = append(ts.raw, tok)
			continue
		}
		tok.AfterNewline = ts.sawNewline
		ts.sawNewline = false
		ts.tokens = append(ts.tokens, len(ts.raw))
		ts.raw = append(ts.raw, tok)
		if tok.Kind == syntax.TokenEOF {
			ts.eof = true
		}
	}
}

// Nth returns the token n positions after the cursor. Past the end of input
// it returns the EOF token.
func (ts *TokenSource) Nth(n int) Token {
	ts.fill(ts.cur + n)
	i := ts.cur + n
	if i >= len(ts.tokens) {
		i = len(ts.tokens) - 1
	}
	return ts.raw[ts.tokens[i]]
}

func (ts *TokenSource) Cur() Token {
	return ts.Nth(0)
}

// Bump advances the cursor past the current token. EOF is never consumed.
func (ts *TokenSource) Bump() {
	if ts.Cur().Kind != syntax.TokenEOF {
		ts.cur++
	}
}

// Pos returns the cursor, the number of non-trivia tokens consumed.
func (ts *TokenSource) Pos() int {
	return ts.cur
}

// Rewind moves the cursor back to pos. Tokens already lexed are kept.
func (ts *TokenSource) Rewind(pos int) {
	if pos > ts.cur {
		panic("parser: token source rewound forwards")
	}
	ts.cur = pos
}

// ReLexRegex re-reads the current `/` or `/=` token as a regular expression
// literal and reports whether that succeeded. Lookahead past the current
// token is discarded and lexed again.
func (ts *TokenSource) ReLexRegex() bool {
	cur := ts.Cur()
	if cur.Kind != syntax.TokenSlash && cur.Kind != syntax.TokenSlashEq {
		return false
	}
	ri := ts.tokens[ts.cur]
	live := ri == len(ts.raw)-1
	tok, ok := ts.lx.regExp(cur, live, ts.raw)
	if !ok {
		if !live {
			ts.truncate(ri + 1)
		}
		return false
	}
	tok.AfterNewline = cur.AfterNewline
	ts.truncate(ri)
	ts.tokens = append(ts.tokens, len(ts.raw))
	ts.raw = append(ts.raw, tok)
	return true
}

// truncate drops raw tokens from index n on, keeping the lexer in sync.
func (ts *TokenSource) truncate(n int) {
	ts.raw = ts.raw[:n]
	for len(ts.tokens) > 0 && ts.tokens[len(ts.tokens)-1] >= n {
		ts.tokens = ts.tokens[:len(ts.tokens)-1]
	}
	ts.eof = false
	ts.sawNewline = false
}

// Raw returns every token lexed so far, trivia included. After the parse
// has reached EOF this is the complete token stream.
func (ts *TokenSource) Raw() []Token {
	for !ts.eof {
		ts.fill(len(ts.tokens))
	}
	return ts.raw
}
