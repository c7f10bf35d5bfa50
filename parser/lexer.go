package parser

import (
	"bytes"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	"github.com/dhamidi/jscst/syntax"
)

// Token is a lexed token: its kind and byte range in the source. Whitespace,
// line breaks and comments are tokens too.
type Token struct {
	Kind  syntax.Kind
	Range syntax.TextRange
	// AfterNewline is set on non-trivia tokens preceded by a line break.
	AfterNewline bool
}

// lexer adapts js.Lexer to a lossless token stream. Offsets are computed by
// summing token lengths, so every byte of src ends up in exactly one token.
type lexer struct {
	src    []byte
	offset int
	l      *js.Lexer

	// open counts template heads not yet closed by a tail. templates holds
	// the ranges of outermost templates; End is -1 while one is open.
	open      int
	templates []syntax.TextRange
}

func newLexer(src []byte) *lexer {
	lx := &lexer{src: src}
	lx.restart(0)
	return lx
}

// restart discards the underlying lexer and continues at offset with no
// open templates.
func (lx *lexer) restart(offset int) {
	lx.offset = offset
	lx.l = js.NewLexer(parse.NewInputBytes(lx.src[offset:len(lx.src):len(lx.src)]))
}

func (lx *lexer) next() Token {
	if lx.offset >= len(lx.src) {
		return Token{Kind: syntax.TokenEOF, Range: syntax.EmptyAt(len(lx.src))}
	}
	start := lx.offset
	tt, data := lx.l.Next()
	if tt == js.ErrorToken || len(data) == 0 {
		// The js lexer stops at input it cannot handle. Give up one rune as an
		// error token and carry on behind it.
		_, size := utf8.DecodeRune(lx.src[start:])
		tok := Token{Kind: syntax.TokenError, Range: syntax.NewRange(start, start+size)}
		lx.track(tok)
		return tok
	}
	lx.offset += len(data)
	tok := Token{Kind: classify(tt, data), Range: syntax.NewRange(start, lx.offset)}
	lx.track(tok)
	return tok
}

// track follows template nesting. An error token restarts the lexer behind
// it, which forgets every open template.
func (lx *lexer) track(tok Token) {
	switch tok.Kind {
	case syntax.TokenTemplateHead:
		if lx.open == 0 {
			lx.templates = append(lx.templates, syntax.TextRange{Start: tok.Range.Start, End: -1})
		}
		lx.open++
	case syntax.TokenTemplateTail:
		if lx.open > 0 {
			lx.open--
			if lx.open == 0 {
				lx.templates[len(lx.templates)-1].End = tok.Range.End
			}
		}
	case syntax.TokenError:
		if lx.open > 0 {
			lx.templates[len(lx.templates)-1].End = tok.Range.End
			lx.open = 0
		}
		lx.restart(tok.Range.End)
	}
}

// seek moves the lexer to offset. Inside a template the lexer restarts at
// the outermost template head and replays the tokens of raw up to offset,
// so that it still knows which `}` closes a substitution.
func (lx *lexer) seek(offset int, raw []Token) {
	from := offset
	i := sort.Search(len(lx.templates), func(i int) bool { return lx.templates[i].Start >= offset })
	if i > 0 {
		if t := lx.templates[i-1]; t.End < 0 || t.End > offset {
			from = t.Start
			i--
		}
	}
	lx.templates = lx.templates[:i]
	lx.open = 0
	lx.restart(from)

	j := sort.Search(len(raw), func(j int) bool { return raw[j].Range.Start >= from })
	for ; j < len(raw) && raw[j].Range.End <= offset; j++ {
		lx.replay(raw[j])
	}
}

// replay feeds tok, lexed earlier, through the lexer again.
func (lx *lexer) replay(tok Token) {
	switch tok.Kind {
	case syntax.TokenError:
		lx.track(tok)
		return
	case syntax.TokenJsRegexLiteral:
		lx.l.Next()
		lx.l.RegExp()
	default:
		lx.l.Next()
	}
	lx.offset = tok.Range.End
	lx.track(tok)
}

// regExp re-reads the `/` or `/=` token at tok as a regular expression
// literal. live reports whether tok was the last token read, in which case
// the running lexer can rescan in place; otherwise the lexer seeks back
// over raw, the tokens lexed so far.
func (lx *lexer) regExp(tok Token, live bool, raw []Token) (Token, bool) {
	if !live {
		lx.seek(tok.Range.Start, raw)
		if tt, _ := lx.l.Next(); tt != js.DivToken && tt != js.DivEqToken {
			lx.seek(tok.Range.End, raw)
			return tok, false
		}
	}
	tt, data := lx.l.RegExp()
	if tt != js.RegExpToken || len(data) == 0 {
		lx.seek(tok.Range.End, raw)
		return tok, false
	}
	end := tok.Range.Start + len(data)
	if data[0] != '/' {
		end = tok.Range.End + len(data)
	}
	lx.offset = end
	return Token{Kind: syntax.TokenJsRegexLiteral, Range: syntax.NewRange(tok.Range.Start, end)}, true
}

func classify(tt js.TokenType, data []byte) syntax.Kind {
	switch tt {
	case js.WhitespaceToken:
		return syntax.TokenWhitespace
	case js.LineTerminatorToken:
		return syntax.TokenNewline
	case js.CommentToken:
		return syntax.TokenComment
	case js.CommentLineTerminatorToken:
		return syntax.TokenMultilineComment
	case js.IdentifierToken:
		return syntax.TokenIdent
	case js.StringToken:
		return syntax.TokenJsStringLiteral
	case js.RegExpToken:
		return syntax.TokenJsRegexLiteral
	}
	return classifyText(data)
}

// classifyText maps the remaining token types by their spelling, which keeps
// the adapter independent of the lexer's finer-grained token types.
func classifyText(data []byte) syntax.Kind {
	if k, ok := syntax.FromText(string(data)); ok {
		if k.IsContextualKeyword() {
			return syntax.TokenIdent
		}
		return k
	}
	c := data[0]
	switch {
	case c == '`' && len(data) > 1 && data[len(data)-1] == '`':
		return syntax.TokenTemplate
	case c == '`':
		return syntax.TokenTemplateHead
	case c == '}' && data[len(data)-1] == '`':
		return syntax.TokenTemplateTail
	case c == '}' && bytes.HasSuffix(data, []byte("${")):
		return syntax.TokenTemplateMiddle
	case c == '"' || c == '\'':
		return syntax.TokenJsStringLiteral
	case c >= '0' && c <= '9', c == '.' && len(data) > 1:
		return syntax.TokenJsNumberLiteral
	case c == '/' && len(data) > 1 && (data[1] == '/' || data[1] == '*'):
		if bytes.ContainsAny(data, "\n\r") {
			return syntax.TokenMultilineComment
		}
		return syntax.TokenComment
	case isSpace(data):
		if bytes.ContainsAny(data, "\n\r\u2028\u2029") {
			return syntax.TokenNewline
		}
		return syntax.TokenWhitespace
	case c == '_' || c == '$' || c == '\\' || unicode.IsLetter(rune(c)) || c >= utf8.RuneSelf:
		return syntax.TokenIdent
	}
	return syntax.TokenError
}

func isSpace(data []byte) bool {
	for _, r := range string(data) {
		if !unicode.IsSpace(r) && r != '\uFEFF' {
			return false
		}
	}
	return true
}
