package parser

import "github.com/dhamidi/jscst/syntax"

// TokenSet is a set of token kinds.
type TokenSet [4]uint64

func NewTokenSet(kinds ...syntax.Kind) TokenSet {
	var s TokenSet
	for _, k := range kinds {
		if !k.IsToken() {
			panic("parser: node kind " + k.String() + " in token set")
		}
		s[k/64] |= 1 << (k % 64)
	}
	return s
}

func (s TokenSet) Contains(k syntax.Kind) bool {
	if !k.IsToken() {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

var (
	assignOps = NewTokenSet(
		syntax.TokenEq, syntax.TokenPlusEq, syntax.TokenMinusEq, syntax.TokenStarEq,
		syntax.TokenSlashEq, syntax.TokenPercentEq, syntax.TokenShlEq, syntax.TokenShrEq,
		syntax.TokenUShrEq, syntax.TokenPipeEq, syntax.TokenAmpEq, syntax.TokenCaretEq,
		syntax.TokenStar2Eq, syntax.TokenAmp2Eq, syntax.TokenPipe2Eq, syntax.TokenQuestion2Eq,
	)
	unaryOps = NewTokenSet(
		syntax.TokenDelete, syntax.TokenVoid, syntax.TokenTypeof,
		syntax.TokenPlus, syntax.TokenMinus, syntax.TokenTilde, syntax.TokenBang,
	)
	updateOps = NewTokenSet(syntax.TokenPlus2, syntax.TokenMinus2)
)
