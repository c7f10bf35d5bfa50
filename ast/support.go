package ast

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dhamidi/jscst/syntax"
)

// Node is implemented by every typed node and union.
type Node interface {
	Syntax() *syntax.Node
	String() string
}

// ErrMissing is matched by every MissingError.
var ErrMissing = errors.New("missing syntax")

// MissingError reports a required child that is absent from the tree,
// which happens for source with syntax errors.
type MissingError struct {
	Kind  syntax.Kind
	Field string
	Range syntax.TextRange
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s at %s has no %s", e.Kind, e.Range, e.Field)
}

func (e *MissingError) Is(target error) bool {
	return target == ErrMissing
}

func missing(n *syntax.Node, field string) *MissingError {
	return &MissingError{Kind: n.Kind(), Field: field, Range: n.TextTrimmedRange()}
}

// childToken returns the first direct child token of one of kinds.
func childToken(n *syntax.Node, kinds ...syntax.Kind) *syntax.Token {
	for _, el := range n.ChildrenWithTokens() {
		if t := el.Token(); t != nil && slices.Contains(kinds, t.Kind()) {
			return t
		}
	}
	return nil
}

func requiredToken(n *syntax.Node, field string, kinds ...syntax.Kind) (*syntax.Token, error) {
	if t := childToken(n, kinds...); t != nil {
		return t, nil
	}
	return nil, missing(n, field)
}

// childNode finds a field by position. Children are scanned from just after
// the first token of one of the after kinds (from the start when after is
// nil) up to the first token of one of the until kinds, and the nth child
// that casts to T is returned. A missing anchor token means the field is
// missing too.
func childNode[T any](n *syntax.Node, after, until []syntax.Kind, nth int, cast func(*syntax.Node) (T, bool)) (T, bool) {
	var zero T
	anchored := len(after) == 0
	for _, el := range n.ChildrenWithTokens() {
		if t := el.Token(); t != nil {
			if !anchored {
				anchored = slices.Contains(after, t.Kind())
			} else if slices.Contains(until, t.Kind()) {
				return zero, false
			}
			continue
		}
		if !anchored {
			continue
		}
		c := el.Node()
		if c == nil {
			continue
		}
		if v, ok := cast(c); ok {
			if nth == 0 {
				return v, true
			}
			nth--
		}
	}
	return zero, false
}

func requiredNode[T any](n *syntax.Node, field string, after, until []syntax.Kind, nth int, cast func(*syntax.Node) (T, bool)) (T, error) {
	if v, ok := childNode(n, after, until, nth, cast); ok {
		return v, nil
	}
	var zero T
	return zero, missing(n, field)
}

// listChild returns the slot-th LIST child of n, or nil when the parser
// did not emit one.
func listChild(n *syntax.Node, slot int) *syntax.Node {
	for _, c := range n.Children() {
		if c.Kind() != syntax.KindList {
			continue
		}
		if slot == 0 {
			return c
		}
		slot--
	}
	return nil
}
