package ast

import (
	"fmt"
	"iter"

	"github.com/dhamidi/jscst/syntax"
)

// NodeList is a typed view over a LIST node whose children are all nodes.
// The zero value and a list over a missing LIST node are empty.
type NodeList[T Node] struct {
	list *syntax.Node
	cast func(*syntax.Node) (T, bool)
}

func newNodeList[T Node](list *syntax.Node, cast func(*syntax.Node) (T, bool)) NodeList[T] {
	return NodeList[T]{list: list, cast: cast}
}

// Syntax returns the LIST node, nil for an empty list the parser did not
// emit.
func (l NodeList[T]) Syntax() *syntax.Node {
	return l.list
}

func (l NodeList[T]) Len() int {
	if l.list == nil {
		return 0
	}
	return len(l.list.Children())
}

// At returns the i-th element. It panics when i is out of range.
func (l NodeList[T]) At(i int) T {
	if l.list == nil {
		panic(fmt.Sprintf("ast: index %d out of range for empty list", i))
	}
	return l.mustCast(l.list.Children()[i])
}

func (l NodeList[T]) mustCast(n *syntax.Node) T {
	v, ok := l.cast(n)
	if !ok {
		panic(fmt.Sprintf("ast: list element %s has an unexpected kind", n.Kind()))
	}
	return v
}

// All iterates the elements in source order. The sequence can be ranged
// over more than once.
func (l NodeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.list == nil {
			return
		}
		for _, c := range l.list.Children() {
			if !yield(l.mustCast(c)) {
				return
			}
		}
	}
}

// SeparatedElement is one element of a separated list with the separator
// that follows it, if any.
type SeparatedElement[T Node] struct {
	Node      T
	Err       error
	Separator *syntax.Token
}

// SeparatedList is a typed view over a LIST node holding elements and the
// separators between them, such as the arguments of a call.
type SeparatedList[T Node] struct {
	list *syntax.Node
	cast func(*syntax.Node) (T, bool)
}

func newSeparatedList[T Node](list *syntax.Node, cast func(*syntax.Node) (T, bool)) SeparatedList[T] {
	return SeparatedList[T]{list: list, cast: cast}
}

func (l SeparatedList[T]) Syntax() *syntax.Node {
	return l.list
}

// Elements pairs every element with its trailing separator. A separator
// without an element in front of it, as in `(a,,b)`, yields an element
// whose Err is a *MissingError.
func (l SeparatedList[T]) Elements() []SeparatedElement[T] {
	if l.list == nil {
		return nil
	}
	var (
		out  []SeparatedElement[T]
		open bool
	)
	for _, el := range l.list.ChildrenWithTokens() {
		if n := el.Node(); n != nil {
			v, ok := l.cast(n)
			if !ok {
				panic(fmt.Sprintf("ast: list element %s has an unexpected kind", n.Kind()))
			}
			out = append(out, SeparatedElement[T]{Node: v})
			open = true
			continue
		}
		if !open {
			out = append(out, SeparatedElement[T]{Err: missing(l.list, "element")})
		}
		out[len(out)-1].Separator = el.Token()
		open = false
	}
	return out
}

func (l SeparatedList[T]) Len() int {
	return len(l.Elements())
}

// All iterates the elements with an error for missing ones.
func (l SeparatedList[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, e := range l.Elements() {
			if !yield(e.Node, e.Err) {
				return
			}
		}
	}
}

// Separators returns the separator tokens in order.
func (l SeparatedList[T]) Separators() []*syntax.Token {
	var out []*syntax.Token
	for _, e := range l.Elements() {
		if e.Separator != nil {
			out = append(out, e.Separator)
		}
	}
	return out
}

// TrailingSeparator returns the separator after the last element, as in
// `[a, b,]`, or nil.
func (l SeparatedList[T]) TrailingSeparator() *syntax.Token {
	elems := l.Elements()
	if len(elems) == 0 {
		return nil
	}
	return elems[len(elems)-1].Separator
}
