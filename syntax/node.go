package syntax

import (
	"iter"
	"strconv"
	"strings"
)

// Node is a positioned view over a green node. Nodes are created on demand
// while navigating and are cheap to discard. The parent pointer is only used
// for lookups; ownership runs from the root down.
type Node struct {
	green  *GreenNode
	parent *Node
	index  int
	offset int
}

// NewRoot returns the root view of a green tree.
func NewRoot(green *GreenNode) *Node {
	return &Node{green: green}
}

func (n *Node) Kind() Kind {
	return n.green.kind
}

func (n *Node) Green() *GreenNode {
	return n.green
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Index returns the position of n among its parent's children, tokens included.
func (n *Node) Index() int {
	return n.index
}

// TextRange covers the node including leading and trailing trivia.
func (n *Node) TextRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.width}
}

// TextTrimmedRange covers the node from the first to the last token, without
// the trivia around them.
func (n *Node) TextTrimmedRange() TextRange {
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return EmptyAt(n.offset)
	}
	return TextRange{Start: first.TextTrimmedRange().Start, End: last.TextTrimmedRange().End}
}

func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(n.green.width)
	writeGreen(&sb, n.green)
	return sb.String()
}

func writeGreen(sb *strings.Builder, g *GreenNode) {
	for _, c := range g.children {
		if c.token != nil {
			sb.WriteString(c.token.text)
		} else {
			writeGreen(sb, c.node)
		}
	}
}

func (n *Node) TextTrimmed() string {
	r := n.TextTrimmedRange()
	return n.Text()[r.Start-n.offset : r.End-n.offset]
}

// ChildrenWithTokens returns the direct children, nodes and tokens, in order.
func (n *Node) ChildrenWithTokens() []Element {
	out := make([]Element, 0, len(n.green.children))
	offset := n.offset
	for i, c := range n.green.children {
		if c.node != nil {
			out = append(out, Element{node: &Node{green: c.node, parent: n, index: i, offset: offset}})
		} else {
			out = append(out, Element{token: &Token{green: c.token, parent: n, index: i, offset: offset}})
		}
		offset += c.Width()
	}
	return out
}

// Children returns the direct child nodes.
func (n *Node) Children() []*Node {
	var out []*Node
	offset := n.offset
	for i, c := range n.green.children {
		if c.node != nil {
			out = append(out, &Node{green: c.node, parent: n, index: i, offset: offset})
		}
		offset += c.Width()
	}
	return out
}

func (n *Node) FirstChild() *Node {
	offset := n.offset
	for i, c := range n.green.children {
		if c.node != nil {
			return &Node{green: c.node, parent: n, index: i, offset: offset}
		}
		offset += c.Width()
	}
	return nil
}

func (n *Node) FirstToken() *Token {
	offset := n.offset
	for i, c := range n.green.children {
		if c.token != nil {
			return &Token{green: c.token, parent: n, index: i, offset: offset}
		}
		child := &Node{green: c.node, parent: n, index: i, offset: offset}
		if t := child.FirstToken(); t != nil {
			return t
		}
		offset += c.Width()
	}
	return nil
}

func (n *Node) LastToken() *Token {
	kids := n.ChildrenWithTokens()
	for i := len(kids) - 1; i >= 0; i-- {
		if kids[i].token != nil {
			return kids[i].token
		}
		if t := kids[i].node.LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Descendants yields n and every node below it in preorder.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// DescendantTokens yields every token below n in source order.
func (n *Node) DescendantTokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.walkTokens(yield)
	}
}

func (n *Node) walkTokens(yield func(*Token) bool) bool {
	for _, c := range n.ChildrenWithTokens() {
		if c.token != nil {
			if !yield(c.token) {
				return false
			}
			continue
		}
		if !c.node.walkTokens(yield) {
			return false
		}
	}
	return true
}

// Ancestors yields the parent chain of n, nearest first.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n.parent; p != nil; p = p.parent {
			if !yield(p) {
				return
			}
		}
	}
}

// CoveringNode returns the deepest node whose range contains r.
func (n *Node) CoveringNode(r TextRange) *Node {
	cur := n
	for {
		var next *Node
		for _, c := range cur.Children() {
			if c.TextRange().ContainsRange(r) {
				next = c
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// Equal reports whether n and other view the same green node at the same
// position.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.green == other.green && n.offset == other.offset
}

// String renders the subtree as an indented debug dump, one element per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind().String())
	sb.WriteString("@")
	sb.WriteString(n.TextRange().String())
	sb.WriteString("\n")
	for _, c := range n.ChildrenWithTokens() {
		if c.node != nil {
			c.node.dump(sb, depth+1)
			continue
		}
		sb.WriteString(strings.Repeat("  ", depth+1))
		sb.WriteString(c.token.String())
		sb.WriteString("\n")
	}
}

// Token is a positioned view over a green token.
type Token struct {
	green  *GreenToken
	parent *Node
	index  int
	offset int
}

func (t *Token) Kind() Kind {
	return t.green.kind
}

func (t *Token) Green() *GreenToken {
	return t.green
}

func (t *Token) Parent() *Node {
	return t.parent
}

func (t *Token) Index() int {
	return t.index
}

// Text returns the token text including its trivia.
func (t *Token) Text() string {
	return t.green.text
}

func (t *Token) TextTrimmed() string {
	return t.green.TextTrimmed()
}

func (t *Token) TextRange() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.Width()}
}

func (t *Token) TextTrimmedRange() TextRange {
	start := t.offset + t.green.leadingLen()
	return TextRange{Start: start, End: start + len(t.green.TextTrimmed())}
}

// Trivia is one positioned piece of leading or trailing trivia.
type Trivia struct {
	Kind  Kind
	Text  string
	Range TextRange
}

func (t *Token) LeadingTrivia() []Trivia {
	return t.trivia(t.green.leading, 0)
}

func (t *Token) TrailingTrivia() []Trivia {
	return t.trivia(t.green.trailing, len(t.green.text)-t.green.trailingLen())
}

func (t *Token) trivia(pieces []TriviaPiece, at int) []Trivia {
	out := make([]Trivia, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, Trivia{
			Kind:  p.Kind,
			Text:  t.green.text[at : at+p.Len],
			Range: TextRange{Start: t.offset + at, End: t.offset + at + p.Len},
		})
		at += p.Len
	}
	return out
}

// HasNewlineBefore reports whether the leading trivia contains a line break.
func (t *Token) HasNewlineBefore() bool {
	for _, tr := range t.LeadingTrivia() {
		if tr.Kind == TokenNewline || tr.Kind == TokenMultilineComment {
			return true
		}
	}
	return false
}

func (t *Token) String() string {
	var sb strings.Builder
	sb.WriteString(t.Kind().String())
	sb.WriteString("@")
	sb.WriteString(t.TextRange().String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Quote(t.TextTrimmed()))
	sb.WriteString(" ")
	writeTrivia(&sb, t.LeadingTrivia())
	sb.WriteString(" ")
	writeTrivia(&sb, t.TrailingTrivia())
	return sb.String()
}

func writeTrivia(sb *strings.Builder, trivia []Trivia) {
	sb.WriteString("[")
	for i, tr := range trivia {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tr.Kind.String())
		sb.WriteString("(")
		sb.WriteString(strconv.Quote(tr.Text))
		sb.WriteString(")")
	}
	sb.WriteString("]")
}

// Element is either a node or a token.
type Element struct {
	node  *Node
	token *Token
}

func (e Element) Node() *Node {
	return e.node
}

func (e Element) Token() *Token {
	return e.token
}

func (e Element) IsNode() bool {
	return e.node != nil
}

func (e Element) Kind() Kind {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.token.Kind()
}

func (e Element) TextRange() TextRange {
	if e.node != nil {
		return e.node.TextRange()
	}
	return e.token.TextRange()
}
