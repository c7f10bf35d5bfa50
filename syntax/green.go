package syntax

// TriviaPiece is one run of trivia attached to a token: its kind and byte length.
type TriviaPiece struct {
	Kind Kind
	Len  int
}

// GreenToken is an immutable token. Its text includes the leading and
// trailing trivia.
type GreenToken struct {
	kind     Kind
	text     string
	leading  []TriviaPiece
	trailing []TriviaPiece
}

func NewGreenToken(kind Kind, text string, leading, trailing []TriviaPiece) *GreenToken {
	return &GreenToken{kind: kind, text: text, leading: leading, trailing: trailing}
}

func (t *GreenToken) Kind() Kind {
	return t.kind
}

func (t *GreenToken) Text() string {
	return t.text
}

func (t *GreenToken) Width() int {
	return len(t.text)
}

func (t *GreenToken) LeadingTrivia() []TriviaPiece {
	return t.leading
}

func (t *GreenToken) TrailingTrivia() []TriviaPiece {
	return t.trailing
}

func (t *GreenToken) leadingLen() int {
	n := 0
	for _, p := range t.leading {
		n += p.Len
	}
	return n
}

func (t *GreenToken) trailingLen() int {
	n := 0
	for _, p := range t.trailing {
		n += p.Len
	}
	return n
}

// TextTrimmed returns the token text without trivia.
func (t *GreenToken) TextTrimmed() string {
	return t.text[t.leadingLen() : len(t.text)-t.trailingLen()]
}

// GreenElement is either a node or a token.
type GreenElement struct {
	node  *GreenNode
	token *GreenToken
}

func (e GreenElement) Node() *GreenNode {
	return e.node
}

func (e GreenElement) Token() *GreenToken {
	return e.token
}

func (e GreenElement) Kind() Kind {
	if e.node != nil {
		return e.node.kind
	}
	return e.token.kind
}

func (e GreenElement) Width() int {
	if e.node != nil {
		return e.node.width
	}
	return e.token.Width()
}

// GreenNode is an immutable interior node. Green nodes carry no position or
// parent, so identical subtrees can be shared.
type GreenNode struct {
	kind     Kind
	width    int
	children []GreenElement
}

func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	n := &GreenNode{kind: kind, children: children}
	for _, c := range children {
		n.width += c.Width()
	}
	return n
}

func (n *GreenNode) Kind() Kind {
	return n.kind
}

func (n *GreenNode) Width() int {
	return n.width
}

func (n *GreenNode) Children() []GreenElement {
	return n.children
}
