package syntax

import "fmt"

type builderFrame struct {
	kind  Kind
	first int
}

// TreeBuilder assembles a green tree from a balanced sequence of StartNode,
// Token and FinishNode calls.
type TreeBuilder struct {
	parents  []builderFrame
	children []GreenElement
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

func (b *TreeBuilder) StartNode(kind Kind) {
	if !kind.IsNode() {
		panic(fmt.Sprintf("syntax: StartNode with token kind %s", kind))
	}
	b.parents = append(b.parents, builderFrame{kind: kind, first: len(b.children)})
}

func (b *TreeBuilder) Token(kind Kind, text string, leading, trailing []TriviaPiece) {
	b.children = append(b.children, GreenElement{token: NewGreenToken(kind, text, leading, trailing)})
}

func (b *TreeBuilder) FinishNode() {
	if len(b.parents) == 0 {
		panic("syntax: FinishNode without matching StartNode")
	}
	frame := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	kids := make([]GreenElement, len(b.children)-frame.first)
	copy(kids, b.children[frame.first:])
	b.children = b.children[:frame.first]
	b.children = append(b.children, GreenElement{node: NewGreenNode(frame.kind, kids)})
}

// Depth returns the number of nodes started but not yet finished.
func (b *TreeBuilder) Depth() int {
	return len(b.parents)
}

// Finish returns the single root node built so far.
func (b *TreeBuilder) Finish() *GreenNode {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("syntax: Finish with %d unfinished nodes", len(b.parents)))
	}
	if len(b.children) != 1 || b.children[0].node == nil {
		panic(fmt.Sprintf("syntax: Finish expects exactly one root node, have %d elements", len(b.children)))
	}
	return b.children[0].node
}
