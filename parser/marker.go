package parser

import (
	"fmt"

	"github.com/dhamidi/jscst/syntax"
)

// Marker is an open node. It must be completed or abandoned exactly once,
// and becomes unusable when the parser rewinds past it. Misuse panics.
type Marker struct {
	pos      int
	oldStart int
	offset   int
	id       uint32
	child    int
	done     bool
}

// Start opens a node at the current token.
func (p *Parser) Start() *Marker {
	p.markerSeq++
	pos := len(p.events)
	p.events = append(p.events, event{kind: eventStart, nodeKind: syntax.TokenTombstone, marker: p.markerSeq})
	p.open++
	return &Marker{
		pos:      pos,
		oldStart: pos,
		offset:   p.tokens.Cur().Range.Start,
		id:       p.markerSeq,
		child:    -1,
	}
}

func (m *Marker) check(p *Parser, op string) {
	if m.done {
		panic(fmt.Sprintf("parser: %s on a marker that was already completed or abandoned", op))
	}
	if m.pos >= len(p.events) || p.events[m.pos].kind != eventStart || p.events[m.pos].marker != m.id {
		panic(fmt.Sprintf("parser: %s on a marker discarded by a rewind", op))
	}
}

// Complete closes the node with the given kind.
func (m *Marker) Complete(p *Parser, kind syntax.Kind) CompletedMarker {
	m.check(p, "Complete")
	if !kind.IsNode() {
		panic(fmt.Sprintf("parser: Complete with token kind %s", kind))
	}
	m.done = true
	p.open--
	p.events[m.pos].nodeKind = kind
	finish := len(p.events)
	p.events = append(p.events, event{kind: eventFinish})
	return CompletedMarker{
		start:    m.pos,
		oldStart: m.oldStart,
		finish:   finish,
		offset:   m.offset,
		id:       m.id,
		kind:     kind,
	}
}

// Abandon drops the node. Anything emitted inside it attaches to the
// enclosing node.
func (m *Marker) Abandon(p *Parser) {
	m.check(p, "Abandon")
	m.done = true
	p.open--
	if m.pos == len(p.events)-1 {
		p.events = p.events[:m.pos]
		if m.child >= 0 {
			p.events[m.child].forwardParent = 0
		}
		return
	}
	p.events[m.pos].marker = 0
}

// CompletedMarker refers to a finished node in the event buffer.
type CompletedMarker struct {
	start    int
	oldStart int
	finish   int
	offset   int
	id       uint32
	kind     syntax.Kind
}

func (cm CompletedMarker) Kind() syntax.Kind {
	return cm.kind
}

func (cm CompletedMarker) check(p *Parser, op string) {
	if cm.finish >= len(p.events) || p.events[cm.start].marker != cm.id {
		panic(fmt.Sprintf("parser: %s on a completed marker discarded by a rewind", op))
	}
}

// ChangeKind renames the completed node.
func (cm *CompletedMarker) ChangeKind(p *Parser, kind syntax.Kind) {
	cm.check(p, "ChangeKind")
	p.events[cm.start].nodeKind = kind
	cm.kind = kind
}

// Precede opens a new node that becomes the parent of cm.
func (cm CompletedMarker) Precede(p *Parser) *Marker {
	cm.check(p, "Precede")
	m := p.Start()
	p.events[cm.start].forwardParent = m.pos - cm.start
	m.oldStart = cm.oldStart
	m.offset = cm.offset
	m.child = cm.start
	return m
}

// Range returns the byte range of the node's tokens, without trivia. A node
// without tokens has an empty range where it started.
func (cm CompletedMarker) Range(p *Parser) syntax.TextRange {
	cm.check(p, "Range")
	first, last := -1, -1
	for i := cm.oldStart; i <= cm.finish; i++ {
		if p.events[i].kind == eventToken {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return syntax.EmptyAt(cm.offset)
	}
	return syntax.NewRange(p.events[first].rng.Start, p.events[last].rng.End)
}

// Text returns the source text covered by the node.
func (cm CompletedMarker) Text(p *Parser) string {
	return p.tokens.Text(cm.Range(p))
}
