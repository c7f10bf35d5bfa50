package parser

import (
	"github.com/dhamidi/jscst/diag"
	"github.com/dhamidi/jscst/syntax"
)

type eventKind uint8

const (
	eventStart eventKind = iota
	eventFinish
	eventToken
	eventError
)

func (k eventKind) String() string {
	switch k {
	case eventStart:
		return "Start"
	case eventFinish:
		return "Finish"
	case eventToken:
		return "Token"
	case eventError:
		return "Error"
	}
	return "?"
}

// event is one entry of the flat parse log. Grammar rules only append events;
// the tree is built from them once parsing is done.
//
// A Start event with kind TokenTombstone is a placeholder: an open marker or
// an abandoned one. forwardParent is the distance to the Start event of a node
// created later with Precede that becomes this node's parent.
type event struct {
	kind          eventKind
	nodeKind      syntax.Kind
	forwardParent int
	marker        uint32
	rng           syntax.TextRange
	diag          diag.Diagnostic
}

var tombstone = event{kind: eventStart, nodeKind: syntax.TokenTombstone}

// eventSink receives processed events in tree order.
type eventSink interface {
	startNode(kind syntax.Kind)
	finishNode()
	token(kind syntax.Kind, r syntax.TextRange)
	error(d diag.Diagnostic)
}

// process replays events into sink, resolving forward parents so that a node
// created with Precede is started before the node it wraps. The events are
// consumed.
func process(sink eventSink, events []event) {
	var parents []syntax.Kind
	for i := range events {
		ev := events[i]
		events[i] = tombstone
		switch ev.kind {
		case eventStart:
			parents = append(parents[:0], ev.nodeKind)
			idx, fp := i, ev.forwardParent
			for fp != 0 {
				idx += fp
				parent := events[idx]
				events[idx] = tombstone
				parents = append(parents, parent.nodeKind)
				fp = parent.forwardParent
			}
			for j := len(parents) - 1; j >= 0; j-- {
				if parents[j] != syntax.TokenTombstone {
					sink.startNode(parents[j])
				}
			}
		case eventFinish:
			sink.finishNode()
		case eventToken:
			sink.token(ev.nodeKind, ev.rng)
		case eventError:
			sink.error(ev.diag)
		}
	}
}
