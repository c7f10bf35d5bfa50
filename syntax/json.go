package syntax

import "encoding/json"

type jsonElement struct {
	Kind     string         `json:"kind"`
	Range    [2]int         `json:"range"`
	Text     string         `json:"text,omitempty"`
	Leading  []jsonTrivia   `json:"leading,omitempty"`
	Trailing []jsonTrivia   `json:"trailing,omitempty"`
	Children []*jsonElement `json:"children,omitempty"`
}

type jsonTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (t *Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON())
}

func (n *Node) toJSON() *jsonElement {
	r := n.TextRange()
	jn := &jsonElement{
		Kind:  n.Kind().String(),
		Range: [2]int{r.Start, r.End},
	}
	for _, c := range n.ChildrenWithTokens() {
		if c.node != nil {
			jn.Children = append(jn.Children, c.node.toJSON())
		} else {
			jn.Children = append(jn.Children, c.token.toJSON())
		}
	}
	return jn
}

func (t *Token) toJSON() *jsonElement {
	r := t.TextTrimmedRange()
	return &jsonElement{
		Kind:     t.Kind().String(),
		Range:    [2]int{r.Start, r.End},
		Text:     t.TextTrimmed(),
		Leading:  triviaJSON(t.LeadingTrivia()),
		Trailing: triviaJSON(t.TrailingTrivia()),
	}
}

func triviaJSON(trivia []Trivia) []jsonTrivia {
	var out []jsonTrivia
	for _, tr := range trivia {
		out = append(out, jsonTrivia{Kind: tr.Kind.String(), Text: tr.Text})
	}
	return out
}
