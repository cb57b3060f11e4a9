package message

import (
	"encoding/json"

	"github.com/c360/chatstreams/errors"
)

// Chain is an ordered sequence of segments representing one message's full
// content, left to right. Order is significant and duplicates are allowed.
//
// A raw Chain carries no invariants; wrap it in a Message to get the
// adjacent-plain-text merge guarantee that the rest of the model relies on.
type Chain []Segment

// Equal reports chain-wise structural equality: same length, and every position
// compares equal under its alternative's own equality rule.
func (c Chain) Equal(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the chain. Segments are plain values, so a
// shallow copy is enough to decouple the two chains.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}

// ParseChain decodes a JSON array of discriminated segment objects. The
// decode is atomic: one bad element fails the whole array and nothing
// partial is returned.
func ParseChain(data []byte) (Chain, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapInvalid(err, "message", "ParseChain", "read segment array")
	}

	chain := make(Chain, 0, len(raw))
	for _, obj := range raw {
		seg, err := ParseSegment(obj)
		if err != nil {
			return nil, err
		}
		chain = append(chain, seg)
	}
	return chain, nil
}

// normalize merges every run of consecutive Plain segments into one, keeping
// the position of the first segment of each run, and drops empty text runs
// entirely. It rewrites the chain in place and returns the shortened slice.
func normalize(chain Chain) Chain {
	out := chain[:0]
	for _, seg := range chain {
		if p, ok := seg.(Plain); ok {
			if p.Text == "" {
				continue
			}
			if len(out) > 0 {
				if last, ok := out[len(out)-1].(Plain); ok {
					out[len(out)-1] = Plain{Text: last.Text + p.Text}
					continue
				}
			}
		}
		out = append(out, seg)
	}
	return out
}
