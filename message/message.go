package message

import (
	"encoding/json"
	"strings"
)

// Message wraps a segment chain and maintains the one standing invariant of
// the whole model: no two adjacent segments are ever both plain text, and no
// plain segment is ever empty. Every constructor and mutator funnels through
// the same normalization, so code holding a Message may rely on the
// invariant without re-checking it.
//
// The zero value is an empty message, ready to use.
type Message struct {
	chain Chain
}

// New creates an empty message.
func New() Message {
	return Message{}
}

// FromText creates a message holding a single plain text run. An empty
// string yields an empty message.
func FromText(text string) Message {
	if text == "" {
		return Message{}
	}
	return Message{chain: Chain{Plain{Text: text}}}
}

// FromSegment creates a message holding a single segment.
func FromSegment(seg Segment) Message {
	return Message{chain: normalize(Chain{seg})}
}

// FromChain creates a message from a full chain. The input is copied and
// normalized; the caller's slice is never retained or modified.
func FromChain(chain Chain) Message {
	return Message{chain: normalize(chain.Clone())}
}

// Segments returns a copy of the underlying chain. Mutating the copy cannot
// break the message's invariant.
func (m Message) Segments() Chain {
	return m.chain.Clone()
}

// Len returns the number of segments in the chain.
func (m Message) Len() int {
	return len(m.chain)
}

// Empty reports whether the message has no content.
func (m Message) Empty() bool {
	return len(m.chain) == 0
}

// Append adds a segment to the end of the message. A plain segment merges
// into a trailing plain run instead of starting a new element.
//
// Appends always move to fresh backing storage, so a copy of a Message never
// observes the other copy's mutation.
func (m *Message) Append(seg Segment) {
	if p, ok := seg.(Plain); ok {
		m.AppendText(p.Text)
		return
	}
	n := len(m.chain)
	m.chain = append(m.chain[:n:n], seg)
}

// AppendText adds plain text to the end of the message, merging into a
// trailing plain run when one exists. Empty text is a no-op.
func (m *Message) AppendText(text string) {
	if text == "" {
		return
	}
	n := len(m.chain)
	if n > 0 {
		if last, ok := m.chain[n-1].(Plain); ok {
			m.chain = append(m.chain[:n-1:n-1], Plain{Text: last.Text + text})
			return
		}
	}
	m.chain = append(m.chain[:n:n], Plain{Text: text})
}

// AppendChain adds a whole chain to the end of the message. The incoming
// chain is normalized first, then the merge rule is applied at the seam; the
// remainder is appended as-is.
func (m *Message) AppendChain(chain Chain) {
	m.appendNormalized(normalize(chain.Clone()))
}

// AppendMessage adds another message's content to the end of this one. The
// other message is already normalized, so only the seam needs merging.
func (m *Message) AppendMessage(other Message) {
	m.appendNormalized(other.chain)
}

// appendNormalized bulk-appends a chain known to satisfy the invariant,
// applying the merge rule only between the current tail and the first
// incoming element.
func (m *Message) appendNormalized(chain Chain) {
	if len(chain) == 0 {
		return
	}
	m.Append(chain[0])
	m.chain = append(m.chain, chain[1:]...)
}

// Equal reports structural equality: the two chains match element by
// element, order- and kind-sensitive.
func (m Message) Equal(other Message) bool {
	return m.chain.Equal(other.chain)
}

// EqualText reports whether the message is exactly one plain run equal to
// the given string.
func (m Message) EqualText(text string) bool {
	if len(m.chain) != 1 {
		return false
	}
	p, ok := m.chain[0].(Plain)
	return ok && p.Text == text
}

// ExtractText concatenates every plain run in order, ignoring all other
// segments. Two structurally different messages can extract to the same
// text; use Equal for exact comparison.
func (m Message) ExtractText() string {
	var b strings.Builder
	for _, seg := range m.chain {
		if p, ok := seg.(Plain); ok {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// String returns the canonical stringified form of the message: each
// segment's Stringify output concatenated in order. Plain runs are escaped;
// other kinds render as reference blocks. See Escape for the grammar.
func (m Message) String() string {
	var b strings.Builder
	for _, seg := range m.chain {
		b.WriteString(seg.Stringify())
	}
	return b.String()
}

// HasPrefix reports whether the message starts with the given text. Only a
// leading plain run is inspected: a message opening with a mention never
// has a text prefix, even if the mention's stringified form would match.
func (m Message) HasPrefix(text string) bool {
	if len(m.chain) == 0 {
		return false
	}
	p, ok := m.chain[0].(Plain)
	return ok && strings.HasPrefix(p.Text, text)
}

// HasSuffix reports whether the message ends with the given text. Only a
// trailing plain run is inspected.
func (m Message) HasSuffix(text string) bool {
	if len(m.chain) == 0 {
		return false
	}
	p, ok := m.chain[len(m.chain)-1].(Plain)
	return ok && strings.HasSuffix(p.Text, text)
}

// ContainsText reports whether any plain run in the message contains the
// given substring.
func (m Message) ContainsText(text string) bool {
	for _, seg := range m.chain {
		if p, ok := seg.(Plain); ok && strings.Contains(p.Text, text) {
			return true
		}
	}
	return false
}

// HasPrefixSegment reports whether the message starts with the given
// segment. A plain argument delegates to HasPrefix so the merge invariant is
// respected.
func (m Message) HasPrefixSegment(seg Segment) bool {
	if p, ok := seg.(Plain); ok {
		return m.HasPrefix(p.Text)
	}
	return len(m.chain) > 0 && m.chain[0].Equals(seg)
}

// HasSuffixSegment reports whether the message ends with the given segment.
// A plain argument delegates to HasSuffix.
func (m Message) HasSuffixSegment(seg Segment) bool {
	if p, ok := seg.(Plain); ok {
		return m.HasSuffix(p.Text)
	}
	return len(m.chain) > 0 && m.chain[len(m.chain)-1].Equals(seg)
}

// ContainsSegment reports whether any element of the message equals the
// given segment. A plain argument delegates to ContainsText.
func (m Message) ContainsSegment(seg Segment) bool {
	if p, ok := seg.(Plain); ok {
		return m.ContainsText(p.Text)
	}
	for _, s := range m.chain {
		if s.Equals(seg) {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the message as a JSON array of discriminated segment
// objects.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.chain == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.chain)
}

// UnmarshalJSON decodes a JSON segment array and normalizes it. The decode
// is atomic: on failure the receiver is left untouched.
func (m *Message) UnmarshalJSON(data []byte) error {
	chain, err := ParseChain(data)
	if err != nil {
		return err
	}
	m.chain = normalize(chain)
	return nil
}
