package message

import (
	"encoding/json"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/errors"
)

// Source carries the server-assigned identity of a received message: the
// message ID usable for recall and quoting, and the send timestamp in unix
// seconds.
type Source struct {
	ID   chat.MessageID `json:"id"`
	Time int64          `json:"time"`
}

// Quote describes the message a received message replies to.
type Quote struct {
	ID       chat.MessageID `json:"id"`
	GroupID  chat.GroupID   `json:"groupId"`
	SenderID chat.UserID    `json:"senderId"`
	TargetID chat.UserID    `json:"targetId"`
	Origin   Message        `json:"origin"`
}

// ReceivedMessage is an inbound message chain split into its metadata and
// content. The wire form is a single array whose first element is always a
// Source pseudo-segment, optionally followed by a Quote pseudo-segment, then
// the content segments proper.
type ReceivedMessage struct {
	Source  Source
	Quote   *Quote // nil when the message is not a reply
	Content Message
}

// pseudo-segment heads, never part of Content.
const (
	tagSource = "Source"
	tagQuote  = "Quote"
)

// ParseReceived decodes a received messageChain array. The leading Source
// element is mandatory; a Quote element, when present, must come second.
func ParseReceived(data []byte) (ReceivedMessage, error) {
	var recv ReceivedMessage

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return recv, errors.WrapInvalid(err, "message", "ParseReceived", "read message array")
	}
	if len(raw) == 0 {
		return recv, &errors.ShapeMismatchError{Tag: tagSource, Reason: "empty message array"}
	}

	tag, err := peekType(raw[0])
	if err != nil {
		return recv, err
	}
	if tag != tagSource {
		return recv, &errors.ShapeMismatchError{Tag: tagSource, Reason: "first element is " + string(tag)}
	}
	if err := json.Unmarshal(raw[0], &recv.Source); err != nil {
		return recv, &errors.ShapeMismatchError{Tag: tagSource, Reason: err.Error()}
	}
	rest := raw[1:]

	if len(rest) > 0 {
		tag, err := peekType(rest[0])
		if err != nil {
			return recv, err
		}
		if tag == tagQuote {
			var q Quote
			if err := json.Unmarshal(rest[0], &q); err != nil {
				return recv, &errors.ShapeMismatchError{Tag: tagQuote, Reason: err.Error()}
			}
			recv.Quote = &q
			rest = rest[1:]
		}
	}

	chain := make(Chain, 0, len(rest))
	for _, obj := range rest {
		seg, err := ParseSegment(obj)
		if err != nil {
			return ReceivedMessage{}, err
		}
		chain = append(chain, seg)
	}
	recv.Content = FromChain(chain)
	return recv, nil
}

// peekType reads only the discriminator of a raw segment object.
func peekType(data []byte) (SegmentType, error) {
	var head struct {
		Type SegmentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", errors.WrapInvalid(err, "message", "ParseReceived", "read discriminator")
	}
	return head.Type, nil
}

// UnmarshalJSON decodes the wire messageChain form. The receiver is left
// untouched when decoding fails.
func (r *ReceivedMessage) UnmarshalJSON(data []byte) error {
	recv, err := ParseReceived(data)
	if err != nil {
		return err
	}
	*r = recv
	return nil
}

// MarshalJSON re-emits the wire messageChain form, Source first, Quote
// second when present, then the content segments.
func (r ReceivedMessage) MarshalJSON() ([]byte, error) {
	type sourceWire struct {
		Type string         `json:"type"`
		ID   chat.MessageID `json:"id"`
		Time int64          `json:"time"`
	}
	type quoteWire struct {
		Type     string         `json:"type"`
		ID       chat.MessageID `json:"id"`
		GroupID  chat.GroupID   `json:"groupId"`
		SenderID chat.UserID    `json:"senderId"`
		TargetID chat.UserID    `json:"targetId"`
		Origin   Message        `json:"origin"`
	}

	elems := make([]any, 0, r.Content.Len()+2)
	elems = append(elems, sourceWire{Type: tagSource, ID: r.Source.ID, Time: r.Source.Time})
	if r.Quote != nil {
		elems = append(elems, quoteWire{
			Type:     tagQuote,
			ID:       r.Quote.ID,
			GroupID:  r.Quote.GroupID,
			SenderID: r.Quote.SenderID,
			TargetID: r.Quote.TargetID,
			Origin:   r.Quote.Origin,
		})
	}
	for _, seg := range r.Content.Segments() {
		elems = append(elems, seg)
	}
	return json.Marshal(elems)
}
