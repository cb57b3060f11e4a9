package event

import (
	"encoding/json"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/message"
)

// GroupMessage is a message received in a group the bot belongs to.
type GroupMessage struct {
	Message message.ReceivedMessage
	Sender  chat.Member
}

// Type returns TypeGroupMessage.
func (GroupMessage) Type() EventType { return TypeGroupMessage }

func (GroupMessage) event() {}

// UnmarshalJSON lifts the wire "messageChain" array into a ReceivedMessage.
func (e *GroupMessage) UnmarshalJSON(data []byte) error {
	var w struct {
		Chain  json.RawMessage `json:"messageChain"`
		Sender chat.Member     `json:"sender"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	msg, err := message.ParseReceived(w.Chain)
	if err != nil {
		return err
	}
	e.Message = msg
	e.Sender = w.Sender
	return nil
}

// FriendMessage is a direct message from a friend.
type FriendMessage struct {
	Message message.ReceivedMessage
	Sender  chat.Friend
}

// Type returns TypeFriendMessage.
func (FriendMessage) Type() EventType { return TypeFriendMessage }

func (FriendMessage) event() {}

func (e *FriendMessage) UnmarshalJSON(data []byte) error {
	var w struct {
		Chain  json.RawMessage `json:"messageChain"`
		Sender chat.Friend     `json:"sender"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	msg, err := message.ParseReceived(w.Chain)
	if err != nil {
		return err
	}
	e.Message = msg
	e.Sender = w.Sender
	return nil
}

// TempMessage is a direct message from a group member the bot is not
// friends with, routed through the group session.
type TempMessage struct {
	Message message.ReceivedMessage
	Sender  chat.Member
}

// Type returns TypeTempMessage.
func (TempMessage) Type() EventType { return TypeTempMessage }

func (TempMessage) event() {}

func (e *TempMessage) UnmarshalJSON(data []byte) error {
	var w struct {
		Chain  json.RawMessage `json:"messageChain"`
		Sender chat.Member     `json:"sender"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	msg, err := message.ParseReceived(w.Chain)
	if err != nil {
		return err
	}
	e.Message = msg
	e.Sender = w.Sender
	return nil
}
