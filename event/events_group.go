package event

import (
	"github.com/c360/chatstreams/chat"
)

// Group-scoped events. Several carry an Operator who performed the action;
// a nil Operator means the bot itself did it.

// GroupRecall signals a group message being recalled.
type GroupRecall struct {
	AuthorID  chat.UserID    `json:"authorId"`
	MessageID chat.MessageID `json:"messageId"`
	Time      int64          `json:"time"`
	Group     chat.Group     `json:"group"`
	Operator  *chat.Member   `json:"operator"`
}

// Type returns TypeGroupRecall.
func (GroupRecall) Type() EventType { return TypeGroupRecall }

func (GroupRecall) event() {}

// FriendRecall signals a friend message being recalled. The operator is a
// bare user id here, not a group member.
type FriendRecall struct {
	AuthorID  chat.UserID    `json:"authorId"`
	MessageID chat.MessageID `json:"messageId"`
	Time      int64          `json:"time"`
	Operator  chat.UserID    `json:"operator"`
}

// Type returns TypeFriendRecall.
func (FriendRecall) Type() EventType { return TypeFriendRecall }

func (FriendRecall) event() {}

// GroupNameChange signals a group being renamed.
type GroupNameChange struct {
	Origin   string       `json:"origin"`
	Current  string       `json:"current"`
	Group    chat.Group   `json:"group"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeGroupNameChange.
func (GroupNameChange) Type() EventType { return TypeGroupNameChange }

func (GroupNameChange) event() {}

// GroupEntranceAnnouncementChange signals a group's entrance announcement
// being edited.
type GroupEntranceAnnouncementChange struct {
	Origin   string       `json:"origin"`
	Current  string       `json:"current"`
	Group    chat.Group   `json:"group"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeGroupEntranceAnnouncementChange.
func (GroupEntranceAnnouncementChange) Type() EventType { return TypeGroupEntranceAnnouncementChange }

func (GroupEntranceAnnouncementChange) event() {}

// GroupMuteAll signals the mute-all switch of a group being toggled.
type GroupMuteAll struct {
	Origin   bool         `json:"origin"`
	Current  bool         `json:"current"`
	Group    chat.Group   `json:"group"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeGroupMuteAll.
func (GroupMuteAll) Type() EventType { return TypeGroupMuteAll }

func (GroupMuteAll) event() {}

// GroupAllowAnonymousChat signals the anonymous-chat switch of a group
// being toggled.
type GroupAllowAnonymousChat struct {
	Origin   bool         `json:"origin"`
	Current  bool         `json:"current"`
	Group    chat.Group   `json:"group"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeGroupAllowAnonymousChat.
func (GroupAllowAnonymousChat) Type() EventType { return TypeGroupAllowAnonymousChat }

func (GroupAllowAnonymousChat) event() {}

// GroupAllowConfessTalk signals the confess-talk switch of a group being
// toggled. This kind reports bot involvement as a flag instead of an
// operator member.
type GroupAllowConfessTalk struct {
	Origin  bool       `json:"origin"`
	Current bool       `json:"current"`
	Group   chat.Group `json:"group"`
	IsByBot bool       `json:"isByBot"`
}

// Type returns TypeGroupAllowConfessTalk.
func (GroupAllowConfessTalk) Type() EventType { return TypeGroupAllowConfessTalk }

func (GroupAllowConfessTalk) event() {}

// GroupAllowMemberInvite signals the member-invitation switch of a group
// being toggled.
type GroupAllowMemberInvite struct {
	Origin   bool         `json:"origin"`
	Current  bool         `json:"current"`
	Group    chat.Group   `json:"group"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeGroupAllowMemberInvite.
func (GroupAllowMemberInvite) Type() EventType { return TypeGroupAllowMemberInvite }

func (GroupAllowMemberInvite) event() {}
