package event

import (
	"github.com/c360/chatstreams/chat"
)

// NewFriendRequest signals someone asking to add the bot as a friend. The
// EventID identifies the request when responding through the gateway.
type NewFriendRequest struct {
	EventID int64        `json:"eventId"`
	FromID  chat.UserID  `json:"fromId"`
	GroupID chat.GroupID `json:"groupId"` // zero unless the request came via a group
	Nick    string       `json:"nick"`
}

// Type returns TypeNewFriendRequest.
func (NewFriendRequest) Type() EventType { return TypeNewFriendRequest }

func (NewFriendRequest) event() {}

// NewFriendResponse is the answer to a NewFriendRequest. The numeric values
// are the wire encoding.
type NewFriendResponse int

const (
	// FriendApprove accepts the friend request.
	FriendApprove NewFriendResponse = 0
	// FriendDisapprove rejects the friend request.
	FriendDisapprove NewFriendResponse = 1
	// FriendBlacklist rejects the request and blocks further ones from the
	// same user.
	FriendBlacklist NewFriendResponse = 2
)

// IsValid reports whether r is one of the defined responses.
func (r NewFriendResponse) IsValid() bool {
	return r >= FriendApprove && r <= FriendBlacklist
}

// MemberJoinRequest signals someone asking to join a group the bot
// administers.
type MemberJoinRequest struct {
	EventID   int64        `json:"eventId"`
	FromID    chat.UserID  `json:"fromId"`
	GroupID   chat.GroupID `json:"groupId"`
	GroupName string       `json:"groupName"`
	Nick      string       `json:"nick"`
}

// Type returns TypeMemberJoinRequest.
func (MemberJoinRequest) Type() EventType { return TypeMemberJoinRequest }

func (MemberJoinRequest) event() {}

// MemberJoinResponse is the answer to a MemberJoinRequest. The numeric
// values are the wire encoding.
type MemberJoinResponse int

const (
	// JoinApprove accepts the join request.
	JoinApprove MemberJoinResponse = 0
	// JoinDisapprove rejects the join request.
	JoinDisapprove MemberJoinResponse = 1
	// JoinIgnore drops the request without answering.
	JoinIgnore MemberJoinResponse = 2
	// JoinDisapproveBlacklist rejects the request and blocks further ones
	// from the same user.
	JoinDisapproveBlacklist MemberJoinResponse = 3
	// JoinIgnoreBlacklist ignores the request and blocks further ones from
	// the same user.
	JoinIgnoreBlacklist MemberJoinResponse = 4
)

// IsValid reports whether r is one of the defined responses.
func (r MemberJoinResponse) IsValid() bool {
	return r >= JoinApprove && r <= JoinIgnoreBlacklist
}
