package event

import (
	"encoding/json"
	"time"

	"github.com/c360/chatstreams/chat"
)

// Member-scoped events. As with the group events, a nil Operator means the
// bot performed the action.

// MemberJoin signals someone other than the bot joining a group.
type MemberJoin struct {
	Member chat.Member `json:"member"`
}

// Type returns TypeMemberJoin.
func (MemberJoin) Type() EventType { return TypeMemberJoin }

func (MemberJoin) event() {}

// MemberLeaveKick signals a member being kicked out of a group.
type MemberLeaveKick struct {
	Member   chat.Member  `json:"member"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeMemberLeaveKick.
func (MemberLeaveKick) Type() EventType { return TypeMemberLeaveKick }

func (MemberLeaveKick) event() {}

// MemberLeaveQuit signals a member leaving a group on their own.
type MemberLeaveQuit struct {
	Member chat.Member `json:"member"`
}

// Type returns TypeMemberLeaveQuit.
func (MemberLeaveQuit) Type() EventType { return TypeMemberLeaveQuit }

func (MemberLeaveQuit) event() {}

// MemberCardChange signals a member's display card changing.
type MemberCardChange struct {
	Origin   string       `json:"origin"`
	Current  string       `json:"current"`
	Member   chat.Member  `json:"member"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeMemberCardChange.
func (MemberCardChange) Type() EventType { return TypeMemberCardChange }

func (MemberCardChange) event() {}

// MemberSpecialTitleChange signals a member's special title changing. Only
// the group owner can do this, so no operator is carried.
type MemberSpecialTitleChange struct {
	Origin  string      `json:"origin"`
	Current string      `json:"current"`
	Member  chat.Member `json:"member"`
}

// Type returns TypeMemberSpecialTitleChange.
func (MemberSpecialTitleChange) Type() EventType { return TypeMemberSpecialTitleChange }

func (MemberSpecialTitleChange) event() {}

// MemberPermissionChange signals a member's group permission changing.
type MemberPermissionChange struct {
	Origin  chat.Permission `json:"origin"`
	Current chat.Permission `json:"current"`
	Member  chat.Member     `json:"member"`
}

// Type returns TypeMemberPermissionChange.
func (MemberPermissionChange) Type() EventType { return TypeMemberPermissionChange }

func (MemberPermissionChange) event() {}

// MemberMute signals a member being muted.
type MemberMute struct {
	Duration time.Duration
	Member   chat.Member
	Operator *chat.Member
}

// Type returns TypeMemberMute.
func (MemberMute) Type() EventType { return TypeMemberMute }

func (MemberMute) event() {}

// UnmarshalJSON converts the wire's whole-second duration.
func (e *MemberMute) UnmarshalJSON(data []byte) error {
	var w struct {
		DurationSeconds int64        `json:"durationSeconds"`
		Member          chat.Member  `json:"member"`
		Operator        *chat.Member `json:"operator"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Duration = time.Duration(w.DurationSeconds) * time.Second
	e.Member = w.Member
	e.Operator = w.Operator
	return nil
}

// MemberUnmute signals a member being unmuted.
type MemberUnmute struct {
	Member   chat.Member  `json:"member"`
	Operator *chat.Member `json:"operator"`
}

// Type returns TypeMemberUnmute.
func (MemberUnmute) Type() EventType { return TypeMemberUnmute }

func (MemberUnmute) event() {}
