package event

import (
	"encoding/json"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/message"
)

// Outbound encoding mirrors the inbound form: the discriminator re-emitted
// in a flat "type" field followed by the alternative's own fields. The
// local alias type strips the method set so json.Marshal sees plain fields
// instead of recursing into MarshalJSON.

func (e GroupMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    EventType               `json:"type"`
		Message message.ReceivedMessage `json:"messageChain"`
		Sender  chat.Member             `json:"sender"`
	}{TypeGroupMessage, e.Message, e.Sender})
}

func (e FriendMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    EventType               `json:"type"`
		Message message.ReceivedMessage `json:"messageChain"`
		Sender  chat.Friend             `json:"sender"`
	}{TypeFriendMessage, e.Message, e.Sender})
}

func (e TempMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    EventType               `json:"type"`
		Message message.ReceivedMessage `json:"messageChain"`
		Sender  chat.Member             `json:"sender"`
	}{TypeTempMessage, e.Message, e.Sender})
}

func (e BotOnline) MarshalJSON() ([]byte, error) {
	type alias BotOnline
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotOnline, alias(e)})
}

func (e BotOfflineActive) MarshalJSON() ([]byte, error) {
	type alias BotOfflineActive
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotOfflineActive, alias(e)})
}

func (e BotOfflineForce) MarshalJSON() ([]byte, error) {
	type alias BotOfflineForce
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotOfflineForce, alias(e)})
}

func (e BotOfflineDropped) MarshalJSON() ([]byte, error) {
	type alias BotOfflineDropped
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotOfflineDropped, alias(e)})
}

func (e BotRelogin) MarshalJSON() ([]byte, error) {
	type alias BotRelogin
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotRelogin, alias(e)})
}

func (e GroupRecall) MarshalJSON() ([]byte, error) {
	type alias GroupRecall
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupRecall, alias(e)})
}

func (e FriendRecall) MarshalJSON() ([]byte, error) {
	type alias FriendRecall
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeFriendRecall, alias(e)})
}

func (e BotGroupPermissionChange) MarshalJSON() ([]byte, error) {
	type alias BotGroupPermissionChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotGroupPermissionChange, alias(e)})
}

func (e BotMute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            EventType   `json:"type"`
		DurationSeconds int64       `json:"durationSeconds"`
		Operator        chat.Member `json:"operator"`
	}{TypeBotMute, int64(e.Duration.Seconds()), e.Operator})
}

func (e BotUnmute) MarshalJSON() ([]byte, error) {
	type alias BotUnmute
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotUnmute, alias(e)})
}

func (e BotJoinGroup) MarshalJSON() ([]byte, error) {
	type alias BotJoinGroup
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotJoinGroup, alias(e)})
}

func (e BotLeaveActive) MarshalJSON() ([]byte, error) {
	type alias BotLeaveActive
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotLeaveActive, alias(e)})
}

func (e BotLeaveKick) MarshalJSON() ([]byte, error) {
	type alias BotLeaveKick
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeBotLeaveKick, alias(e)})
}

func (e GroupNameChange) MarshalJSON() ([]byte, error) {
	type alias GroupNameChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupNameChange, alias(e)})
}

func (e GroupEntranceAnnouncementChange) MarshalJSON() ([]byte, error) {
	type alias GroupEntranceAnnouncementChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupEntranceAnnouncementChange, alias(e)})
}

func (e GroupMuteAll) MarshalJSON() ([]byte, error) {
	type alias GroupMuteAll
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupMuteAll, alias(e)})
}

func (e GroupAllowAnonymousChat) MarshalJSON() ([]byte, error) {
	type alias GroupAllowAnonymousChat
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupAllowAnonymousChat, alias(e)})
}

func (e GroupAllowConfessTalk) MarshalJSON() ([]byte, error) {
	type alias GroupAllowConfessTalk
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupAllowConfessTalk, alias(e)})
}

func (e GroupAllowMemberInvite) MarshalJSON() ([]byte, error) {
	type alias GroupAllowMemberInvite
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeGroupAllowMemberInvite, alias(e)})
}

func (e MemberJoin) MarshalJSON() ([]byte, error) {
	type alias MemberJoin
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberJoin, alias(e)})
}

func (e MemberLeaveKick) MarshalJSON() ([]byte, error) {
	type alias MemberLeaveKick
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberLeaveKick, alias(e)})
}

func (e MemberLeaveQuit) MarshalJSON() ([]byte, error) {
	type alias MemberLeaveQuit
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberLeaveQuit, alias(e)})
}

func (e MemberCardChange) MarshalJSON() ([]byte, error) {
	type alias MemberCardChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberCardChange, alias(e)})
}

func (e MemberSpecialTitleChange) MarshalJSON() ([]byte, error) {
	type alias MemberSpecialTitleChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberSpecialTitleChange, alias(e)})
}

func (e MemberPermissionChange) MarshalJSON() ([]byte, error) {
	type alias MemberPermissionChange
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberPermissionChange, alias(e)})
}

func (e MemberMute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            EventType    `json:"type"`
		DurationSeconds int64        `json:"durationSeconds"`
		Member          chat.Member  `json:"member"`
		Operator        *chat.Member `json:"operator"`
	}{TypeMemberMute, int64(e.Duration.Seconds()), e.Member, e.Operator})
}

func (e MemberUnmute) MarshalJSON() ([]byte, error) {
	type alias MemberUnmute
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberUnmute, alias(e)})
}

func (e NewFriendRequest) MarshalJSON() ([]byte, error) {
	type alias NewFriendRequest
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeNewFriendRequest, alias(e)})
}

func (e MemberJoinRequest) MarshalJSON() ([]byte, error) {
	type alias MemberJoinRequest
	return json.Marshal(struct {
		Type EventType `json:"type"`
		alias
	}{TypeMemberJoinRequest, alias(e)})
}
