// Package event decodes gateway push events into typed Go values.
//
// Every event arriving on the websocket is a JSON object whose "type" field
// names one of the event kinds below. Parse dispatches on that discriminator
// through a fixed registry, so adding a kind means adding a struct and a
// registry entry; nothing else changes. The set of kinds is closed: Event is
// a sealed interface and all alternatives live in this package.
//
// Events are inbound only. The client never sends an event, so the package
// decodes but does not encode them.
package event

import (
	"encoding/json"
	stderrors "errors"

	"github.com/c360/chatstreams/errors"
)

// EventType identifies an event kind. The value of each constant is the
// wire discriminator carried in the "type" field.
type EventType string

// All event kinds.
const (
	TypeGroupMessage                    EventType = "GroupMessage"
	TypeFriendMessage                   EventType = "FriendMessage"
	TypeTempMessage                     EventType = "TempMessage"
	TypeBotOnline                       EventType = "BotOnlineEvent"
	TypeBotOfflineActive                EventType = "BotOfflineEventActive"
	TypeBotOfflineForce                 EventType = "BotOfflineEventForce"
	TypeBotOfflineDropped               EventType = "BotOfflineEventDropped"
	TypeBotRelogin                      EventType = "BotReloginEvent"
	TypeGroupRecall                     EventType = "GroupRecallEvent"
	TypeFriendRecall                    EventType = "FriendRecallEvent"
	TypeBotGroupPermissionChange        EventType = "BotGroupPermissionChangeEvent"
	TypeBotMute                         EventType = "BotMuteEvent"
	TypeBotUnmute                       EventType = "BotUnmuteEvent"
	TypeBotJoinGroup                    EventType = "BotJoinGroupEvent"
	TypeBotLeaveActive                  EventType = "BotLeaveEventActive"
	TypeBotLeaveKick                    EventType = "BotLeaveEventKick"
	TypeGroupNameChange                 EventType = "GroupNameChangeEvent"
	TypeGroupEntranceAnnouncementChange EventType = "GroupEntranceAnnouncementChangeEvent"
	TypeGroupMuteAll                    EventType = "GroupMuteAllEvent"
	TypeGroupAllowAnonymousChat         EventType = "GroupAllowAnonymousChatEvent"
	TypeGroupAllowConfessTalk           EventType = "GroupAllowConfessTalkEvent"
	TypeGroupAllowMemberInvite          EventType = "GroupAllowMemberInviteEvent"
	TypeMemberJoin                      EventType = "MemberJoinEvent"
	TypeMemberLeaveKick                 EventType = "MemberLeaveEventKick"
	TypeMemberLeaveQuit                 EventType = "MemberLeaveEventQuit"
	TypeMemberCardChange                EventType = "MemberCardChangeEvent"
	TypeMemberSpecialTitleChange        EventType = "MemberSpecialTitleChangeEvent"
	TypeMemberPermissionChange          EventType = "MemberPermissionChangeEvent"
	TypeMemberMute                      EventType = "MemberMuteEvent"
	TypeMemberUnmute                    EventType = "MemberUnmuteEvent"
	TypeNewFriendRequest                EventType = "NewFriendRequestEvent"
	TypeMemberJoinRequest               EventType = "MemberJoinRequestEvent"
)

// eventTypeNames fixes the canonical ordering of event kinds.
var eventTypeNames = [...]EventType{
	TypeGroupMessage, TypeFriendMessage, TypeTempMessage,
	TypeBotOnline, TypeBotOfflineActive, TypeBotOfflineForce, TypeBotOfflineDropped,
	TypeBotRelogin, TypeGroupRecall, TypeFriendRecall, TypeBotGroupPermissionChange,
	TypeBotMute, TypeBotUnmute, TypeBotJoinGroup, TypeBotLeaveActive, TypeBotLeaveKick,
	TypeGroupNameChange, TypeGroupEntranceAnnouncementChange, TypeGroupMuteAll,
	TypeGroupAllowAnonymousChat, TypeGroupAllowConfessTalk, TypeGroupAllowMemberInvite,
	TypeMemberJoin, TypeMemberLeaveKick, TypeMemberLeaveQuit, TypeMemberCardChange,
	TypeMemberSpecialTitleChange, TypeMemberPermissionChange, TypeMemberMute,
	TypeMemberUnmute, TypeNewFriendRequest, TypeMemberJoinRequest,
}

// Types returns all event kinds in canonical order.
func Types() []EventType {
	out := make([]EventType, len(eventTypeNames))
	copy(out, eventTypeNames[:])
	return out
}

// IsValid reports whether t names a known event kind.
func (t EventType) IsValid() bool {
	_, ok := eventDecoders[t]
	return ok
}

// Event is the closed set of gateway push events. Use a type switch to
// dispatch on the concrete kind.
type Event interface {
	// Type returns the kind discriminator of this event.
	Type() EventType

	// Events marshal to a flat JSON object carrying their discriminator
	// in a "type" field, mirroring the inbound form.
	json.Marshaler

	event()
}

// eventDecoders maps discriminators to decoders. Populated once below and
// never mutated afterwards.
var eventDecoders = map[EventType]func([]byte) (Event, error){
	TypeGroupMessage:                    decodeEvent[GroupMessage],
	TypeFriendMessage:                   decodeEvent[FriendMessage],
	TypeTempMessage:                     decodeEvent[TempMessage],
	TypeBotOnline:                       decodeEvent[BotOnline],
	TypeBotOfflineActive:                decodeEvent[BotOfflineActive],
	TypeBotOfflineForce:                 decodeEvent[BotOfflineForce],
	TypeBotOfflineDropped:               decodeEvent[BotOfflineDropped],
	TypeBotRelogin:                      decodeEvent[BotRelogin],
	TypeGroupRecall:                     decodeEvent[GroupRecall],
	TypeFriendRecall:                    decodeEvent[FriendRecall],
	TypeBotGroupPermissionChange:        decodeEvent[BotGroupPermissionChange],
	TypeBotMute:                         decodeEvent[BotMute],
	TypeBotUnmute:                       decodeEvent[BotUnmute],
	TypeBotJoinGroup:                    decodeEvent[BotJoinGroup],
	TypeBotLeaveActive:                  decodeEvent[BotLeaveActive],
	TypeBotLeaveKick:                    decodeEvent[BotLeaveKick],
	TypeGroupNameChange:                 decodeEvent[GroupNameChange],
	TypeGroupEntranceAnnouncementChange: decodeEvent[GroupEntranceAnnouncementChange],
	TypeGroupMuteAll:                    decodeEvent[GroupMuteAll],
	TypeGroupAllowAnonymousChat:         decodeEvent[GroupAllowAnonymousChat],
	TypeGroupAllowConfessTalk:           decodeEvent[GroupAllowConfessTalk],
	TypeGroupAllowMemberInvite:          decodeEvent[GroupAllowMemberInvite],
	TypeMemberJoin:                      decodeEvent[MemberJoin],
	TypeMemberLeaveKick:                 decodeEvent[MemberLeaveKick],
	TypeMemberLeaveQuit:                 decodeEvent[MemberLeaveQuit],
	TypeMemberCardChange:                decodeEvent[MemberCardChange],
	TypeMemberSpecialTitleChange:        decodeEvent[MemberSpecialTitleChange],
	TypeMemberPermissionChange:          decodeEvent[MemberPermissionChange],
	TypeMemberMute:                      decodeEvent[MemberMute],
	TypeMemberUnmute:                    decodeEvent[MemberUnmute],
	TypeNewFriendRequest:                decodeEvent[NewFriendRequest],
	TypeMemberJoinRequest:               decodeEvent[MemberJoinRequest],
}

// decodeEvent decodes a raw object into a concrete event kind, converting
// type mismatches into shape errors carrying the discriminator.
func decodeEvent[T Event](data []byte) (Event, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, shapeError(v.Type(), err)
	}
	return v, nil
}

// shapeError converts encoding/json field-type failures into a
// ShapeMismatchError; errors already typed by a nested decoder pass through.
func shapeError(tag EventType, err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return &errors.ShapeMismatchError{
			Tag:    string(tag),
			Field:  typeErr.Field,
			Reason: "cannot decode " + typeErr.Value + " into " + typeErr.Type.String(),
		}
	}
	var mismatch *errors.ShapeMismatchError
	if stderrors.As(err, &mismatch) {
		return err
	}
	var unknown *errors.UnknownVariantError
	if stderrors.As(err, &unknown) {
		return err
	}
	return &errors.ShapeMismatchError{Tag: string(tag), Reason: err.Error()}
}

// Parse decodes a single event object, dispatching on its "type" field.
func Parse(data []byte) (Event, error) {
	var head struct {
		Type EventType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errors.WrapInvalid(err, "event", "Parse", "read discriminator")
	}

	decode, ok := eventDecoders[head.Type]
	if !ok {
		return nil, &errors.UnknownVariantError{Wrapper: "event", Tag: string(head.Type)}
	}
	return decode(data)
}

// ParseBatch decodes an array of event objects. Failures are isolated per
// object: each good event is returned even when its neighbors are
// undecodable, with the individual failures joined into the returned error.
func ParseBatch(data []byte) ([]Event, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapInvalid(err, "event", "ParseBatch", "read event array")
	}

	events := make([]Event, 0, len(raw))
	var errs []error
	for _, obj := range raw {
		ev, err := Parse(obj)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		events = append(events, ev)
	}
	return events, stderrors.Join(errs...)
}
