package event

import (
	"encoding/json"
	"time"

	"github.com/c360/chatstreams/chat"
)

// BotOnline signals the bot account coming online.
type BotOnline struct {
	QQ chat.UserID `json:"qq"`
}

// Type returns TypeBotOnline.
func (BotOnline) Type() EventType { return TypeBotOnline }

func (BotOnline) event() {}

// BotOfflineActive signals the bot logging out on purpose.
type BotOfflineActive struct {
	QQ chat.UserID `json:"qq"`
}

// Type returns TypeBotOfflineActive.
func (BotOfflineActive) Type() EventType { return TypeBotOfflineActive }

func (BotOfflineActive) event() {}

// BotOfflineForce signals the bot being logged out by the platform, usually
// because the account logged in elsewhere.
type BotOfflineForce struct {
	QQ chat.UserID `json:"qq"`
}

// Type returns TypeBotOfflineForce.
func (BotOfflineForce) Type() EventType { return TypeBotOfflineForce }

func (BotOfflineForce) event() {}

// BotOfflineDropped signals the bot losing its connection to the platform.
type BotOfflineDropped struct {
	QQ chat.UserID `json:"qq"`
}

// Type returns TypeBotOfflineDropped.
func (BotOfflineDropped) Type() EventType { return TypeBotOfflineDropped }

func (BotOfflineDropped) event() {}

// BotRelogin signals the bot re-establishing its session.
type BotRelogin struct {
	QQ chat.UserID `json:"qq"`
}

// Type returns TypeBotRelogin.
func (BotRelogin) Type() EventType { return TypeBotRelogin }

func (BotRelogin) event() {}

// BotGroupPermissionChange signals the bot's own permission changing in a
// group. Only the group owner can cause this.
type BotGroupPermissionChange struct {
	Origin  chat.Permission `json:"origin"`
	Current chat.Permission `json:"current"`
	Group   chat.Group      `json:"group"`
}

// Type returns TypeBotGroupPermissionChange.
func (BotGroupPermissionChange) Type() EventType { return TypeBotGroupPermissionChange }

func (BotGroupPermissionChange) event() {}

// BotMute signals the bot being muted in a group.
type BotMute struct {
	Duration time.Duration
	Operator chat.Member
}

// Type returns TypeBotMute.
func (BotMute) Type() EventType { return TypeBotMute }

func (BotMute) event() {}

// UnmarshalJSON converts the wire's whole-second duration.
func (e *BotMute) UnmarshalJSON(data []byte) error {
	var w struct {
		DurationSeconds int64       `json:"durationSeconds"`
		Operator        chat.Member `json:"operator"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	e.Duration = time.Duration(w.DurationSeconds) * time.Second
	e.Operator = w.Operator
	return nil
}

// BotUnmute signals the bot being unmuted in a group.
type BotUnmute struct {
	Operator chat.Member `json:"operator"`
}

// Type returns TypeBotUnmute.
func (BotUnmute) Type() EventType { return TypeBotUnmute }

func (BotUnmute) event() {}

// BotJoinGroup signals the bot joining a group.
type BotJoinGroup struct {
	Group chat.Group `json:"group"`
}

// Type returns TypeBotJoinGroup.
func (BotJoinGroup) Type() EventType { return TypeBotJoinGroup }

func (BotJoinGroup) event() {}

// BotLeaveActive signals the bot quitting a group on its own.
type BotLeaveActive struct {
	Group chat.Group `json:"group"`
}

// Type returns TypeBotLeaveActive.
func (BotLeaveActive) Type() EventType { return TypeBotLeaveActive }

func (BotLeaveActive) event() {}

// BotLeaveKick signals the bot being kicked out of a group.
type BotLeaveKick struct {
	Group chat.Group `json:"group"`
}

// Type returns TypeBotLeaveKick.
func (BotLeaveKick) Type() EventType { return TypeBotLeaveKick }

func (BotLeaveKick) event() {}
