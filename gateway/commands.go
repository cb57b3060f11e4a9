package gateway

import (
	"context"
	"encoding/json"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/errors"
	"github.com/c360/chatstreams/event"
	"github.com/c360/chatstreams/message"
)

// messageReply is the reply shape for the send commands.
type messageReply struct {
	MessageID chat.MessageID `json:"messageId"`
}

// SendFriendMessage sends a message to a friend and returns the id the
// gateway assigned to it.
func (c *Client) SendFriendMessage(ctx context.Context, target chat.UserID, msg message.Message) (chat.MessageID, error) {
	return c.sendMessage(ctx, "sendFriendMessage", map[string]any{
		"target":       target,
		"messageChain": msg,
	})
}

// SendGroupMessage sends a message to a group.
func (c *Client) SendGroupMessage(ctx context.Context, target chat.GroupID, msg message.Message) (chat.MessageID, error) {
	return c.sendMessage(ctx, "sendGroupMessage", map[string]any{
		"target":       target,
		"messageChain": msg,
	})
}

// SendTempMessage sends a temporary session message to a group member the
// bot is not friends with.
func (c *Client) SendTempMessage(ctx context.Context, qq chat.UserID, group chat.GroupID, msg message.Message) (chat.MessageID, error) {
	return c.sendMessage(ctx, "sendTempMessage", map[string]any{
		"qq":           qq,
		"group":        group,
		"messageChain": msg,
	})
}

// QuoteReplyGroupMessage sends a group message quoting an earlier one.
func (c *Client) QuoteReplyGroupMessage(ctx context.Context, target chat.GroupID, quote chat.MessageID, msg message.Message) (chat.MessageID, error) {
	return c.sendMessage(ctx, "sendGroupMessage", map[string]any{
		"target":       target,
		"quote":        quote,
		"messageChain": msg,
	})
}

func (c *Client) sendMessage(ctx context.Context, command string, content map[string]any) (chat.MessageID, error) {
	data, err := c.call(ctx, command, content)
	if err != nil {
		return 0, err
	}
	var reply messageReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return 0, errors.WrapInvalid(err, "gateway", command, "decode message id")
	}
	return reply.MessageID, nil
}

// Recall withdraws a previously sent message.
func (c *Client) Recall(ctx context.Context, id chat.MessageID) error {
	_, err := c.call(ctx, "recall", map[string]any{"target": id})
	return err
}

// RespondNewFriend answers a friend request event. The note is shown to
// the requester on rejection; pass empty for none.
func (c *Client) RespondNewFriend(ctx context.Context, req event.NewFriendRequest, resp event.NewFriendResponse, note string) error {
	if !resp.IsValid() {
		return errors.WrapInvalid(errors.ErrInvalidData, "gateway", "RespondNewFriend", "unknown response value")
	}
	_, err := c.call(ctx, "resp_newFriendRequestEvent", map[string]any{
		"eventId": req.EventID,
		"fromId":  req.FromID,
		"groupId": req.GroupID,
		"operate": int(resp),
		"message": note,
	})
	return err
}

// RespondMemberJoin answers a group join request event.
func (c *Client) RespondMemberJoin(ctx context.Context, req event.MemberJoinRequest, resp event.MemberJoinResponse, note string) error {
	if !resp.IsValid() {
		return errors.WrapInvalid(errors.ErrInvalidData, "gateway", "RespondMemberJoin", "unknown response value")
	}
	_, err := c.call(ctx, "resp_memberJoinRequestEvent", map[string]any{
		"eventId": req.EventID,
		"fromId":  req.FromID,
		"groupId": req.GroupID,
		"operate": int(resp),
		"message": note,
	})
	return err
}

// Mute silences a group member for the given duration, rounded down to
// whole seconds.
func (c *Client) Mute(ctx context.Context, group chat.GroupID, member chat.UserID, seconds int) error {
	_, err := c.call(ctx, "mute", map[string]any{
		"target":   group,
		"memberId": member,
		"time":     seconds,
	})
	return err
}

// Unmute lifts a member's mute.
func (c *Client) Unmute(ctx context.Context, group chat.GroupID, member chat.UserID) error {
	_, err := c.call(ctx, "unmute", map[string]any{
		"target":   group,
		"memberId": member,
	})
	return err
}
