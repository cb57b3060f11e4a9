package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/chatstreams/chat"
	"github.com/c360/chatstreams/errors"
)

func TestParseGroupMessage(t *testing.T) {
	input := `{
		"type": "GroupMessage",
		"messageChain": [
			{"type":"Source","id":123,"time":1700000000},
			{"type":"Plain","text":"hello"}
		],
		"sender": {
			"id": 456,
			"memberName": "alice",
			"permission": "MEMBER",
			"group": {"id": 789, "name": "testers", "permission": "ADMINISTRATOR"}
		}
	}`

	ev, err := Parse([]byte(input))
	require.NoError(t, err)

	gm, ok := ev.(GroupMessage)
	require.True(t, ok, "expected GroupMessage, got %T", ev)
	assert.Equal(t, TypeGroupMessage, gm.Type())
	assert.EqualValues(t, 123, gm.Message.Source.ID)
	assert.Equal(t, "hello", gm.Message.Content.ExtractText())
	assert.EqualValues(t, 456, gm.Sender.ID)
	assert.Equal(t, "alice", gm.Sender.MemberName)
	assert.Equal(t, chat.PermissionMember, gm.Sender.Permission)
	assert.EqualValues(t, 789, gm.Sender.Group.ID)
}

func TestParseFriendMessage(t *testing.T) {
	input := `{
		"type": "FriendMessage",
		"messageChain": [
			{"type":"Source","id":5,"time":1},
			{"type":"Plain","text":"hi"}
		],
		"sender": {"id": 42, "nickname": "bob", "remark": "colleague"}
	}`

	ev, err := Parse([]byte(input))
	require.NoError(t, err)

	fm, ok := ev.(FriendMessage)
	require.True(t, ok)
	assert.EqualValues(t, 42, fm.Sender.ID)
	assert.Equal(t, "bob", fm.Sender.Nickname)
	assert.Equal(t, "hi", fm.Message.Content.ExtractText())
}

func TestParseBotLifecycleEvents(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Event
	}{
		{
			name:  "online",
			input: `{"type":"BotOnlineEvent","qq":10}`,
			want:  BotOnline{QQ: 10},
		},
		{
			name:  "offline active",
			input: `{"type":"BotOfflineEventActive","qq":10}`,
			want:  BotOfflineActive{QQ: 10},
		},
		{
			name:  "offline force",
			input: `{"type":"BotOfflineEventForce","qq":10}`,
			want:  BotOfflineForce{QQ: 10},
		},
		{
			name:  "offline dropped",
			input: `{"type":"BotOfflineEventDropped","qq":10}`,
			want:  BotOfflineDropped{QQ: 10},
		},
		{
			name:  "relogin",
			input: `{"type":"BotReloginEvent","qq":10}`,
			want:  BotRelogin{QQ: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestParseMuteEventDuration(t *testing.T) {
	input := `{
		"type": "BotMuteEvent",
		"durationSeconds": 600,
		"operator": {
			"id": 1, "memberName": "admin", "permission": "ADMINISTRATOR",
			"group": {"id": 2, "name": "g", "permission": "MEMBER"}
		}
	}`

	ev, err := Parse([]byte(input))
	require.NoError(t, err)

	bm, ok := ev.(BotMute)
	require.True(t, ok)
	assert.Equal(t, 10*time.Minute, bm.Duration)
	assert.EqualValues(t, 1, bm.Operator.ID)
}

func TestParseMemberMuteOperator(t *testing.T) {
	withOperator := `{
		"type": "MemberMuteEvent",
		"durationSeconds": 60,
		"member": {"id": 3, "memberName": "m", "permission": "MEMBER",
			"group": {"id": 2, "name": "g", "permission": "OWNER"}},
		"operator": {"id": 4, "memberName": "op", "permission": "ADMINISTRATOR",
			"group": {"id": 2, "name": "g", "permission": "OWNER"}}
	}`

	ev, err := Parse([]byte(withOperator))
	require.NoError(t, err)
	mm := ev.(MemberMute)
	assert.Equal(t, time.Minute, mm.Duration)
	require.NotNil(t, mm.Operator)
	assert.EqualValues(t, 4, mm.Operator.ID)

	// Null operator means the bot did it.
	byBot := `{
		"type": "MemberMuteEvent",
		"durationSeconds": 60,
		"member": {"id": 3, "memberName": "m", "permission": "MEMBER",
			"group": {"id": 2, "name": "g", "permission": "OWNER"}},
		"operator": null
	}`

	ev, err = Parse([]byte(byBot))
	require.NoError(t, err)
	assert.Nil(t, ev.(MemberMute).Operator)
}

func TestParseGroupStateEvents(t *testing.T) {
	group := `{"id": 2, "name": "g", "permission": "MEMBER"}`

	t.Run("mute all", func(t *testing.T) {
		input := `{"type":"GroupMuteAllEvent","origin":false,"current":true,"group":` + group + `,"operator":null}`
		ev, err := Parse([]byte(input))
		require.NoError(t, err)
		ma := ev.(GroupMuteAll)
		assert.False(t, ma.Origin)
		assert.True(t, ma.Current)
		assert.Nil(t, ma.Operator)
	})

	t.Run("confess talk carries bot flag", func(t *testing.T) {
		input := `{"type":"GroupAllowConfessTalkEvent","origin":true,"current":false,"group":` + group + `,"isByBot":true}`
		ev, err := Parse([]byte(input))
		require.NoError(t, err)
		ct := ev.(GroupAllowConfessTalk)
		assert.True(t, ct.Origin)
		assert.False(t, ct.Current)
		assert.True(t, ct.IsByBot)
	})

	t.Run("name change", func(t *testing.T) {
		input := `{"type":"GroupNameChangeEvent","origin":"old","current":"new","group":` + group + `,"operator":null}`
		ev, err := Parse([]byte(input))
		require.NoError(t, err)
		nc := ev.(GroupNameChange)
		assert.Equal(t, "old", nc.Origin)
		assert.Equal(t, "new", nc.Current)
	})
}

func TestParseRecallEvents(t *testing.T) {
	input := `{
		"type": "GroupRecallEvent",
		"authorId": 7, "messageId": 100, "time": 1700000000,
		"group": {"id": 2, "name": "g", "permission": "MEMBER"},
		"operator": null
	}`

	ev, err := Parse([]byte(input))
	require.NoError(t, err)
	gr := ev.(GroupRecall)
	assert.EqualValues(t, 7, gr.AuthorID)
	assert.EqualValues(t, 100, gr.MessageID)
	assert.Nil(t, gr.Operator)

	input = `{"type":"FriendRecallEvent","authorId":7,"messageId":100,"time":1,"operator":7}`
	ev, err = Parse([]byte(input))
	require.NoError(t, err)
	fr := ev.(FriendRecall)
	assert.EqualValues(t, 7, fr.Operator)
}

func TestParseRequestEvents(t *testing.T) {
	input := `{"type":"NewFriendRequestEvent","eventId":900,"fromId":7,"groupId":0,"nick":"alice"}`
	ev, err := Parse([]byte(input))
	require.NoError(t, err)
	nf := ev.(NewFriendRequest)
	assert.EqualValues(t, 900, nf.EventID)
	assert.EqualValues(t, 7, nf.FromID)
	assert.Zero(t, nf.GroupID)
	assert.Equal(t, "alice", nf.Nick)

	input = `{"type":"MemberJoinRequestEvent","eventId":901,"fromId":8,"groupId":2,"groupName":"g","nick":"bob"}`
	ev, err = Parse([]byte(input))
	require.NoError(t, err)
	mj := ev.(MemberJoinRequest)
	assert.EqualValues(t, 901, mj.EventID)
	assert.Equal(t, "g", mj.GroupName)
}

func TestParseUnknownVariant(t *testing.T) {
	_, err := Parse([]byte(`{"type":"SomeFutureEvent","x":1}`))
	require.Error(t, err)

	var unknown *errors.UnknownVariantError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "SomeFutureEvent", unknown.Tag)
	assert.ErrorIs(t, err, errors.ErrUnknownVariant)
}

func TestParseShapeMismatch(t *testing.T) {
	_, err := Parse([]byte(`{"type":"BotOnlineEvent","qq":"not a number"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrShapeMismatch)
}

func TestParseBatchIsolatesFailures(t *testing.T) {
	input := `[
		{"type":"BotOnlineEvent","qq":1},
		{"type":"bogus"},
		{"type":"BotReloginEvent","qq":1},
		{"type":"BotOnlineEvent","qq":"bad"}
	]`

	events, err := ParseBatch([]byte(input))
	require.Error(t, err)
	require.Len(t, events, 2, "good events survive bad neighbors")
	assert.Equal(t, BotOnline{QQ: 1}, events[0])
	assert.Equal(t, BotRelogin{QQ: 1}, events[1])
	assert.ErrorIs(t, err, errors.ErrUnknownVariant)
	assert.ErrorIs(t, err, errors.ErrShapeMismatch)
}

func TestParseBatchAllGood(t *testing.T) {
	events, err := ParseBatch([]byte(`[{"type":"BotOnlineEvent","qq":1}]`))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestParseBatchNotAnArray(t *testing.T) {
	_, err := ParseBatch([]byte(`{"type":"BotOnlineEvent"}`))
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestMarshalRoundTrip(t *testing.T) {
	group := chat.Group{ID: 2, Name: "g", Permission: chat.PermissionMember}
	operator := chat.Member{ID: 4, MemberName: "op", Permission: chat.PermissionAdministrator, Group: group}

	tests := []struct {
		name string
		ev   Event
	}{
		{"bot online", BotOnline{QQ: 10}},
		{"bot mute", BotMute{Duration: 10 * time.Minute, Operator: operator}},
		{"member mute by bot", MemberMute{Duration: time.Minute, Member: operator, Operator: nil}},
		{"group mute all", GroupMuteAll{Origin: false, Current: true, Group: group, Operator: &operator}},
		{"group recall", GroupRecall{AuthorID: 7, MessageID: 100, Time: 1700000000, Group: group}},
		{"join request", MemberJoinRequest{EventID: 901, FromID: 8, GroupID: 2, GroupName: "g", Nick: "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.ev)
			require.NoError(t, err)

			back, err := Parse(data)
			require.NoError(t, err)
			assert.Equal(t, tt.ev, back)
		})
	}
}

func TestMarshalEmitsDiscriminator(t *testing.T) {
	data, err := json.Marshal(BotMute{Duration: 10 * time.Minute})
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `"BotMuteEvent"`, string(raw["type"]))
	assert.JSONEq(t, `600`, string(raw["durationSeconds"]))
}

func TestMarshalGroupMessageRoundTrip(t *testing.T) {
	input := `{
		"type": "GroupMessage",
		"messageChain": [
			{"type":"Source","id":123,"time":1700000000},
			{"type":"Plain","text":"hello"},
			{"type":"At","target":7,"display":"@bob"}
		],
		"sender": {
			"id": 456, "memberName": "alice", "permission": "MEMBER",
			"group": {"id": 789, "name": "testers", "permission": "ADMINISTRATOR"}
		}
	}`

	ev, err := Parse([]byte(input))
	require.NoError(t, err)

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, ev, back)
}

func TestEventTypes(t *testing.T) {
	types := Types()
	assert.Len(t, types, 32)
	for _, et := range types {
		assert.True(t, et.IsValid(), "%s should be valid", et)
	}
	assert.False(t, EventType("bogus").IsValid())
}

func TestResponseValidity(t *testing.T) {
	assert.True(t, FriendApprove.IsValid())
	assert.True(t, FriendBlacklist.IsValid())
	assert.False(t, NewFriendResponse(3).IsValid())

	assert.True(t, JoinApprove.IsValid())
	assert.True(t, JoinIgnoreBlacklist.IsValid())
	assert.False(t, MemberJoinResponse(5).IsValid())
	assert.False(t, MemberJoinResponse(-1).IsValid())
}
