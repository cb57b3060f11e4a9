package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermission_IsValid(t *testing.T) {
	validPermissions := []Permission{
		PermissionMember, PermissionAdministrator, PermissionOwner,
	}

	for _, p := range validPermissions {
		t.Run("Valid_"+p.String(), func(t *testing.T) {
			assert.True(t, p.IsValid())
		})
	}

	invalidPermissions := []Permission{
		"", "member", "Owner", "ADMIN", "unknown",
	}

	for _, p := range invalidPermissions {
		t.Run("Invalid_"+string(p), func(t *testing.T) {
			assert.False(t, p.IsValid())
		})
	}
}

func TestTargetType_IsValid(t *testing.T) {
	for _, tt := range []TargetType{TargetFriend, TargetGroup, TargetTemp} {
		assert.True(t, tt.IsValid())
	}
	for _, tt := range []TargetType{"", "Friend", "GROUP", "channel"} {
		assert.False(t, tt.IsValid())
	}
}

func TestIDs_IsValid(t *testing.T) {
	assert.False(t, UserID(0).IsValid())
	assert.True(t, UserID(12345).IsValid())
	assert.False(t, GroupID(0).IsValid())
	assert.True(t, GroupID(67890).IsValid())
}

func TestIDs_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(UserID(1234567890123))
	require.NoError(t, err)
	assert.Equal(t, `1234567890123`, string(data))

	var uid UserID
	require.NoError(t, json.Unmarshal([]byte(`42`), &uid))
	assert.Equal(t, UserID(42), uid)

	var mid MessageID
	require.NoError(t, json.Unmarshal([]byte(`-7`), &mid))
	assert.Equal(t, MessageID(-7), mid)
}

func TestMember_JSONUnmarshal(t *testing.T) {
	data := `{
		"id": 123456,
		"memberName": "alice",
		"permission": "ADMINISTRATOR",
		"group": {"id": 654321, "name": "testers", "permission": "MEMBER"}
	}`

	var m Member
	require.NoError(t, json.Unmarshal([]byte(data), &m))

	assert.Equal(t, UserID(123456), m.ID)
	assert.Equal(t, "alice", m.MemberName)
	assert.Equal(t, PermissionAdministrator, m.Permission)
	assert.Equal(t, GroupID(654321), m.Group.ID)
	assert.Equal(t, "testers", m.Group.Name)
	assert.Equal(t, PermissionMember, m.Group.Permission)
}

func TestFriend_JSONUnmarshal(t *testing.T) {
	data := `{"id": 987654, "nickname": "bob", "remark": "work"}`

	var f Friend
	require.NoError(t, json.Unmarshal([]byte(data), &f))

	assert.Equal(t, UserID(987654), f.ID)
	assert.Equal(t, "bob", f.Nickname)
	assert.Equal(t, "work", f.Remark)
}

func TestGroupConfig_OmitsUnsetFields(t *testing.T) {
	name := "renamed"
	cfg := GroupConfig{Name: &name}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"renamed"}`, string(data))
}
