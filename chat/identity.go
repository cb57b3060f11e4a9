package chat

// Permission is the rank of a member within a group, as reported by the
// gateway. Wire values are upper-case strings.
type Permission string

// Permission values in ascending order of privilege.
const (
	PermissionMember        Permission = "MEMBER"
	PermissionAdministrator Permission = "ADMINISTRATOR"
	PermissionOwner         Permission = "OWNER"
)

// IsValid checks if the permission is one of the known wire values.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionMember, PermissionAdministrator, PermissionOwner:
		return true
	}
	return false
}

// String returns the wire representation of the permission.
func (p Permission) String() string {
	return string(p)
}

// TargetType distinguishes where an outbound message is headed.
type TargetType string

// TargetType values as the gateway spells them.
const (
	TargetFriend TargetType = "friend"
	TargetGroup  TargetType = "group"
	TargetTemp   TargetType = "temp"
)

// IsValid checks if the target type is one of the known wire values.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetFriend, TargetGroup, TargetTemp:
		return true
	}
	return false
}

// String returns the wire representation of the target type.
func (t TargetType) String() string {
	return string(t)
}

// Group describes a group the bot belongs to.
// Permission is the bot's own rank within that group.
type Group struct {
	ID         GroupID    `json:"id"`
	Name       string     `json:"name"`
	Permission Permission `json:"permission"`
}

// Member describes a member of a group, including the group itself.
type Member struct {
	ID         UserID     `json:"id"`
	MemberName string     `json:"memberName"`
	Permission Permission `json:"permission"`
	Group      Group      `json:"group"`
}

// Friend describes a friend of the bot.
type Friend struct {
	ID       UserID `json:"id"`
	Nickname string `json:"nickname"`
	Remark   string `json:"remark"`
}

// GroupConfig carries group settings. Nil fields are "leave unchanged" when
// configuring; results returned by the gateway always have every field set.
type GroupConfig struct {
	Name              *string `json:"name,omitempty"`
	Announcement      *string `json:"announcement,omitempty"`
	ConfessTalk       *bool   `json:"confessTalk,omitempty"`
	AllowMemberInvite *bool   `json:"allowMemberInvite,omitempty"`
	AutoApprove       *bool   `json:"autoApprove,omitempty"`
	AnonymousChat     *bool   `json:"anonymousChat,omitempty"`
}

// MemberInfo carries the mutable per-member attributes of a group member.
type MemberInfo struct {
	Name         string `json:"name"`
	SpecialTitle string `json:"specialTitle"`
}
