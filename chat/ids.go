// Package chat provides the identifier and identity value types shared by the
// message and event models: user/group/message IDs, group member permissions,
// and the Group/Member/Friend records decoded from the gateway.
//
// All types in this package are plain values. They carry no lifecycle, are
// cheap to copy, and are safe to share between goroutines as long as a single
// instance is not written concurrently with a read.
package chat

// UserID identifies a user on the chat platform.
// The zero value means "no user" and is never a valid live identifier.
type UserID int64

// GroupID identifies a group on the chat platform.
// The zero value means "no group"; request events use it for "not from a group".
type GroupID int64

// MessageID identifies a single message within a chat session.
// Message IDs are 32-bit on the wire.
type MessageID int32

// IsValid reports whether the ID refers to an actual user.
func (id UserID) IsValid() bool { return id != 0 }

// IsValid reports whether the ID refers to an actual group.
func (id GroupID) IsValid() bool { return id != 0 }
